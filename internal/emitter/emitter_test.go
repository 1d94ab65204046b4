/*
File : gplc/internal/emitter/emitter_test.go
*/
package emitter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gplang/gplc/internal/analyzer"
	"github.com/gplang/gplc/internal/emitter"
	"github.com/gplang/gplc/internal/parser"
)

func emit(t *testing.T, src string) string {
	t.Helper()
	p := parser.New(src)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors)
	require.Empty(t, p.LexErrors())

	a := analyzer.New()
	a.Analyze(prog)
	require.True(t, a.Ok(), "semantic: %v, type: %v", a.Semantic, a.Type)

	return emitter.Emit(prog)
}

func TestEmitter_HelloWorldHasBuiltinsAndMainShim(t *testing.T) {
	out := emit(t, `func main() { println("Hello, World!"); }`)
	assert.Contains(t, out, "public static class Program")
	assert.Contains(t, out, "public static void println(string s)")
	assert.Contains(t, out, "public static string readLine()")
	assert.Contains(t, out, "public static string toString(int n)")
	assert.Contains(t, out, "public static void main()")
	assert.Contains(t, out, `println("Hello, World!");`)
	assert.Contains(t, out, "public static void Main(string[] args)")
	assert.Contains(t, out, "main();")
}

func TestEmitter_NoMainFunctionOmitsEntryPointShim(t *testing.T) {
	out := emit(t, `func helper() { println("hi"); }`)
	assert.NotContains(t, out, "static void Main(string[] args)")
}

func TestEmitter_EmptySourceStillHasBuiltinsAndShell(t *testing.T) {
	out := emit(t, ``)
	assert.Contains(t, out, "public static class Program")
	assert.Contains(t, out, "public static void println(string s)")
	assert.NotContains(t, out, "static void Main(string[] args)")
}

func TestEmitter_FunctionSignatureAndReturnAreTranslated(t *testing.T) {
	out := emit(t, `func add(x: Int, y: Int) -> Int { return x + y; }
		func main() { println(toString(add(15, 25))); }`)
	assert.Contains(t, out, "public static int add(int x, int y)")
	assert.Contains(t, out, "return (x + y);")
}

func TestEmitter_IfElseEmitsHostIfElse(t *testing.T) {
	out := emit(t, `func main() { if (10 > 5) { println("yes"); } else { println("no"); } }`)
	assert.Contains(t, out, "if ((10 > 5))")
	assert.Contains(t, out, "else")
	assert.Contains(t, out, `println("yes");`)
	assert.Contains(t, out, `println("no");`)
}

func TestEmitter_UninitializedVarDeclUsesZeroValue(t *testing.T) {
	out := emit(t, `func main() { let x: Int; x = 3; println(toString(x)); }`)
	assert.Contains(t, out, "int x = 0;")
}

func TestEmitter_AssertEmitsExplicitThrowNotHostAssert(t *testing.T) {
	out := emit(t, `func main() { assert(1 == 1, "should hold"); }`)
	assert.Contains(t, out, "if (!((1 == 1)))")
	assert.Contains(t, out, `throw new Exception("should hold");`)
	assert.NotContains(t, out, "Debug.Assert")
}

func TestEmitter_ExpressionBodiedLambdaEmitsCSharpLambda(t *testing.T) {
	out := emit(t, `func main() {
		let d = (x: Int, y: Int) => x + y;
		println(toString(d(7, 3)));
	}`)
	assert.Contains(t, out, "System.Func<int, int, int>")
	assert.Contains(t, out, "(int x, int y) => (x + y)")
}

func TestEmitter_BlockBodiedLambdaEmitsCSharpStatementLambda(t *testing.T) {
	out := emit(t, `func main() {
		let d = (x: Int) => { return x; };
		println(toString(d(9)));
	}`)
	assert.Contains(t, out, "=> {")
	assert.Contains(t, out, "return x;")
}

func TestEmitter_VoidReturningFunctionValueUsesGeneratedDelegate(t *testing.T) {
	out := emit(t, `func callIt(f: Func<Int, Void>, n: Int) { f(n); }
		func main() { callIt((x: Int) => { println(toString(x)); }, 5); }`)
	// A user-declared Int->Void parameter needs its own generated
	// delegate, distinct from System.Func (which cannot take Void as
	// TResult).
	assert.Contains(t, out, "public delegate void FuncVoid1<T1>(T1 a1);")
	assert.Contains(t, out, "FuncVoid1<int> f")
}

func TestEmitter_StringConcatenationUsesNativeOperator(t *testing.T) {
	out := emit(t, `func main() { println("n=" + toString(5)); }`)
	assert.Contains(t, out, `("n=" + toString(5))`)
}
