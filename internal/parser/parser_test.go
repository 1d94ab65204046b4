/*
File : gplc/internal/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gplang/gplc/internal/ast"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(src)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors, "unexpected syntax errors: %v", p.Errors)
	require.Empty(t, p.LexErrors())
	return prog
}

func TestParser_FunctionDeclWithParamsAndReturnType(t *testing.T) {
	prog := parseOK(t, `func add(x: Int, y: Int) -> Int { return x + y; }`)
	require.Len(t, prog.Declarations, 1)
	fn, ok := prog.Declarations[0].(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "x", fn.Params[0].Name)
	assert.Equal(t, ast.IntType, fn.Params[0].Type)
	require.NotNil(t, fn.ReturnType)
	assert.Equal(t, ast.IntType, *fn.ReturnType)
}

func TestParser_OperatorPrecedence(t *testing.T) {
	prog := parseOK(t, `func main() { let x = 1 + 2 * 3; }`)
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	decl := fn.Body.Statements[0].(*ast.VarDecl)
	bin := decl.Init.(*ast.Binary)
	assert.Equal(t, ast.Add, bin.Op)
	_, isInt := bin.Left.(*ast.IntLit)
	assert.True(t, isInt)
	rhs := bin.Right.(*ast.Binary)
	assert.Equal(t, ast.Multiply, rhs.Op)
}

func TestParser_LogicalPrecedenceBelowEquality(t *testing.T) {
	prog := parseOK(t, `func main() { let x = 1 == 1 && 2 == 2 || 3 == 4; }`)
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	decl := fn.Body.Statements[0].(*ast.VarDecl)
	top := decl.Init.(*ast.Binary)
	assert.Equal(t, ast.Or, top.Op)
	left := top.Left.(*ast.Binary)
	assert.Equal(t, ast.And, left.Op)
}

func TestParser_LambdaExpressionBodied(t *testing.T) {
	prog := parseOK(t, `func main() { let d = (x: Int, y: Int) => x + y; }`)
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	decl := fn.Body.Statements[0].(*ast.VarDecl)
	lambda := decl.Init.(*ast.Lambda)
	require.Len(t, lambda.Params, 2)
	assert.NotNil(t, lambda.BodyExpr)
	assert.Nil(t, lambda.BodyStmt)
}

func TestParser_LambdaBlockBodied(t *testing.T) {
	prog := parseOK(t, `func main() { let d = (x: Int) => { return x; }; }`)
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	decl := fn.Body.Statements[0].(*ast.VarDecl)
	lambda := decl.Init.(*ast.Lambda)
	assert.Nil(t, lambda.BodyExpr)
	assert.NotNil(t, lambda.BodyStmt)
}

func TestParser_ParenthesizedExpressionIsNotALambda(t *testing.T) {
	prog := parseOK(t, `func main() { let x = (1 + 2) * 3; }`)
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	decl := fn.Body.Statements[0].(*ast.VarDecl)
	bin := decl.Init.(*ast.Binary)
	assert.Equal(t, ast.Multiply, bin.Op)
	_, isBin := bin.Left.(*ast.Binary)
	assert.True(t, isBin)
}

func TestParser_MethodCallLowersToCallWithReceiverPrepended(t *testing.T) {
	prog := parseOK(t, `func main() { n.toString(); }`)
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	stmt := fn.Body.Statements[0].(*ast.ExprStmt)
	call := stmt.X.(*ast.Call)
	assert.Equal(t, "toString", call.Callee)
	require.Len(t, call.Args, 1)
	ref := call.Args[0].(*ast.VarRef)
	assert.Equal(t, "n", ref.Name)
}

func TestParser_HigherOrderCallIsRejected(t *testing.T) {
	p := New(`func main() { let f = (x: Int) => x; f()(); }`)
	p.ParseProgram()
	require.NotEmpty(t, p.Errors)
	found := false
	for _, e := range p.Errors {
		if containsSubstring(e.Message, "higher-order") {
			found = true
		}
	}
	assert.True(t, found, "expected a higher-order-call error, got %v", p.Errors)
}

func TestParser_FuncTypeAnnotation(t *testing.T) {
	prog := parseOK(t, `func apply(f: Func<Int, Int>, x: Int) -> Int { return f(x); }`)
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	require.True(t, fn.Params[0].Type.IsFunc())
	assert.Equal(t, "Func<Int, Int>", fn.Params[0].Type.String())
}

func TestParser_AssertWithMessage(t *testing.T) {
	prog := parseOK(t, `func main() { assert(1 == 1, "should hold"); }`)
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	assertStmt := fn.Body.Statements[0].(*ast.Assert)
	require.NotNil(t, assertStmt.Message)
	assert.Equal(t, "should hold", *assertStmt.Message)
}

func TestParser_StringEscapeProcessing(t *testing.T) {
	prog := parseOK(t, `func main() { let s = "line1\nline2"; }`)
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	decl := fn.Body.Statements[0].(*ast.VarDecl)
	str := decl.Init.(*ast.StringLit)
	assert.Equal(t, "line1\nline2", str.Value)
}

func TestParser_VarDeclWithoutTypeOrInitializerIsSyntaxError(t *testing.T) {
	p := New(`func main() { let x; }`)
	p.ParseProgram()
	assert.NotEmpty(t, p.Errors)
}

func containsSubstring(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
