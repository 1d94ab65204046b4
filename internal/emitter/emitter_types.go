/*
File : gplc/internal/emitter/emitter_types.go
*/
package emitter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gplang/gplc/internal/ast"
)

// voidDelegateName names the generated delegate used for a Func<P…,Void>
// value. Plain System.Func<...> cannot take void/Void as its result
// type, and System.Action<...> is deliberately not used so a
// Void-returning function value keeps the same "one C# type per GP-λ
// Func<...> shape" rule as every other function type — see the host
// language decision this repo's expanded specification records.
func voidDelegateName(arity int) string {
	return fmt.Sprintf("FuncVoid%d", arity)
}

// typeString maps a GP-λ Type to its C# spelling: Int→int,
// String→string, Bool→bool, Void→void, and Func<P…,R> to
// System.Func<P…,R> unless R is Void, in which case a generated
// FuncVoidN<P…> delegate is used instead.
func typeString(t ast.Type) string {
	if !t.IsFunc() {
		switch t.Primitive() {
		case ast.Int:
			return "int"
		case ast.Str:
			return "string"
		case ast.Bool:
			return "bool"
		default:
			return "void"
		}
	}

	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = typeString(p)
	}
	if !t.Return.IsFunc() && t.Return.Primitive() == ast.Void {
		name := voidDelegateName(len(t.Params))
		if len(params) == 0 {
			return name
		}
		return name + "<" + strings.Join(params, ", ") + ">"
	}

	parts := append(append([]string(nil), params...), typeString(*t.Return))
	return "System.Func<" + strings.Join(parts, ", ") + ">"
}

// zeroValue renders the C# zero value for t, used for an
// uninitialized variable declaration.
func zeroValue(t ast.Type) string {
	if t.IsFunc() {
		return "null"
	}
	switch t.Primitive() {
	case ast.Int:
		return "0"
	case ast.Str:
		return "\"\""
	case ast.Bool:
		return "false"
	default:
		return "null"
	}
}

// collectVoidDelegateArities walks every declared type reachable from
// prog's syntax — function signatures, var-decl annotations, lambda
// parameter lists, and any already-resolved lambda expression type —
// and returns the distinct parameter-count arities that need a
// generated Void delegate, sorted ascending, so the emitter can
// declare exactly the ones the program actually uses.
func collectVoidDelegateArities(prog *ast.Program) []int {
	seen := map[int]bool{}

	var walkType func(t ast.Type)
	walkType = func(t ast.Type) {
		if !t.IsFunc() {
			return
		}
		if !t.Return.IsFunc() && t.Return.Primitive() == ast.Void {
			seen[len(t.Params)] = true
		}
		for _, p := range t.Params {
			walkType(p)
		}
		walkType(*t.Return)
	}

	var walkStmt func(s ast.Stmt)
	var walkExpr func(e ast.Expr)

	walkStmt = func(s ast.Stmt) {
		switch n := s.(type) {
		case *ast.Program:
			for _, d := range n.Declarations {
				walkStmt(d)
			}
		case *ast.FunctionDecl:
			for _, p := range n.Params {
				walkType(p.Type)
			}
			if n.ReturnType != nil {
				walkType(*n.ReturnType)
			}
			walkStmt(n.Body)
		case *ast.Block:
			for _, st := range n.Statements {
				walkStmt(st)
			}
		case *ast.VarDecl:
			if n.Type != nil {
				walkType(*n.Type)
			}
			if n.Init != nil {
				walkExpr(n.Init)
			}
		case *ast.Assign:
			walkExpr(n.Value)
		case *ast.If:
			walkExpr(n.Cond)
			walkStmt(n.Then)
			if n.Else != nil {
				walkStmt(n.Else)
			}
		case *ast.Return:
			if n.Value != nil {
				walkExpr(n.Value)
			}
		case *ast.Assert:
			walkExpr(n.Cond)
		case *ast.ExprStmt:
			walkExpr(n.X)
		}
	}

	walkExpr = func(e ast.Expr) {
		switch n := e.(type) {
		case *ast.Lambda:
			for _, p := range n.Params {
				walkType(p.Type)
			}
			if n.BodyExpr != nil {
				walkExpr(n.BodyExpr)
			}
			if n.BodyStmt != nil {
				walkStmt(n.BodyStmt)
			}
			if rt, ok := n.Resolved(); ok {
				walkType(rt)
			}
		case *ast.Call:
			for _, a := range n.Args {
				walkExpr(a)
			}
		case *ast.Binary:
			walkExpr(n.Left)
			walkExpr(n.Right)
		case *ast.Unary:
			walkExpr(n.Operand)
		}
	}

	walkStmt(prog)

	arities := make([]int, 0, len(seen))
	for a := range seen {
		arities = append(arities, a)
	}
	sort.Ints(arities)
	return arities
}

// csharpKeywords is the set of C# reserved words a GP-λ identifier
// could otherwise collide with (e.g. `let string = 5;` or
// `func class() {}`), since GP-λ names are emitted verbatim.
var csharpKeywords = map[string]bool{
	"abstract": true, "as": true, "base": true, "bool": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "checked": true,
	"class": true, "const": true, "continue": true, "decimal": true,
	"default": true, "delegate": true, "do": true, "double": true,
	"else": true, "enum": true, "event": true, "explicit": true,
	"extern": true, "false": true, "finally": true, "fixed": true,
	"float": true, "for": true, "foreach": true, "goto": true, "if": true,
	"implicit": true, "in": true, "int": true, "interface": true,
	"internal": true, "is": true, "lock": true, "long": true,
	"namespace": true, "new": true, "null": true, "object": true,
	"operator": true, "out": true, "override": true, "params": true,
	"private": true, "protected": true, "public": true, "readonly": true,
	"ref": true, "return": true, "sbyte": true, "sealed": true,
	"short": true, "sizeof": true, "stackalloc": true, "static": true,
	"string": true, "struct": true, "switch": true, "this": true,
	"throw": true, "true": true, "try": true, "typeof": true, "uint": true,
	"ulong": true, "unchecked": true, "unsafe": true, "ushort": true,
	"using": true, "virtual": true, "void": true, "volatile": true,
	"while": true,
}

// csIdent emits name as a valid C# identifier, prefixing it with `@`
// (C#'s verbatim-identifier escape) when it collides with a reserved
// word, since GP-λ's own identifier grammar allows names C# reserves.
func csIdent(name string) string {
	if csharpKeywords[name] {
		return "@" + name
	}
	return name
}

func (e *Emitter) emitVoidDelegates(arities []int) {
	for _, a := range arities {
		if a == 0 {
			e.line("public delegate void %s();", voidDelegateName(0))
			continue
		}
		typeParams := make([]string, a)
		params := make([]string, a)
		for i := 0; i < a; i++ {
			tp := fmt.Sprintf("T%d", i+1)
			typeParams[i] = tp
			params[i] = fmt.Sprintf("%s a%d", tp, i+1)
		}
		e.line("public delegate void %s<%s>(%s);",
			voidDelegateName(a), strings.Join(typeParams, ", "), strings.Join(params, ", "))
	}
	if len(arities) > 0 {
		e.blank()
	}
}
