/*
File : gplc/internal/emitter/emitter_expressions.go
*/
package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gplang/gplc/internal/ast"
)

// expr renders x as a C# expression. Binary and unary forms are fully
// parenthesized so GP-λ's own precedence holds regardless of the host
// language's rules — C#'s `+`, `==`, `&&`, … already match GP-λ's
// operator spellings one-for-one, including its native `string + T`
// overload that handles the "either side may be String" concatenation
// rule without any extra conversion call.
func (e *Emitter) expr(x ast.Expr) string {
	switch n := x.(type) {
	case *ast.IntLit:
		return strconv.FormatInt(int64(n.Value), 10)
	case *ast.StringLit:
		return csharpStringLiteral(n.Value)
	case *ast.BoolLit:
		if n.Value {
			return "true"
		}
		return "false"
	case *ast.VarRef:
		return csIdent(n.Name)
	case *ast.Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = e.expr(a)
		}
		return fmt.Sprintf("%s(%s)", csIdent(n.Callee), strings.Join(args, ", "))
	case *ast.Binary:
		return fmt.Sprintf("(%s %s %s)", e.expr(n.Left), n.Op, e.expr(n.Right))
	case *ast.Unary:
		return fmt.Sprintf("(%s%s)", n.Op, e.expr(n.Operand))
	case *ast.Lambda:
		return e.lambdaExpr(n)
	}
	panic("emitter: unhandled expression node")
}

// lambdaExpr emits the host's anonymous-function form. Block-bodied
// lambdas are fully supported: C#'s own lambda syntax accepts a
// statement body directly (`(x) => { return x; }` is ordinary C#), so
// there is no host-language reason to reject what the parser and
// analyzer already accept.
func (e *Emitter) lambdaExpr(n *ast.Lambda) string {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = fmt.Sprintf("%s %s", typeString(p.Type), csIdent(p.Name))
	}
	sig := "(" + strings.Join(params, ", ") + ")"

	if n.BodyExpr != nil {
		return sig + " => " + e.expr(n.BodyExpr)
	}
	return sig + " => " + e.blockAsString(n.BodyStmt)
}

// csharpStringLiteral re-escapes s (already GP-λ-unescaped) using C#'s
// own string-literal rules.
func csharpStringLiteral(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
