/*
File : gplc/internal/emitter/emitter_statements.go
*/
package emitter

import "github.com/gplang/gplc/internal/ast"

func (e *Emitter) emitBlock(b *ast.Block) {
	e.line("{")
	e.indent++
	for _, s := range b.Statements {
		e.emitStmt(s)
	}
	e.indent--
	e.line("}")
}

func (e *Emitter) emitStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDecl:
		e.emitVarDecl(n)
	case *ast.Assign:
		e.line("%s = %s;", csIdent(n.Name), e.expr(n.Value))
	case *ast.If:
		e.emitIf(n)
	case *ast.Return:
		if n.Value == nil {
			e.line("return;")
			return
		}
		e.line("return %s;", e.expr(n.Value))
	case *ast.Assert:
		e.emitAssert(n)
	case *ast.ExprStmt:
		e.line("%s;", e.expr(n.X))
	case *ast.Block:
		e.emitBlock(n)
	default:
		panic("emitter: unhandled statement node")
	}
}

// emitVarDecl emits a typed declaration; without an initializer, a
// zero value appropriate to the type stands in.
func (e *Emitter) emitVarDecl(n *ast.VarDecl) {
	typ := resolvedVarType(n)
	if n.Init == nil {
		e.line("%s %s = %s;", typeString(typ), csIdent(n.Name), zeroValue(typ))
		return
	}
	e.line("%s %s = %s;", typeString(typ), csIdent(n.Name), e.expr(n.Init))
}

func resolvedVarType(n *ast.VarDecl) ast.Type {
	if n.Type != nil {
		return *n.Type
	}
	t, _ := n.Init.Resolved()
	return t
}

func (e *Emitter) emitIf(n *ast.If) {
	e.line("if (%s)", e.expr(n.Cond))
	e.emitBlock(n.Then)
	if n.Else != nil {
		e.line("else")
		e.emitBlock(n.Else)
	}
}

// emitAssert emits an explicit if/throw form rather than any host
// assertion helper that could be compiled out under an optimized
// build — the correctness guarantee depends on the check surviving
// every build mode.
func (e *Emitter) emitAssert(n *ast.Assert) {
	msg := "assertion failed"
	if n.Message != nil {
		msg = *n.Message
	}
	e.line("if (!(%s)) { throw new Exception(%s); }", e.expr(n.Cond), csharpStringLiteral(msg))
}
