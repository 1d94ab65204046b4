/*
File : gplc/internal/analyzer/analyzer_statements.go
*/
package analyzer

import (
	"github.com/gplang/gplc/internal/ast"
	"github.com/gplang/gplc/internal/symtab"
)

// analyzeStmt dispatches over every statement kind. A
// *ast.FunctionDecl reaching here is always a top-level declaration —
// the grammar permits no nested function declarations — so it is
// handled by the same dispatch Analyze uses for Program.Declarations.
func (a *Analyzer) analyzeStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.FunctionDecl:
		a.analyzeFunctionDecl(n)
	case *ast.Block:
		a.analyzeBlock(n)
	case *ast.VarDecl:
		a.analyzeVarDecl(n)
	case *ast.Assign:
		a.analyzeAssign(n)
	case *ast.If:
		a.analyzeIf(n)
	case *ast.Return:
		a.analyzeReturn(n)
	case *ast.Assert:
		a.analyzeAssert(n)
	case *ast.ExprStmt:
		a.analyzeExpr(n.X)
	default:
		panic("analyzer: unhandled statement node")
	}
}

// analyzeBlock pushes a Block scope, analyzes every statement in
// source order, and pops on exit — including when the block is a
// function or lambda body, which already pushed
// their own enclosing scope; the redundancy is documented as harmless
// since name lookup walks the full parent chain regardless.
func (a *Analyzer) analyzeBlock(b *ast.Block) {
	a.enterScope(symtab.Block)
	for _, stmt := range b.Statements {
		a.analyzeStmt(stmt)
	}
	a.exitScope()
}

func (a *Analyzer) analyzeVarDecl(n *ast.VarDecl) {
	if a.scope.IsDefinedLocally(n.Name) {
		a.semErr(n.Pos(), "%q is already defined in this scope", n.Name)
	}

	var declared, inferred *ast.Type
	if n.Type != nil {
		declared = n.Type
	}
	if n.Init != nil {
		t := a.analyzeExpr(n.Init)
		inferred = &t
	}

	var resolved ast.Type
	switch {
	case declared != nil && inferred != nil:
		if !declared.Equal(*inferred) {
			a.typeErr(n.Pos(), "Cannot initialize variable '%s' of type %s with value of type %s", n.Name, declared, inferred)
		}
		resolved = *declared
	case declared != nil:
		resolved = *declared
	case inferred != nil:
		resolved = *inferred
	default:
		a.semErr(n.Pos(), "%q must have a type annotation or initializer", n.Name)
		resolved = ast.VoidType
	}

	sym := symtab.NewVariable(n.Name, resolved, n.Pos())
	sym.Initialized = n.Init != nil
	a.scope.Define(sym)
}

func (a *Analyzer) analyzeAssign(n *ast.Assign) {
	valueType := a.analyzeExpr(n.Value)

	sym, ok := a.scope.Resolve(n.Name)
	if !ok {
		a.semErr(n.Pos(), "%q is not defined", n.Name)
		return
	}
	if sym.Kind != symtab.VariableKind {
		a.semErr(n.Pos(), "%s is not a variable", n.Name)
		return
	}
	if !sym.Type.Equal(valueType) {
		a.typeErr(n.Pos(), "cannot assign value of type %s to variable '%s' of type %s", valueType, n.Name, sym.Type)
	}
	sym.Initialized = true
}

func (a *Analyzer) analyzeIf(n *ast.If) {
	a.checkBoolCondition(n.Cond, "if condition")
	a.analyzeBlock(n.Then)
	if n.Else != nil {
		a.analyzeBlock(n.Else)
	}
}

func (a *Analyzer) analyzeAssert(n *ast.Assert) {
	a.checkBoolCondition(n.Cond, "assert condition")
}

func (a *Analyzer) checkBoolCondition(cond ast.Expr, what string) {
	t := a.analyzeExpr(cond)
	if !t.Equal(ast.BoolType) {
		a.typeErr(cond.Pos(), "%s must be Bool, got %s", what, t)
	}
}

func (a *Analyzer) analyzeReturn(n *ast.Return) {
	if len(a.returnStack) == 0 {
		a.typeErr(n.Pos(), "return statement outside of a function")
		if n.Value != nil {
			a.analyzeExpr(n.Value)
		}
		return
	}

	var valueType ast.Type = ast.VoidType
	if n.Value != nil {
		valueType = a.analyzeExpr(n.Value)
	}

	ctx := a.returnStack[len(a.returnStack)-1]
	if ctx.Infer && !ctx.Seen {
		ctx.Expected, ctx.Seen = valueType, true
		return
	}
	if !valueType.Equal(ctx.Expected) {
		a.typeErr(n.Pos(), "cannot return value of type %s, expected %s", valueType, ctx.Expected)
	}
}
