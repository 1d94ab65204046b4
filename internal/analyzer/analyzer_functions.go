/*
File : gplc/internal/analyzer/analyzer_functions.go
*/
package analyzer

import (
	"github.com/gplang/gplc/internal/ast"
	"github.com/gplang/gplc/internal/symtab"
)

// analyzeFunctionDecl handles a function declaration: check for a
// local redefinition, define the function symbol in the
// enclosing scope *before* descending (so later-declared functions can
// call it, and so a call to itself recurses correctly), then analyze
// the body under a Function scope with an explicit return context.
func (a *Analyzer) analyzeFunctionDecl(n *ast.FunctionDecl) {
	if a.scope.IsDefinedLocally(n.Name) {
		// The duplicate's body is never entered or analyzed — exactly
		// one diagnostic per redefinition, no cascading errors from a
		// body whose symbols could never have been reached anyway.
		a.semErr(n.Pos(), "Function '%s' is already defined", n.Name)
		return
	}
	a.scope.Define(symtab.NewFunction(n.Name, fnTypeOf(n), n.Params, n.Pos()))

	declaredReturn := ast.VoidType
	if n.ReturnType != nil {
		declaredReturn = *n.ReturnType
	}

	a.enterScope(symtab.Function)
	for _, p := range n.Params {
		param := symtab.NewVariable(p.Name, p.Type, n.Pos())
		param.Initialized = true
		a.scope.Define(param)
	}

	ctx := &returnContext{Expected: declaredReturn, Name: n.Name}
	a.returnStack = append(a.returnStack, ctx)

	a.analyzeBlock(n.Body)

	a.returnStack = a.returnStack[:len(a.returnStack)-1]
	a.exitScope()

	if !declaredReturn.Equal(ast.VoidType) && !blockDefinitelyReturns(n.Body) {
		a.typeErr(n.Pos(), "Function '%s' must return a value of type %s", n.Name, declaredReturn)
	}
}

func fnTypeOf(n *ast.FunctionDecl) ast.Type {
	params := make([]ast.Type, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.Type
	}
	ret := ast.VoidType
	if n.ReturnType != nil {
		ret = *n.ReturnType
	}
	return ast.NewFunc(params, ret)
}

// blockDefinitelyReturns reports whether every path through b ends in
// a return: a block definitely returns if any statement in it does; a
// bare return
// statement always does; an if/else definitely returns iff both
// branches do; everything else does not.
func blockDefinitelyReturns(b *ast.Block) bool {
	for _, stmt := range b.Statements {
		if stmtDefinitelyReturns(stmt) {
			return true
		}
	}
	return false
}

func stmtDefinitelyReturns(s ast.Stmt) bool {
	switch n := s.(type) {
	case *ast.Return:
		return true
	case *ast.If:
		return n.Else != nil && blockDefinitelyReturns(n.Then) && blockDefinitelyReturns(n.Else)
	case *ast.Block:
		return blockDefinitelyReturns(n)
	default:
		return false
	}
}
