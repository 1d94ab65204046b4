/*
File : gplc/internal/analyzer/analyzer_expressions.go
*/
package analyzer

import (
	"github.com/gplang/gplc/internal/ast"
	"github.com/gplang/gplc/internal/symtab"
)

// analyzeExpr resolves and type-checks e, records the result on e via
// SetResolvedType exactly once (ast.Expr's invariant), and returns the
// resolved type so callers composing larger expressions don't have to
// call Resolved() themselves. On a detected error the best available
// guess is still returned and set, so the traversal can keep going and
// surface further, independent errors in the same pass instead of
// stopping at the first one.
func (a *Analyzer) analyzeExpr(e ast.Expr) ast.Type {
	var t ast.Type
	switch n := e.(type) {
	case *ast.IntLit:
		t = ast.IntType
	case *ast.StringLit:
		t = ast.StrType
	case *ast.BoolLit:
		t = ast.BoolType
	case *ast.VarRef:
		t = a.analyzeVarRef(n)
	case *ast.Lambda:
		t = a.analyzeLambda(n)
	case *ast.Call:
		t = a.analyzeCall(n)
	case *ast.Binary:
		t = a.analyzeBinary(n)
	case *ast.Unary:
		t = a.analyzeUnary(n)
	default:
		panic("analyzer: unhandled expression node")
	}
	e.SetResolvedType(t)
	return t
}

func (a *Analyzer) analyzeVarRef(n *ast.VarRef) ast.Type {
	sym, ok := a.scope.Resolve(n.Name)
	if !ok {
		a.semErr(n.Pos(), "%q is not defined", n.Name)
		return ast.VoidType
	}
	if sym.Kind == symtab.VariableKind && !sym.Initialized {
		a.semErr(n.Pos(), "Variable %s may not be initialized", n.Name)
	}
	sym.Used = true
	return sym.Type
}

func (a *Analyzer) analyzeLambda(n *ast.Lambda) ast.Type {
	a.enterScope(symtab.LambdaScope)
	for _, p := range n.Params {
		param := symtab.NewVariable(p.Name, p.Type, n.Pos())
		param.Initialized = true
		a.scope.Define(param)
	}

	ctx := &returnContext{Infer: true}
	a.returnStack = append(a.returnStack, ctx)

	var bodyType ast.Type
	switch {
	case n.BodyExpr != nil:
		bodyType = a.analyzeExpr(n.BodyExpr)
		if !ctx.Seen {
			ctx.Expected, ctx.Seen = bodyType, true
		}
	case n.BodyStmt != nil:
		// Block-bodied lambda: a bare return type defaults to Void if
		// the block never returns.
		a.analyzeBlock(n.BodyStmt)
	}
	if !ctx.Seen {
		ctx.Expected, ctx.Seen = ast.VoidType, true
	}

	a.returnStack = a.returnStack[:len(a.returnStack)-1]
	a.exitScope()

	params := make([]ast.Type, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.Type
	}
	return ast.NewFunc(params, ctx.Expected)
}

func (a *Analyzer) analyzeCall(n *ast.Call) ast.Type {
	sym, ok := a.scope.Resolve(n.Callee)
	if !ok {
		a.semErr(n.Pos(), "%q is not defined", n.Callee)
		a.analyzeArgsForEffect(n.Args)
		return ast.VoidType
	}
	if !sym.IsCallable() {
		a.semErr(n.Pos(), "%s is not a function", n.Callee)
		a.analyzeArgsForEffect(n.Args)
		return ast.VoidType
	}
	sym.Used = true

	fnType := sym.Type
	if len(n.Args) != len(fnType.Params) {
		a.typeErr(n.Pos(), "function %q expects %d argument(s), got %d", n.Callee, len(fnType.Params), len(n.Args))
	}
	for i, arg := range n.Args {
		argType := a.analyzeExpr(arg)
		if i >= len(fnType.Params) {
			continue
		}
		if !argType.Equal(fnType.Params[i]) {
			a.typeErr(arg.Pos(), "argument %d to %q: expected %s, got %s", i+1, n.Callee, fnType.Params[i], argType)
		}
	}
	return *fnType.Return
}

func (a *Analyzer) analyzeArgsForEffect(args []ast.Expr) {
	for _, arg := range args {
		a.analyzeExpr(arg)
	}
}

func (a *Analyzer) analyzeBinary(n *ast.Binary) ast.Type {
	lt := a.analyzeExpr(n.Left)
	rt := a.analyzeExpr(n.Right)

	switch n.Op {
	case ast.Add:
		if lt.Equal(ast.IntType) && rt.Equal(ast.IntType) {
			return ast.IntType
		}
		if lt.Equal(ast.StrType) || rt.Equal(ast.StrType) {
			return ast.StrType
		}
		a.typeErr(n.Pos(), "operator '+' cannot be applied to %s and %s", lt, rt)
		return ast.IntType
	case ast.Subtract, ast.Multiply, ast.Divide, ast.Modulo:
		if !lt.Equal(ast.IntType) || !rt.Equal(ast.IntType) {
			a.typeErr(n.Pos(), "operator '%s' requires both operands to be Int, got %s and %s", n.Op, lt, rt)
		}
		return ast.IntType
	case ast.LessThan, ast.GreaterThan, ast.LessOrEqual, ast.GreaterOrEqual:
		if !lt.Equal(ast.IntType) || !rt.Equal(ast.IntType) {
			a.typeErr(n.Pos(), "operator '%s' requires both operands to be Int, got %s and %s", n.Op, lt, rt)
		}
		return ast.BoolType
	case ast.Equal, ast.NotEqual:
		if !lt.Equal(rt) {
			a.typeErr(n.Pos(), "operator '%s' requires both operands to be the same type, got %s and %s", n.Op, lt, rt)
		}
		return ast.BoolType
	case ast.And, ast.Or:
		if !lt.Equal(ast.BoolType) || !rt.Equal(ast.BoolType) {
			a.typeErr(n.Pos(), "operator '%s' requires both operands to be Bool, got %s and %s", n.Op, lt, rt)
		}
		return ast.BoolType
	}
	panic("analyzer: unhandled binary operator")
}

func (a *Analyzer) analyzeUnary(n *ast.Unary) ast.Type {
	ot := a.analyzeExpr(n.Operand)
	switch n.Op {
	case ast.Negate:
		if !ot.Equal(ast.IntType) {
			a.typeErr(n.Pos(), "unary '-' requires an Int operand, got %s", ot)
		}
		return ast.IntType
	case ast.Not:
		if !ot.Equal(ast.BoolType) {
			a.typeErr(n.Pos(), "unary '!' requires a Bool operand, got %s", ot)
		}
		return ast.BoolType
	}
	panic("analyzer: unhandled unary operator")
}
