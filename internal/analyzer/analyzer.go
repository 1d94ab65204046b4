/*
File : gplc/internal/analyzer/analyzer.go
*/
// Package analyzer implements the combined analyzer: a single
// traversal of the AST that performs name resolution, scope
// management, and type checking/inference together, accumulating two
// separate error lists so callers can still categorize diagnostics.
//
// The pass is split one file per AST shape concern (statements,
// expressions, function declarations), with a single owning struct
// threading state through recursive methods. Nothing here executes
// the program: every method returns a resolved ast.Type (or nothing,
// for statements) instead of a runtime value, and the struct owns a
// symtab.Scope chain rather than a scope of live values.
package analyzer

import (
	"fmt"

	"github.com/gplang/gplc/internal/ast"
	"github.com/gplang/gplc/internal/symtab"
)

// returnContext carries "current function return type" as explicit
// state rather than storing it on AST nodes. A plain function pushes
// one with Expected pre-set to its declared (or defaulted) return
// type; a lambda pushes one with Infer=true and fills in Expected from
// its first return statement (a lambda's return type is the type of
// its first return statement's value, or Void if it never returns).
type returnContext struct {
	Expected ast.Type
	Infer    bool
	Seen     bool   // has a return statement already set Expected, when Infer?
	Name     string // enclosing function's name; empty for a lambda
}

// Analyzer performs the combined analysis pass.
type Analyzer struct {
	global *symtab.Scope
	scope  *symtab.Scope

	returnStack []*returnContext

	Semantic []SemanticError
	Type     []TypeError
}

// New creates an Analyzer with a fresh, builtin-seeded global scope.
func New() *Analyzer {
	g := symtab.NewGlobalScope()
	return &Analyzer{global: g, scope: g}
}

func (a *Analyzer) semErr(pos ast.Position, format string, args ...interface{}) {
	a.Semantic = append(a.Semantic, SemanticError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (a *Analyzer) typeErr(pos ast.Position, format string, args ...interface{}) {
	a.Type = append(a.Type, TypeError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (a *Analyzer) enterScope(kind symtab.ScopeKind) {
	a.scope = symtab.EnterScope(a.scope, kind)
}

func (a *Analyzer) exitScope() {
	a.scope = symtab.ExitScope(a.scope)
}

// Ok reports whether analysis found zero errors of either category —
// the precondition the emitter requires before it may run.
func (a *Analyzer) Ok() bool {
	return len(a.Semantic) == 0 && len(a.Type) == 0
}

// Analyze runs the combined pass over prog. Declarations are visited
// in source order: a function declaration is defined into the
// enclosing scope — here always Global, since the grammar only allows
// functionDecl at the top level — immediately before its body is
// descended into, so a function can call any function declared
// earlier in the file but not one declared later.
func (a *Analyzer) Analyze(prog *ast.Program) {
	for _, decl := range prog.Declarations {
		a.analyzeStmt(decl)
	}
}
