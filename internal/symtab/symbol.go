/*
File : gplc/internal/symtab/symbol.go
*/
// Package symtab implements the hierarchical lexical-scope symbol
// table: a scope chain rooted at one Global scope, pre-seeded with
// the three built-in function symbols, used by the combined analyzer
// to back both name resolution and type checking in a single
// traversal.
//
// This is a static compile-time symbol table, not a runtime
// environment of values: it carries Symbol descriptions rather than
// live values, since GP-λ is compiled ahead of time rather than
// evaluated.
package symtab

import "github.com/gplang/gplc/internal/ast"

// Kind distinguishes the symbol variants.
type Kind int

const (
	VariableKind Kind = iota
	FunctionKind
	BuiltinKind
)

// Symbol is the sum of the three symbol variants. A single struct is
// used (rather than an interface with three implementations) because
// every variant shares the same shape modulo which fields are
// meaningful — VariableSymbol needs Initialized/Used, FunctionSymbol
// needs Params/Defined — and the analyzer frequently needs to branch
// on Kind anyway (e.g. "is this a variable or a function") so an
// interface would just move the same switch one level up.
type Symbol struct {
	Kind Kind
	Name string
	Type ast.Type // variable: its type; function/builtin: its Func<...> type
	Pos  ast.Position

	Params []ast.Parameter // function/builtin only: declared parameter list

	// Variable-only bookkeeping.
	Initialized bool
	Used        bool

	// Function-only bookkeeping: has the body been supplied? Builtins
	// are always Defined from construction.
	Defined bool
}

// NewVariable constructs an (un-initialized, unused) variable symbol.
func NewVariable(name string, typ ast.Type, pos ast.Position) *Symbol {
	return &Symbol{Kind: VariableKind, Name: name, Type: typ, Pos: pos}
}

// NewFunction constructs a function symbol. fnType must be a function
// Type built from params and the declared (or defaulted) return type.
func NewFunction(name string, fnType ast.Type, params []ast.Parameter, pos ast.Position) *Symbol {
	return &Symbol{Kind: FunctionKind, Name: name, Type: fnType, Params: params, Pos: pos, Defined: true}
}

// NewBuiltin constructs a pre-seeded built-in function symbol.
func NewBuiltin(name string, fnType ast.Type, params []ast.Parameter) *Symbol {
	return &Symbol{Kind: BuiltinKind, Name: name, Type: fnType, Params: params, Defined: true}
}

// IsCallable reports whether the symbol's type can be invoked as a
// function — true for FunctionKind/BuiltinKind, or for a variable
// symbol whose declared type happens to be a function type.
func (s *Symbol) IsCallable() bool {
	return s.Kind == FunctionKind || s.Kind == BuiltinKind || s.Type.IsFunc()
}
