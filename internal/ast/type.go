/*
File : gplc/internal/ast/type.go
*/
// Package ast defines the typed abstract syntax tree GP-λ source is
// lowered into, along with the Type sum type nodes carry and a
// Parameter pair. Tree ownership is unique, root to leaves — no
// parent pointers; analyzer context such as "current function return
// type" is threaded explicitly rather than stashed on nodes.
package ast

import "strings"

// Primitive is one of the four built-in primitive type tags.
type Primitive string

const (
	Int  Primitive = "Int"
	Str  Primitive = "String"
	Bool Primitive = "Bool"
	Void Primitive = "Void"
)

// Type is the sum of the two type variants: Primitive and Function.
// Exactly one of the two representations is
// meaningful on any given Type value; the unexported isFunc flag (not
// Params, which is nil for a zero-arity Func<R> just as for a
// primitive) distinguishes a primitive Type from a function Type.
// A zero Type (the Go zero value) is never a valid Type; every
// constructor below should be used instead of a literal.
type Type struct {
	prim      Primitive
	isFunc    bool
	Params    []Type
	Return    *Type
}

// NewPrimitive constructs a primitive Type.
func NewPrimitive(p Primitive) Type { return Type{prim: p} }

// NewFunc constructs a Func<params..., return> Type.
func NewFunc(params []Type, ret Type) Type {
	return Type{isFunc: true, Params: append([]Type(nil), params...), Return: &ret}
}

var (
	IntType  = NewPrimitive(Int)
	StrType  = NewPrimitive(Str)
	BoolType = NewPrimitive(Bool)
	VoidType = NewPrimitive(Void)
)

// IsFunc reports whether t is a function type.
func (t Type) IsFunc() bool { return t.isFunc }

// Primitive returns the primitive tag. Only meaningful when !t.IsFunc().
func (t Type) Primitive() Primitive { return t.prim }

// Equal implements structural, order-sensitive equality: two
// primitives are equal iff same tag; two function types are equal
// iff same arity and every parameter type and the return type compare
// equal pairwise, in order. A primitive is never equal to a function
// type.
func (t Type) Equal(o Type) bool {
	if t.isFunc != o.isFunc {
		return false
	}
	if !t.isFunc {
		return t.prim == o.prim
	}
	if len(t.Params) != len(o.Params) {
		return false
	}
	for i := range t.Params {
		if !t.Params[i].Equal(o.Params[i]) {
			return false
		}
	}
	return t.Return.Equal(*o.Return)
}

// String renders the type for display: primitives in their
// capitalized form, functions as
// "Func<P1, P2, ..., R>" with nested function types rendered
// recursively.
func (t Type) String() string {
	if !t.isFunc {
		return string(t.prim)
	}
	parts := make([]string, 0, len(t.Params)+1)
	for _, p := range t.Params {
		parts = append(parts, p.String())
	}
	parts = append(parts, t.Return.String())
	return "Func<" + strings.Join(parts, ", ") + ">"
}
