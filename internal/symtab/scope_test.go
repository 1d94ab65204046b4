/*
File : gplc/internal/symtab/scope_test.go
*/
package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gplang/gplc/internal/ast"
)

func TestNewGlobalScope_SeedsBuiltins(t *testing.T) {
	g := NewGlobalScope()

	println_, ok := g.Resolve("println")
	require.True(t, ok)
	assert.True(t, println_.IsCallable())
	assert.Equal(t, "Func<String, Void>", println_.Type.String())

	readLine, ok := g.Resolve("readLine")
	require.True(t, ok)
	assert.Equal(t, "Func<String>", readLine.Type.String())

	toString, ok := g.Resolve("toString")
	require.True(t, ok)
	assert.Equal(t, "Func<Int, String>", toString.Type.String())
}

func TestScope_DefineRejectsLocalRedefinition(t *testing.T) {
	g := NewGlobalScope()
	ok := g.Define(NewVariable("x", ast.IntType, ast.Position{}))
	assert.True(t, ok)
	ok = g.Define(NewVariable("x", ast.StrType, ast.Position{}))
	assert.False(t, ok, "redefining x in the same scope must fail")
}

func TestScope_ResolveWalksChainToGlobal(t *testing.T) {
	g := NewGlobalScope()
	g.Define(NewVariable("x", ast.IntType, ast.Position{}))

	fn := EnterScope(g, Function)
	blk := EnterScope(fn, Block)

	sym, ok := blk.Resolve("x")
	require.True(t, ok)
	assert.Equal(t, ast.IntType, sym.Type)

	_, ok = blk.Resolve("nope")
	assert.False(t, ok)
}

func TestScope_ShadowingDoesNotAlterOuterResolutionAfterExit(t *testing.T) {
	g := NewGlobalScope()
	g.Define(NewVariable("x", ast.IntType, ast.Position{}))

	inner := EnterScope(g, Block)
	inner.Define(NewVariable("x", ast.StrType, ast.Position{}))

	sym, _ := inner.Resolve("x")
	assert.Equal(t, ast.StrType, sym.Type)

	back := ExitScope(inner)
	sym, _ = back.Resolve("x")
	assert.Equal(t, ast.IntType, sym.Type, "exiting the inner scope restores the outer binding")
}

func TestScope_IsDefinedLocallyIgnoresParent(t *testing.T) {
	g := NewGlobalScope()
	g.Define(NewVariable("x", ast.IntType, ast.Position{}))
	inner := EnterScope(g, Block)

	assert.False(t, inner.IsDefinedLocally("x"))
	assert.True(t, g.IsDefinedLocally("x"))
}

func TestExitScope_PanicsAtGlobal(t *testing.T) {
	g := NewGlobalScope()
	assert.Panics(t, func() { ExitScope(g) })
}
