/*
File : gplc/internal/emitter/emitter.go
*/
// Package emitter translates a type-checked GP-λ AST into C# source
// text. It is a pure string-building pass: since the host language is
// not Go, there is no AST-plus-printer package to target the way a
// Go-to-Go code generator would — emission instead assembles indented
// text directly, walking the tree and writing source as it goes.
package emitter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gplang/gplc/internal/ast"
)

// Emitter accumulates C# source text. It is a contract violation to
// construct one for a program the analyzer did not accept with zero
// errors; enforcing that precondition is the driver's job, not the
// emitter's — Emit trusts every expression already carries a resolved
// type.
type Emitter struct {
	buf    bytes.Buffer
	indent int
}

// Emit renders prog as a complete, standalone .cs source file.
func Emit(prog *ast.Program) string {
	e := &Emitter{}
	e.emitHeader()
	e.emitVoidDelegates(collectVoidDelegateArities(prog))
	e.line("public static class Program")
	e.line("{")
	e.indent++
	e.emitBuiltins()
	e.emitUserFunctions(prog)
	e.emitMainShim(prog)
	e.indent--
	e.line("}")
	return e.buf.String()
}

func (e *Emitter) emitHeader() {
	e.line("// <auto-generated>")
	e.line("// This file was generated by the GP-λ compiler. Do not edit by hand.")
	e.line("// </auto-generated>")
	e.line("using System;")
	e.blank()
}

func (e *Emitter) emitBuiltins() {
	e.line("public static void println(string s)")
	e.line("{")
	e.indent++
	e.line("Console.WriteLine(s);")
	e.indent--
	e.line("}")
	e.blank()

	e.line("public static string readLine()")
	e.line("{")
	e.indent++
	e.line("return Console.ReadLine() ?? \"\";")
	e.indent--
	e.line("}")
	e.blank()

	e.line("public static string toString(int n)")
	e.line("{")
	e.indent++
	e.line("return n.ToString();")
	e.indent--
	e.line("}")
	e.blank()
}

func (e *Emitter) emitUserFunctions(prog *ast.Program) {
	for _, decl := range prog.Declarations {
		fn, ok := decl.(*ast.FunctionDecl)
		if !ok {
			// A bare statement at top level (the grammar permits it, but
			// emission only handles functions and builtins) has no
			// host-language home in a static class and is silently
			// skipped; GP-λ programs exercising this shape are outside
			// the emitter's documented contract.
			continue
		}
		e.emitFunction(fn)
		e.blank()
	}
}

func (e *Emitter) emitFunction(fn *ast.FunctionDecl) {
	ret := ast.VoidType
	if fn.ReturnType != nil {
		ret = *fn.ReturnType
	}
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = fmt.Sprintf("%s %s", typeString(p.Type), csIdent(p.Name))
	}
	e.line("public static %s %s(%s)", typeString(ret), csIdent(fn.Name), strings.Join(params, ", "))
	e.emitBlock(fn.Body)
}

func (e *Emitter) emitMainShim(prog *ast.Program) {
	hasMain := false
	for _, decl := range prog.Declarations {
		if fn, ok := decl.(*ast.FunctionDecl); ok && fn.Name == "main" {
			hasMain = true
		}
	}
	if !hasMain {
		return
	}
	e.line("public static void Main(string[] args)")
	e.line("{")
	e.indent++
	e.line("%s();", csIdent("main"))
	e.indent--
	e.line("}")
}

func (e *Emitter) line(format string, args ...interface{}) {
	e.buf.WriteString(strings.Repeat("    ", e.indent))
	fmt.Fprintf(&e.buf, format, args...)
	e.buf.WriteByte('\n')
}

func (e *Emitter) blank() {
	e.buf.WriteByte('\n')
}

// blockAsString renders b as C# statement text at e's current indent,
// for splicing into an expression position (a block-bodied lambda).
func (e *Emitter) blockAsString(b *ast.Block) string {
	sub := &Emitter{indent: e.indent}
	sub.emitBlock(b)
	return strings.TrimLeft(strings.TrimRight(sub.buf.String(), "\n"), " \t")
}
