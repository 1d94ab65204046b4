/*
File : gplc/internal/driver/driver.go
*/
// Package driver orchestrates the compiler pipeline: read source, lex,
// parse, analyze, emit, write output — formatting and streaming every
// collected diagnostic to standard error in the fixed
// `[line:col] category: message` wire format, and converting an
// internal invariant violation anywhere in the pipeline into a
// reported error instead of a crash via its one legitimate recover()
// site.
package driver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/gplang/gplc/internal/analyzer"
	"github.com/gplang/gplc/internal/emitter"
	"github.com/gplang/gplc/internal/parser"
)

// Diagnostic is one formatted error line, category-tagged as Syntax
// error, Semantic error, Type error, or Internal compiler error.
type Diagnostic struct {
	Line     int
	Column   int
	Category string
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%d:%d] %s: %s", d.Line, d.Column, d.Category, d.Message)
}

// Options configures a single Compile invocation.
type Options struct {
	InputPath  string
	OutputPath string // empty: derived from InputPath (DefaultOutputPath)
	Verbose    bool
}

// Result is the outcome of a single compile: either a written output
// path, or a non-empty Diagnostics list — never both.
type Result struct {
	OutputPath  string
	Diagnostics []Diagnostic
}

var verboseColor = color.New(color.FgCyan)

// Compile runs the full pipeline against opts.InputPath. It never
// writes a partial output file: the output file is written once,
// after the emitter has produced complete text, only when every error
// list is empty.
func Compile(opts Options) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			// The one legitimate recover() site: an invariant violation
			// anywhere in the pipeline (e.g. symtab.ExitScope at global) is
			// reported instead of crashing the process.
			res = Result{Diagnostics: []Diagnostic{{
				Line: 1, Column: 0,
				Category: "Internal compiler error",
				Message:  fmt.Sprintf("%v", r),
			}}}
		}
	}()

	raw, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return Result{Diagnostics: []Diagnostic{{
			Line: 1, Column: 0,
			Category: "Internal compiler error",
			Message:  fmt.Sprintf("cannot read %s: %v", opts.InputPath, err),
		}}}
	}
	source := stripBOM(string(raw))

	if opts.Verbose {
		verboseColor.Fprintf(os.Stdout, "lexing and parsing %s\n", opts.InputPath)
	}

	p := parser.New(source)
	prog := p.ParseProgram()
	if len(p.LexErrors()) > 0 || len(p.Errors) > 0 {
		var diags []Diagnostic
		for _, e := range p.LexErrors() {
			diags = append(diags, Diagnostic{Line: e.Line, Column: e.Column, Category: "Syntax error", Message: e.Message})
		}
		for _, e := range p.Errors {
			diags = append(diags, Diagnostic{Line: e.Line, Column: e.Column, Category: "Syntax error", Message: e.Message})
		}
		// Parsing errors short-circuit the analyzer.
		return Result{Diagnostics: diags}
	}

	if opts.Verbose {
		verboseColor.Fprintf(os.Stdout, "analyzing %s\n", opts.InputPath)
	}

	a := analyzer.New()
	a.Analyze(prog)
	if !a.Ok() {
		var diags []Diagnostic
		for _, e := range a.Semantic {
			diags = append(diags, Diagnostic{Line: e.Pos.Line, Column: e.Pos.Column, Category: "Semantic error", Message: e.Message})
		}
		for _, e := range a.Type {
			diags = append(diags, Diagnostic{Line: e.Pos.Line, Column: e.Pos.Column, Category: "Type error", Message: e.Message})
		}
		return Result{Diagnostics: diags}
	}

	if opts.Verbose {
		verboseColor.Fprintf(os.Stdout, "emitting C# for %s\n", opts.InputPath)
	}

	out := emitter.Emit(prog)

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = DefaultOutputPath(opts.InputPath)
	}
	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		return Result{Diagnostics: []Diagnostic{{
			Line: 1, Column: 0,
			Category: "Internal compiler error",
			Message:  fmt.Sprintf("cannot write %s: %v", outputPath, err),
		}}}
	}

	return Result{OutputPath: outputPath}
}

// DefaultOutputPath substitutes the input's extension for the host
// language's source extension: `.cs`.
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".cs"
}

// stripBOM skips a leading UTF-8 byte-order mark, if present — no BOM
// is required, but one is tolerated and discarded.
func stripBOM(s string) string {
	const bom = "﻿"
	return strings.TrimPrefix(s, bom)
}

// PrintDiagnostics writes each diagnostic to w, one per line, in the
// order they were collected.
func PrintDiagnostics(w io.Writer, diags []Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, d.String())
	}
}
