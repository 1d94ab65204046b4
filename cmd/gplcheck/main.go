/*
File : gplc/cmd/gplcheck/main.go
*/
// Command gplcheck is an interactive development aid: it lexes,
// parses, and analyzes a single GP-λ declaration or expression typed
// at its prompt and prints the token kinds, any syntax, semantic or
// type errors, and a one-line summary of the first declaration (a
// function's name, parameter count and declared return type; any other
// statement is only reported as accepted). It prints neither the AST
// nor the type of an expression, and it never emits C# and plays no part in
// the `compile` pipeline. It exists purely as developer tooling: a
// readline prompt with colorized output over analysis results instead
// of evaluation results.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gplang/gplc/internal/analyzer"
	"github.com/gplang/gplc/internal/ast"
	"github.com/gplang/gplc/internal/lexer"
	"github.com/gplang/gplc/internal/parser"
	"github.com/gplang/gplc/internal/token"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `gplcheck — lex/parse/analyze one declaration at a time`

func main() {
	blueColor.Println(strings.Repeat("-", len(banner)))
	greenColor.Println(banner)
	blueColor.Println(strings.Repeat("-", len(banner)))
	cyanColor.Println("Type a GP-λ function declaration or statement and press enter.")
	cyanColor.Println("Type '.exit' to quit.")

	rl, err := readline.New("gplcheck> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Println("Good Bye!")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Println("Good Bye!")
			return
		}
		rl.SaveHistory(line)
		inspect(line)
	}
}

// inspect runs the full front-end over a single line of input and
// prints its tokens, its errors, and (if it analyzes without errors)
// the one-line summary of its first declaration built by describe.
func inspect(line string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Printf("[internal error] %v\n", r)
		}
	}()

	printTokens(line)

	p := parser.New(line)
	prog := p.ParseProgram()
	for _, e := range p.LexErrors() {
		redColor.Printf("[syntax] %s\n", e.Message)
	}
	for _, e := range p.Errors {
		redColor.Printf("[syntax] %s\n", e.Message)
	}
	if len(p.LexErrors()) > 0 || len(p.Errors) > 0 {
		return
	}

	a := analyzer.New()
	a.Analyze(prog)
	for _, e := range a.Semantic {
		redColor.Printf("[semantic] %s\n", e.Error())
	}
	for _, e := range a.Type {
		redColor.Printf("[type] %s\n", e.Error())
	}
	if !a.Ok() {
		return
	}

	yellowColor.Println(describe(prog))
}

func printTokens(line string) {
	lx := lexer.New(line)
	var kinds []string
	for {
		tok := lx.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		kinds = append(kinds, string(tok.Kind))
	}
	cyanColor.Println(strings.Join(kinds, " "))
}

func describe(prog *ast.Program) string {
	if len(prog.Declarations) == 0 {
		return "(no declarations)"
	}
	fn, ok := prog.Declarations[0].(*ast.FunctionDecl)
	if !ok {
		return "ok: statement accepted"
	}
	ret := "Void"
	if fn.ReturnType != nil {
		ret = fn.ReturnType.String()
	}
	return fmt.Sprintf("ok: func %s(%d param(s)) -> %s", fn.Name, len(fn.Params), ret)
}
