/*
File : gplc/internal/parser/parser.go
*/
// Package parser implements a Pratt (top-down operator precedence)
// parser for GP-λ, directly building the typed AST rather than an
// intermediate concrete tree.
//
// The package is split one file per grammar concern
// (parser_expressions.go, parser_statements.go, parser_functions.go,
// parser_types.go), built around a Pratt core driven by per-token
// binary precedence and operator tables, with prefix operators handled
// by parseUnary, and an accumulating error slice instead of panicking
// on the first bad token. There is no separate concrete-syntax tree:
// string-escape processing and method-call lowering are implemented as
// a handful of functions in build.go, called from the
// statement/expression productions that need them, so that boundary
// stays legible even though both responsibilities live in this
// package (see DESIGN.md). Higher-order-call rejection happens in
// parsePostfix.
package parser

import (
	"fmt"

	"github.com/gplang/gplc/internal/ast"
	"github.com/gplang/gplc/internal/lexer"
	"github.com/gplang/gplc/internal/token"
)

// Parser holds the two-token lookahead window the Pratt core needs.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	next token.Token

	Errors []SyntaxError
}

// New creates a Parser over src.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.next
	p.next = p.lex.NextToken()
}

func (p *Parser) pos() ast.Position {
	return ast.Position{Line: p.cur.Line, Column: p.cur.Column}
}

func (p *Parser) errorf(tok token.Token, format string, args ...interface{}) {
	p.Errors = append(p.Errors, SyntaxError{Line: tok.Line, Column: tok.Column, Message: fmt.Sprintf(format, args...)})
}

// expect consumes cur if it has the given kind and returns it;
// otherwise it records a SyntaxError naming the actual token and the
// expected kind, and returns the (wrong) current token without
// consuming it, letting the caller decide how to recover.
func (p *Parser) expect(kind token.Kind) token.Token {
	if p.cur.Kind != kind {
		p.errorf(p.cur, "expected %s but found %q", kind, p.cur.Literal)
		return p.cur
	}
	tok := p.cur
	p.advance()
	return tok
}

// LexErrors exposes lex-time diagnoses collected while scanning —
// these are reported as Syntax errors too.
func (p *Parser) LexErrors() []lexer.LexError {
	return p.lex.Errors
}

// ParseProgram parses declaration* EOF.
func (p *Parser) ParseProgram() *ast.Program {
	pos := p.pos()
	var decls []ast.Stmt
	for p.cur.Kind != token.EOF {
		decls = append(decls, p.parseDeclaration())
	}
	return ast.NewProgram(pos.Line, pos.Column, decls)
}

// parseDeclaration := functionDecl | statement
func (p *Parser) parseDeclaration() ast.Stmt {
	if p.cur.Kind == token.FUNC {
		return p.parseFunctionDecl()
	}
	return p.parseStatement()
}
