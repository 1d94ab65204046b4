/*
File : gplc/internal/parser/parser_functions.go
*/
package parser

import (
	"github.com/gplang/gplc/internal/ast"
	"github.com/gplang/gplc/internal/token"
)

// parseFunctionDecl := 'func' ID '(' paramList? ')' ('->' type)? block
func (p *Parser) parseFunctionDecl() ast.Stmt {
	tok := p.cur
	p.expect(token.FUNC)
	nameTok := p.expect(token.IDENT)
	p.expect(token.LPAREN)
	params := p.parseParamList()
	p.expect(token.RPAREN)

	var ret *ast.Type
	if p.cur.Kind == token.ARROW {
		p.advance()
		t := p.parseType()
		ret = &t
	}

	body := p.parseBlock()
	return ast.NewFunctionDecl(tok.Line, tok.Column, nameTok.Literal, params, ret, body)
}

// parseParamList := param (',' param)*, param := ID ':' type
func (p *Parser) parseParamList() []ast.Parameter {
	var params []ast.Parameter
	if p.cur.Kind == token.RPAREN {
		return params
	}
	params = append(params, p.parseParam())
	for p.cur.Kind == token.COMMA {
		p.advance()
		params = append(params, p.parseParam())
	}
	return params
}

func (p *Parser) parseParam() ast.Parameter {
	nameTok := p.expect(token.IDENT)
	p.expect(token.COLON)
	typ := p.parseType()
	return ast.Parameter{Name: nameTok.Literal, Type: typ}
}

// parseBlock := '{' statement* '}'
func (p *Parser) parseBlock() *ast.Block {
	tok := p.expect(token.LBRACE)
	var stmts []ast.Stmt
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(token.RBRACE)
	return ast.NewBlock(tok.Line, tok.Column, stmts)
}

// looksLikeLambdaParams scans ahead, without consuming any real
// parser state, for a matching ')' immediately followed by '=>'. Both
// a lambda and a parenthesized expression begin with '(', so this is
// the only reliable way to disambiguate them with arbitrary-length
// parameter lists. The scan works over a throwaway copy of the lexer
// (lexer.Lexer holds no pointers to shared mutable state beyond its
// own fields, so copying it by value is a correct, cheap snapshot)
// and never touches p.lex, p.cur, or p.next.
func (p *Parser) looksLikeLambdaParams() bool {
	depth := 1 // p.cur is the opening '(' already
	lx := *p.lex
	tok := p.next
	for {
		switch tok.Kind {
		case token.EOF:
			return false
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return lx.NextToken().Kind == token.FATARROW
			}
		}
		tok = lx.NextToken()
	}
}

// parseLambda := '(' paramList? ')' '=>' (expr | block)
func (p *Parser) parseLambda() ast.Expr {
	tok := p.cur
	p.expect(token.LPAREN)
	params := p.parseParamList()
	p.expect(token.RPAREN)
	p.expect(token.FATARROW)

	if p.cur.Kind == token.LBRACE {
		body := p.parseBlock()
		return ast.NewLambda(tok.Line, tok.Column, params, nil, body)
	}
	body := p.parseExpression(precLowest)
	return ast.NewLambda(tok.Line, tok.Column, params, body, nil)
}
