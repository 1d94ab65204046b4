/*
File : gplc/internal/parser/parser_statements.go
*/
package parser

import (
	"github.com/gplang/gplc/internal/ast"
	"github.com/gplang/gplc/internal/token"
)

// parseStatement := varDecl | assignStmt | ifStmt | returnStmt
//
//	| assertStmt | exprStmt | block
func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Kind {
	case token.LET:
		return p.parseVarDecl()
	case token.IF:
		return p.parseIf()
	case token.RETURN:
		return p.parseReturn()
	case token.ASSERT:
		return p.parseAssert()
	case token.LBRACE:
		return p.parseBlock()
	case token.IDENT:
		if p.next.Kind == token.ASSIGN {
			return p.parseAssignStmt()
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseVarDecl := 'let' ID (':' type)? ('=' expr)? ';'
// At least one of ':' type or '=' expr must be present; a declaration
// with neither is a syntax error here (the AST still records what
// could be parsed so later declarations keep being checked).
func (p *Parser) parseVarDecl() ast.Stmt {
	tok := p.expect(token.LET)
	nameTok := p.expect(token.IDENT)

	var typ *ast.Type
	if p.cur.Kind == token.COLON {
		p.advance()
		t := p.parseType()
		typ = &t
	}

	var init ast.Expr
	if p.cur.Kind == token.ASSIGN {
		p.advance()
		init = p.parseExpression(precLowest)
	}

	if typ == nil && init == nil {
		p.errorf(tok, "variable declaration for %q needs a type annotation or an initializer", nameTok.Literal)
	}

	p.expect(token.SEMI)
	return ast.NewVarDecl(tok.Line, tok.Column, nameTok.Literal, typ, init)
}

// parseAssignStmt := ID '=' expr ';'
func (p *Parser) parseAssignStmt() ast.Stmt {
	nameTok := p.cur
	p.advance()
	p.expect(token.ASSIGN)
	value := p.parseExpression(precLowest)
	p.expect(token.SEMI)
	return ast.NewAssign(nameTok.Line, nameTok.Column, nameTok.Literal, value)
}

// parseIf := 'if' '(' expr ')' block ('else' block)?
func (p *Parser) parseIf() ast.Stmt {
	tok := p.expect(token.IF)
	p.expect(token.LPAREN)
	cond := p.parseExpression(precLowest)
	p.expect(token.RPAREN)
	then := p.parseBlock()

	var els *ast.Block
	if p.cur.Kind == token.ELSE {
		p.advance()
		els = p.parseBlock()
	}
	return ast.NewIf(tok.Line, tok.Column, cond, then, els)
}

// parseReturn := 'return' expr? ';'
func (p *Parser) parseReturn() ast.Stmt {
	tok := p.expect(token.RETURN)
	var value ast.Expr
	if p.cur.Kind != token.SEMI {
		value = p.parseExpression(precLowest)
	}
	p.expect(token.SEMI)
	return ast.NewReturn(tok.Line, tok.Column, value)
}

// parseAssert := 'assert' '(' expr (',' STRING)? ')' ';'
func (p *Parser) parseAssert() ast.Stmt {
	tok := p.expect(token.ASSERT)
	p.expect(token.LPAREN)
	cond := p.parseExpression(precLowest)

	var msg *string
	if p.cur.Kind == token.COMMA {
		p.advance()
		msgTok := p.expect(token.STRING)
		unescaped := unescapeString(msgTok.Literal)
		msg = &unescaped
	}
	p.expect(token.RPAREN)
	p.expect(token.SEMI)
	return ast.NewAssert(tok.Line, tok.Column, cond, msg)
}

// parseExprStmt := expr ';'
func (p *Parser) parseExprStmt() ast.Stmt {
	tok := p.cur
	x := p.parseExpression(precLowest)
	p.expect(token.SEMI)
	return ast.NewExprStmt(tok.Line, tok.Column, x)
}
