/*
File : gplc/internal/parser/parser_expressions.go
*/
package parser

import (
	"github.com/gplang/gplc/internal/ast"
	"github.com/gplang/gplc/internal/token"
)

// Precedence levels, lowest to highest. All binary operators are
// left-associative.
const (
	precLowest = iota
	precOr     // ||
	precAnd    // &&
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precUnary   // prefix - !
	precPostfix // call / method (' . id ( args )')
)

var binPrecedence = map[token.Kind]int{
	token.OR:      precOr,
	token.AND:     precAnd,
	token.EQ:      precEquality,
	token.NEQ:     precEquality,
	token.LT:      precRelational,
	token.GT:      precRelational,
	token.LE:      precRelational,
	token.GE:      precRelational,
	token.PLUS:    precAdditive,
	token.MINUS:   precAdditive,
	token.STAR:    precMultiplicative,
	token.SLASH:   precMultiplicative,
	token.PERCENT: precMultiplicative,
}

var binOpFor = map[token.Kind]ast.BinOp{
	token.OR:      ast.Or,
	token.AND:     ast.And,
	token.EQ:      ast.Equal,
	token.NEQ:     ast.NotEqual,
	token.LT:      ast.LessThan,
	token.GT:      ast.GreaterThan,
	token.LE:      ast.LessOrEqual,
	token.GE:      ast.GreaterOrEqual,
	token.PLUS:    ast.Add,
	token.MINUS:   ast.Subtract,
	token.STAR:    ast.Multiply,
	token.SLASH:   ast.Divide,
	token.PERCENT: ast.Modulo,
}

// parseExpression is the Pratt core: parse a unary/primary, then
// repeatedly fold in binary operators whose precedence is above min.
func (p *Parser) parseExpression(min int) ast.Expr {
	left := p.parseUnary()

	for {
		prec, ok := binPrecedence[p.cur.Kind]
		if !ok || prec <= min {
			break
		}
		opTok := p.cur
		op := binOpFor[opTok.Kind]
		p.advance()
		right := p.parseExpression(prec)
		start := left.Pos()
		left = ast.NewBinary(start.Line, start.Column, op, left, right)
	}

	return left
}

// parseUnary handles prefix `-`/`!` (right-associative) before falling
// through to postfix/primary.
func (p *Parser) parseUnary() ast.Expr {
	switch p.cur.Kind {
	case token.MINUS:
		tok := p.cur
		p.advance()
		operand := p.parseUnary()
		return ast.NewUnary(tok.Line, tok.Column, ast.Negate, operand)
	case token.NOT:
		tok := p.cur
		p.advance()
		operand := p.parseUnary()
		return ast.NewUnary(tok.Line, tok.Column, ast.Not, operand)
	default:
		return p.parsePostfix(p.parsePrimary())
	}
}

// parsePostfix handles call `e(args)` and method `e.id(args)`. A
// direct call is only legal when e is a bare identifier reference —
// anything else (a parenthesized expression, a lambda, or the result
// of a previous call) triggers the higher-order-call rejection,
// reported here as a SyntaxError since there is no name-resolution
// stage yet to classify it as semantic (see DESIGN.md).
func (p *Parser) parsePostfix(expr ast.Expr) ast.Expr {
	for {
		switch p.cur.Kind {
		case token.LPAREN:
			tok := p.cur
			start := expr.Pos()
			args := p.parseCallArgs()
			ref, ok := expr.(*ast.VarRef)
			if !ok {
				p.errorf(tok, "higher-order function calls not yet supported")
				expr = ast.NewCall(start.Line, start.Column, "", args)
				continue
			}
			expr = ast.NewCall(start.Line, start.Column, ref.Name, args)
		case token.DOT:
			tok := p.cur
			p.advance()
			nameTok := p.expect(token.IDENT)
			p.expect(token.LPAREN)
			args := p.finishCallArgs()
			expr = lowerMethodCall(tok, nameTok.Literal, expr, args)
		default:
			return expr
		}
	}
}

// parseCallArgs consumes '(' arg (',' arg)* ')'.
func (p *Parser) parseCallArgs() []ast.Expr {
	p.expect(token.LPAREN)
	return p.finishCallArgs()
}

// finishCallArgs consumes arg (',' arg)* ')' assuming '(' was already
// consumed by the caller.
func (p *Parser) finishCallArgs() []ast.Expr {
	var args []ast.Expr
	if p.cur.Kind == token.RPAREN {
		p.advance()
		return args
	}
	args = append(args, p.parseExpression(precLowest))
	for p.cur.Kind == token.COMMA {
		p.advance()
		args = append(args, p.parseExpression(precLowest))
	}
	p.expect(token.RPAREN)
	return args
}

// parsePrimary handles literal, identifier, '(' expr ')', and lambda.
// A parenthesized lambda is distinguished from a parenthesized
// expression by looking past the matching ')' for '=>'.
func (p *Parser) parsePrimary() ast.Expr {
	switch p.cur.Kind {
	case token.INT:
		return p.parseIntLit()
	case token.STRING:
		return p.parseStringLit()
	case token.TRUE:
		tok := p.cur
		p.advance()
		return ast.NewBoolLit(tok.Line, tok.Column, true)
	case token.FALSE:
		tok := p.cur
		p.advance()
		return ast.NewBoolLit(tok.Line, tok.Column, false)
	case token.IDENT:
		tok := p.cur
		p.advance()
		return ast.NewVarRef(tok.Line, tok.Column, tok.Literal)
	case token.LPAREN:
		return p.parseParenOrLambda()
	default:
		p.errorf(p.cur, "unexpected token %q in expression", p.cur.Literal)
		tok := p.cur
		p.advance()
		return ast.NewVarRef(tok.Line, tok.Column, "")
	}
}

func (p *Parser) parseIntLit() ast.Expr {
	tok := p.cur
	p.advance()
	return ast.NewIntLit(tok.Line, tok.Column, parseInt32(tok.Literal))
}

func (p *Parser) parseStringLit() ast.Expr {
	tok := p.cur
	p.advance()
	return ast.NewStringLit(tok.Line, tok.Column, unescapeString(tok.Literal))
}

// parseParenOrLambda disambiguates '(' expr ')' from a lambda's
// parameter list by scanning ahead for a matching ')' followed by
// '=>'. Both alternatives start identically, and this parser does not
// buffer an arbitrary-length token window, so looksLikeLambdaParams
// scans the upcoming tokens on a throwaway copy of the lexer before
// committing to either branch; nothing is consumed and reparsed, which
// keeps both branches single-pass.
func (p *Parser) parseParenOrLambda() ast.Expr {
	if p.looksLikeLambdaParams() {
		return p.parseLambda()
	}
	tok := p.cur
	p.expect(token.LPAREN)
	inner := p.parseExpression(precLowest)
	p.expect(token.RPAREN)
	_ = tok
	return inner
}
