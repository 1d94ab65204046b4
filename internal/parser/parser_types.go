/*
File : gplc/internal/parser/parser_types.go
*/
package parser

import "github.com/gplang/gplc/internal/ast"
import "github.com/gplang/gplc/internal/token"

// parseType recognizes:
//
//	type := 'Int' | 'String' | 'Bool' | 'Void'
//	      | 'Func' '<' type (',' type)* '>'
//
// The last type inside Func<...> is the return type; arity is at
// least 1 (at least the return type is present).
func (p *Parser) parseType() ast.Type {
	switch p.cur.Kind {
	case token.INT_T:
		p.advance()
		return ast.IntType
	case token.STR_T:
		p.advance()
		return ast.StrType
	case token.BOOL_T:
		p.advance()
		return ast.BoolType
	case token.VOID_T:
		p.advance()
		return ast.VoidType
	case token.FUNC_T:
		p.advance()
		p.expect(token.LT)
		var types []ast.Type
		types = append(types, p.parseType())
		for p.cur.Kind == token.COMMA {
			p.advance()
			types = append(types, p.parseType())
		}
		p.expect(token.GT)
		ret := types[len(types)-1]
		params := types[:len(types)-1]
		return ast.NewFunc(params, ret)
	default:
		p.errorf(p.cur, "expected a type but found %q", p.cur.Literal)
		p.advance()
		return ast.VoidType
	}
}
