/*
File : gplc/internal/parser/build.go
*/
// build.go holds the AST-builder responsibilities a conceptually
// separate stage would otherwise own: one-time string-escape
// processing and the lowering of dot-method syntax into an ordinary
// call. They are implemented here, rather than as a second pass over
// a separate concrete tree, because the parser already builds the
// final node shape directly (see the package doc in parser.go).
package parser

import (
	"strconv"
	"strings"

	"github.com/gplang/gplc/internal/ast"
	"github.com/gplang/gplc/internal/token"
)

// unescapeString processes the recognized escape sequences (\n \r \t
// \" \\), leaving any other backslash escape verbatim. This runs
// exactly once, at AST-build time: string literals are stored in the
// AST already post-escape.
func unescapeString(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			b.WriteByte(raw[i])
			continue
		}
		switch raw[i+1] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			// Undocumented escape: retained verbatim, backslash and all.
			b.WriteByte('\\')
			b.WriteByte(raw[i+1])
		}
		i++
	}
	return b.String()
}

// parseInt32 parses a token already validated by the lexer as fitting
// in 32 bits (the INT kind is never produced otherwise, see
// lexer.readNumber).
func parseInt32(text string) int32 {
	n, _ := strconv.ParseInt(text, 10, 32)
	return int32(n)
}

// lowerMethodCall rewrites `e.m(args...)` into a call whose callee is
// `m` and whose first argument is `e` followed by `args` — the sole
// lowering of dot-method syntax; no separate method-call AST node
// exists.
func lowerMethodCall(dot token.Token, method string, receiver ast.Expr, args []ast.Expr) ast.Expr {
	allArgs := make([]ast.Expr, 0, len(args)+1)
	allArgs = append(allArgs, receiver)
	allArgs = append(allArgs, args...)
	start := receiver.Pos()
	return ast.NewCall(start.Line, start.Column, method, allArgs)
}
