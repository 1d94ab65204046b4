/*
File : gplc/internal/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gplang/gplc/internal/token"
)

// represents one NextToken-sequence test case.
type tokenCase struct {
	Input    string
	Expected []token.Kind
}

func allKinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	l := New(src)
	var kinds []token.Kind
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestLexer_Operators(t *testing.T) {
	cases := []tokenCase{
		{
			Input:    `1 + 2 - 3`,
			Expected: []token.Kind{token.INT, token.PLUS, token.INT, token.MINUS, token.INT},
		},
		{
			Input:    `a == b != c`,
			Expected: []token.Kind{token.IDENT, token.EQ, token.IDENT, token.NEQ, token.IDENT},
		},
		{
			Input:    `a <= b >= c && d || !e`,
			Expected: []token.Kind{token.IDENT, token.LE, token.IDENT, token.GE, token.IDENT, token.AND, token.IDENT, token.OR, token.NOT, token.IDENT},
		},
		{
			Input:    `(x: Int) -> Int => x`,
			Expected: []token.Kind{token.LPAREN, token.IDENT, token.COLON, token.INT_T, token.RPAREN, token.ARROW, token.INT_T, token.FATARROW, token.IDENT},
		},
	}
	for _, c := range cases {
		assert.Equal(t, c.Expected, allKinds(t, c.Input), c.Input)
	}
}

func TestLexer_Keywords(t *testing.T) {
	kinds := allKinds(t, `func let if else return assert true false Int String Bool Void Func`)
	assert.Equal(t, []token.Kind{
		token.FUNC, token.LET, token.IF, token.ELSE, token.RETURN, token.ASSERT,
		token.TRUE, token.FALSE, token.INT_T, token.STR_T, token.BOOL_T, token.VOID_T, token.FUNC_T,
	}, kinds)
}

func TestLexer_CommentsAndWhitespaceAreSkipped(t *testing.T) {
	kinds := allKinds(t, "1 // a line comment\n+ /* a\nblock comment */ 2")
	assert.Equal(t, []token.Kind{token.INT, token.PLUS, token.INT}, kinds)
}

func TestLexer_StringLiteralRetainsEscapesVerbatim(t *testing.T) {
	l := New(`"hello\nworld"`)
	tok := l.NextToken()
	assert.Equal(t, token.STRING, tok.Kind)
	assert.Equal(t, `hello\nworld`, tok.Literal)
	assert.Empty(t, l.Errors)
}

func TestLexer_UnescapedNewlineInStringIsLexError(t *testing.T) {
	l := New("\"abc\ndef\"")
	l.NextToken()
	assert.Len(t, l.Errors, 1)
}

func TestLexer_IntegerOverflowIsLexError(t *testing.T) {
	l := New(`99999999999999999999`)
	tok := l.NextToken()
	assert.Equal(t, token.INVALID, tok.Kind)
	assert.Len(t, l.Errors, 1)
}

func TestLexer_LineAndColumnTracking(t *testing.T) {
	l := New("let x = 1;\nlet y = 2;")
	for i := 0; i < 5; i++ {
		l.NextToken()
	}
	tok := l.NextToken() // "let" on line 2
	assert.Equal(t, token.LET, tok.Kind)
	assert.Equal(t, 2, tok.Line)
	assert.Equal(t, 0, tok.Column)
}

func TestLexer_UnrecognizedCharacterIsLexError(t *testing.T) {
	l := New(`@`)
	tok := l.NextToken()
	assert.Equal(t, token.INVALID, tok.Kind)
	assert.Len(t, l.Errors, 1)
	assert.Equal(t, 1, l.Errors[0].Line)
	assert.Equal(t, 0, l.Errors[0].Column)
}
