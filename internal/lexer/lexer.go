/*
File : gplc/internal/lexer/lexer.go
*/
// Package lexer converts GP-λ source text into a stream of tokens.
//
// It is a byte-at-a-time scanner carrying its own line/column
// counters, with NextToken as the sole entry point and a peek/advance
// pair as its only primitives. Malformed input is never silently
// folded into EOF — every unrecognized construct is recorded as a
// LexError with its source position so the driver can report it.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gplang/gplc/internal/token"
)

// LexError is a single malformed-construct diagnosis from the lexer.
type LexError struct {
	Line    int
	Column  int
	Message string
}

// Lexer scans GP-λ source text one byte at a time.
type Lexer struct {
	src       string
	pos       int // index of ch within src
	line      int
	lineStart int // index of the first byte of the current line
	ch        byte

	Errors []LexError
}

// New creates a Lexer positioned at the start of src. A leading UTF-8
// byte-order mark, if present, is skipped.
func New(src string) *Lexer {
	if strings.HasPrefix(src, "\xEF\xBB\xBF") {
		src = src[3:]
	}
	l := &Lexer{src: src, line: 1}
	if len(src) > 0 {
		l.ch = src[0]
	}
	return l
}

func (l *Lexer) column() int { return l.pos - l.lineStart }

func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

func (l *Lexer) advance() {
	l.pos++
	if l.pos >= len(l.src) {
		l.ch = 0
		return
	}
	l.ch = l.src[l.pos]
}

func (l *Lexer) errorf(line, col int, format string, args ...interface{}) {
	l.Errors = append(l.Errors, LexError{Line: line, Column: col, Message: fmt.Sprintf(format, args...)})
}

// NextToken scans and returns the next token, skipping whitespace and
// comments first. At end of input it returns an EOF token forever.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	line, col := l.line, l.column()

	switch l.ch {
	case 0:
		return token.New(token.EOF, "", line, col)
	case '+':
		l.advance()
		return token.New(token.PLUS, "+", line, col)
	case '-':
		if l.peek() == '>' {
			l.advance()
			l.advance()
			return token.New(token.ARROW, "->", line, col)
		}
		l.advance()
		return token.New(token.MINUS, "-", line, col)
	case '*':
		l.advance()
		return token.New(token.STAR, "*", line, col)
	case '/':
		l.advance()
		return token.New(token.SLASH, "/", line, col)
	case '%':
		l.advance()
		return token.New(token.PERCENT, "%", line, col)
	case '=':
		if l.peek() == '=' {
			l.advance()
			l.advance()
			return token.New(token.EQ, "==", line, col)
		}
		if l.peek() == '>' {
			l.advance()
			l.advance()
			return token.New(token.FATARROW, "=>", line, col)
		}
		l.advance()
		return token.New(token.ASSIGN, "=", line, col)
	case '!':
		if l.peek() == '=' {
			l.advance()
			l.advance()
			return token.New(token.NEQ, "!=", line, col)
		}
		l.advance()
		return token.New(token.NOT, "!", line, col)
	case '<':
		if l.peek() == '=' {
			l.advance()
			l.advance()
			return token.New(token.LE, "<=", line, col)
		}
		l.advance()
		return token.New(token.LT, "<", line, col)
	case '>':
		if l.peek() == '=' {
			l.advance()
			l.advance()
			return token.New(token.GE, ">=", line, col)
		}
		l.advance()
		return token.New(token.GT, ">", line, col)
	case '&':
		if l.peek() == '&' {
			l.advance()
			l.advance()
			return token.New(token.AND, "&&", line, col)
		}
		l.errorf(line, col, "unexpected character '&'")
		l.advance()
		return token.New(token.INVALID, "&", line, col)
	case '|':
		if l.peek() == '|' {
			l.advance()
			l.advance()
			return token.New(token.OR, "||", line, col)
		}
		l.errorf(line, col, "unexpected character '|'")
		l.advance()
		return token.New(token.INVALID, "|", line, col)
	case '(':
		l.advance()
		return token.New(token.LPAREN, "(", line, col)
	case ')':
		l.advance()
		return token.New(token.RPAREN, ")", line, col)
	case '{':
		l.advance()
		return token.New(token.LBRACE, "{", line, col)
	case '}':
		l.advance()
		return token.New(token.RBRACE, "}", line, col)
	case ';':
		l.advance()
		return token.New(token.SEMI, ";", line, col)
	case ',':
		l.advance()
		return token.New(token.COMMA, ",", line, col)
	case ':':
		l.advance()
		return token.New(token.COLON, ":", line, col)
	case '.':
		l.advance()
		return token.New(token.DOT, ".", line, col)
	case '"':
		return l.readString(line, col)
	default:
		if isDigit(l.ch) {
			return l.readNumber(line, col)
		}
		if isIdentStart(l.ch) {
			return l.readIdentifier(line, col)
		}
		l.errorf(line, col, "unexpected character %q", string(l.ch))
		bad := string(l.ch)
		l.advance()
		return token.New(token.INVALID, bad, line, col)
	}
}

func (l *Lexer) newline() {
	l.line++
	l.lineStart = l.pos + 1
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == '\n':
			l.newline()
			l.advance()
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r':
			l.advance()
		case l.ch == '/' && l.peek() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.advance()
			}
		case l.ch == '/' && l.peek() == '*':
			l.advance()
			l.advance()
			for {
				if l.ch == 0 {
					break
				}
				if l.ch == '*' && l.peek() == '/' {
					l.advance()
					l.advance()
					break
				}
				if l.ch == '\n' {
					l.newline()
				}
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readNumber(line, col int) token.Token {
	start := l.pos
	for isDigit(l.ch) {
		l.advance()
	}
	text := l.src[start:l.pos]
	if _, err := strconv.ParseInt(text, 10, 32); err != nil {
		l.errorf(line, col, "integer literal %q overflows 32-bit signed range", text)
		return token.New(token.INVALID, text, line, col)
	}
	return token.New(token.INT, text, line, col)
}

func (l *Lexer) readIdentifier(line, col int) token.Token {
	start := l.pos
	for isIdentStart(l.ch) || isDigit(l.ch) {
		l.advance()
	}
	text := l.src[start:l.pos]
	return token.New(token.LookupIdent(text), text, line, col)
}

// readString scans a double-quoted string literal, retaining escape
// sequences verbatim in the Literal field — escape processing is the
// one-time responsibility of the AST builder.
func (l *Lexer) readString(line, col int) token.Token {
	l.advance() // consume opening quote
	var b strings.Builder
	for {
		if l.ch == 0 {
			l.errorf(line, col, "unterminated string literal")
			return token.New(token.INVALID, b.String(), line, col)
		}
		if l.ch == '"' {
			l.advance()
			return token.New(token.STRING, b.String(), line, col)
		}
		if l.ch == '\n' {
			l.errorf(line, col, "unescaped newline in string literal")
			return token.New(token.INVALID, b.String(), line, col)
		}
		if l.ch == '\\' {
			b.WriteByte(l.ch)
			l.advance()
			if l.ch == 0 {
				l.errorf(line, col, "unterminated string literal")
				return token.New(token.INVALID, b.String(), line, col)
			}
			b.WriteByte(l.ch)
			l.advance()
			continue
		}
		b.WriteByte(l.ch)
		l.advance()
	}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
