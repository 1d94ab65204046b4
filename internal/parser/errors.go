/*
File : gplc/internal/parser/errors.go
*/
package parser

import "fmt"

// SyntaxError is a single parse-time diagnosis. The parser never
// panics on a malformed token — it records a SyntaxError and attempts
// to keep going so a user sees as many as possible in one run, the
// same error-collection posture the analyzer uses.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("[%d:%d] Syntax error: %s", e.Line, e.Column, e.Message)
}
