/*
File : gplc/internal/analyzer/errors.go
*/
package analyzer

import (
	"fmt"

	"github.com/gplang/gplc/internal/ast"
)

// SemanticError is a name-resolution-category diagnosis.
type SemanticError struct {
	Pos     ast.Position
	Message string
}

func (e SemanticError) Error() string {
	return fmt.Sprintf("[%d:%d] Semantic error: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// TypeError is a type-checking-category diagnosis.
type TypeError struct {
	Pos     ast.Position
	Message string
}

func (e TypeError) Error() string {
	return fmt.Sprintf("[%d:%d] Type error: %s", e.Pos.Line, e.Pos.Column, e.Message)
}
