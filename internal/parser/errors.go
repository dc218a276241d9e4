package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery indicates an empty query expression.
	ErrEmptyQuery = errors.New("query string cannot be empty")

	// ErrInvalidStart indicates an expression not starting with a word
	// character, a quote or the ** wildcard.
	ErrInvalidStart = errors.New("query string must start with a word character or a quote character")

	// ErrSyntax indicates a malformed query expression.
	ErrSyntax = errors.New("query syntax error")
)

func syntaxError(pos int, format string, args ...any) error {
	return fmt.Errorf("%w at position %d: %s", ErrSyntax, pos, fmt.Sprintf(format, args...))
}
