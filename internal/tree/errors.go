package tree

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch indicates a document value that has no node representation,
// or a document whose root is not a mapping.
var ErrTypeMismatch = errors.New("tree: type mismatch")

// TypeError describes the value that aborted a build.
type TypeError struct {
	Path   string // location of the value, "$" for the root
	Value  any
	Reason string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%v at %s: %s: %T %s", ErrTypeMismatch, e.Path, e.Reason, e.Value, truncate(fmt.Sprintf("%v", e.Value)))
}

func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}
