package query

import (
	"errors"
	"fmt"
)

var (
	// ErrStrict indicates a strict operation met a node of the wrong shape,
	// an index out of range or a missing key.
	ErrStrict = errors.New("query: strict evaluation failed")

	// ErrEmptyChain indicates an operation was requested from an exhausted chain.
	ErrEmptyChain = errors.New("query: operation chain is empty")

	// ErrBranching indicates a single-path evaluation met an operation that
	// produced more than one node.
	ErrBranching = errors.New("query: operation produced more than one node")

	// ErrLimitExceeded indicates more branches were pending than allowed by Options.
	ErrLimitExceeded = errors.New("query: pending branch limit exceeded")
)

// Error reports a strict-mode mismatch together with the operation that
// raised it.
type Error struct {
	Op     Operation
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrStrict, e.Op, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrStrict
}

func mismatch(op Operation, format string, args ...any) error {
	return &Error{Op: op, Reason: fmt.Sprintf(format, args...)}
}
