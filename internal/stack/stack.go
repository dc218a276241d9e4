package stack

import (
	"errors"
	"slices"
)

// ErrOverflow is returned by Push when the stack already holds Limit items.
var ErrOverflow = errors.New("stack: limit exceeded")

// Stack is a LIFO with an optional upper bound on its size.
type Stack[T any] struct {
	items []T
	limit int
}

// New returns an unbounded stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// NewBounded returns a stack refusing to grow beyond limit items.
// A limit <= 0 means unbounded.
func NewBounded[T any](limit int) *Stack[T] {
	capacity := 0
	if limit > 0 {
		capacity = min(limit, 64)
	}
	return &Stack[T]{
		items: make([]T, 0, capacity),
		limit: max(limit, 0),
	}
}

// Push adds a single item on top.
func (s *Stack[T]) Push(item T) error {
	if s.limit > 0 && len(s.items) >= s.limit {
		return ErrOverflow
	}
	s.items = append(s.items, item)
	return nil
}

// PushReversed pushes items so that items[0] ends on top and is popped first.
// Either all items are pushed or none.
func (s *Stack[T]) PushReversed(items []T) error {
	if s.limit > 0 && len(s.items)+len(items) > s.limit {
		return ErrOverflow
	}
	for i := len(items) - 1; i >= 0; i-- {
		s.items = append(s.items, items[i])
	}
	return nil
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	index := len(s.items) - 1
	item := s.items[index]
	var zero T
	s.items[index] = zero
	s.items = s.items[:index]
	return item, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Stack[T]) Size() int {
	return len(s.items)
}

// Limit reports the configured bound, 0 when unbounded.
func (s *Stack[T]) Limit() int {
	return s.limit
}

// ToSlice orders from bottom to top of the stack.
func (s *Stack[T]) ToSlice() []T {
	return slices.Clone(s.items)
}
