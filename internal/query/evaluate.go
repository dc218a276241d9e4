package query

import (
	"errors"
	"fmt"

	"github.com/jacoelho/jtt/internal/stack"
	"github.com/jacoelho/jtt/internal/tree"
)

// Options tunes Evaluate.
type Options struct {
	// MaxPending bounds the branches waiting to be evaluated; 0 means no limit.
	MaxPending int
}

// branch is a node together with the offset of the next operation to apply.
type branch struct {
	node   *tree.Node
	offset int
}

// Evaluate runs chain against root and returns every terminal node in
// candidate order. An empty chain yields root.
func Evaluate(root *tree.Node, chain Chain) ([]*tree.Node, error) {
	return EvaluateWithOptions(root, chain, Options{})
}

// EvaluateWithOptions is Evaluate with explicit limits. Branches are kept on
// an explicit stack, so document depth never grows the goroutine stack.
func EvaluateWithOptions(root *tree.Node, chain Chain, opts Options) ([]*tree.Node, error) {
	pending := stack.NewBounded[branch](opts.MaxPending)
	if err := pending.Push(branch{node: root}); err != nil {
		return nil, limitError(err, opts)
	}

	results := make([]*tree.Node, 0)
	for !pending.IsEmpty() {
		current, _ := pending.Pop()
		if current.offset == chain.Len() {
			results = append(results, current.node)
			continue
		}

		candidates, err := chain.ops[current.offset].Evaluate(current.node)
		if err != nil {
			return nil, err
		}

		next := make([]branch, len(candidates))
		for i, candidate := range candidates {
			next[i] = branch{node: candidate, offset: current.offset + 1}
		}
		if err := pending.PushReversed(next); err != nil {
			return nil, limitError(err, opts)
		}
	}

	return results, nil
}

func limitError(err error, opts Options) error {
	if errors.Is(err, stack.ErrOverflow) {
		return fmt.Errorf("%w: more than %d branches", ErrLimitExceeded, opts.MaxPending)
	}
	return err
}
