package query

import "github.com/jacoelho/jtt/internal/tree"

// Query builds a chain fluently against a root node. Query values are
// immutable; each method returns an extended copy.
type Query struct {
	root   *tree.Node
	chain  Chain
	strict bool
	opts   Options
}

func From(root *tree.Node) Query {
	return Query{root: root}
}

// Strict sets the strict flag for operations added afterwards.
func (q Query) Strict(strict bool) Query {
	q.strict = strict
	return q
}

// Limit bounds pending branches during Collect.
func (q Query) Limit(maxPending int) Query {
	q.opts.MaxPending = maxPending
	return q
}

func (q Query) GetAll() Query {
	return q.Then(GetAll{Strict: q.strict})
}

func (q Query) FilterKey(key string) Query {
	return q.Then(FilterKey{Key: key, Strict: q.strict})
}

func (q Query) FilterIndex(index int) Query {
	return q.Then(FilterIndex{Index: index, Strict: q.strict})
}

// Then appends arbitrary operations.
func (q Query) Then(ops ...Operation) Query {
	q.chain = q.chain.Append(ops...)
	return q
}

func (q Query) Chain() Chain {
	return q.chain
}

// Collect evaluates the built chain with fan-out.
func (q Query) Collect() ([]*tree.Node, error) {
	return EvaluateWithOptions(q.root, q.chain, q.opts)
}

// First evaluates the built chain along a single path.
func (q Query) First() (*tree.Node, error) {
	return NewProcessor(q.root, q.chain).Execute()
}
