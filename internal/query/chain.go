package query

import (
	"iter"
	"slices"
	"strings"

	"github.com/jacoelho/jtt/internal/number"
)

// Chain is an immutable ordered sequence of operations. Every method that
// changes the sequence returns a new Chain; branches evaluating the same
// chain never observe each other.
type Chain struct {
	ops []Operation
}

func NewChain(ops ...Operation) Chain {
	return Chain{ops: slices.Clone(ops)}
}

// TermsChain translates a literal term list: "**" becomes GetAll, a
// digits-only term FilterIndex and anything else FilterKey.
func TermsChain(terms []string, strict bool) Chain {
	ops := make([]Operation, len(terms))
	for i, term := range terms {
		if term == Wildcard {
			ops[i] = GetAll{Strict: strict}
			continue
		}
		if index, ok := number.ParseIndex(term); ok {
			ops[i] = FilterIndex{Index: index, Strict: strict}
			continue
		}
		ops[i] = FilterKey{Key: term, Strict: strict}
	}
	return Chain{ops: ops}
}

// Append returns a chain with ops added at the tail.
func (c Chain) Append(ops ...Operation) Chain {
	return Chain{ops: slices.Concat(c.ops, ops)}
}

func (c Chain) Len() int {
	return len(c.ops)
}

// HasNext reports whether the chain holds at least one operation.
func (c Chain) HasNext() bool {
	return len(c.ops) > 0
}

// Pop returns the head operation and the chain that follows it.
func (c Chain) Pop() (Operation, Chain, error) {
	if len(c.ops) == 0 {
		return nil, c, ErrEmptyChain
	}
	return c.ops[0], Chain{ops: c.ops[1:len(c.ops):len(c.ops)]}, nil
}

// All iterates the operations from head to tail.
func (c Chain) All() iter.Seq2[int, Operation] {
	return slices.All(c.ops)
}

// Singular reports whether the chain can resolve to at most one node.
func (c Chain) Singular() bool {
	for _, op := range c.ops {
		if _, ok := op.(GetAll); ok {
			return false
		}
	}
	return true
}

// String renders the chain as a JSONPath expression rooted at $.
func (c Chain) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, op := range c.ops {
		b.WriteString(op.String())
	}
	return b.String()
}
