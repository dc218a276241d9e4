package query

import (
	"fmt"

	"github.com/jacoelho/jtt/internal/tree"
)

// Cursor holds the node a Processor currently points at.
type Cursor struct {
	node *tree.Node
}

// Visit moves the cursor to n.
func (c *Cursor) Visit(n *tree.Node) {
	c.node = n
}

func (c *Cursor) Node() *tree.Node {
	return c.node
}

// Processor steps a single cursor through a chain.
type Processor struct {
	root   *tree.Node
	chain  Chain
	cursor Cursor
}

func NewProcessor(root *tree.Node, chain Chain) *Processor {
	p := &Processor{root: root, chain: chain}
	p.cursor.Visit(root)
	return p
}

// Execute applies the chain from the root. The first step producing no node
// stops evaluation and the result is tree.Null(). A step producing more than
// one node fails with ErrBranching.
func (p *Processor) Execute() (*tree.Node, error) {
	p.cursor.Visit(p.root)

	for _, op := range p.chain.All() {
		candidates, err := op.Evaluate(p.cursor.Node())
		if err != nil {
			return nil, err
		}
		switch len(candidates) {
		case 0:
			p.cursor.Visit(tree.Null())
			return p.cursor.Node(), nil
		case 1:
			p.cursor.Visit(candidates[0])
		default:
			return nil, fmt.Errorf("%w: %s yielded %d nodes", ErrBranching, op, len(candidates))
		}
	}

	return p.cursor.Node(), nil
}

// Cursor exposes the processor position after Execute.
func (p *Processor) Cursor() *Cursor {
	return &p.cursor
}
