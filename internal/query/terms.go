package query

import (
	"slices"

	"github.com/jacoelho/jtt/internal/number"
	"github.com/jacoelho/jtt/internal/tree"
)

// Wildcard matches every immediate child of an array or object.
const Wildcard = "**"

// Match returns every node reached from root by following terms. An empty
// term list matches root itself. Terms that do not apply (a key on an array,
// an index out of range, any term on a leaf) contribute no results.
func Match(root *tree.Node, terms []string) []*tree.Node {
	results := make([]*tree.Node, 0)
	root.Accept(&termVisitor{terms: terms, results: &results})
	return results
}

// Singular reports whether terms can match at most one node.
func Singular(terms []string) bool {
	return !slices.Contains(terms, Wildcard)
}

type termVisitor struct {
	terms   []string
	results *[]*tree.Node
}

func (v *termVisitor) descend(n *tree.Node, rest []string) {
	n.Accept(&termVisitor{terms: rest, results: v.results})
}

func (v *termVisitor) leaf(n *tree.Node) {
	if len(v.terms) == 0 {
		*v.results = append(*v.results, n)
	}
}

func (v *termVisitor) VisitNull(n *tree.Node)    { v.leaf(n) }
func (v *termVisitor) VisitString(n *tree.Node)  { v.leaf(n) }
func (v *termVisitor) VisitNumber(n *tree.Node)  { v.leaf(n) }
func (v *termVisitor) VisitBoolean(n *tree.Node) { v.leaf(n) }

func (v *termVisitor) VisitArray(n *tree.Node) {
	if len(v.terms) == 0 {
		*v.results = append(*v.results, n)
		return
	}

	term, rest := v.terms[0], v.terms[1:]
	if index, ok := number.ParseIndex(term); ok {
		if index < n.Len() {
			child, _ := n.Index(index)
			v.descend(child, rest)
		}
		return
	}
	if term == Wildcard {
		for _, child := range n.Items() {
			v.descend(child, rest)
		}
	}
}

func (v *termVisitor) VisitObject(n *tree.Node) {
	if len(v.terms) == 0 {
		*v.results = append(*v.results, n)
		return
	}

	term, rest := v.terms[0], v.terms[1:]
	if term == Wildcard {
		for _, child := range n.Items() {
			v.descend(child, rest)
		}
		return
	}
	if child, ok := n.Get(term); ok {
		v.descend(child, rest)
	}
}
