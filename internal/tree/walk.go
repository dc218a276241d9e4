package tree

import "github.com/jacoelho/jtt/internal/stack"

// WalkFunc is called for every node reached by Walk. Returning false skips
// the children of n.
type WalkFunc func(n *Node, depth int) bool

type walkFrame struct {
	node  *Node
	depth int
}

// Walk visits root and its descendants depth-first in pre-order, children in
// index or stored key order. The root has depth 0.
func Walk(root *Node, fn WalkFunc) {
	pending := stack.New[walkFrame]()
	_ = pending.Push(walkFrame{node: root})

	for !pending.IsEmpty() {
		frame, _ := pending.Pop()
		if !fn(frame.node, frame.depth) || !frame.node.kind.IsContainer() {
			continue
		}
		children := frame.node.Items()
		frames := make([]walkFrame, len(children))
		for i, child := range children {
			frames[i] = walkFrame{node: child, depth: frame.depth + 1}
		}
		_ = pending.PushReversed(frames)
	}
}

// Stats summarises the shape of a tree.
type Stats struct {
	Nodes    int
	MaxDepth int
	Kinds    map[Kind]int
}

// Summarize counts the nodes of root by kind.
func Summarize(root *Node) Stats {
	stats := Stats{Kinds: make(map[Kind]int)}
	Walk(root, func(n *Node, depth int) bool {
		stats.Nodes++
		stats.Kinds[n.kind]++
		stats.MaxDepth = max(stats.MaxDepth, depth)
		return true
	})
	return stats
}
