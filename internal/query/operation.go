package query

import (
	"encoding/json"
	"strconv"

	"github.com/jacoelho/jtt/internal/tree"
)

// Operation is one step of a Chain. Evaluate returns the candidates the step
// produces from n, in child order.
type Operation interface {
	Evaluate(n *tree.Node) ([]*tree.Node, error)
	IsStrict() bool
	// String renders the step as a JSONPath segment.
	String() string
}

// GetAll expands an array into its elements or an object into its values.
type GetAll struct {
	Strict bool
}

func (op GetAll) Evaluate(n *tree.Node) ([]*tree.Node, error) {
	if n.Kind().IsContainer() {
		return n.Items(), nil
	}
	if op.Strict {
		return nil, mismatch(op, "cannot expand %s node", n.Kind())
	}
	return nil, nil
}

func (op GetAll) IsStrict() bool { return op.Strict }

func (op GetAll) String() string { return "[*]" }

// FilterIndex selects one array element. Negative indices count from the
// end, so the valid range is -len <= Index < len.
type FilterIndex struct {
	Index  int
	Strict bool
}

func (op FilterIndex) Evaluate(n *tree.Node) ([]*tree.Node, error) {
	if n.Kind() != tree.KindArray {
		if op.Strict {
			return nil, mismatch(op, "expected array, got %s", n.Kind())
		}
		return nil, nil
	}
	child, ok := n.Index(op.Index)
	if !ok {
		if op.Strict {
			return nil, mismatch(op, "index %d out of range for array of length %d", op.Index, n.Len())
		}
		return nil, nil
	}
	return []*tree.Node{child}, nil
}

func (op FilterIndex) IsStrict() bool { return op.Strict }

func (op FilterIndex) String() string { return "[" + strconv.Itoa(op.Index) + "]" }

// FilterKey selects the value stored under Key in an object.
type FilterKey struct {
	Key    string
	Strict bool
}

// KeySelect is the non-strict key step used by plain dotted paths.
func KeySelect(key string) FilterKey {
	return FilterKey{Key: key}
}

func (op FilterKey) Evaluate(n *tree.Node) ([]*tree.Node, error) {
	if n.Kind() != tree.KindObject {
		if op.Strict {
			return nil, mismatch(op, "expected object, got %s", n.Kind())
		}
		return nil, nil
	}
	child, ok := n.Get(op.Key)
	if !ok {
		if op.Strict {
			return nil, mismatch(op, "key %q not found", op.Key)
		}
		return nil, nil
	}
	return []*tree.Node{child}, nil
}

func (op FilterKey) IsStrict() bool { return op.Strict }

func (op FilterKey) String() string {
	if isShorthandName(op.Key) {
		return "." + op.Key
	}
	quoted, _ := json.Marshal(op.Key)
	return "[" + string(quoted) + "]"
}

// isShorthandName reports whether key can be written as .key in JSONPath.
func isShorthandName(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= 0x80:
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
