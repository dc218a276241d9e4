package tree

import (
	"encoding/json"

	"github.com/jacoelho/jtt/internal/number"
)

// Kind identifies the variant of a Node.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// IsContainer reports whether nodes of this kind own children.
func (k Kind) IsContainer() bool {
	return k == KindArray || k == KindObject
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value *Node
}

// Node is one element of a value tree. The zero value is a null node.
type Node struct {
	kind Kind

	text string // KindString
	num  any    // KindNumber, original numeric value
	flag bool   // KindBoolean

	items  []*Node          // KindArray
	keys   []string         // KindObject, stored order
	fields map[string]*Node // KindObject

	descendants int
}

var null = &Node{kind: KindNull}

// Null returns the null node. It is also the sentinel returned when a
// single-path evaluation resolves to nothing.
func Null() *Node {
	return null
}

func String(s string) *Node {
	return &Node{kind: KindString, text: s}
}

// Number wraps a JSON number literal.
func Number(n json.Number) *Node {
	return &Node{kind: KindNumber, num: n}
}

func Bool(b bool) *Node {
	return &Node{kind: KindBoolean, flag: b}
}

// Array builds an array node owning children in order. Nil children become
// null nodes.
func Array(children ...*Node) *Node {
	n := &Node{kind: KindArray, items: make([]*Node, len(children))}
	for i, child := range children {
		if child == nil {
			child = null
		}
		n.items[i] = child
		n.descendants += child.descendants + 1
	}
	return n
}

// Object builds an object node. Keys keep the order of first appearance; a
// repeated key replaces the earlier value.
func Object(members ...Member) *Node {
	n := &Node{
		kind:   KindObject,
		keys:   make([]string, 0, len(members)),
		fields: make(map[string]*Node, len(members)),
	}
	for _, m := range members {
		child := m.Value
		if child == nil {
			child = null
		}
		if previous, exists := n.fields[m.Key]; exists {
			n.descendants -= previous.descendants + 1
		} else {
			n.keys = append(n.keys, m.Key)
		}
		n.fields[m.Key] = child
		n.descendants += child.descendants + 1
	}
	return n
}

func numberNode(v any) *Node {
	return &Node{kind: KindNumber, num: v}
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) IsNull() bool {
	return n.kind == KindNull
}

// Descendants is the number of nodes strictly beneath n.
func (n *Node) Descendants() int {
	return n.descendants
}

// Len is the number of immediate children, 0 for leaves.
func (n *Node) Len() int {
	switch n.kind {
	case KindArray:
		return len(n.items)
	case KindObject:
		return len(n.keys)
	default:
		return 0
	}
}

// Index returns the i-th array element. Negative indices count from the end.
func (n *Node) Index(i int) (*Node, bool) {
	if n.kind != KindArray {
		return nil, false
	}
	if i < 0 {
		i += len(n.items)
	}
	if i < 0 || i >= len(n.items) {
		return nil, false
	}
	return n.items[i], true
}

// Get returns the value stored under key in an object.
func (n *Node) Get(key string) (*Node, bool) {
	if n.kind != KindObject {
		return nil, false
	}
	child, ok := n.fields[key]
	return child, ok
}

// Keys returns the object keys in stored order.
func (n *Node) Keys() []string {
	if n.kind != KindObject {
		return nil
	}
	keys := make([]string, len(n.keys))
	copy(keys, n.keys)
	return keys
}

// Items returns the immediate children: array elements in index order or
// object values in stored key order.
func (n *Node) Items() []*Node {
	switch n.kind {
	case KindArray:
		items := make([]*Node, len(n.items))
		copy(items, n.items)
		return items
	case KindObject:
		items := make([]*Node, len(n.keys))
		for i, key := range n.keys {
			items[i] = n.fields[key]
		}
		return items
	default:
		return nil
	}
}

// Members returns the object key/value pairs in stored order.
func (n *Node) Members() []Member {
	if n.kind != KindObject {
		return nil
	}
	members := make([]Member, len(n.keys))
	for i, key := range n.keys {
		members[i] = Member{Key: key, Value: n.fields[key]}
	}
	return members
}

// Text returns the payload of a string node.
func (n *Node) Text() (string, bool) {
	return n.text, n.kind == KindString
}

// Float64 returns the payload of a number node.
func (n *Node) Float64() (float64, bool) {
	if n.kind != KindNumber {
		return 0, false
	}
	return number.ToFloat64(n.num)
}

// Int64 returns the payload of a number node with no fractional part.
func (n *Node) Int64() (int64, bool) {
	if n.kind != KindNumber {
		return 0, false
	}
	return number.ToInt64(n.num)
}

// Bool returns the payload of a boolean node.
func (n *Node) Bool() (bool, bool) {
	return n.flag, n.kind == KindBoolean
}

// Value unwraps n into plain Go values: map[string]any, []any, string, bool,
// nil, or the original numeric value.
func (n *Node) Value() any {
	switch n.kind {
	case KindString:
		return n.text
	case KindNumber:
		return n.num
	case KindBoolean:
		return n.flag
	case KindArray:
		out := make([]any, len(n.items))
		for i, child := range n.items {
			out[i] = child.Value()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(n.keys))
		for _, key := range n.keys {
			out[key] = n.fields[key].Value()
		}
		return out
	default:
		return nil
	}
}
