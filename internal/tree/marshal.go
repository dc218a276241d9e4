package tree

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/jtt/internal/number"
)

const displayLimit = 64

// MarshalJSON encodes n with object keys in stored order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) appendJSON(buf *bytes.Buffer) error {
	switch n.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBoolean:
		if n.flag {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindString:
		return writeJSON(buf, n.text)
	case KindNumber:
		if raw, ok := n.num.(json.Number); ok {
			buf.WriteString(raw.String())
			return nil
		}
		return writeJSON(buf, n.num)
	case KindArray:
		buf.WriteByte('[')
		for i, child := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := child.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, key := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := n.fields[key].appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(encoded)
	return nil
}

// MarshalYAML keeps object keys in stored order.
func (n *Node) MarshalYAML() (any, error) {
	return n.yamlValue(), nil
}

func (n *Node) yamlValue() any {
	switch n.kind {
	case KindNumber:
		raw, ok := n.num.(json.Number)
		if !ok {
			return n.num
		}
		if i, err := raw.Int64(); err == nil {
			return i
		}
		if f, ok := number.ToFloat64(raw); ok {
			return f
		}
		return raw.String()
	case KindArray:
		out := make([]any, len(n.items))
		for i, child := range n.items {
			out[i] = child.yamlValue()
		}
		return out
	case KindObject:
		out := make(yaml.MapSlice, len(n.keys))
		for i, key := range n.keys {
			out[i] = yaml.MapItem{Key: key, Value: n.fields[key].yamlValue()}
		}
		return out
	default:
		return n.Value()
	}
}

// String is a short display form, truncated for large containers.
func (n *Node) String() string {
	switch n.kind {
	case KindNumber:
		return number.Format(n.num)
	case KindArray, KindObject:
		encoded, err := n.MarshalJSON()
		if err != nil {
			return fmt.Sprintf("%s(%d)", n.kind, n.Len())
		}
		return truncate(string(encoded))
	default:
		encoded, _ := n.MarshalJSON()
		return truncate(string(encoded))
	}
}

func truncate(s string) string {
	if len(s) <= displayLimit {
		return s
	}
	return s[:displayLimit-3] + "..."
}
