package tree

import (
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/jtt/internal/number"
)

// Build converts a decoded document into a tree. The root must be a mapping
// (map[string]any or an ordered yaml.MapSlice); nested values are classified
// by their dynamic type. Any unsupported value aborts the build with a
// *TypeError wrapping ErrTypeMismatch.
func Build(doc any) (*Node, error) {
	switch doc.(type) {
	case map[string]any, yaml.MapSlice:
		return convert(doc, "$")
	default:
		return nil, &TypeError{Path: "$", Value: doc, Reason: "document root must be a mapping"}
	}
}

// Convert classifies any supported value, including scalars and sequences,
// as a tree.
func Convert(v any) (*Node, error) {
	return convert(v, "$")
}

func convert(v any, path string) (*Node, error) {
	switch current := v.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(current), nil
	case bool:
		return Bool(current), nil
	case map[string]any:
		return convertMap(current, path)
	case yaml.MapSlice:
		return convertMapSlice(current, path)
	case []any:
		children := make([]*Node, len(current))
		for i, item := range current {
			child, err := convert(item, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return Array(children...), nil
	default:
		if number.IsNumber(v) {
			return numberNode(v), nil
		}
		return nil, &TypeError{Path: path, Value: v, Reason: "unsupported value"}
	}
}

// convertMap sorts keys since Go maps carry no order.
func convertMap(m map[string]any, path string) (*Node, error) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	members := make([]Member, len(keys))
	for i, key := range keys {
		child, err := convert(m[key], keyPath(path, key))
		if err != nil {
			return nil, err
		}
		members[i] = Member{Key: key, Value: child}
	}
	return Object(members...), nil
}

func convertMapSlice(m yaml.MapSlice, path string) (*Node, error) {
	members := make([]Member, len(m))
	for i, item := range m {
		key, ok := item.Key.(string)
		if !ok {
			return nil, &TypeError{Path: path, Value: item.Key, Reason: "mapping key must be a string"}
		}
		child, err := convert(item.Value, keyPath(path, key))
		if err != nil {
			return nil, err
		}
		members[i] = Member{Key: key, Value: child}
	}
	return Object(members...), nil
}

func keyPath(base, key string) string {
	if isIdentifier(key) {
		return base + "." + key
	}
	return base + "[" + strconv.Quote(key) + "]"
}

func indexPath(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
