package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jacoelho/jtt/internal/tree"
)

// DefaultMaxDepth matches the nesting limit of encoding/json.
const DefaultMaxDepth = 10000

// jsonDecoder builds nodes straight from the token stream so object keys keep
// their document order.
type jsonDecoder struct {
	dec      *json.Decoder
	maxDepth int
}

// DecodeJSON decodes a single JSON document whose root is an object.
func DecodeJSON(r io.Reader) (*tree.Node, error) {
	return decodeJSON(r, DefaultMaxDepth)
}

func decodeJSON(r io.Reader, maxDepth int) (*tree.Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber() // keep numbers exactly as written

	d := &jsonDecoder{dec: dec, maxDepth: maxDepth}

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &tree.TypeError{Path: "$", Value: describeToken(tok), Reason: "document root must be a mapping"}
	}

	root, err := d.decodeObject("$", 1)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after document", ErrMalformed)
	}
	return root, nil
}

func (d *jsonDecoder) decodeValue(tok json.Token, path string, depth int) (*tree.Node, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return d.decodeObject(path, depth+1)
		case '[':
			return d.decodeArray(path, depth+1)
		default:
			return nil, fmt.Errorf("%w: unexpected delimiter %q at %s", ErrMalformed, rune(v), path)
		}
	case string:
		return tree.String(v), nil
	case json.Number:
		return tree.Number(v), nil
	case bool:
		return tree.Bool(v), nil
	case nil:
		return tree.Null(), nil
	default:
		return nil, &tree.TypeError{Path: path, Value: v, Reason: "unsupported value"}
	}
}

func (d *jsonDecoder) decodeObject(path string, depth int) (*tree.Node, error) {
	if depth > d.maxDepth {
		return nil, fmt.Errorf("%w: exceeded %d levels at %s", ErrTooDeep, d.maxDepth, path)
	}

	var members []tree.Member
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return tree.Object(members...), nil
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key at %s is not a string", ErrMalformed, path)
		}

		valueToken, err := d.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		child, err := d.decodeValue(valueToken, path+"."+key, depth)
		if err != nil {
			return nil, err
		}
		members = append(members, tree.Member{Key: key, Value: child})
	}
}

func (d *jsonDecoder) decodeArray(path string, depth int) (*tree.Node, error) {
	if depth > d.maxDepth {
		return nil, fmt.Errorf("%w: exceeded %d levels at %s", ErrTooDeep, d.maxDepth, path)
	}

	var children []*tree.Node
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return tree.Array(children...), nil
		}

		child, err := d.decodeValue(tok, fmt.Sprintf("%s[%d]", path, len(children)), depth)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

func describeToken(tok json.Token) any {
	if delim, ok := tok.(json.Delim); ok {
		if delim == '[' {
			return []any{}
		}
		return string(delim)
	}
	return tok
}

// DecodeJSONBytes is DecodeJSON over an in-memory document.
func DecodeJSONBytes(data []byte) (*tree.Node, error) {
	return DecodeJSON(bytes.NewReader(data))
}
