package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/jtt/internal/tree"
)

// DecodeYAML decodes the first YAML document of r. Mappings are decoded in
// order, so object keys keep the order they were written in.
func DecodeYAML(r io.Reader) (*tree.Node, error) {
	var doc any
	dec := yaml.NewDecoder(r, yaml.UseOrderedMap())
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return tree.Build(doc)
}

// DecodeYAMLBytes is DecodeYAML over an in-memory document.
func DecodeYAMLBytes(data []byte) (*tree.Node, error) {
	return DecodeYAML(bytes.NewReader(data))
}
