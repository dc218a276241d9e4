// Package document decodes JSON and YAML input into trees.
//
// Decoding is the only step that can fail on input shape: once a document is
// decoded, every value already has a node representation.
package document

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/jtt/internal/tree"
)

// Decode reads a whole document from r. FormatAuto sniffs the content.
func Decode(r io.Reader, format Format) (*tree.Node, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(r)
	case FormatYAML:
		return DecodeYAML(r)
	case FormatAuto, "":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}
		return decodeBytes(data, sniff(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ReadFile decodes the document stored at path. FormatAuto uses the file
// extension first and falls back to sniffing the content.
func ReadFile(path string, format Format) (*tree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	if format == FormatAuto || format == "" {
		format = FormatFromPath(path)
	}
	if format == FormatAuto {
		format = sniff(data)
	}

	root, err := decodeBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

func decodeBytes(data []byte, format Format) (*tree.Node, error) {
	if format == FormatYAML {
		return DecodeYAML(bytes.NewReader(data))
	}
	return DecodeJSON(bytes.NewReader(data))
}
