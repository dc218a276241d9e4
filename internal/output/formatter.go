// Package output renders matched nodes for the terminal.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacoelho/jtt/internal/tree"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("output: unknown format")

// Formatter writes query results.
type Formatter interface {
	// Format writes a single bare value when exactly one node is given and
	// list mode is off, otherwise every node as one list.
	Format(nodes ...*tree.Node) error
}

// Options configures a Formatter.
type Options struct {
	Format Format
	// List always wraps results in a list, even a single match.
	List bool
}

// ParseFormat accepts json, yaml and yml, case-insensitively. Empty means json.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// New creates a formatter that writes to stdout.
func New(opts Options) (Formatter, error) {
	return NewWithWriter(os.Stdout, opts)
}

// NewWithWriter creates a formatter with a custom writer.
func NewWithWriter(w io.Writer, opts Options) (Formatter, error) {
	switch opts.Format {
	case FormatJSON, "":
		return &jsonFormatter{writer: w, list: opts.List}, nil
	case FormatYAML:
		return &yamlFormatter{writer: w, list: opts.List}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

func single(list bool, nodes []*tree.Node) (*tree.Node, bool) {
	if list || len(nodes) != 1 {
		return nil, false
	}
	return nodes[0], true
}
