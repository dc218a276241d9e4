package output

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/jtt/internal/tree"
)

type yamlFormatter struct {
	writer io.Writer
	list   bool
}

func (f *yamlFormatter) Format(nodes ...*tree.Node) error {
	var doc any
	if value, ok := single(f.list, nodes); ok {
		doc = yamlValue(value)
	} else {
		items := make([]any, len(nodes))
		for i, node := range nodes {
			items[i] = yamlValue(node)
		}
		doc = items
	}

	encoded, err := yaml.MarshalWithOptions(doc, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	_, err = f.writer.Write(encoded)
	return err
}

func yamlValue(node *tree.Node) any {
	value, _ := node.MarshalYAML()
	return value
}
