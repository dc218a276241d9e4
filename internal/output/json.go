package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jacoelho/jtt/internal/tree"
)

const indent = "  "

type jsonFormatter struct {
	writer io.Writer
	list   bool
}

func (f *jsonFormatter) Format(nodes ...*tree.Node) error {
	value, ok := single(f.list, nodes)
	if !ok {
		value = tree.Array(nodes...)
	}

	raw, err := value.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", indent); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	out.WriteByte('\n')

	_, err = f.writer.Write(out.Bytes())
	return err
}
