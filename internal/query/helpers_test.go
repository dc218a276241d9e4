package query

import (
	"testing"

	"github.com/jacoelho/jtt/internal/tree"
)

func sampleData() map[string]any {
	return map[string]any{
		"a": 1,
		"b": "2",
		"c": map[string]any{"d": 3, "e": "4"},
		"f": []any{5, "6", map[string]any{"g": 7}},
	}
}

func mustBuild(t *testing.T, doc map[string]any) *tree.Node {
	t.Helper()
	root, err := tree.Build(doc)
	if err != nil {
		t.Fatalf("tree.Build() error = %v", err)
	}
	return root
}

func values(nodes []*tree.Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = n.Value()
	}
	return out
}
