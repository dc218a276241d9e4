package tree

import (
	"encoding/json"
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/goccy/go-yaml"
)

func sampleDataTypes() map[string]any {
	return map[string]any{
		"a": 1,
		"b": "2",
		"c": 1.5,
		"d": true,
		"e": map[string]any{"f": 3, "g": "4", "h": false},
		"i": []any{1, "2", true, map[string]any{"j": 5}},
		"k": nil,
		"l": map[string]any{},
	}
}

func sampleData() map[string]any {
	return map[string]any{
		"a": 1,
		"b": "2",
		"c": map[string]any{"d": 3, "e": "4"},
		"f": []any{5, "6", map[string]any{"g": 7}},
	}
}

func mustBuild(t *testing.T, doc any) *Node {
	t.Helper()
	root, err := Build(doc)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return root
}

func child(t *testing.T, n *Node, key string) *Node {
	t.Helper()
	c, ok := n.Get(key)
	if !ok {
		t.Fatalf("key %q not found in %s", key, n)
	}
	return c
}

func element(t *testing.T, n *Node, i int) *Node {
	t.Helper()
	c, ok := n.Index(i)
	if !ok {
		t.Fatalf("index %d not found in %s", i, n)
	}
	return c
}

func TestBuildRejectsNonMappingRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  any
	}{
		{name: "nil", doc: nil},
		{name: "int", doc: 1},
		{name: "float", doc: 1.0},
		{name: "string", doc: "a"},
		{name: "true", doc: true},
		{name: "false", doc: false},
		{name: "empty_array", doc: []any{}},
		{name: "array", doc: []any{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Build(tt.doc)
			if !errors.Is(err, ErrTypeMismatch) {
				t.Fatalf("Build(%v) error = %v, want ErrTypeMismatch", tt.doc, err)
			}
			if root != nil {
				t.Fatalf("Build(%v) returned a partial tree", tt.doc)
			}
		})
	}
}

func TestBuildRejectsUnsupportedValues(t *testing.T) {
	t.Parallel()

	type custom struct{ X int }

	tests := []struct {
		name     string
		doc      any
		wantPath string
	}{
		{name: "struct_value", doc: map[string]any{"a": custom{X: 1}}, wantPath: "$.a"},
		{name: "nested_in_array", doc: map[string]any{"a": []any{1, make(chan int)}}, wantPath: "$.a[1]"},
		{name: "typed_slice", doc: map[string]any{"list": []string{"x"}}, wantPath: "$.list"},
		{name: "quoted_key", doc: map[string]any{"a.b": func() {}}, wantPath: `$["a.b"]`},
		{name: "non_string_yaml_key", doc: yaml.MapSlice{{Key: 1, Value: "x"}}, wantPath: "$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Build(tt.doc)
			if !errors.Is(err, ErrTypeMismatch) {
				t.Fatalf("Build() error = %v, want ErrTypeMismatch", err)
			}
			if root != nil {
				t.Fatal("Build() returned a partial tree")
			}

			var typeErr *TypeError
			if !errors.As(err, &typeErr) {
				t.Fatalf("Build() error %T is not *TypeError", err)
			}
			if typeErr.Path != tt.wantPath {
				t.Errorf("TypeError.Path = %q, want %q", typeErr.Path, tt.wantPath)
			}
		})
	}
}

func TestBuildClassifiesValues(t *testing.T) {
	t.Parallel()

	root := mustBuild(t, sampleDataTypes())

	if root.Kind() != KindObject {
		t.Fatalf("root kind = %s, want object", root.Kind())
	}

	e := child(t, root, "e")
	i := child(t, root, "i")

	checks := []struct {
		name string
		node *Node
		want Kind
	}{
		{"a", child(t, root, "a"), KindNumber},
		{"b", child(t, root, "b"), KindString},
		{"c", child(t, root, "c"), KindNumber},
		{"d", child(t, root, "d"), KindBoolean},
		{"e", e, KindObject},
		{"e.f", child(t, e, "f"), KindNumber},
		{"e.g", child(t, e, "g"), KindString},
		{"e.h", child(t, e, "h"), KindBoolean},
		{"i", i, KindArray},
		{"i[0]", element(t, i, 0), KindNumber},
		{"i[1]", element(t, i, 1), KindString},
		{"i[2]", element(t, i, 2), KindBoolean},
		{"i[3]", element(t, i, 3), KindObject},
		{"i[3].j", child(t, element(t, i, 3), "j"), KindNumber},
		{"k", child(t, root, "k"), KindNull},
		{"l", child(t, root, "l"), KindObject},
	}

	for _, c := range checks {
		if c.node.Kind() != c.want {
			t.Errorf("%s kind = %s, want %s", c.name, c.node.Kind(), c.want)
		}
	}
}

func TestBuildNumbersShareOneKind(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"int":     7,
		"int64":   int64(-2),
		"uint64":  uint64(9),
		"float32": float32(0.5),
		"float64": 2.25,
		"json":    json.Number("1e3"),
	}
	root := mustBuild(t, doc)

	for _, key := range root.Keys() {
		if k := child(t, root, key).Kind(); k != KindNumber {
			t.Errorf("%s kind = %s, want number", key, k)
		}
	}
	if f, ok := child(t, root, "json").Float64(); !ok || f != 1000 {
		t.Errorf("json Float64() = %v, %v, want 1000, true", f, ok)
	}
	if _, ok := child(t, root, "float64").Int64(); ok {
		t.Error("Int64() on 2.25 should report false")
	}
}

func TestBuildKeySet(t *testing.T) {
	t.Parallel()

	doc := sampleDataTypes()
	root := mustBuild(t, doc)

	want := make([]string, 0, len(doc))
	for key := range doc {
		want = append(want, key)
	}
	slices.Sort(want)

	if got := root.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
}

func TestBuildDescendantCounts(t *testing.T) {
	t.Parallel()

	root := mustBuild(t, sampleDataTypes())

	if got := root.Descendants(); got != 16 {
		t.Errorf("root descendants = %d, want 16", got)
	}
	if got := child(t, root, "e").Descendants(); got != 3 {
		t.Errorf("e descendants = %d, want 3", got)
	}
	i := child(t, root, "i")
	if got := i.Descendants(); got != 5 {
		t.Errorf("i descendants = %d, want 5", got)
	}
	if got := element(t, i, 3).Descendants(); got != 1 {
		t.Errorf("i[3] descendants = %d, want 1", got)
	}
	if got := child(t, root, "l").Descendants(); got != 0 {
		t.Errorf("l descendants = %d, want 0", got)
	}
}

func countBeneath(n *Node) int {
	total := 0
	for _, c := range n.Items() {
		total += 1 + countBeneath(c)
	}
	return total
}

func TestDescendantsMatchesIndependentCount(t *testing.T) {
	t.Parallel()

	docs := []map[string]any{
		sampleData(),
		sampleDataTypes(),
		{"deep": []any{[]any{[]any{map[string]any{"x": []any{nil, nil}}}}}},
		{},
	}

	for _, doc := range docs {
		root := mustBuild(t, doc)
		Walk(root, func(n *Node, _ int) bool {
			if got, want := n.Descendants(), countBeneath(n); got != want {
				t.Errorf("Descendants() of %s = %d, want %d", n, got, want)
			}
			return true
		})
	}
}

func TestBuildRoundTrip(t *testing.T) {
	t.Parallel()

	docs := []map[string]any{
		sampleData(),
		sampleDataTypes(),
		{"empty_object": map[string]any{}, "empty_array": []any{}},
		{"nested": []any{[]any{}, map[string]any{"n": nil}, 1.25, "s", false}},
	}

	for _, doc := range docs {
		root := mustBuild(t, doc)
		if got := root.Value(); !reflect.DeepEqual(got, doc) {
			t.Errorf("Value() = %#v, want %#v", got, doc)
		}
	}
}

func TestBuildOrderedMapping(t *testing.T) {
	t.Parallel()

	doc := yaml.MapSlice{
		{Key: "zeta", Value: 1},
		{Key: "alpha", Value: yaml.MapSlice{{Key: "y", Value: "a"}, {Key: "b", Value: "c"}}},
		{Key: "mid", Value: []any{uint64(1)}},
	}
	root := mustBuild(t, doc)

	if got, want := root.Keys(), []string{"zeta", "alpha", "mid"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got, want := child(t, root, "alpha").Keys(), []string{"y", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("alpha Keys() = %v, want %v", got, want)
	}
}

func TestConvertAcceptsAnyRoot(t *testing.T) {
	t.Parallel()

	n, err := Convert([]any{1, 2, 3})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if n.Kind() != KindArray || n.Len() != 3 || n.Descendants() != 3 {
		t.Fatalf("Convert() = %s kind %s len %d", n, n.Kind(), n.Len())
	}

	if _, err := Convert(struct{}{}); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Convert(struct{}{}) error = %v, want ErrTypeMismatch", err)
	}
}
