package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacoelho/jtt/internal/config"
	"github.com/jacoelho/jtt/internal/exit"
)

const inventory = `{
  "store": "north",
  "items": [
    {"id": 1, "name": "bolt", "tags": ["steel", "small"]},
    {"id": 2, "name": "nut", "tags": []},
    {"id": 3, "name": "gear", "tags": ["brass"]}
  ],
  "meta": {"count": 3}
}`

type outcome struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, stdin string, args ...string) outcome {
	t.Helper()

	cfg, exitResult := config.Parse(append([]string{"jtt"}, args...))
	if exitResult != nil {
		t.Fatalf("config.Parse(%q) exit %d: %s", args, exitResult.ExitCode, exitResult.Message)
	}

	var stdout, stderr bytes.Buffer
	r, exitResult := NewWithIO(cfg, strings.NewReader(stdin), &stdout, &stderr)
	if exitResult != nil {
		return outcome{code: exitResult.ExitCode, stderr: exitResult.Message}
	}

	code := r.Run(context.Background())
	return outcome{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   []string
		code   int
		stdout string
	}{
		{
			name:   "single_value",
			args:   []string{"meta.count"},
			stdout: "3\n",
		},
		{
			name:   "single_index",
			args:   []string{"items[1].name"},
			stdout: "\"nut\"\n",
		},
		{
			name:   "negative_index",
			args:   []string{"items[-1].id"},
			stdout: "3\n",
		},
		{
			name:   "wildcard_lists",
			args:   []string{"items.**.name"},
			stdout: "[\n  \"bolt\",\n  \"nut\",\n  \"gear\"\n]\n",
		},
		{
			name:   "wildcard_expands_nested",
			args:   []string{"items.**.tags.**"},
			stdout: "[\n  \"steel\",\n  \"small\",\n  \"brass\"\n]\n",
		},
		{
			name:   "list_flag",
			args:   []string{"--list", "store"},
			stdout: "[\n  \"north\"\n]\n",
		},
		{
			name:   "missing_key",
			args:   []string{"nope"},
			stdout: "[]\n",
		},
		{
			name:   "missing_key_exit_status",
			args:   []string{"--exit-status", "nope"},
			code:   exit.CodeNoMatch,
			stdout: "[]\n",
		},
		{
			name:   "terms_engine",
			args:   []string{"--engine", "terms", "items.**.id"},
			stdout: "[\n  1,\n  2,\n  3\n]\n",
		},
		{
			name:   "terms_engine_index",
			args:   []string{"--engine", "terms", "items.2.name"},
			stdout: "\"gear\"\n",
		},
		{
			name:   "cursor_engine",
			args:   []string{"--engine", "cursor", "items[0].tags[1]"},
			stdout: "\"small\"\n",
		},
		{
			name:   "cursor_engine_miss_is_null",
			args:   []string{"--engine", "cursor", "items[9].name"},
			stdout: "null\n",
		},
		{
			name:   "yaml_output",
			args:   []string{"--output", "yaml", "store"},
			stdout: "north\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(t, inventory, tt.args...)
			if got.code != tt.code {
				t.Fatalf("Run() code = %d, want %d (stderr: %s)", got.code, tt.code, got.stderr)
			}
			if got.stdout != tt.stdout {
				t.Errorf("Run() stdout = %q, want %q", got.stdout, tt.stdout)
			}
		})
	}
}

func TestRunFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stdin  string
		args   []string
		code   int
		stderr string
	}{
		{name: "strict_missing_key", stdin: inventory, args: []string{"--strict", "meta.total"}, code: exit.CodeFailure, stderr: `key "total" not found`},
		{name: "strict_index_range", stdin: inventory, args: []string{"--strict", "items[5]"}, code: exit.CodeFailure, stderr: "index 5 out of range for array of length 3"},
		{name: "cursor_branching", stdin: inventory, args: []string{"--engine", "cursor", "items.**.id"}, code: exit.CodeFailure, stderr: "Error:"},
		{name: "pending_limit", stdin: inventory, args: []string{"--max-pending", "2", "items.**.tags.**"}, code: exit.CodeFailure, stderr: "Error:"},
		{name: "malformed_input", stdin: `{"a": `, args: []string{"a"}, code: exit.CodeFailure, stderr: "stdin: document: malformed input"},
		{name: "array_root", stdin: `[1, 2]`, args: []string{"a"}, code: exit.CodeFailure, stderr: "Error:"},
		{name: "bad_query_syntax", stdin: inventory, args: []string{"items[0"}, code: exit.CodeUsage, stderr: "invalid query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(t, tt.stdin, tt.args...)
			if got.code != tt.code {
				t.Fatalf("Run() code = %d, want %d (stderr: %s)", got.code, tt.code, got.stderr)
			}
			if !strings.Contains(got.stderr, tt.stderr) {
				t.Errorf("Run() stderr = %q, want it to contain %q", got.stderr, tt.stderr)
			}
		})
	}
}

func TestRunYAMLStdin(t *testing.T) {
	t.Parallel()

	got := run(t, "store: south\nitems:\n  - id: 7\n", "items[0].id")
	if got.code != exit.CodeSuccess || got.stdout != "7\n" {
		t.Errorf("Run() = %+v, want 7", got)
	}
}

func TestRunFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.yaml")
	if err := os.WriteFile(first, []byte(inventory), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("store: south\nmeta:\n  count: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got := run(t, "", "store", first, second)
	if got.code != exit.CodeSuccess {
		t.Fatalf("Run() code = %d (stderr: %s)", got.code, got.stderr)
	}
	if want := "[\n  \"north\",\n  \"south\"\n]\n"; got.stdout != want {
		t.Errorf("Run() stdout = %q, want %q", got.stdout, want)
	}
}

func TestRunStatsAndDebugLogs(t *testing.T) {
	t.Parallel()

	got := run(t, inventory, "--stats", "--log-format", "json", "store")
	if got.code != exit.CodeSuccess {
		t.Fatalf("Run() code = %d (stderr: %s)", got.code, got.stderr)
	}
	for _, want := range []string{`"msg":"document stats"`, `"nodes":`, `"max_depth":`, `"run_id":`} {
		if !strings.Contains(got.stderr, want) {
			t.Errorf("stats log %q missing %s", got.stderr, want)
		}
	}
	if strings.Contains(got.stderr, "query evaluated") {
		t.Errorf("debug record logged without --debug: %s", got.stderr)
	}

	got = run(t, inventory, "--debug", "items.**.id")
	for _, want := range []string{"query compiled", "compiled=$.items[*].id", "document decoded", "query evaluated", "matches=3"} {
		if !strings.Contains(got.stderr, want) {
			t.Errorf("debug log %q missing %s", got.stderr, want)
		}
	}
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	cfg, exitResult := config.Parse([]string{"jtt", "store"})
	if exitResult != nil {
		t.Fatalf("config.Parse() exit %d", exitResult.ExitCode)
	}

	var stdout, stderr bytes.Buffer
	r, exitResult := NewWithIO(cfg, strings.NewReader(inventory), &stdout, &stderr)
	if exitResult != nil {
		t.Fatalf("NewWithIO() exit %d", exitResult.ExitCode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if code := r.Run(ctx); code != exit.CodeFailure {
		t.Errorf("Run() code = %d, want %d", code, exit.CodeFailure)
	}
	if stdout.Len() != 0 {
		t.Errorf("Run() wrote output after cancel: %q", stdout.String())
	}
}
