// Package runner executes one jtt invocation: compile the query, decode each
// input, evaluate and print.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jacoelho/jtt/internal/config"
	"github.com/jacoelho/jtt/internal/document"
	"github.com/jacoelho/jtt/internal/exit"
	"github.com/jacoelho/jtt/internal/logging"
	"github.com/jacoelho/jtt/internal/output"
	"github.com/jacoelho/jtt/internal/tree"
)

// stdinName labels standard input in logs and errors.
const stdinName = "-"

// Runner evaluates a query against the configured inputs.
type Runner struct {
	config    *config.Config
	engine    engine
	logger    *slog.Logger
	formatter output.Formatter
	stdin     io.Reader
	stderr    io.Writer
}

// New creates a Runner wired to the process standard streams.
// If creation fails, returns nil runner and exit result.
func New(cfg *config.Config) (*Runner, *exit.Result) {
	return NewWithIO(cfg, os.Stdin, os.Stdout, os.Stderr)
}

// NewWithIO creates a Runner with custom streams.
func NewWithIO(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) (*Runner, *exit.Result) {
	logger, err := logging.New(logging.Config{
		Level:  cfg.LogLevel(),
		Format: string(cfg.LogFormat),
		Writer: stderr,
	})
	if err != nil {
		return nil, exit.Errorf("Error creating logger: %v\n", err)
	}

	eng, err := compile(cfg)
	if err != nil {
		return nil, exit.Usagef("Error: invalid query %q: %v\n", cfg.Query, err)
	}
	logger.Debug("query compiled", "engine", cfg.Engine, "query", cfg.Query, "compiled", eng.describe(), "strict", cfg.Strict)

	formatter, err := output.NewWithWriter(stdout, output.Options{
		Format: cfg.Output,
		List:   cfg.List || !eng.singular() || len(cfg.Files) > 1,
	})
	if err != nil {
		return nil, exit.Errorf("Error creating formatter: %v\n", err)
	}

	return &Runner{
		config:    cfg,
		engine:    eng,
		logger:    logger,
		formatter: formatter,
		stdin:     stdin,
		stderr:    stderr,
	}, nil
}

// Run evaluates every input in order and prints the combined matches once.
func (r *Runner) Run(ctx context.Context) int {
	matches, err := r.evaluate(ctx)
	if err != nil {
		fmt.Fprintf(r.stderr, "Error: %v\n", err)
		return exit.CodeFailure
	}

	if err := r.formatter.Format(matches...); err != nil {
		fmt.Fprintf(r.stderr, "Error formatting results: %v\n", err)
		return exit.CodeFailure
	}

	if r.config.ExitStatus && len(matches) == 0 {
		return exit.CodeNoMatch
	}
	return exit.CodeSuccess
}

func (r *Runner) evaluate(ctx context.Context) ([]*tree.Node, error) {
	sources := r.config.Files
	if len(sources) == 0 {
		sources = []string{stdinName}
	}

	var matches []*tree.Node
	for i, name := range sources {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("interrupted after %d of %d inputs: %w", i, len(sources), ctx.Err())
		default:
		}

		found, err := r.runSource(name)
		if err != nil {
			return nil, err
		}
		matches = append(matches, found...)
	}
	return matches, nil
}

func (r *Runner) runSource(name string) ([]*tree.Node, error) {
	start := time.Now()
	root, err := r.decode(name)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("document decoded", "source", name, "descendants", root.Descendants(), "duration", time.Since(start))

	if r.config.Stats {
		r.logStats(name, root)
	}

	start = time.Now()
	found, err := r.engine.evaluate(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	r.logger.Debug("query evaluated", "source", name, "matches", len(found), "duration", time.Since(start))

	return found, nil
}

func (r *Runner) decode(name string) (*tree.Node, error) {
	if name == stdinName {
		root, err := document.Decode(r.stdin, r.config.Input)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return root, nil
	}
	return document.ReadFile(name, r.config.Input)
}

func (r *Runner) logStats(name string, root *tree.Node) {
	stats := tree.Summarize(root)

	kinds := make([]any, 0, len(stats.Kinds))
	for kind := tree.KindNull; kind <= tree.KindObject; kind++ {
		if count := stats.Kinds[kind]; count > 0 {
			kinds = append(kinds, slog.Int(kind.String(), count))
		}
	}

	r.logger.Info("document stats",
		"source", name,
		"nodes", stats.Nodes,
		"max_depth", stats.MaxDepth,
		slog.Group("kinds", kinds...),
	)
}
