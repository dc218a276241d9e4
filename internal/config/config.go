package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacoelho/jtt/internal/document"
	"github.com/jacoelho/jtt/internal/exit"
	"github.com/jacoelho/jtt/internal/logging"
	"github.com/jacoelho/jtt/internal/output"
	"github.com/jacoelho/jtt/internal/parser"
)

// Engine selects how a query is evaluated.
type Engine string

const (
	// EngineChain fans the query out over every matching branch.
	EngineChain Engine = "chain"
	// EngineTerms matches the literal term list with the visitor matcher.
	EngineTerms Engine = "terms"
	// EngineCursor follows a single path and fails on branching.
	EngineCursor Engine = "cursor"
)

var (
	ErrNoArguments     = errors.New("no arguments provided")
	ErrNoQuery         = errors.New("no query specified")
	ErrUnknownEngine   = errors.New("unknown engine")
	ErrNegativePending = errors.New("max-pending cannot be negative")
	ErrStrictTerms     = errors.New("--strict is not supported by the terms engine")
	ErrWatchStdin      = errors.New("--watch requires at least one input file")
)

// Config represents the complete configuration for the jtt tool.
type Config struct {
	Query string
	// Files are read in order; stdin is read when empty.
	Files []string

	Engine     Engine
	Strict     bool
	MaxPending int

	Input  document.Format
	Output output.Format
	List   bool

	// ExitStatus makes an empty result exit with exit.CodeNoMatch.
	ExitStatus bool
	Stats      bool

	// Watch re-evaluates whenever an input file changes.
	Watch bool

	Debug     bool
	LogFormat logging.Format
}

// LogLevel is the logger level implied by Debug and Stats.
func (c *Config) LogLevel() string {
	switch {
	case c.Debug:
		return "debug"
	case c.Stats:
		return "info"
	default:
		return "warn"
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Query == "" {
		return ErrNoQuery
	}
	if err := parser.Validate(c.Query); err != nil {
		return err
	}

	switch c.Engine {
	case EngineChain, EngineCursor:
	case EngineTerms:
		if c.Strict {
			return ErrStrictTerms
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEngine, c.Engine)
	}

	if c.MaxPending < 0 {
		return ErrNegativePending
	}

	if c.Watch && len(c.Files) == 0 {
		return ErrWatchStdin
	}

	for _, file := range c.Files {
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("input file %s not found: %w", file, err)
		}
	}

	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Usagef("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Usage and parse errors are reported by the caller.
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		debug      = fs.Bool("debug", false, "Enable debug logging on stderr")
		strict     = fs.Bool("strict", false, "Fail when a query step does not match the document shape")
		engine     = fs.String("engine", string(EngineChain), "Evaluation engine: chain, terms or cursor")
		input      = fs.String("input", string(document.FormatAuto), "Input format: auto, json or yaml")
		outputFmt  = fs.String("output", string(output.FormatJSON), "Output format: json or yaml")
		list       = fs.Bool("list", false, "Always print results as a list")
		exitStatus = fs.Bool("exit-status", false, "Exit with status 3 when nothing matched")
		logFormat  = fs.String("log-format", string(logging.FormatText), "Log format: text or json")
		maxPending = fs.Int("max-pending", 0, "Maximum pending branches during evaluation (0 for unlimited)")
		stats      = fs.Bool("stats", false, "Log document statistics at info level")
		watch      = fs.Bool("watch", false, "Re-run the query whenever an input file changes")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Usagef("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	positional := fs.Args()
	if len(positional) == 0 {
		return nil, exit.Usagef("Error: %v\n\n%s", ErrNoQuery, Usage())
	}

	inputFormat, err := document.ParseFormat(*input)
	if err != nil {
		return nil, exit.Usagef("Error: %v\n\n%s", err, Usage())
	}
	outputFormat, err := output.ParseFormat(*outputFmt)
	if err != nil {
		return nil, exit.Usagef("Error: %v\n\n%s", err, Usage())
	}
	logFmt, err := logging.ParseFormat(*logFormat)
	if err != nil {
		return nil, exit.Usagef("Error: %v\n\n%s", err, Usage())
	}

	var files []string
	if len(positional) > 1 {
		files = positional[1:]
	}

	config := &Config{
		Query:      positional[0],
		Files:      files,
		Engine:     Engine(strings.ToLower(*engine)),
		Strict:     *strict,
		MaxPending: *maxPending,
		Input:      inputFormat,
		Output:     outputFormat,
		List:       *list,
		ExitStatus: *exitStatus,
		Stats:      *stats,
		Watch:      *watch,
		Debug:      *debug,
		LogFormat:  logFmt,
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Usagef("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `jtt - query JSON and YAML documents by path

Usage: jtt [options] <query> [file1] [file2] ...

Reads standard input when no file is given.

Query:
  a.b.c                   Keys separated by dots
  items[0]                Array index, negative counts from the end
  "dotted.key".x          Quoted key
  a.**.name               ** expands every child of the current node

Options:
  --engine NAME           Evaluation engine: chain, terms or cursor (default: chain)
  --strict                Fail when a step does not match the document shape
  --max-pending N         Maximum pending branches during evaluation (0 for unlimited)
  --input FORMAT          Input format: auto, json or yaml (default: auto)
  --output FORMAT         Output format: json or yaml (default: json)
  --list                  Always print results as a list
  --exit-status           Exit with status 3 when nothing matched
  --stats                 Log document statistics at info level
  --watch                 Re-run the query whenever an input file changes
  --debug                 Enable debug logging on stderr
  --log-format FORMAT     Log format: text or json (default: text)
  -h, --help              Show this help message

Examples:
  jtt user.name data.json                # Print a single value
  jtt 'users.**.email' data.json         # Every email of every user
  jtt --strict 'items[3].id' data.yaml   # Fail if items has fewer than 4 entries
  cat data.json | jtt --output yaml meta # Read from stdin, print YAML
  jtt --watch status.phase app.yaml      # Print again on every save`
}
