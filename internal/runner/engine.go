package runner

import (
	"fmt"

	"github.com/jacoelho/jtt/internal/config"
	"github.com/jacoelho/jtt/internal/parser"
	"github.com/jacoelho/jtt/internal/query"
	"github.com/jacoelho/jtt/internal/tree"
)

// engine is a compiled query bound to one evaluation strategy.
type engine interface {
	evaluate(root *tree.Node) ([]*tree.Node, error)
	// singular reports whether the query can match at most once per document.
	singular() bool
	// describe is the compiled form used in debug logs.
	describe() string
}

func compile(cfg *config.Config) (engine, error) {
	switch cfg.Engine {
	case config.EngineTerms:
		terms, err := parser.Terms(cfg.Query)
		if err != nil {
			return nil, err
		}
		return termsEngine{terms: terms}, nil
	case config.EngineCursor:
		chain, err := parser.Parse(cfg.Query, cfg.Strict)
		if err != nil {
			return nil, err
		}
		return cursorEngine{chain: chain}, nil
	case config.EngineChain, "":
		chain, err := parser.Parse(cfg.Query, cfg.Strict)
		if err != nil {
			return nil, err
		}
		return chainEngine{chain: chain, opts: query.Options{MaxPending: cfg.MaxPending}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownEngine, cfg.Engine)
	}
}

type chainEngine struct {
	chain query.Chain
	opts  query.Options
}

func (e chainEngine) evaluate(root *tree.Node) ([]*tree.Node, error) {
	return query.EvaluateWithOptions(root, e.chain, e.opts)
}

func (e chainEngine) singular() bool { return e.chain.Singular() }

func (e chainEngine) describe() string { return e.chain.String() }

type termsEngine struct {
	terms []string
}

func (e termsEngine) evaluate(root *tree.Node) ([]*tree.Node, error) {
	return query.Match(root, e.terms), nil
}

func (e termsEngine) singular() bool { return query.Singular(e.terms) }

func (e termsEngine) describe() string { return fmt.Sprintf("%q", e.terms) }

// cursorEngine always yields exactly one node, null when the path ran out.
type cursorEngine struct {
	chain query.Chain
}

func (e cursorEngine) evaluate(root *tree.Node) ([]*tree.Node, error) {
	node, err := query.NewProcessor(root, e.chain).Execute()
	if err != nil {
		return nil, err
	}
	return []*tree.Node{node}, nil
}

func (e cursorEngine) singular() bool { return true }

func (e cursorEngine) describe() string { return e.chain.String() }
