// Package parser turns query expressions into term lists and operation chains.
//
// Grammar:
//
//	path     = segment *( "." segment )
//	segment  = ( "**" / name / quoted ) *selector
//	selector = "[" ( int / "*" / quoted ) "]"
//
// Dotted names are object keys, bracketed integers are array indices
// (negative ones count from the end) and "**" or "[*]" expands every child.
package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jacoelho/jtt/internal/query"
)

type segmentKind int

const (
	keySegment segmentKind = iota
	indexSegment
	wildcardSegment
)

type segment struct {
	kind  segmentKind
	key   string
	index int
	pos   int
}

// Validate checks that expr is non-empty and starts with a word character,
// a quote or the ** wildcard.
func Validate(expr string) error {
	if expr == "" {
		return ErrEmptyQuery
	}
	if strings.HasPrefix(expr, query.Wildcard) {
		return nil
	}

	r, _ := utf8.DecodeRuneInString(expr)
	if r == '_' || r == '"' || r == '\'' || unicode.IsLetter(r) {
		return nil
	}
	return ErrInvalidStart
}

// Split breaks a dotted identifier expression into literal terms without
// interpreting brackets or quotes.
func Split(expr string) ([]string, error) {
	if err := Validate(expr); err != nil {
		return nil, err
	}
	return strings.Split(expr, "."), nil
}

// Parse compiles expr into an operation chain. Every operation carries the
// given strict flag.
func Parse(expr string, strict bool) (query.Chain, error) {
	segs, err := parse(expr)
	if err != nil {
		return query.Chain{}, err
	}

	ops := make([]query.Operation, len(segs))
	for i, seg := range segs {
		switch seg.kind {
		case wildcardSegment:
			ops[i] = query.GetAll{Strict: strict}
		case indexSegment:
			ops[i] = query.FilterIndex{Index: seg.index, Strict: strict}
		default:
			ops[i] = query.FilterKey{Key: seg.key, Strict: strict}
		}
	}
	return query.NewChain(ops...), nil
}

// Terms compiles expr into a literal term list for query.Match. Negative
// indices and a literal "**" key have no term form and are rejected.
func Terms(expr string) ([]string, error) {
	segs, err := parse(expr)
	if err != nil {
		return nil, err
	}

	terms := make([]string, len(segs))
	for i, seg := range segs {
		switch seg.kind {
		case wildcardSegment:
			terms[i] = query.Wildcard
		case indexSegment:
			if seg.index < 0 {
				return nil, syntaxError(seg.pos, "negative index %d has no term form", seg.index)
			}
			terms[i] = strconv.Itoa(seg.index)
		default:
			if seg.key == query.Wildcard {
				return nil, syntaxError(seg.pos, "key %q collides with the wildcard term", seg.key)
			}
			terms[i] = seg.key
		}
	}
	return terms, nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.typ != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(typ tokenType) (token, error) {
	tok := p.next()
	if tok.typ != typ {
		return tok, syntaxError(tok.pos, "expected %s, got %s", typ, tok.typ)
	}
	return tok, nil
}

func parse(expr string) ([]segment, error) {
	if err := Validate(expr); err != nil {
		return nil, err
	}

	tokens, err := lex(expr)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	var segs []segment
	for {
		parsed, err := p.parseSegment()
		if err != nil {
			return nil, err
		}
		segs = append(segs, parsed...)

		tok := p.next()
		switch tok.typ {
		case tokenEOF:
			return segs, nil
		case tokenDot:
			if p.peek().typ == tokenEOF {
				return nil, syntaxError(tok.pos, "trailing '.'")
			}
		default:
			return nil, syntaxError(tok.pos, "expected '.' or end of input, got %s", tok.typ)
		}
	}
}

// parseSegment returns the head segment followed by its bracket selectors.
func (p *parser) parseSegment() ([]segment, error) {
	tok := p.next()

	var segs []segment
	switch tok.typ {
	case tokenWildcard:
		segs = append(segs, segment{kind: wildcardSegment, pos: tok.pos})
	case tokenName, tokenString:
		segs = append(segs, segment{kind: keySegment, key: tok.literal, pos: tok.pos})
	default:
		return nil, syntaxError(tok.pos, "expected name or '**', got %s", tok.typ)
	}

	for p.peek().typ == tokenLBracket {
		open := p.next()
		sel, err := p.parseSelector(open.pos)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRBracket); err != nil {
			return nil, err
		}
		segs = append(segs, sel)
	}

	return segs, nil
}

func (p *parser) parseSelector(pos int) (segment, error) {
	tok := p.next()
	switch tok.typ {
	case tokenNumber:
		index, err := strconv.Atoi(tok.literal)
		if err != nil {
			return segment{}, syntaxError(tok.pos, "index %s out of range", tok.literal)
		}
		return segment{kind: indexSegment, index: index, pos: pos}, nil
	case tokenStar:
		return segment{kind: wildcardSegment, pos: pos}, nil
	case tokenString:
		return segment{kind: keySegment, key: tok.literal, pos: pos}, nil
	default:
		return segment{}, syntaxError(tok.pos, "expected index, '*' or quoted name, got %s", tok.typ)
	}
}
