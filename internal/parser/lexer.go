package parser

import (
	"strconv"
	"strings"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenName
	tokenString
	tokenNumber
	tokenWildcard
	tokenStar
	tokenDot
	tokenLBracket
	tokenRBracket
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "end of input"
	case tokenName:
		return "name"
	case tokenString:
		return "quoted name"
	case tokenNumber:
		return "index"
	case tokenWildcard:
		return "'**'"
	case tokenStar:
		return "'*'"
	case tokenDot:
		return "'.'"
	case tokenLBracket:
		return "'['"
	case tokenRBracket:
		return "']'"
	default:
		return "unknown token"
	}
}

type token struct {
	typ     tokenType
	literal string
	pos     int
}

func lex(input string) ([]token, error) {
	tokens := make([]token, 0, len(input)/2+1)
	pos := 0
	inBracket := false

	for pos < len(input) {
		c := input[pos]

		switch {
		case c == '.':
			tokens = append(tokens, token{typ: tokenDot, pos: pos})
			pos++
			continue
		case c == '[':
			if inBracket {
				return nil, syntaxError(pos, "nested '['")
			}
			inBracket = true
			tokens = append(tokens, token{typ: tokenLBracket, pos: pos})
			pos++
			continue
		case c == ']':
			if !inBracket {
				return nil, syntaxError(pos, "unmatched ']'")
			}
			inBracket = false
			tokens = append(tokens, token{typ: tokenRBracket, pos: pos})
			pos++
			continue
		case c == '*':
			if strings.HasPrefix(input[pos:], "**") {
				tokens = append(tokens, token{typ: tokenWildcard, pos: pos})
				pos += 2
				continue
			}
			tokens = append(tokens, token{typ: tokenStar, pos: pos})
			pos++
			continue
		case c == '\'' || c == '"':
			literal, next, err := lexString(input, pos)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{typ: tokenString, literal: literal, pos: pos})
			pos = next
			continue
		case inBracket && (c == '-' || isDigit(c)):
			start := pos
			pos++
			for pos < len(input) && isDigit(input[pos]) {
				pos++
			}
			literal := input[start:pos]
			if literal == "-" {
				return nil, syntaxError(start, "'-' must be followed by digits")
			}
			tokens = append(tokens, token{typ: tokenNumber, literal: literal, pos: start})
			continue
		}

		if c <= ' ' || c == 0x7f {
			return nil, syntaxError(pos, "unexpected whitespace, quote the name instead")
		}
		if inBracket {
			return nil, syntaxError(pos, "unexpected %q inside brackets", c)
		}

		start := pos
		for pos < len(input) && isNamePart(input[pos]) {
			pos++
		}
		tokens = append(tokens, token{typ: tokenName, literal: input[start:pos], pos: start})
	}

	if inBracket {
		return nil, syntaxError(len(input), "unterminated '['")
	}

	tokens = append(tokens, token{typ: tokenEOF, pos: len(input)})
	return tokens, nil
}

// lexString reads a quoted name; a backslash escapes the next byte.
func lexString(input string, start int) (string, int, error) {
	quote := input[start]
	var b strings.Builder

	for pos := start + 1; pos < len(input); pos++ {
		c := input[pos]
		switch c {
		case '\\':
			if pos+1 >= len(input) {
				return "", 0, syntaxError(pos, "dangling escape")
			}
			pos++
			b.WriteByte(input[pos])
		case quote:
			return b.String(), pos + 1, nil
		default:
			b.WriteByte(c)
		}
	}

	return "", 0, syntaxError(start, "unterminated string starting with %s", strconv.QuoteRune(rune(quote)))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNamePart(c byte) bool {
	switch c {
	case '.', '[', ']', '*', '\'', '"':
		return false
	}
	return c > ' ' && c != 0x7f
}
