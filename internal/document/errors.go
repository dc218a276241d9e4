package document

import "errors"

var (
	// ErrMalformed indicates input that is not a well-formed JSON or YAML document.
	ErrMalformed = errors.New("document: malformed input")

	// ErrTooDeep indicates nesting beyond the decoder's depth limit.
	ErrTooDeep = errors.New("document: nesting too deep")

	// ErrUnknownFormat indicates an unrecognised format name.
	ErrUnknownFormat = errors.New("document: unknown format")
)
