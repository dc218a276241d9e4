// Package query evaluates path queries against a tree.
//
// Two evaluation models are provided over the same tree:
//
//   - Match walks a literal term list (keys, digit indices and the "**"
//     wildcard) through a tree.Visitor and never fails.
//   - Evaluate runs an operation Chain (GetAll, FilterIndex, FilterKey),
//     fanning out over every candidate an operation produces. Strict
//     operations report shape, bounds and key mismatches as *Error values
//     wrapping ErrStrict; non-strict ones yield no candidates instead.
//
// Processor is the single-path variant of Evaluate: it follows one cursor
// through the chain and resolves to tree.Null() as soon as a step finds
// nothing.
//
// The fluent Query type builds chains in place:
//
//	results, err := query.From(root).FilterKey("pokemon").GetAll().FilterKey("id").Collect()
package query
