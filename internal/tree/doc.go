// Package tree models a decoded JSON-like document as an immutable typed tree.
//
// A tree is built once, either from native Go values with Build or by a
// decoder using the total constructors (Null, String, Number, Bool, Array,
// Object). Every node carries its kind and a descendant count fixed at
// construction; nothing in a tree is mutated afterwards, so trees can be
// shared freely between readers.
//
// Evaluators inspect nodes through the accessors, an exhaustive switch on
// Kind, or the Visitor interface:
//
//	root, err := tree.Build(doc)
//	if err != nil {
//		return err // wraps tree.ErrTypeMismatch
//	}
//	root.Accept(myVisitor)
package tree
