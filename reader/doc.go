// Package reader turns S-expression text into sexp trees.
//
// The reader is a recursive-descent grammar over a character stream
// with exactly one rune of lookahead. Each grammar production is one
// method: lists, symbols, quoted strings with escapes, and decimal
// integers. Positions (file, 0-based line and column) track the next
// unread character and are attached to every error.
//
// Reading is all or nothing: the first failure at any depth aborts the
// whole call and is returned unchanged as a *ReadError. There is no
// recovery, no partial tree, and no multi-error collection.
//
//	r := reader.NewString("(add 1 2)", reader.WithFile("input.sexp"))
//	node, err := r.ReadSExp()
//
// A host reading several top-level forms from one source can call
// ReadSExp in a loop, skipping whitespace between forms, or use
// ReadAll which does exactly that.
package reader
