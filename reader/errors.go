package reader

import "fmt"

// ErrorKind classifies read failures.
type ErrorKind int

const (
	// ErrEarlyEOF means the input ended where more characters were
	// required.
	ErrEarlyEOF ErrorKind = iota
	// ErrWrongChar means the character at the current position is not
	// among the grammar's legal set at this point.
	ErrWrongChar
	// ErrParenMismatch means a list's closing bracket does not
	// correspond to its opening bracket kind.
	ErrParenMismatch
	// ErrNotImplemented is reserved for grammar productions without
	// decoding logic. The built-in grammar no longer returns it, but
	// hosts extending the reader may.
	ErrNotImplemented
)

var errorKindNames = map[ErrorKind]string{
	ErrEarlyEOF:       "early-eof",
	ErrWrongChar:      "wrong-char",
	ErrParenMismatch:  "paren-mismatch",
	ErrNotImplemented: "not-implemented",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ReadError is a positioned read failure. It is constructed at the
// failure site and propagated unchanged; the reader never wraps,
// retries, or recovers.
type ReadError struct {
	Kind ErrorKind
	Loc  Position
	Msg  string
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Msg)
}

func (r *Reader) errEOF() *ReadError {
	return &ReadError{
		Kind: ErrEarlyEOF,
		Loc:  r.in.pos,
		Msg:  "unexpected end of file",
	}
}

func (r *Reader) errWrongChar(c rune, expected string) *ReadError {
	return &ReadError{
		Kind: ErrWrongChar,
		Loc:  r.in.pos,
		Msg:  fmt.Sprintf("unexpected character %q, expected one of %q", c, expected),
	}
}

func (r *Reader) errParenMismatch(open, close rune) *ReadError {
	return &ReadError{
		Kind: ErrParenMismatch,
		Loc:  r.in.pos,
		Msg:  fmt.Sprintf("list delimiters don't match: %q and %q", open, close),
	}
}
