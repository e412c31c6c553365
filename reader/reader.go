package reader

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/sx/sexp"
)

type Option func(*Reader)

// WithFile sets the file name used in positions and error messages.
// The reader never opens the file; the name is a diagnostic label.
func WithFile(path string) Option {
	return func(r *Reader) {
		r.file = path
	}
}

// Reader reads S-expressions from a character stream using recursive
// descent with one rune of lookahead. A Reader is not safe for
// concurrent use; create one per input.
type Reader struct {
	file string
	in   *stream
}

func New(src io.RuneReader, opts ...Option) *Reader {
	r := &Reader{}
	for _, opt := range opts {
		opt(r)
	}
	r.in = newStream(src, r.file)
	return r
}

func NewString(s string, opts ...Option) *Reader {
	return New(strings.NewReader(s), opts...)
}

// Position returns the location of the next unread character.
func (r *Reader) Position() Position {
	return r.in.pos
}

// Err returns the first non-EOF error reported by the underlying
// source, if any. The grammar treats such an error as end of input.
func (r *Reader) Err() error {
	return r.in.err
}

// ReadSExp reads one expression. The kind of expression is decided by
// the lookahead character without consuming it: an open bracket starts
// a list, a double quote starts a string, a minus sign or digit starts
// a number, and any other non-whitespace character starts a symbol.
// Whitespace must be skipped by the caller between top-level reads.
func (r *Reader) ReadSExp() (*sexp.Node, error) {
	c, ok := r.in.peek()
	if !ok {
		return nil, r.errEOF()
	}

	switch {
	case isOpenParen(c):
		return r.readList()
	case c == '-' || isDigit(c):
		return r.readNumber()
	case c == '"':
		return r.readString()
	case !isSpace(c):
		return r.readSymbol()
	default:
		return nil, r.errWrongChar(c, "Any")
	}
}

// ReadAll reads top-level expressions separated by whitespace until
// end of input. The first failure aborts the whole read; no partial
// results are returned.
func (r *Reader) ReadAll() ([]*sexp.Node, error) {
	var nodes []*sexp.Node
	for {
		r.skipSpace()
		if _, ok := r.in.peek(); !ok {
			break
		}
		node, err := r.ReadSExp()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	if err := r.in.err; err != nil {
		return nil, err
	}
	return nodes, nil
}

func (r *Reader) skipSpace() {
	for {
		c, ok := r.in.peek()
		if !ok || !isSpace(c) {
			return
		}
		r.in.advance()
	}
}

// readList consumes an open bracket, reads items up to the matching
// close bracket, and consumes the close bracket. Consuming the closer
// is what lets a host read sibling expressions after a nested list.
func (r *Reader) readList() (*sexp.Node, error) {
	open, ok := r.in.peek()
	if !ok {
		return nil, r.errEOF()
	}
	if !isOpenParen(open) {
		return nil, r.errWrongChar(open, "({[")
	}
	r.in.advance()

	items, err := r.readListItems()
	if err != nil {
		return nil, err
	}

	closer, ok := r.in.peek()
	if !ok {
		return nil, r.errEOF()
	}
	if !isMatchingParen(open, closer) {
		return nil, r.errParenMismatch(open, closer)
	}
	r.in.advance()

	return items, nil
}

// readListItems builds the cons chain for a list body. It stops at a
// close bracket without consuming it; readList inspects the bracket to
// validate the pairing.
func (r *Reader) readListItems() (*sexp.Node, error) {
	r.skipSpace()

	c, ok := r.in.peek()
	if !ok {
		return nil, r.errEOF()
	}
	if isCloseParen(c) {
		return sexp.Nil(), nil
	}

	head, err := r.ReadSExp()
	if err != nil {
		return nil, err
	}
	tail, err := r.readListItems()
	if err != nil {
		return nil, err
	}
	return sexp.Cons(head, tail), nil
}

// readSymbol accumulates characters up to the next delimiter, which is
// left unconsumed. An immediate delimiter yields the empty symbol.
func (r *Reader) readSymbol() (*sexp.Node, error) {
	var sb strings.Builder
	for {
		c, ok := r.in.peek()
		if !ok || isDelimiter(c) {
			break
		}
		sb.WriteRune(c)
		r.in.advance()
	}
	return sexp.Symbol(sb.String()), nil
}

func (r *Reader) readString() (*sexp.Node, error) {
	c, ok := r.in.peek()
	if !ok {
		return nil, r.errEOF()
	}
	if c != '"' {
		return nil, r.errWrongChar(c, `"`)
	}
	r.in.advance()

	var sb strings.Builder
	for {
		c, ok := r.in.peek()
		if !ok {
			return nil, r.errEOF()
		}
		if c == '"' {
			r.in.advance()
			break
		}
		decoded, err := r.readEscapedStringChar()
		if err != nil {
			return nil, err
		}
		sb.WriteRune(decoded)
	}
	return sexp.String(sb.String()), nil
}

// readEscapedStringChar consumes one character of string content. A
// backslash escapes the following character: n, t and r decode to
// their control characters, anything else passes through unchanged.
func (r *Reader) readEscapedStringChar() (rune, error) {
	c, ok := r.in.next()
	if !ok {
		return 0, r.errEOF()
	}
	if c != '\\' {
		return c, nil
	}
	c, ok = r.in.next()
	if !ok {
		return 0, r.errEOF()
	}
	switch c {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	default:
		return c, nil
	}
}

const digits = "0123456789"

// readNumber decodes a decimal integer literal with an optional
// leading minus sign. A bare "-", or "-" followed by a non-digit,
// continues as a symbol so tokens like "-" and "-inc" stay readable.
// A digit run followed by a non-delimiter is rejected rather than
// silently split into two tokens.
func (r *Reader) readNumber() (*sexp.Node, error) {
	var sb strings.Builder

	c, ok := r.in.peek()
	if !ok {
		return nil, r.errEOF()
	}
	if c == '-' {
		sb.WriteRune(c)
		r.in.advance()

		c, ok = r.in.peek()
		if !ok || isDelimiter(c) {
			return sexp.Symbol(sb.String()), nil
		}
		if !isDigit(c) {
			return r.finishSymbol(&sb)
		}
	}

	for {
		c, ok := r.in.peek()
		if !ok || isDelimiter(c) {
			break
		}
		if !isDigit(c) {
			return nil, r.errWrongChar(c, digits)
		}
		sb.WriteRune(c)
		r.in.advance()
	}

	v, err := strconv.ParseInt(sb.String(), 10, 64)
	if err != nil {
		return nil, &ReadError{
			Kind: ErrWrongChar,
			Loc:  r.in.pos,
			Msg:  fmt.Sprintf("integer literal out of range: %q", sb.String()),
		}
	}
	return sexp.Integer(v), nil
}

// finishSymbol completes a symbol whose prefix is already in sb.
func (r *Reader) finishSymbol(sb *strings.Builder) (*sexp.Node, error) {
	for {
		c, ok := r.in.peek()
		if !ok || isDelimiter(c) {
			break
		}
		sb.WriteRune(c)
		r.in.advance()
	}
	return sexp.Symbol(sb.String()), nil
}
