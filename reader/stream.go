package reader

import "io"

// stream wraps a rune source with exactly one rune of lookahead and
// tracks the position of the next unread character. The buffer is
// primed at construction so peek is valid immediately.
type stream struct {
	src io.RuneReader
	pos Position

	buffered rune
	hasNext  bool

	err error
}

func newStream(src io.RuneReader, file string) *stream {
	s := &stream{
		src: src,
		pos: Position{File: file},
	}
	s.fill()
	return s
}

func (s *stream) fill() {
	r, _, err := s.src.ReadRune()
	if err != nil {
		s.hasNext = false
		if err != io.EOF {
			s.err = err
		}
		return
	}
	s.buffered = r
	s.hasNext = true
}

// peek returns the buffered rune without consuming it. It never moves
// the position.
func (s *stream) peek() (rune, bool) {
	return s.buffered, s.hasNext
}

// next consumes and returns the buffered rune, refills the buffer from
// the source, and advances the position past the consumed rune.
func (s *stream) next() (rune, bool) {
	if !s.hasNext {
		return 0, false
	}
	r := s.buffered
	s.fill()

	if r == '\n' {
		s.pos.Line++
		s.pos.Col = 0
	} else {
		s.pos.Col++
	}
	return r, true
}

func (s *stream) advance() {
	s.next()
}
