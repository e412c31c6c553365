package reader

import "fmt"

// Position identifies a location in source text. Line and Col are
// zero-based; Col resets to 0 immediately after a newline. A reader's
// position always points at the next character to be read.
type Position struct {
	File string
	Line int
	Col  int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
