package sexp

import (
	"strconv"
	"strings"
)

// String renders the tree in list notation for diagnostics and tests.
// Strings are quoted with control characters re-escaped. The output is
// not guaranteed to re-read to the same tree; it is a debugging aid,
// not a serializer.
func (n *Node) String() string {
	var sb strings.Builder
	n.appendTo(&sb)
	return sb.String()
}

func (n *Node) appendTo(sb *strings.Builder) {
	if n == nil {
		return
	}

	switch n.Kind {
	case KindNil:
		sb.WriteString("()")
	case KindCons:
		sb.WriteByte('(')
		for item := n; ; item = item.Tail {
			item.Head.appendTo(sb)
			if item.Tail == nil || item.Tail.Kind != KindCons {
				break
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte(')')
	case KindSymbol:
		sb.WriteString(n.Text)
	case KindString:
		sb.WriteByte('"')
		for _, r := range n.Text {
			switch r {
			case '\n':
				sb.WriteString(`\n`)
			case '\t':
				sb.WriteString(`\t`)
			case '\r':
				sb.WriteString(`\r`)
			case '\\':
				sb.WriteString(`\\`)
			case '"':
				sb.WriteString(`\"`)
			default:
				sb.WriteRune(r)
			}
		}
		sb.WriteByte('"')
	case KindInteger:
		sb.WriteString(strconv.FormatInt(n.Int, 10))
	}
}
