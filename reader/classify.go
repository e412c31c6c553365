package reader

import "unicode"

// Character classes used by the grammar. All predicates are pure.

func isOpenParen(r rune) bool {
	return r == '(' || r == '[' || r == '{'
}

func isCloseParen(r rune) bool {
	return r == ')' || r == ']' || r == '}'
}

// isMatchingParen reports whether closer is the closing bracket for
// open. Any pairing other than ()/[]/{}, including two brackets of
// different kinds, does not match.
func isMatchingParen(open, closer rune) bool {
	switch open {
	case '(':
		return closer == ')'
	case '[':
		return closer == ']'
	case '{':
		return closer == '}'
	}
	return false
}

// isDelimiter reports whether r ends an unquoted token.
func isDelimiter(r rune) bool {
	return isSpace(r) || isOpenParen(r) || isCloseParen(r) || r == '"'
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
