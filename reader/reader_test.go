package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/sx/sexp"
)

func mustRead(t *testing.T, input string) *sexp.Node {
	t.Helper()
	node, err := NewString(input).ReadSExp()
	require.NoError(t, err)
	require.NotNil(t, node)
	return node
}

func readErr(t *testing.T, input string) *ReadError {
	t.Helper()
	_, err := NewString(input).ReadSExp()
	require.Error(t, err)
	readErr, ok := err.(*ReadError)
	require.True(t, ok, "expected *ReadError, got %T", err)
	return readErr
}

func TestReadList(t *testing.T) {
	tests := []struct {
		input string
		items int
	}{
		{"()", 0},
		{"[]", 0},
		{"{}", 0},
		{"(a)", 1},
		{"(a b c)", 3},
		{"[a b c]", 3},
		{"{a b c}", 3},
		{"(  a\tb\n\nc  )", 3},
		{"(a (b c) d)", 3},
		{"{a [b (c)] d}", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := mustRead(t, tt.input)
			assert.True(t, node.IsList())
			assert.Equal(t, tt.items, node.Len())
		})
	}
}

func TestReadListOrder(t *testing.T) {
	node := mustRead(t, "(one two three)")

	want := []string{"one", "two", "three"}
	for i, text := range want {
		require.Equal(t, sexp.KindCons, node.Kind, "item %d", i)
		require.Equal(t, sexp.KindSymbol, node.Head.Kind)
		assert.Equal(t, text, node.Head.Text)
		node = node.Tail
	}
	assert.Equal(t, sexp.KindNil, node.Kind)
}

func TestReadListParenMismatch(t *testing.T) {
	tests := []struct {
		input string
	}{
		{"(a]"},
		{"(a}"},
		{"[a)"},
		{"{a]"},
		{"(a (b] c)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := readErr(t, tt.input)
			assert.Equal(t, ErrParenMismatch, err.Kind)
		})
	}
}

func TestReadListParenMismatchMessage(t *testing.T) {
	err := readErr(t, "(a]")
	assert.Equal(t, ErrParenMismatch, err.Kind)
	assert.Contains(t, err.Msg, "'('")
	assert.Contains(t, err.Msg, "']'")
	assert.Equal(t, Position{Line: 0, Col: 2}, err.Loc)
}

func TestReadListEarlyEOF(t *testing.T) {
	tests := []string{
		"(a",
		"(",
		"(a (b)",
		"[x y",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			err := readErr(t, input)
			assert.Equal(t, ErrEarlyEOF, err.Kind)
		})
	}
}

func TestReadSymbol(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"foo", "foo"},
		{"foo bar", "foo"},
		{"foo)", "foo"},
		{`foo"bar"`, "foo"},
		{"+", "+"},
		{"a.b/c", "a.b/c"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := mustRead(t, tt.input)
			require.Equal(t, sexp.KindSymbol, node.Kind)
			assert.Equal(t, tt.want, node.Text)
		})
	}
}

func TestReadSymbolLeavesDelimiter(t *testing.T) {
	r := NewString("foo)")
	node, err := r.ReadSExp()
	require.NoError(t, err)
	require.Equal(t, sexp.KindSymbol, node.Kind)
	assert.Equal(t, "foo", node.Text)

	// the ")" is still unread
	assert.Equal(t, Position{Line: 0, Col: 3}, r.Position())
}

func TestReadSymbolEmpty(t *testing.T) {
	// an immediate delimiter yields the empty symbol
	node := mustRead(t, ")")
	require.Equal(t, sexp.KindSymbol, node.Kind)
	assert.Equal(t, "", node.Text)
}

func TestReadString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`""`, ""},
		{`"abc"`, "abc"},
		{`"a b c"`, "a b c"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"a\rb"`, "a\rb"},
		{`"\\"`, `\`},
		{`"\""`, `"`},
		{`"\q"`, "q"},
		{`"(not a list)"`, "(not a list)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := mustRead(t, tt.input)
			require.Equal(t, sexp.KindString, node.Kind)
			assert.Equal(t, tt.want, node.Text)
		})
	}
}

func TestReadStringEarlyEOF(t *testing.T) {
	tests := []string{
		`"`,
		`"abc`,
		`"abc\`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			err := readErr(t, input)
			assert.Equal(t, ErrEarlyEOF, err.Kind)
		})
	}
}

func TestReadInteger(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"42", 42},
		{"-7", -7},
		{"9223372036854775807", 9223372036854775807},
		{"-9223372036854775808", -9223372036854775808},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := mustRead(t, tt.input)
			require.Equal(t, sexp.KindInteger, node.Kind)
			assert.Equal(t, tt.want, node.Int)
		})
	}
}

func TestReadIntegerRejectsTrailingGarbage(t *testing.T) {
	err := readErr(t, "12ab")
	assert.Equal(t, ErrWrongChar, err.Kind)
	assert.Contains(t, err.Msg, "0123456789")
}

func TestReadIntegerOutOfRange(t *testing.T) {
	err := readErr(t, "99999999999999999999")
	assert.Equal(t, ErrWrongChar, err.Kind)
	assert.Contains(t, err.Msg, "out of range")
}

func TestReadMinusFallsBackToSymbol(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"-", "-"},
		{"- 1", "-"},
		{"-inc", "-inc"},
		{"->", "->"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := mustRead(t, tt.input)
			require.Equal(t, sexp.KindSymbol, node.Kind)
			assert.Equal(t, tt.want, node.Text)
		})
	}
}

func TestReadIntegerInsideList(t *testing.T) {
	node := mustRead(t, "(add 1 -2)")
	require.Equal(t, 3, node.Len())

	assert.Equal(t, "add", node.Head.Text)
	assert.Equal(t, int64(1), node.Tail.Head.Int)
	assert.Equal(t, int64(-2), node.Tail.Tail.Head.Int)
}

func TestReadSExpOnWhitespace(t *testing.T) {
	err := readErr(t, "  a")
	assert.Equal(t, ErrWrongChar, err.Kind)
	assert.Contains(t, err.Msg, "Any")
}

func TestReadSExpOnEmptyInput(t *testing.T) {
	err := readErr(t, "")
	assert.Equal(t, ErrEarlyEOF, err.Kind)
}

func TestReadConsecutiveLists(t *testing.T) {
	// the closing bracket is consumed, so sibling forms can be read
	// from the same stream
	r := NewString("(a) (b)")

	first, err := r.ReadSExp()
	require.NoError(t, err)
	assert.Equal(t, "a", first.Head.Text)

	r.skipSpace()

	second, err := r.ReadSExp()
	require.NoError(t, err)
	assert.Equal(t, "b", second.Head.Text)
}

func TestReadAll(t *testing.T) {
	tests := []struct {
		input string
		count int
	}{
		{"", 0},
		{"   \n\t ", 0},
		{"a", 1},
		{"(a) (b)", 2},
		{"(a)(b)", 2},
		{"a b (c d) \"e\" 5", 5},
		{"(def f (x) (mul x x))\n(f 3)\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			nodes, err := NewString(tt.input).ReadAll()
			require.NoError(t, err)
			assert.Len(t, nodes, tt.count)
		})
	}
}

func TestReadAllFirstFailureWins(t *testing.T) {
	nodes, err := NewString("(a) (b] (c)").ReadAll()
	require.Error(t, err)
	assert.Nil(t, nodes)

	readErr, ok := err.(*ReadError)
	require.True(t, ok)
	assert.Equal(t, ErrParenMismatch, readErr.Kind)
}

func TestPositionAfterMultilineList(t *testing.T) {
	r := NewString("(a\n b)")
	_, err := r.ReadSExp()
	require.NoError(t, err)

	assert.Equal(t, Position{Line: 1, Col: 3}, r.Position())
}

func TestPositionInFileLabel(t *testing.T) {
	r := NewString("(a", WithFile("input.sexp"))
	_, err := r.ReadSExp()
	require.Error(t, err)

	readErr, ok := err.(*ReadError)
	require.True(t, ok)
	assert.Equal(t, "input.sexp", readErr.Loc.File)
	assert.Equal(t, "input.sexp:0:2: unexpected end of file", err.Error())
}

func TestRereadYieldsEqualTrees(t *testing.T) {
	input := `(def greet (name) (print "hello, \"world\"\n" name -3 42))`

	first, err := NewString(input).ReadSExp()
	require.NoError(t, err)
	second, err := NewString(input).ReadSExp()
	require.NoError(t, err)

	assert.True(t, sexp.Equal(first, second))
}

func TestReadErrorKindString(t *testing.T) {
	assert.Equal(t, "early-eof", ErrEarlyEOF.String())
	assert.Equal(t, "wrong-char", ErrWrongChar.String())
	assert.Equal(t, "paren-mismatch", ErrParenMismatch.String())
	assert.Equal(t, "not-implemented", ErrNotImplemented.String())
}
