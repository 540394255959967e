package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	// Remove whitespace and upper case all other tokens.
	mapper := Map(New("", strings.NewReader("a = b")), func(t *Token) bool {
		if t.Type == Whitespace {
			return false
		}
		t.Value = strings.ToUpper(t.Value)
		return true
	})
	actual, err := ConsumeAll(mapper)
	require.NoError(t, err)

	expected := []Token{
		{Type: PathText, Value: "A", Pos: Position{Filename: "", Offset: 0, Line: 1, Column: 1}},
		{Type: Equals, Value: "=", Pos: Position{Filename: "", Offset: 2, Line: 1, Column: 3}},
		{Type: UnquotedText, Value: "B", Pos: Position{Filename: "", Offset: 4, Line: 1, Column: 5}},
		{Type: EOF, Pos: Position{Filename: "", Offset: 5, Line: 1, Column: 6}},
	}
	require.Equal(t, expected, actual)
}

func TestMapSkipsEOF(t *testing.T) {
	calls := 0
	mapper := Map(New("", strings.NewReader("")), func(t *Token) bool {
		calls++
		return false
	})
	actual, err := ConsumeAll(mapper)
	require.NoError(t, err)
	require.Len(t, actual, 1)
	require.Equal(t, 0, calls)
}

func TestElide(t *testing.T) {
	lex := Elide(New("", strings.NewReader("a { # note\n  b = 1 }\n")), Whitespace, Newline, Comment)
	actual, err := ConsumeAll(lex)
	require.NoError(t, err)
	types := []Type{}
	for _, token := range actual {
		types = append(types, token.Type)
	}
	require.Equal(t, []Type{PathText, LeftBrace, PathText, Equals, UnquotedText, RightBrace, EOF}, types)
}

func TestElideError(t *testing.T) {
	_, err := ConsumeAll(Elide(New("", strings.NewReader("a = @")), Whitespace))
	require.EqualError(t, err, "1:5: Invalid character '@'; try enclosing the key or value in double quotes")
}

func TestTypeNamed(t *testing.T) {
	typ, ok := TypeNamed("BLOCK_COMMENT")
	require.True(t, ok)
	require.Equal(t, BlockComment, typ)
	_, ok = TypeNamed("Whitespace")
	require.False(t, ok)
}
