package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maveniverse/mason/lexer"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`""`, ""},
		{`"plain"`, "plain"},
		{`"hello\nworld\t!"`, "hello\nworld\t!"},
		{`"\r\b\f"`, "\r\b\f"},
		{`"say \"hi\""`, `say "hi"`},
		{`"it\'s"`, "it's"},
		{`"a\/b"`, "a/b"},
		{`"back\\slash"`, `back\slash`},
		{`"\u00e9t\u00E9"`, "été"},
		{`"\uD83D\uDE80"`, "🚀"},
		{`"Hello 世界"`, "Hello 世界"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			actual, err := lexer.Unquote(test.input)
			require.NoError(t, err)
			require.Equal(t, test.expected, actual)
		})
	}
}

func TestUnquoteInvalid(t *testing.T) {
	for _, input := range []string{
		``, `"`, `plain`, `"\x"`, `"\u12"`, `"\u12G4"`, `"trailing\"`,
		// Escapes Go accepts but HOCON does not.
		`"\x41"`, `"\101"`, `"\U0001F600"`, `"\a"`, `"\v"`,
		// Unpaired surrogates.
		`"\uD800"`, `"\uDC00"`, `"\uD800x"`, `"\uD800\u0041"`, `"\uDE80\uD83D"`,
	} {
		_, err := lexer.Unquote(input)
		require.Error(t, err, input)
	}
}

func TestUnwrap(t *testing.T) {
	tests := []struct {
		token    lexer.Token
		expected string
	}{
		{lexer.Token{Type: lexer.String, Value: `"a b"`}, "a b"},
		{lexer.Token{Type: lexer.QuotedPath, Value: `"a.b"`}, "a.b"},
		{lexer.Token{Type: lexer.Substitution, Value: "a.b"}, "${a.b}"},
		{lexer.Token{Type: lexer.OptionalSubstitution, Value: "HOME"}, "${?HOME}"},
		{lexer.Token{Type: lexer.MultilineString, Value: "\n  raw \\n\n"}, "\n  raw \\n\n"},
		{lexer.Token{Type: lexer.UnquotedText, Value: "text"}, "text"},
		{lexer.Token{Type: lexer.Whitespace, Value: "  "}, "  "},
		{lexer.Token{Type: lexer.Dot, Value: "."}, "."},
	}
	for _, test := range tests {
		actual, err := lexer.Unwrap(test.token)
		require.NoError(t, err)
		require.Equal(t, test.expected, actual)
	}

	_, err := lexer.Unwrap(lexer.Token{Type: lexer.String, Value: `"\q"`, Pos: lexer.Position{Line: 2, Column: 3}})
	require.EqualError(t, err, `2:3: invalid quoted string "\q": invalid syntax`)
}
