package mason_test

import (
	"errors"
	"fmt"
	"testing"

	require "github.com/alecthomas/assert/v2"

	"github.com/maveniverse/mason"
	"github.com/maveniverse/mason/lexer"
)

func TestErrorReporting(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`a = $`, `1:5: Invalid character '$'; try enclosing the key or value in double quotes`},
		{`a = "open`, `1:5: Unclosed quoted string`},
		{`a = "\uD800"`, `1:6: Invalid unicode escape sequence in quoted string`},
		{`a = 1 + 2`, `1:7: Concatenation operator (+) not supported`},
		{`include "other.conf"`, `1:1: include directive not supported`},
		{`a = 1 }`, `1:7: Unbalanced '}' with no matching opening token`},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			p, err := mason.ParseString("", test.input)
			require.NoError(t, err)
			_, err = mason.Build(p)
			require.EqualError(t, err, test.expected)
		})
	}
}

func TestErrorWrap(t *testing.T) {
	expected := errors.New("badbad")
	err := lexer.Wrapf(lexer.Position{Line: 1, Column: 1}, expected, "bad: %s", "thing")
	require.Equal(t, expected, errors.Unwrap(err))
	require.Equal(t, "1:1: bad: thing: badbad", err.Error())
	require.Equal(t, "bad: thing: badbad", err.Message())
}

func TestAsError(t *testing.T) {
	p, err := mason.ParseString("app.conf", "a = {")
	require.NoError(t, err)
	_, err = mason.Build(p)
	perr, ok := mason.AsError(fmt.Errorf("loading: %w", err))
	require.True(t, ok)
	require.Equal(t, "app.conf", perr.Pos.Filename)

	_, ok = mason.AsError(errors.New("plain"))
	require.False(t, ok)
}
