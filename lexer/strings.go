package lexer

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// Unquote decodes the value of a String or QuotedPath token.
//
// The surrounding double quotes are removed and the escape sequences
// \n \r \t \b \f \" \\ \' \/ and \uXXXX are replaced with the characters
// they denote. A UTF-16 surrogate must be escaped as a complete pair.
func Unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", strconv.ErrSyntax
	}
	s = s[1 : len(s)-1]
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var out strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			out.WriteByte(s[i])
			i++
			continue
		}
		if i+1 == len(s) {
			return "", strconv.ErrSyntax
		}
		if c, ok := escapes[s[i+1]]; ok {
			out.WriteByte(c)
			i += 2
			continue
		}
		if s[i+1] != 'u' {
			return "", strconv.ErrSyntax
		}
		r, n, err := unicodeEscape(s[i:])
		if err != nil {
			return "", err
		}
		out.WriteRune(r)
		i += n
	}
	return out.String(), nil
}

var escapes = map[byte]byte{
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'b':  '\b',
	'f':  '\f',
	'"':  '"',
	'\\': '\\',
	'\'': '\'',
	'/':  '/',
}

// Unwrap returns the text a token contributes to a key or value.
//
// Quoted strings are unquoted, substitutions are rendered back in their
// ${path} or ${?path} form and every other token contributes its value.
func Unwrap(token Token) (string, error) {
	switch token.Type {
	case String, QuotedPath:
		value, err := Unquote(token.Value)
		if err != nil {
			return "", Wrapf(token.Pos, err, "invalid quoted string %s", token.Value)
		}
		return value, nil
	case Substitution:
		return "${" + token.Value + "}", nil
	case OptionalSubstitution:
		return "${?" + token.Value + "}", nil
	}
	return token.Value, nil
}

// unicodeEscape decodes the \uXXXX escape, or surrogate pair of escapes, at
// the start of s and returns the rune and the number of bytes consumed.
func unicodeEscape(s string) (rune, int, error) {
	r1, ok := hexEscape(s)
	if !ok {
		return 0, 0, strconv.ErrSyntax
	}
	if !utf16.IsSurrogate(r1) {
		return r1, 6, nil
	}
	if r2, ok := hexEscape(s[6:]); ok && isHighSurrogate(r1) && isLowSurrogate(r2) {
		return utf16.DecodeRune(r1, r2), 12, nil
	}
	return 0, 0, strconv.ErrSyntax
}

// hexEscape parses a \uXXXX escape at the start of s.
func hexEscape(s string) (rune, bool) {
	if len(s) < 6 || s[0] != '\\' || s[1] != 'u' {
		return 0, false
	}
	for i := 2; i < 6; i++ {
		if !isHex(rune(s[i])) {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s[2:6], 16, 16)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

func isHighSurrogate(r rune) bool { return 0xD800 <= r && r < 0xDC00 }

func isLowSurrogate(r rune) bool { return 0xDC00 <= r && r < 0xE000 }
