package lexer

import (
	"fmt"
)

// Type of a Token.
type Type int

// Token types produced by the Lexer.
const (
	EOF Type = iota
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Equals
	Colon
	Comma
	Plus
	String
	MultilineString
	UnquotedText
	PathText
	QuotedPath
	Dot
	Substitution
	OptionalSubstitution
	Include
	Whitespace
	Newline
	Comment
	BlockComment
)

var typeNames = [...]string{
	EOF:                  "EOF",
	LeftBrace:            "LEFT_BRACE",
	RightBrace:           "RIGHT_BRACE",
	LeftBracket:          "LEFT_BRACKET",
	RightBracket:         "RIGHT_BRACKET",
	Equals:               "EQUALS",
	Colon:                "COLON",
	Comma:                "COMMA",
	Plus:                 "PLUS",
	String:               "STRING",
	MultilineString:      "MULTILINE_STRING",
	UnquotedText:         "UNQUOTED_TEXT",
	PathText:             "PATH_TEXT",
	QuotedPath:           "QUOTED_PATH",
	Dot:                  "DOT",
	Substitution:         "SUBSTITUTION",
	OptionalSubstitution: "OPTIONAL_SUBSTITUTION",
	Include:              "INCLUDE",
	Whitespace:           "WHITESPACE",
	Newline:              "NEWLINE",
	Comment:              "COMMENT",
	BlockComment:         "BLOCK_COMMENT",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Interface is anything that returns tokens in document order.
type Interface interface {
	// Next consumes and returns the next token.
	Next() (Token, error)
}

// ConsumeAll reads all tokens from a lexer, including the trailing EOF.
func ConsumeAll(lex Interface) ([]Token, error) {
	tokens := make([]Token, 0, 64)
	for {
		token, err := lex.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Type == EOF {
			return tokens, nil
		}
	}
}

// Position of a token.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Synthetic reports whether the position belongs to a token that does not
// exist in the input, such as the braces of an implicit root object.
func (p Position) Synthetic() bool {
	return p.Line < 0
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Filename: %q, Offset: %d, Line: %d, Column: %d}",
		p.Filename, p.Offset, p.Line, p.Column)
}

func (p Position) String() string {
	filename := p.Filename
	if filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", filename, p.Line, p.Column)
}

// A Token returned by a Lexer.
type Token struct {
	Type  Type
	Value string
	Pos   Position
}

// EOFToken creates a new EOF token at the given position.
func EOFToken(pos Position) Token {
	return Token{Type: EOF, Pos: pos}
}

// EOF returns true if this Token is an EOF token.
func (t Token) EOF() bool {
	return t.Type == EOF
}

func (t Token) String() string {
	if t.EOF() {
		return "<EOF>"
	}
	return t.Value
}

func (t Token) GoString() string {
	return fmt.Sprintf("Token@%s{%s, %q}", t.Pos.String(), t.Type, t.Value)
}
