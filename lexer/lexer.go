package lexer

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

const eof rune = -1

// Characters allowed in unquoted text besides letters and digits.
const unquotedSymbols = "-._/%~"

const quoteHint = "try enclosing the key or value in double quotes"

type mode int

const (
	pathMode mode = iota
	valueMode
)

var _ Interface = &Lexer{}

// Lexer is a streaming HOCON tokenizer.
//
// A Lexer is bound to a single input stream and is not reusable.
type Lexer struct {
	r    *bufio.Reader
	pos  Position
	mode mode
	// Open braces and brackets, innermost last.
	stack []Token
	err   error
}

// New creates a Lexer reading from r.
func New(filename string, r io.Reader) *Lexer {
	return &Lexer{
		r:   bufio.NewReader(r),
		pos: Position{Filename: filename, Line: 1, Column: 1},
	}
}

// LexString returns a new Lexer over a string.
func LexString(filename, s string) *Lexer {
	return New(filename, strings.NewReader(s))
}

// LexBytes returns a new Lexer over bytes.
func LexBytes(filename string, b []byte) *Lexer {
	return New(filename, bytes.NewReader(b))
}

// Tokenize returns every token in s, including the trailing EOF.
func Tokenize(s string) ([]Token, error) {
	return ConsumeAll(LexString("", s))
}

// Next consumes and returns the next token.
//
// Once an error has been returned every subsequent call returns the same error.
func (l *Lexer) Next() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	token, err := l.scan()
	if err != nil {
		l.err = err
		return Token{}, err
	}
	return token, nil
}

func (l *Lexer) scan() (Token, error) {
	start := l.pos
	r, err := l.peek()
	if err != nil {
		return Token{}, err
	}
	switch {
	case r == eof:
		return l.end(start)

	case r == '\n' || l.lookingAt("\r\n"):
		value := l.newline()
		l.separator()
		return Token{Type: Newline, Value: value, Pos: start}, nil

	case isSpace(r):
		return l.whitespace(start)

	case r == '#':
		l.skip(1)
		return l.lineComment(start)

	case l.lookingAt("//"):
		l.skip(2)
		return l.lineComment(start)

	case l.lookingAt("/*"):
		return l.blockComment(start)

	case r == '{' || r == '[':
		l.skip(1)
		token := Token{Type: LeftBrace, Value: string(r), Pos: start}
		l.mode = pathMode
		if r == '[' {
			token.Type = LeftBracket
			l.mode = valueMode
		}
		l.stack = append(l.stack, token)
		return token, nil

	case r == '}' || r == ']':
		return l.close(start, r)

	case r == '=' || r == ':':
		l.skip(1)
		l.mode = valueMode
		typ := Equals
		if r == ':' {
			typ = Colon
		}
		return Token{Type: typ, Value: string(r), Pos: start}, nil

	case r == ',':
		l.skip(1)
		l.separator()
		return Token{Type: Comma, Value: ",", Pos: start}, nil

	case r == '+':
		l.skip(1)
		return Token{Type: Plus, Value: "+", Pos: start}, nil

	case l.lookingAt(`"""`):
		return l.multilineString(start)

	case r == '"':
		return l.quotedString(start)

	case r == '$':
		return l.substitution(start)

	case isUnquoted(r):
		return l.text(start)
	}
	return Token{}, Errorf(start, "Invalid character %s; %s", quoteRune(r), quoteHint)
}

// end returns EOF, unless there are unclosed objects or arrays.
func (l *Lexer) end(pos Position) (Token, error) {
	if len(l.stack) > 0 {
		open := l.stack[len(l.stack)-1]
		if open.Type == LeftBrace {
			return Token{}, Errorf(pos, "Unclosed object: expected '}' to match '{' at %d:%d", open.Pos.Line, open.Pos.Column)
		}
		return Token{}, Errorf(pos, "Unclosed array: expected ']' to match '[' at %d:%d", open.Pos.Line, open.Pos.Column)
	}
	return EOFToken(pos), nil
}

func (l *Lexer) close(pos Position, r rune) (Token, error) {
	want, typ := LeftBrace, RightBrace
	if r == ']' {
		want, typ = LeftBracket, RightBracket
	}
	if len(l.stack) == 0 {
		return Token{}, Errorf(pos, "Unbalanced %s with no matching opening token", quoteRune(r))
	}
	open := l.stack[len(l.stack)-1]
	if open.Type != want {
		return Token{}, Errorf(pos, "Mismatched %s: '%s' at %d:%d is still open", quoteRune(r), open.Value, open.Pos.Line, open.Pos.Column)
	}
	l.skip(1)
	l.stack = l.stack[:len(l.stack)-1]
	l.mode = valueMode
	return Token{Type: typ, Value: string(r), Pos: pos}, nil
}

// separator resets the context after a comma or newline.
func (l *Lexer) separator() {
	if len(l.stack) > 0 && l.stack[len(l.stack)-1].Type == LeftBracket {
		l.mode = valueMode
		return
	}
	l.mode = pathMode
}

func (l *Lexer) newline() string {
	if l.lookingAt("\r\n") {
		l.skip(2)
		return "\r\n"
	}
	l.skip(1)
	return "\n"
}

func (l *Lexer) whitespace(pos Position) (Token, error) {
	var sb strings.Builder
	for {
		r, err := l.peek()
		if err != nil {
			return Token{}, err
		}
		if !isSpace(r) || l.lookingAt("\r\n") {
			break
		}
		sb.WriteRune(l.next())
	}
	return Token{Type: Whitespace, Value: sb.String(), Pos: pos}, nil
}

func (l *Lexer) lineComment(pos Position) (Token, error) {
	var sb strings.Builder
	for {
		r, err := l.peek()
		if err != nil {
			return Token{}, err
		}
		if r == eof || r == '\n' || l.lookingAt("\r\n") {
			break
		}
		sb.WriteRune(l.next())
	}
	return Token{Type: Comment, Value: sb.String(), Pos: pos}, nil
}

func (l *Lexer) blockComment(pos Position) (Token, error) {
	l.skip(2)
	var sb strings.Builder
	for !l.lookingAt("*/") {
		r, err := l.peek()
		if err != nil {
			return Token{}, err
		}
		if r == eof {
			return Token{}, Errorf(pos, "Unclosed block comment")
		}
		sb.WriteRune(l.next())
	}
	l.skip(2)
	value := sb.String()
	// A comment spanning lines separates pairs like a newline does.
	if strings.Contains(value, "\n") {
		l.separator()
	}
	return Token{Type: BlockComment, Value: value, Pos: pos}, nil
}

func (l *Lexer) quotedString(pos Position) (Token, error) {
	var sb strings.Builder
	sb.WriteRune(l.next())
	// Position of a high surrogate escape still waiting for its low half.
	var high *Position
	for {
		r, err := l.peek()
		if err != nil {
			return Token{}, err
		}
		switch r {
		case eof, '\n', '\r':
			return Token{}, Errorf(pos, "Unclosed quoted string")
		}
		if high != nil && r != '\\' {
			return Token{}, Errorf(*high, "Invalid unicode escape sequence in quoted string")
		}
		switch r {
		case '"':
			sb.WriteRune(l.next())
			return l.key(Token{Type: String, Value: sb.String(), Pos: pos}, QuotedPath)
		case '\\':
			escPos := l.pos
			sb.WriteRune(l.next())
			c, err := l.peek()
			if err != nil {
				return Token{}, err
			}
			if c == eof || !strings.ContainsRune(`nrtbf"\'/u`, c) {
				return Token{}, Errorf(escPos, "Invalid escape sequence '\\%s' in quoted string", escapeDisplay(c))
			}
			sb.WriteRune(l.next())
			if c != 'u' {
				if high != nil {
					return Token{}, Errorf(*high, "Invalid unicode escape sequence in quoted string")
				}
				continue
			}
			var code rune
			for i := 0; i < 4; i++ {
				h, err := l.peek()
				if err != nil {
					return Token{}, err
				}
				if !isHex(h) {
					return Token{}, Errorf(escPos, "Invalid unicode escape sequence in quoted string")
				}
				code = code<<4 | hexValue(h)
				sb.WriteRune(l.next())
			}
			switch {
			case isHighSurrogate(code):
				if high != nil {
					return Token{}, Errorf(*high, "Invalid unicode escape sequence in quoted string")
				}
				high = &escPos
			case isLowSurrogate(code):
				if high == nil {
					return Token{}, Errorf(escPos, "Invalid unicode escape sequence in quoted string")
				}
				high = nil
			case high != nil:
				return Token{}, Errorf(*high, "Invalid unicode escape sequence in quoted string")
			}
		default:
			sb.WriteRune(l.next())
		}
	}
}

func (l *Lexer) multilineString(pos Position) (Token, error) {
	l.skip(3)
	var sb strings.Builder
	for !l.lookingAt(`"""`) {
		r, err := l.peek()
		if err != nil {
			return Token{}, err
		}
		if r == eof {
			return Token{}, Errorf(pos, "Unclosed triple-quoted string")
		}
		sb.WriteRune(l.next())
	}
	l.skip(3)
	return Token{Type: MultilineString, Value: sb.String(), Pos: pos}, nil
}

func (l *Lexer) substitution(pos Position) (Token, error) {
	if !l.lookingAt("${") {
		return Token{}, Errorf(pos, "Invalid character '$'; %s", quoteHint)
	}
	l.skip(2)
	typ := Substitution
	if l.lookingAt("?") {
		l.skip(1)
		typ = OptionalSubstitution
	}
	var sb strings.Builder
	depth := 0
	for {
		r, err := l.peek()
		if err != nil {
			return Token{}, err
		}
		if r == eof || r == '\n' || r == '\r' {
			return Token{}, Errorf(pos, "Unclosed substitution")
		}
		if l.lookingAt("${") {
			if depth == 1 {
				return Token{}, Errorf(l.pos, "Nested substitution deeper than one level")
			}
			depth++
			l.skip(2)
			sb.WriteString("${")
			continue
		}
		if r == '}' {
			l.skip(1)
			if depth == 0 {
				break
			}
			depth--
			sb.WriteRune(r)
			continue
		}
		sb.WriteRune(l.next())
	}
	if sb.Len() == 0 {
		if typ == OptionalSubstitution {
			return Token{}, Errorf(pos, "Empty optional substitution")
		}
		return Token{}, Errorf(pos, "Empty substitution")
	}
	return Token{Type: typ, Value: sb.String(), Pos: pos}, nil
}

// text scans a run of unquoted characters.
func (l *Lexer) text(pos Position) (Token, error) {
	var sb strings.Builder
	for {
		r, err := l.peek()
		if err != nil {
			return Token{}, err
		}
		if !isUnquoted(r) || l.lookingAt("//") || l.lookingAt("/*") {
			break
		}
		sb.WriteRune(l.next())
	}
	value := sb.String()
	if l.mode == pathMode {
		switch value {
		case "include":
			if l.includeFollows() {
				l.mode = valueMode
				return Token{Type: Include, Value: value, Pos: pos}, nil
			}
		case ".":
			return Token{Type: Dot, Value: value, Pos: pos}, nil
		}
	}
	return l.key(Token{Type: UnquotedText, Value: value, Pos: pos}, PathText)
}

// key retypes a value token as a path token when scanning a key, and
// rejects keys directly followed by a structural character.
func (l *Lexer) key(token Token, pathType Type) (Token, error) {
	if l.mode != pathMode {
		return token, nil
	}
	token.Type = pathType
	r, err := l.peek()
	if err != nil {
		return Token{}, err
	}
	if strings.ContainsRune("{}[],", r) {
		return Token{}, Errorf(l.pos, "Key '%s' may not be followed by token: '%c'; %s", token.Value, r, quoteHint)
	}
	return token, nil
}

// includeFollows reports whether the input continues with whitespace and a quoted string.
func (l *Lexer) includeFollows() bool {
	for n := 1; ; n++ {
		b, _ := l.r.Peek(n)
		if len(b) < n {
			return false
		}
		switch b[n-1] {
		case ' ', '\t':
			continue
		case '"':
			return n > 1
		}
		return false
	}
}

// peek returns the next rune without consuming it.
func (l *Lexer) peek() (rune, error) {
	r, _, err := l.r.ReadRune()
	if err == io.EOF {
		return eof, nil
	} else if err != nil {
		return eof, Wrapf(l.pos, err, "failed to read input")
	}
	_ = l.r.UnreadRune()
	return r, nil
}

// next consumes a rune, updating the position.
func (l *Lexer) next() rune {
	r, size, err := l.r.ReadRune()
	if err != nil {
		return eof
	}
	l.pos.Offset += size
	if r == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	return r
}

func (l *Lexer) skip(n int) {
	for i := 0; i < n; i++ {
		l.next()
	}
}

// lookingAt reports whether the unread input starts with the ASCII string s.
func (l *Lexer) lookingAt(s string) bool {
	b, _ := l.r.Peek(len(s))
	return string(b) == s
}

func isSpace(r rune) bool {
	switch r {
	case '\n', eof:
		return false
	case ' ', '\t', '\r', '\f', '\v', '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}

func isUnquoted(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || (r < utf8.RuneSelf && strings.ContainsRune(unquotedSymbols, r))
}

func hexValue(r rune) rune {
	switch {
	case r >= 'a':
		return r - 'a' + 10
	case r >= 'A':
		return r - 'A' + 10
	}
	return r - '0'
}

func isHex(r rune) bool {
	return '0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}

func quoteRune(r rune) string {
	return "'" + string(r) + "'"
}

func escapeDisplay(r rune) string {
	if r == eof {
		return ""
	}
	return string(r)
}
