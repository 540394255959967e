package mason

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maveniverse/mason/lexer"
)

// rootState tracks whether the document root is an explicit or implicit object.
type rootState int

const (
	rootUnknown rootState = iota
	rootExplicit
	rootImplicitBefore
	rootImplicitWithin
	rootImplicitDone
)

// rootPos is the position of events synthesized for an implicit root object.
var rootPos = lexer.Position{Line: -1, Column: -1}

// A Parser assembles lexer tokens into Events.
//
// A Parser is bound to a single input stream. Once Next has returned an
// error, every later call returns the same error.
type Parser struct {
	lex      *lexer.Peeker
	source   io.Reader
	filename string
	trace    io.Writer

	root    rootState
	current Event
	err     error

	// Structural state used to validate the event stream.
	stack    []EventType
	field    *Event
	rootDone bool
	eof      bool
}

// NewParser creates a Parser reading HOCON from r.
func NewParser(filename string, r io.Reader, options ...Option) (*Parser, error) {
	p := &Parser{
		lex:      lexer.Upgrade(lexer.New(filename, r)),
		source:   r,
		filename: filename,
	}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ParseString creates a Parser over a string.
func ParseString(filename, s string, options ...Option) (*Parser, error) {
	return NewParser(filename, strings.NewReader(s), options...)
}

// ParseBytes creates a Parser over bytes.
func ParseBytes(filename string, b []byte, options ...Option) (*Parser, error) {
	return NewParser(filename, bytes.NewReader(b), options...)
}

// Next returns the next event.
//
// The stream ends with an EOF event, which is returned again on subsequent calls.
func (p *Parser) Next() (Event, error) {
	if p.err != nil {
		return Event{}, p.err
	}
	event, err := p.next()
	if err == nil {
		err = p.check(event)
	}
	if err != nil {
		p.err = err
		p.current = Event{}
		p.traceError(err)
		return Event{}, err
	}
	p.current = event
	p.traceEvent(event)
	return event, nil
}

// CurrentName returns the field name if the last event was a FieldName.
func (p *Parser) CurrentName() string {
	if p.current.Type != FieldName {
		return ""
	}
	return p.current.Value
}

// Text returns the text of the last event if it was a FieldName or Scalar.
func (p *Parser) Text() string {
	switch p.current.Type {
	case FieldName, Scalar:
		return p.current.Value
	}
	return ""
}

// Pos returns the position of the last event.
func (p *Parser) Pos() lexer.Position {
	return p.current.Pos
}

// Close releases the underlying input if it is an io.Closer.
func (p *Parser) Close() error {
	if p.err == nil {
		p.err = lexer.Errorf(p.current.Pos, "parser is closed")
	}
	if closer, ok := p.source.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (p *Parser) next() (Event, error) {
	switch p.root {
	case rootUnknown:
		token, err := p.peekContent()
		if err != nil {
			return Event{}, err
		}
		switch token.Type {
		case lexer.LeftBrace:
			p.root = rootExplicit
			return p.read()
		case lexer.EOF:
			// Nothing but whitespace and comments.
			p.root = rootImplicitDone
			return p.read()
		}
		// The peeked token stays buffered as the first content of the body.
		p.root = rootImplicitBefore
		return Event{Type: StartObject, Pos: p.synthetic()}, nil

	case rootImplicitBefore:
		p.root = rootImplicitWithin
		return p.read()

	case rootImplicitWithin:
		event, err := p.read()
		if err != nil {
			return Event{}, err
		}
		if event.Type == EOF {
			p.root = rootImplicitDone
			return Event{Type: EndObject, Pos: p.synthetic()}, nil
		}
		return event, nil
	}
	return p.read()
}

func (p *Parser) synthetic() lexer.Position {
	pos := rootPos
	pos.Filename = p.filename
	return pos
}

// peekContent skips tokens that never produce events and peeks at the next one.
func (p *Parser) peekContent() (lexer.Token, error) {
	for {
		token, err := p.lex.Peek()
		if err != nil {
			return token, err
		}
		if !skipped(token.Type) {
			return token, nil
		}
		if _, err := p.consume(); err != nil {
			return token, err
		}
	}
}

// read consumes tokens until one produces an event.
func (p *Parser) read() (Event, error) {
	for {
		token, err := p.consume()
		if err != nil {
			return Event{}, err
		}
		switch token.Type {
		case lexer.LeftBrace:
			return Event{Type: StartObject, Pos: token.Pos}, nil
		case lexer.RightBrace:
			return Event{Type: EndObject, Pos: token.Pos}, nil
		case lexer.LeftBracket:
			return Event{Type: StartArray, Pos: token.Pos}, nil
		case lexer.RightBracket:
			return Event{Type: EndArray, Pos: token.Pos}, nil
		case lexer.UnquotedText, lexer.String, lexer.MultilineString, lexer.Substitution, lexer.OptionalSubstitution:
			return p.value(token)
		case lexer.Dot, lexer.PathText, lexer.QuotedPath:
			return p.key(token)
		case lexer.Plus:
			return Event{}, lexer.Errorf(token.Pos, concatenationUnsupported)
		case lexer.Include:
			return Event{}, lexer.Errorf(token.Pos, includeUnsupported)
		case lexer.EOF:
			return Event{Type: EOF, Pos: token.Pos}, nil
		}
	}
}

func (p *Parser) consume() (lexer.Token, error) {
	token, err := p.lex.Next()
	if err != nil {
		return token, err
	}
	// The Peeker keeps returning EOF, only the first one is traced.
	if token.EOF() {
		if p.eof {
			return token, nil
		}
		p.eof = true
	}
	p.traceToken(token)
	return token, nil
}

// key merges adjacent path tokens into a single FieldName.
func (p *Parser) key(first lexer.Token) (Event, error) {
	run, err := p.merge(first, isKey)
	if err != nil {
		return Event{}, err
	}
	text, err := concat(run)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: FieldName, Value: text, Pos: first.Pos}, nil
}

// value merges adjacent value tokens into a single Scalar and infers its kind.
func (p *Parser) value(first lexer.Token) (Event, error) {
	run, err := p.merge(first, isValue)
	if err != nil {
		return Event{}, err
	}
	text, err := concat(run)
	if err != nil {
		return Event{}, err
	}
	// A value standing alone is kept verbatim, a merged one loses its edge whitespace.
	if len(run) > 1 {
		text = strings.TrimSpace(text)
	}
	return Event{Type: Scalar, Kind: infer(text), Value: text, Pos: first.Pos}, nil
}

// merge greedily collects tokens following first while they are compatible.
func (p *Parser) merge(first lexer.Token, compatible func(lexer.Type) bool) ([]lexer.Token, error) {
	run := []lexer.Token{first}
	for {
		token, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if !compatible(token.Type) {
			return run, nil
		}
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		run = append(run, token)
	}
}

// check validates an event against the structure seen so far.
func (p *Parser) check(event Event) error {
	inObject := len(p.stack) > 0 && p.stack[len(p.stack)-1] == StartObject
	switch event.Type {
	case FieldName:
		if len(p.stack) == 0 {
			return p.afterRoot(event)
		}
		if p.field != nil {
			return lexer.Errorf(p.field.Pos, "Expected a value for field %q", p.field.Value)
		}
		if !inObject {
			return lexer.Errorf(event.Pos, "Unexpected field %q in an array", event.Value)
		}
		field := event
		p.field = &field

	case Scalar, StartObject, StartArray:
		if len(p.stack) == 0 && p.rootDone {
			return p.afterRoot(event)
		}
		if inObject && p.field == nil {
			return lexer.Errorf(event.Pos, "Expected a field name but found %s; concatenating objects or arrays is not supported", describe(event))
		}
		p.field = nil
		if event.Type != Scalar {
			p.stack = append(p.stack, event.Type)
		}

	case EndObject, EndArray:
		if p.field != nil {
			return lexer.Errorf(p.field.Pos, "Expected a value for field %q", p.field.Value)
		}
		p.stack = p.stack[:len(p.stack)-1]
		if len(p.stack) == 0 {
			p.rootDone = true
		}
	}
	return nil
}

func (p *Parser) afterRoot(event Event) error {
	return lexer.Errorf(event.Pos, "Unexpected %s after the root object", describe(event))
}

func describe(event Event) string {
	switch event.Type {
	case StartObject:
		return "'{'"
	case StartArray:
		return "'['"
	case FieldName:
		return fmt.Sprintf("field %q", event.Value)
	case Scalar:
		return fmt.Sprintf("value %q", event.Value)
	}
	return event.Type.String()
}

// infer the kind of a merged scalar: integer, then float, then boolean.
func infer(text string) Kind {
	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int
	}
	// Only numerals are floats, "Inf" and "NaN" stay strings. Digit
	// separators are Go syntax, not part of a float literal.
	if strings.ContainsAny(text, "0123456789") && !strings.Contains(text, "_") {
		_, err := strconv.ParseFloat(text, 64)
		var nerr *strconv.NumError
		if err == nil || errors.As(err, &nerr) && nerr.Err == strconv.ErrRange {
			return Float
		}
	}
	switch {
	case strings.EqualFold(text, "true"):
		return True
	case strings.EqualFold(text, "false"):
		return False
	}
	return String
}

func concat(run []lexer.Token) (string, error) {
	if len(run) == 1 {
		return lexer.Unwrap(run[0])
	}
	var sb strings.Builder
	for _, token := range run {
		text, err := lexer.Unwrap(token)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func skipped(t lexer.Type) bool {
	switch t {
	case lexer.Whitespace, lexer.Newline, lexer.Comment, lexer.BlockComment,
		lexer.Equals, lexer.Colon, lexer.Comma:
		return true
	}
	return false
}

func isKey(t lexer.Type) bool {
	switch t {
	case lexer.Dot, lexer.PathText, lexer.QuotedPath:
		return true
	}
	return false
}

func isValue(t lexer.Type) bool {
	switch t {
	case lexer.UnquotedText, lexer.String, lexer.MultilineString,
		lexer.Substitution, lexer.OptionalSubstitution, lexer.Whitespace:
		return true
	}
	return false
}
