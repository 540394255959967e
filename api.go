package mason

import (
	"fmt"

	"github.com/maveniverse/mason/lexer"
)

// EventType identifies an Event.
type EventType int

// Event types returned by Parser.Next.
const (
	// EOF is returned once the document, including any implicit root
	// object, has been fully consumed.
	EOF EventType = iota
	StartObject
	EndObject
	StartArray
	EndArray
	FieldName
	Scalar
)

var eventTypeNames = [...]string{
	EOF:         "EOF",
	StartObject: "START_OBJECT",
	EndObject:   "END_OBJECT",
	StartArray:  "START_ARRAY",
	EndArray:    "END_ARRAY",
	FieldName:   "FIELD_NAME",
	Scalar:      "SCALAR",
}

func (e EventType) String() string {
	if e < 0 || int(e) >= len(eventTypeNames) {
		return fmt.Sprintf("EventType(%d)", int(e))
	}
	return eventTypeNames[e]
}

// Kind is the inferred type of a Scalar.
type Kind int

// Scalar kinds, in the order they are tried.
const (
	String Kind = iota
	Int
	Float
	True
	False
)

var kindNames = [...]string{
	String: "string",
	Int:    "int",
	Float:  "float",
	True:   "true",
	False:  "false",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// An Event is a structural or scalar unit of a document.
type Event struct {
	Type EventType
	// Kind is only meaningful for Scalar events.
	Kind Kind
	// Value is the field name of FieldName events and the text of Scalar events.
	Value string
	// Pos of the token that triggered the event. Events synthesized for an
	// implicit root object have Line and Column set to -1.
	Pos lexer.Position
}

func (e Event) String() string {
	switch e.Type {
	case FieldName:
		return fmt.Sprintf("%s(%q)", e.Type, e.Value)
	case Scalar:
		return fmt.Sprintf("%s(%s %q)", e.Type, e.Kind, e.Value)
	}
	return e.Type.String()
}

// IsValue reports whether the event starts a value: a scalar, object or array.
func (e Event) IsValue() bool {
	switch e.Type {
	case Scalar, StartObject, StartArray:
		return true
	}
	return false
}
