package mason

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/alecthomas/units"

	"github.com/maveniverse/mason/lexer"
)

// NodeType is the type of a Node.
type NodeType int

// Node types.
const (
	ObjectNode NodeType = iota
	ArrayNode
	ScalarNode
)

func (n NodeType) String() string {
	switch n {
	case ObjectNode:
		return "object"
	case ArrayNode:
		return "array"
	case ScalarNode:
		return "scalar"
	}
	return fmt.Sprintf("NodeType(%d)", int(n))
}

// A Node in a document tree built from Parser events.
type Node struct {
	Type NodeType
	Pos  lexer.Position

	// Fields of an object, in order of first appearance.
	Fields []*Field
	// Items of an array.
	Items []*Node

	// Kind and Value of a scalar.
	Kind  Kind
	Value string
}

// A Field of an object Node.
type Field struct {
	Name  string
	Pos   lexer.Position
	Value *Node
}

// Build consumes every event from p and folds them into a tree.
//
// A field repeated within an object replaces the earlier value, unless both
// values are objects, in which case they are merged. A document with no
// content builds an empty object.
func Build(p *Parser) (*Node, error) {
	event, err := p.Next()
	if err != nil {
		return nil, err
	}
	if event.Type == EOF {
		return &Node{Type: ObjectNode, Pos: p.synthetic()}, nil
	}
	root, err := build(p, event)
	if err != nil {
		return nil, err
	}
	event, err = p.Next()
	if err != nil {
		return nil, err
	}
	if event.Type != EOF {
		return nil, lexer.Errorf(event.Pos, "unexpected %s after the root object", event.Type)
	}
	return root, nil
}

func build(p *Parser, event Event) (*Node, error) {
	switch event.Type {
	case Scalar:
		return &Node{Type: ScalarNode, Pos: event.Pos, Kind: event.Kind, Value: event.Value}, nil

	case StartArray:
		node := &Node{Type: ArrayNode, Pos: event.Pos}
		for {
			event, err := p.Next()
			if err != nil {
				return nil, err
			}
			if event.Type == EndArray {
				return node, nil
			}
			item, err := build(p, event)
			if err != nil {
				return nil, err
			}
			node.Items = append(node.Items, item)
		}

	case StartObject:
		node := &Node{Type: ObjectNode, Pos: event.Pos}
		for {
			event, err := p.Next()
			if err != nil {
				return nil, err
			}
			if event.Type == EndObject {
				return node, nil
			}
			if event.Type != FieldName {
				return nil, lexer.Errorf(event.Pos, "expected a field name but got %s", event.Type)
			}
			name := event
			event, err = p.Next()
			if err != nil {
				return nil, err
			}
			value, err := build(p, event)
			if err != nil {
				return nil, err
			}
			node.set(&Field{Name: name.Value, Pos: name.Pos, Value: value})
		}
	}
	return nil, lexer.Errorf(event.Pos, "unexpected %s", event.Type)
}

func (n *Node) set(field *Field) {
	for _, existing := range n.Fields {
		if existing.Name != field.Name {
			continue
		}
		if existing.Value.Type == ObjectNode && field.Value.Type == ObjectNode {
			for _, child := range field.Value.Fields {
				existing.Value.set(child)
			}
			return
		}
		existing.Value = field.Value
		return
	}
	n.Fields = append(n.Fields, field)
}

// Get returns the value of the named field of an object, or nil.
func (n *Node) Get(name string) *Node {
	if n == nil {
		return nil
	}
	for _, field := range n.Fields {
		if field.Name == name {
			return field.Value
		}
	}
	return nil
}

// Keys returns the field names of an object in order.
func (n *Node) Keys() []string {
	keys := make([]string, 0, len(n.Fields))
	for _, field := range n.Fields {
		keys = append(keys, field.Name)
	}
	return keys
}

// Interface converts the tree to plain Go values.
//
// Objects become map[string]interface{}, arrays []interface{}, and scalars
// int64, float64, bool or string according to their Kind.
func (n *Node) Interface() interface{} {
	switch n.Type {
	case ObjectNode:
		out := make(map[string]interface{}, len(n.Fields))
		for _, field := range n.Fields {
			out[field.Name] = field.Value.Interface()
		}
		return out

	case ArrayNode:
		out := make([]interface{}, 0, len(n.Items))
		for _, item := range n.Items {
			out = append(out, item.Interface())
		}
		return out
	}
	switch n.Kind {
	case Int:
		if v, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
			return v
		}
	case Float:
		if v, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return v
		}
	case True:
		return true
	case False:
		return false
	}
	return n.Value
}

// Int returns the value of an integer scalar.
func (n *Node) Int() (int64, error) {
	if err := n.scalar(Int); err != nil {
		return 0, err
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

// Float returns the value of a numeric scalar.
func (n *Node) Float() (float64, error) {
	if err := n.scalar(Int, Float); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(n.Value, 64)
}

// Bool returns the value of a boolean scalar.
func (n *Node) Bool() (bool, error) {
	if err := n.scalar(True, False); err != nil {
		return false, err
	}
	return n.Kind == True, nil
}

// Duration interprets a scalar as a duration literal such as "10s".
func (n *Node) Duration() (time.Duration, error) {
	if err := n.scalar(Int, Float, String); err != nil {
		return 0, err
	}
	d, err := ParseDuration(n.Value)
	if err != nil {
		return 0, lexer.Wrapf(n.Pos, err, "invalid duration")
	}
	return d, nil
}

// Size interprets a scalar as a size literal such as "512MiB".
func (n *Node) Size() (units.Base2Bytes, error) {
	if err := n.scalar(Int, Float, String); err != nil {
		return 0, err
	}
	size, err := ParseSize(n.Value)
	if err != nil {
		return 0, lexer.Wrapf(n.Pos, err, "invalid size")
	}
	return size, nil
}

func (n *Node) scalar(kinds ...Kind) error {
	if n == nil {
		return errors.New("missing value")
	}
	if n.Type != ScalarNode {
		return lexer.Errorf(n.Pos, "expected a scalar but got %s", n.Type)
	}
	for _, kind := range kinds {
		if n.Kind == kind {
			return nil
		}
	}
	return lexer.Errorf(n.Pos, "unexpected %s value %q", n.Kind, n.Value)
}
