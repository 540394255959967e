package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v2"

	"github.com/maveniverse/mason"
)

type convertCmd struct {
	To   string `enum:"json,yaml,toml" default:"json" help:"Output format (${enum})."`
	File string `arg:"" default:"-" help:"HOCON document (read from stdin if omitted)."`
}

func (c *convertCmd) Run(w io.Writer) error {
	r, filename, err := open(c.File)
	if err != nil {
		return err
	}
	parser, err := mason.NewParser(filename, r)
	if err != nil {
		_ = r.Close()
		return err
	}
	defer parser.Close()
	root, err := mason.Build(parser)
	if err != nil {
		return err
	}
	switch c.To {
	case "json":
		b, err := json.MarshalIndent(root.Interface(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err

	case "yaml":
		b, err := yaml.Marshal(mapSlice(root))
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err

	case "toml":
		tree, err := toml.TreeFromMap(root.Interface().(map[string]interface{}))
		if err != nil {
			return err
		}
		_, err = tree.WriteTo(w)
		return err
	}
	return fmt.Errorf("unsupported output format %q", c.To)
}

// mapSlice converts a tree to YAML values, keeping the order of fields.
func mapSlice(node *mason.Node) interface{} {
	switch node.Type {
	case mason.ObjectNode:
		out := yaml.MapSlice{}
		for _, field := range node.Fields {
			out = append(out, yaml.MapItem{Key: field.Name, Value: mapSlice(field.Value)})
		}
		return out

	case mason.ArrayNode:
		out := []interface{}{}
		for _, item := range node.Items {
			out = append(out, mapSlice(item))
		}
		return out
	}
	return node.Interface()
}
