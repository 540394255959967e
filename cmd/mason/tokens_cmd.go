package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/maveniverse/mason/lexer"
)

type tokensCmd struct {
	Repr  bool     `help:"Dump tokens as Go values."`
	Elide []string `placeholder:"TYPE" help:"Token types to drop, eg. WHITESPACE,NEWLINE."`
	File  string   `arg:"" default:"-" help:"HOCON document (read from stdin if omitted)."`
}

func (c *tokensCmd) Run(w io.Writer) error {
	r, filename, err := open(c.File)
	if err != nil {
		return err
	}
	defer r.Close()
	elide := []lexer.Type{}
	for _, name := range c.Elide {
		t, ok := lexer.TypeNamed(strings.ToUpper(name))
		if !ok {
			return fmt.Errorf("unknown token type %q", name)
		}
		elide = append(elide, t)
	}
	tokens, err := lexer.ConsumeAll(lexer.Elide(lexer.New(filename, r), elide...))
	if err != nil {
		return err
	}
	if c.Repr {
		repr.New(w, repr.Indent("  ")).Println(tokens)
		return nil
	}
	for _, token := range tokens {
		fmt.Fprintf(w, "%d:%d %s %q\n", token.Pos.Line, token.Pos.Column, token.Type, token.Value)
	}
	return nil
}
