package main

import (
	"fmt"
	"io"
	"os"

	"github.com/maveniverse/mason"
)

type eventsCmd struct {
	Trace bool   `help:"Trace tokens and events to stderr."`
	File  string `arg:"" default:"-" help:"HOCON document (read from stdin if omitted)."`
}

func (c *eventsCmd) Run(w io.Writer) error {
	r, filename, err := open(c.File)
	if err != nil {
		return err
	}
	options := []mason.Option{}
	if c.Trace {
		options = append(options, mason.Trace(os.Stderr))
	}
	parser, err := mason.NewParser(filename, r, options...)
	if err != nil {
		_ = r.Close()
		return err
	}
	defer parser.Close()
	for {
		event, err := parser.Next()
		if err != nil {
			return err
		}
		if event.Pos.Synthetic() {
			fmt.Fprintf(w, "-:- %s\n", event)
		} else {
			fmt.Fprintf(w, "%d:%d %s\n", event.Pos.Line, event.Pos.Column, event)
		}
		if event.Type == mason.EOF {
			return nil
		}
	}
}
