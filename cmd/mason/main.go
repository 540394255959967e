// Package main is a command-line tool for inspecting and converting HOCON documents.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

var (
	version string = "dev"
	cli     struct {
		Version kong.VersionFlag
		Tokens  tokensCmd  `cmd:"" help:"Dump the tokens of a document."`
		Events  eventsCmd  `cmd:"" help:"Dump the events of a document."`
		Convert convertCmd `cmd:"" help:"Convert a document to JSON, YAML or TOML."`
		Grammar grammarCmd `cmd:"" help:"Print the lexical grammar."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`A command-line tool for HOCON documents.`),
		kong.Vars{"version": version},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}

// open a document, or stdin if path is "-".
func open(path string) (io.ReadCloser, string, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), "<stdin>", nil
	}
	r, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return r, path, nil
}
