package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alecthomas/repr"
	"golang.org/x/exp/ebnf"

	"github.com/maveniverse/mason/lexer"
)

type grammarCmd struct {
	Railroad bool `help:"Generate railroad diagrams as HTML."`
}

func (c *grammarCmd) Run(w io.Writer) error {
	grammar, err := lexer.ParseGrammar()
	if err != nil {
		return err
	}
	if !c.Railroad {
		_, err = io.WriteString(w, strings.TrimLeft(lexer.Grammar, "\n"))
		return err
	}
	_, err = io.WriteString(w, railroad(grammar))
	return err
}

// Productions referenced at most this many times are inlined into their users.
const mergeRefThreshold = 1

// railroad renders a grammar for https://github.com/tabatkins/railroad-diagrams.
func railroad(grammar ebnf.Grammar) string {
	refs := map[string]int{}
	for _, p := range grammar {
		countRefs(refs, p.Expr)
	}
	productions := make([]*ebnf.Production, 0, len(grammar))
	for _, p := range grammar {
		productions = append(productions, p)
	}
	sort.Slice(productions, func(i, j int) bool {
		return productions[i].Pos().Offset < productions[j].Pos().Offset
	})

	s := `<!DOCTYPE html>
<style>
body {
	background-color: hsl(30,20%, 95%);
}
h1 {
	font-family: sans-serif;
	font-size: 1em;
}
</style>
<link rel='stylesheet' href='railroad-diagrams.css'>
<script src='railroad-diagrams.js'></script>
<body>
`
	for _, p := range productions {
		name := p.Name.String
		if name != "document" && refs[name] <= mergeRefThreshold {
			continue
		}
		s += `<h1 id="` + name + `">` + name + "</h1>\n"
		s += "<script>\n"
		s += "Diagram(" + diagram(grammar, refs, p.Expr) + ").addTo();\n"
		s += "</script>\n"
	}
	return s + "</body>\n"
}

func diagram(grammar ebnf.Grammar, refs map[string]int, expr ebnf.Expression) (s string) {
	switch n := expr.(type) {
	case nil:
		s = "Skip()"

	case ebnf.Alternative:
		s = "Choice(0, " + diagrams(grammar, refs, n) + ")"

	case ebnf.Sequence:
		s = "Sequence(" + diagrams(grammar, refs, n) + ")"

	case *ebnf.Name:
		if p, ok := grammar[n.String]; ok && refs[n.String] <= mergeRefThreshold {
			s = diagram(grammar, refs, p.Expr)
		} else {
			s = fmt.Sprintf("NonTerminal(%q, {href:\"#%s\"})", n.String, n.String)
		}

	case *ebnf.Token:
		s = fmt.Sprintf("Terminal(%q)", n.String)

	case *ebnf.Range:
		s = fmt.Sprintf("Terminal(%q)", n.Begin.String+"…"+n.End.String)

	case *ebnf.Group:
		s = diagram(grammar, refs, n.Body)

	case *ebnf.Option:
		s = "Optional(" + diagram(grammar, refs, n.Body) + ")"

	case *ebnf.Repetition:
		s = "ZeroOrMore(" + diagram(grammar, refs, n.Body) + ")"

	default:
		panic(repr.String(n))
	}
	return
}

func diagrams(grammar ebnf.Grammar, refs map[string]int, exprs []ebnf.Expression) string {
	out := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, diagram(grammar, refs, expr))
	}
	return strings.Join(out, ", ")
}

func countRefs(refs map[string]int, expr ebnf.Expression) {
	switch n := expr.(type) {
	case ebnf.Alternative:
		for _, e := range n {
			countRefs(refs, e)
		}
	case ebnf.Sequence:
		for _, e := range n {
			countRefs(refs, e)
		}
	case *ebnf.Name:
		refs[n.String]++
	case *ebnf.Group:
		countRefs(refs, n.Body)
	case *ebnf.Option:
		countRefs(refs, n.Body)
	case *ebnf.Repetition:
		countRefs(refs, n.Body)
	}
}
