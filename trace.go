package mason

import (
	"fmt"

	"github.com/maveniverse/mason/lexer"
)

func (p *Parser) traceToken(token lexer.Token) {
	if p.trace == nil {
		return
	}
	fmt.Fprintf(p.trace, "%s: token %s %q\n", token.Pos, token.Type, token.Value)
}

func (p *Parser) traceEvent(event Event) {
	if p.trace == nil {
		return
	}
	fmt.Fprintf(p.trace, "%s: event %s\n", event.Pos, event)
}

func (p *Parser) traceError(err error) {
	if p.trace == nil {
		return
	}
	fmt.Fprintf(p.trace, "error: %s\n", err)
}
