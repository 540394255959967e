package mason

import "io"

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Trace writes every token consumed and every event produced to w.
//
// This is the only diagnostic output the parser produces.
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}
