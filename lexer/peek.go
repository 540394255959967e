package lexer

// Peeker wraps a lexer with a single token of lookahead.
type Peeker struct {
	lex    Interface
	peeked bool
	token  Token
	err    error
}

var _ Interface = &Peeker{}

// Upgrade a lexer to a Peeker.
func Upgrade(lex Interface) *Peeker {
	if p, ok := lex.(*Peeker); ok {
		return p
	}
	return &Peeker{lex: lex}
}

// Peek returns the next token without consuming it.
func (p *Peeker) Peek() (Token, error) {
	if !p.peeked {
		p.token, p.err = p.lex.Next()
		p.peeked = true
	}
	return p.token, p.err
}

// Next consumes and returns the next token.
func (p *Peeker) Next() (Token, error) {
	token, err := p.Peek()
	if err == nil && token.EOF() {
		// Keep returning EOF without touching the underlying lexer.
		return token, nil
	}
	p.peeked = false
	return token, err
}
