package lexer

// MapFunc transforms tokens.
//
// If false is returned the token will be discarded.
type MapFunc func(*Token) bool

type mapper struct {
	lex Interface
	f   MapFunc
}

// Map is a lexer that applies a mapping function to another lexer's tokens.
//
// EOF tokens are never passed to f.
func Map(lex Interface, f MapFunc) Interface {
	return &mapper{lex: lex, f: f}
}

func (m *mapper) Next() (Token, error) {
	for {
		token, err := m.lex.Next()
		if err != nil || token.EOF() {
			return token, err
		}
		if m.f(&token) {
			return token, nil
		}
	}
}
