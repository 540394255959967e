package lexer

// Elide wraps a lexer, removing tokens of the given types.
func Elide(lex Interface, types ...Type) Interface {
	table := map[Type]bool{}
	for _, t := range types {
		table[t] = true
	}
	return Map(lex, func(token *Token) bool {
		return !table[token.Type]
	})
}

// TypeNamed returns the Type whose String() is name.
func TypeNamed(name string) (Type, bool) {
	for t, n := range typeNames {
		if n == name {
			return Type(t), true
		}
	}
	return 0, false
}
