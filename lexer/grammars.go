package lexer

import (
	"strings"

	"golang.org/x/exp/ebnf"
)

// Grammar is the lexical grammar recognised by the Lexer, in the EBNF
// dialect of golang.org/x/exp/ebnf.
//
// EBNF cannot express character exclusion, so "char" stands for any
// character other than the quote, backslash or a line break, and
// "anychar" for any character at all. Letters and digits include the
// whole of Unicode.
var Grammar = `
document = { token } .

token = structural | plus | multiline | quoted | substitution |
        comment | whitespace | newline | include | text .

structural = "{" | "}" | "[" | "]" | "=" | ":" | "," .
plus       = "+" .

quoted    = "\"" { char | escape } "\"" .
escape    = "\\" ( "n" | "r" | "t" | "b" | "f" | "\"" | "\\" | "'" | "/" | unicode ) .
unicode   = "u" hex_digit hex_digit hex_digit hex_digit .
multiline = "\"\"\"" { anychar } "\"\"\"" .

substitution = "${" [ "?" ] subst_body "}" .
subst_body   = subst_char { subst_char | "${" subst_char { subst_char } "}" } .
subst_char   = letter | digit | symbol | "." | " " .

comment    = ( "#" | "//" ) { char } | "/*" { anychar } "*/" .
whitespace = ( " " | "\t" | "\f" | "\v" | "\r" ) { " " | "\t" | "\f" | "\v" | "\r" } .
newline    = "\n" | "\r\n" .

include = "include" whitespace quoted .
text    = unquoted { unquoted } .
unquoted = letter | digit | symbol | "." .

letter    = "a" … "z" | "A" … "Z" .
digit     = "0" … "9" .
hex_digit = "0" … "9" | "A" … "F" | "a" … "f" .
symbol    = "-" | "_" | "/" | "%" | "~" .

char    = letter | digit | symbol | structural | plus | " " | "\t" | "." | "$" | "?" | "#" | "!" | "@" | "*" | "&" | "^" | "'" | "` + "`" + `" .
anychar = char | "\"" | "\\" | "\n" | "\r" .
`

// ParseGrammar parses and verifies Grammar, starting at "document".
func ParseGrammar() (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse("hocon.ebnf", strings.NewReader(Grammar))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(grammar, "document"); err != nil {
		return nil, err
	}
	return grammar, nil
}
