// Package lexer tokenizes HOCON documents.
//
// The Lexer is hand written and context sensitive: unquoted text on the
// left-hand side of a key/value pair is returned as PathText, and on the
// right-hand side as UnquotedText. Every token, including whitespace,
// newlines and comments, is returned so that consumers can decide how to
// treat adjacency.
//
// Lexing never recovers. The first *Error returned by Next is final.
package lexer
