// Package mason parses HOCON configuration documents into a stream of events.
//
// HOCON is a human friendly superset of JSON: the root braces are optional,
// keys and values may be unquoted, adjacent values are concatenated and
// values may contain ${substitutions}, comments, durations, sizes and
// multiline strings.
//
// A Parser pulls tokens from a lexer.Lexer and folds them into events that a
// tree builder can consume without any knowledge of the source grammar:
//
//	parser, err := mason.ParseString("app.conf", `server { port = 8080 }`)
//	for {
//		event, err := parser.Next()
//		if err != nil {
//			return err
//		}
//		if event.Type == mason.EOF {
//			break
//		}
//		fmt.Println(event)
//	}
//
// Build folds the same stream into a tree of Nodes.
//
// Substitutions are never resolved, and the include directive and the +
// concatenation operator are rejected with an error.
package mason
