package mason

import (
	"errors"

	"github.com/maveniverse/mason/lexer"
)

// Error is the single error type returned while parsing.
//
// It carries a message, the position at which the problem was detected and
// an optional wrapped cause. There are no error codes: the message is the
// whole diagnosis.
type Error = lexer.Error

// Fixed messages for syntax that is recognised but not supported.
const (
	concatenationUnsupported = "Concatenation operator (+) not supported"
	includeUnsupported       = "include directive not supported"
)

// AsError finds the first *Error in the chain of err.
func AsError(err error) (*Error, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}
