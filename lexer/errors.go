package lexer

import "fmt"

// Error is the single error kind raised while tokenizing or assembling a
// document. Every Error is fatal for the stream that produced it.
type Error struct {
	Msg string
	Pos Position
	Err error
}

// Errorf creates a new Error at the given position.
func Errorf(pos Position, format string, args ...interface{}) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// Wrapf creates a new Error at the given position, wrapping an underlying cause.
func Wrapf(pos Position, err error, format string, args ...interface{}) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...) + ": " + err.Error(), Pos: pos, Err: err}
}

// Message returns the unadorned message.
func (e *Error) Message() string { return e.Msg }

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Error() string {
	if e.Pos == (Position{}) {
		return e.Msg
	}
	if e.Pos.Synthetic() {
		if e.Pos.Filename != "" {
			return e.Pos.Filename + ": " + e.Msg
		}
		return e.Msg
	}
	return e.Pos.String() + ": " + e.Msg
}
