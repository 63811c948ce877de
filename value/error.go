package value

import (
	"errors"
)

var (
	ErrCompatible = errors.New("values can not be compared")
	ErrCast       = errors.New("value can not be cast")
)

var (
	ErrNull     = createError("#NULL!")
	ErrDiv0     = createError("#DIV/0!")
	ErrValue    = createError("#VALUE!")
	ErrRef      = createError("#REF!")
	ErrName     = createError("#NAME?")
	ErrNum      = createError("#NUM!")
	ErrNA       = createError("#N/A")
	ErrCircular = createError("#CIRC!")
)

// Error is a spreadsheet error value. It lives in cells and flows
// through formulas like any other value; it never aborts a
// recalculation pass.
type Error struct {
	code   string
	reason string
}

func createError(code string) Error {
	return Error{
		code: code,
	}
}

// Syntax wraps a lex or parse failure into an error value so that a
// broken formula stays local to its cell.
func Syntax(reason string) Error {
	return Error{
		code:   "#ERROR!",
		reason: reason,
	}
}

func (Error) Type() string {
	return "error"
}

func (Error) Kind() ValueKind {
	return KindError
}

func (e Error) Error() string {
	if e.reason != "" {
		return e.code + " " + e.reason
	}
	return e.code
}

func (e Error) String() string {
	return e.code
}

func (e Error) Scalar() any {
	return e.code
}

func (e Error) Code() string {
	return e.code
}

func (e Error) Reason() string {
	return e.reason
}

// Is matches on the error code only, so that Syntax values with
// different reasons still compare equal to each other.
func (e Error) Is(target error) bool {
	other, ok := target.(Error)
	if !ok {
		return false
	}
	return e.code == other.code
}
