package formula

import (
	"fmt"
)

// LexError reports a character the tokenizer can not make sense of.
type LexError struct {
	Position int
	Char     string
}

func (e LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Position)
}

// ParseError reports a structurally invalid formula.
type ParseError struct {
	Position int
	Message  string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Message, e.Position)
}

func parseError(tok Token, msg string) error {
	return ParseError{
		Position: tok.Position,
		Message:  msg,
	}
}
