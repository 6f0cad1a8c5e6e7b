package schwift

import (
	"fmt"
	"strings"
)

// ParseError reports a syntactic failure: no grammar alternative could
// continue matching. Offset is the furthest rune offset the parser reached
// and Expected lists the alternatives that were tried there.
type ParseError struct {
	Offset   int
	Expected []string
}

func NewParseError(offset int, expected []string) error {
	return &ParseError{offset, expected}
}

func (err *ParseError) Error() string {
	if len(err.Expected) == 0 {
		return fmt.Sprintf("[offset %d] Error: no matching alternative", err.Offset)
	}
	return fmt.Sprintf(
		"[offset %d] Error: expected %s",
		err.Offset,
		strings.Join(err.Expected, " or "),
	)
}

// NumberError reports a numeric literal whose value exceeds the representable
// integer or floating-point range. It is surfaced at literal construction and
// aborts the parse.
type NumberError struct {
	Offset int
	Text   string
}

func NewNumberError(offset int, text string) error {
	return &NumberError{offset, text}
}

func (err *NumberError) Error() string {
	return fmt.Sprintf(
		"[offset %d] Error: numeric literal '%s' is out of range",
		err.Offset,
		err.Text,
	)
}

// EscapeError reports a malformed escape sequence inside a string literal.
// Offset points at the offending backslash.
type EscapeError struct {
	Offset int
	Seq    string
}

func NewEscapeError(offset int, seq string) error {
	return &EscapeError{offset, seq}
}

func (err *EscapeError) Error() string {
	return fmt.Sprintf(
		"[offset %d] Error: invalid escape sequence '%s' in string literal",
		err.Offset,
		err.Seq,
	)
}
