package tformat

import "fmt"

// abbreviationLimit is the number of runes of parsed input retained in a
// ParseError before it is truncated with an ellipsis. This is a formatting
// contract, not a heuristic: callers may match on it.
const abbreviationLimit = 64

// InvalidArgumentError signals misuse of the Builder or pattern compiler:
// widths out of range, an unknown pattern letter, an unbalanced optional
// section, and the like. It is always a programming error, never a property
// of the input being parsed.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string { return "invalid argument: " + e.Msg }

// MissingFieldError is returned while printing when a required field is
// absent from the temporal being printed and the missing read did not occur
// within an optional section.
type MissingFieldError struct {
	Field Field
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("unable to obtain value for field %s", e.Field)
}

// UnsupportedError is returned when a print or a query is attempted against a
// temporal that does not support the requested capability.
type UnsupportedError struct {
	What string
}

func (e *UnsupportedError) Error() string { return "unsupported: " + e.What }

// ParseError is returned when text fails to match a formatter's element
// tree, when trailing text remains after a successful parse, or (at index
// 0) when Formatter.Parse cannot resolve the parsed fields.
type ParseError struct {
	Text  string
	Index int
}

func newParseError(text string, index int) *ParseError {
	return &ParseError{Text: abbreviate(text), Index: index}
}

func abbreviate(s string) string {
	r := []rune(s)
	if len(r) <= abbreviationLimit {
		return s
	}
	return string(r[:abbreviationLimit]) + "..."
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("text %q could not be parsed at index %d", e.Text, e.Index)
}

// ConflictingFieldError is returned when the same field is parsed twice with
// two different values during a single parse.
type ConflictingFieldError struct {
	Field Field
	Index int
}

func (e *ConflictingFieldError) Error() string {
	return fmt.Sprintf("conflicting values for field %s at index %d", e.Field, e.Index)
}

// ResolveError is returned by the Resolver when fields are inconsistent under
// strict resolution, or a combination of fields lies outside the chronology's
// valid range.
type ResolveError struct {
	Msg string
}

func (e *ResolveError) Error() string { return "unable to resolve fields: " + e.Msg }

// IoError wraps a failure from the sink a Formatter is printing into.
type IoError struct {
	Err error
}

func (e *IoError) Error() string { return "io failure: " + e.Err.Error() }
func (e *IoError) Unwrap() error { return e.Err }

// errOutOfRange indicates an internal parse position strayed outside
// [0, len(text)]. It should never escape to a caller; encountering one is a
// bug in an element's parseTo implementation.
var errOutOfRange = fmt.Errorf("parse position out of range")

// complement implements the error-signaling convention used throughout the
// parse side of this package: a parser returns a non-negative new position
// on success, or the bitwise complement of an error position on failure.
// Applying complement twice recovers the original position, since bitwise
// NOT is its own inverse.
func complement(pos int) int { return ^pos }

func isError(pos int) bool { return pos < 0 }
