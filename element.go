package tformat

import "strings"

// element is the unit of the printer/parser pipeline the Builder assembles.
// printTo appends text for the given context to buf; a return of (false, nil)
// means "this element's value was absent" and is how an enclosing optional
// composite knows to roll back and skip itself, while a non-nil error is a
// hard failure that must propagate all the way out of Format.
//
// parseTo consumes from text starting at pos and returns the position after
// the match, or the bitwise complement of an error position on failure (see
// complement in errors.go).
type element interface {
	printTo(ctx *PrintContext, buf *strings.Builder) (bool, error)
	parseTo(ctx *ParseContext, text string, pos int) int
}

// literalChar prints and matches a single literal rune.
type literalChar struct {
	ch rune
}

func (e *literalChar) printTo(ctx *PrintContext, buf *strings.Builder) (bool, error) {
	buf.WriteRune(e.ch)
	return true, nil
}

func (e *literalChar) parseTo(ctx *ParseContext, text string, pos int) int {
	r := []rune(text)
	if pos >= len(r) {
		return complement(pos)
	}
	if !ctx.CharEquals(r[pos], e.ch) {
		return complement(pos)
	}
	return pos + 1
}

// literalString prints and matches a literal run of text.
type literalString struct {
	s string
}

func (e *literalString) printTo(ctx *PrintContext, buf *strings.Builder) (bool, error) {
	buf.WriteString(e.s)
	return true, nil
}

func (e *literalString) parseTo(ctx *ParseContext, text string, pos int) int {
	n := len([]rune(e.s))
	if !ctx.SubSequenceEquals(text, pos, e.s, 0, n) {
		return complement(pos)
	}
	return pos + n
}

// settingMode identifies which parse-context flag a settingElement flips.
type settingMode int

const (
	settingSensitive settingMode = iota
	settingInsensitive
	settingStrict
	settingLenient
)

// settingElement mutates the parse context without consuming input or
// emitting output. It is how ParseCaseInsensitive/ParseStrict/etc scope a
// region of the pattern.
type settingElement struct {
	mode settingMode
}

func (e *settingElement) printTo(ctx *PrintContext, buf *strings.Builder) (bool, error) {
	return true, nil
}

func (e *settingElement) parseTo(ctx *ParseContext, text string, pos int) int {
	switch e.mode {
	case settingSensitive:
		ctx.setCaseSensitive(true)
	case settingInsensitive:
		ctx.setCaseSensitive(false)
	case settingStrict:
		ctx.setStrict(true)
	case settingLenient:
		ctx.setStrict(false)
	}
	return pos
}

// defaultingElement injects a default value for a field during parsing if no
// value was parsed for it. It never affects the parse position and never
// prints anything.
type defaultingElement struct {
	field Field
	value int64
}

func (e *defaultingElement) printTo(ctx *PrintContext, buf *strings.Builder) (bool, error) {
	return true, nil
}

func (e *defaultingElement) parseTo(ctx *ParseContext, text string, pos int) int {
	frame := ctx.top()
	if _, ok := frame.fieldValues[e.field]; !ok {
		frame.fieldValues[e.field] = e.value
	}
	return pos
}
