package tformat

import (
	"fmt"
	"strings"
)

// offsetComponentMode describes whether an offset-id's minutes/seconds
// component is absent, always printed ("required"), or printed only when
// non-zero ("optional" — the lowercase-letter patterns of §4.4.7).
type offsetComponentMode int

const (
	offsetComponentNone offsetComponentMode = iota
	offsetComponentOptional
	offsetComponentRequired
)

// offsetPatternSpec is the parsed form of one of the nine fixed offset-id
// pattern strings.
type offsetPatternSpec struct {
	colon        bool
	minutesMode  offsetComponentMode
	secondsMode  offsetComponentMode
}

var offsetPatterns = map[string]offsetPatternSpec{
	"+HH":        {colon: false, minutesMode: offsetComponentNone, secondsMode: offsetComponentNone},
	"+HHmm":      {colon: false, minutesMode: offsetComponentOptional, secondsMode: offsetComponentNone},
	"+HHMM":      {colon: false, minutesMode: offsetComponentRequired, secondsMode: offsetComponentNone},
	"+HH:mm":     {colon: true, minutesMode: offsetComponentOptional, secondsMode: offsetComponentNone},
	"+HH:MM":     {colon: true, minutesMode: offsetComponentRequired, secondsMode: offsetComponentNone},
	"+HHMMss":    {colon: false, minutesMode: offsetComponentRequired, secondsMode: offsetComponentOptional},
	"+HH:MM:ss":  {colon: true, minutesMode: offsetComponentRequired, secondsMode: offsetComponentOptional},
	"+HHMMSS":    {colon: false, minutesMode: offsetComponentRequired, secondsMode: offsetComponentRequired},
	"+HH:MM:SS":  {colon: true, minutesMode: offsetComponentRequired, secondsMode: offsetComponentRequired},
}

// offsetIDElement prints and parses a UTC offset per §4.4.7.
type offsetIDElement struct {
	noOffsetText string
	pattern      string
	spec         offsetPatternSpec
}

func newOffsetIDElement(noOffsetText, pattern string) (*offsetIDElement, error) {
	spec, ok := offsetPatterns[pattern]
	if !ok {
		return nil, &InvalidArgumentError{Msg: fmt.Sprintf("unrecognized offset pattern %q", pattern)}
	}
	return &offsetIDElement{noOffsetText: noOffsetText, pattern: pattern, spec: spec}, nil
}

func (e *offsetIDElement) printTo(ctx *PrintContext, buf *strings.Builder) (bool, error) {
	v, ok, err := ctx.GetValue(OffsetSeconds)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if v == 0 {
		buf.WriteString(e.noOffsetText)
		return true, nil
	}

	sign := "+"
	abs := v
	if abs < 0 {
		sign = "-"
		abs = -abs
	}

	hh := abs / 3600
	mm := (abs % 3600) / 60
	ss := abs % 60

	buf.WriteString(sign)
	fmt.Fprintf(buf, "%02d", hh)

	if e.spec.minutesMode == offsetComponentNone {
		return true, nil
	}
	if e.spec.minutesMode == offsetComponentOptional && mm == 0 && ss == 0 {
		return true, nil
	}

	if e.spec.colon {
		buf.WriteByte(':')
	}
	fmt.Fprintf(buf, "%02d", mm)

	if e.spec.secondsMode == offsetComponentNone {
		return true, nil
	}
	if e.spec.secondsMode == offsetComponentOptional && ss == 0 {
		return true, nil
	}

	if e.spec.colon {
		buf.WriteByte(':')
	}
	fmt.Fprintf(buf, "%02d", ss)
	return true, nil
}

func (e *offsetIDElement) parseTo(ctx *ParseContext, text string, pos int) int {
	r := []rune(text)

	n := len([]rune(e.noOffsetText))
	if n > 0 && ctx.SubSequenceEquals(text, pos, e.noOffsetText, 0, n) {
		return ctx.SetParsedField(OffsetSeconds, 0, pos, pos+n)
	}

	cur := pos
	if cur >= len(r) {
		return complement(pos)
	}

	negative := false
	switch r[cur] {
	case '+':
	case '-':
		negative = true
	default:
		return complement(pos)
	}
	cur++

	hh, ok := parseTwoDigits(r, cur)
	if !ok {
		return complement(pos)
	}
	cur += 2

	mm, haveMinutes := 0, true
	if e.spec.minutesMode != offsetComponentNone {
		mm, cur, haveMinutes = parseOffsetComponent(r, cur, e.spec.colon)
		if !haveMinutes && e.spec.minutesMode == offsetComponentRequired {
			return complement(pos)
		}
	} else {
		haveMinutes = false
	}

	ss := 0
	if haveMinutes && e.spec.secondsMode != offsetComponentNone {
		var haveSeconds bool
		ss, cur, haveSeconds = parseOffsetComponent(r, cur, e.spec.colon)
		if !haveSeconds && e.spec.secondsMode == offsetComponentRequired {
			return complement(pos)
		}
	}

	total := int64(hh)*3600 + int64(mm)*60 + int64(ss)
	if negative {
		total = -total
	}
	return ctx.SetParsedField(OffsetSeconds, total, pos, cur)
}

// parseOffsetComponent parses an optional colon followed by two digits,
// starting at pos. It returns the parsed value, the position after the
// match, and whether a match was found; if no match is found, pos is
// returned unchanged.
func parseOffsetComponent(r []rune, pos int, colon bool) (value, newPos int, ok bool) {
	next := pos
	if colon {
		if next < len(r) && r[next] == ':' {
			next++
		} else {
			return 0, pos, false
		}
	}
	v, matched := parseTwoDigits(r, next)
	if !matched {
		return 0, pos, false
	}
	return v, next + 2, true
}

func parseTwoDigits(r []rune, pos int) (int, bool) {
	if pos+2 > len(r) {
		return 0, false
	}
	a, b := r[pos], r[pos+1]
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
