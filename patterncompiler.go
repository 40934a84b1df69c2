package tformat

import (
	"fmt"
	"unicode"
)

// compilePattern translates a pattern-letter string into Builder calls, per
// §4.6. It recognizes runs of a repeated letter (the "count" that selects a
// field's width or text style), single-quoted literal text, '[' / ']'
// optional-section brackets, 'p' pad markers, and any other rune as a
// literal. '{', '}', and '#' are reserved and always rejected.
func compilePattern(b *Builder, pattern string) error {
	r := []rune(pattern)
	i := 0
	for i < len(r) {
		ch := r[i]
		switch {
		case ch == '\'':
			lit, next, err := readQuotedLiteral(r, i)
			if err != nil {
				return err
			}
			b.AppendLiteralString(lit)
			i = next
		case ch == '[':
			b.OptionalStart()
			i++
		case ch == ']':
			b.OptionalEnd()
			i++
		case ch == '{' || ch == '}' || ch == '#':
			return &InvalidArgumentError{Msg: fmt.Sprintf("reserved pattern character %q", ch)}
		case unicode.IsLetter(ch):
			count := 1
			for i+count < len(r) && r[i+count] == ch {
				count++
			}
			if ch == 'p' {
				b.PadNext(count, ' ')
				i += count
				continue
			}
			if err := appendPatternLetter(b, ch, count); err != nil {
				return err
			}
			i += count
		default:
			b.AppendLiteral(ch)
			i++
		}
	}
	return nil
}

// readQuotedLiteral reads a single-quoted literal run starting at r[i] (which
// must be a quote), returning its unescaped text and the index just past the
// closing quote. Two consecutive quotes ('') escape to a single literal
// quote character.
func readQuotedLiteral(r []rune, i int) (string, int, error) {
	i++ // skip opening quote
	if i < len(r) && r[i] == '\'' {
		return "'", i + 1, nil
	}

	var out []rune
	for i < len(r) {
		if r[i] == '\'' {
			if i+1 < len(r) && r[i+1] == '\'' {
				out = append(out, '\'')
				i += 2
				continue
			}
			return string(out), i + 1, nil
		}
		out = append(out, r[i])
		i++
	}
	return "", 0, &InvalidArgumentError{Msg: "unterminated quoted literal in pattern"}
}

func textStyleForCount(count int, standalone bool) (TextStyle, error) {
	var style TextStyle
	switch count {
	case 3:
		style = TextStyleShort
	case 4:
		style = TextStyleFull
	case 5:
		style = TextStyleNarrow
	default:
		return 0, &InvalidArgumentError{Msg: "too many pattern letters"}
	}
	if !standalone {
		return style, nil
	}
	switch style {
	case TextStyleShort:
		return TextStyleShortStandalone, nil
	case TextStyleFull:
		return TextStyleFullStandalone, nil
	case TextStyleNarrow:
		return TextStyleNarrowStandalone, nil
	default:
		return style, nil
	}
}

// appendMonthLike handles the four month/quarter letter groups (M, L, Q, q):
// count 1-2 is a fixed-width number, count 3-5 is text (standalone for L/q).
func appendMonthLike(b *Builder, field Field, count int, standalone bool) error {
	switch {
	case count <= 2:
		b.AppendValue(field, count)
		return nil
	default:
		style, err := textStyleForCount(count, standalone)
		if err != nil {
			return err
		}
		b.AppendText(field, style)
		return nil
	}
}

// appendYearLike handles y/u/Y: count 2 is a reduced two-digit value based on
// the year of 2000-01-01 under the active chronology; otherwise it is a
// plain value whose sign style tightens to EXCEEDS_PAD once the minimum
// width reaches 4, per §4.4.3/§4.4.4.
func appendYearLike(b *Builder, field Field, count int) error {
	if count == 2 {
		b.AppendValueReducedFromBaseDate(field, 2, 2, func(ch Chronology) int64 {
			d, err := ch.DateFromYearMonthDay(2000, 1, 1)
			if err != nil {
				return 2000
			}
			v, ok := ch.FieldValue(d, field)
			if !ok {
				return 2000
			}
			return v
		})
		return nil
	}
	sign := SignStyleNormal
	if count >= 4 {
		sign = SignStyleExceedsPad
	}
	b.AppendValueRange(field, count, 19, sign)
	return nil
}

func appendPatternLetter(b *Builder, ch rune, count int) error {
	switch ch {
	case 'G':
		style := TextStyleShort
		if count >= 3 {
			var err error
			style, err = textStyleForCount(count, false)
			if err != nil {
				return err
			}
		}
		b.AppendText(Era, style)
		return nil

	case 'u':
		return appendYearLike(b, Year, count)
	case 'y':
		return appendYearLike(b, YearOfEra, count)

	case 'M':
		return appendMonthLike(b, MonthOfYear, count, false)
	case 'L':
		return appendMonthLike(b, MonthOfYear, count, true)
	case 'Q':
		return appendMonthLike(b, QuarterOfYear, count, false)
	case 'q':
		return appendMonthLike(b, QuarterOfYear, count, true)

	case 'D':
		if count > 3 {
			return &InvalidArgumentError{Msg: "too many pattern letters: D"}
		}
		b.AppendValueRange(DayOfYear, count, 3, SignStyleNormal)
		return nil
	case 'd':
		if count > 2 {
			return &InvalidArgumentError{Msg: "too many pattern letters: d"}
		}
		b.AppendValue(DayOfMonth, count)
		return nil
	case 'F':
		if count != 1 {
			return &InvalidArgumentError{Msg: "too many pattern letters: F"}
		}
		b.AppendValue(AlignedDayOfWeekInMonth, count)
		return nil

	case 'E':
		style, err := textStyleForCount(maxInt(count, 3), false)
		if err != nil {
			return err
		}
		b.AppendText(DayOfWeek, style)
		return nil
	case 'e':
		if count <= 2 {
			b.AppendValue(DayOfWeek, count)
			return nil
		}
		style, err := textStyleForCount(count, false)
		if err != nil {
			return err
		}
		b.AppendText(DayOfWeek, style)
		return nil
	case 'c':
		if count == 2 {
			return &InvalidArgumentError{Msg: "invalid pattern letter count: cc"}
		}
		if count == 1 {
			b.AppendValue(DayOfWeek, 1)
			return nil
		}
		style, err := textStyleForCount(count, true)
		if err != nil {
			return err
		}
		b.AppendText(DayOfWeek, style)
		return nil

	case 'a':
		b.AppendText(AmPmOfDay, TextStyleShort)
		return nil

	case 'h':
		if count > 2 {
			return &InvalidArgumentError{Msg: "too many pattern letters: h"}
		}
		b.AppendValue(ClockHourOfAmPm, count)
		return nil
	case 'K':
		if count > 2 {
			return &InvalidArgumentError{Msg: "too many pattern letters: K"}
		}
		b.AppendValue(HourOfAmPm, count)
		return nil
	case 'H':
		if count > 2 {
			return &InvalidArgumentError{Msg: "too many pattern letters: H"}
		}
		b.AppendValue(HourOfDay, count)
		return nil
	case 'k':
		if count > 2 {
			return &InvalidArgumentError{Msg: "too many pattern letters: k"}
		}
		b.AppendValue(ClockHourOfDay, count)
		return nil
	case 'm':
		if count > 2 {
			return &InvalidArgumentError{Msg: "too many pattern letters: m"}
		}
		b.AppendValue(MinuteOfHour, count)
		return nil
	case 's':
		if count > 2 {
			return &InvalidArgumentError{Msg: "too many pattern letters: s"}
		}
		b.AppendValue(SecondOfMinute, count)
		return nil
	case 'S':
		b.AppendFraction(NanoOfSecond, count, count, false)
		return nil
	case 'A':
		b.AppendValueRange(MilliOfDay, count, 19, SignStyleNormal)
		return nil
	case 'n':
		b.AppendValueRange(NanoOfSecond, count, 19, SignStyleNormal)
		return nil
	case 'N':
		b.AppendValueRange(NanoOfDay, count, 19, SignStyleNormal)
		return nil

	case 'V':
		if count != 2 {
			return &InvalidArgumentError{Msg: "pattern letter V must appear exactly twice"}
		}
		b.AppendZoneID(nil)
		return nil
	case 'z':
		// No separate zone-text element is implemented; the zone-id form is
		// used as a best-effort stand-in.
		b.AppendZoneID(nil)
		return nil

	case 'Z':
		switch {
		case count <= 3:
			b.AppendOffset("+HHMM", "+0000")
		case count == 4:
			b.AppendOffset("+HH:MM:ss", "+00:00")
		default:
			b.AppendOffset("+HH:MM:ss", "Z")
		}
		return nil
	case 'X':
		patterns := []string{"+HH", "+HHMM", "+HH:MM", "+HHMMss", "+HH:MM:ss"}
		if count < 1 || count > 5 {
			return &InvalidArgumentError{Msg: "too many pattern letters: X"}
		}
		b.AppendOffset(patterns[count-1], "Z")
		return nil
	case 'x':
		patterns := []string{"+HH", "+HHMM", "+HH:MM", "+HHMMss", "+HH:MM:ss"}
		noOffset := []string{"+00", "+0000", "+00:00", "+000000", "+00:00:00"}
		if count < 1 || count > 5 {
			return &InvalidArgumentError{Msg: "too many pattern letters: x"}
		}
		b.AppendOffset(patterns[count-1], noOffset[count-1])
		return nil
	case 'O':
		switch count {
		case 1:
			b.AppendOffset("+HH:mm", "Z")
		case 4:
			b.AppendOffset("+HH:MM:ss", "Z")
		default:
			return &InvalidArgumentError{Msg: "pattern letter O must have count 1 or 4"}
		}
		return nil

	case 'W':
		if count != 1 {
			return &InvalidArgumentError{Msg: "too many pattern letters: W"}
		}
		b.AppendValue(AlignedWeekOfMonth, 1)
		return nil
	case 'w':
		if count > 2 {
			return &InvalidArgumentError{Msg: "too many pattern letters: w"}
		}
		b.AppendValueRange(WeekOfWeekBasedYear, count, 2, SignStyleNormal)
		return nil
	case 'Y':
		return appendYearLike(b, WeekBasedYear, count)

	default:
		return &InvalidArgumentError{Msg: fmt.Sprintf("unknown pattern letter %q", ch)}
	}
}
