package tformat

import (
	"fmt"
	"strconv"
	"strings"
)

// secondsPerDay is the fixed day length this package prints/parses instants
// against; UTC-SLS leap-second smoothing is not modeled (§1, Non-goals).
const secondsPerDay = 86400

// instantElement prints and parses an ISO-8601 instant derived from
// INSTANT_SECONDS and NANO_OF_SECOND against UTC, per §4.4.9.
//
// The spec describes a SECONDS_PER_10000_YEARS epoch split to keep the
// year/month/day conversion within a bounded range when the source value
// class (java.time's LocalDateTime) only accepts a ±10^9-year window. This
// package's epoch-day/JDN arithmetic (dateconv.go) carries no such bound —
// it is valid arithmetic across the whole EPOCH_DAY range — so
// the split is unnecessary here and is not reproduced; see DESIGN.md.
type instantElement struct {
	fractionalDigits int
}

func newInstantElement(fractionalDigits int) *instantElement {
	return &instantElement{fractionalDigits: fractionalDigits}
}

func (e *instantElement) printTo(ctx *PrintContext, buf *strings.Builder) (bool, error) {
	secs, ok, err := ctx.GetValue(InstantSeconds)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	nanos, hasNano, err := ctx.GetValue(NanoOfSecond)
	if err != nil {
		return false, err
	}
	if !hasNano {
		nanos = 0
	}

	epochDay := floorDiv(secs, secondsPerDay)
	secOfDay := floorMod(secs, secondsPerDay)
	year, month, day := ymdFromEpochDay(epochDay)
	hour := secOfDay / 3600
	minute := (secOfDay / 60) % 60
	second := secOfDay % 60

	style := ctx.Symbols()
	if err := printSignedDigits(buf, style, year, 4, 10, SignStyleExceedsPad); err != nil {
		return false, err
	}
	buf.WriteByte('-')
	writeTwoDigits(buf, style, month)
	buf.WriteByte('-')
	writeTwoDigits(buf, style, day)
	buf.WriteByte('T')
	writeTwoDigits(buf, style, hour)
	buf.WriteByte(':')
	writeTwoDigits(buf, style, minute)
	buf.WriteByte(':')
	writeTwoDigits(buf, style, second)

	if err := e.writeFraction(buf, style, nanos); err != nil {
		return false, err
	}
	buf.WriteByte('Z')
	return true, nil
}

func writeTwoDigits(buf *strings.Builder, style DecimalStyle, v int64) {
	_ = printSignedDigits(buf, style, v, 2, 2, SignStyleNotNegative)
}

// writeFraction implements the three fractionalDigits modes of §4.4.9: a
// fixed digit count, "-1" (minimal, no trailing zeros), and "-2" (auto,
// snapping to the nearest of 0/3/6/9 digits that loses no precision).
func (e *instantElement) writeFraction(buf *strings.Builder, style DecimalStyle, nanos int64) error {
	digits9 := fmt.Sprintf("%09d", nanos)

	var out string
	switch {
	case e.fractionalDigits == 0:
		return nil
	case e.fractionalDigits > 0:
		out = digits9[:e.fractionalDigits]
	case e.fractionalDigits == -1:
		out = strings.TrimRight(digits9, "0")
	case e.fractionalDigits == -2:
		switch {
		case nanos == 0:
			out = ""
		case nanos%1000000 == 0:
			out = digits9[:3]
		case nanos%1000 == 0:
			out = digits9[:6]
		default:
			out = digits9
		}
	default:
		return &InvalidArgumentError{Msg: "invalid instant fractional-digit count"}
	}

	if out == "" {
		return nil
	}
	buf.WriteRune(style.DecimalSeparator)
	buf.WriteString(style.ConvertNumberToI18N(out))
	return nil
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func (e *instantElement) parseTo(ctx *ParseContext, text string, pos int) int {
	r := []rune(text)
	cur := pos

	negative := false
	if cur < len(r) && (r[cur] == '+' || r[cur] == '-') {
		negative = r[cur] == '-'
		cur++
	}

	yearStart := cur
	for cur < len(r) && cur-yearStart < 10 && isASCIIDigit(r[cur]) {
		cur++
	}
	if cur-yearStart < 4 {
		return complement(pos)
	}
	year, err := strconv.ParseInt(string(r[yearStart:cur]), 10, 64)
	if err != nil {
		return complement(pos)
	}
	if negative {
		year = -year
	}

	expect := func(lit rune) bool {
		if cur < len(r) && r[cur] == lit {
			cur++
			return true
		}
		return false
	}
	readTwo := func() (int64, bool) {
		v, ok := parseTwoDigits(r, cur)
		if !ok {
			return 0, false
		}
		cur += 2
		return int64(v), true
	}

	if !expect('-') {
		return complement(pos)
	}
	month, ok := readTwo()
	if !ok {
		return complement(pos)
	}
	if !expect('-') {
		return complement(pos)
	}
	day, ok := readTwo()
	if !ok {
		return complement(pos)
	}
	if cur >= len(r) || (r[cur] != 'T' && r[cur] != 't') {
		return complement(pos)
	}
	cur++

	hour, ok := readTwo()
	if !ok {
		return complement(pos)
	}
	if !expect(':') {
		return complement(pos)
	}
	minute, ok := readTwo()
	if !ok {
		return complement(pos)
	}
	if !expect(':') {
		return complement(pos)
	}
	second, ok := readTwo()
	if !ok {
		return complement(pos)
	}

	var nanos int64
	if cur < len(r) && r[cur] == '.' {
		cur++
		start := cur
		for cur < len(r) && cur-start < 9 && isASCIIDigit(r[cur]) {
			cur++
		}
		if cur == start {
			return complement(pos)
		}
		digits := string(r[start:cur])
		for len(digits) < 9 {
			digits += "0"
		}
		v, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return complement(pos)
		}
		nanos = v
	}

	if cur >= len(r) || r[cur] != 'Z' {
		return complement(pos)
	}
	cur++

	leap := false
	switch {
	case second == 60 && hour == 23 && minute == 59:
		leap = true
		second = 59
	case second == 60:
		return complement(pos)
	}

	if hour == 24 && minute == 0 && second == 0 && nanos == 0 {
		hour = 0
		day++
	}

	epochDay := epochDayFromYMD(year, month, day)
	secOfDay := hour*3600 + minute*60 + second
	secs := epochDay*secondsPerDay + secOfDay

	end := ctx.SetParsedField(InstantSeconds, secs, pos, cur)
	if isError(end) {
		return end
	}
	end = ctx.SetParsedField(NanoOfSecond, nanos, pos, cur)
	if isError(end) {
		return end
	}
	if leap {
		ctx.setLeapSecond()
	}
	return cur
}

// chronologyIDElement prints and parses the active chronology's ID as text,
// per §4.4. Only ISOChronology is shipped (§1, Non-goals), so parsing
// recognizes exactly the literal "ISO".
type chronologyIDElement struct{}

func (e *chronologyIDElement) printTo(ctx *PrintContext, buf *strings.Builder) (bool, error) {
	q, ok := ctx.GetValueByQuery(QueryChronology)
	if !ok {
		return false, nil
	}
	ch, ok := q.(Chronology)
	if !ok {
		return false, nil
	}
	buf.WriteString(ch.ID())
	return true, nil
}

func (e *chronologyIDElement) parseTo(ctx *ParseContext, text string, pos int) int {
	const id = "ISO"
	n := len([]rune(id))
	if ctx.SubSequenceEquals(text, pos, id, 0, n) {
		ctx.setParsedChronology(ISOChronology())
		return pos + n
	}
	return complement(pos)
}
