package tformat

import "strings"

// reducedValueElement prints and parses a compressed representation of a
// range-restricted field — classically a two-digit year — per §4.4.4. Either
// a fixed baseValue is supplied, or a baseDate function that lazily derives
// it from the effective chronology at print/parse time (e.g. "base year is
// whatever year 2000-01-01 falls in under the active chronology", which for
// ISO is simply 2000).
type reducedValueElement struct {
	field              Field
	width, maxWidth    int
	baseValue          int64
	hasBaseValue       bool
	baseDate           func(ch Chronology) int64
	signStyle          SignStyle
}

func newReducedValueElement(field Field, width, maxWidth int, baseValue int64) *reducedValueElement {
	return &reducedValueElement{field: field, width: width, maxWidth: maxWidth, baseValue: baseValue, hasBaseValue: true, signStyle: SignStyleNormal}
}

func newReducedValueElementFromBaseDate(field Field, width, maxWidth int, baseDate func(ch Chronology) int64) *reducedValueElement {
	return &reducedValueElement{field: field, width: width, maxWidth: maxWidth, baseDate: baseDate, signStyle: SignStyleNormal}
}

func (e *reducedValueElement) resolveBase(ch Chronology) int64 {
	if e.hasBaseValue {
		return e.baseValue
	}
	if ch == nil {
		ch = isoChronology{}
	}
	return e.baseDate(ch)
}

func (e *reducedValueElement) printTo(ctx *PrintContext, buf *strings.Builder) (bool, error) {
	v, ok, err := ctx.GetValue(e.field)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	var ch Chronology
	if q, has := ctx.GetValueByQuery(QueryChronology); has {
		if c, ok := q.(Chronology); ok {
			ch = c
		}
	}
	base := e.resolveBase(ch)

	upper := base + pow10(e.width)
	var toPrint int64
	width := e.width
	if v >= base && v < upper {
		toPrint = abs64(v) % pow10(e.width)
	} else {
		toPrint = abs64(v) % pow10(e.maxWidth)
		width = e.maxWidth
	}

	return true, printSignedDigits(buf, ctx.Symbols(), toPrint, width, width, SignStyleNotNegative)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func (e *reducedValueElement) parseTo(ctx *ParseContext, text string, pos int) int {
	r := []rune(text)
	style := ctx.Symbols()

	minLen, maxLen := e.width, e.maxWidth
	if !ctx.Strict() {
		maxLen = maxInt(maxLen, 9)
	}

	end := pos
	for end < len(r) && end-pos < maxLen && style.ConvertToDigit(r[end]) >= 0 {
		end++
	}
	digits := end - pos
	if digits < minLen {
		return complement(pos)
	}

	raw := int64(0)
	for _, c := range string(r[pos:end]) {
		raw = raw*10 + int64(style.ConvertToDigit(c))
	}

	var ch Chronology
	if frame := ctx.top(); frame.chronology != nil {
		ch = frame.chronology
	}
	base := e.resolveBase(ch)

	var value int64
	if digits == e.width {
		mod := pow10(e.width)
		value = base - (base % mod) + raw
		if value < base {
			value += mod
		}
	} else {
		value = raw
	}

	return ctx.SetParsedField(e.field, value, pos, end)
}
