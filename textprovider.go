package tformat

import "sort"

// TextValue pairs a field value with the text a TextProvider renders it as.
type TextValue struct {
	Text  string
	Value int64
}

// TextProvider is the capability interface a text element uses to convert
// between field values and their textual names (month names, weekday names,
// AM/PM markers, era names, ...). Implementations are expected to be
// immutable and safe for concurrent use.
type TextProvider interface {
	// GetText returns the text for the given field value, style, and
	// locale. ok is false if no text is available, in which case the
	// caller falls back to printing the value numerically.
	GetText(f Field, value int64, style TextStyle, locale string) (text string, ok bool)

	// GetTextIterator returns every (text, value) pair for the given field,
	// style, and locale, ordered longest-text-first so that greedy parsing
	// picks the longest match (preventing "Jan" from shadowing "January").
	GetTextIterator(f Field, style TextStyle, locale string) []TextValue
}

// defaultTextProvider supplies the month/weekday/era/am-pm names built into
// this package. It ignores locale (every lookup uses the English names in
// consts.go) but still implements the full TextProvider contract so that a
// locale-aware provider can be substituted without changing any element.
type defaultTextProvider struct{}

func (defaultTextProvider) GetText(f Field, value int64, style TextStyle, locale string) (string, bool) {
	style = style.AsNormal()
	switch f {
	case MonthOfYear:
		m := int(value)
		if m < int(January) || m > int(December) {
			return "", false
		}
		switch style {
		case TextStyleFull:
			return longMonthName(m), true
		case TextStyleShort:
			return shortMonthName(m), true
		case TextStyleNarrow:
			return narrowMonthName(m), true
		}
	case DayOfWeek:
		d := int(value)
		if d < int(Monday) || d > int(Sunday) {
			return "", false
		}
		switch style {
		case TextStyleFull:
			return longWeekdayName(d), true
		case TextStyleShort:
			return shortWeekdayName(d), true
		case TextStyleNarrow:
			return narrowWeekdayName(d), true
		}
	case AmPmOfDay:
		switch value {
		case 0:
			return "AM", true
		case 1:
			return "PM", true
		}
	case Era:
		switch value {
		case 0:
			return "BCE", true
		case 1:
			return "CE", true
		}
	}
	return "", false
}

func (p defaultTextProvider) GetTextIterator(f Field, style TextStyle, locale string) []TextValue {
	var values []int64
	switch f {
	case MonthOfYear:
		for m := int64(January); m <= int64(December); m++ {
			values = append(values, m)
		}
	case DayOfWeek:
		for d := int64(Monday); d <= int64(Sunday); d++ {
			values = append(values, d)
		}
	case AmPmOfDay:
		values = []int64{0, 1}
	case Era:
		values = []int64{0, 1}
	default:
		return nil
	}

	out := make([]TextValue, 0, len(values))
	for _, v := range values {
		if text, ok := p.GetText(f, v, style, locale); ok {
			out = append(out, TextValue{Text: text, Value: v})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return len([]rune(out[i].Text)) > len([]rune(out[j].Text))
	})
	return out
}

// mapTextProvider adapts a user-supplied value-to-text map into a
// TextProvider for a single field and style, per the "default implementation
// for user-provided value-to-text maps" design note.
type mapTextProvider struct {
	field Field
	style TextStyle
	byVal map[int64]string
}

// NewMapTextProvider builds a TextProvider for a single field from a
// value-to-text map, usable with Builder.AppendTextProvider.
func NewMapTextProvider(field Field, style TextStyle, byVal map[int64]string) TextProvider {
	return &mapTextProvider{field: field, style: style, byVal: byVal}
}

func (p *mapTextProvider) GetText(f Field, value int64, style TextStyle, locale string) (string, bool) {
	if f != p.field || style != p.style {
		return "", false
	}
	text, ok := p.byVal[value]
	return text, ok
}

func (p *mapTextProvider) GetTextIterator(f Field, style TextStyle, locale string) []TextValue {
	if f != p.field || style != p.style {
		return nil
	}
	out := make([]TextValue, 0, len(p.byVal))
	for v, t := range p.byVal {
		out = append(out, TextValue{Text: t, Value: v})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len([]rune(out[i].Text)) > len([]rune(out[j].Text))
	})
	return out
}
