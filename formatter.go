package tformat

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/text/language"
)

// Formatter is the immutable facade over a compiled element tree, per §6.1:
// a root element, a locale and its matched language.Tag, a DecimalStyle, a
// ResolverStyle, an optional field allow-list for resolution, and the
// optional override chronology/zone of §6.2. Every With* method returns a
// modified copy; a Formatter itself may be shared freely across goroutines,
// since Format and Parse each build their own PrintContext/ParseContext.
type Formatter struct {
	root           *composite
	locale         string
	langTag        language.Tag
	decimalStyle   DecimalStyle
	resolverStyle  ResolverStyle
	resolverFields map[Field]bool
	chronology     Chronology
	zoneID         *string
}

func newFormatter(root *composite, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{
		root:          root,
		locale:        locale,
		langTag:       tag,
		decimalStyle:  StandardDecimalStyle(),
		resolverStyle: ResolverStyleSmart,
	}
}

// WithLocale returns a copy of f with locale replaced, re-matching it against
// the supported language.Tag set (falling back to English on an
// unrecognized tag).
func (f *Formatter) WithLocale(locale string) *Formatter {
	c := *f
	c.locale = locale
	if tag, err := language.Parse(locale); err == nil {
		c.langTag = tag
	} else {
		c.langTag = language.English
	}
	return &c
}

// LanguageTag returns the language.Tag this Formatter's locale matched.
func (f *Formatter) LanguageTag() language.Tag { return f.langTag }

// WithDecimalStyle returns a copy of f using the given DecimalStyle.
func (f *Formatter) WithDecimalStyle(style DecimalStyle) *Formatter {
	c := *f
	c.decimalStyle = style
	return &c
}

// WithResolverStyle returns a copy of f using the given ResolverStyle.
func (f *Formatter) WithResolverStyle(style ResolverStyle) *Formatter {
	c := *f
	c.resolverStyle = style
	return &c
}

// WithResolverFields returns a copy of f that, on Parse, discards any parsed
// field not in fields before resolution. Passing no fields clears the
// allow-list (all parsed fields participate).
func (f *Formatter) WithResolverFields(fields ...Field) *Formatter {
	c := *f
	if len(fields) == 0 {
		c.resolverFields = nil
		return &c
	}
	m := make(map[Field]bool, len(fields))
	for _, fl := range fields {
		m[fl] = true
	}
	c.resolverFields = m
	return &c
}

// WithChronology returns a copy of f that overrides the chronology used both
// to resolve parsed fields and, per §6.2, to reinterpret a temporal's
// date-based fields before printing.
func (f *Formatter) WithChronology(ch Chronology) *Formatter {
	c := *f
	c.chronology = ch
	return &c
}

// WithZone returns a copy of f that overrides the zone reported when
// printing, per §6.2.
func (f *Formatter) WithZone(zoneID string) *Formatter {
	c := *f
	c.zoneID = &zoneID
	return &c
}

func (f *Formatter) effectiveChronology() Chronology {
	if f.chronology != nil {
		return f.chronology
	}
	return ISOChronology()
}

// chronologyOverrideTemporal reinterprets a temporal's date-based fields
// under a different chronology, provided the original supports EPOCH_DAY.
type chronologyOverrideTemporal struct {
	inner      TemporalAccessor
	chronology Chronology
}

func (v *chronologyOverrideTemporal) IsSupported(f Field) bool { return v.inner.IsSupported(f) }

func (v *chronologyOverrideTemporal) GetLong(f Field) (int64, error) {
	if f.IsDateBased() && f != EpochDay {
		ed, err := v.inner.GetLong(EpochDay)
		if err == nil {
			cd, err := v.chronology.DateFromEpochDay(ed)
			if err == nil {
				if val, ok := v.chronology.FieldValue(cd, f); ok {
					return val, nil
				}
			}
		}
	}
	return v.inner.GetLong(f)
}

func (v *chronologyOverrideTemporal) Query(q QueryKind) (any, bool) {
	if q == QueryChronology {
		return v.chronology, true
	}
	return v.inner.Query(q)
}

// zoneOverrideTemporal substitutes the zone ID reported by Query, leaving
// every numeric field untouched. Because this package does not compute zone
// offset transitions (§1, Non-goal), it cannot re-derive the local date/time
// for the new zone; this is therefore a display-only override, matching
// §6.2's escape hatch for a temporal that already reports a consistent
// offset for its zone.
type zoneOverrideTemporal struct {
	inner  TemporalAccessor
	zoneID string
}

func (v *zoneOverrideTemporal) IsSupported(f Field) bool      { return v.inner.IsSupported(f) }
func (v *zoneOverrideTemporal) GetLong(f Field) (int64, error) { return v.inner.GetLong(f) }

func (v *zoneOverrideTemporal) Query(q QueryKind) (any, bool) {
	if q == QueryZoneID || q == QueryZone {
		return v.zoneID, true
	}
	return v.inner.Query(q)
}

// adjust applies the override-chronology and override-zone views of §6.2,
// in that order, before a print.
func (f *Formatter) adjust(t TemporalAccessor) (TemporalAccessor, error) {
	view := t

	if f.chronology != nil {
		same := false
		if q, ok := view.Query(QueryChronology); ok {
			if ch, ok := q.(Chronology); ok && ch != nil && ch.ID() == f.chronology.ID() {
				same = true
			}
		}
		if !same {
			if !view.IsSupported(EpochDay) {
				return nil, &UnsupportedError{What: "override chronology requires EPOCH_DAY support"}
			}
			view = &chronologyOverrideTemporal{inner: view, chronology: f.chronology}
		}
	}

	if f.zoneID != nil {
		same := false
		if q, ok := view.Query(QueryZoneID); ok {
			if id, ok := q.(string); ok && id == *f.zoneID {
				same = true
			}
		}
		if !same {
			view = &zoneOverrideTemporal{inner: view, zoneID: *f.zoneID}
		}
	}

	return view, nil
}

// Format prints t against this Formatter's element tree, returning the
// result as a string.
func (f *Formatter) Format(t TemporalAccessor) (string, error) {
	view, err := f.adjust(t)
	if err != nil {
		return "", err
	}
	ctx := newPrintContext(view, f.locale, f.decimalStyle)
	var buf strings.Builder
	ok, err := f.root.printTo(ctx, &buf)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &MissingFieldError{}
	}
	return buf.String(), nil
}

// FormatTo prints t into sink, per §6.1. A write failure is wrapped in an
// IoError.
func (f *Formatter) FormatTo(t TemporalAccessor, sink io.Writer) error {
	s, err := f.Format(t)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(sink, s); err != nil {
		return &IoError{Err: err}
	}
	return nil
}

func (f *Formatter) newParseContext() *ParseContext {
	return newParseContext(f.locale, f.decimalStyle, f.resolverStyle)
}

// parseRaw runs text through the element tree without resolving it,
// returning the accumulated Parsed value and the rune position just past
// the match.
func (f *Formatter) parseRaw(text string) (*Parsed, int, error) {
	ctx := f.newParseContext()
	end := f.root.parseTo(ctx, text, 0)
	if isError(end) {
		errPos := complement(end)
		if ctx.conflict != nil {
			return nil, errPos, ctx.conflict
		}
		return nil, errPos, newParseError(text, errPos)
	}
	return ctx.toParsed(), end, nil
}

// ParseUnresolved runs text through the element tree and returns the
// accumulated field values without resolving them into a concrete date/time,
// per §6.1.
func (f *Formatter) ParseUnresolved(text string) (*Parsed, error) {
	p, pos, err := f.parseRaw(text)
	if err != nil {
		return nil, err
	}
	if pos != len([]rune(text)) {
		return nil, newParseError(text, pos)
	}
	return p, nil
}

// Parse runs text through the element tree and resolves the result into a
// ResolvedTemporal, per §6.1/§4.8. A failure to resolve the parsed fields is
// reported as a *ParseError at index 0.
func (f *Formatter) Parse(text string) (*ResolvedTemporal, error) {
	p, pos, err := f.parseRaw(text)
	if err != nil {
		return nil, err
	}
	if pos != len([]rune(text)) {
		return nil, newParseError(text, pos)
	}
	rt, err := Resolve(p, f.resolverStyle, f.resolverFields, f.effectiveChronology())
	if err != nil {
		return nil, newParseError(text, 0)
	}
	return rt, nil
}

// TemporalQuery projects a ResolvedTemporal onto a concrete value, returning
// ok=false if the resolved fields do not support the projection.
type TemporalQuery func(*ResolvedTemporal) (any, bool)

// ParseQuery parses text and projects the result through query.
func (f *Formatter) ParseQuery(text string, query TemporalQuery) (any, error) {
	rt, err := f.Parse(text)
	if err != nil {
		return nil, err
	}
	v, ok := query(rt)
	if !ok {
		return nil, &UnsupportedError{What: "query has no answer for the parsed fields"}
	}
	return v, nil
}

// ParseBest parses text once and returns the result of the first query (in
// order) that can be satisfied, per §6.1. At least two queries are required.
func (f *Formatter) ParseBest(text string, queries ...TemporalQuery) (any, error) {
	if len(queries) < 2 {
		return nil, &InvalidArgumentError{Msg: "ParseBest requires at least 2 queries"}
	}
	rt, err := f.Parse(text)
	if err != nil {
		return nil, err
	}
	for _, q := range queries {
		if v, ok := q(rt); ok {
			return v, nil
		}
	}
	return nil, &ResolveError{Msg: "no query could be satisfied from the parsed fields"}
}

// ParsePosition tracks the index ClassicFormat.ParseObject consumed up to,
// or the index at which it failed, mirroring §6.3's adapter contract.
type ParsePosition struct {
	Index      int
	ErrorIndex int
}

// ClassicFormat adapts a Formatter to the Format(any, io.Writer) /
// ParseObject(string, *ParsePosition) (any, error) shape of §6.3, for
// callers that need to plug this package into a generic formatting
// interface built around `any` rather than TemporalAccessor directly.
type ClassicFormat struct {
	f *Formatter
}

// NewClassicFormat wraps f as a ClassicFormat.
func NewClassicFormat(f *Formatter) *ClassicFormat { return &ClassicFormat{f: f} }

// Format writes obj, which must implement TemporalAccessor, into sink.
func (c *ClassicFormat) Format(obj any, sink io.Writer) error {
	t, ok := obj.(TemporalAccessor)
	if !ok {
		return &InvalidArgumentError{Msg: "object does not implement TemporalAccessor"}
	}
	return c.f.FormatTo(t, sink)
}

// ParseObject parses text starting at pos.Index, returning a *ResolvedTemporal
// on success. On failure, pos.ErrorIndex is set from the underlying
// *ParseError when available.
func (c *ClassicFormat) ParseObject(text string, pos *ParsePosition) (any, error) {
	start := 0
	if pos != nil {
		start = pos.Index
	}
	r := []rune(text)
	if start < 0 || start > len(r) {
		return nil, &InvalidArgumentError{Msg: "parse position out of range"}
	}

	rt, err := c.f.Parse(string(r[start:]))
	if err != nil {
		if pos != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pos.ErrorIndex = start + pe.Index
			}
		}
		return nil, err
	}
	if pos != nil {
		pos.Index = len(r)
	}
	return rt, nil
}
