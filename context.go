package tformat

import "unicode"

// PrintContext carries the mutable state threaded through a single Format
// call: the temporal being printed, the active locale and decimal style, and
// the current optional-section nesting depth. One is created per call to
// Formatter.Format and discarded afterward; it must not be shared across
// goroutines.
type PrintContext struct {
	temporal      TemporalAccessor
	locale        string
	style         DecimalStyle
	optionalDepth int
}

func newPrintContext(t TemporalAccessor, locale string, style DecimalStyle) *PrintContext {
	return &PrintContext{temporal: t, locale: locale, style: style}
}

// Temporal returns the value currently being printed.
func (c *PrintContext) Temporal() TemporalAccessor { return c.temporal }

// Locale returns the active locale identifier (e.g. "en-US").
func (c *PrintContext) Locale() string { return c.locale }

// Symbols returns the active DecimalStyle.
func (c *PrintContext) Symbols() DecimalStyle { return c.style }

// GetValue reads a field from the temporal being printed. If the field is
// absent and the context is inside an optional section, it returns
// (0, false, nil) so the caller can skip the optional section silently.
// Outside an optional section, an absent field surfaces as a MissingField
// error that must propagate up and fail the whole print.
func (c *PrintContext) GetValue(f Field) (int64, bool, error) {
	if !c.temporal.IsSupported(f) {
		if c.optionalDepth > 0 {
			return 0, false, nil
		}
		return 0, false, &MissingFieldError{Field: f}
	}

	v, err := c.temporal.GetLong(f)
	if err != nil {
		if c.optionalDepth > 0 {
			return 0, false, nil
		}
		return 0, false, err
	}
	return v, true, nil
}

// GetValueByQuery reads a non-numeric capability (zone, offset, chronology,
// ...) from the temporal being printed.
func (c *PrintContext) GetValueByQuery(q QueryKind) (any, bool) {
	return c.temporal.Query(q)
}

func (c *PrintContext) startOptional() { c.optionalDepth++ }
func (c *PrintContext) endOptional()   { c.optionalDepth-- }

// parsedFrame is the mutable per-attempt accumulator for a parse: every field
// value seen so far, plus the singleton zone/chronology/leap-second state.
type parsedFrame struct {
	fieldValues map[Field]int64
	zone        *string
	chronology  Chronology
	leapSecond  bool
	excessDays  int64
}

func newParsedFrame() *parsedFrame {
	return &parsedFrame{fieldValues: make(map[Field]int64)}
}

func (p *parsedFrame) clone() *parsedFrame {
	fv := make(map[Field]int64, len(p.fieldValues))
	for k, v := range p.fieldValues {
		fv[k] = v
	}
	out := &parsedFrame{
		fieldValues: fv,
		chronology:  p.chronology,
		leapSecond:  p.leapSecond,
		excessDays:  p.excessDays,
	}
	if p.zone != nil {
		z := *p.zone
		out.zone = &z
	}
	return out
}

// ParseContext carries the mutable state threaded through a single Parse
// call: case-sensitivity and strictness flags, the optional-section nesting
// depth, and a stack of speculative parsedFrame snapshots. One is created
// per call to Formatter.Parse and discarded afterward; it must not be shared
// across goroutines.
type ParseContext struct {
	caseSensitive bool
	strict        bool
	optionalDepth int
	stack         []*parsedFrame
	locale        string
	style         DecimalStyle
	conflict      *ConflictingFieldError
}

func newParseContext(locale string, style DecimalStyle, resolverStyle ResolverStyle) *ParseContext {
	return &ParseContext{
		caseSensitive: false,
		strict:        resolverStyle == ResolverStyleStrict,
		stack:         []*parsedFrame{newParsedFrame()},
		locale:        locale,
		style:         style,
	}
}

func (c *ParseContext) top() *parsedFrame { return c.stack[len(c.stack)-1] }

// Locale returns the active locale identifier.
func (c *ParseContext) Locale() string { return c.locale }

// Symbols returns the active DecimalStyle.
func (c *ParseContext) Symbols() DecimalStyle { return c.style }

// CaseSensitive reports whether literal and text matching is case-sensitive.
func (c *ParseContext) CaseSensitive() bool { return c.caseSensitive }

// Strict reports whether the context is in strict-width/strict-sign mode.
func (c *ParseContext) Strict() bool { return c.strict }

func (c *ParseContext) setCaseSensitive(v bool) { c.caseSensitive = v }
func (c *ParseContext) setStrict(v bool)        { c.strict = v }

// CharEquals compares two runes under the context's case policy: exact when
// case-sensitive, simple ASCII (plus Unicode SimpleFold as a superset) case
// folding otherwise.
func (c *ParseContext) CharEquals(a, b rune) bool {
	if a == b {
		return true
	}
	if c.caseSensitive {
		return false
	}
	return unicode.ToLower(a) == unicode.ToLower(b) || unicode.SimpleFold(a) == b || unicode.SimpleFold(b) == a
}

// SubSequenceEquals reports whether text[pos:pos+length] equals
// lit[litPos:litPos+length] under the context's case policy.
func (c *ParseContext) SubSequenceEquals(text string, pos int, lit string, litPos, length int) bool {
	tr := []rune(text)
	lr := []rune(lit)
	if pos+length > len(tr) || litPos+length > len(lr) {
		return false
	}
	for i := 0; i < length; i++ {
		if !c.CharEquals(tr[pos+i], lr[litPos+i]) {
			return false
		}
	}
	return true
}

// SetParsedField records a value for field f. If a different value was
// already recorded for f, it returns the complement of errorPos so the
// caller can fail the parse at that position; otherwise it returns
// successPos unchanged.
func (c *ParseContext) SetParsedField(f Field, value int64, errorPos, successPos int) int {
	frame := c.top()
	if existing, ok := frame.fieldValues[f]; ok && existing != value {
		if c.optionalDepth == 0 {
			c.conflict = &ConflictingFieldError{Field: f, Index: errorPos}
		}
		return complement(errorPos)
	}
	frame.fieldValues[f] = value
	return successPos
}

func (c *ParseContext) setParsedZone(id string) { c.top().zone = &id }

func (c *ParseContext) setParsedChronology(ch Chronology) { c.top().chronology = ch }

func (c *ParseContext) setLeapSecond() { c.top().leapSecond = true }

// startOptional pushes a copy of the top frame and bumps the optional-section
// nesting depth, giving the caller a speculative frame to mutate.
func (c *ParseContext) startOptional() {
	c.optionalDepth++
	c.stack = append(c.stack, c.top().clone())
}

// endOptional pops the speculative frame. If success is true, the
// speculative frame becomes the new top (its edits are kept); if false, it
// is discarded and the frame beneath it is restored.
func (c *ParseContext) endOptional(success bool) {
	c.optionalDepth--
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	if success {
		c.stack[len(c.stack)-1] = top
	}
}

// toParsed freezes the top frame into an immutable Parsed value for the
// Resolver to consume.
func (c *ParseContext) toParsed() *Parsed {
	frame := c.top()
	fv := make(map[Field]int64, len(frame.fieldValues))
	for k, v := range frame.fieldValues {
		fv[k] = v
	}
	p := &Parsed{
		FieldValues: fv,
		Chronology:  frame.chronology,
		LeapSecond:  frame.leapSecond,
		ExcessDays:  frame.excessDays,
	}
	if frame.zone != nil {
		z := *frame.zone
		p.Zone = &z
	}
	return p
}

// Parsed is the immutable result of one parse attempt: the accumulated
// field-value map together with any parsed zone, chronology, and
// leap-second/excess-day flags. It is the sole input to the Resolver.
type Parsed struct {
	FieldValues map[Field]int64
	Zone        *string
	Chronology  Chronology
	LeapSecond  bool
	ExcessDays  int64
}
