package tformat

import "fmt"

// Builder assembles an element tree the way §4.2's CompositePrinterParser
// construction algorithm describes: a stack of composites (the root plus one
// per open optional section), one literal element per AppendLiteral or
// AppendLiteralString call, and adjacent fixed-width numeric elements chained onto the
// preceding variable-width numeric element's reservedFollowingWidth so a
// greedy parse still splits them correctly.
type Builder struct {
	stack        []*composite
	pendingVar   *numericValueElement
	padWidth     int
	padChar      rune
	padPending   bool
	caseSense    bool
	strict       bool
	haveCaseSet  bool
	haveStrict   bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	b := &Builder{}
	b.stack = []*composite{newComposite(false)}
	return b
}

func (b *Builder) active() *composite { return b.stack[len(b.stack)-1] }

// appendElement adds e to the currently active composite, wrapping it in a
// padDecorator if PadNext was called immediately before, and applying the
// adjacent-value-parsing chain when e is a fixed-width numeric element.
func (b *Builder) appendElement(e element) {
	if numeric, ok := e.(*numericValueElement); ok {
		if numeric.fixedWidth {
			if b.pendingVar != nil {
				b.pendingVar.reservedFollowingWidth += numeric.maxWidth
			}
		} else {
			b.pendingVar = numeric
		}
	} else {
		b.pendingVar = nil
	}

	if b.padPending {
		e = newPadDecorator(e, b.padWidth, b.padChar)
		b.padPending = false
	}
	b.active().add(e)
}

// AppendLiteral appends a single literal rune.
func (b *Builder) AppendLiteral(ch rune) *Builder {
	b.appendElement(&literalChar{ch: ch})
	return b
}

// AppendLiteralString appends a literal run of text.
func (b *Builder) AppendLiteralString(s string) *Builder {
	if s == "" {
		return b
	}
	b.appendElement(&literalString{s: s})
	return b
}

// AppendValue appends a field printed/parsed with a fixed width, per §4.4.3.
func (b *Builder) AppendValue(field Field, width int) *Builder {
	return b.AppendValueRange(field, width, width, SignStyleNotNegative)
}

// AppendValueRange appends a field printed/parsed with a variable width and
// explicit sign style.
func (b *Builder) AppendValueRange(field Field, minWidth, maxWidth int, signStyle SignStyle) *Builder {
	if minWidth < 1 || minWidth > 19 || maxWidth < minWidth || maxWidth > 19 {
		panic(&InvalidArgumentError{Msg: fmt.Sprintf("invalid width range [%d,%d] for field %s", minWidth, maxWidth, field)})
	}
	b.appendElement(newNumericValueElement(field, minWidth, maxWidth, signStyle))
	return b
}

// AppendValueReduced appends a reduced (compressed, e.g. two-digit-year)
// numeric field with a fixed base value, per §4.4.4.
func (b *Builder) AppendValueReduced(field Field, width, maxWidth int, baseValue int64) *Builder {
	if width < 1 || width > 18 || maxWidth < width || maxWidth > 18 {
		panic(&InvalidArgumentError{Msg: fmt.Sprintf("invalid reduced-value widths [%d,%d]", width, maxWidth)})
	}
	e := newReducedValueElement(field, width, maxWidth, baseValue)
	b.appendElement(&reducedAdapter{e})
	return b
}

// AppendValueReducedFromBaseDate appends a reduced numeric field whose base
// value is derived lazily from the active chronology.
func (b *Builder) AppendValueReducedFromBaseDate(field Field, width, maxWidth int, baseDate func(ch Chronology) int64) *Builder {
	e := newReducedValueElementFromBaseDate(field, width, maxWidth, baseDate)
	b.appendElement(&reducedAdapter{e})
	return b
}

// reducedAdapter exists only so that reducedValueElement, which is itself a
// valid element, is never mistaken for a *numericValueElement by
// appendElement's adjacent-width chaining (reduced fields resolve their own
// width window and must not absorb a neighbor's reserved digits).
type reducedAdapter struct{ *reducedValueElement }

// AppendFraction appends a fixed-range field printed as a decimal fraction,
// per §4.4.5.
func (b *Builder) AppendFraction(field Field, minWidth, maxWidth int, decimalPoint bool) *Builder {
	if !field.HasFixedRange() {
		panic(&InvalidArgumentError{Msg: fmt.Sprintf("field %s has no fixed range and cannot be printed as a fraction", field)})
	}
	if minWidth < 0 || minWidth > 9 || maxWidth < minWidth || maxWidth > 9 {
		panic(&InvalidArgumentError{Msg: fmt.Sprintf("invalid fraction widths [%d,%d]", minWidth, maxWidth)})
	}
	b.appendElement(newFractionalValueElement(field, minWidth, maxWidth, decimalPoint))
	return b
}

// AppendText appends a field printed as a name using the built-in text
// provider, falling back to numeric printing when no name is available.
func (b *Builder) AppendText(field Field, style TextStyle) *Builder {
	return b.AppendTextProvider(field, style, defaultTextProvider{})
}

// AppendTextProvider appends a field printed as a name using a caller-
// supplied TextProvider.
func (b *Builder) AppendTextProvider(field Field, style TextStyle, provider TextProvider) *Builder {
	b.appendElement(newTextValueElement(field, style, provider))
	return b
}

// AppendOffsetID appends the canonical "+HH:MM:ss" offset-id pattern with
// "Z" printed for a zero offset.
func (b *Builder) AppendOffsetID() *Builder {
	return b.AppendOffset("+HH:MM:ss", "Z")
}

// AppendOffset appends a UTC offset using one of the nine fixed pattern
// strings, printing noOffsetText for a zero offset.
func (b *Builder) AppendOffset(pattern, noOffsetText string) *Builder {
	e, err := newOffsetIDElement(noOffsetText, pattern)
	if err != nil {
		panic(err)
	}
	b.appendElement(e)
	return b
}

// AppendZoneID appends a zone identifier element backed by the given
// ZoneRules, or SystemZoneRules() if rules is nil.
func (b *Builder) AppendZoneID(rules ZoneRules) *Builder {
	b.appendElement(newZoneIDElement(rules))
	return b
}

// AppendInstant appends an ISO-8601 instant (INSTANT_SECONDS + NANO_OF_SECOND)
// per §4.4.9, printing fractionalDigits digits of sub-second precision (0..9
// for a fixed count; -1 for as many as needed, with no fraction at all when
// the nanosecond is zero; -2 for as many groups of three as needed).
func (b *Builder) AppendInstant(fractionalDigits int) *Builder {
	b.appendElement(newInstantElement(fractionalDigits))
	return b
}

// AppendChronologyID appends the active chronology's ID as text.
func (b *Builder) AppendChronologyID() *Builder {
	b.appendElement(&chronologyIDElement{})
	return b
}

// AppendDefaultValue injects value for field during parsing if no value was
// parsed for it, per the defaultingElement contract; it prints nothing.
func (b *Builder) AppendDefaultValue(field Field, value int64) *Builder {
	b.appendElement(&defaultingElement{field: field, value: value})
	return b
}

// OptionalStart opens an optional section: a run of elements whose entire
// output is discarded on print if any of them has no value, and whose parse
// failure is silently tolerated (the position rewinds to where the section
// started).
func (b *Builder) OptionalStart() *Builder {
	b.pendingVar = nil
	c := newComposite(true)
	b.active().add(c)
	b.stack = append(b.stack, c)
	return b
}

// OptionalEnd closes the most recently opened optional section.
func (b *Builder) OptionalEnd() *Builder {
	if len(b.stack) < 2 {
		panic(&InvalidArgumentError{Msg: "OptionalEnd without matching OptionalStart"})
	}
	b.pendingVar = nil
	b.stack = b.stack[:len(b.stack)-1]
	return b
}

// PadNext arranges for the single next-appended element to be padded to
// width using padChar.
func (b *Builder) PadNext(width int, padChar rune) *Builder {
	if width < 1 {
		panic(&InvalidArgumentError{Msg: "pad width must be at least 1"})
	}
	b.padWidth = width
	b.padChar = padChar
	b.padPending = true
	return b
}

// ParseCaseSensitive scopes case-sensitive literal/text matching from this
// point in the pattern.
func (b *Builder) ParseCaseSensitive() *Builder {
	b.appendElement(&settingElement{mode: settingSensitive})
	return b
}

// ParseCaseInsensitive scopes case-insensitive literal/text matching from
// this point in the pattern.
func (b *Builder) ParseCaseInsensitive() *Builder {
	b.appendElement(&settingElement{mode: settingInsensitive})
	return b
}

// ParseStrict scopes strict-width numeric parsing from this point in the
// pattern.
func (b *Builder) ParseStrict() *Builder {
	b.appendElement(&settingElement{mode: settingStrict})
	return b
}

// ParseLenient scopes lenient-width numeric parsing from this point in the
// pattern.
func (b *Builder) ParseLenient() *Builder {
	b.appendElement(&settingElement{mode: settingLenient})
	return b
}

// AppendPattern compiles a pattern-letter string (§4.6) and appends the
// resulting elements.
func (b *Builder) AppendPattern(pattern string) *Builder {
	if err := compilePattern(b, pattern); err != nil {
		panic(err)
	}
	return b
}

// ToFormatter finalizes the Builder into an immutable Formatter using the
// given locale, the standard decimal style, and ResolverStyleSmart.
func (b *Builder) ToFormatter(locale string) *Formatter {
	if len(b.stack) != 1 {
		panic(&InvalidArgumentError{Msg: "unbalanced OptionalStart/OptionalEnd"})
	}
	// Give the Formatter its own element list and end the adjacent-value
	// chain, so later appends to b cannot change the returned Formatter.
	root := newComposite(false)
	root.elements = append(root.elements, b.stack[0].elements...)
	b.pendingVar = nil
	return newFormatter(root, locale)
}
