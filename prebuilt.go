package tformat

// Prebuilt, ready-to-use formatters for the ISO-8601 date/time forms and
// RFC 1123, per §6.4-§6.6. Each is assembled with the Builder API directly
// rather than through AppendPattern, so the literal '[' and ']' used in
// ISO_ZONED_DATE_TIME's bracketed region are ordinary characters rather than
// pattern-compiler optional-section markers.

func buildISOLocalDate() *Formatter {
	return NewBuilder().
		AppendValueRange(Year, 4, 10, SignStyleExceedsPad).
		AppendLiteral('-').
		AppendValue(MonthOfYear, 2).
		AppendLiteral('-').
		AppendValue(DayOfMonth, 2).
		ToFormatter("en").
		WithResolverStyle(ResolverStyleStrict)
}

func appendISOLocalTime(b *Builder) *Builder {
	b.AppendValue(HourOfDay, 2).
		AppendLiteral(':').
		AppendValue(MinuteOfHour, 2)
	b.OptionalStart()
	b.AppendLiteral(':').AppendValue(SecondOfMinute, 2)
	b.OptionalStart()
	b.AppendFraction(NanoOfSecond, 0, 9, true)
	b.OptionalEnd()
	b.OptionalEnd()
	return b
}

func buildISOLocalTime() *Formatter {
	return appendISOLocalTime(NewBuilder()).ToFormatter("en").WithResolverStyle(ResolverStyleStrict)
}

func buildISOLocalDateTime() *Formatter {
	b := NewBuilder().
		AppendValueRange(Year, 4, 10, SignStyleExceedsPad).
		AppendLiteral('-').
		AppendValue(MonthOfYear, 2).
		AppendLiteral('-').
		AppendValue(DayOfMonth, 2).
		AppendLiteral('T')
	appendISOLocalTime(b)
	return b.ToFormatter("en").WithResolverStyle(ResolverStyleStrict)
}

func buildISOOffsetDateTime() *Formatter {
	b := NewBuilder().
		AppendValueRange(Year, 4, 10, SignStyleExceedsPad).
		AppendLiteral('-').
		AppendValue(MonthOfYear, 2).
		AppendLiteral('-').
		AppendValue(DayOfMonth, 2).
		AppendLiteral('T')
	appendISOLocalTime(b)
	b.AppendOffset("+HH:MM:ss", "Z")
	return b.ToFormatter("en").WithResolverStyle(ResolverStyleStrict)
}

func buildISOZonedDateTime() *Formatter {
	b := NewBuilder().
		AppendValueRange(Year, 4, 10, SignStyleExceedsPad).
		AppendLiteral('-').
		AppendValue(MonthOfYear, 2).
		AppendLiteral('-').
		AppendValue(DayOfMonth, 2).
		AppendLiteral('T')
	appendISOLocalTime(b)
	b.AppendOffset("+HH:MM:ss", "Z")
	b.OptionalStart()
	b.AppendLiteral('[').AppendZoneID(nil).AppendLiteral(']')
	b.OptionalEnd()
	return b.ToFormatter("en").WithResolverStyle(ResolverStyleStrict)
}

func buildISOInstant() *Formatter {
	return NewBuilder().AppendInstant(-1).ToFormatter("en")
}

func buildISOOrdinalDate() *Formatter {
	return NewBuilder().
		AppendValueRange(Year, 4, 10, SignStyleExceedsPad).
		AppendLiteral('-').
		AppendValue(DayOfYear, 3).
		ToFormatter("en").
		WithResolverStyle(ResolverStyleStrict)
}

func buildISOWeekDate() *Formatter {
	return NewBuilder().
		AppendValueRange(WeekBasedYear, 4, 10, SignStyleExceedsPad).
		AppendLiteral('-').
		AppendLiteral('W').
		AppendValue(WeekOfWeekBasedYear, 2).
		AppendLiteral('-').
		AppendValue(DayOfWeek, 1).
		ToFormatter("en").
		WithResolverStyle(ResolverStyleStrict)
}

func buildBasicISODate() *Formatter {
	return NewBuilder().
		AppendValue(Year, 4).
		AppendValue(MonthOfYear, 2).
		AppendValue(DayOfMonth, 2).
		ToFormatter("en").
		WithResolverStyle(ResolverStyleStrict)
}

func buildRFC1123DateTime() *Formatter {
	b := NewBuilder()
	b.ParseCaseInsensitive()
	b.OptionalStart()
	b.AppendText(DayOfWeek, TextStyleShort).AppendLiteralString(", ")
	b.OptionalEnd()
	b.AppendValueRange(DayOfMonth, 1, 2, SignStyleNotNegative).
		AppendLiteral(' ').
		AppendText(MonthOfYear, TextStyleShort).
		AppendLiteral(' ').
		AppendValue(Year, 4).
		AppendLiteral(' ').
		AppendValue(HourOfDay, 2).
		AppendLiteral(':').
		AppendValue(MinuteOfHour, 2)
	b.OptionalStart()
	b.AppendLiteral(':').AppendValue(SecondOfMinute, 2)
	b.OptionalEnd()
	b.AppendLiteral(' ').AppendOffset("+HHMM", "GMT")
	return b.ToFormatter("en").WithResolverStyle(ResolverStyleSmart)
}

// Prebuilt formatters, per §6.4-§6.6. Package init order guarantees each
// Builder chain above runs exactly once, deterministically, before any of
// these are read.
var (
	ISOLocalDate      = buildISOLocalDate()
	ISOLocalTime      = buildISOLocalTime()
	ISOLocalDateTime  = buildISOLocalDateTime()
	ISOOffsetDateTime = buildISOOffsetDateTime()
	ISOZonedDateTime  = buildISOZonedDateTime()
	ISOInstant        = buildISOInstant()
	ISOOrdinalDate    = buildISOOrdinalDate()
	ISOWeekDate       = buildISOWeekDate()
	BasicISODate      = buildBasicISODate()
	RFC1123DateTime   = buildRFC1123DateTime()
)
