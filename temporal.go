package tformat

// QueryKind names one of the handful of non-numeric capabilities a
// TemporalAccessor may answer through Query, alongside its numeric fields.
type QueryKind int

const (
	QueryZoneID QueryKind = iota
	QueryOffset
	QueryChronology
	QueryLocalDate
	QueryLocalTime
	QueryPrecision
	QueryZone
)

// TemporalAccessor is the read-side view this package needs of a date/time
// value in order to print it. Calendar arithmetic, zone-rules computation,
// and the concrete value types themselves are external collaborators; this
// interface is the seam between them and the formatting engine.
type TemporalAccessor interface {
	// IsSupported reports whether GetLong can answer for the given field.
	IsSupported(f Field) bool

	// GetLong returns the value of the given field. It is only ever called
	// after IsSupported has reported true; implementations may return an
	// UnsupportedError otherwise.
	GetLong(f Field) (int64, error)

	// Query answers one of the non-numeric capabilities in QueryKind. The
	// second return value is false if the temporal has no answer.
	Query(q QueryKind) (any, bool)
}

// ChronoLocalDate is an opaque, chronology-specific date key. The only
// universal operation on it is conversion to/from an epoch day, which lets
// the Resolver move between chronologies and the ISO calendar.
type ChronoLocalDate interface {
	EpochDay() int64
}

// Chronology constructs dates from the field combinations the Resolver knows
// how to cross-check (§4.8), and can report any date-based field value back
// out of a date it produced. The calendar-system implementations themselves
// (ISO, Thai Buddhist, Japanese, ...) are external collaborators; this
// package ships only ISOChronology, sufficient to exercise every code path.
type Chronology interface {
	ID() string

	DateFromEpochDay(epochDay int64) (ChronoLocalDate, error)
	DateFromYearMonthDay(year, month, day int64) (ChronoLocalDate, error)
	DateFromYearDay(year, dayOfYear int64) (ChronoLocalDate, error)
	DateFromProlepticMonthDay(prolepticMonth, day int64) (ChronoLocalDate, error)
	DateFromAlignedWeek(year, alignedWeekOfYear, dayOfWeek int64) (ChronoLocalDate, error)
	DateFromWeekBasedYear(weekBasedYear, weekOfWeekBasedYear, dayOfWeek int64) (ChronoLocalDate, error)

	// FieldValue extracts a date-based field from a date this chronology
	// produced, for the Resolver's cross-checking pass. ok is false if the
	// chronology does not expose that field.
	FieldValue(d ChronoLocalDate, f Field) (v int64, ok bool)
}

// ZoneRules enumerates the zone IDs a zone-id element may match against, and
// validates a candidate ID. Zone-offset transition computation itself (the
// actual "rules") is not part of this package's scope; only the identifier
// space is needed to drive the substring-prefix-tree parser of §4.4.8.
type ZoneRules interface {
	AvailableZoneIDs() []string
	IsValidZoneID(id string) bool
}
