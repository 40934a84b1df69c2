package tformat

import "fmt"

// Date is a plain ISO calendar date, stored as an epoch day. It is a
// constructor-only value type (§4.11, Non-goal: no duration arithmetic) used
// to feed Formatter.Format and to hold the result of Formatter.Parse once a
// Parsed value has been resolved down to a date.
type Date struct {
	epochDay int64
}

// NewDate builds a Date from a year/month/day triple, validating it against
// the proleptic-Gregorian calendar.
func NewDate(year, month, day int64) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, &InvalidArgumentError{Msg: fmt.Sprintf("invalid month %d", month)}
	}
	if day < 1 || day > daysInMonth(year, month) {
		return Date{}, &InvalidArgumentError{Msg: fmt.Sprintf("invalid day %d for %04d-%02d", day, year, month)}
	}
	return Date{epochDay: epochDayFromYMD(year, month, day)}, nil
}

// NewDateFromEpochDay builds a Date directly from an epoch day.
func NewDateFromEpochDay(epochDay int64) Date { return Date{epochDay: epochDay} }

func (d Date) IsSupported(f Field) bool { return f.IsDateBased() }

func (d Date) GetLong(f Field) (int64, error) {
	if v, ok := (isoChronology{}).FieldValue(newISODate(d.epochDay), f); ok {
		return v, nil
	}
	return 0, &UnsupportedError{What: f.String()}
}

func (d Date) Query(q QueryKind) (any, bool) {
	switch q {
	case QueryLocalDate:
		return d, true
	case QueryChronology:
		return ISOChronology(), true
	default:
		return nil, false
	}
}

// Time is a plain time-of-day, stored as nanosecond-of-day. Constructor-only,
// like Date.
type Time struct {
	nanoOfDay int64
}

// NewTime builds a Time from hour/minute/second/nanosecond components.
func NewTime(hour, minute, second, nano int64) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, &InvalidArgumentError{Msg: fmt.Sprintf("invalid hour %d", hour)}
	}
	if minute < 0 || minute > 59 {
		return Time{}, &InvalidArgumentError{Msg: fmt.Sprintf("invalid minute %d", minute)}
	}
	if second < 0 || second > 59 {
		return Time{}, &InvalidArgumentError{Msg: fmt.Sprintf("invalid second %d", second)}
	}
	if nano < 0 || nano > 999999999 {
		return Time{}, &InvalidArgumentError{Msg: fmt.Sprintf("invalid nanosecond %d", nano)}
	}
	nod := ((hour*60+minute)*60+second)*1000000000 + nano
	return Time{nanoOfDay: nod}, nil
}

// NewTimeFromNanoOfDay builds a Time directly from a nanosecond-of-day value.
func NewTimeFromNanoOfDay(nanoOfDay int64) Time { return Time{nanoOfDay: nanoOfDay} }

func (t Time) hour() int64   { return t.nanoOfDay / 3600000000000 }
func (t Time) minute() int64 { return (t.nanoOfDay / 60000000000) % 60 }
func (t Time) second() int64 { return (t.nanoOfDay / 1000000000) % 60 }
func (t Time) nano() int64   { return t.nanoOfDay % 1000000000 }

func (t Time) IsSupported(f Field) bool { return f.IsTimeBased() }

func (t Time) GetLong(f Field) (int64, error) {
	switch f {
	case HourOfDay:
		return t.hour(), nil
	case HourOfAmPm:
		return t.hour() % 12, nil
	case ClockHourOfDay:
		if t.hour() == 0 {
			return 24, nil
		}
		return t.hour(), nil
	case ClockHourOfAmPm:
		h := t.hour() % 12
		if h == 0 {
			return 12, nil
		}
		return h, nil
	case AmPmOfDay:
		return t.hour() / 12, nil
	case MinuteOfHour:
		return t.minute(), nil
	case SecondOfMinute:
		return t.second(), nil
	case NanoOfSecond:
		return t.nano(), nil
	case MicroOfSecond:
		return t.nano() / 1000, nil
	case MilliOfSecond:
		return t.nano() / 1000000, nil
	case NanoOfDay:
		return t.nanoOfDay, nil
	case MilliOfDay:
		return t.nanoOfDay / 1000000, nil
	default:
		return 0, &UnsupportedError{What: f.String()}
	}
}

func (t Time) Query(q QueryKind) (any, bool) {
	if q == QueryLocalTime {
		return t, true
	}
	return nil, false
}

// OffsetDateTime combines a Date, a Time, and a fixed UTC offset in seconds.
type OffsetDateTime struct {
	date          Date
	time          Time
	offsetSeconds int64
}

// NewOffsetDateTime builds an OffsetDateTime from its components.
func NewOffsetDateTime(date Date, time Time, offsetSeconds int64) OffsetDateTime {
	return OffsetDateTime{date: date, time: time, offsetSeconds: offsetSeconds}
}

func (o OffsetDateTime) IsSupported(f Field) bool {
	return f == OffsetSeconds || o.date.IsSupported(f) || o.time.IsSupported(f) || f == InstantSeconds
}

func (o OffsetDateTime) GetLong(f Field) (int64, error) {
	switch f {
	case OffsetSeconds:
		return o.offsetSeconds, nil
	case InstantSeconds:
		return o.date.epochDay*86400 + o.time.nanoOfDay/1000000000 - o.offsetSeconds, nil
	}
	if o.date.IsSupported(f) {
		return o.date.GetLong(f)
	}
	return o.time.GetLong(f)
}

func (o OffsetDateTime) Query(q QueryKind) (any, bool) {
	switch q {
	case QueryOffset:
		return o.offsetSeconds, true
	case QueryLocalDate:
		return o.date, true
	case QueryLocalTime:
		return o.time, true
	case QueryChronology:
		return ISOChronology(), true
	default:
		return nil, false
	}
}

// ZonedDateTime combines a Date, a Time, a resolved UTC offset, and a zone
// ID. The zone ID is carried for printing only; this package does not
// compute offset transitions from it (Non-goal, §1).
type ZonedDateTime struct {
	date          Date
	time          Time
	offsetSeconds int64
	zoneID        string
}

// NewZonedDateTime builds a ZonedDateTime from its components.
func NewZonedDateTime(date Date, time Time, offsetSeconds int64, zoneID string) ZonedDateTime {
	return ZonedDateTime{date: date, time: time, offsetSeconds: offsetSeconds, zoneID: zoneID}
}

func (z ZonedDateTime) IsSupported(f Field) bool {
	return f == OffsetSeconds || z.date.IsSupported(f) || z.time.IsSupported(f) || f == InstantSeconds
}

func (z ZonedDateTime) GetLong(f Field) (int64, error) {
	return OffsetDateTime{date: z.date, time: z.time, offsetSeconds: z.offsetSeconds}.GetLong(f)
}

func (z ZonedDateTime) Query(q QueryKind) (any, bool) {
	switch q {
	case QueryZoneID, QueryZone:
		return z.zoneID, true
	case QueryOffset:
		return z.offsetSeconds, true
	case QueryLocalDate:
		return z.date, true
	case QueryLocalTime:
		return z.time, true
	case QueryChronology:
		return ISOChronology(), true
	default:
		return nil, false
	}
}

// Instant is a point on the UTC-SLS timeline: a signed count of seconds from
// the epoch, plus a nanosecond-of-second fraction, matching the teacher's
// instant.go representation.
type Instant struct {
	seconds int64
	nanos   int64
}

// NewInstant builds an Instant from epoch-seconds and a nanosecond-of-second
// fraction.
func NewInstant(seconds, nanos int64) (Instant, error) {
	if nanos < 0 || nanos > 999999999 {
		return Instant{}, &InvalidArgumentError{Msg: fmt.Sprintf("invalid nanosecond %d", nanos)}
	}
	return Instant{seconds: seconds, nanos: nanos}, nil
}

func (i Instant) IsSupported(f Field) bool {
	return f == InstantSeconds || f == NanoOfSecond || f == MicroOfSecond || f == MilliOfSecond
}

func (i Instant) GetLong(f Field) (int64, error) {
	switch f {
	case InstantSeconds:
		return i.seconds, nil
	case NanoOfSecond:
		return i.nanos, nil
	case MicroOfSecond:
		return i.nanos / 1000, nil
	case MilliOfSecond:
		return i.nanos / 1000000, nil
	default:
		return 0, &UnsupportedError{What: f.String()}
	}
}

func (i Instant) Query(q QueryKind) (any, bool) {
	if q == QueryZoneID {
		return "Z", true
	}
	return nil, false
}

// YearMonth is a bare year/month pair, used when a parsed text resolves a
// year and a month-of-year but no day — e.g. "2011-06" against the pattern
// "uuuu-MM[-dd]" — and a caller asks for it via AsYearMonth.
type YearMonth struct {
	Year  int64
	Month int64
}

func (ym YearMonth) IsSupported(f Field) bool {
	return f == Year || f == MonthOfYear || f == ProlepticMonth
}

func (ym YearMonth) GetLong(f Field) (int64, error) {
	switch f {
	case Year:
		return ym.Year, nil
	case MonthOfYear:
		return ym.Month, nil
	case ProlepticMonth:
		return prolepticMonthFromYM(ym.Year, ym.Month), nil
	default:
		return 0, &UnsupportedError{What: f.String()}
	}
}

func (ym YearMonth) Query(q QueryKind) (any, bool) {
	if q == QueryChronology {
		return ISOChronology(), true
	}
	return nil, false
}
