package tformat

import "fmt"

// isoDate is the ChronoLocalDate ISOChronology produces: an epoch day plus
// its cached year/month/day decomposition, so FieldValue never has to
// re-derive the calendar fields it was built from.
type isoDate struct {
	epochDay          int64
	year, month, day  int64
}

func (d isoDate) EpochDay() int64 { return d.epochDay }

func newISODate(epochDay int64) isoDate {
	y, m, d := ymdFromEpochDay(epochDay)
	return isoDate{epochDay: epochDay, year: y, month: m, day: d}
}

// isoChronology implements Chronology for the proleptic Gregorian (ISO-8601)
// calendar system, generalizing the epoch-day/JDN arithmetic of the
// teacher's LocalDate into the multi-combinator DateFrom* constructors the
// Resolver drives (§4.8).
type isoChronology struct{}

// ISOChronology is the sole Chronology this package ships a concrete
// implementation of; calendar systems beyond ISO are out of scope (§1,
// Non-goals), and every element and the Resolver default to it when no
// override chronology is supplied.
func ISOChronology() Chronology { return isoChronology{} }

func (isoChronology) ID() string { return "ISO" }

func (isoChronology) DateFromEpochDay(epochDay int64) (ChronoLocalDate, error) {
	min, max := EpochDay.Range()
	if epochDay < min || epochDay > max {
		return nil, &ResolveError{Msg: fmt.Sprintf("epoch day %d out of range", epochDay)}
	}
	return newISODate(epochDay), nil
}

func (c isoChronology) DateFromYearMonthDay(year, month, day int64) (ChronoLocalDate, error) {
	if month < 1 || month > 12 {
		return nil, &ResolveError{Msg: fmt.Sprintf("invalid month %d", month)}
	}
	if day < 1 || day > daysInMonth(year, month) {
		return nil, &ResolveError{Msg: fmt.Sprintf("invalid day %d for %04d-%02d", day, year, month)}
	}
	return c.DateFromEpochDay(epochDayFromYMD(year, month, day))
}

func (c isoChronology) DateFromYearDay(year, dayOfYear int64) (ChronoLocalDate, error) {
	epochDay, err := epochDayFromOrdinal(year, dayOfYear)
	if err != nil {
		return nil, err
	}
	return c.DateFromEpochDay(epochDay)
}

func (c isoChronology) DateFromProlepticMonthDay(prolepticMonth, day int64) (ChronoLocalDate, error) {
	year := floorDiv(prolepticMonth, 12)
	month := floorMod(prolepticMonth, 12) + 1
	return c.DateFromYearMonthDay(year, month, day)
}

func (c isoChronology) DateFromAlignedWeek(year, alignedWeekOfYear, dayOfWeek int64) (ChronoLocalDate, error) {
	if alignedWeekOfYear < 1 || alignedWeekOfYear > 53 {
		return nil, &ResolveError{Msg: fmt.Sprintf("invalid aligned week %d", alignedWeekOfYear)}
	}
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return nil, &ResolveError{Msg: fmt.Sprintf("invalid day-of-week %d", dayOfWeek)}
	}
	return c.DateFromEpochDay(epochDayFromAlignedWeek(year, alignedWeekOfYear, dayOfWeek))
}

func (c isoChronology) DateFromWeekBasedYear(weekBasedYear, weekOfWeekBasedYear, dayOfWeek int64) (ChronoLocalDate, error) {
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return nil, &ResolveError{Msg: fmt.Sprintf("invalid day-of-week %d", dayOfWeek)}
	}
	epochDay, err := epochDayFromISOWeek(weekBasedYear, weekOfWeekBasedYear, dayOfWeek)
	if err != nil {
		return nil, err
	}
	return c.DateFromEpochDay(epochDay)
}

// FieldValue extracts a date-based field from a date this chronology
// produced. Only fields whose value is a pure function of the calendar date
// are handled here; time-based and zone/offset/instant fields never reach a
// Chronology.
func (isoChronology) FieldValue(cd ChronoLocalDate, f Field) (int64, bool) {
	d, ok := cd.(isoDate)
	if !ok {
		return 0, false
	}

	switch f {
	case Year:
		return d.year, true
	case YearOfEra:
		if d.year >= 1 {
			return d.year, true
		}
		return 1 - d.year, true
	case Era:
		if d.year >= 1 {
			return 1, true
		}
		return 0, true
	case MonthOfYear:
		return d.month, true
	case DayOfMonth:
		return d.day, true
	case DayOfYear:
		return getOrdinalDate(d.year, d.month, d.day), true
	case DayOfWeek:
		return int64(getWeekday(d.epochDay)), true
	case AlignedDayOfWeekInMonth:
		return (d.day-1)%7 + 1, true
	case AlignedWeekOfMonth:
		return (d.day-1)/7 + 1, true
	case AlignedWeekOfYear:
		doy := getOrdinalDate(d.year, d.month, d.day)
		return (doy-1)/7 + 1, true
	case QuarterOfYear:
		return (d.month-1)/3 + 1, true
	case ProlepticMonth:
		return prolepticMonthFromYM(d.year, d.month), true
	case EpochDay:
		return d.epochDay, true
	case WeekBasedYear:
		y, _ := getISOWeek(d.epochDay)
		return y, true
	case WeekOfWeekBasedYear:
		_, w := getISOWeek(d.epochDay)
		return w, true
	default:
		return 0, false
	}
}
