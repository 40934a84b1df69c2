package tformat

import "fmt"

// ResolvedTemporal is the immutable result of resolving a Parsed field-value
// map down to concrete date/time/offset/zone/instant components, per §4.8.
// It is itself a TemporalAccessor, so a formatter's own elements can be
// re-queried against the value they just produced (§8, round-trip property).
type ResolvedTemporal struct {
	Date       *Date
	Time       *Time
	Offset     *int64
	ZoneID     *string
	Instant    *Instant
	Chronology Chronology
	LeapSecond bool
	ExcessDays int64

	// Fields holds every field value that survived the resolver's allow-list
	// filter, including ones that did not participate in building Date or
	// Time (e.g. a bare YEAR + MONTH_OF_YEAR with no DAY_OF_MONTH).
	Fields map[Field]int64
}

func (rt *ResolvedTemporal) IsSupported(f Field) bool {
	_, err := rt.GetLong(f)
	return err == nil
}

func (rt *ResolvedTemporal) GetLong(f Field) (int64, error) {
	if rt.Instant != nil && rt.Instant.IsSupported(f) {
		return rt.Instant.GetLong(f)
	}
	if f == OffsetSeconds && rt.Offset != nil {
		return *rt.Offset, nil
	}
	if f == InstantSeconds && rt.Date != nil && rt.Time != nil && rt.Offset != nil {
		return rt.Date.epochDay*secondsPerDay + rt.Time.nanoOfDay/1000000000 - *rt.Offset, nil
	}
	if rt.Date != nil && rt.Date.IsSupported(f) {
		return rt.Date.GetLong(f)
	}
	if rt.Time != nil && rt.Time.IsSupported(f) {
		return rt.Time.GetLong(f)
	}
	if v, ok := rt.Fields[f]; ok {
		return v, nil
	}
	return 0, &UnsupportedError{What: f.String()}
}

func (rt *ResolvedTemporal) Query(q QueryKind) (any, bool) {
	switch q {
	case QueryLocalDate:
		if rt.Date != nil {
			return *rt.Date, true
		}
	case QueryLocalTime:
		if rt.Time != nil {
			return *rt.Time, true
		}
	case QueryOffset:
		if rt.Offset != nil {
			return *rt.Offset, true
		}
	case QueryZoneID, QueryZone:
		if rt.ZoneID != nil {
			return *rt.ZoneID, true
		}
	case QueryChronology:
		if rt.Chronology != nil {
			return rt.Chronology, true
		}
		return ISOChronology(), true
	}
	return nil, false
}

// AsDate extracts a fully resolved Date, for use as a TemporalQuery with
// Formatter.ParseQuery/ParseBest.
func AsDate(rt *ResolvedTemporal) (any, bool) {
	if rt.Date == nil {
		return nil, false
	}
	return *rt.Date, true
}

// AsTime extracts a fully resolved Time.
func AsTime(rt *ResolvedTemporal) (any, bool) {
	if rt.Time == nil {
		return nil, false
	}
	return *rt.Time, true
}

// AsYearMonth extracts a bare year/month pair directly from the parsed field
// values, even when no DAY_OF_MONTH was present to resolve a full Date.
func AsYearMonth(rt *ResolvedTemporal) (any, bool) {
	y, hasYear := rt.Fields[Year]
	m, hasMonth := rt.Fields[MonthOfYear]
	if !hasYear || !hasMonth {
		return nil, false
	}
	return YearMonth{Year: y, Month: m}, true
}

// AsOffsetDateTime extracts an OffsetDateTime, requiring a resolved Date,
// Time, and OFFSET_SECONDS.
func AsOffsetDateTime(rt *ResolvedTemporal) (any, bool) {
	if rt.Date == nil || rt.Time == nil || rt.Offset == nil {
		return nil, false
	}
	return NewOffsetDateTime(*rt.Date, *rt.Time, *rt.Offset), true
}

// AsZonedDateTime extracts a ZonedDateTime, requiring a resolved Date, Time,
// OFFSET_SECONDS, and zone ID.
func AsZonedDateTime(rt *ResolvedTemporal) (any, bool) {
	if rt.Date == nil || rt.Time == nil || rt.Offset == nil || rt.ZoneID == nil {
		return nil, false
	}
	return NewZonedDateTime(*rt.Date, *rt.Time, *rt.Offset, *rt.ZoneID), true
}

// AsInstant extracts a resolved Instant.
func AsInstant(rt *ResolvedTemporal) (any, bool) {
	if rt.Instant == nil {
		return nil, false
	}
	return *rt.Instant, true
}

// Resolve combines a single parse attempt's field-value map into a
// ResolvedTemporal, per §4.8: date and time combinators are tried in a fixed
// priority order, hour 24 rolls over to the next day under SMART and LENIENT
// and is rejected under STRICT, a leap second 60 is read as second 59 under
// every style, and any remaining date-derived
// fields are cross-checked against the resolved date outside LENIENT mode.
func Resolve(p *Parsed, style ResolverStyle, allowed map[Field]bool, defaultChronology Chronology) (*ResolvedTemporal, error) {
	fv := make(map[Field]int64, len(p.FieldValues))
	for k, v := range p.FieldValues {
		if allowed != nil && !allowed[k] {
			continue
		}
		fv[k] = v
	}

	ch := p.Chronology
	if ch == nil {
		ch = defaultChronology
	}
	if ch == nil {
		ch = ISOChronology()
	}

	rt := &ResolvedTemporal{Chronology: ch, Fields: fv, LeapSecond: p.LeapSecond}

	date, dExcess, err := resolveDate(fv, style, ch)
	if err != nil {
		return nil, err
	}
	if date != nil {
		if style != ResolverStyleLenient {
			if err := crossCheckDate(fv, ch, *date); err != nil {
				return nil, err
			}
		}
		rt.Date = date
	}

	tm, tExcess, leap, err := resolveTime(fv, style)
	if err != nil {
		return nil, err
	}
	if tm != nil {
		rt.Time = tm
		if leap {
			rt.LeapSecond = true
		}
	}

	excessDays := dExcess + tExcess
	if excessDays != 0 && rt.Date != nil {
		nd := NewDateFromEpochDay(rt.Date.epochDay + excessDays)
		rt.Date = &nd
	}
	rt.ExcessDays = excessDays

	if v, ok := fv[OffsetSeconds]; ok {
		off := v
		rt.Offset = &off
	}
	if p.Zone != nil {
		z := *p.Zone
		rt.ZoneID = &z
	}
	if secs, ok := fv[InstantSeconds]; ok {
		nanos := fv[NanoOfSecond]
		inst, err := NewInstant(secs, nanos)
		if err != nil {
			return nil, err
		}
		rt.Instant = &inst
	}

	return rt, nil
}

func datePtr(cd ChronoLocalDate) *Date {
	d := NewDateFromEpochDay(cd.EpochDay())
	return &d
}

func datePtrFromEpochDay(ed int64) *Date {
	d := NewDateFromEpochDay(ed)
	return &d
}

func resolveDateLenientYMD(year, month, day int64) *Date {
	y := year + floorDiv(month-1, 12)
	m := floorMod(month-1, 12) + 1
	ed := epochDayFromYMD(y, m, 1) + (day - 1)
	return datePtrFromEpochDay(ed)
}

// resolveYear folds an ERA + YEAR_OF_ERA pair down to a proleptic YEAR when
// YEAR itself is absent, per the ISO era convention (era 0 is BCE).
func resolveYear(fv map[Field]int64) (int64, bool) {
	if y, ok := fv[Year]; ok {
		return y, true
	}
	yoe, ok := fv[YearOfEra]
	if !ok {
		return 0, false
	}
	era, hasEra := fv[Era]
	if !hasEra {
		era = 1
	}
	if era == 0 {
		return 1 - yoe, true
	}
	return yoe, true
}

func resolveDate(fv map[Field]int64, style ResolverStyle, ch Chronology) (*Date, int64, error) {
	if ed, ok := fv[EpochDay]; ok {
		cd, err := ch.DateFromEpochDay(ed)
		if err != nil {
			return nil, 0, err
		}
		return datePtr(cd), 0, nil
	}

	year, haveYear := resolveYear(fv)

	if haveYear {
		if month, ok := fv[MonthOfYear]; ok {
			if day, ok := fv[DayOfMonth]; ok {
				if style == ResolverStyleLenient {
					return resolveDateLenientYMD(year, month, day), 0, nil
				}
				cd, err := ch.DateFromYearMonthDay(year, month, day)
				if err != nil {
					return nil, 0, err
				}
				return datePtr(cd), 0, nil
			}
		}
		if doy, ok := fv[DayOfYear]; ok {
			if style == ResolverStyleLenient {
				ed := epochDayFromYMD(year, 1, 1) + doy - 1
				return datePtrFromEpochDay(ed), 0, nil
			}
			cd, err := ch.DateFromYearDay(year, doy)
			if err != nil {
				return nil, 0, err
			}
			return datePtr(cd), 0, nil
		}
		if awy, ok := fv[AlignedWeekOfYear]; ok {
			if dow, ok := fv[DayOfWeek]; ok {
				cd, err := ch.DateFromAlignedWeek(year, awy, dow)
				if err != nil {
					return nil, 0, err
				}
				return datePtr(cd), 0, nil
			}
		}
	}

	if pm, ok := fv[ProlepticMonth]; ok {
		if day, ok := fv[DayOfMonth]; ok {
			cd, err := ch.DateFromProlepticMonthDay(pm, day)
			if err != nil {
				return nil, 0, err
			}
			return datePtr(cd), 0, nil
		}
	}

	if wby, ok := fv[WeekBasedYear]; ok {
		if wow, ok := fv[WeekOfWeekBasedYear]; ok {
			if dow, ok := fv[DayOfWeek]; ok {
				cd, err := ch.DateFromWeekBasedYear(wby, wow, dow)
				if err != nil {
					return nil, 0, err
				}
				return datePtr(cd), 0, nil
			}
		}
	}

	return nil, 0, nil
}

// crossCheckDate verifies that any date-derived field present in fv but not
// used to build date agrees with date's own value for that field.
func crossCheckDate(fv map[Field]int64, ch Chronology, date Date) error {
	cd := newISODate(date.epochDay)
	for f, v := range fv {
		if !f.IsDateBased() || f == EpochDay {
			continue
		}
		actual, ok := ch.FieldValue(cd, f)
		if !ok {
			continue
		}
		if actual != v {
			return &ResolveError{Msg: fmt.Sprintf("field %s value %d does not match resolved date (expected %d)", f, v, actual)}
		}
	}
	return nil
}

func resolveTime(fv map[Field]int64, style ResolverStyle) (*Time, int64, bool, error) {
	hour, haveHour := fv[HourOfDay]
	if !haveHour {
		if clockHour, ok := fv[ClockHourOfDay]; ok {
			if clockHour < 1 || clockHour > 24 {
				return nil, 0, false, &ResolveError{Msg: "CLOCK_HOUR_OF_DAY out of range"}
			}
			hour = clockHour % 24
			haveHour = true
		} else if clockHourAmPm, ok := fv[ClockHourOfAmPm]; ok {
			ampm := fv[AmPmOfDay]
			h12 := clockHourAmPm % 12
			hour = h12 + ampm*12
			haveHour = true
		} else if hourAmPm, ok := fv[HourOfAmPm]; ok {
			ampm := fv[AmPmOfDay]
			hour = hourAmPm + ampm*12
			haveHour = true
		}
	}

	if !haveHour {
		if milliDay, ok := fv[MilliOfDay]; ok {
			return timeFromNanoOfDay(milliDay * 1000000), 0, false, nil
		}
		if nanoDay, ok := fv[NanoOfDay]; ok {
			return timeFromNanoOfDay(nanoDay), 0, false, nil
		}
		return nil, 0, false, nil
	}

	minute := fv[MinuteOfHour]
	second := fv[SecondOfMinute]
	nano := fv[NanoOfSecond]
	if nano == 0 {
		if milli, ok := fv[MilliOfSecond]; ok {
			nano = milli * 1000000
		} else if micro, ok := fv[MicroOfSecond]; ok {
			nano = micro * 1000
		}
	}

	leap := false
	if second == 60 && hour == 23 && minute == 59 {
		leap = true
		second = 59
	}

	excess := int64(0)
	if hour == 24 && minute == 0 && second == 0 && nano == 0 {
		if style == ResolverStyleStrict {
			return nil, 0, false, &ResolveError{Msg: "HOUR_OF_DAY 24 not permitted under STRICT resolution"}
		}
		hour = 0
		excess = 1
	}

	if style == ResolverStyleStrict && (hour < 0 || hour > 23) {
		return nil, 0, false, &ResolveError{Msg: "HOUR_OF_DAY out of range"}
	}

	t, err := NewTime(hour, minute, second, nano)
	if err != nil {
		if style != ResolverStyleLenient {
			return nil, 0, false, err
		}
		nod := ((hour*60+minute)*60+second)*1000000000 + nano
		extraDays := floorDiv(nod, 86400000000000)
		return timeFromNanoOfDay(floorMod(nod, 86400000000000)), extraDays, leap, nil
	}
	return &t, excess, leap, nil
}

func timeFromNanoOfDay(nod int64) *Time {
	t := NewTimeFromNanoOfDay(floorMod(nod, 86400000000000))
	return &t
}
