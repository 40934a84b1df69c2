package tformat

import "math/big"

// Proleptic-Gregorian calendar arithmetic, keyed on the epoch day — the
// signed day count relative to 1970-01-01 that also backs the EpochDay
// field. The conversion formulas operate on the Julian Day Number
// internally, shifting by unixEpochJDN so that day 0 lands on the Unix
// epoch.
const unixEpochJDN = 2440588

var daysInMonths = [13]int64{
	1: 31, 2: 28, 3: 31, 4: 30, 5: 31, 6: 30,
	7: 31, 8: 31, 9: 30, 10: 31, 11: 30, 12: 31,
}

func isLeapYear(year int64) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func daysInMonth(year, month int64) int64 {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysInMonths[month]
}

// epochDayFromYMD converts a proleptic-Gregorian year/month/day into an
// epoch day.
func epochDayFromYMD(year, month, day int64) int64 {
	// The formula needs a non-negative Julian day; earlier years are moved
	// forward by whole 400-year cycles (146097 days each) and moved back after.
	var cycles int64
	if year < -4000 {
		cycles = (-4000-year)/400 + 1
		year += cycles * 400
	}
	jdn := (1461*(year+4800+(month-14)/12))/4 +
		(367*(month-2-12*((month-14)/12)))/12 -
		(3*((year+4900+(month-14)/12)/100))/4 +
		day - 32075
	return jdn - unixEpochJDN - cycles*146097
}

// ymdFromEpochDay is the inverse of epochDayFromYMD.
func ymdFromEpochDay(epochDay int64) (year, month, day int64) {
	dd := epochDay + unixEpochJDN
	var cycles int64
	if dd < 0 {
		cycles = -dd/146097 + 1
		dd += cycles * 146097
	}

	f := dd + 1401 + ((4*dd+274277)/146097)*3/4 - 38
	e := 4*f + 3
	g := (e % 1461) / 4
	h := 5*g + 2

	day = (h%153)/5 + 1
	month = (h/153+2)%12 + 1
	year = e/1461 - 4716 + (14-month)/12 - cycles*400
	return
}

func getWeekday(epochDay int64) Weekday {
	// Epoch day 0 (1970-01-01) was a Thursday.
	d := ((epochDay+3)%7 + 7) % 7
	return Weekday(d + 1)
}

func getOrdinalDate(year, month, day int64) int64 {
	var out int64
	for m := int64(1); m < month; m++ {
		out += daysInMonth(year, m)
	}
	return out + day
}

func daysInYear(year int64) int64 {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

func epochDayFromOrdinal(year, dayOfYear int64) (int64, error) {
	if dayOfYear < 1 || dayOfYear > daysInYear(year) {
		return 0, &InvalidArgumentError{Msg: "day-of-year out of range"}
	}

	month := int64(1)
	remaining := dayOfYear
	for {
		n := daysInMonth(year, month)
		if remaining <= n {
			break
		}
		remaining -= n
		month++
	}
	return epochDayFromYMD(year, month, remaining), nil
}

func getISOWeek(epochDay int64) (isoYear, isoWeek int64) {
	year, month, day := ymdFromEpochDay(epochDay)
	isoYear = year

	// A year has 53 ISO weeks when it starts on a Thursday, or on a
	// Wednesday in a leap year.
	weeksIn := func(y int64) int64 {
		jan1 := getWeekday(epochDayFromYMD(y, 1, 1))
		if jan1 == Thursday || (jan1 == Wednesday && isLeapYear(y)) {
			return 53
		}
		return 52
	}

	week := (10 + getOrdinalDate(year, month, day) - int64(getWeekday(epochDay))) / 7
	switch {
	case week < 1:
		isoYear--
		isoWeek = weeksIn(isoYear)
	case week == 53 && weeksIn(year) == 52:
		isoYear++
		isoWeek = 1
	default:
		isoWeek = week
	}
	return
}

func epochDayFromISOWeek(isoYear, isoWeek, weekday int64) (int64, error) {
	if isoWeek < 1 || isoWeek > 53 {
		return 0, &InvalidArgumentError{Msg: "ISO week number out of range"}
	}

	jan4 := epochDayFromYMD(isoYear, 1, 4)
	v := isoWeek*7 + weekday - (int64(getWeekday(jan4)) + 3)

	switch total := daysInYear(isoYear); {
	case v <= 0:
		return epochDayFromOrdinal(isoYear-1, v+daysInYear(isoYear-1))
	case v > total:
		return epochDayFromOrdinal(isoYear+1, v-total)
	default:
		return epochDayFromOrdinal(isoYear, v)
	}
}

func epochDayFromProlepticMonth(prolepticMonth, day int64) int64 {
	year := floorDiv(prolepticMonth, 12)
	month := floorMod(prolepticMonth, 12) + 1
	return epochDayFromYMD(year, month, day)
}

func prolepticMonthFromYM(year, month int64) int64 {
	return year*12 + (month - 1)
}

func epochDayFromAlignedWeek(year, alignedWeekOfYear, dayOfWeek int64) int64 {
	jan1 := epochDayFromYMD(year, 1, 1)
	jan1Weekday := int64(getWeekday(jan1))
	return jan1 + (alignedWeekOfYear-1)*7 + floorMod(dayOfWeek-jan1Weekday, 7)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

var bigTen9 = new(big.Int).Exp(big.NewInt(10), big.NewInt(9), nil)
