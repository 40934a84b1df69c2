package tformat_test

import (
	"testing"

	"github.com/go-temporal/tformat"
)

func TestISOLocalDateRoundTrip(t *testing.T) {
	d := mustDate(t, 2023, 7, 29)
	got, err := tformat.ISOLocalDate.Format(d)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "2023-07-29" {
		t.Errorf("Format = %q, want 2023-07-29", got)
	}

	rt, err := tformat.ISOLocalDate.Parse(got)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	parsed, _ := tformat.AsDate(rt)
	if parsed.(tformat.Date) != d {
		t.Errorf("round-trip mismatch: %+v", parsed)
	}
}

func TestISOLocalTimeWithFraction(t *testing.T) {
	tm, err := tformat.NewTime(9, 5, 3, 120000000)
	if err != nil {
		t.Fatalf("NewTime failed: %v", err)
	}
	got, err := tformat.ISOLocalTime.Format(tm)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "09:05:03.12" {
		t.Errorf("Format = %q, want 09:05:03.12", got)
	}
}

func TestISOLocalTimeZeroSecondsStillPrinted(t *testing.T) {
	// A Time always supports SECOND_OF_MINUTE (it simply reads 0), so the
	// optional seconds section is never skipped for a plain Time value -
	// unlike a custom toString that elides trailing zeros.
	tm, err := tformat.NewTime(9, 5, 0, 0)
	if err != nil {
		t.Fatalf("NewTime failed: %v", err)
	}
	got, err := tformat.ISOLocalTime.Format(tm)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "09:05:00" {
		t.Errorf("Format = %q, want 09:05:00", got)
	}
}

func TestISOOffsetDateTimeRoundTrip(t *testing.T) {
	d := mustDate(t, 2023, 7, 29)
	tm, _ := tformat.NewTime(10, 30, 0, 0)
	odt := tformat.NewOffsetDateTime(d, tm, -18000) // -05:00

	got, err := tformat.ISOOffsetDateTime.Format(odt)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "2023-07-29T10:30:00-05:00" {
		t.Errorf("Format = %q, want 2023-07-29T10:30:00-05:00", got)
	}

	rt, err := tformat.ISOOffsetDateTime.Parse(got)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	v, ok := tformat.AsOffsetDateTime(rt)
	if !ok {
		t.Fatalf("AsOffsetDateTime returned ok=false")
	}
	if v.(tformat.OffsetDateTime) != odt {
		t.Errorf("round-trip mismatch: %+v", v)
	}
}

func TestISOZonedDateTimeOptionalBracket(t *testing.T) {
	d := mustDate(t, 2023, 7, 29)
	tm, _ := tformat.NewTime(10, 30, 0, 0)
	zdt := tformat.NewZonedDateTime(d, tm, 0, "Europe/London")

	got, err := tformat.ISOZonedDateTime.Format(zdt)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "2023-07-29T10:30:00Z[Europe/London]" {
		t.Errorf("Format = %q, want 2023-07-29T10:30:00Z[Europe/London]", got)
	}

	rt, err := tformat.ISOZonedDateTime.Parse(got)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	v, ok := tformat.AsZonedDateTime(rt)
	if !ok {
		t.Fatalf("AsZonedDateTime returned ok=false")
	}
	if v.(tformat.ZonedDateTime) != zdt {
		t.Errorf("round-trip mismatch: %+v", v)
	}

	// The bracketed zone region is optional: an offset-only string still parses.
	if _, err := tformat.ISOZonedDateTime.Parse("2023-07-29T10:30:00Z"); err != nil {
		t.Errorf("expected the bracketed zone region to be optional: %v", err)
	}
}

func TestISOInstantFormat(t *testing.T) {
	i := mustInstant(t, 0, 0)
	got, err := tformat.ISOInstant.Format(i)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "1970-01-01T00:00:00Z" {
		t.Errorf("Format = %q, want 1970-01-01T00:00:00Z", got)
	}
}

func TestISOOrdinalDateFormat(t *testing.T) {
	d := mustDate(t, 2023, 2, 9)
	got, err := tformat.ISOOrdinalDate.Format(d)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "2023-040" {
		t.Errorf("Format = %q, want 2023-040", got)
	}
}

func TestISOWeekDateFormat(t *testing.T) {
	d := mustDate(t, 2020, 1, 1)
	got, err := tformat.ISOWeekDate.Format(d)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "2020-W01-3" {
		t.Errorf("Format = %q, want 2020-W01-3", got)
	}
}

func TestBasicISODateRejectsSignPrefix(t *testing.T) {
	got, err := tformat.BasicISODate.Format(mustDate(t, 2023, 7, 29))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "20230729" {
		t.Errorf("Format = %q, want 20230729", got)
	}

	// BASIC_ISO_DATE's YEAR element is fixed-width 4 with SignStyleNotNegative
	// (via AppendValue), so a leading '+' is not a valid match.
	if _, err := tformat.BasicISODate.Parse("+20230729"); err == nil {
		t.Errorf("expected BasicISODate to reject a leading '+'")
	}
	rt, err := tformat.BasicISODate.Parse("20230729")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	d, _ := tformat.AsDate(rt)
	if d.(tformat.Date) != mustDate(t, 2023, 7, 29) {
		t.Errorf("parsed date mismatch: %+v", d)
	}
}

func TestRFC1123DateTimeRoundTrip(t *testing.T) {
	d := mustDate(t, 2023, 7, 29) // Saturday
	tm, _ := tformat.NewTime(10, 30, 0, 0)
	odt := tformat.NewOffsetDateTime(d, tm, 0)

	got, err := tformat.RFC1123DateTime.Format(odt)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "Sat, 29 Jul 2023 10:30:00 GMT" {
		t.Errorf("Format = %q, want Sat, 29 Jul 2023 10:30:00 GMT", got)
	}

	rt, err := tformat.RFC1123DateTime.Parse(got)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	v, ok := tformat.AsOffsetDateTime(rt)
	if !ok {
		t.Fatalf("AsOffsetDateTime returned ok=false")
	}
	if v.(tformat.OffsetDateTime) != odt {
		t.Errorf("round-trip mismatch: %+v", v)
	}
}

func TestRFC1123DateTimeCaseInsensitiveWeekday(t *testing.T) {
	if _, err := tformat.RFC1123DateTime.Parse("sat, 29 Jul 2023 10:30:00 GMT"); err != nil {
		t.Errorf("expected RFC1123DateTime to parse a lowercase weekday name: %v", err)
	}
}
