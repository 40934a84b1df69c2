package tformat_test

import (
	"strings"
	"testing"

	"github.com/go-temporal/tformat"
)

func TestFormatMissingFieldError(t *testing.T) {
	f := tformat.NewBuilder().AppendValue(tformat.HourOfDay, 2).ToFormatter("en")
	d := mustDate(t, 2023, 1, 1)
	if _, err := f.Format(d); err == nil {
		t.Errorf("expected a MissingFieldError formatting a Date against an hour-of-day element")
	}
}

func TestFormatTo(t *testing.T) {
	f := tformat.NewBuilder().AppendPattern("uuuu-MM-dd").ToFormatter("en")
	var sb strings.Builder
	if err := f.FormatTo(mustDate(t, 2023, 5, 1), &sb); err != nil {
		t.Fatalf("FormatTo failed: %v", err)
	}
	if sb.String() != "2023-05-01" {
		t.Errorf("FormatTo wrote %q, want 2023-05-01", sb.String())
	}
}

func TestParseUnresolvedExposesRawFields(t *testing.T) {
	f := tformat.NewBuilder().AppendPattern("uuuu-MM").ToFormatter("en")
	p, err := f.ParseUnresolved("2023-07")
	if err != nil {
		t.Fatalf("ParseUnresolved failed: %v", err)
	}
	if p.FieldValues[tformat.Year] != 2023 || p.FieldValues[tformat.MonthOfYear] != 7 {
		t.Errorf("FieldValues = %+v, want Year=2023 MonthOfYear=7", p.FieldValues)
	}
}

func TestParseTrailingTextFails(t *testing.T) {
	f := tformat.NewBuilder().AppendPattern("uuuu-MM-dd").ToFormatter("en")
	if _, err := f.Parse("2023-07-29 trailing"); err == nil {
		t.Errorf("expected trailing unparsed text to fail")
	}
}

func TestParseBestPrefersFirstSatisfiableQuery(t *testing.T) {
	f := tformat.NewBuilder().AppendPattern("uuuu-MM[-dd]").ToFormatter("en")

	v, err := f.ParseBest("2023-06-15", tformat.AsDate, tformat.AsYearMonth)
	if err != nil {
		t.Fatalf("ParseBest failed: %v", err)
	}
	if _, ok := v.(tformat.Date); !ok {
		t.Errorf("ParseBest with a full date should return a Date, got %T", v)
	}

	v, err = f.ParseBest("2023-06", tformat.AsDate, tformat.AsYearMonth)
	if err != nil {
		t.Fatalf("ParseBest failed: %v", err)
	}
	if _, ok := v.(tformat.YearMonth); !ok {
		t.Errorf("ParseBest with year+month only should return a YearMonth, got %T", v)
	}
}

func TestParseBestRequiresAtLeastTwoQueries(t *testing.T) {
	f := tformat.NewBuilder().AppendPattern("uuuu").ToFormatter("en")
	if _, err := f.ParseBest("2023", tformat.AsDate); err == nil {
		t.Errorf("expected ParseBest to reject a single query")
	}
}

func TestParseQueryUnsupportedReturnsError(t *testing.T) {
	f := tformat.NewBuilder().AppendPattern("uuuu").ToFormatter("en")
	if _, err := f.ParseQuery("2023", tformat.AsOffsetDateTime); err == nil {
		t.Errorf("expected ParseQuery to fail when the query cannot be satisfied")
	}
}

func TestWithLocaleFallsBackOnUnrecognizedTag(t *testing.T) {
	f := tformat.NewBuilder().AppendPattern("uuuu").ToFormatter("en")
	f2 := f.WithLocale("not a valid bcp47 tag!!")
	if f2.LanguageTag().String() != "en" {
		t.Errorf("LanguageTag() = %v, want English fallback", f2.LanguageTag())
	}
}

func TestWithChronologyOverrideRequiresEpochDay(t *testing.T) {
	f := tformat.NewBuilder().AppendValue(tformat.HourOfDay, 2).ToFormatter("en").WithChronology(tformat.ISOChronology())
	tm, err := tformat.NewTime(10, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewTime failed: %v", err)
	}
	if _, err := f.Format(tm); err == nil {
		t.Errorf("expected an override-chronology error for a temporal without EPOCH_DAY")
	}
}

func TestWithZoneOverridesPrintedZoneID(t *testing.T) {
	f := tformat.NewBuilder().AppendZoneID(nil).ToFormatter("en").WithZone("Europe/Paris")
	d := mustDate(t, 2023, 1, 1)

	zdt := tformat.NewZonedDateTime(d, timeOfDay(t, 0, 0, 0, 0), 0, "UTC")
	got, err := f.Format(zdt)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "Europe/Paris" {
		t.Errorf("Format = %q, want overridden zone Europe/Paris", got)
	}
}

func TestClassicFormatRoundTrip(t *testing.T) {
	f := tformat.NewBuilder().AppendPattern("uuuu-MM-dd").ToFormatter("en")
	cf := tformat.NewClassicFormat(f)

	var sb strings.Builder
	if err := cf.Format(mustDate(t, 2023, 3, 4), &sb); err != nil {
		t.Fatalf("ClassicFormat.Format failed: %v", err)
	}
	if sb.String() != "2023-03-04" {
		t.Errorf("ClassicFormat.Format wrote %q, want 2023-03-04", sb.String())
	}

	pos := &tformat.ParsePosition{}
	v, err := cf.ParseObject(sb.String(), pos)
	if err != nil {
		t.Fatalf("ClassicFormat.ParseObject failed: %v", err)
	}
	rt, ok := v.(*tformat.ResolvedTemporal)
	if !ok {
		t.Fatalf("ParseObject returned %T, want *ResolvedTemporal", v)
	}
	d, _ := tformat.AsDate(rt)
	if d.(tformat.Date) != mustDate(t, 2023, 3, 4) {
		t.Errorf("parsed date mismatch: %+v", d)
	}
	if pos.Index != len(sb.String()) {
		t.Errorf("pos.Index = %d, want %d", pos.Index, len(sb.String()))
	}
}

func TestClassicFormatParseObjectErrorIndex(t *testing.T) {
	f := tformat.NewBuilder().AppendPattern("uuuu-MM-dd").ToFormatter("en")
	cf := tformat.NewClassicFormat(f)

	pos := &tformat.ParsePosition{}
	if _, err := cf.ParseObject("2023-13-01", pos); err == nil {
		t.Errorf("expected an error parsing an invalid month")
	}
}

func TestWithResolverFieldsDiscardsUnlistedFields(t *testing.T) {
	f := tformat.NewBuilder().
		AppendValue(tformat.Year, 4).
		AppendLiteral('-').
		AppendValue(tformat.MonthOfYear, 2).
		ToFormatter("en").
		WithResolverFields(tformat.Year)

	rt, err := f.Parse("2023-07")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := tformat.AsYearMonth(rt); ok {
		t.Errorf("expected MonthOfYear to have been discarded by the resolver field allow-list")
	}
}
