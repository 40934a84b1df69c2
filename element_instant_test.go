package tformat_test

import (
	"testing"

	"github.com/go-temporal/tformat"
)

func mustInstant(t *testing.T, secs, nanos int64) tformat.Instant {
	t.Helper()
	i, err := tformat.NewInstant(secs, nanos)
	if err != nil {
		t.Fatalf("NewInstant(%d,%d) failed: %v", secs, nanos, err)
	}
	return i
}

func TestInstantFormatFixedDigits(t *testing.T) {
	f := tformat.NewBuilder().AppendInstant(3).ToFormatter("en")
	i := mustInstant(t, 0, 500000000)
	got, err := f.Format(i)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	want := "1970-01-01T00:00:00.500Z"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestInstantFormatMinimalFraction(t *testing.T) {
	f := tformat.NewBuilder().AppendInstant(-1).ToFormatter("en")

	got, err := f.Format(mustInstant(t, 0, 0))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "1970-01-01T00:00:00Z" {
		t.Errorf("Format(zero nanos) = %q, want no fraction", got)
	}

	got, err = f.Format(mustInstant(t, 0, 123000000))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "1970-01-01T00:00:00.123Z" {
		t.Errorf("Format(0.123) = %q, want trailing zeros trimmed", got)
	}
}

func TestInstantFormatAutoGroupedFraction(t *testing.T) {
	f := tformat.NewBuilder().AppendInstant(-2).ToFormatter("en")

	cases := []struct {
		nanos int64
		want  string
	}{
		{0, "1970-01-01T00:00:00Z"},
		{500000000, "1970-01-01T00:00:00.500Z"},
		{500000, "1970-01-01T00:00:00.000500Z"},
		{123456789, "1970-01-01T00:00:00.123456789Z"},
	}
	for _, c := range cases {
		got, err := f.Format(mustInstant(t, 0, c.nanos))
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		if got != c.want {
			t.Errorf("Format(nanos=%d) = %q, want %q", c.nanos, got, c.want)
		}
	}
}

func TestInstantParseRoundTrip(t *testing.T) {
	f := tformat.NewBuilder().AppendInstant(-1).ToFormatter("en")
	text := "2023-07-29T12:34:56.789Z"

	rt, err := f.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	inst, ok := tformat.AsInstant(rt)
	if !ok {
		t.Fatalf("AsInstant returned ok=false")
	}
	i := inst.(tformat.Instant)

	got, err := f.Format(i)
	if err != nil {
		t.Fatalf("re-Format failed: %v", err)
	}
	if got != text {
		t.Errorf("round trip = %q, want %q", got, text)
	}
}

func TestInstantParseLeapSecond(t *testing.T) {
	f := tformat.NewBuilder().AppendInstant(0).ToFormatter("en")
	rt, err := f.Parse("2016-12-31T23:59:60Z")
	if err != nil {
		t.Fatalf("Parse of a leap second failed: %v", err)
	}
	if !rt.LeapSecond {
		t.Errorf("expected LeapSecond=true")
	}
}

func TestInstantParseHour24Rollover(t *testing.T) {
	f := tformat.NewBuilder().AppendInstant(0).ToFormatter("en")
	rt, err := f.Parse("2023-01-01T24:00:00Z")
	if err != nil {
		t.Fatalf("Parse of hour 24 failed: %v", err)
	}
	inst, ok := tformat.AsInstant(rt)
	if !ok {
		t.Fatalf("AsInstant returned ok=false")
	}
	got, err := f.Format(inst.(tformat.Instant))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "2023-01-02T00:00:00Z" {
		t.Errorf("hour-24 rollover = %q, want 2023-01-02T00:00:00Z", got)
	}
}

func TestInstantParseRejectsMissingZ(t *testing.T) {
	f := tformat.NewBuilder().AppendInstant(0).ToFormatter("en")
	if _, err := f.Parse("2023-01-01T00:00:00"); err == nil {
		t.Errorf("expected a parse error for a missing trailing Z")
	}
}

func TestChronologyIDElementPrintAndParse(t *testing.T) {
	f := tformat.NewBuilder().AppendChronologyID().ToFormatter("en")

	d, err := tformat.NewDate(2023, 1, 1)
	if err != nil {
		t.Fatalf("NewDate failed: %v", err)
	}
	got, err := f.Format(d)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "ISO" {
		t.Errorf("Format = %q, want ISO", got)
	}

	if _, err := f.ParseUnresolved("ISO"); err != nil {
		t.Errorf("Parse(\"ISO\") failed: %v", err)
	}
	if _, err := f.ParseUnresolved("XYZ"); err == nil {
		t.Errorf("expected an error parsing an unrecognized chronology ID")
	}
}
