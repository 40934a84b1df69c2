package tformat_test

import (
	"strings"
	"testing"

	"github.com/go-temporal/tformat"
)

func TestAppendValueRangeExceedsPadPrintsSignWhenWidthExceeded(t *testing.T) {
	f := tformat.NewBuilder().AppendValueRange(tformat.Year, 4, 10, tformat.SignStyleExceedsPad).ToFormatter("en")

	got, err := f.Format(mustDate(t, 2023, 1, 1))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "2023" {
		t.Errorf("Format = %q, want 2023 (no sign needed within minWidth)", got)
	}

	got2, err := f.Format(mustDate(t, 12345, 1, 1))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got2 != "+12345" {
		t.Errorf("Format = %q, want +12345 (ExceedsPad prints a sign once the value exceeds minWidth digits)", got2)
	}
}

func TestAppendValueRangeSignStyleNeverRejectsNegative(t *testing.T) {
	f := tformat.NewBuilder().AppendValueRange(tformat.Year, 1, 10, tformat.SignStyleNever).ToFormatter("en")
	if _, err := f.Format(mustDate(t, -5, 1, 1)); err == nil {
		t.Errorf("expected SignStyleNever to reject printing a negative value")
	}
}

func TestAppendValueRangeSignStyleAlwaysPrintsPlusForPositive(t *testing.T) {
	f := tformat.NewBuilder().AppendValueRange(tformat.Year, 1, 10, tformat.SignStyleAlways).ToFormatter("en")
	got, err := f.Format(mustDate(t, 2023, 1, 1))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "+2023" {
		t.Errorf("Format = %q, want +2023", got)
	}
}

func TestAppendValueRangeParseLenientGreedyUpToNineDigits(t *testing.T) {
	f := tformat.NewBuilder().AppendValueRange(tformat.Year, 1, 10, tformat.SignStyleNormal).ToFormatter("en")
	rt, err := f.ParseUnresolved("123456789")
	if err != nil {
		t.Fatalf("ParseUnresolved failed: %v", err)
	}
	if rt.FieldValues[tformat.Year] != 123456789 {
		t.Errorf("Year = %d, want 123456789", rt.FieldValues[tformat.Year])
	}
}

func TestAppendValueRangeValueExceedingMaxWidthFailsToFormat(t *testing.T) {
	f := tformat.NewBuilder().AppendValueRange(tformat.Year, 1, 3, tformat.SignStyleNormal).ToFormatter("en")
	if _, err := f.Format(mustDate(t, 12345, 1, 1)); err == nil {
		t.Errorf("expected Format to fail when the value needs more digits than maxWidth allows")
	}
}

func TestAppendValuePrintsMinimumYear(t *testing.T) {
	// The smallest supported year prints with its sign through a
	// ten-digit-wide element.
	f := tformat.NewBuilder().AppendValueRange(tformat.Year, 1, 10, tformat.SignStyleNormal).ToFormatter("en")
	got, err := f.Format(mustDate(t, -999999999, 1, 1))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "-999999999" {
		t.Errorf("Format = %q, want -999999999", got)
	}
}

func TestFormatToBuffersCorrectlyAcrossMultipleElements(t *testing.T) {
	f := tformat.NewBuilder().AppendPattern("uuuu-MM-dd'T'HH:mm:ss").ToFormatter("en")
	d := mustDate(t, 2023, 7, 29)
	tm := timeOfDay(t, 10, 30, 0, 0)
	odt := tformat.NewOffsetDateTime(d, tm, 0)

	var sb strings.Builder
	if err := f.FormatTo(odt, &sb); err != nil {
		t.Fatalf("FormatTo failed: %v", err)
	}
	if sb.String() != "2023-07-29T10:30:00" {
		t.Errorf("FormatTo wrote %q, want 2023-07-29T10:30:00", sb.String())
	}
}
