package tformat_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-temporal/tformat"
)

type failingWriter struct{ err error }

func (w failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestIoErrorWrapsSinkFailure(t *testing.T) {
	f := tformat.NewBuilder().AppendPattern("uuuu").ToFormatter("en")
	sinkErr := errors.New("disk full")
	err := f.FormatTo(mustDate(t, 2023, 1, 1), failingWriter{err: sinkErr})
	if err == nil {
		t.Fatalf("expected FormatTo to fail")
	}
	var ioErr *tformat.IoError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected an *IoError, got %T", err)
	}
	if !errors.Is(err, sinkErr) {
		t.Errorf("expected errors.Is to unwrap to the underlying sink error")
	}
}

func TestMissingFieldErrorMessageNamesField(t *testing.T) {
	f := tformat.NewBuilder().AppendValue(tformat.HourOfDay, 2).ToFormatter("en")
	_, err := f.Format(mustDate(t, 2023, 1, 1))
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "HOUR_OF_DAY") {
		t.Errorf("error message %q does not name the missing field", err.Error())
	}
}

func TestParseErrorOnUnresolvableDate(t *testing.T) {
	f := tformat.NewBuilder().AppendPattern("uuuu-MM-dd").ToFormatter("en")
	_, err := f.Parse("2023-13-01")
	if err == nil {
		t.Fatalf("expected a parse error for an out-of-range month")
	}
	var perr *tformat.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *ParseError, got %T", err)
	}
}

func TestAbbreviateTruncatesLongInput(t *testing.T) {
	f := tformat.NewBuilder().AppendPattern("uuuu-MM-dd").ToFormatter("en")
	long := strings.Repeat("x", 200)
	_, err := f.Parse(long)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	var perr *tformat.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *ParseError, got %T", err)
	}
	if !strings.HasSuffix(perr.Text, "...") {
		t.Errorf("expected abbreviated text to end with an ellipsis, got %q", perr.Text)
	}
	if len([]rune(perr.Text)) != 67 { // 64 runes + "..."
		t.Errorf("abbreviated text length = %d, want 67", len([]rune(perr.Text)))
	}
}

func TestConflictingFieldErrorOnRepeatedDifferentValue(t *testing.T) {
	f := tformat.NewBuilder().
		AppendValue(tformat.Year, 4).
		AppendLiteral('-').
		AppendValue(tformat.Year, 4).
		ToFormatter("en")
	_, err := f.ParseUnresolved("2023-2024")
	if err == nil {
		t.Fatalf("expected a conflicting-field error")
	}
	var cerr *tformat.ConflictingFieldError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a *ConflictingFieldError, got %T: %v", err, err)
	}
}
