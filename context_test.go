package tformat

import "testing"

func TestSetParsedFieldConflict(t *testing.T) {
	ctx := newParseContext("en", StandardDecimalStyle(), ResolverStyleSmart)

	pos := ctx.SetParsedField(Year, 2020, 0, 4)
	if isError(pos) {
		t.Fatalf("first SetParsedField failed unexpectedly")
	}

	pos = ctx.SetParsedField(Year, 2021, 4, 8)
	if !isError(pos) {
		t.Fatalf("expected conflicting field to fail, got pos %d", pos)
	}
	if ctx.conflict == nil {
		t.Fatalf("expected ctx.conflict to be set")
	}
	if ctx.conflict.Field != Year || ctx.conflict.Index != 4 {
		t.Errorf("conflict = %+v, want Field=Year Index=4", ctx.conflict)
	}
}

func TestSetParsedFieldSameValueNoConflict(t *testing.T) {
	ctx := newParseContext("en", StandardDecimalStyle(), ResolverStyleSmart)
	ctx.SetParsedField(Year, 2020, 0, 4)
	pos := ctx.SetParsedField(Year, 2020, 4, 8)
	if isError(pos) {
		t.Fatalf("re-parsing the same value for a field should not conflict")
	}
}

func TestOptionalRollbackDiscardsSpeculativeConflict(t *testing.T) {
	ctx := newParseContext("en", StandardDecimalStyle(), ResolverStyleSmart)
	ctx.SetParsedField(Year, 2020, 0, 4)

	ctx.startOptional()
	pos := ctx.SetParsedField(Year, 1999, 4, 8)
	if !isError(pos) {
		t.Fatalf("expected conflicting value inside optional section to fail")
	}
	ctx.endOptional(false)

	if ctx.conflict != nil {
		t.Errorf("a conflict inside a rolled-back optional section should not surface: got %+v", ctx.conflict)
	}
	if v := ctx.top().fieldValues[Year]; v != 2020 {
		t.Errorf("Year = %d after rollback, want 2020", v)
	}
}

func TestOptionalCommitKeepsEdits(t *testing.T) {
	ctx := newParseContext("en", StandardDecimalStyle(), ResolverStyleSmart)
	ctx.startOptional()
	ctx.SetParsedField(MonthOfYear, 6, 0, 1)
	ctx.endOptional(true)

	if v, ok := ctx.top().fieldValues[MonthOfYear]; !ok || v != 6 {
		t.Errorf("MonthOfYear = %d, ok=%v, want 6, true", v, ok)
	}
}

func TestCharEqualsCaseFolding(t *testing.T) {
	ctx := newParseContext("en", StandardDecimalStyle(), ResolverStyleSmart)
	ctx.setCaseSensitive(false)
	if !ctx.CharEquals('A', 'a') {
		t.Errorf("case-insensitive CharEquals('A','a') should be true")
	}
	ctx.setCaseSensitive(true)
	if ctx.CharEquals('A', 'a') {
		t.Errorf("case-sensitive CharEquals('A','a') should be false")
	}
}
