package tformat

import "strings"

// textValueElement prints a field as a name (e.g. "January") rather than a
// number, falling back to a plain numeric element when the provider has no
// text for the current value, per §4.4.6.
type textValueElement struct {
	field    Field
	style    TextStyle
	provider TextProvider
	fallback *numericValueElement
}

func newTextValueElement(field Field, style TextStyle, provider TextProvider) *textValueElement {
	return &textValueElement{
		field:    field,
		style:    style,
		provider: provider,
		fallback: newNumericValueElement(field, 1, 19, SignStyleNormal),
	}
}

func (e *textValueElement) printTo(ctx *PrintContext, buf *strings.Builder) (bool, error) {
	v, ok, err := ctx.GetValue(e.field)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if text, found := e.provider.GetText(e.field, v, e.style, ctx.Locale()); found {
		buf.WriteString(text)
		return true, nil
	}
	return e.fallback.printTo(ctx, buf)
}

func (e *textValueElement) parseTo(ctx *ParseContext, text string, pos int) int {
	pairs := e.provider.GetTextIterator(e.field, e.style, ctx.Locale())
	r := []rune(text)
	for _, tv := range pairs {
		n := len([]rune(tv.Text))
		if pos+n > len(r) {
			continue
		}
		if ctx.SubSequenceEquals(text, pos, tv.Text, 0, n) {
			return ctx.SetParsedField(e.field, tv.Value, pos, pos+n)
		}
	}
	return e.fallback.parseTo(ctx, text, pos)
}
