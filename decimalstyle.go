package tformat

import "strings"

// DecimalStyle describes the digit, sign, and decimal-separator characters
// used when printing and parsing numeric elements. A locale-specific style
// can remap these onto e.g. Arabic-Indic digits; the StandardDecimalStyle
// uses plain ASCII.
type DecimalStyle struct {
	ZeroDigit        rune
	PositiveSign     rune
	NegativeSign     rune
	DecimalSeparator rune
}

// StandardDecimalStyle returns the ASCII decimal style: '0', '+', '-', '.'.
func StandardDecimalStyle() DecimalStyle {
	return DecimalStyle{ZeroDigit: '0', PositiveSign: '+', NegativeSign: '-', DecimalSeparator: '.'}
}

// ConvertToDigit returns the digit value 0-9 represented by ch under this
// style, or -1 if ch is not a digit of this style.
func (s DecimalStyle) ConvertToDigit(ch rune) int {
	v := int(ch - s.ZeroDigit)
	if v < 0 || v > 9 {
		return -1
	}
	return v
}

// ConvertNumberToI18N remaps a string of ASCII digits ('0'-'9') onto this
// style's digit characters.
func (s DecimalStyle) ConvertNumberToI18N(asciiDigits string) string {
	if s.ZeroDigit == '0' {
		return asciiDigits
	}

	var b strings.Builder
	b.Grow(len(asciiDigits))
	for _, c := range asciiDigits {
		if c >= '0' && c <= '9' {
			b.WriteRune(s.ZeroDigit + (c - '0'))
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}
