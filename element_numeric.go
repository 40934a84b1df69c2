package tformat

import (
	"math/big"
	"strconv"
	"strings"
)

// numericValueElement prints and parses a field as a decimal number, per
// §4.4.3. reservedFollowingWidth implements adjacent-value parsing: when
// non-zero, it is the total width of the fixed-width numeric elements the
// Builder has merged immediately after this one, and this element must give
// up that many trailing digits to them during a greedy parse.
type numericValueElement struct {
	field                  Field
	minWidth, maxWidth     int
	signStyle              SignStyle
	fixedWidth             bool
	reservedFollowingWidth int
}

func newNumericValueElement(field Field, minWidth, maxWidth int, signStyle SignStyle) *numericValueElement {
	return &numericValueElement{
		field:      field,
		minWidth:   minWidth,
		maxWidth:   maxWidth,
		signStyle:  signStyle,
		fixedWidth: minWidth == maxWidth,
	}
}

// withFixedWidth returns a copy forced into the fixed-width/adjacent-parsing
// target role (always exactly minWidth==maxWidth digits, NOT_NEGATIVE).
func (e *numericValueElement) withFixedWidth() *numericValueElement {
	c := *e
	c.minWidth = c.maxWidth
	c.fixedWidth = true
	c.signStyle = SignStyleNotNegative
	return &c
}

func (e *numericValueElement) printTo(ctx *PrintContext, buf *strings.Builder) (bool, error) {
	v, ok, err := ctx.GetValue(e.field)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return true, printSignedDigits(buf, ctx.Symbols(), v, e.minWidth, e.maxWidth, e.signStyle)
}

// printSignedDigits implements the §4.4.3 print algorithm shared by the plain
// and reduced numeric elements.
func printSignedDigits(buf *strings.Builder, style DecimalStyle, v int64, minWidth, maxWidth int, signStyle SignStyle) error {
	neg := v < 0
	var mag string
	if v == minInt64 {
		// -math.MinInt64 overflows int64; the unsigned magnitude is one more
		// than math.MaxInt64.
		mag = "9223372036854775808"
	} else {
		abs := v
		if neg {
			abs = -abs
		}
		mag = strconv.FormatInt(abs, 10)
	}

	if len(mag) > maxWidth {
		return &InvalidArgumentError{Msg: "value exceeds maximum width for field"}
	}

	var sign string
	switch signStyle {
	case SignStyleNormal:
		if neg {
			sign = "-"
		}
	case SignStyleAlways:
		if neg {
			sign = "-"
		} else {
			sign = "+"
		}
	case SignStyleNever:
		if neg {
			return &InvalidArgumentError{Msg: "negative value not permitted by sign style NEVER"}
		}
	case SignStyleNotNegative:
		if neg {
			return &InvalidArgumentError{Msg: "negative value not permitted by sign style NOT_NEGATIVE"}
		}
	case SignStyleExceedsPad:
		if neg {
			sign = "-"
		} else if minWidth < 19 && v >= pow10(minWidth) {
			sign = "+"
		}
	}

	for len(mag) < minWidth {
		mag = "0" + mag
	}

	buf.WriteString(sign)
	buf.WriteString(style.ConvertNumberToI18N(mag))
	return nil
}

const minInt64 = -1 << 63

func pow10(n int) int64 {
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

func (e *numericValueElement) parseTo(ctx *ParseContext, text string, pos int) int {
	r := []rune(text)
	if pos > len(r) {
		return complement(pos)
	}

	strict := ctx.Strict() || e.fixedWidth
	style := ctx.Symbols()

	cur := pos
	negative := false
	haveSign := false
	if cur < len(r) {
		if r[cur] == style.PositiveSign {
			switch e.signStyle {
			case SignStyleNormal:
				if strict {
					return complement(pos)
				}
			case SignStyleAlways, SignStyleExceedsPad:
			default:
				return complement(pos)
			}
			haveSign = true
			cur++
		} else if r[cur] == style.NegativeSign {
			switch e.signStyle {
			case SignStyleNever, SignStyleNotNegative:
				return complement(pos)
			}
			negative = true
			haveSign = true
			cur++
		}
	}
	_ = haveSign

	effectiveMin := e.minWidth
	if !strict {
		effectiveMin = 1
	}

	baseMax := e.maxWidth
	if !strict {
		baseMax = 9
	}
	extendedMax := baseMax + maxInt(e.reservedFollowingWidth, 0)

	digitsAt := func(start, maxLen int) (string, int) {
		ascii := make([]byte, 0, maxLen)
		end := start
		for end < len(r) && end-start < maxLen {
			d := style.ConvertToDigit(r[end])
			if d < 0 {
				break
			}
			ascii = append(ascii, byte('0'+d))
			end++
		}
		return string(ascii), end
	}

	digits, end := digitsAt(cur, extendedMax)
	if e.reservedFollowingWidth > 0 {
		consumed := len(digits)
		restrictedMax := maxInt(effectiveMin, consumed-e.reservedFollowingWidth)
		digits, end = digitsAt(cur, restrictedMax)
	}

	if len(digits) < effectiveMin {
		return complement(pos)
	}

	accum := new(big.Int)
	if len(digits) > 18 {
		accum.SetString(digits, 10)
	} else {
		iv, _ := strconv.ParseInt(digits, 10, 64)
		accum.SetInt64(iv)
	}

	if strict && e.signStyle == SignStyleExceedsPad && haveSign && !negative {
		if len(digits) <= e.minWidth && accum.Sign() != 0 {
			return complement(pos)
		}
	}

	if strict && negative && accum.Sign() == 0 {
		return complement(pos)
	}

	if negative {
		accum.Neg(accum)
	}

	if !accum.IsInt64() {
		// Divide by 10 and back up one position, per §4.4.3.
		accum.Quo(accum, big.NewInt(10))
		end--
	}

	value := accum.Int64()
	successPos := ctx.SetParsedField(e.field, value, pos, end)
	return successPos
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
