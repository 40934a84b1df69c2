package tformat

import (
	"math/big"
	"strings"
)

// fractionalValueElement prints and parses a fixed-range field as a decimal
// fraction, per §4.4.5 — e.g. NANO_OF_SECOND printed as ".512" for half a
// microsecond short of 513ms. The field must have a fixed range; the Builder
// enforces this at construction time.
type fractionalValueElement struct {
	field         Field
	minWidth      int
	maxWidth      int
	decimalPoint  bool
}

func newFractionalValueElement(field Field, minWidth, maxWidth int, decimalPoint bool) *fractionalValueElement {
	return &fractionalValueElement{field: field, minWidth: minWidth, maxWidth: maxWidth, decimalPoint: decimalPoint}
}

func (e *fractionalValueElement) rangeSize() *big.Int {
	min, max := e.field.Range()
	return big.NewInt(max - min + 1)
}

func (e *fractionalValueElement) printTo(ctx *PrintContext, buf *strings.Builder) (bool, error) {
	v, ok, err := ctx.GetValue(e.field)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	min, _ := e.field.Range()

	// f = (v - min) * 10^9 / rangeSize, floor.
	num := big.NewInt(v - min)
	num.Mul(num, pow10Big(9))
	num.Quo(num, e.rangeSize())

	digits := num.String()
	for len(digits) < 9 {
		digits = "0" + digits
	}
	if len(digits) > 9 {
		digits = digits[:9]
	}

	digits = digits[:e.maxWidth]
	for len(digits) > e.minWidth && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}

	if len(digits) == 0 {
		return true, nil
	}

	if e.decimalPoint {
		buf.WriteRune(ctx.Symbols().DecimalSeparator)
	}
	buf.WriteString(ctx.Symbols().ConvertNumberToI18N(digits))
	return true, nil
}

func pow10Big(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func (e *fractionalValueElement) parseTo(ctx *ParseContext, text string, pos int) int {
	r := []rune(text)
	cur := pos
	style := ctx.Symbols()

	if e.decimalPoint {
		if cur >= len(r) || !ctx.CharEquals(r[cur], style.DecimalSeparator) {
			if e.minWidth == 0 {
				return pos
			}
			return complement(pos)
		}
		cur++
	}

	maxLen := e.maxWidth
	minLen := e.minWidth
	if !ctx.Strict() {
		minLen = 0
		maxLen = 9
	}

	end := cur
	for end < len(r) && end-cur < maxLen && style.ConvertToDigit(r[end]) >= 0 {
		end++
	}
	digitsRead := end - cur
	if digitsRead < minLen {
		return complement(pos)
	}
	if digitsRead == 0 {
		if e.decimalPoint {
			return complement(pos)
		}
		return pos
	}

	digitStr := make([]byte, 0, digitsRead)
	for _, c := range r[cur:end] {
		digitStr = append(digitStr, byte('0'+style.ConvertToDigit(c)))
	}
	accum := new(big.Int)
	accum.SetString(string(digitStr), 10)

	min, _ := e.field.Range()
	num := new(big.Int).Mul(accum, e.rangeSize())
	num.Quo(num, pow10Big(digitsRead))
	value := num.Int64() + min

	return ctx.SetParsedField(e.field, value, pos, end)
}
