package tformat

import "strings"

// composite sequences a list of elements, optionally treating the whole
// sequence as an optional section (§4.5): on print, an optional composite
// buffers its output and discards it if any child element reports its value
// absent; on parse, it snapshots the parse frame before attempting its
// children and rolls back to the snapshot if any child fails.
type composite struct {
	elements []element
	optional bool
}

func newComposite(optional bool) *composite {
	return &composite{optional: optional}
}

func (c *composite) add(e element) { c.elements = append(c.elements, e) }

func (c *composite) printTo(ctx *PrintContext, buf *strings.Builder) (bool, error) {
	if !c.optional {
		for _, e := range c.elements {
			ok, err := e.printTo(ctx, buf)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	}

	ctx.startOptional()
	defer ctx.endOptional()

	var sub strings.Builder
	for _, e := range c.elements {
		ok, err := e.printTo(ctx, &sub)
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
	}
	buf.WriteString(sub.String())
	return true, nil
}

func (c *composite) parseTo(ctx *ParseContext, text string, pos int) int {
	if !c.optional {
		cur := pos
		for _, e := range c.elements {
			cur = e.parseTo(ctx, text, cur)
			if isError(cur) {
				return cur
			}
		}
		return cur
	}

	ctx.startOptional()
	cur := pos
	success := true
	for _, e := range c.elements {
		cur = e.parseTo(ctx, text, cur)
		if isError(cur) {
			success = false
			break
		}
	}
	ctx.endOptional(success)
	if !success {
		return pos
	}
	return cur
}

// padDecorator wraps a single element so that it prints within a fixed-width
// field, left-padded with padChar. On parse it skips leading pad characters
// within the next padWidth characters and hands only the rest of that window
// to the wrapped element; in strict mode the window must be complete and the
// wrapped element must consume all of it, per §4.5.
type padDecorator struct {
	inner    element
	padWidth int
	padChar  rune
}

func newPadDecorator(inner element, padWidth int, padChar rune) *padDecorator {
	return &padDecorator{inner: inner, padWidth: padWidth, padChar: padChar}
}

func (p *padDecorator) printTo(ctx *PrintContext, buf *strings.Builder) (bool, error) {
	var sub strings.Builder
	ok, err := p.inner.printTo(ctx, &sub)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	s := sub.String()
	n := len([]rune(s))
	if n > p.padWidth {
		return false, &InvalidArgumentError{Msg: "pad width exceeded"}
	}
	for i := 0; i < p.padWidth-n; i++ {
		buf.WriteRune(p.padChar)
	}
	buf.WriteString(s)
	return true, nil
}

func (p *padDecorator) parseTo(ctx *ParseContext, text string, pos int) int {
	r := []rune(text)
	if pos+p.padWidth > len(r) {
		if ctx.Strict() {
			return complement(pos)
		}
	}

	end := pos + p.padWidth
	if end > len(r) {
		end = len(r)
	}

	// Strip leading pad characters from the reserved field, then hand the
	// trimmed substring to the inner element.
	cur := pos
	for cur < end && ctx.CharEquals(r[cur], p.padChar) {
		cur++
	}

	newPos := p.inner.parseTo(ctx, string(r[:end]), cur)
	if isError(newPos) {
		return complement(pos)
	}
	if ctx.Strict() && newPos != end {
		return complement(pos)
	}
	return newPos
}
