package tformat

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// zoneIDTree is an immutable substring-prefix tree over a set of zone IDs,
// used for the greedy longest-match parse described in §4.4.8. Each node
// maps the next rune of a candidate ID to the subtree of IDs that share that
// prefix; isZone marks a node whose prefix is itself a complete, valid zone
// ID.
type zoneIDTree struct {
	children map[rune]*zoneIDTree
	isZone   bool
}

func buildZoneIDTree(ids []string) *zoneIDTree {
	root := &zoneIDTree{children: make(map[rune]*zoneIDTree)}
	for _, id := range ids {
		node := root
		for _, r := range id {
			next, ok := node.children[r]
			if !ok {
				next = &zoneIDTree{children: make(map[rune]*zoneIDTree)}
				node.children[r] = next
			}
			node = next
		}
		node.isZone = true
	}
	return root
}

// zoneIDTreeCache is a process-wide, atomically-swapped cache of the most
// recently built zoneIDTree, keyed by the size of the zone-id set it was
// built from. Concurrent rebuilds triggered by the same set size are
// harmless: the results are structurally equivalent, and the cache publishes
// whichever finishes last.
type zoneIDTreeCache struct {
	size atomic.Int64
	tree atomic.Pointer[zoneIDTree]
}

var globalZoneIDTreeCache zoneIDTreeCache

func (c *zoneIDTreeCache) get(rules ZoneRules) *zoneIDTree {
	ids := rules.AvailableZoneIDs()
	if tree := c.tree.Load(); tree != nil && int(c.size.Load()) == len(ids) {
		return tree
	}

	tree := buildZoneIDTree(ids)
	c.size.Store(int64(len(ids)))
	c.tree.Store(tree)
	return tree
}

// zoneIDElement prints and parses a zone identifier: a symbolic region ID
// (Europe/Paris), the literal Z, UTC/UT/GMT optionally followed by an
// offset, or a bare numeric offset.
type zoneIDElement struct {
	rules ZoneRules
}

func newZoneIDElement(rules ZoneRules) *zoneIDElement {
	if rules == nil {
		rules = SystemZoneRules()
	}
	return &zoneIDElement{rules: rules}
}

func (e *zoneIDElement) printTo(ctx *PrintContext, buf *strings.Builder) (bool, error) {
	q, ok := ctx.GetValueByQuery(QueryZoneID)
	if !ok {
		return false, nil
	}
	id, ok := q.(string)
	if !ok {
		return false, nil
	}
	buf.WriteString(id)
	return true, nil
}

func (e *zoneIDElement) parseTo(ctx *ParseContext, text string, pos int) int {
	r := []rune(text)
	if pos >= len(r) {
		return complement(pos)
	}

	if r[pos] == 'Z' {
		ctx.setParsedZone("Z")
		return pos + 1
	}

	for _, prefix := range []string{"UTC", "UT", "GMT"} {
		n := len([]rune(prefix))
		if ctx.SubSequenceEquals(text, pos, prefix, 0, n) {
			end := pos + n
			if end < len(r) && (r[end] == '+' || r[end] == '-') {
				off, err := newOffsetIDElement("", "+HH:MM:SS")
				if err == nil {
					sub := newParseContext(ctx.Locale(), ctx.Symbols(), ResolverStyleSmart)
					newEnd := off.parseTo(sub, text, end)
					if !isError(newEnd) {
						v := sub.top().fieldValues[OffsetSeconds]
						ctx.setParsedZone(prefix + offsetDisplayString(v))
						return newEnd
					}
				}
			}
			ctx.setParsedZone(prefix)
			return end
		}
	}

	if r[pos] == '+' || r[pos] == '-' {
		off, err := newOffsetIDElement("Z", "+HH:MM:SS")
		if err == nil {
			newEnd := off.parseTo(ctx, text, pos)
			if !isError(newEnd) {
				v := ctx.top().fieldValues[OffsetSeconds]
				ctx.setParsedZone(offsetDisplayString(v))
				return newEnd
			}
		}
		return complement(pos)
	}

	tree := globalZoneIDTreeCache.get(e.rules)
	node := tree
	bestEnd := -1
	cur := pos
	for cur < len(r) {
		next, ok := node.children[r[cur]]
		if !ok {
			break
		}
		node = next
		cur++
		if node.isZone {
			bestEnd = cur
		}
	}

	if bestEnd < 0 {
		return complement(pos)
	}

	id := string(r[pos:bestEnd])
	ctx.setParsedZone(id)
	return bestEnd
}

func offsetDisplayString(seconds int64) string {
	if seconds == 0 {
		return ""
	}
	sign := "+"
	v := seconds
	if v < 0 {
		sign = "-"
		v = -v
	}
	hh := v / 3600
	mm := (v % 3600) / 60
	ss := v % 60
	out := fmt.Sprintf("%s%02d:%02d", sign, hh, mm)
	if ss != 0 {
		out += fmt.Sprintf(":%02d", ss)
	}
	return out
}
