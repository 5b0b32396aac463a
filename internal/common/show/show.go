// Released under an MIT license. See LICENSE.

// Package show renders values for people.
//
// Most values can render themselves but pairs only hold addresses. Value
// and Display follow those addresses through a store so that lists print
// as lists.
package show

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/michaelmacinnis/cesk/internal/common"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/literal"
	"github.com/michaelmacinnis/cesk/internal/common/struct/addr"
	"github.com/michaelmacinnis/cesk/internal/common/struct/store"
	"github.com/michaelmacinnis/cesk/internal/common/type/pair"
	"github.com/michaelmacinnis/cesk/internal/common/type/str"
)

// Display returns v as the display primitive writes it: strings appear
// without quotes.
func Display(v cell.I, s *store.T) string {
	p := &printer{display: true, seen: map[addr.T]bool{}, store: s}
	p.value(v)

	return p.String()
}

// Truncate shortens text to fit in width columns. A width of zero or less
// means no limit.
func Truncate(text string, width int) string {
	if width <= 0 {
		return text
	}

	return runewidth.Truncate(text, width, "...")
}

// Value returns v as it would be written in source text.
func Value(v cell.I, s *store.T) string {
	p := &printer{seen: map[addr.T]bool{}, store: s}
	p.value(v)

	return p.String()
}

type printer struct {
	strings.Builder

	display bool
	seen    map[addr.T]bool
	store   *store.T
}

func (p *printer) atom(v cell.I) {
	if p.display && str.Is(v) {
		p.WriteString(common.String(v))

		return
	}

	if l, ok := v.(literal.I); ok {
		p.WriteString(l.Literal())

		return
	}

	p.WriteString(v.String())
}

// Pairs already on the path from the outermost list are printed as "..."
// so circular lists terminate.
func (p *printer) list(v cell.I) {
	marked := []addr.T{}

	defer func() {
		for _, a := range marked {
			delete(p.seen, a)
		}
	}()

	p.WriteString("(")

	for first := true; ; first = false {
		if !first {
			p.WriteString(" ")
		}

		c := pair.To(v)
		if p.seen[c.Car()] {
			p.WriteString("...")

			break
		}

		p.seen[c.Car()] = true
		marked = append(marked, c.Car())

		p.value(p.store.Deref(c.Car()))

		v = p.store.Deref(c.Cdr())
		if v == pair.Null {
			break
		}

		if !pair.Is(v) {
			p.WriteString(" . ")
			p.value(v)

			break
		}
	}

	p.WriteString(")")
}

func (p *printer) value(v cell.I) {
	if pair.Is(v) && p.store != nil && p.store.Contains(pair.To(v).Cdr()) {
		p.list(v)

		return
	}

	p.atom(v)
}
