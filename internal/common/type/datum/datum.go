// Released under an MIT license. See LICENSE.

// Package datum provides lists as read from source text.
//
// The reader cannot build pairs because pairs live in a store. It builds
// a datum instead; quote turns a datum into pairs when it is evaluated and
// the syntax converter walks data to build expressions.
package datum

import (
	"strings"

	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/literal"
	"github.com/michaelmacinnis/cesk/internal/common/struct/loc"
	"github.com/michaelmacinnis/cesk/internal/common/type/pair"
)

const name = "list"

// T (datum) is a non-empty list of data. Tail is pair.Null for a proper
// list, otherwise the datum after the dot.
type T struct {
	Items  []cell.I
	Source *loc.T
	Tail   cell.I
}

type datum = T

// New creates a proper list of items. With no items it returns pair.Null.
func New(items ...cell.I) cell.I {
	return Dotted(items, pair.Null)
}

// Dotted creates a list of items ending in tail.
func Dotted(items []cell.I, tail cell.I) cell.I {
	if len(items) == 0 {
		return tail
	}

	return &datum{Items: items, Tail: tail}
}

// Equal returns true if c is a datum with equal items and tail.
func (d *datum) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if len(o.Items) != len(d.Items) || !d.Tail.Equal(o.Tail) {
		return false
	}

	for i, v := range d.Items {
		if !v.Equal(o.Items[i]) {
			return false
		}
	}

	return true
}

// Head returns the first item of d.
func (d *datum) Head() cell.I {
	return d.Items[0]
}

// Literal returns the text of d as it would be written.
func (d *datum) Literal() string {
	s := make([]string, len(d.Items))
	for i, v := range d.Items {
		s[i] = literal.String(v)
	}

	if d.Tail != pair.Null {
		s = append(s, ".", literal.String(d.Tail))
	}

	return "(" + strings.Join(s, " ") + ")"
}

// Name returns the type name for the datum d.
func (d *datum) Name() string {
	return name
}

// Proper returns true if d ends in the empty list.
func (d *datum) Proper() bool {
	return d.Tail == pair.Null
}

// String returns the text of d.
func (d *datum) String() string {
	return d.Literal()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t datum

	// The datum type is a cell.
	_ = cell.I(&t)

	// The datum type has a literal representation.
	_ = literal.I(&t)
}
