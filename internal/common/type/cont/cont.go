// Released under an MIT license. See LICENSE.

// Package cont provides first-class continuations.
package cont

import (
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/literal"
	"github.com/michaelmacinnis/cesk/internal/common/struct/kont"
)

const name = "continuation"

// T (cont) is a continuation captured by let/cc.
type T struct {
	K kont.I
}

type cont = T

// New reifies the continuation k.
func New(k kont.I) cell.I {
	return &cont{K: k}
}

// Equal returns true if o is the same continuation value.
func (c *cont) Equal(o cell.I) bool {
	return cell.I(c) == o
}

// Literal returns a representation of the continuation c.
func (c *cont) Literal() string {
	return "#<continuation>"
}

// Name returns the type name for the continuation c.
func (c *cont) Name() string {
	return name
}

// String returns the frames of the continuation c.
func (c *cont) String() string {
	return "#<continuation " + c.K.String() + ">"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t cont

	// The cont type is a cell.
	_ = cell.I(&t)

	// The cont type has a literal representation.
	_ = literal.I(&t)
}
