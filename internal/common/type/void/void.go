// Released under an MIT license. See LICENSE.

// Package void provides the value of expressions evaluated only for effect.
package void

import (
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/literal"
)

// T (void) has a single value, Void.
type T struct{}

//nolint:gochecknoglobals
var Void cell.I = &T{}

func (v *T) Equal(c cell.I) bool {
	return c == Void
}

func (v *T) Literal() string {
	return "#<void>"
}

func (v *T) Name() string {
	return "void"
}

func (v *T) String() string {
	return ""
}

// Is returns true if c is Void.
func Is(c cell.I) bool {
	return c == Void
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	_ = cell.I(&t)
	_ = literal.I(&t)
}
