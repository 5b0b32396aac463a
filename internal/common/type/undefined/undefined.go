// Released under an MIT license. See LICENSE.

// Package undefined provides the placeholder held by a letrec binding
// before its initializer has been evaluated.
package undefined

import (
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/literal"
)

// T (undefined) has a single value, Undefined.
type T struct{}

//nolint:gochecknoglobals
var Undefined cell.I = &T{}

func (u *T) Equal(c cell.I) bool {
	return c == Undefined
}

func (u *T) Literal() string {
	return "#<undefined>"
}

func (u *T) Name() string {
	return "undefined"
}

func (u *T) String() string {
	return u.Literal()
}

// Is returns true if c is Undefined.
func Is(c cell.I) bool {
	return c == Undefined
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	_ = cell.I(&t)
	_ = literal.I(&t)
}
