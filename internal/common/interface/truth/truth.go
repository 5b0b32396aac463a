// Released under an MIT license. See LICENSE.

// Package truth defines how values behave in a boolean context.
package truth

import (
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
)

// I (truth) is anything that carries its own truth value.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell. Only a value that says it is
// false is false; every other value is true.
func Value(c cell.I) bool {
	b, ok := c.(I)
	if !ok {
		return true
	}

	return b.Bool()
}
