// Released under an MIT license. See LICENSE.

// Package rational defines the interface for numeric types.
package rational

import (
	"math/big"

	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
)

// I (rational) is anything that can be treated as a rational number.
type I interface {
	Rat() *big.Rat
}

type rational = I

// Number returns the *big.Rat value for a cell, if possible.
func Number(c cell.I) *big.Rat {
	r, ok := c.(rational)
	if !ok {
		// Not all cell types can be treated as numbers.
		fault.Raise(fault.WrongType, "%s cannot be used in a numeric context", c.Name())
	}

	return r.Rat()
}

// Is returns true if c can be treated as a number.
func Is(c cell.I) bool {
	_, ok := c.(rational)

	return ok
}
