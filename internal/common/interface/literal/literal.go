// Released under an MIT license. See LICENSE.

// Package literal defines the interface for values that can be written as
// Scheme source text.
package literal

import (
	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell, if possible.
func String(c cell.I) string {
	l, ok := c.(I)
	if !ok {
		// Not all cell types can be expressed as literals.
		fault.Raise(fault.WrongType, "%s does not have a literal representation", c.Name())
	}

	return l.Literal()
}
