// Released under an MIT license. See LICENSE.

// Package common defines interfaces shared by every value type.
package common

import (
	"fmt"

	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
)

type Stringer = fmt.Stringer

// String returns the display text for a cell, if possible.
func String(c cell.I) string {
	b, ok := c.(Stringer)
	if !ok {
		fault.Raise(fault.WrongType, "%s cannot be used in a string context", c.Name())
	}

	return b.String()
}
