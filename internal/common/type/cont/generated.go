// Released under an MIT license. See LICENSE.

package cont

import (
	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
)

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it raises a wrong type fault.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	fault.Raise(fault.WrongType, "expected %s, got %s", name, describe(c))

	return nil
}

func describe(c cell.I) string {
	if c == nil {
		return "nothing"
	}

	return c.Name()
}
