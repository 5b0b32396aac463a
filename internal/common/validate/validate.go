// Released under an MIT license. See LICENSE.

// Package validate checks the number of arguments passed to a procedure.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
)

// Fixed returns args if it holds at least min and at most max values.
// Otherwise it raises an arity mismatch.
func Fixed(args []cell.I, min, max int) []cell.I {
	n := len(args)
	if n >= min && n <= max {
		return args
	}

	s := Count(max, "argument", "s")
	if min != max {
		s = fmt.Sprintf("%d to %s", min, s)
	}

	fault.Raise(fault.ArityMismatch, "expected %s, passed %d", s, n)

	return nil
}

// Variadic returns args if it holds at least min values.
func Variadic(args []cell.I, min int) []cell.I {
	if len(args) < min {
		s := Count(min, "argument", "s")
		fault.Raise(fault.ArityMismatch, "expected at least %s, passed %d", s, len(args))
	}

	return args
}

// Count returns "n label" with the plural suffix p added unless n is 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
