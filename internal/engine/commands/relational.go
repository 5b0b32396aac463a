// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/rational"
	"github.com/michaelmacinnis/cesk/internal/common/type/boolean"
	"github.com/michaelmacinnis/cesk/internal/common/validate"
)

// Each argument is compared with the next. Every argument must be a number
// even after the result is known.
func compare(ok func(c int) bool) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		v := validate.Variadic(args, 1)

		result := true

		var prev *big.Rat
		for i, a := range v {
			curr := rational.Number(a)
			if i > 0 && !ok(prev.Cmp(curr)) {
				result = false
			}

			prev = curr
		}

		return boolean.Bool(result)
	}
}

func eq(c int) bool { return c == 0 }
func ge(c int) bool { return c >= 0 }
func gt(c int) bool { return c > 0 }
func le(c int) bool { return c <= 0 }
func lt(c int) bool { return c < 0 }
