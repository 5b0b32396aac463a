// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/rational"
	"github.com/michaelmacinnis/cesk/internal/common/interface/truth"
	"github.com/michaelmacinnis/cesk/internal/common/struct/store"
	"github.com/michaelmacinnis/cesk/internal/common/type/boolean"
	"github.com/michaelmacinnis/cesk/internal/common/type/closure"
	"github.com/michaelmacinnis/cesk/internal/common/type/cont"
	"github.com/michaelmacinnis/cesk/internal/common/type/num"
	"github.com/michaelmacinnis/cesk/internal/common/type/pair"
	"github.com/michaelmacinnis/cesk/internal/common/type/prim"
	"github.com/michaelmacinnis/cesk/internal/common/type/str"
	"github.com/michaelmacinnis/cesk/internal/common/type/sym"
	"github.com/michaelmacinnis/cesk/internal/common/validate"
)

func isBoolean(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(boolean.Is(v[0]))
}

func isEq(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(same(v[0], v[1]))
}

func isEqual(args []cell.I, s *store.T) (cell.I, *store.T) {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(equal(v[0], v[1], s)), s
}

func isNull(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(v[0] == pair.Null)
}

func isNumber(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(num.Is(v[0]))
}

func isPair(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(pair.Is(v[0]))
}

func isProcedure(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(closure.Is(v[0]) || prim.Is(v[0]) || cont.Is(v[0]))
}

func isString(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(str.Is(v[0]))
}

func isSymbol(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(sym.Is(v[0]))
}

func isZero(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(rational.Number(v[0]).Sign() == 0)
}

func not(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(!truth.Value(v[0]))
}

// Lists are compared element by element through the store. Circular lists
// do not terminate.
func equal(a, b cell.I, s *store.T) bool {
	for pair.Is(a) && pair.Is(b) {
		if !equal(pair.Car(a, s), pair.Car(b, s), s) {
			return false
		}

		a, b = pair.Cdr(a, s), pair.Cdr(b, s)
	}

	if str.Is(a) {
		return a.Equal(b)
	}

	return same(a, b)
}

// Numbers, symbols, and booleans are the same if they have the same value.
// Pairs are the same if they share cells. Everything else has identity.
func same(a, b cell.I) bool {
	if num.Is(a) || sym.Is(a) || boolean.Is(a) || pair.Is(a) {
		return a.Equal(b)
	}

	return a == b
}
