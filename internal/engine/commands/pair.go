// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/struct/store"
	"github.com/michaelmacinnis/cesk/internal/common/type/pair"
	"github.com/michaelmacinnis/cesk/internal/common/type/void"
	"github.com/michaelmacinnis/cesk/internal/common/validate"
)

func car(args []cell.I, s *store.T) (cell.I, *store.T) {
	v := validate.Fixed(args, 1, 1)

	return pair.Car(v[0], s), s
}

func cdr(args []cell.I, s *store.T) (cell.I, *store.T) {
	v := validate.Fixed(args, 1, 1)

	return pair.Cdr(v[0], s), s
}

func cons(args []cell.I, s *store.T) (cell.I, *store.T) {
	v := validate.Fixed(args, 2, 2)

	return pair.Cons(v[0], v[1], s)
}

func list(args []cell.I, s *store.T) (cell.I, *store.T) {
	return pair.List(args, pair.Null, s)
}

func setCar(args []cell.I, s *store.T) (cell.I, *store.T) {
	v := validate.Fixed(args, 2, 2)

	return void.Void, pair.SetCar(v[0], v[1], s)
}

func setCdr(args []cell.I, s *store.T) (cell.I, *store.T) {
	v := validate.Fixed(args, 2, 2)

	return void.Void, pair.SetCdr(v[0], v[1], s)
}
