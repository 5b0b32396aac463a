// Released under an MIT license. See LICENSE.

package commands

import (
	"io"

	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/show"
	"github.com/michaelmacinnis/cesk/internal/common/struct/store"
	"github.com/michaelmacinnis/cesk/internal/common/type/prim"
	"github.com/michaelmacinnis/cesk/internal/common/type/void"
	"github.com/michaelmacinnis/cesk/internal/common/validate"
)

func display(w io.Writer) prim.Func {
	return func(args []cell.I, s *store.T) (cell.I, *store.T) {
		v := validate.Fixed(args, 1, 1)

		_, _ = io.WriteString(w, show.Display(v[0], s))

		return void.Void, s
	}
}

func newline(w io.Writer) prim.Func {
	return func(args []cell.I, s *store.T) (cell.I, *store.T) {
		validate.Fixed(args, 0, 0)

		_, _ = io.WriteString(w, "\n")

		return void.Void, s
	}
}

func unspecified(args []cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	return void.Void
}
