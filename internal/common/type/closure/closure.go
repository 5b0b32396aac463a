// Released under an MIT license. See LICENSE.

// Package closure provides the procedure type created by lambda.
package closure

import (
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/literal"
	"github.com/michaelmacinnis/cesk/internal/common/struct/env"
	"github.com/michaelmacinnis/cesk/internal/common/struct/expr"
)

const name = "procedure"

// T (closure) pairs a lambda with the environment it was evaluated in.
type T struct {
	Env    *env.T
	Lambda *expr.Lambda
}

type closure = T

// New creates a closure for l in e.
func New(l *expr.Lambda, e *env.T) cell.I {
	return &closure{Env: e, Lambda: l}
}

// Equal returns true if c is the same closure. Closures have identity.
func (c *closure) Equal(o cell.I) bool {
	return cell.I(c) == o
}

// Literal returns a representation of the closure c.
func (c *closure) Literal() string {
	return "#<procedure " + c.Lambda.String() + ">"
}

// Name returns the type name for the closure c.
func (c *closure) Name() string {
	return name
}

// String returns the text of the closure c.
func (c *closure) String() string {
	return c.Literal()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t closure

	// The closure type is a cell.
	_ = cell.I(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)
}
