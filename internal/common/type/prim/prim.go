// Released under an MIT license. See LICENSE.

// Package prim provides procedures implemented in Go.
package prim

import (
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/literal"
	"github.com/michaelmacinnis/cesk/internal/common/struct/store"
)

const name = "primitive"

// Func is the calling contract for a primitive: the argument values and the
// current store in, the result and the new store out.
type Func func(args []cell.I, s *store.T) (cell.I, *store.T)

// T (prim) is a named Go function.
type T struct {
	fn    Func
	label string
}

type prim = T

// New creates a primitive called label.
func New(label string, fn Func) cell.I {
	return &prim{fn: fn, label: label}
}

// Apply calls the primitive p.
func (p *prim) Apply(args []cell.I, s *store.T) (cell.I, *store.T) {
	return p.fn(args, s)
}

// Equal returns true if c is the same primitive.
func (p *prim) Equal(c cell.I) bool {
	return cell.I(p) == c
}

// Label returns the name the primitive was created with.
func (p *prim) Label() string {
	return p.label
}

// Literal returns a representation of the primitive p.
func (p *prim) Literal() string {
	return "#<primitive " + p.label + ">"
}

// Name returns the type name for the primitive p.
func (p *prim) Name() string {
	return name
}

// String returns the text of the primitive p.
func (p *prim) String() string {
	return p.Literal()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t prim

	// The prim type is a cell.
	_ = cell.I(&t)

	// The prim type has a literal representation.
	_ = literal.I(&t)
}
