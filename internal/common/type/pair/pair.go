// Released under an MIT license. See LICENSE.

// Package pair provides the cons cell type and the empty list.
//
// A pair does not hold its car and cdr directly. It holds the addresses of
// two store cells, so set-car! and set-cdr! are store updates and every
// holder of the pair sees the change.
package pair

import (
	"github.com/michaelmacinnis/cesk/internal/common"
	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/literal"
	"github.com/michaelmacinnis/cesk/internal/common/struct/addr"
	"github.com/michaelmacinnis/cesk/internal/common/struct/store"
)

const name = "pair"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list.
	Null cell.I = &null{}
)

// T (pair) is a cons cell.
type T struct {
	car addr.T
	cdr addr.T
}

type pair = T

// Car returns the address of the car of the pair p.
func (p *pair) Car() addr.T {
	return p.car
}

// Cdr returns the address of the cdr of the pair p.
func (p *pair) Cdr() addr.T {
	return p.cdr
}

// Equal returns true if c is the same pair as p. Pairs are the same if they
// share both cells.
func (p *pair) Equal(c cell.I) bool {
	return Is(c) && To(c).car == p.car && To(c).cdr == p.cdr
}

// Literal returns a representation of p that does not need the store.
func (p *pair) Literal() string {
	return "#<pair " + p.car.String() + " " + p.cdr.String() + ">"
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the value in the car of the pair c.
func Car(c cell.I, s *store.T) cell.I {
	return s.Deref(To(c).car)
}

// Cdr returns the value in the cdr of the pair c.
func Cdr(c cell.I, s *store.T) cell.I {
	return s.Deref(To(c).cdr)
}

// Cons allocates cells for h and t and returns a new pair holding them.
func Cons(h, t cell.I, s *store.T) (cell.I, *store.T) {
	car, s := s.Allocate(h)
	cdr, s := s.Allocate(t)

	return &pair{car: car, cdr: cdr}, s
}

// List allocates a proper list of vs, ending with tail.
func List(vs []cell.I, tail cell.I, s *store.T) (cell.I, *store.T) {
	l := tail

	for i := len(vs) - 1; i >= 0; i-- {
		l, s = Cons(vs[i], l, s)
	}

	return l, s
}

// SetCar stores v in the car of the pair c.
func SetCar(c, v cell.I, s *store.T) *store.T {
	return s.Update(To(c).car, v)
}

// SetCdr stores v in the cdr of the pair c.
func SetCdr(c, v cell.I, s *store.T) *store.T {
	return s.Update(To(c).cdr, v)
}

// Slice returns the elements of the proper list c.
func Slice(c cell.I, s *store.T) []cell.I {
	vs := []cell.I{}

	for c != Null {
		if !Is(c) {
			fault.Raise(fault.WrongType, "expected a list, got %s", c.Name())
		}

		vs = append(vs, Car(c, s))
		c = Cdr(c, s)
	}

	return vs
}

type null struct{}

func (n *null) Equal(c cell.I) bool {
	return c == Null
}

func (n *null) Literal() string {
	return "()"
}

func (n *null) Name() string {
	return "null"
}

func (n *null) String() string {
	return "()"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)

	var n null

	// The empty list is a cell with a literal representation.
	_ = cell.I(&n)
	_ = literal.I(&n)
}
