// Released under an MIT license. See LICENSE.

// Package env provides the machine's lexical environment: a persistent
// mapping from identifiers to store addresses.
package env

import (
	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/struct/addr"
	"github.com/michaelmacinnis/cesk/internal/common/struct/assoc"
	"github.com/michaelmacinnis/cesk/internal/common/struct/store"
)

// T (env) maps identifiers to addresses. The zero value is not used;
// start from Empty.
type T struct {
	bindings *assoc.T[string, addr.T]
}

type env = T

// Empty returns an environment with no bindings.
func Empty() *T {
	return &env{bindings: assoc.Empty[string, addr.T]()}
}

// Bind allocates a fresh cell for v in s and binds id to it in e.
func Bind(id string, v cell.I, e *T, s *store.T) (*T, *store.T) {
	a, s := s.Allocate(v)

	return e.Extend(id, a), s
}

// Extend returns a new environment where id is bound to a.
// A previous binding for id is shadowed, not replaced.
func (e *env) Extend(id string, a addr.T) *T {
	return &env{bindings: e.bindings.Extend(id, a)}
}

// Lookup returns the address bound to id. An unbound id raises a fault.
func (e *env) Lookup(id string) addr.T {
	a, ok := e.Resolve(id)
	if !ok {
		fault.Raise(fault.UnboundIdentifier, "unbound identifier: %s", id)
	}

	return a
}

// Names returns every bound identifier, most recently bound first.
func (e *env) Names() []string {
	return e.bindings.Keys()
}

// Resolve returns the address bound to id and true, or false if id is unbound.
func (e *env) Resolve(id string) (addr.T, bool) {
	return e.bindings.Lookup(id)
}

// String returns a text representation of the environment e.
func (e *env) String() string {
	return "Env(" + e.bindings.String() + ")"
}
