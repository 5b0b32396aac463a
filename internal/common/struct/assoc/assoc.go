// Released under an MIT license. See LICENSE.

// Package assoc provides an immutable association from keys to values.
//
// An association is a list of bindings searched from the most recently
// added. Extending with a key that is already present shadows the older
// binding rather than replacing it. Bindings are never removed.
package assoc

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/cesk/internal/common/struct/list"
)

// T (assoc) maps keys to values.
type T[K comparable, V any] struct {
	bindings *list.T[binding[K, V]]
}

type binding[K comparable, V any] struct {
	key K
	val V
}

// Empty returns an association with no bindings.
func Empty[K comparable, V any]() *T[K, V] {
	return &T[K, V]{}
}

// Extend returns a new association with k bound to v. The receiver is
// unchanged.
func (a *T[K, V]) Extend(k K, v V) *T[K, V] {
	return &T[K, V]{bindings: list.Cons(binding[K, V]{k, v}, a.bindings)}
}

// HasKey returns true if k is bound in a.
func (a *T[K, V]) HasKey(k K) bool {
	_, ok := a.Lookup(k)

	return ok
}

// IsEmpty returns true if a has no bindings.
func (a *T[K, V]) IsEmpty() bool {
	return a.bindings.IsEmpty()
}

// Keys returns each distinct key in a, most recently bound first.
func (a *T[K, V]) Keys() []K {
	seen := map[K]bool{}
	keys := []K{}

	for l := a.bindings; !l.IsEmpty(); l = l.Cdr() {
		k := l.Car().key
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}

	return keys
}

// Len returns the number of bindings in a, counting shadowed bindings.
func (a *T[K, V]) Len() int {
	return a.bindings.Len()
}

// Lookup returns the value most recently bound to k. The boolean result is
// false, and the value is V's zero value, if k is not bound.
func (a *T[K, V]) Lookup(k K) (v V, ok bool) {
	for l := a.bindings; !l.IsEmpty(); l = l.Cdr() {
		if b := l.Car(); b.key == k {
			return b.val, true
		}
	}

	return v, false
}

// String returns a human-readable representation of the visible bindings.
func (a *T[K, V]) String() string {
	var b strings.Builder

	b.WriteString("{")

	for i, k := range a.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}

		v, _ := a.Lookup(k)
		fmt.Fprintf(&b, "%v: %v", k, v)
	}

	b.WriteString("}")

	return b.String()
}
