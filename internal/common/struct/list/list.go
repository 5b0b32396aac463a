// Released under an MIT license. See LICENSE.

// Package list provides an immutable singly-linked list.
//
// The nil *T is the empty list. Cons never modifies its arguments so a list
// can be shared by any number of holders, each of which may extend it.
package list

import (
	"fmt"
	"strings"
)

// T (list) is a cons cell in an immutable list.
type T[E any] struct {
	car E
	cdr *T[E]
}

// Cons returns a new list with x in front of l.
func Cons[E any](x E, l *T[E]) *T[E] {
	return &T[E]{car: x, cdr: l}
}

// Empty returns the empty list for element type E.
func Empty[E any]() *T[E] {
	return nil
}

// New creates a list composed of the elements in elements, in order.
func New[E any](elements ...E) *T[E] {
	var l *T[E]

	for i := len(elements) - 1; i >= 0; i-- {
		l = Cons(elements[i], l)
	}

	return l
}

// Car returns the first element of l.
// Calling Car on the empty list is a programming error and panics.
func (l *T[E]) Car() E {
	if l == nil {
		panic("car of empty list")
	}

	return l.car
}

// Cdr returns everything after the first element of l.
// Calling Cdr on the empty list is a programming error and panics.
func (l *T[E]) Cdr() *T[E] {
	if l == nil {
		panic("cdr of empty list")
	}

	return l.cdr
}

// IsEmpty returns true if l has no elements.
func (l *T[E]) IsEmpty() bool {
	return l == nil
}

// Len returns the number of elements in l.
func (l *T[E]) Len() int {
	n := 0

	for ; l != nil; l = l.cdr {
		n++
	}

	return n
}

// Slice returns the elements of l as a new slice.
func (l *T[E]) Slice() []E {
	s := make([]E, 0, l.Len())

	for ; l != nil; l = l.cdr {
		s = append(s, l.car)
	}

	return s
}

// String returns a human-readable representation of l.
func (l *T[E]) String() string {
	var b strings.Builder

	b.WriteString("[")

	for p := l; p != nil; p = p.cdr {
		if p != l {
			b.WriteString(", ")
		}

		fmt.Fprint(&b, p.car)
	}

	b.WriteString("]")

	return b.String()
}

// Foldr combines the elements of l from right to left.
func Foldr[E, A any](f func(E, A) A, base A, l *T[E]) A {
	for r := Reverse(l); r != nil; r = r.cdr {
		base = f(r.car, base)
	}

	return base
}

// Map returns a new list holding f applied to each element of l.
func Map[E, F any](f func(E) F, l *T[E]) *T[F] {
	var empty *T[F]

	return Foldr(func(x E, acc *T[F]) *T[F] {
		return Cons(f(x), acc)
	}, empty, l)
}

// Reverse returns a new list with the elements of l in reverse order.
func Reverse[E any](l *T[E]) *T[E] {
	var r *T[E]

	for ; l != nil; l = l.cdr {
		r = Cons(l.car, r)
	}

	return r
}
