// Released under an MIT license. See LICENSE.

// Package store provides the machine's memory: a persistent mapping from
// addresses to values with an allocation cursor.
//
// The mapping is a bit-partitioned trie indexed by the address integer.
// Allocate and Update copy only the path to the affected leaf, so every
// store remains valid and unchanged after a newer store is derived from
// it. Addresses are handed out in order and never reclaimed.
package store

import (
	"strings"

	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/struct/addr"
)

const (
	bits  = 5
	width = 1 << bits
	mask  = width - 1
)

// T (store) maps addresses to values.
type T struct {
	next  addr.T
	root  *node
	shift uint
}

type store = T

// Interior nodes hold *node. Leaves hold cell.I.
type node [width]interface{}

//nolint:gochecknoglobals
var empty = &store{}

// Empty returns a store with no allocated addresses.
func Empty() *T {
	return empty
}

// Allocate binds v to a fresh address and returns the address and the new
// store. The receiver is unchanged.
func (s *store) Allocate(v cell.I) (addr.T, *T) {
	a := s.next
	i := uint64(a)

	root, shift := s.root, s.shift
	for i>>(shift+bits) != 0 {
		root = &node{root}
		shift += bits
	}

	return a, &store{
		next:  a.Next(),
		root:  set(root, shift, i, v),
		shift: shift,
	}
}

// Contains returns true if a has been allocated in s.
func (s *store) Contains(a addr.T) bool {
	return a < s.next
}

// Deref returns the value bound to a.
// Dereferencing an address that was never allocated raises a fault.
func (s *store) Deref(a addr.T) cell.I {
	if !s.Contains(a) {
		fault.Raise(fault.InvalidStoreAccess, "dereference of unallocated %s", a)
	}

	return s.get(a)
}

// Next returns the address the next allocation will use.
func (s *store) Next() addr.T {
	return s.next
}

// Size returns the number of allocated addresses.
func (s *store) Size() int {
	return int(s.next)
}

// String returns a human-readable representation of s.
func (s *store) String() string {
	var b strings.Builder

	b.WriteString("Store(")
	b.WriteString(s.next.String())
	b.WriteString(", {")

	for a := addr.T(0); a < s.next; a++ {
		if a > 0 {
			b.WriteString(", ")
		}

		b.WriteString(a.String())
		b.WriteString(": ")

		if v := s.get(a); v != nil {
			b.WriteString(v.String())
		} else {
			b.WriteString("<nil>")
		}
	}

	b.WriteString("})")

	return b.String()
}

// Update returns a new store where a is bound to v. No other binding
// changes. Updating an address that was never allocated raises a fault.
func (s *store) Update(a addr.T, v cell.I) *T {
	if !s.Contains(a) {
		fault.Raise(fault.InvalidStoreAccess, "update of unallocated %s", a)
	}

	return &store{
		next:  s.next,
		root:  set(s.root, s.shift, uint64(a), v),
		shift: s.shift,
	}
}

func (s *store) get(a addr.T) cell.I {
	i := uint64(a)
	n := s.root

	for shift := s.shift; shift > 0; shift -= bits {
		n, _ = n[(i>>shift)&mask].(*node)
	}

	v, _ := n[i&mask].(cell.I)

	return v
}

func set(n *node, shift uint, i uint64, v cell.I) *node {
	c := &node{}
	if n != nil {
		*c = *n
	}

	if shift == 0 {
		c[i&mask] = v

		return c
	}

	j := (i >> shift) & mask
	child, _ := c[j].(*node)
	c[j] = set(child, shift-bits, i, v)

	return c
}
