// Released under an MIT license. See LICENSE.

package store

import (
	"testing"

	"github.com/joomcode/errorx"

	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/struct/addr"
	"github.com/michaelmacinnis/cesk/internal/common/type/num"
	"github.com/michaelmacinnis/cesk/internal/common/type/sym"
)

func TestAllocateThenDeref(t *testing.T) {
	v := num.Int(7)

	a, s := Empty().Allocate(v)

	if !s.Deref(a).Equal(v) {
		t.Fatalf("expected %s at %s, got %s", v, a, s.Deref(a))
	}

	if Empty().Contains(a) {
		t.Fatalf("allocation changed the empty store")
	}
}

func TestAllocateLeavesEarlierAddresses(t *testing.T) {
	s := Empty()
	addrs := []addr.T{}

	// Enough to grow the trie by two levels.
	for i := 0; i < 2000; i++ {
		var a addr.T

		a, s = s.Allocate(num.Int(i))
		addrs = append(addrs, a)
	}

	before := s

	_, after := s.Allocate(sym.New("new"))

	for i, a := range addrs {
		if !before.Deref(a).Equal(num.Int(i)) {
			t.Fatalf("%s changed in the original store", a)
		}

		if !after.Deref(a).Equal(num.Int(i)) {
			t.Fatalf("%s changed in the new store", a)
		}
	}

	if after.Size() != 2001 || before.Size() != 2000 {
		t.Fatalf("unexpected sizes %d and %d", before.Size(), after.Size())
	}
}

func TestAddressesAreSequential(t *testing.T) {
	a0, s := Empty().Allocate(num.Int(0))
	a1, s := s.Allocate(num.Int(1))

	if a0 != 0 || a1 != a0.Next() || s.Next() != a1.Next() {
		t.Fatalf("unexpected addresses %s, %s, next %s", a0, a1, s.Next())
	}
}

func TestUpdate(t *testing.T) {
	a, s := Empty().Allocate(num.Int(1))
	b, s := s.Allocate(num.Int(2))

	s2 := s.Update(a, num.Int(3))

	if !s2.Deref(a).Equal(num.Int(3)) {
		t.Fatalf("expected 3, got %s", s2.Deref(a))
	}

	if !s2.Deref(b).Equal(num.Int(2)) {
		t.Fatalf("update changed another address")
	}

	if !s.Deref(a).Equal(num.Int(1)) {
		t.Fatalf("update changed the original store")
	}

	if s2.Next() != s.Next() {
		t.Fatalf("update moved the allocation cursor")
	}
}

func TestUpdateUnallocated(t *testing.T) {
	raises(t, fault.InvalidStoreAccess, func() {
		Empty().Update(addr.T(0), num.Int(1))
	})
}

func TestDerefUnallocated(t *testing.T) {
	_, s := Empty().Allocate(num.Int(1))

	raises(t, fault.InvalidStoreAccess, func() {
		s.Deref(addr.T(1))
	})
}

func TestString(t *testing.T) {
	_, s := Empty().Allocate(num.Int(5))

	if r := s.String(); r != "Store(address(1), {address(0): 5})" {
		t.Fatalf("unexpected rendering %s", r)
	}
}

func raises(t *testing.T, typ *errorx.Type, f func()) {
	t.Helper()

	defer func() {
		err := fault.Recover(recover())
		if err == nil || !fault.Is(err, typ) {
			t.Fatalf("expected %s, got %v", typ, err)
		}
	}()

	f()
}
