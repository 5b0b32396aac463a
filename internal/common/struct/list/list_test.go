// Released under an MIT license. See LICENSE.

package list

import (
	"testing"
)

func TestConsLeavesTailUnchanged(t *testing.T) {
	tail := New(2, 3)
	l := Cons(1, tail)

	if l.Len() != 3 {
		t.Fatalf("expected 3 elements, got %d", l.Len())
	}

	if tail.Len() != 2 || tail.Car() != 2 {
		t.Fatalf("tail changed: %s", tail)
	}

	if l.Cdr() != tail {
		t.Fatalf("expected cdr to share the tail")
	}
}

func TestEmpty(t *testing.T) {
	l := Empty[string]()

	if !l.IsEmpty() {
		t.Fatalf("expected empty list")
	}

	if l.Len() != 0 {
		t.Fatalf("expected length 0, got %d", l.Len())
	}

	if s := l.String(); s != "[]" {
		t.Fatalf("expected [], got %s", s)
	}
}

func TestCarOfEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected car of empty list to panic")
		}
	}()

	Empty[int]().Car()
}

func TestFoldr(t *testing.T) {
	l := New("a", "b", "c")

	right := Foldr(func(s string, acc string) string { return acc + s }, "", l)
	if right != "cba" {
		t.Fatalf("expected cba, got %s", right)
	}
}

func TestFoldrIsIterative(t *testing.T) {
	var l *T[int]

	for i := 0; i < 1000000; i++ {
		l = Cons(1, l)
	}

	if n := Foldr(func(x, acc int) int { return x + acc }, 0, l); n != 1000000 {
		t.Fatalf("expected 1000000, got %d", n)
	}
}

func TestMapReverseSlice(t *testing.T) {
	l := Map(func(i int) int { return i * 10 }, New(1, 2, 3))

	if s := l.String(); s != "[10, 20, 30]" {
		t.Fatalf("expected [10, 20, 30], got %s", s)
	}

	r := Reverse(l).Slice()
	if len(r) != 3 || r[0] != 30 || r[2] != 10 {
		t.Fatalf("unexpected reverse: %v", r)
	}
}
