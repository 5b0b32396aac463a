// Released under an MIT license. See LICENSE.

package show

import (
	"testing"

	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/struct/store"
	"github.com/michaelmacinnis/cesk/internal/common/type/boolean"
	"github.com/michaelmacinnis/cesk/internal/common/type/num"
	"github.com/michaelmacinnis/cesk/internal/common/type/pair"
	"github.com/michaelmacinnis/cesk/internal/common/type/str"
	"github.com/michaelmacinnis/cesk/internal/common/type/sym"
)

func TestAtoms(t *testing.T) {
	s := store.Empty()

	for _, c := range []struct {
		v       cell.I
		value   string
		display string
	}{
		{num.Int(-3), "-3", "-3"},
		{str.New("a \"b\""), `"a \"b\""`, `a "b"`},
		{boolean.False, "#f", "#f"},
		{sym.New("x"), "x", "x"},
		{pair.Null, "()", "()"},
	} {
		if got := Value(c.v, s); got != c.value {
			t.Errorf("Value: expected %s, got %s", c.value, got)
		}

		if got := Display(c.v, s); got != c.display {
			t.Errorf("Display: expected %s, got %s", c.display, got)
		}
	}
}

func TestLists(t *testing.T) {
	s := store.Empty()

	inner, s := pair.List([]cell.I{str.New("b")}, pair.Null, s)
	l, s := pair.List([]cell.I{num.Int(1), inner, sym.New("c")}, pair.Null, s)

	if got := Value(l, s); got != `(1 ("b") c)` {
		t.Fatalf("unexpected rendering %s", got)
	}

	dotted, s := pair.Cons(num.Int(1), num.Int(2), s)
	if got := Value(dotted, s); got != "(1 . 2)" {
		t.Fatalf("unexpected rendering %s", got)
	}

	// Shared structure is not a cycle.
	twice, s := pair.List([]cell.I{inner, inner}, pair.Null, s)
	if got := Display(twice, s); got != "((b) (b))" {
		t.Fatalf("unexpected rendering %s", got)
	}
}

func TestCircularList(t *testing.T) {
	s := store.Empty()

	l, s := pair.List([]cell.I{num.Int(1), num.Int(2)}, pair.Null, s)
	s = pair.SetCdr(pair.Cdr(l, s), l, s)

	if got := Value(l, s); got != "(1 2 ...)" {
		t.Fatalf("unexpected rendering %s", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdefghij", 6); got != "abc..." {
		t.Fatalf("unexpected truncation %s", got)
	}

	if got := Truncate("abc", 0); got != "abc" {
		t.Fatalf("unexpected truncation %s", got)
	}
}
