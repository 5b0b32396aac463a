// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"
	"strings"
	"testing"

	"github.com/joomcode/errorx"

	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/show"
	"github.com/michaelmacinnis/cesk/internal/common/struct/store"
	"github.com/michaelmacinnis/cesk/internal/common/type/boolean"
	"github.com/michaelmacinnis/cesk/internal/common/type/num"
	"github.com/michaelmacinnis/cesk/internal/common/type/pair"
	"github.com/michaelmacinnis/cesk/internal/common/type/str"
	"github.com/michaelmacinnis/cesk/internal/common/type/sym"
	"github.com/michaelmacinnis/cesk/internal/common/type/void"
)

func call(t *testing.T, name string, args ...cell.I) string {
	t.Helper()

	v, s := Primitives(&strings.Builder{})[name](args, store.Empty())

	return show.Value(v, s)
}

func fails(t *testing.T, typ *errorx.Type, name string, args ...cell.I) {
	t.Helper()

	var err error

	func() {
		defer func() {
			err = fault.Recover(recover())
		}()

		Primitives(&strings.Builder{})[name](args, store.Empty())
	}()

	if !fault.Is(err, typ) {
		t.Fatalf("(%s ...): expected %s, got %v", name, typ, err)
	}
}

func ints(is ...int) []cell.I {
	cs := make([]cell.I, len(is))
	for i, n := range is {
		cs[i] = num.Int(n)
	}

	return cs
}

func TestNames(t *testing.T) {
	p := Primitives(nil)

	for _, name := range strings.Fields(`
		+ - * / modulo quotient = < > <= >= number? zero?
		cons car cdr set-car! set-cdr! list null? pair? eq? equal? not
		boolean? symbol? string? procedure? string-append string-length
		string-match? display newline void`) {
		if p[name] == nil {
			t.Errorf("%s is missing", name)
		}
	}
}

func TestArithmetic(t *testing.T) {
	for _, c := range []struct {
		name string
		args []cell.I
		want string
	}{
		{"+", nil, "0"},
		{"+", ints(1, 2, 3), "6"},
		{"*", nil, "1"},
		{"*", ints(2, 3, 4), "24"},
		{"-", ints(5), "-5"},
		{"-", ints(10, 1, 2), "7"},
		{"/", ints(2), "1/2"},
		{"/", ints(12, 2, 3), "2"},
		{"/", ints(1, 3), "1/3"},
		{"modulo", ints(7, 2), "1"},
		{"modulo", ints(-7, 2), "1"},
		{"modulo", ints(7, -2), "-1"},
		{"quotient", ints(7, 2), "3"},
		{"quotient", ints(-7, 2), "-3"},
	} {
		if got := call(t, c.name, c.args...); got != c.want {
			t.Errorf("(%s %v): expected %s, got %s", c.name, c.args, c.want, got)
		}
	}

	fails(t, fault.DivisionByZero, "/", ints(1, 0)...)
	fails(t, fault.DivisionByZero, "modulo", ints(1, 0)...)
	fails(t, fault.WrongType, "quotient", num.Rat(big.NewRat(1, 2)), num.Int(1))
	fails(t, fault.WrongType, "+", num.Int(1), str.New("1"))
	fails(t, fault.ArityMismatch, "-")
}

func TestRelational(t *testing.T) {
	for _, c := range []struct {
		name string
		args []cell.I
		want string
	}{
		{"<", ints(1, 2, 3), "#t"},
		{"<", ints(1, 3, 2), "#f"},
		{"<=", ints(1, 1, 2), "#t"},
		{">", ints(3, 2, 1), "#t"},
		{">=", ints(3, 3, 4), "#f"},
		{"=", ints(2, 2, 2), "#t"},
		{"=", ints(5), "#t"},
		{"zero?", ints(0), "#t"},
		{"number?", []cell.I{str.New("1")}, "#f"},
	} {
		if got := call(t, c.name, c.args...); got != c.want {
			t.Errorf("(%s %v): expected %s, got %s", c.name, c.args, c.want, got)
		}
	}

	fails(t, fault.WrongType, "<", num.Int(1), num.Int(2), sym.New("x"))
}

func TestPairs(t *testing.T) {
	p := Primitives(nil)
	s := store.Empty()

	l, s := p["list"](ints(1, 2, 3), s)
	if got := show.Value(l, s); got != "(1 2 3)" {
		t.Fatalf("expected (1 2 3), got %s", got)
	}

	v, s := p["set-car!"]([]cell.I{l, sym.New("a")}, s)
	if !void.Is(v) {
		t.Fatalf("set-car! returned %s", v)
	}

	tail, s := p["cdr"]([]cell.I{l}, s)
	_, s = p["set-cdr!"]([]cell.I{tail, pair.Null}, s)

	if got := show.Value(l, s); got != "(a 2)" {
		t.Fatalf("expected (a 2), got %s", got)
	}

	c, s := p["cons"](ints(1, 2), s)
	if got := show.Value(c, s); got != "(1 . 2)" {
		t.Fatalf("expected (1 . 2), got %s", got)
	}

	fails(t, fault.WrongType, "car", num.Int(1))
	fails(t, fault.WrongType, "cdr", pair.Null)
}

func TestEquality(t *testing.T) {
	p := Primitives(nil)
	s := store.Empty()

	a, s := p["list"](ints(1, 2), s)
	b, s := p["list"](ints(1, 2), s)

	for _, c := range []struct {
		name string
		x, y cell.I
		want cell.I
	}{
		{"eq?", a, a, boolean.True},
		{"eq?", a, b, boolean.False},
		{"equal?", a, b, boolean.True},
		{"eq?", sym.New("x"), sym.New("x"), boolean.True},
		{"eq?", num.Int(2), num.Int(2), boolean.True},
		{"eq?", pair.Null, pair.Null, boolean.True},
		{"equal?", str.New("s"), str.New("s"), boolean.True},
		{"equal?", a, num.Int(1), boolean.False},
	} {
		if got, _ := p[c.name]([]cell.I{c.x, c.y}, s); got != c.want {
			t.Errorf("(%s %s %s): expected %s, got %s", c.name, c.x, c.y, c.want, got)
		}
	}
}

func TestPredicates(t *testing.T) {
	for _, c := range []struct {
		name string
		arg  cell.I
		want string
	}{
		{"boolean?", boolean.False, "#t"},
		{"not", boolean.False, "#t"},
		{"not", num.Int(0), "#f"},
		{"null?", pair.Null, "#t"},
		{"pair?", pair.Null, "#f"},
		{"procedure?", num.Int(1), "#f"},
		{"string?", str.New(""), "#t"},
		{"symbol?", sym.New("s"), "#t"},
	} {
		if got := call(t, c.name, c.arg); got != c.want {
			t.Errorf("(%s %s): expected %s, got %s", c.name, c.arg, c.want, got)
		}
	}
}

func TestStrings(t *testing.T) {
	if got := call(t, "string-append", str.New("ab"), str.New(""), str.New("c")); got != `"abc"` {
		t.Fatalf(`expected "abc", got %s`, got)
	}

	if got := call(t, "string-length", str.New("héllo")); got != "5" {
		t.Fatalf("expected 5, got %s", got)
	}

	if got := call(t, "string-match?", str.New("*.scm"), str.New("boot.scm")); got != "#t" {
		t.Fatalf("expected #t, got %s", got)
	}

	if got := call(t, "string-match?", str.New("a?c"), str.New("abbc")); got != "#f" {
		t.Fatalf("expected #f, got %s", got)
	}

	fails(t, fault.WrongType, "string-match?", str.New("[a"), str.New("a"))
	fails(t, fault.WrongType, "string-append", str.New("a"), num.Int(1))
}

func TestOutput(t *testing.T) {
	var b strings.Builder

	p := Primitives(&b)
	s := store.Empty()

	l, s := p["list"]([]cell.I{str.New("x"), num.Int(1)}, s)

	p["display"]([]cell.I{str.New("hello")}, s)
	p["newline"](nil, s)
	p["display"]([]cell.I{l}, s)

	if got := b.String(); got != "hello\n(x 1)" {
		t.Fatalf("unexpected output %q", got)
	}
}
