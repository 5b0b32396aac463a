// Released under an MIT license. See LICENSE.

package parser

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/literal"
	"github.com/michaelmacinnis/cesk/internal/common/struct/token"
	"github.com/michaelmacinnis/cesk/internal/common/type/boolean"
	"github.com/michaelmacinnis/cesk/internal/common/type/num"
	"github.com/michaelmacinnis/cesk/internal/common/type/str"
	"github.com/michaelmacinnis/cesk/internal/common/type/sym"
	"github.com/michaelmacinnis/cesk/internal/engine/boot"
	"github.com/michaelmacinnis/cesk/internal/reader/lexer"
)

// Parse s, write what was parsed, then parse that and compare.
func check(t *testing.T, s string) string {
	t.Helper()

	p := render(t, s)
	r := render(t, p)

	if p != r {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}

	return p
}

func render(t *testing.T, s string) string {
	t.Helper()

	data, err := Text("test", s)
	if err != nil {
		t.Fatalf("%q: %v", s, err)
	}

	rs := make([]string, len(data))
	for i, c := range data {
		rs[i] = literal.String(c)
	}

	return strings.Join(rs, "\n")
}

func TestBoot(t *testing.T) {
	check(t, boot.Script())
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []struct {
		text string
		want string
	}{
		{"(a b c)", "(a b c)"},
		{"[a (b) ()]", "(a (b) ())"},
		{"(a . b)", "(a . b)"},
		{"(a b . (c))", "(a b c)"},
		{"'x", "(quote x)"},
		{"'(1 2)", "(quote (1 2))"},
		{`"a\tb\"c"`, `"a\tb\"c"`},
		{"1/2 -3 4.5", "1/2\n-3\n9/2"},
		{"#t #f #true #false", "#t\n#f\n#t\n#f"},
		{"|a b| ...", "|a b|\n..."},
		{"x ; comment\ny", "x\ny"},
	} {
		if got := check(t, c.text); got != c.want {
			t.Errorf("%q: expected %q, got %q", c.text, c.want, got)
		}
	}
}

func TestAtoms(t *testing.T) {
	data, err := Text("test", `42 "s" #t sym`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, want := range []cell.I{num.Int(42), str.New("s"), boolean.True, sym.New("sym")} {
		if !data[i].Equal(want) {
			t.Errorf("item %d: expected %s, got %s", i, want, data[i])
		}
	}

	if s := sym.Source(data[3]); s == nil || s.String() != "test:1:11" {
		t.Errorf("unexpected source %v", s)
	}
}

func TestErrors(t *testing.T) {
	for _, text := range []string{
		"(a b",
		"(a b]",
		")",
		"(. a)",
		"(a . b c)",
		"(a .)",
		"'",
		`"\q"`,
	} {
		_, err := Text("test", text)
		if !fault.Is(err, fault.SyntaxError) {
			t.Errorf("%q: expected a syntax error, got %v", text, err)
		}
	}
}

func TestIncremental(t *testing.T) {
	f := &feeder{
		lexer: lexer.New("test"),
		lines: []string{"(a\n", "b) c\n", "d\n"},
	}

	data := []cell.I{}
	err := New(func(c cell.I) {
		data = append(data, c)
	}, f.token).Parse()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := []string{}
	for _, c := range data {
		got = append(got, literal.String(c))
	}

	if strings.Join(got, " ") != "(a b) c d" {
		t.Fatalf("unexpected data %v", got)
	}
}

// A feeder hands the lexer one line at a time, as the REPL does.
type feeder struct {
	lexer *lexer.T
	lines []string
}

func (f *feeder) token() *token.T {
	for {
		if t := f.lexer.Token(); t != nil {
			return t
		}

		if len(f.lines) == 0 {
			return nil
		}

		f.lexer.Scan(f.lines[0])
		f.lines = f.lines[1:]
	}
}
