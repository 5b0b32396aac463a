// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/michaelmacinnis/cesk/internal/common/struct/loc"
	"github.com/michaelmacinnis/cesk/internal/common/struct/token"
)

func TestList(t *testing.T) {
	h := setup(t, "List")

	h.scan("(a 12)\n",
		h.punct('('),
		h.symbol("a"),
		h.space(1),
		h.symbol("12"),
		h.punct(')'),
		nil,
	)
}

func TestQuoteAndDot(t *testing.T) {
	h := setup(t, "QuoteAndDot")

	h.scan("'(x . y)\n",
		h.punct('\''),
		h.punct('('),
		h.symbol("x"),
		h.space(1),
		h.symbol("."),
		h.space(1),
		h.symbol("y"),
		h.punct(')'),
		nil,
	)
}

func TestBrackets(t *testing.T) {
	h := setup(t, "Brackets")

	h.scan("[x]\n",
		h.punct('['),
		h.symbol("x"),
		h.punct(']'),
		nil,
	)
}

func TestString(t *testing.T) {
	h := setup(t, "String")

	h.scan(`(display "a \"b\"")`+"\n",
		h.punct('('),
		h.symbol("display"),
		h.space(1),
		h.other(token.String, `"a \"b\""`),
		h.punct(')'),
		nil,
	)
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("; ignored (\nx ; also ignored\n",
		h.newline(),
		h.symbol("x"),
		nil,
	)
}

func TestBars(t *testing.T) {
	h := setup(t, "Bars")

	h.scan("|a b|c d\n",
		h.symbol("|a b|c"),
		h.space(1),
		h.symbol("d"),
		nil,
	)
}

func TestAtomsEndAtDelimiters(t *testing.T) {
	h := setup(t, "Delimiters")

	h.scan("a'b\"c\"\n",
		h.symbol("a"),
		h.punct('\''),
		h.symbol("b"),
		h.other(token.String, `"c"`),
		nil,
	)
}

func TestIncremental(t *testing.T) {
	h := setup(t, "Incremental")

	h.scan("(f \"a\n",
		h.punct('('),
		h.symbol("f"),
		h.space(1),
		nil,
	)

	// The string started on the previous line.
	s := h.other(token.String, "\"a\nb\"")

	h.line(2, 3)
	h.scan("b\")\n",
		s,
		h.punct(')'),
		nil,
	)
}

func TestUnfinishedAtom(t *testing.T) {
	h := setup(t, "Unfinished")

	h.scan("abc", nil)

	h.scan("def\n",
		h.symbol("abcdef"),
		nil,
	)
}

type harness struct {
	index  int
	lexer  *T
	source loc.T
	t      *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{
		index:  1,
		lexer:  New(label),
		source: *loc.Start(label),
		t:      t,
	}
}

// Nil in tokens means there are no more tokens.
func (h *harness) expect(tokens ...*token.T) {
	h.t.Helper()

	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case a.String() != e.String():
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

//nolint:gochecknoglobals
var skip = token.New(token.Error, "", nil)

func (h *harness) line(line, index int) {
	h.source.Line = line
	h.index = index
}

func (h *harness) newline() *token.T {
	h.index = 1
	h.source.Line++

	return skip
}

func (h *harness) other(id token.Class, s string) *token.T {
	source := h.source
	source.Char = h.index
	h.index += len(s)

	return token.New(id, s, &source)
}

func (h *harness) punct(r rune) *token.T {
	return h.other(token.Class(r), string(r))
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.t.Helper()

	h.lexer.Scan(s)
	h.expect(tokens...)
}

func (h *harness) space(n int) *token.T {
	h.index += n

	return skip
}

func (h *harness) symbol(s string) *token.T {
	return h.other(token.Symbol, s)
}
