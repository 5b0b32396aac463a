// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for Scheme data.
//
//	datum := atom | string | '\'' datum | '(' list ')' | '[' list ']'
//	list  := { datum } [ '.' datum ]
package parser

import (
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/struct/token"
	"github.com/michaelmacinnis/cesk/internal/common/type/boolean"
	"github.com/michaelmacinnis/cesk/internal/common/type/datum"
	"github.com/michaelmacinnis/cesk/internal/common/type/num"
	"github.com/michaelmacinnis/cesk/internal/common/type/pair"
	"github.com/michaelmacinnis/cesk/internal/common/type/str"
	"github.com/michaelmacinnis/cesk/internal/common/type/sym"
	"github.com/michaelmacinnis/cesk/internal/reader/lexer"
)

// T holds the state of the parser.
type T struct {
	active bool            // In the middle of a datum.
	ahead  int             // Lookahead count.
	emit   func(cell.I)    // Function to call to emit a parsed datum.
	item   func() *token.T // Function to call to get another token.
	token  *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(emit func(cell.I), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits data until there are no more tokens.
// It stops at the first syntax error and returns it.
func (p *T) Parse() (err error) {
	defer func() {
		err = fault.Recover(recover())
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		p.active = true
		c := p.datum()
		p.active = false

		p.emit(c)
	}

	return nil
}

// Pending returns true if the parser is waiting for the rest of a datum.
func (p *T) Pending() bool {
	return p.active
}

// Text parses all of text and returns the data it contains.
func Text(label, text string) ([]cell.I, error) {
	l := lexer.New(label)

	// A final newline ends a trailing atom.
	l.Scan(text + "\n")

	data := []cell.I{}
	err := New(func(c cell.I) {
		data = append(data, c)
	}, l.Token).Parse()

	return data, err
}

var closing = map[token.Class]token.Class{ //nolint:gochecknoglobals
	'(': ')',
	'[': ']',
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) datum() cell.I {
	t := p.peek()

	switch {
	case t == nil:
		fault.Raise(fault.SyntaxError, "unexpected end of input")
	case t.Is('(', '['):
		return p.list()
	case t.Is('\''):
		p.consume()

		quote := sym.Token(token.New(token.Symbol, "quote", t.Source()))

		return datum.New(quote, p.datum())
	case t.Is(token.String):
		return p.string(p.consume())
	case t.Is(token.Symbol) && t.Value() != ".":
		return atom(p.consume())
	}

	p.unexpected(t)

	return nil
}

func (p *T) list() cell.I {
	open := p.consume()
	closer := closing[open.Class()]

	items := []cell.I{}
	tail := pair.Null

	for {
		t := p.peek()

		switch {
		case t == nil:
			fault.Raise(fault.SyntaxError, "%s: unterminated list", open.Source())
		case t.Is(closer):
			p.consume()

			if len(items) == 0 {
				return pair.Null
			}

			return &datum.T{Items: items, Source: open.Source(), Tail: tail}
		case t.Is(token.Symbol) && t.Value() == ".":
			if len(items) == 0 {
				p.unexpected(t)
			}

			p.consume()

			tail = p.datum()
			if datum.Is(tail) {
				d := datum.To(tail)
				items = append(items, d.Items...)
				tail = d.Tail
			}

			if !p.peek().Is(closer) {
				p.unexpected(p.peek())
			}
		default:
			items = append(items, p.datum())
		}
	}
}

func (p *T) peek() *token.T {
	if p.ahead == 0 {
		p.token = p.item()
		p.ahead = 1
	}

	return p.token
}

func (p *T) string(t *token.T) cell.I {
	text := t.Value()

	s, err := adapted.ActualBytes(text[1 : len(text)-1])
	if err != nil {
		fault.Raise(fault.SyntaxError, "%s: %s", t.Source(), err.Error())
	}

	return str.New(s)
}

func (p *T) unexpected(t *token.T) {
	if t == nil {
		fault.Raise(fault.SyntaxError, "unexpected end of input")
	}

	fault.Raise(fault.SyntaxError, "%s: unexpected '%s'", t.Source(), t.Value())
}

func atom(t *token.T) cell.I {
	text := t.Value()

	switch text {
	case "#t", "#true":
		return boolean.True
	case "#f", "#false":
		return boolean.False
	}

	if n, ok := num.Parse(text); ok {
		return n
	}

	if strings.ContainsRune(text, '|') {
		text = strings.ReplaceAll(text, "|", "")

		t = token.New(token.Symbol, text, t.Source())
	}

	return sym.Token(t)
}
