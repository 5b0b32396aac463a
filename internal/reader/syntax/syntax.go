// Released under an MIT license. See LICENSE.

// Package syntax converts data produced by the reader into expressions.
//
// Special forms are recognized by the symbol at the head of a list. Their
// keywords are reserved: (if ...) is always a conditional. Any other list is
// an application.
package syntax

import (
	"fmt"

	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/literal"
	"github.com/michaelmacinnis/cesk/internal/common/struct/expr"
	"github.com/michaelmacinnis/cesk/internal/common/struct/loc"
	"github.com/michaelmacinnis/cesk/internal/common/type/boolean"
	"github.com/michaelmacinnis/cesk/internal/common/type/datum"
	"github.com/michaelmacinnis/cesk/internal/common/type/num"
	"github.com/michaelmacinnis/cesk/internal/common/type/pair"
	"github.com/michaelmacinnis/cesk/internal/common/type/str"
	"github.com/michaelmacinnis/cesk/internal/common/type/sym"
)

type form func(*datum.T) expr.I

//nolint:gochecknoglobals
var forms map[string]form

// Convert turns the datum c into an expression.
func Convert(c cell.I) expr.I {
	switch {
	case num.Is(c):
		return &expr.Number{Value: num.To(c).Rat()}
	case str.Is(c):
		return &expr.String{Value: str.To(c).String()}
	case boolean.Is(c):
		return &expr.Boolean{Value: boolean.To(c).Bool()}
	case sym.Is(c):
		return &expr.Ref{Name: sym.To(c).String()}
	case datum.Is(c):
		return compound(datum.To(c))
	case c == pair.Null:
		fault.Raise(fault.MalformedSpecialForm, "empty application")
	}

	fault.Raise(fault.MalformedSpecialForm, "%s cannot be evaluated", c.Name())

	return nil
}

// Definition recognizes the toplevel forms (define name value) and
// (define (name . formals) body ...). It returns false for anything else.
func Definition(c cell.I) (string, expr.I, bool) {
	if !datum.Is(c) {
		return "", nil, false
	}

	d := datum.To(c)
	if !keyword(d.Head(), "define") {
		return "", nil, false
	}

	parts := proper(d, "define")
	if len(parts) < 2 {
		malformed(d, "define: expected a name")
	}

	target := parts[0]
	if sym.Is(target) {
		if len(parts) != 2 {
			malformed(d, "define: expected a single value")
		}

		return sym.To(target).String(), Convert(parts[1]), true
	}

	if !datum.Is(target) || !sym.Is(datum.To(target).Head()) {
		malformed(d, "define: expected a name, got %s", literal.String(target))
	}

	t := datum.To(target)

	names, rest := formals(d, datum.Dotted(t.Items[1:], t.Tail))

	return sym.To(t.Head()).String(), &expr.Lambda{
		Formals: names,
		Rest:    rest,
		Body:    body(parts[1:]),
	}, true
}

// Keywords returns the reserved words that begin special forms.
func Keywords() []string {
	ks := make([]string, 0, len(forms))
	for k := range forms {
		ks = append(ks, k)
	}

	return ks
}

// Where returns the source location of the datum c, if known.
func Where(c cell.I) *loc.T {
	if datum.Is(c) {
		d := datum.To(c)
		if d.Source != nil {
			return d.Source
		}

		return sym.Source(d.Head())
	}

	return sym.Source(c)
}

func and(d *datum.T) expr.I {
	return &expr.And{Args: operands(proper(d, "and"))}
}

func begin(d *datum.T) expr.I {
	parts := proper(d, "begin")
	if len(parts) == 0 {
		malformed(d, "begin: empty body")
	}

	return &expr.Begin{Body: operands(parts)}
}

func body(parts []cell.I) expr.I {
	if len(parts) == 1 {
		return Convert(parts[0])
	}

	return &expr.Begin{Body: operands(parts)}
}

func compound(d *datum.T) expr.I {
	if sym.Is(d.Head()) {
		if f, ok := forms[sym.To(d.Head()).String()]; ok {
			return f(d)
		}
	}

	if !d.Proper() {
		malformed(d, "application: improper argument list")
	}

	return &expr.App{
		Operator: Convert(d.Head()),
		Operands: operands(d.Items[1:]),
	}
}

func conditional(d *datum.T) expr.I {
	parts := proper(d, "if")
	if len(parts) != 3 {
		malformed(d, "if: expected test, consequent and alternative")
	}

	return &expr.If{
		Test: Convert(parts[0]),
		Then: Convert(parts[1]),
		Else: Convert(parts[2]),
	}
}

func formals(d *datum.T, c cell.I) ([]string, string) {
	if sym.Is(c) {
		return nil, sym.To(c).String()
	}

	if c == pair.Null {
		return nil, ""
	}

	if !datum.Is(c) {
		malformed(d, "lambda: expected formals, got %s", literal.String(c))
	}

	f := datum.To(c)

	names := make([]string, len(f.Items))
	for i, v := range f.Items {
		names[i] = name(d, "lambda", v)
	}

	rest := ""
	if !f.Proper() {
		rest = name(d, "lambda", f.Tail)
	}

	return names, rest
}

func keyword(c cell.I, k string) bool {
	return sym.Is(c) && sym.To(c).String() == k
}

// Definitions are only recognized at toplevel.
func define(d *datum.T) expr.I {
	malformed(d, "define: not allowed here")

	return nil
}

func lambda(d *datum.T) expr.I {
	parts := proper(d, "lambda")
	if len(parts) < 2 {
		malformed(d, "lambda: expected formals and a body")
	}

	names, rest := formals(d, parts[0])

	return &expr.Lambda{Formals: names, Rest: rest, Body: body(parts[1:])}
}

func let(d *datum.T) expr.I {
	bs, b := scope(d, "let")

	return &expr.Let{Bindings: bs, Body: b}
}

func letcc(d *datum.T) expr.I {
	parts := proper(d, "let/cc")
	if len(parts) < 2 {
		malformed(d, "let/cc: expected a name and a body")
	}

	return &expr.LetCC{Name: name(d, "let/cc", parts[0]), Body: body(parts[1:])}
}

func letrec(d *datum.T) expr.I {
	bs, b := scope(d, "letrec")

	return &expr.Letrec{Bindings: bs, Body: b}
}

func malformed(d *datum.T, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if l := Where(d); l != nil {
		msg = l.String() + ": " + msg
	}

	fault.Raise(fault.MalformedSpecialForm, "%s", msg)
}

func name(d *datum.T, form string, c cell.I) string {
	if !sym.Is(c) {
		malformed(d, "%s: expected a name, got %s", form, literal.String(c))
	}

	return sym.To(c).String()
}

func operands(cs []cell.I) []expr.I {
	xs := make([]expr.I, len(cs))
	for i, c := range cs {
		xs[i] = Convert(c)
	}

	return xs
}

func or(d *datum.T) expr.I {
	return &expr.Or{Args: operands(proper(d, "or"))}
}

// Returns everything after the keyword.
func proper(d *datum.T, form string) []cell.I {
	if !d.Proper() {
		malformed(d, "%s: improper form", form)
	}

	return d.Items[1:]
}

func quote(d *datum.T) expr.I {
	parts := proper(d, "quote")
	if len(parts) != 1 {
		malformed(d, "quote: expected a single datum")
	}

	return &expr.Quote{Datum: parts[0]}
}

func scope(d *datum.T, form string) ([]expr.Binding, expr.I) {
	parts := proper(d, form)
	if len(parts) < 2 {
		malformed(d, "%s: expected bindings and a body", form)
	}

	var items []cell.I

	switch {
	case parts[0] == pair.Null:
	case datum.Is(parts[0]) && datum.To(parts[0]).Proper():
		items = datum.To(parts[0]).Items
	default:
		malformed(d, "%s: expected a list of bindings", form)
	}

	bs := make([]expr.Binding, len(items))

	for i, item := range items {
		if !datum.Is(item) {
			malformed(d, "%s: expected (name value), got %s", form, literal.String(item))
		}

		b := datum.To(item)
		if !b.Proper() || len(b.Items) != 2 {
			malformed(d, "%s: expected (name value), got %s", form, b.Literal())
		}

		bs[i] = expr.Binding{Name: name(d, form, b.Items[0]), Init: Convert(b.Items[1])}
	}

	return bs, body(parts[1:])
}

func set(d *datum.T) expr.I {
	parts := proper(d, "set!")
	if len(parts) != 2 {
		malformed(d, "set!: expected a name and a value")
	}

	return &expr.Set{Name: name(d, "set!", parts[0]), Value: Convert(parts[1])}
}

//nolint:gochecknoinits
func init() {
	forms = map[string]form{
		"and":    and,
		"begin":  begin,
		"define": define,
		"if":     conditional,
		"lambda": lambda,
		"let":    let,
		"let/cc": letcc,
		"letrec": letrec,
		"or":     or,
		"quote":  quote,
		"set!":   set,
	}
}
