// Released under an MIT license. See LICENSE.

package machine

import (
	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/struct/env"
	"github.com/michaelmacinnis/cesk/internal/common/struct/expr"
	"github.com/michaelmacinnis/cesk/internal/common/struct/kont"
	"github.com/michaelmacinnis/cesk/internal/common/struct/list"
	"github.com/michaelmacinnis/cesk/internal/common/struct/store"
	"github.com/michaelmacinnis/cesk/internal/common/type/boolean"
	"github.com/michaelmacinnis/cesk/internal/common/type/closure"
	"github.com/michaelmacinnis/cesk/internal/common/type/cont"
	"github.com/michaelmacinnis/cesk/internal/common/type/datum"
	"github.com/michaelmacinnis/cesk/internal/common/type/num"
	"github.com/michaelmacinnis/cesk/internal/common/type/pair"
	"github.com/michaelmacinnis/cesk/internal/common/type/str"
	"github.com/michaelmacinnis/cesk/internal/common/type/sym"
	"github.com/michaelmacinnis/cesk/internal/common/type/undefined"
)

//nolint:cyclop,funlen
func (c *ExprConfig) step() Config {
	e, s, k := c.Env, c.Store, c.Kont

	switch x := c.Expr.(type) {
	case *expr.Number:
		return c.value(num.Rat(x.Value), s)

	case *expr.String:
		return c.value(str.New(x.Value), s)

	case *expr.Boolean:
		return c.value(boolean.Bool(x.Value), s)

	case *expr.Quote:
		return c.value(reify(x.Datum, s))

	case *expr.Ref:
		return c.value(s.Deref(e.Lookup(x.Name)), s)

	case *expr.Lambda:
		names := x.Formals
		if x.Rest != "" {
			names = append(names[:len(names):len(names)], x.Rest)
		}

		distinct("lambda", names)
		required("lambda", x.Body)

		return c.value(closure.New(x, e), s)

	case *expr.If:
		required("if", x.Test, x.Then, x.Else)

		return c.eval(x.Test, &kont.If{Else: x.Else, Env: e, K: k, Then: x.Then})

	case *expr.And:
		required("and", x.Args...)

		switch len(x.Args) {
		case 0:
			return c.value(boolean.True, s)
		case 1:
			return c.eval(x.Args[0], k)
		}

		return c.eval(x.Args[0], &kont.And{Env: e, K: k, Rest: list.New(x.Args[1:]...)})

	case *expr.Or:
		required("or", x.Args...)

		switch len(x.Args) {
		case 0:
			return c.value(boolean.False, s)
		case 1:
			return c.eval(x.Args[0], k)
		}

		return c.eval(x.Args[0], &kont.Or{Env: e, K: k, Rest: list.New(x.Args[1:]...)})

	case *expr.Begin:
		if len(x.Body) == 0 {
			fault.Raise(fault.MalformedSpecialForm, "begin: empty body")
		}

		required("begin", x.Body...)

		if len(x.Body) == 1 {
			return c.eval(x.Body[0], k)
		}

		return c.eval(x.Body[0], &kont.Begin{Env: e, K: k, Rest: list.New(x.Body[1:]...)})

	case *expr.Let:
		bindings("let", x.Bindings, x.Body)

		if len(x.Bindings) == 0 {
			return c.eval(x.Body, k)
		}

		b := x.Bindings[0]

		return c.eval(b.Init, &kont.Let{
			Body: x.Body,
			Env:  e,
			K:    k,
			Name: b.Name,
			Rest: list.New(x.Bindings[1:]...),
		})

	case *expr.Letrec:
		bindings("letrec", x.Bindings, x.Body)

		for _, b := range x.Bindings {
			e, s = env.Bind(b.Name, undefined.Undefined, e, s)
		}

		if len(x.Bindings) == 0 {
			return &ExprConfig{Expr: x.Body, Env: e, Store: s, Kont: k}
		}

		b := x.Bindings[0]

		return &ExprConfig{Expr: b.Init, Env: e, Store: s, Kont: &kont.Letrec{
			Addr: e.Lookup(b.Name),
			Body: x.Body,
			Env:  e,
			K:    k,
			Name: b.Name,
			Rest: list.New(x.Bindings[1:]...),
		}}

	case *expr.LetCC:
		required("let/cc", x.Body)

		e, s = env.Bind(x.Name, cont.New(k), e, s)

		return &ExprConfig{Expr: x.Body, Env: e, Store: s, Kont: k}

	case *expr.Set:
		required("set!", x.Value)

		return c.eval(x.Value, &kont.Set{Addr: e.Lookup(x.Name), K: k})

	case *expr.App:
		required("application", x.Operator)
		required("application", x.Operands...)

		return c.eval(x.Operator, &kont.Operator{Env: e, K: k, Operands: list.New(x.Operands...)})

	case nil:
		fault.Raise(fault.MalformedSpecialForm, "missing expression")
	}

	fault.Raise(fault.MalformedSpecialForm, "unknown expression %T", c.Expr)

	return nil
}

// Evaluate x in the same environment and store, passing the result to k.
func (c *ExprConfig) eval(x expr.I, k kont.I) Config {
	return &ExprConfig{Expr: x, Env: c.Env, Store: c.Store, Kont: k}
}

// Pass v to the same continuation.
func (c *ExprConfig) value(v cell.I, s *store.T) Config {
	return &ValueConfig{Value: v, Store: s, Kont: c.Kont}
}

func bindings(form string, bs []expr.Binding, body expr.I) {
	names := make([]string, len(bs))
	for i, b := range bs {
		names[i] = b.Name

		required(form, b.Init)
	}

	distinct(form, names)
	required(form, body)
}

func distinct(form string, names []string) {
	seen := make(map[string]bool, len(names))

	for _, n := range names {
		if seen[n] {
			fault.Raise(fault.MalformedSpecialForm, "%s: duplicate name %s", form, n)
		}

		seen[n] = true
	}
}

func required(form string, xs ...expr.I) {
	for _, x := range xs {
		if x == nil {
			fault.Raise(fault.MalformedSpecialForm, "%s: missing expression", form)
		}
	}
}

// Quoted lists become fresh pairs each time the quote is evaluated.
func reify(d cell.I, s *store.T) (cell.I, *store.T) {
	switch {
	case datum.Is(d):
		l := datum.To(d)

		items := make([]cell.I, len(l.Items))
		for i, v := range l.Items {
			items[i], s = reify(v, s)
		}

		var tail cell.I

		tail, s = reify(l.Tail, s)

		return pair.List(items, tail, s)

	case sym.Is(d):
		return sym.New(sym.To(d).String()), s
	}

	return d, s
}
