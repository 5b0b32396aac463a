// Released under an MIT license. See LICENSE.

package machine

import (
	"github.com/joomcode/errorx"

	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/truth"
	"github.com/michaelmacinnis/cesk/internal/common/struct/env"
	"github.com/michaelmacinnis/cesk/internal/common/struct/expr"
	"github.com/michaelmacinnis/cesk/internal/common/struct/kont"
	"github.com/michaelmacinnis/cesk/internal/common/struct/list"
	"github.com/michaelmacinnis/cesk/internal/common/struct/store"
	"github.com/michaelmacinnis/cesk/internal/common/type/closure"
	"github.com/michaelmacinnis/cesk/internal/common/type/cont"
	"github.com/michaelmacinnis/cesk/internal/common/type/pair"
	"github.com/michaelmacinnis/cesk/internal/common/type/prim"
	"github.com/michaelmacinnis/cesk/internal/common/type/void"
	"github.com/michaelmacinnis/cesk/internal/common/validate"
)

//nolint:cyclop,funlen
func (c *ValueConfig) step() Config {
	v, s := c.Value, c.Store

	switch k := c.Kont.(type) {
	case *kont.Halt:
		return c

	case *kont.If:
		if truth.Value(v) {
			return &ExprConfig{Expr: k.Then, Env: k.Env, Store: s, Kont: k.K}
		}

		return &ExprConfig{Expr: k.Else, Env: k.Env, Store: s, Kont: k.K}

	case *kont.And:
		if !truth.Value(v) {
			return &ValueConfig{Value: v, Store: s, Kont: k.K}
		}

		return next(v, k.Rest, k.Env, s, k.K, func(rest *list.T[expr.I]) kont.I {
			return &kont.And{Env: k.Env, K: k.K, Rest: rest}
		})

	case *kont.Or:
		if truth.Value(v) {
			return &ValueConfig{Value: v, Store: s, Kont: k.K}
		}

		return next(v, k.Rest, k.Env, s, k.K, func(rest *list.T[expr.I]) kont.I {
			return &kont.Or{Env: k.Env, K: k.K, Rest: rest}
		})

	case *kont.Begin:
		return next(v, k.Rest, k.Env, s, k.K, func(rest *list.T[expr.I]) kont.I {
			return &kont.Begin{Env: k.Env, K: k.K, Rest: rest}
		})

	case *kont.Set:
		return &ValueConfig{Value: void.Void, Store: s.Update(k.Addr, v), Kont: k.K}

	case *kont.Let:
		names := list.Cons(k.Name, k.Names)
		values := list.Cons(v, k.Values)

		if k.Rest.IsEmpty() {
			e := k.Env
			for ; !names.IsEmpty(); names, values = names.Cdr(), values.Cdr() {
				e, s = env.Bind(names.Car(), values.Car(), e, s)
			}

			return &ExprConfig{Expr: k.Body, Env: e, Store: s, Kont: k.K}
		}

		b := k.Rest.Car()

		return &ExprConfig{Expr: b.Init, Env: k.Env, Store: s, Kont: &kont.Let{
			Body:   k.Body,
			Env:    k.Env,
			K:      k.K,
			Name:   b.Name,
			Names:  names,
			Rest:   k.Rest.Cdr(),
			Values: values,
		}}

	case *kont.Letrec:
		s = s.Update(k.Addr, v)

		if k.Rest.IsEmpty() {
			return &ExprConfig{Expr: k.Body, Env: k.Env, Store: s, Kont: k.K}
		}

		b := k.Rest.Car()

		return &ExprConfig{Expr: b.Init, Env: k.Env, Store: s, Kont: &kont.Letrec{
			Addr: k.Env.Lookup(b.Name),
			Body: k.Body,
			Env:  k.Env,
			K:    k.K,
			Name: b.Name,
			Rest: k.Rest.Cdr(),
		}}

	case *kont.Operator:
		if k.Operands.IsEmpty() {
			return apply(v, nil, s, k.K)
		}

		return &ExprConfig{Expr: k.Operands.Car(), Env: k.Env, Store: s, Kont: &kont.Operand{
			Env:  k.Env,
			Fn:   v,
			K:    k.K,
			Rest: k.Operands.Cdr(),
		}}

	case *kont.Operand:
		done := list.Cons(v, k.Done)

		if k.Rest.IsEmpty() {
			args := list.Foldr(func(v cell.I, acc []cell.I) []cell.I {
				return append(acc, v)
			}, make([]cell.I, 0, done.Len()), done)

			return apply(k.Fn, args, s, k.K)
		}

		return &ExprConfig{Expr: k.Rest.Car(), Env: k.Env, Store: s, Kont: &kont.Operand{
			Done: done,
			Env:  k.Env,
			Fn:   k.Fn,
			K:    k.K,
			Rest: k.Rest.Cdr(),
		}}
	}

	fault.Raise(errorx.InternalError, "unknown continuation %T", c.Kont)

	return nil
}

func apply(f cell.I, args []cell.I, s *store.T, k kont.I) Config {
	switch f := f.(type) {
	case *closure.T:
		l := f.Lambda
		n := len(l.Formals)

		if l.Rest == "" {
			validate.Fixed(args, n, n)
		} else {
			validate.Variadic(args, n)
		}

		e := f.Env
		for i, name := range l.Formals {
			e, s = env.Bind(name, args[i], e, s)
		}

		if l.Rest != "" {
			var rest cell.I

			rest, s = pair.List(args[n:], pair.Null, s)
			e, s = env.Bind(l.Rest, rest, e, s)
		}

		return &ExprConfig{Expr: l.Body, Env: e, Store: s, Kont: k}

	case *prim.T:
		v, s := f.Apply(args, s)

		return &ValueConfig{Value: v, Store: s, Kont: k}

	case *cont.T:
		validate.Fixed(args, 1, 1)

		return &ValueConfig{Value: args[0], Store: s, Kont: f.K}
	}

	fault.Raise(fault.NotApplicable, "%s is not applicable", f.Name())

	return nil
}

// Evaluate the first of rest and pass the result to k, or to the frame
// built by more if anything remains after it. With nothing left, v is
// passed to k.
func next(
	v cell.I, rest *list.T[expr.I], e *env.T, s *store.T, k kont.I, more func(*list.T[expr.I]) kont.I,
) Config {
	if rest.IsEmpty() {
		return &ValueConfig{Value: v, Store: s, Kont: k}
	}

	x := rest.Car()
	if !rest.Cdr().IsEmpty() {
		k = more(rest.Cdr())
	}

	return &ExprConfig{Expr: x, Env: e, Store: s, Kont: k}
}
