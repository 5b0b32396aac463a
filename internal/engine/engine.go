// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for toplevel forms.
//
// The engine owns the global environment and the store. Each toplevel
// form is converted to an expression and run on the machine. A form that
// fails leaves the environment and store as they were.
package engine

import (
	"io"
	"log/slog"
	"sort"

	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/show"
	"github.com/michaelmacinnis/cesk/internal/common/struct/env"
	"github.com/michaelmacinnis/cesk/internal/common/struct/expr"
	"github.com/michaelmacinnis/cesk/internal/common/struct/store"
	"github.com/michaelmacinnis/cesk/internal/common/type/prim"
	"github.com/michaelmacinnis/cesk/internal/common/type/undefined"
	"github.com/michaelmacinnis/cesk/internal/common/type/void"
	"github.com/michaelmacinnis/cesk/internal/engine/boot"
	"github.com/michaelmacinnis/cesk/internal/engine/commands"
	"github.com/michaelmacinnis/cesk/internal/engine/machine"
	"github.com/michaelmacinnis/cesk/internal/reader/parser"
	"github.com/michaelmacinnis/cesk/internal/reader/syntax"
)

// T (engine) is a facade in front of the machinery for evaluating code.
type T struct {
	env     *env.T
	log     *slog.Logger
	machine *machine.T
	store   *store.T
}

// New creates a new T. Output primitives write to w. Machine steps are
// logged to log at debug level, truncated to width columns.
func New(w io.Writer, log *slog.Logger, width int) *T {
	if log == nil {
		log = slog.Default()
	}

	e := &T{
		env:     env.Empty(),
		log:     log,
		machine: machine.New(log, width),
		store:   store.Empty(),
	}

	ps := commands.Primitives(w)

	names := make([]string, 0, len(ps))
	for n := range ps {
		names = append(names, n)
	}

	sort.Strings(names)

	for _, n := range names {
		e.env, e.store = env.Bind(n, prim.New(n, ps[n]), e.env, e.store)
	}

	return e
}

// Boot evaluates the prelude.
func (e *T) Boot() error {
	_, err := e.EvaluateString("boot", boot.Script())

	return err
}

// Evaluate runs the toplevel form c and returns its value.
// A definition evaluates to void.
func (e *T) Evaluate(c cell.I) (v cell.I, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, fault.Recover(r)
		}
	}()

	if n, x, ok := syntax.Definition(c); ok {
		return void.Void, e.define(n, x)
	}

	v, s, err := e.machine.Evaluate(syntax.Convert(c), e.env, e.store)
	if err != nil {
		return nil, err
	}

	e.store = s

	return v, nil
}

// EvaluateString reads and evaluates each form in text, stopping at the
// first error. It returns the value of the last form.
func (e *T) EvaluateString(label, text string) (cell.I, error) {
	data, err := parser.Text(label, text)
	if err != nil {
		return nil, err
	}

	var v cell.I = void.Void

	for _, c := range data {
		v, err = e.Evaluate(c)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Names returns the global identifiers and the special form keywords,
// sorted.
func (e *T) Names() []string {
	names := append(e.env.Names(), syntax.Keywords()...)

	sort.Strings(names)

	return names
}

// Show returns v as it would be written in source text.
func (e *T) Show(v cell.I) string {
	return show.Value(v, e.store)
}

// The name is bound to undefined before the value is evaluated so the
// value can refer to it. Redefinition updates the existing binding.
func (e *T) define(n string, x expr.I) error {
	en, s := e.env, e.store

	a, ok := en.Resolve(n)
	if !ok {
		en, s = env.Bind(n, undefined.Undefined, en, s)
		a = en.Lookup(n)
	}

	v, s, err := e.machine.Evaluate(x, en, s)
	if err != nil {
		return err
	}

	e.env, e.store = en, s.Update(a, v)

	e.log.Debug("define", "name", n, "address", a)

	return nil
}
