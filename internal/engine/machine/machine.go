// Released under an MIT license. See LICENSE.

// Package machine provides the CESK machine: the configurations it steps
// through, the transition function, and the driver that runs a
// configuration until it halts.
//
// A configuration is either an expression to evaluate, with the
// environment to evaluate it in, or a value being returned. Both carry the
// store and the continuation. Step never recurses into itself; every
// pending computation lives in the continuation, so evaluation depth is
// bounded by memory rather than by the Go stack.
package machine

import (
	"context"
	"log/slog"

	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/show"
	"github.com/michaelmacinnis/cesk/internal/common/struct/env"
	"github.com/michaelmacinnis/cesk/internal/common/struct/expr"
	"github.com/michaelmacinnis/cesk/internal/common/struct/kont"
	"github.com/michaelmacinnis/cesk/internal/common/struct/store"
)

// Config is a machine configuration.
type Config interface {
	String() string

	parts() (*store.T, kont.I)
	step() Config
}

// ExprConfig is about to evaluate Expr in Env and pass the result to Kont.
type ExprConfig struct {
	Expr  expr.I
	Env   *env.T
	Store *store.T
	Kont  kont.I
}

// ValueConfig is passing Value to Kont.
type ValueConfig struct {
	Value cell.I
	Store *store.T
	Kont  kont.I
}

func (c *ExprConfig) String() string {
	return "Eval(" + c.Expr.String() + ", " + c.Kont.String() + ")"
}

func (c *ExprConfig) parts() (*store.T, kont.I) {
	return c.Store, c.Kont
}

func (c *ValueConfig) parts() (*store.T, kont.I) {
	return c.Store, c.Kont
}

func (c *ValueConfig) String() string {
	return "Value(" + show.Value(c.Value, c.Store) + ", " + c.Kont.String() + ")"
}

// T (machine) drives configurations to completion.
type T struct {
	log   *slog.Logger
	width int
}

type machine = T

// New creates a machine driver. Steps are logged at debug level with each
// configuration truncated to width columns. A nil log uses slog's default.
func New(log *slog.Logger, width int) *T {
	if log == nil {
		log = slog.Default()
	}

	return &machine{log: log, width: width}
}

// Halted returns true if c is a value being passed to the halt continuation.
func Halted(c Config) bool {
	v, ok := c.(*ValueConfig)
	if !ok {
		return false
	}

	_, ok = v.Kont.(*kont.Halt)

	return ok
}

// Inject creates the initial configuration for evaluating e.
func Inject(e expr.I, en *env.T, s *store.T) Config {
	return &ExprConfig{Expr: e, Env: en, Store: s, Kont: kont.Done()}
}

// Step performs a single transition. A fault raised during the transition
// is returned as an error carrying c as its configuration property.
func Step(c Config) (next Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			next = nil
			err = fault.Annotate(fault.Recover(r), c)
		}
	}()

	return c.step(), nil
}

// Evaluate runs e in en and s until it halts.
func (m *machine) Evaluate(e expr.I, en *env.T, s *store.T) (cell.I, *store.T, error) {
	return m.Run(Inject(e, en, s))
}

// Run steps c until it halts and returns the final value and store.
func (m *machine) Run(c Config) (cell.I, *store.T, error) {
	trace := m.log.Enabled(context.Background(), slog.LevelDebug)

	for n := 0; !Halted(c); n++ {
		if trace {
			s, k := c.parts()

			m.log.Debug("step",
				"n", n,
				"depth", kont.Depth(k),
				"cells", s.Size(),
				"config", show.Truncate(c.String(), m.width),
			)
		}

		next, err := Step(c)
		if err != nil {
			return nil, nil, err
		}

		c = next
	}

	v := c.(*ValueConfig)

	return v.Value, v.Store, nil
}
