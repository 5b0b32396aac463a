// Released under an MIT license. See LICENSE.

/*
Cesk evaluates a small dialect of Scheme on an explicit CESK machine.
Every step of evaluation is a transition from one configuration of
control, environment, store and continuation to the next, so deep
recursion never grows the Go stack and continuations are ordinary values.

Run a script, evaluate an expression, or start an interactive session:

	cesk fib.scm
	cesk -e "(map (lambda (x) (* x x)) '(1 2 3))"
	cesk

Use -t to log each machine step.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/michaelmacinnis/cesk/internal/common/type/void"
	"github.com/michaelmacinnis/cesk/internal/engine"
	"github.com/michaelmacinnis/cesk/internal/system/config"
	"github.com/michaelmacinnis/cesk/internal/system/options"
	"github.com/michaelmacinnis/cesk/internal/system/terminal"
	"github.com/michaelmacinnis/cesk/internal/ui"
)

func main() {
	options.Parse()

	settings, err := config.Load(options.Config())
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	level := slog.LevelInfo
	if options.Trace() || settings.Trace {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	e := engine.New(os.Stdout, log, width(settings))

	if options.Prelude() {
		if err := prelude(e, settings); err != nil {
			ui.Report(os.Stderr, log, err)
			os.Exit(1)
		}
	}

	if options.Interactive() {
		ui.Run(e, settings, log, os.Stdout, os.Stderr)

		return
	}

	if err := run(e); err != nil {
		ui.Report(os.Stderr, log, err)
		os.Exit(1)
	}
}

func prelude(e *engine.T, settings *config.T) error {
	if err := e.Boot(); err != nil {
		return err
	}

	if settings.Prelude == "" {
		return nil
	}

	text, err := os.ReadFile(settings.Prelude)
	if err != nil {
		return err
	}

	_, err = e.EvaluateString(settings.Prelude, string(text))

	return err
}

func run(e *engine.T) error {
	if expression := options.Expression(); expression != "" {
		v, err := e.EvaluateString("-e", expression)
		if err != nil {
			return err
		}

		if !void.Is(v) {
			fmt.Println(e.Show(v))
		}

		return nil
	}

	label := options.Script()

	var (
		text []byte
		err  error
	)

	if label == "" {
		label = "-"
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(label)
	}

	if err != nil {
		return err
	}

	_, err = e.EvaluateString(label, string(text))

	return err
}

// Trace output is truncated to the width of the terminal, if there is one.
func width(settings *config.T) int {
	if settings.Width > 0 {
		return settings.Width
	}

	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) {
		return terminal.Width(int(fd))
	}

	return terminal.DefaultWidth
}
