// Released under an MIT license. See LICENSE.

// Package options parses the command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by --version.
const Version = "cesk 0.1.0"

//nolint:gochecknoglobals
var (
	config      string
	expression  string
	interactive bool
	prelude     bool
	script      string
	terminal    bool
	trace       bool
	usage       = `cesk

Usage:
  cesk [-nt] [-c FILE] SCRIPT
  cesk [-nt] [-c FILE] -e EXPRESSION
  cesk [-int] [-c FILE]
  cesk -h | --help
  cesk --version

Arguments:
  SCRIPT  Path to a Scheme program.

Options:
  -c, --config=FILE            Read settings from FILE.
  -e, --expression=EXPRESSION  Evaluate EXPRESSION and print its value.
  -i, --interactive            Invert interactive mode.
  -n, --no-prelude             Do not load the prelude.
  -t, --trace                  Log every machine step.
  -h, --help                   Display this help.
  --version                    Print cesk version.

If stdin is a TTY and neither a script nor an expression was given,
cesk starts an interactive session. Otherwise it reads the program from
stdin.
`
)

// Config returns the path of the settings file, if one was given.
func Config() string {
	return config
}

// Expression returns the expression to evaluate, if one was given.
func Expression() string {
	return expression
}

// Interactive returns true if cesk should prompt for input.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. It exits after printing help or the version.
func Parse() {
	err := parse(docopt.DefaultParser, os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}
}

// Prelude returns false if the prelude should be skipped.
func Prelude() bool {
	return prelude
}

// Script returns the path of the program to run, if one was given.
func Script() string {
	return script
}

// Terminal returns true if stdin is a TTY.
func Terminal() bool {
	return terminal
}

// Trace returns true if every machine step should be logged.
func Trace() bool {
	return trace
}

func parse(p *docopt.Parser, argv []string, tty bool) error {
	// Docopt reads os.Args when argv is nil.
	if argv == nil {
		argv = []string{}
	}

	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	config, _ = opts.String("--config")
	expression, _ = opts.String("--expression")
	script, _ = opts.String("SCRIPT")
	terminal = tty

	interactive = script == "" && expression == "" && tty

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	skip, _ := opts.Bool("--no-prelude")
	prelude = !skip

	trace, _ = opts.Bool("--trace")

	return nil
}
