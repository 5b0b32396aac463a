// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface.
package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/type/void"
	"github.com/michaelmacinnis/cesk/internal/reader"
	"github.com/michaelmacinnis/cesk/internal/system/config"
	"github.com/michaelmacinnis/cesk/internal/system/history"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process parsed data.
type Evaluator interface {
	Evaluate(c cell.I) (cell.I, error)
	Names() []string
	Show(v cell.I) string
}

// Report writes err to w. The configuration that failed, if any, is logged
// at debug level.
func Report(w io.Writer, log *slog.Logger, err error) {
	fmt.Fprintln(w, err.Error())

	if c, ok := fault.ConfigurationOf(err); ok {
		log.Debug("failed", "config", c.String())
	}
}

// Run prompts for lines, evaluates each datum as it is completed and
// prints the values to stdout. It returns when input ends.
func Run(e Evaluator, settings *config.T, log *slog.Logger, stdout, stderr io.Writer) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e.Names))

	if settings.History != "" {
		_ = history.Load(settings.History, cli.ReadHistory)
	}

	r := reader.New("repl")

	for {
		prompt := settings.Prompt
		if r.Pending() {
			prompt = strings.Repeat(" ", runewidth.StringWidth(prompt))
		}

		line, err := cli.Prompt(prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			// Discard any unfinished datum.
			r.Close()
			r = reader.New("repl")

			continue
		default:
			r.Close()

			if settings.History != "" {
				if err := history.Save(settings.History, cli.WriteHistory); err != nil {
					log.Warn("saving history", "error", err)
				}
			}

			fmt.Fprintln(stdout)

			return
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		data, err := r.Scan(line + "\n")
		if err != nil {
			Report(stderr, log, err)

			continue
		}

		for _, c := range data {
			v, err := e.Evaluate(c)
			if err != nil {
				Report(stderr, log, err)

				break
			}

			if !void.Is(v) {
				fmt.Fprintln(stdout, e.Show(v))
			}
		}
	}
}

// Characters that end the word being completed.
const delimiters = "\t\n\r ()[]\";'"

func completer(names func() []string) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		head, tail := line[:pos], line[pos:]

		start := strings.LastIndexAny(head, delimiters) + 1
		prefix := head[start:]

		var cs []string

		for _, n := range names() {
			if strings.HasPrefix(n, prefix) {
				cs = append(cs, n)
			}
		}

		sort.Strings(cs)

		return head[:start], cs, tail
	}
}
