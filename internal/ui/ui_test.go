// Released under an MIT license. See LICENSE.

package ui

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/struct/loc"
)

func TestCompleter(t *testing.T) {
	complete := completer(func() []string {
		return []string{"map", "length", "list", "list-tail", "lambda"}
	})

	for _, tc := range []struct {
		line string
		pos  int
		head string
		cs   []string
		tail string
	}{
		{"(li", 3, "(", []string{"list", "list-tail"}, ""},
		{"(map (la", 8, "(map (", []string{"lambda"}, ""},
		{"(le x)", 3, "(", []string{"length"}, " x)"},
		{"m", 1, "", []string{"map"}, ""},
		{"(x 'l", 5, "(x '", []string{"lambda", "length", "list", "list-tail"}, ""},
	} {
		head, cs, tail := complete(tc.line, tc.pos)

		if head != tc.head || tail != tc.tail {
			t.Errorf("%q: expected %q|%q, got %q|%q", tc.line, tc.head, tc.tail, head, tail)
		}

		if strings.Join(cs, " ") != strings.Join(tc.cs, " ") {
			t.Errorf("%q: expected %v, got %v", tc.line, tc.cs, cs)
		}
	}
}

func TestReport(t *testing.T) {
	var out, logged bytes.Buffer

	log := slog.New(slog.NewTextHandler(&logged, &slog.HandlerOptions{Level: slog.LevelDebug}))

	err := fault.Annotate(fault.ArityMismatch.New("expected 1 argument, passed 2"), loc.Start("here"))

	Report(&out, log, err)

	if !strings.Contains(out.String(), "expected 1 argument, passed 2") {
		t.Errorf("unexpected report %q", out.String())
	}

	if !strings.Contains(logged.String(), "config=here:1:1") {
		t.Errorf("unexpected log %q", logged.String())
	}
}
