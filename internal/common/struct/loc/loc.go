// Released under an MIT license. See LICENSE.

// Package loc records where in the source a token was read.
package loc

import (
	"strconv"
)

// T (loc) is a position in a named source.
type T struct {
	Char int    // Column, counting from 1.
	Line int    // Line, counting from 1.
	Name string // Script path, "-e", or the REPL label.
}

type loc = T

// Start returns the first position in the source called name.
func Start(name string) *T {
	return &loc{Char: 1, Line: 1, Name: name}
}

func (l *loc) String() string {
	if l == nil {
		return "?"
	}

	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
