// Released under an MIT license. See LICENSE.

// Package reader turns lines of text into data as they arrive.
//
// The parser runs in its own goroutine and blocks waiting for the next line
// whenever the lexer runs out of tokens. Each call to Scan hands over one
// line and returns every datum that line completed.
package reader

import (
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/struct/token"
	"github.com/michaelmacinnis/cesk/internal/reader/lexer"
	"github.com/michaelmacinnis/cesk/internal/reader/parser"
)

// T (reader) encapsulates the lexer and parser.
type T struct {
	e    chan error
	i    chan string
	name string
	o    chan []cell.I
	p    *parser.T
	s    *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	r := &T{name: name}

	r.start()

	return r
}

// Close terminates the reader.
func (r *reader) Close() {
	close(r.i)
}

// Pending returns true if the reader holds part of an unfinished datum.
func (r *reader) Pending() bool {
	return r.p.Pending() || r.s.Pending()
}

// Scan reads the line and returns the data it completed, if any.
// After an error the reader discards any unfinished datum and starts over.
func (r *reader) Scan(line string) ([]cell.I, error) {
	r.i <- line

	select {
	case c := <-r.o:
		return c, nil
	case err := <-r.e:
		r.start()

		return nil, err
	}
}

func (r *reader) next() bool {
	line, ok := <-r.i
	if ok {
		r.s.Scan(line)
	}

	return ok
}

func (r *reader) start() {
	r.e = make(chan error, 1)
	r.i = make(chan string)
	r.o = make(chan []cell.I)
	r.s = lexer.New(r.name)

	var vs []cell.I

	r.p = parser.New(func(c cell.I) {
		vs = append(vs, c)
	}, func() *token.T {
		t := r.s.Token()

		for t == nil {
			r.o <- vs

			vs = nil

			if !r.next() {
				return nil
			}

			t = r.s.Token()
		}

		return t
	})

	// Each goroutine uses the channels it was started with.
	go func(e chan error, p *parser.T) {
		if !r.next() {
			close(e)

			return
		}

		if err := p.Parse(); err != nil {
			e <- err
		}

		close(e)
	}(r.e, r.p)
}
