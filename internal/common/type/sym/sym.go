// Released under an MIT license. See LICENSE.

// Package sym provides the symbol cell type. Symbols are interned so that
// symbols with the same name share one *T.
package sym

import (
	"strings"
	"sync"
	"unicode"

	"github.com/michaelmacinnis/cesk/internal/common"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/literal"
)

const name = "symbol"

// T (sym) wraps Go's string type.
type T string

type sym = T

// New creates a sym cell.
func New(v string) cell.I {
	return intern(v)
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && To(c) == s
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	v := string(*s)
	if v == "" || strings.IndexFunc(v, special) >= 0 {
		return "|" + v + "|"
	}

	return v
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

// The reader interns symbols from its own goroutine.
func intern(v string) *sym {
	cachel.RLock()
	p, ok := cache[v]
	cachel.RUnlock()

	if ok {
		return p
	}

	cachel.Lock()
	defer cachel.Unlock()

	if p, ok = cache[v]; ok {
		return p
	}

	s := sym(v)
	p = &s
	cache[v] = p

	return p
}

func special(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune("()[]'\";|", r)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
