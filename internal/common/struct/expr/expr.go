// Released under an MIT license. See LICENSE.

// Package expr provides the expression tree evaluated by the machine.
//
// Expressions are immutable once built and may be shared freely. The set
// of variants is closed: I has an unexported method so only this package
// can add to it.
package expr

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/literal"
)

// I (expr) is any expression.
type I interface {
	String() string

	expr()
}

// Number is a numeric literal.
type Number struct {
	Value *big.Rat
}

// String is a string literal.
type String struct {
	Value string
}

// Boolean is #t or #f.
type Boolean struct {
	Value bool
}

// Quote yields its datum without evaluating it.
type Quote struct {
	Datum cell.I
}

// Ref is a reference to an identifier.
type Ref struct {
	Name string
}

// Lambda creates a closure. If Rest is not empty, extra arguments are
// collected into a list bound to Rest.
type Lambda struct {
	Formals []string
	Rest    string
	Body    I
}

// Binding pairs a name with its initializer in let and letrec.
type Binding struct {
	Name string
	Init I
}

// Let binds names to values computed in the enclosing environment.
type Let struct {
	Bindings []Binding
	Body     I
}

// Letrec binds names to values computed with those names in scope.
type Letrec struct {
	Bindings []Binding
	Body     I
}

// LetCC binds the current continuation to Name.
type LetCC struct {
	Name string
	Body I
}

// Set assigns a new value to an existing binding.
type Set struct {
	Name  string
	Value I
}

// If is a two-way conditional.
type If struct {
	Test I
	Then I
	Else I
}

// And evaluates Args until one is false.
type And struct {
	Args []I
}

// Or evaluates Args until one is true.
type Or struct {
	Args []I
}

// Begin evaluates Body in order and yields the last value.
type Begin struct {
	Body []I
}

// App is a procedure application.
type App struct {
	Operator I
	Operands []I
}

func (*Number) expr()  {}
func (*String) expr()  {}
func (*Boolean) expr() {}
func (*Quote) expr()   {}
func (*Ref) expr()     {}
func (*Lambda) expr()  {}
func (*Let) expr()     {}
func (*Letrec) expr()  {}
func (*LetCC) expr()   {}
func (*Set) expr()     {}
func (*If) expr()      {}
func (*And) expr()     {}
func (*Or) expr()      {}
func (*Begin) expr()   {}
func (*App) expr()     {}

func (e *Number) String() string {
	return e.Value.RatString()
}

func (e *String) String() string {
	return strconv.Quote(e.Value)
}

func (e *Boolean) String() string {
	if e.Value {
		return "#t"
	}

	return "#f"
}

func (e *Quote) String() string {
	return "(quote " + literal.String(e.Datum) + ")"
}

func (e *Ref) String() string {
	return e.Name
}

func (e *Lambda) String() string {
	return form("lambda", formals(e.Formals, e.Rest), str(e.Body))
}

func (e *Let) String() string {
	return form("let", bindings(e.Bindings), str(e.Body))
}

func (e *Letrec) String() string {
	return form("letrec", bindings(e.Bindings), str(e.Body))
}

func (e *LetCC) String() string {
	return form("let/cc", e.Name, str(e.Body))
}

func (e *Set) String() string {
	return form("set!", e.Name, str(e.Value))
}

func (e *If) String() string {
	return form("if", str(e.Test), str(e.Then), str(e.Else))
}

func (e *And) String() string {
	return form("and", strs(e.Args)...)
}

func (e *Or) String() string {
	return form("or", strs(e.Args)...)
}

func (e *Begin) String() string {
	return form("begin", strs(e.Body)...)
}

func (e *App) String() string {
	return "(" + strings.Join(append([]string{str(e.Operator)}, strs(e.Operands)...), " ") + ")"
}

func bindings(bs []Binding) string {
	s := make([]string, len(bs))
	for i, b := range bs {
		s[i] = "(" + b.Name + " " + str(b.Init) + ")"
	}

	return "(" + strings.Join(s, " ") + ")"
}

func form(keyword string, parts ...string) string {
	return "(" + strings.Join(append([]string{keyword}, parts...), " ") + ")"
}

func formals(names []string, rest string) string {
	if len(names) == 0 && rest != "" {
		return rest
	}

	s := "(" + strings.Join(names, " ")
	if rest != "" {
		s += " . " + rest
	}

	return s + ")"
}

// Missing sub-expressions render as _ so malformed trees can still be shown.
func str(e I) string {
	if e == nil {
		return "_"
	}

	return e.String()
}

func strs(es []I) []string {
	s := make([]string, len(es))
	for i, e := range es {
		s[i] = str(e)
	}

	return s
}
