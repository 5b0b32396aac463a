// Released under an MIT license. See LICENSE.

// Package kont provides the frames that make up a machine continuation.
//
// A continuation is a chain of immutable frames linked through K. Each
// frame holds exactly what is needed to resume once the value it is waiting
// for arrives. Because frames are never modified, a continuation captured
// by let/cc can be resumed any number of times.
package kont

import (
	"strings"

	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/struct/addr"
	"github.com/michaelmacinnis/cesk/internal/common/struct/env"
	"github.com/michaelmacinnis/cesk/internal/common/struct/expr"
	"github.com/michaelmacinnis/cesk/internal/common/struct/list"
)

// How many frames String shows before eliding the rest.
const shown = 8

// I (kont) is any continuation frame.
type I interface {
	Next() I
	String() string

	describe() string
}

// Halt ends evaluation. It is always the last frame in a chain.
type Halt struct{}

// Letrec stores a letrec initializer's value in the cell at Addr and then
// evaluates the remaining initializers, then the body, in Env.
type Letrec struct {
	Addr addr.T
	Body expr.I
	Env  *env.T
	K    I
	Name string
	Rest *list.T[expr.Binding]
}

// Set stores the value in the cell at Addr and yields void.
type Set struct {
	Addr addr.T
	K    I
}

// If chooses Then or Else based on the value of the test.
type If struct {
	Else expr.I
	Env  *env.T
	K    I
	Then expr.I
}

// And continues with Rest while values are true.
type And struct {
	Env  *env.T
	K    I
	Rest *list.T[expr.I]
}

// Or continues with Rest while values are false.
type Or struct {
	Env  *env.T
	K    I
	Rest *list.T[expr.I]
}

// Begin discards the value and continues with Rest.
type Begin struct {
	Env  *env.T
	K    I
	Rest *list.T[expr.I]
}

// Let collects the value for Name. Names and Values hold the bindings
// already evaluated, most recent first. When Rest is empty every name is
// bound at once in Env and Body is evaluated.
type Let struct {
	Body   expr.I
	Env    *env.T
	K      I
	Name   string
	Names  *list.T[string]
	Rest   *list.T[expr.Binding]
	Values *list.T[cell.I]
}

// Operator waits for the procedure in an application.
type Operator struct {
	Env      *env.T
	K        I
	Operands *list.T[expr.I]
}

// Operand waits for an argument to Fn. Done holds the arguments already
// evaluated, most recent first.
type Operand struct {
	Done *list.T[cell.I]
	Env  *env.T
	Fn   cell.I
	K    I
	Rest *list.T[expr.I]
}

//nolint:gochecknoglobals
var halt = &Halt{}

// Done returns the halt continuation.
func Done() *Halt {
	return halt
}

func (*Halt) Next() I       { return nil }
func (k *Letrec) Next() I   { return k.K }
func (k *Set) Next() I      { return k.K }
func (k *If) Next() I       { return k.K }
func (k *And) Next() I      { return k.K }
func (k *Or) Next() I       { return k.K }
func (k *Begin) Next() I    { return k.K }
func (k *Let) Next() I      { return k.K }
func (k *Operator) Next() I { return k.K }
func (k *Operand) Next() I  { return k.K }

func (k *Halt) String() string     { return chain(k) }
func (k *Letrec) String() string   { return chain(k) }
func (k *Set) String() string      { return chain(k) }
func (k *If) String() string       { return chain(k) }
func (k *And) String() string      { return chain(k) }
func (k *Or) String() string       { return chain(k) }
func (k *Begin) String() string    { return chain(k) }
func (k *Let) String() string      { return chain(k) }
func (k *Operator) String() string { return chain(k) }
func (k *Operand) String() string  { return chain(k) }

// Depth returns the number of frames in the chain starting at k.
func Depth(k I) int {
	n := 0
	for ; k != nil; k = k.Next() {
		n++
	}

	return n
}

func (*Halt) describe() string {
	return "Halt"
}

func (k *Letrec) describe() string {
	return "Letrec(" + k.Name + ", " + k.Addr.String() + ", " + pending(k.Rest) + ")"
}

func (k *Set) describe() string {
	return "Set(" + k.Addr.String() + ")"
}

func (k *If) describe() string {
	return "If(" + k.Then.String() + ", " + k.Else.String() + ")"
}

func (k *And) describe() string {
	return "And" + k.Rest.String()
}

func (k *Or) describe() string {
	return "Or" + k.Rest.String()
}

func (k *Begin) describe() string {
	return "Begin" + k.Rest.String()
}

func (k *Let) describe() string {
	return "Let(" + k.Name + ", " + pending(k.Rest) + ")"
}

// The names still to be bound.
func pending(bs *list.T[expr.Binding]) string {
	return list.Map(func(b expr.Binding) string { return b.Name }, bs).String()
}

func (k *Operator) describe() string {
	return "Operator" + k.Operands.String()
}

func (k *Operand) describe() string {
	return "Operand(" + k.Fn.String() + ", " + k.Rest.String() + ")"
}

func chain(k I) string {
	s := []string{}

	for i := 0; k != nil; i, k = i+1, k.Next() {
		if i == shown {
			s = append(s, "...")

			break
		}

		s = append(s, k.describe())
	}

	return strings.Join(s, " -> ")
}
