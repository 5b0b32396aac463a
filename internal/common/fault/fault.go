// Released under an MIT license. See LICENSE.

// Package fault defines the failures that can end an evaluation.
//
// Code deep inside the machine raises a fault by panicking with a typed
// error. The machine recovers at the step boundary and hands the error,
// decorated with the offending configuration, back to its caller.
package fault

import (
	"fmt"

	"github.com/joomcode/errorx"
	"github.com/mattn/go-runewidth"
)

//nolint:gochecknoglobals
var (
	// Errors is the namespace for every evaluation failure.
	Errors = errorx.NewNamespace("cesk")

	// UnboundIdentifier is raised when an environment lookup fails.
	UnboundIdentifier = Errors.NewType("unbound_identifier", errorx.NotFound())

	// InvalidStoreAccess is raised when an address was never allocated.
	InvalidStoreAccess = Errors.NewType("invalid_store_access")

	// NotApplicable is raised when the operator is not a procedure.
	NotApplicable = Errors.NewType("not_applicable")

	// ArityMismatch is raised when a procedure gets the wrong number of arguments.
	ArityMismatch = Errors.NewType("arity_mismatch")

	// MalformedSpecialForm is raised when a special form has the wrong shape.
	MalformedSpecialForm = Errors.NewType("malformed_special_form")

	// WrongType is raised when a primitive receives the wrong kind of value.
	WrongType = Errors.NewType("wrong_type")

	// DivisionByZero is raised when a primitive divides by zero.
	DivisionByZero = Errors.NewType("division_by_zero")

	// SyntaxError is raised when source text cannot be read.
	SyntaxError = Errors.NewType("syntax_error")

	// Configuration holds the machine configuration that was being stepped.
	// The error text shows it cut to ExcerptWidth columns.
	Configuration = errorx.RegisterPrintableProperty("configuration")
)

// ExcerptWidth is the widest a configuration appears in an error message.
const ExcerptWidth = 80

// Raise panics with a new error of type t.
func Raise(t *errorx.Type, format string, args ...interface{}) {
	panic(t.New(format, args...))
}

// Recover converts the value returned by recover into an error.
// It returns nil if r is nil.
func Recover(r interface{}) error {
	if r == nil {
		return nil
	}

	err, ok := r.(error)
	if !ok {
		return errorx.InternalError.New("%v", r)
	}

	if e := errorx.Cast(err); e != nil {
		return e
	}

	return errorx.InternalError.Wrap(err, "recovered")
}

// Is returns true if err is a fault of type t.
func Is(err error, t *errorx.Type) bool {
	return err != nil && errorx.IsOfType(err, t)
}

// ConfigurationOf returns the configuration attached to err, if any.
func ConfigurationOf(err error) (fmt.Stringer, bool) {
	e := errorx.Cast(err)
	if e == nil {
		return nil, false
	}

	v, ok := e.Property(Configuration)
	if !ok {
		return nil, false
	}

	x, ok := v.(excerpt)

	return x.Stringer, ok
}

// Annotate attaches the configuration c to err.
func Annotate(err error, c fmt.Stringer) error {
	e := errorx.Cast(err)
	if e == nil {
		return err
	}

	return e.WithProperty(Configuration, excerpt{c})
}

type excerpt struct {
	fmt.Stringer
}

func (x excerpt) String() string {
	return runewidth.Truncate(x.Stringer.String(), ExcerptWidth, "...")
}
