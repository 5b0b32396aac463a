// Released under an MIT license. See LICENSE.

// Package commands provides the primitive procedures bound in the global
// environment.
package commands

import (
	"io"

	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/struct/store"
	"github.com/michaelmacinnis/cesk/internal/common/type/prim"
)

// Primitives returns every primitive by name. Output primitives write to w.
func Primitives(w io.Writer) map[string]prim.Func {
	return map[string]prim.Func{
		"*":             pure(mul),
		"+":             pure(add),
		"-":             pure(sub),
		"/":             pure(div),
		"<":             pure(compare(lt)),
		"<=":            pure(compare(le)),
		"=":             pure(compare(eq)),
		">":             pure(compare(gt)),
		">=":            pure(compare(ge)),
		"boolean?":      pure(isBoolean),
		"car":           car,
		"cdr":           cdr,
		"cons":          cons,
		"display":       display(w),
		"eq?":           pure(isEq),
		"equal?":        isEqual,
		"list":          list,
		"modulo":        pure(modulo),
		"newline":       newline(w),
		"not":           pure(not),
		"null?":         pure(isNull),
		"number?":       pure(isNumber),
		"pair?":         pure(isPair),
		"procedure?":    pure(isProcedure),
		"quotient":      pure(quotient),
		"set-car!":      setCar,
		"set-cdr!":      setCdr,
		"string-append": pure(stringAppend),
		"string-length": pure(stringLength),
		"string-match?": pure(stringMatch),
		"string?":       pure(isString),
		"symbol?":       pure(isSymbol),
		"void":          pure(unspecified),
		"zero?":         pure(isZero),
	}
}

// Most primitives neither read nor change the store.
func pure(f func(args []cell.I) cell.I) prim.Func {
	return func(args []cell.I, s *store.T) (cell.I, *store.T) {
		return f(args), s
	}
}
