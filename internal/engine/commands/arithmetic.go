// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/interface/rational"
	"github.com/michaelmacinnis/cesk/internal/common/type/num"
	"github.com/michaelmacinnis/cesk/internal/common/validate"
)

func add(args []cell.I) cell.I {
	sum := &big.Rat{}

	for _, a := range args {
		sum.Add(sum, rational.Number(a))
	}

	return num.Rat(sum)
}

func div(args []cell.I) cell.I {
	v := validate.Variadic(args, 1)

	quotient := big.NewRat(1, 1)
	if len(v) > 1 {
		quotient.Set(rational.Number(v[0]))
		v = v[1:]
	}

	for _, a := range v {
		d := rational.Number(a)
		if d.Sign() == 0 {
			fault.Raise(fault.DivisionByZero, "division by zero")
		}

		quotient.Quo(quotient, d)
	}

	return num.Rat(quotient)
}

func modulo(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	dividend, divisor := integers(v[0], v[1])

	m := new(big.Int).Rem(dividend, divisor)
	if m.Sign() != 0 && m.Sign() != divisor.Sign() {
		m.Add(m, divisor)
	}

	return num.Rat(new(big.Rat).SetInt(m))
}

func mul(args []cell.I) cell.I {
	product := big.NewRat(1, 1)

	for _, a := range args {
		product.Mul(product, rational.Number(a))
	}

	return num.Rat(product)
}

func quotient(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	dividend, divisor := integers(v[0], v[1])

	return num.Rat(new(big.Rat).SetInt(new(big.Int).Quo(dividend, divisor)))
}

func sub(args []cell.I) cell.I {
	v := validate.Variadic(args, 1)

	difference := &big.Rat{}
	if len(v) > 1 {
		difference.Set(rational.Number(v[0]))
		v = v[1:]
	}

	for _, a := range v {
		difference.Sub(difference, rational.Number(a))
	}

	return num.Rat(difference)
}

// Integer operands for quotient and modulo. The divisor must not be zero.
func integers(a, b cell.I) (*big.Int, *big.Int) {
	dividend := rational.Number(a)
	divisor := rational.Number(b)

	if !dividend.IsInt() || !divisor.IsInt() {
		fault.Raise(fault.WrongType, "expected integers, got %s and %s", dividend, divisor)
	}

	if divisor.Sign() == 0 {
		fault.Raise(fault.DivisionByZero, "division by zero")
	}

	return dividend.Num(), divisor.Num()
}
