// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/cesk/internal/common/fault"
	"github.com/michaelmacinnis/cesk/internal/common/interface/cell"
	"github.com/michaelmacinnis/cesk/internal/common/type/boolean"
	"github.com/michaelmacinnis/cesk/internal/common/type/num"
	"github.com/michaelmacinnis/cesk/internal/common/type/str"
	"github.com/michaelmacinnis/cesk/internal/common/validate"
)

func stringAppend(args []cell.I) cell.I {
	var b strings.Builder

	for _, a := range args {
		b.WriteString(str.To(a).String())
	}

	return str.New(b.String())
}

func stringLength(args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Int(utf8.RuneCountInString(str.To(v[0]).String()))
}

// (string-match? pattern s) matches s against a glob-style pattern.
func stringMatch(args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	ok, err := adapted.Match(str.To(v[0]).String(), str.To(v[1]).String())
	if err != nil {
		fault.Raise(fault.WrongType, "string-match?: %s", err.Error())
	}

	return boolean.Bool(ok)
}
