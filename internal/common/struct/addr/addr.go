// Released under an MIT license. See LICENSE.

// Package addr provides the token that identifies a store cell.
package addr

import (
	"strconv"
)

// T (addr) is an opaque store address. Addresses are compared by value and
// have no arithmetic beyond Next.
type T uint64

// Next returns the address that follows a.
func (a T) Next() T {
	return a + 1
}

// String returns a human-readable representation of the address a.
func (a T) String() string {
	return "address(" + strconv.FormatUint(uint64(a), 10) + ")"
}
