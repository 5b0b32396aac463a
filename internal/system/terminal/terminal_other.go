// Released under an MIT license. See LICENSE.

//go:build !unix

package terminal

// Width returns DefaultWidth.
func Width(_ int) int {
	return DefaultWidth
}
