// Released under an MIT license. See LICENSE.

// Package terminal reports the size of the terminal.
package terminal

// DefaultWidth is used when the width cannot be determined.
const DefaultWidth = 100
