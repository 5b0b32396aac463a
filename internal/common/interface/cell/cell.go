// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all runtime values.
package cell

// I (cell) is the basic unit of storage. Every value the machine can
// produce, bind, or store is a cell.
type I interface {
	Equal(c I) bool
	Name() string
	String() string
}
