// Released under an MIT license. See LICENSE.

//go:build unix

package terminal

import "golang.org/x/sys/unix"

// Width returns the width in columns of the terminal open on fd.
func Width(fd int) int {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return DefaultWidth
	}

	return int(ws.Col)
}
