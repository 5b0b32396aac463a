// Released under an MIT license. See LICENSE.

// Package history loads and saves the line editor's history file.
package history

import (
	"io"
	"os"
	"path/filepath"
)

// Load calls read with the contents of the history file name.
// A relative name is taken to be relative to $HOME.
func Load(name string, read func(r io.Reader) (int, error)) error {
	f, err := file(name, os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save calls write to replace the contents of the history file name.
func Save(name string, write func(w io.Writer) (int, error)) error {
	f, err := file(name, os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

func file(name string, op func(string) (*os.File, error)) (*os.File, error) {
	if !filepath.IsAbs(name) {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		name = filepath.Join(home, name)
	}

	return op(name)
}
