// Released under an MIT license. See LICENSE.

// Package config reads optional settings from a YAML file.
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joomcode/errorx"
	"gopkg.in/yaml.v3"
)

// Name is the settings file looked for in $HOME when no path is given.
const Name = ".cesk.yml"

// T (config) holds the settings. Width is the trace width in columns;
// zero means use the terminal width.
type T struct {
	History string `yaml:"history"`
	Prelude string `yaml:"prelude"`
	Prompt  string `yaml:"prompt"`
	Trace   bool   `yaml:"trace"`
	Width   int    `yaml:"width"`
}

// Default returns the settings used when there is no settings file.
func Default() *T {
	return &T{
		History: ".cesk_history",
		Prompt:  "> ",
	}
}

// Load reads settings from path. If path is empty it tries $HOME/.cesk.yml
// and returns the defaults if that file does not exist.
func Load(path string) (*T, error) {
	optional := path == ""
	if optional {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil //nolint:nilerr
		}

		path = filepath.Join(home, Name)
	}

	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return nil, errorx.Decorate(err, "reading settings")
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, errorx.Decorate(err, "reading settings from %s", path)
	}

	return c, nil
}

// Read decodes settings from r. Unknown keys are an error. Keys that are
// not present keep their default values.
func Read(r io.Reader) (*T, error) {
	c := Default()

	d := yaml.NewDecoder(r)
	d.KnownFields(true)

	if err := d.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if c.Width < 0 {
		return nil, errorx.IllegalArgument.New("width must not be negative, got %d", c.Width)
	}

	return c, nil
}
