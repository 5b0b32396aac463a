// Released under an MIT license. See LICENSE.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	c, err := Read(strings.NewReader("prompt: \"cesk> \"\ntrace: true\nwidth: 80\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Prompt != "cesk> " || !c.Trace || c.Width != 80 {
		t.Fatalf("unexpected settings %+v", c)
	}

	if c.History != Default().History {
		t.Fatalf("expected the default history, got %q", c.History)
	}
}

func TestEmpty(t *testing.T) {
	c, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *c != *Default() {
		t.Fatalf("expected defaults, got %+v", c)
	}
}

func TestInvalid(t *testing.T) {
	for _, text := range []string{
		"colour: blue\n",
		"width: wide\n",
		"width: -1\n",
	} {
		if _, err := Read(strings.NewReader(text)); err == nil {
			t.Errorf("%q: expected an error", text)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")

	if err := os.WriteFile(path, []byte("history: h\nprelude: p.scm\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.History != "h" || c.Prelude != "p.scm" {
		t.Fatalf("unexpected settings %+v", c)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}

	t.Setenv("HOME", t.TempDir())

	c, err = Load("")
	if err != nil || *c != *Default() {
		t.Fatalf("expected defaults, got %+v, %v", c, err)
	}
}
