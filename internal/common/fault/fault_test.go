// Released under an MIT license. See LICENSE.

package fault

import (
	"errors"
	"strings"
	"testing"

	"github.com/joomcode/errorx"
)

type text string

func (t text) String() string {
	return string(t)
}

func recovered(f func()) (err error) {
	defer func() {
		err = Recover(recover())
	}()

	f()

	return nil
}

func TestRaise(t *testing.T) {
	err := recovered(func() { Raise(WrongType, "expected %s", "pair") })

	if !Is(err, WrongType) {
		t.Fatalf("expected wrong type, got %v", err)
	}

	if got := err.Error(); got != "cesk.wrong_type: expected pair" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestRecoverOther(t *testing.T) {
	if err := recovered(func() {}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	err := recovered(func() { panic("boom") })
	if !Is(err, errorx.InternalError) || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected an internal error, got %v", err)
	}

	err = recovered(func() { panic(errors.New("plain")) })
	if !Is(err, errorx.InternalError) || !strings.Contains(err.Error(), "plain") {
		t.Fatalf("expected an internal error, got %v", err)
	}
}

func TestAnnotate(t *testing.T) {
	err := Annotate(ArityMismatch.New("expected 1 argument, passed 2"), text("Eval((f 1 2), Halt)"))

	want := "cesk.arity_mismatch: expected 1 argument, passed 2 {configuration: Eval((f 1 2), Halt)}"
	if got := err.Error(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	c, ok := ConfigurationOf(err)
	if !ok || c.String() != "Eval((f 1 2), Halt)" {
		t.Fatalf("unexpected configuration %v", c)
	}

	if _, ok := ConfigurationOf(ArityMismatch.New("bare")); ok {
		t.Fatalf("unexpected configuration")
	}
}

func TestAnnotateTruncates(t *testing.T) {
	long := text("Eval(" + strings.Repeat("x", 200) + ", Halt)")

	err := Annotate(WrongType.New("bad"), long)

	msg := err.Error()
	if !strings.HasSuffix(msg, "...}") {
		t.Fatalf("expected a truncated configuration, got %q", msg)
	}

	if i := strings.Index(msg, "{configuration: "); len(msg)-i > ExcerptWidth+len("{configuration: }") {
		t.Fatalf("configuration too long in %q", msg)
	}

	c, _ := ConfigurationOf(err)
	if c.String() != string(long) {
		t.Fatalf("expected the full configuration back")
	}
}
