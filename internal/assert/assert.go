package assert

import (
	"reflect"
	"strings"
	"testing"
)

// Equal asserts that values are deeply equal.
func Equal[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// Panics asserts that f panics with a message containing want.
func Panics(t testing.TB, want string, f func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}

		msg, ok := r.(string)
		if !ok {
			t.Fatalf("expected string panic, got '%v'", r)
		}

		if !strings.Contains(msg, want) {
			t.Fatalf("expected panic %q to contain %q", msg, want)
		}
	}()

	f()
}
