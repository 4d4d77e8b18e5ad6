// Package test holds the assertion helper used by packages that should not
// pull the external test dependencies of the main package.
package test

import (
	"errors"
	"testing"
)

// T wraps *testing.T with assertion helpers.
type T struct {
	*testing.T
}

// FromT creates a new test helper from a *testing.T.
func FromT(t *testing.T) *T {
	t.Helper()
	return &T{t}
}

// Assert fails the test if the condition is false.
func (t *T) Assert(condition bool) {
	t.Helper()
	if !condition {
		t.Fatal("assertion failed")
	}
}

// Assertf fails the test if the condition is false, with a formatted
// message.
func (t *T) Assertf(condition bool, format string, args ...any) {
	t.Helper()
	if !condition {
		t.Fatalf(format, args...)
	}
}

// Eq fails the test if got and want differ.
func Eq[V comparable](t *T, got, want V) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// CheckErr fails the test if err is not nil.
func (t *T) CheckErr(err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ExpectErr fails the test if err does not wrap expected.
func (t *T) ExpectErr(err, expected error) {
	t.Helper()
	if !errors.Is(err, expected) {
		t.Fatalf("expected error %v, got %v", expected, err)
	}
}
