// Package testkit holds the few assertions tests across huddle share
package testkit

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// MustPanic fails unless fn panics and returns the panic value as text
func MustPanic(t *testing.T, fn func()) (msg string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic, got none")
		}
		msg = fmt.Sprint(r)
	}()
	fn()
	return ""
}

// MustNotPanic fails if fn panics
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain fails unless s contains sub
func MustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected %q in:\n%s", sub, s)
	}
}

var swapMu sync.Mutex

// Swap replaces a package level seam until the test ends
// tests that swap hold a global lock, so they never interleave
func Swap[T any](t *testing.T, target *T, v T) {
	t.Helper()
	swapMu.Lock()
	orig := *target
	*target = v
	t.Cleanup(func() {
		*target = orig
		swapMu.Unlock()
	})
}
