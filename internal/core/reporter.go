// Package core implements the runtime engines behind fnmock's generated
// function doubles: call recording, configured behavior, and the assertion
// logic for mocks, stubs, and fakes of package-level functions.
package core

import "fmt"

// Error philosophy:
//
// Failures: conditions the user is testing for - an unconfigured double being
// exercised, or an assertion that the recorded history doesn't satisfy -
// trigger a test failure through the TestReporter.
//
// Panics: conditions which signal an error which it is not generally
// reasonable to expect a caller to recover from, which instead imply
// programmer intervention is necessary to resolve (a projection whose shapes
// don't line up, a registry name reused at a different type), trigger an
// explanatory panic for the programmer to track down.
//
// Errors: the core returns no error values. Every failure aborts the current
// test, full stop.

// TestReporter is the minimal interface fnmock needs from test frameworks.
// *testing.T and *testing.B both satisfy it.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Differ renders the difference between two values for failure messages.
// An empty string means the values are equal.
type Differ func(a, b any) string

// report fails the test owning the double. Doubles constructed without a
// reporter panic with the same message instead, which the surrounding test
// harness surfaces as a test failure all the same.
func report(t TestReporter, format string, args ...any) {
	if t == nil {
		panic(fmt.Sprintf(format, args...))
	}

	t.Helper()
	t.Fatalf(format, args...)
}
