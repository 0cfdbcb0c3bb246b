// Package fnmock provides the runtime engines behind generated test doubles
// for package-level functions: mocks that record and verify calls, stubs that
// return canned values, and fakes that swap in replacement behavior.
//
// This is the public API entry point. Implementation lives in internal/core.
package fnmock

import (
	"github.com/toejough/fnmock/internal/core"
)

// Differ renders the difference between two values for failure messages.
// An empty string means the values are equal.
type Differ = core.Differ

// FuncFake holds a replacement implementation, with no call recording.
type FuncFake[F any] = core.FuncFake[F]

// NewFuncFake creates an unconfigured fake for the named function.
func NewFuncFake[F any](t TestReporter, name string) *FuncFake[F] {
	return core.NewFuncFake[F](t, name)
}

// FuncMock records calls, replays configured behavior, and supports
// assertions on call count and call arguments.
type FuncMock[P, Q, R any] = core.FuncMock[P, Q, R]

// NewFuncMock creates an unconfigured mock with no ignored parameters.
func NewFuncMock[P, R any](t TestReporter, name string, opts ...MockOption) *FuncMock[P, P, R] {
	return core.NewFuncMock[P, R](t, name, opts...)
}

// NewProjectedFuncMock creates an unconfigured mock whose assertions compare
// an ignored-parameter projection of each call.
func NewProjectedFuncMock[P, Q, R any](
	t TestReporter, name string, project func(P) Q, opts ...MockOption,
) *FuncMock[P, Q, R] {
	return core.NewProjectedFuncMock[P, Q, R](t, name, project, opts...)
}

// FuncStub supplies one canned return value repeatedly, without recording
// calls.
type FuncStub[R any] = core.FuncStub[R]

// NewFuncStub creates an unconfigured stub for the named function.
func NewFuncStub[R any](t TestReporter, name string) *FuncStub[R] {
	return core.NewFuncStub[R](t, name)
}

// Matcher defines the interface for flexible value matching.
type Matcher = core.Matcher

// MockOption configures optional mock settings.
type MockOption = core.MockOption

// TestReporter is the minimal interface fnmock needs from test frameworks.
type TestReporter = core.TestReporter

// Registry functions re-exported from internal/core.

// FakeFor returns the fake named name in t's scope, creating it if needed.
func FakeFor[F any](t TestReporter, name string) *FuncFake[F] {
	return core.FakeFor[F](t, name)
}

// MockFor returns the mock named name in t's scope, creating it if needed.
// Multiple calls with the same t and name return the same instance; the scope
// is dropped when the test completes.
func MockFor[P, R any](t TestReporter, name string) *FuncMock[P, P, R] {
	return core.MockFor[P, R](t, name)
}

// ProjectedMockFor is MockFor for mocks with an ignored-parameter projection.
func ProjectedMockFor[P, Q, R any](t TestReporter, name string, project func(P) Q) *FuncMock[P, Q, R] {
	return core.ProjectedMockFor[P, Q, R](t, name, project)
}

// StubFor returns the stub named name in t's scope, creating it if needed.
func StubFor[R any](t TestReporter, name string) *FuncStub[R] {
	return core.StubFor[R](t, name)
}

// Functions re-exported from internal/core.

// Any returns a matcher that matches any value.
func Any() Matcher {
	return core.Any()
}

// IgnoreFields builds the projection from a full parameter struct P to the
// reduced shape Q that drops the named fields.
func IgnoreFields[P, Q any](ignored ...string) func(P) Q {
	return core.IgnoreFields[P, Q](ignored...)
}

// MatchValue checks if actual matches expected.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// Satisfies returns a matcher that uses a predicate function to check for a match.
func Satisfies[T any](predicate func(T) error) Matcher {
	return core.Satisfies(predicate)
}

// WithDiffer replaces the differ used in assertion failure messages.
func WithDiffer(d Differ) MockOption {
	return core.WithDiffer(d)
}
