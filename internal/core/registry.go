package core

import (
	"fmt"
	"sync"
)

// The registry gives each test its own scope of named doubles, keyed by the
// test's TestReporter. This is the per-test isolation layer: generated glue
// looks doubles up through MockFor/StubFor/FakeFor, concurrent tests never
// see each other's configuration or call history, and there is no
// process-wide mutable double.
//
// If the TestReporter supports Cleanup (like *testing.T), the scope is
// automatically dropped when the test completes, so no state survives a
// test's lifetime.

// MockFor returns the mock named name in t's scope, creating an unconfigured
// one if needed. Multiple calls with the same t and name return the same
// instance.
func MockFor[P, R any](t TestReporter, name string) *FuncMock[P, P, R] {
	return doubleFor(t, name, func() *FuncMock[P, P, R] {
		return NewFuncMock[P, R](t, name)
	})
}

// ProjectedMockFor is MockFor for mocks with an ignored-parameter projection.
// The projection is only used when the mock is first created; later lookups
// return the existing instance.
func ProjectedMockFor[P, Q, R any](t TestReporter, name string, project func(P) Q) *FuncMock[P, Q, R] {
	return doubleFor(t, name, func() *FuncMock[P, Q, R] {
		return NewProjectedFuncMock[P, Q, R](t, name, project)
	})
}

// StubFor returns the stub named name in t's scope, creating an unconfigured
// one if needed.
func StubFor[R any](t TestReporter, name string) *FuncStub[R] {
	return doubleFor(t, name, func() *FuncStub[R] {
		return NewFuncStub[R](t, name)
	})
}

// FakeFor returns the fake named name in t's scope, creating an unconfigured
// one if needed.
func FakeFor[F any](t TestReporter, name string) *FuncFake[F] {
	return doubleFor(t, name, func() *FuncFake[F] {
		return NewFuncFake[F](t, name)
	})
}

// doubleFor gets or creates the named double in t's scope. Reusing a name at
// a different double type or type parameterization within one scope is a
// programmer error and panics.
func doubleFor[D any](t TestReporter, name string, create func() *D) *D {
	s := scopeFor(t)

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.doubles[name]; ok {
		double, ok := existing.(*D)
		if !ok {
			panic(fmt.Sprintf(
				"fnmock: double %q is already registered in this test as %T, requested as %T",
				name, existing, (*D)(nil)))
		}

		return double
	}

	double := create()
	s.doubles[name] = double

	return double
}

// scope holds the named doubles owned by one test.
type scope struct {
	mu      sync.Mutex
	doubles map[string]any
}

func scopeFor(t TestReporter) *scope {
	registryMu.Lock()
	defer registryMu.Unlock()

	if s, ok := registry[t]; ok {
		return s
	}

	s := &scope{doubles: make(map[string]any)}
	registry[t] = s

	// Register cleanup if the TestReporter supports it
	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			registryMu.Lock()
			delete(registry, t)
			registryMu.Unlock()
		})
	}

	return s
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level registry is intentional for per-test scoping
	registry = make(map[TestReporter]*scope)
	//nolint:gochecknoglobals // Mutex for registry
	registryMu sync.Mutex
)

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}
