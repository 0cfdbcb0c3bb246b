package core

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// FuncMock records every call to a doubled function, replays a configured
// behavior, and supports post-hoc assertions on call count and call
// arguments.
//
// P is the full parameter shape of the original function: the bare parameter
// type for a single parameter, a struct of parameters otherwise (struct{} for
// none). Q is the reduced shape used by AssertCalledWith - identical to P
// unless an ignored-parameter projection was supplied at construction. R is
// the return type.
//
// The call log always holds full P tuples; projection to Q happens at
// comparison time, so failure messages keep complete diagnostic information.
//
// A FuncMock is owned by a single test and must not be mutated from multiple
// goroutines at once; per-test isolation is the job of the registry (see
// MockFor), not of the engine.
type FuncMock[P, Q, R any] struct {
	// T receives assertion failures. Exported so tests of test helpers can
	// swap in a recording reporter. When nil, failures panic instead.
	T TestReporter

	name     string
	behavior func(P) R
	calls    []P
	project  func(P) Q
	differ   Differ
}

// MockOption configures optional mock settings.
type MockOption func(*mockSettings)

type mockSettings struct {
	differ Differ
}

// WithDiffer replaces the differ used in assertion failure messages. The
// differ doubles as the equality check: an empty result means a match.
func WithDiffer(d Differ) MockOption {
	return func(s *mockSettings) {
		s.differ = d
	}
}

// NewFuncMock creates an unconfigured mock for the named function, with no
// ignored parameters: assertions compare full parameter tuples.
func NewFuncMock[P, R any](t TestReporter, name string, opts ...MockOption) *FuncMock[P, P, R] {
	return NewProjectedFuncMock[P, P, R](t, name, func(p P) P { return p }, opts...)
}

// NewProjectedFuncMock creates an unconfigured mock whose assertions compare
// the projection of each recorded call rather than the full tuple. The
// projection comes from the generated glue (IgnoreFields builds one from
// ignored parameter names) and is applied identically to every stored call.
func NewProjectedFuncMock[P, Q, R any](
	t TestReporter, name string, project func(P) Q, opts ...MockOption,
) *FuncMock[P, Q, R] {
	if project == nil {
		panic("fnmock: nil projection for mock " + name)
	}

	settings := mockSettings{differ: defaultDiffer}
	for _, o := range opts {
		o(&settings)
	}

	return &FuncMock[P, Q, R]{
		T:       t,
		name:    name,
		project: project,
		differ:  settings.differ,
	}
}

// SetBehavior stores the function to run on each call, replacing any prior
// behavior. Takes effect for the very next call.
func (m *FuncMock[P, Q, R]) SetBehavior(behavior func(P) R) {
	m.behavior = behavior
}

// Call records params and runs the configured behavior with them.
// Fails the test if no behavior has been configured; the configuration check
// happens before logging, so an unconfigured call leaves no history.
func (m *FuncMock[P, Q, R]) Call(params P) R {
	if m.behavior == nil {
		report(m.T, "%s mock not initialized", m.name)

		var zero R

		return zero
	}

	// Log before invoking, so history reflects invocation attempts even when
	// the behavior itself panics.
	m.calls = append(m.calls, params)

	return m.behavior(params)
}

// Clear resets the mock to its unconfigured state: no behavior, empty call
// log. A subsequent Call fails exactly as if the mock had never been set up.
func (m *FuncMock[P, Q, R]) Clear() {
	m.behavior = nil
	m.calls = nil
}

// CallCount returns the number of recorded calls.
func (m *FuncMock[P, Q, R]) CallCount() int {
	return len(m.calls)
}

// Calls returns a copy of the call log, in call order.
func (m *FuncMock[P, Q, R]) Calls() []P {
	return slices.Clone(m.calls)
}

// AssertCalledTimes fails the test unless the mock was called exactly
// expected times.
func (m *FuncMock[P, Q, R]) AssertCalledTimes(expected int) {
	if m.T != nil {
		m.T.Helper()
	}

	if len(m.calls) != expected {
		report(m.T,
			"expected %s mock to be called %d times, but it was called %d times",
			m.name, expected, len(m.calls))
	}
}

// AssertCalledWith fails the test unless at least one recorded call's
// projection equals params. It does not check how many calls matched; pair it
// with AssertCalledTimes when the count matters.
func (m *FuncMock[P, Q, R]) AssertCalledWith(params Q) {
	if m.T != nil {
		m.T.Helper()
	}

	diffs := []string{}

	for _, call := range m.calls {
		diff := m.differ(m.project(call), params)
		if diff == "" {
			return
		}

		diffs = append(diffs, diff)
	}

	report(m.T,
		"expected %s mock to be called with %#v, but no matching call was found.\n"+
			"calls received: %s\n"+
			"diffs: %s",
		m.name, params, formatCalls(m.calls), strings.Join(diffs, "\n"))
}

// AssertCalledMatching fails the test unless at least one recorded call's
// projection satisfies the matcher. Any value implementing Match and
// FailureMessage works, including gomega matchers.
func (m *FuncMock[P, Q, R]) AssertCalledMatching(matcher Matcher) {
	if m.T != nil {
		m.T.Helper()
	}

	failures := []string{}

	for _, call := range m.calls {
		ok, failure := MatchValue(m.project(call), matcher)
		if ok {
			return
		}

		failures = append(failures, failure)
	}

	report(m.T,
		"expected %s mock to be called with matching params, but no matching call was found.\n"+
			"calls received: %s\n"+
			"match failures: %s",
		m.name, formatCalls(m.calls), strings.Join(failures, "\n"))
}

// defaultDiffer reports inequality per reflect.DeepEqual, rendering both
// values in full.
func defaultDiffer(a, b any) string {
	if !reflect.DeepEqual(a, b) {
		return fmt.Sprintf("%#v != %#v", a, b)
	}

	return ""
}

// formatCalls renders the full stored tuples for failure messages.
func formatCalls[P any](calls []P) string {
	if len(calls) == 0 {
		return "(none)"
	}

	formatted := make([]string, len(calls))
	for i, call := range calls {
		formatted[i] = fmt.Sprintf("%#v", call)
	}

	return strings.Join(formatted, "\n")
}
