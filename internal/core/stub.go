package core

// FuncStub supplies one canned return value repeatedly, without recording
// calls. In contrast to mocks and fakes, stubs carry no behavior and no
// verification - they exist so a test can proceed past a function it doesn't
// care about.
//
// Get returns a copy of the stored value each time (Go value semantics), so
// the stub is safely readable any number of times. Reference types inside R
// (maps, slices, pointers) share backing storage across reads.
type FuncStub[R any] struct {
	// T receives the unconfigured-use failure. When nil, failures panic.
	T TestReporter

	name  string
	value *R
}

// NewFuncStub creates an unconfigured stub for the named function.
func NewFuncStub[R any](t TestReporter, name string) *FuncStub[R] {
	return &FuncStub[R]{T: t, name: name}
}

// Set stores the canned return value, replacing any prior value.
func (s *FuncStub[R]) Set(value R) {
	s.value = &value
}

// Get returns the canned value. Fails the test if the stub was never set or
// has been cleared.
func (s *FuncStub[R]) Get() R {
	if s.value == nil {
		report(s.T, "%s stub not initialized", s.name)

		var zero R

		return zero
	}

	return *s.value
}

// Clear resets the stub to its unconfigured state.
func (s *FuncStub[R]) Clear() {
	s.value = nil
}

// IsSet reports whether a value is configured. Never fails; injection points
// in production code use it to prefer the stub over the real implementation.
func (s *FuncStub[R]) IsSet() bool {
	return s.value != nil
}
