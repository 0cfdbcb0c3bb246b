package core

// FuncFake holds a replacement implementation for a doubled function, with no
// call recording and no assertions - a lighter substitute than FuncMock when
// only behavior override is needed.
//
// F is the function type itself (e.g. func(int) error). Unlike FuncMock,
// Get hands the callable back uninvoked: the call site, not the engine,
// supplies the parameters. The returned handle may be invoked any number of
// times.
type FuncFake[F any] struct {
	// T receives the unconfigured-use failure. When nil, failures panic.
	T TestReporter

	name string
	impl *F
}

// NewFuncFake creates an unconfigured fake for the named function.
func NewFuncFake[F any](t TestReporter, name string) *FuncFake[F] {
	return &FuncFake[F]{T: t, name: name}
}

// Set stores the replacement implementation, replacing any prior one.
func (f *FuncFake[F]) Set(impl F) {
	f.impl = &impl
}

// Get returns the configured implementation. Fails the test if the fake was
// never set or has been cleared.
func (f *FuncFake[F]) Get() F {
	if f.impl == nil {
		report(f.T, "%s fake not initialized", f.name)

		var zero F

		return zero
	}

	return *f.impl
}

// Clear resets the fake to its unconfigured state.
func (f *FuncFake[F]) Clear() {
	f.impl = nil
}

// IsSet reports whether an implementation is configured. Never fails; mirrors
// FuncStub.IsSet for fakes layered as optional overrides in front of the real
// implementation.
func (f *FuncFake[F]) IsSet() bool {
	return f.impl != nil
}
