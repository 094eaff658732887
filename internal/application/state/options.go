package state

// Option configures a machine during construction.
type Option[S comparable] func(*Machine[S]) error

// WithHooks registers lifecycle hooks for s. Equivalent to calling Register
// before the first transition.
func WithHooks[S comparable](s S, hooks Hooks) Option[S] {
	return func(m *Machine[S]) error {
		return m.Register(s, hooks)
	}
}

// WithGuard registers a guard for the from -> to transition.
func WithGuard[S comparable](from, to S, guard Guard[S]) Option[S] {
	return func(m *Machine[S]) error {
		return m.Guard(from, to, guard)
	}
}

// WithInitialEnter makes the machine fire the initial state's OnEnter hooks
// when it starts, either through Start or implicitly on the first transition.
func WithInitialEnter[S comparable]() Option[S] {
	return func(m *Machine[S]) error {
		m.initialEnter = true
		return nil
	}
}
