package state

import (
	"context"
	"fmt"

	"go.uber.org/atomic"
)

const (
	opNew      = "new"
	opRegister = "register"
	opGuard    = "guard"
	opStart    = "start"
	opRequest  = "request"
	opPush     = "push"
	opPop      = "pop"
)

// Hook is a lifecycle callback. ctx is whatever the host passed to the
// transition call.
type Hook func(ctx context.Context)

// Hooks groups the optional lifecycle callbacks of one state.
type Hooks struct {
	OnEnter  Hook // entering the state fresh
	OnExit   Hook // leaving the state, including being suspended beneath another
	OnResume Hook // becoming current again after having been suspended
}

// Guard decides whether the from -> to transition may proceed.
type Guard[S comparable] func(ctx context.Context, from, to S) bool

type edge[S comparable] struct {
	from, to S
}

// Machine holds exactly one current state out of a fixed declared set, plus
// a stack of states suspended beneath it.
//
// Hooks and guards may only be registered before the machine starts. It
// starts on Start or on the first transition call, whichever comes first.
// When started by a transition call, the initial OnEnter is deferred until
// a transition first succeeds.
// A Machine is meant to be owned by a single update loop; callers on other
// goroutines must serialize access themselves.
type Machine[S comparable] struct {
	declared []S
	known    map[S]struct{}

	current S
	stack   []S

	enter  map[S][]Hook
	exit   map[S][]Hook
	resume map[S][]Hook
	guards map[edge[S]][]Guard[S]

	initialEnter bool
	pendingEnter bool // initial OnEnter owed to the first successful transition
	started      atomic.Bool
	busy         atomic.Bool
}

// New creates a machine over the declared states with initial as current.
// No hook runs during construction.
func New[S comparable](initial S, declared []S, opts ...Option[S]) (*Machine[S], error) {
	if len(declared) == 0 {
		return nil, &TransitionError{Op: opNew, From: name(initial), Err: fmt.Errorf("%w: no states declared", ErrConfig)}
	}

	m := &Machine[S]{
		declared: make([]S, 0, len(declared)),
		known:    make(map[S]struct{}, len(declared)),
		current:  initial,
		enter:    make(map[S][]Hook),
		exit:     make(map[S][]Hook),
		resume:   make(map[S][]Hook),
		guards:   make(map[edge[S]][]Guard[S]),
	}
	for _, s := range declared {
		if _, dup := m.known[s]; dup {
			return nil, &TransitionError{Op: opNew, From: name(initial), To: name(s), Err: fmt.Errorf("%w: state declared twice", ErrConfig)}
		}
		m.known[s] = struct{}{}
		m.declared = append(m.declared, s)
	}
	if !m.isDeclared(initial) {
		return nil, &TransitionError{Op: opNew, From: name(initial), Err: ErrUnknownState}
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Register attaches lifecycle hooks to s. Nil hooks are skipped; repeated
// registrations for the same state run in registration order.
func (m *Machine[S]) Register(s S, hooks Hooks) error {
	if err := m.checkConfigurable(opRegister, s); err != nil {
		return err
	}
	if hooks.OnEnter != nil {
		m.enter[s] = append(m.enter[s], hooks.OnEnter)
	}
	if hooks.OnExit != nil {
		m.exit[s] = append(m.exit[s], hooks.OnExit)
	}
	if hooks.OnResume != nil {
		m.resume[s] = append(m.resume[s], hooks.OnResume)
	}
	return nil
}

// Guard registers a guard for the from -> to transition. Every guard
// registered for the pair must pass.
func (m *Machine[S]) Guard(from, to S, guard Guard[S]) error {
	if err := m.checkConfigurable(opGuard, to); err != nil {
		return err
	}
	if !m.isDeclared(from) {
		return m.fail(opGuard, from, fmt.Errorf("%w: guard source %v is not declared", ErrConfig, from))
	}
	if guard == nil {
		return m.fail(opGuard, to, fmt.Errorf("%w: nil guard", ErrConfig))
	}
	e := edge[S]{from: from, to: to}
	m.guards[e] = append(m.guards[e], guard)
	return nil
}

// Start seals the hook registry. With WithInitialEnter it also fires the
// initial state's OnEnter hooks. Starting twice is a configuration error.
func (m *Machine[S]) Start(ctx context.Context) error {
	if !m.busy.CompareAndSwap(false, true) {
		return m.fail(opStart, m.current, ErrReentrantTransition)
	}
	defer m.busy.Store(false)

	if m.started.Load() {
		return m.fail(opStart, m.current, fmt.Errorf("%w: already started", ErrConfig))
	}
	m.start(ctx)
	return nil
}

// Started reports whether the machine has begun processing transitions.
func (m *Machine[S]) Started() bool {
	return m.started.Load()
}

// Current returns the active state.
func (m *Machine[S]) Current() S {
	return m.current
}

// Suspended returns the states suspended beneath the current one, bottom
// first.
func (m *Machine[S]) Suspended() []S {
	out := make([]S, len(m.stack))
	copy(out, m.stack)
	return out
}

// Depth returns the number of suspended states.
func (m *Machine[S]) Depth() int {
	return len(m.stack)
}

// States returns the declared states in declaration order.
func (m *Machine[S]) States() []S {
	out := make([]S, len(m.declared))
	copy(out, m.declared)
	return out
}

// RequestTransition moves laterally to target: the current state exits and
// target is entered, or resumed when it was suspended. Resuming a suspended
// state discards everything stacked above it.
func (m *Machine[S]) RequestTransition(ctx context.Context, target S) (S, error) {
	if err := m.begin(ctx, opRequest, target); err != nil {
		return m.current, err
	}
	defer m.busy.Store(false)

	if err := m.validate(ctx, opRequest, target); err != nil {
		return m.current, err
	}

	m.enterInitial(ctx)
	idx := m.suspendedAt(target)
	m.run(ctx, m.exit[m.current])
	m.current = target
	if idx >= 0 {
		m.stack = m.stack[:idx]
		m.run(ctx, m.resume[target])
	} else {
		m.run(ctx, m.enter[target])
	}
	return m.current, nil
}

// PushTransition suspends the current state beneath target and enters
// target fresh.
func (m *Machine[S]) PushTransition(ctx context.Context, target S) (S, error) {
	if err := m.begin(ctx, opPush, target); err != nil {
		return m.current, err
	}
	defer m.busy.Store(false)

	if err := m.validate(ctx, opPush, target); err != nil {
		return m.current, err
	}
	if m.suspendedAt(target) >= 0 {
		return m.current, m.fail(opPush, target, ErrStateSuspended)
	}

	m.enterInitial(ctx)
	from := m.current
	m.run(ctx, m.exit[from])
	m.stack = append(m.stack, from)
	m.current = target
	m.run(ctx, m.enter[target])
	return m.current, nil
}

// PopTransition exits the current state and resumes the one suspended
// directly beneath it.
func (m *Machine[S]) PopTransition(ctx context.Context) (S, error) {
	if !m.busy.CompareAndSwap(false, true) {
		return m.current, &TransitionError{Op: opPop, From: name(m.current), Err: ErrReentrantTransition}
	}
	defer m.busy.Store(false)
	if !m.started.Load() {
		m.started.Store(true)
		m.pendingEnter = m.initialEnter
	}

	if len(m.stack) == 0 {
		return m.current, &TransitionError{Op: opPop, From: name(m.current), Err: ErrEmptyStack}
	}
	top := m.stack[len(m.stack)-1]
	if !m.allowed(ctx, m.current, top) {
		return m.current, m.fail(opPop, top, ErrTransitionRejected)
	}

	m.enterInitial(ctx)
	m.run(ctx, m.exit[m.current])
	m.stack = m.stack[:len(m.stack)-1]
	m.current = top
	m.run(ctx, m.resume[top])
	return m.current, nil
}

func (m *Machine[S]) begin(ctx context.Context, op string, target S) error {
	if !m.busy.CompareAndSwap(false, true) {
		return m.fail(op, target, ErrReentrantTransition)
	}
	if !m.started.Load() {
		m.started.Store(true)
		m.pendingEnter = m.initialEnter
	}
	return nil
}

// start must run with busy held.
func (m *Machine[S]) start(ctx context.Context) {
	m.started.Store(true)
	if m.initialEnter {
		m.run(ctx, m.enter[m.current])
	}
}

// enterInitial fires the deferred initial OnEnter once. Callers hold busy
// and have validated the transition.
func (m *Machine[S]) enterInitial(ctx context.Context) {
	if m.pendingEnter {
		m.pendingEnter = false
		m.run(ctx, m.enter[m.current])
	}
}

func (m *Machine[S]) validate(ctx context.Context, op string, target S) error {
	if !m.isDeclared(target) {
		return m.fail(op, target, ErrUnknownState)
	}
	if target == m.current {
		return m.fail(op, target, ErrNoOpTransition)
	}
	if !m.allowed(ctx, m.current, target) {
		return m.fail(op, target, ErrTransitionRejected)
	}
	return nil
}

func (m *Machine[S]) allowed(ctx context.Context, from, to S) bool {
	for _, g := range m.guards[edge[S]{from: from, to: to}] {
		if !g(ctx, from, to) {
			return false
		}
	}
	return true
}

func (m *Machine[S]) checkConfigurable(op string, s S) error {
	if m.started.Load() {
		return m.fail(op, s, fmt.Errorf("%w: machine already started", ErrConfig))
	}
	if !m.isDeclared(s) {
		return m.fail(op, s, fmt.Errorf("%w: state %v is not declared", ErrConfig, s))
	}
	return nil
}

func (m *Machine[S]) suspendedAt(s S) int {
	for i, suspended := range m.stack {
		if suspended == s {
			return i
		}
	}
	return -1
}

func (m *Machine[S]) isDeclared(s S) bool {
	_, ok := m.known[s]
	return ok
}

func (m *Machine[S]) run(ctx context.Context, hooks []Hook) {
	for _, h := range hooks {
		h(ctx)
	}
}

func (m *Machine[S]) fail(op string, to S, err error) error {
	return &TransitionError{Op: op, From: name(m.current), To: name(to), Err: err}
}

func name(v any) string {
	return fmt.Sprint(v)
}
