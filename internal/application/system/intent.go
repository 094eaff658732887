package system

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/younwookim/avoidtrouble/internal/application/state"
)

// ErrUnknownCommand is returned for command words ParseIntent does not know
var ErrUnknownCommand = errors.New("unknown command")

// Intent represents a transition the host wants the state machine to make
type Intent interface {
	isIntent()
	// Apply issues the transition on m and returns the resulting state
	Apply(ctx context.Context, m *state.Machine[state.AppState]) (state.AppState, error)
	String() string
}

// RequestIntent is a lateral move to Target
type RequestIntent struct {
	Target state.AppState
}

func (RequestIntent) isIntent() {}

func (i RequestIntent) Apply(ctx context.Context, m *state.Machine[state.AppState]) (state.AppState, error) {
	return m.RequestTransition(ctx, i.Target)
}

func (i RequestIntent) String() string { return "request " + i.Target.String() }

// PushIntent suspends the current state beneath Target
type PushIntent struct {
	Target state.AppState
}

func (PushIntent) isIntent() {}

func (i PushIntent) Apply(ctx context.Context, m *state.Machine[state.AppState]) (state.AppState, error) {
	return m.PushTransition(ctx, i.Target)
}

func (i PushIntent) String() string { return "push " + i.Target.String() }

// PopIntent resumes the state suspended beneath the current one
type PopIntent struct{}

func (PopIntent) isIntent() {}

func (PopIntent) Apply(ctx context.Context, m *state.Machine[state.AppState]) (state.AppState, error) {
	return m.PopTransition(ctx)
}

func (PopIntent) String() string { return "pop" }

// NewIntent builds an intent from an action name ("request", "push", "pop")
// and a state name. target is ignored for "pop".
func NewIntent(action, target string) (Intent, error) {
	switch strings.ToLower(action) {
	case "pop":
		return PopIntent{}, nil
	case "request", "set":
		s, err := state.ParseAppState(target)
		if err != nil {
			return nil, err
		}
		return RequestIntent{Target: s}, nil
	case "push":
		s, err := state.ParseAppState(target)
		if err != nil {
			return nil, err
		}
		return PushIntent{Target: s}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, action)
}

// ParseIntent parses one command line: "<State>", "request <State>",
// "push <State>" or "pop".
func ParseIntent(line string) (Intent, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		if strings.EqualFold(fields[0], "pop") {
			return PopIntent{}, nil
		}
		s, err := state.ParseAppState(fields[0])
		if err != nil {
			return nil, err
		}
		return RequestIntent{Target: s}, nil
	case 2:
		if strings.EqualFold(fields[0], "pop") {
			return nil, fmt.Errorf("%w: pop takes no state", ErrUnknownCommand)
		}
		return NewIntent(fields[0], fields[1])
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
}
