package state

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind. Machine operations wrap them in a
// *TransitionError; match with errors.Is.
var (
	ErrConfig              = errors.New("invalid state machine configuration")
	ErrUnknownState        = errors.New("unknown state")
	ErrNoOpTransition      = errors.New("already in target state")
	ErrEmptyStack          = errors.New("no suspended state to resume")
	ErrReentrantTransition = errors.New("transition requested while another is running")
	ErrTransitionRejected  = errors.New("transition rejected by guard")
	ErrStateSuspended      = errors.New("target state is already suspended")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrConfig, "ConfigError"},
	{ErrUnknownState, "UnknownState"},
	{ErrNoOpTransition, "NoOpTransition"},
	{ErrEmptyStack, "EmptyStack"},
	{ErrReentrantTransition, "ReentrantTransition"},
	{ErrTransitionRejected, "TransitionRejected"},
	{ErrStateSuspended, "StateSuspended"},
}

// TransitionError describes a failed machine operation.
// The machine state is unchanged whenever one is returned.
type TransitionError struct {
	Op   string // "new", "register", "guard", "start", "request", "push" or "pop"
	From string // current state when the operation was attempted
	To   string // target state, empty for pop
	Err  error  // one of the sentinel errors
}

func (e *TransitionError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("state: %s from %s: %v", e.Op, e.From, e.Err)
	}
	return fmt.Sprintf("state: %s %s -> %s: %v", e.Op, e.From, e.To, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// Kind returns the name of the failure kind carried by err, e.g.
// "NoOpTransition". It returns "" for nil and "Error" for errors that did
// not come from this package.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Error"
}
