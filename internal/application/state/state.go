// Package state provides the application state set and the lifecycle state
// machine that drives view changes between them.
package state

import (
	"fmt"
	"strings"
)

// AppState represents the current mode of the application
type AppState int

const (
	StateMainMenu AppState = iota
	StateInGame
	StatePaused
)

// AllStates returns the declared application states in declaration order
func AllStates() []AppState {
	return []AppState{StateMainMenu, StateInGame, StatePaused}
}

// String returns the string representation of the application state
func (s AppState) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateInGame:
		return "InGame"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// ParseAppState resolves a state name case-insensitively.
// "menu", "game" and "pause" are accepted as short forms.
func ParseAppState(name string) (AppState, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mainmenu", "menu":
		return StateMainMenu, nil
	case "ingame", "game":
		return StateInGame, nil
	case "paused", "pause":
		return StatePaused, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// MarshalText implements encoding.TextMarshaler
func (s AppState) MarshalText() ([]byte, error) {
	if s.String() == "Unknown" {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so config files and
// recordings can name states directly.
func (s *AppState) UnmarshalText(text []byte) error {
	parsed, err := ParseAppState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// NewAppMachine creates a machine over AllStates starting at initial.
func NewAppMachine(initial AppState, opts ...Option[AppState]) (*Machine[AppState], error) {
	return New(initial, AllStates(), opts...)
}
