// Package scene defines the Scene interface for the per-state views.
//
// Each application state (menu, in-game, paused) has a Scene that builds
// its UI nodes when the state is entered or resumed and removes them when
// the state exits. Scenes find the host's UI world in the hook context.
package scene

import (
	"context"

	"github.com/younwookim/avoidtrouble/internal/application/state"
)

// Scene is the view owned by one application state.
type Scene interface {
	// OnEnter is called when the state is entered fresh.
	// Use this to spawn the view's nodes and reset its data.
	OnEnter(ctx context.Context)

	// OnExit is called when the state is left, including when it is
	// suspended beneath another state. The view despawns its nodes.
	OnExit(ctx context.Context)

	// OnResume is called when the state becomes current again after having
	// been suspended. The view respawns its nodes and keeps its data.
	OnResume(ctx context.Context)
}

// Hooks adapts s to the machine's lifecycle hooks
func Hooks(s Scene) state.Hooks {
	return state.Hooks{
		OnEnter:  s.OnEnter,
		OnExit:   s.OnExit,
		OnResume: s.OnResume,
	}
}

// Bind registers every scene's hooks with m for its state
func Bind(m *state.Machine[state.AppState], scenes map[state.AppState]Scene) error {
	for _, st := range m.States() {
		sc, ok := scenes[st]
		if !ok {
			continue
		}
		if err := m.Register(st, Hooks(sc)); err != nil {
			return err
		}
	}
	return nil
}
