package menu

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/avoidtrouble/internal/application/scene"
	"github.com/younwookim/avoidtrouble/internal/ecs"
)

func TestMenu_Lifecycle(t *testing.T) {
	var sc scene.Scene = New("Avoid Trouble", 500)
	w := ecs.NewWorld()
	ctx := ecs.NewContext(context.Background(), w)

	sc.OnEnter(ctx)

	owned := w.Owned("MainMenu")
	require.Len(t, owned, 3)
	assert.Equal(t, "Avoid Trouble", w.Text[owned[0]].String())
	assert.Equal(t, ecs.Button{Label: "Play", Command: "request InGame"}, w.Button[owned[1]])

	sc.OnExit(ctx)
	assert.Zero(t, w.Count())

	sc.OnResume(ctx)
	assert.Len(t, w.Owned("MainMenu"), 3)
}

func TestMenu_NoWorldInContext(t *testing.T) {
	m := New("Avoid Trouble", 500)

	assert.NotPanics(t, func() {
		m.OnEnter(context.Background())
		m.OnExit(context.Background())
	})
}
