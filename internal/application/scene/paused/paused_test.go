package paused

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/avoidtrouble/internal/ecs"
)

func TestPaused_Lifecycle(t *testing.T) {
	p := New(700, 500)
	w := ecs.NewWorld()
	game := w.SpawnPanel("InGame", ecs.Transform{}, ecs.Panel{})
	ctx := ecs.NewContext(context.Background(), w)

	p.OnEnter(ctx)

	owned := w.Owned("Paused")
	require.Len(t, owned, 2)
	assert.Equal(t, 700, w.Panel[owned[0]].Width)
	assert.Equal(t, 500, w.Panel[owned[0]].Height)
	assert.Equal(t, "Paused", w.Text[owned[1]].String())

	p.OnExit(ctx)
	assert.Empty(t, w.Owned("Paused"))
	assert.True(t, w.Exists(game))
}
