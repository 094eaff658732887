package ecs

import (
	"context"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.Transform)
	assert.NotNil(t, w.Text)
	assert.NotNil(t, w.IsStateLabel)
	assert.Zero(t, w.Count())
}

func TestNewEntity(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld()

	id1 := w.SpawnText("menu", Transform{}, Text{})
	w.DestroyEntity(id1)

	id2 := w.NewEntity()
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestDestroyEntity(t *testing.T) {
	w := NewWorld()
	id := w.SpawnButton("menu", Transform{X: 1}, Panel{Width: 10, Height: 5}, Text{Sections: []TextSection{{Value: "Play"}}}, "")
	w.IsStateLabel[id] = struct{}{}

	require.True(t, w.Exists(id))

	w.DestroyEntity(id)

	assert.False(t, w.Exists(id))
	_, hasText := w.Text[id]
	assert.False(t, hasText)
	_, hasPanel := w.Panel[id]
	assert.False(t, hasPanel)
	_, hasButton := w.Button[id]
	assert.False(t, hasButton)
	_, hasOwner := w.Owner[id]
	assert.False(t, hasOwner)
	_, isLabel := w.IsStateLabel[id]
	assert.False(t, isLabel)
}

func TestSpawnButton(t *testing.T) {
	w := NewWorld()
	label := Text{Sections: []TextSection{{Value: "Back", Color: color.RGBA{A: 255}}}}

	id := w.SpawnButton("game", Transform{Align: AlignCenter}, Panel{Width: 120, Height: 50}, label, "request MainMenu")

	assert.Equal(t, Button{Label: "Back", Command: "request MainMenu"}, w.Button[id])
	assert.Equal(t, label, w.Text[id])
	assert.Equal(t, "game", w.Owner[id])
}

func TestDespawnOwned(t *testing.T) {
	w := NewWorld()
	persistent := w.SpawnText("", Transform{}, Text{})
	m1 := w.SpawnText("menu", Transform{}, Text{})
	g1 := w.SpawnPanel("game", Transform{}, Panel{})
	m2 := w.SpawnPanel("menu", Transform{}, Panel{})

	assert.Equal(t, []EntityID{m1, m2}, w.Owned("menu"))

	n := w.DespawnOwned("menu")

	assert.Equal(t, 2, n)
	assert.Empty(t, w.Owned("menu"))
	assert.Equal(t, []EntityID{persistent, g1}, w.Entities())
	assert.Zero(t, w.DespawnOwned("menu"))
}

func TestContext(t *testing.T) {
	w := NewWorld()

	got, ok := FromContext(NewContext(context.Background(), w))
	require.True(t, ok)
	assert.Same(t, w, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
