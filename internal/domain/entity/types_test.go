package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStageCounter(t *testing.T) {
	c := NewStageCounter()
	assert.Equal(t, 1, c.Stage)

	assert.Equal(t, 2, c.Advance())
	assert.Equal(t, 2, c.Stage)
}

func TestNewWorld(t *testing.T) {
	spawn := Position{X: 48, Y: 400}
	obstacles := []Position{{X: 200, Y: 120}, {X: 360, Y: 260}}

	w := NewWorld(1, spawn, obstacles)

	assert.Equal(t, 1, w.Counter.Stage)
	assert.Equal(t, EntityID(1), w.Player.ID)
	assert.Equal(t, spawn, w.Player.Position)
	assert.False(t, w.Player.Moving)
	assert.Len(t, w.Obstacles, 2)
	assert.Equal(t, EntityID(2), w.Obstacles[0].ID)
	assert.Equal(t, EntityID(3), w.Obstacles[1].ID)
	assert.Equal(t, obstacles[1], w.Obstacles[1].Position)
	assert.Equal(t, 3, w.EntityCount())
}

func TestNewWorld_ClampsStage(t *testing.T) {
	tests := []struct {
		name  string
		stage int
		want  int
	}{
		{"zero", 0, 1},
		{"negative", -3, 1},
		{"valid", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(tt.stage, Position{}, nil)
			assert.Equal(t, tt.want, w.Counter.Stage)
			assert.Empty(t, w.Obstacles)
			assert.Equal(t, 1, w.EntityCount())
		})
	}
}

func TestWorld_AddObstacle(t *testing.T) {
	w := NewWorld(1, Position{}, nil)

	o := w.AddObstacle(Position{X: 5, Y: 6})

	assert.Equal(t, EntityID(2), o.ID)
	assert.Equal(t, Position{X: 5, Y: 6}, o.Position)
	assert.Len(t, w.Obstacles, 1)
}
