// Package paused provides the pause overlay scene.
package paused

import (
	"context"
	"image/color"

	"github.com/younwookim/avoidtrouble/internal/application/state"
	"github.com/younwookim/avoidtrouble/internal/ecs"
)

var (
	colorOverlay = color.RGBA{0, 0, 0, 128}
	colorText    = color.RGBA{255, 255, 255, 255}
)

// Paused dims the screen and shows "Paused"
type Paused struct {
	owner            string
	screenW, screenH int
}

// New creates the pause scene for a screen of the given size
func New(screenW, screenH int) *Paused {
	return &Paused{
		owner:   state.StatePaused.String(),
		screenW: screenW,
		screenH: screenH,
	}
}

// OnEnter spawns the overlay
func (p *Paused) OnEnter(ctx context.Context) {
	w, ok := ecs.FromContext(ctx)
	if !ok {
		return
	}
	w.SpawnPanel(p.owner,
		ecs.Transform{},
		ecs.Panel{Width: p.screenW, Height: p.screenH, Color: colorOverlay},
	)
	w.SpawnText(p.owner,
		ecs.Transform{Y: p.screenH/2 - 16, Align: ecs.AlignCenter},
		ecs.Text{Sections: []ecs.TextSection{{Value: "Paused", Color: colorText}}, FontSize: 32},
	)
}

// OnExit removes the overlay
func (p *Paused) OnExit(ctx context.Context) {
	if w, ok := ecs.FromContext(ctx); ok {
		w.DespawnOwned(p.owner)
	}
}

// OnResume shows the overlay again
func (p *Paused) OnResume(ctx context.Context) {
	p.OnEnter(ctx)
}
