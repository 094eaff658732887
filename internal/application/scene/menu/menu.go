// Package menu provides the main menu scene.
package menu

import (
	"context"
	"image/color"

	"github.com/younwookim/avoidtrouble/internal/application/state"
	"github.com/younwookim/avoidtrouble/internal/ecs"
)

var (
	colorTitle      = color.RGBA{255, 215, 0, 255}
	colorPlayButton = color.RGBA{38, 217, 38, 255}
	colorPlayLabel  = color.RGBA{230, 230, 230, 255}
	colorHint       = color.RGBA{216, 222, 233, 255}
)

// Menu is the main menu scene
type Menu struct {
	owner   string
	title   string
	screenH int
}

// New creates the menu scene
func New(title string, screenH int) *Menu {
	return &Menu{
		owner:   state.StateMainMenu.String(),
		title:   title,
		screenH: screenH,
	}
}

// OnEnter spawns the title, the Play button and the key hint
func (m *Menu) OnEnter(ctx context.Context) {
	w, ok := ecs.FromContext(ctx)
	if !ok {
		return
	}

	mid := m.screenH / 2
	w.SpawnText(m.owner,
		ecs.Transform{Y: mid - 100, Align: ecs.AlignCenter},
		ecs.Text{Sections: []ecs.TextSection{{Value: m.title, Color: colorTitle}}, FontSize: 32},
	)
	w.SpawnButton(m.owner,
		ecs.Transform{Y: mid - 25, Align: ecs.AlignCenter},
		ecs.Panel{Width: 120, Height: 50, Color: colorPlayButton},
		ecs.Text{Sections: []ecs.TextSection{{Value: "Play", Color: colorPlayLabel}}},
		"request "+state.StateInGame.String(),
	)
	w.SpawnText(m.owner,
		ecs.Transform{Y: mid + 60, Align: ecs.AlignCenter},
		ecs.Text{Sections: []ecs.TextSection{{Value: "G: play  P: pause  Esc: resume  M: menu", Color: colorHint}}},
	)
}

// OnExit despawns the menu
func (m *Menu) OnExit(ctx context.Context) {
	if w, ok := ecs.FromContext(ctx); ok {
		w.DespawnOwned(m.owner)
	}
}

// OnResume rebuilds the menu; it has no state to restore
func (m *Menu) OnResume(ctx context.Context) {
	m.OnEnter(ctx)
}
