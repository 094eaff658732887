// Package playing provides the in-game scene.
package playing

import (
	"context"
	"fmt"
	"image/color"

	"github.com/younwookim/avoidtrouble/internal/application/state"
	"github.com/younwookim/avoidtrouble/internal/domain/entity"
	"github.com/younwookim/avoidtrouble/internal/ecs"
	"github.com/younwookim/avoidtrouble/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBackButton = color.RGBA{217, 38, 38, 255}
	colorBackLabel  = color.RGBA{0, 0, 0, 255}
	colorStageText  = color.RGBA{255, 215, 0, 255}
	colorPlayer     = color.RGBA{163, 190, 140, 255}
	colorObstacle   = color.RGBA{191, 97, 106, 255}
)

// Playing is the in-game scene. Its World survives a pause and is rebuilt
// on every fresh entry.
type Playing struct {
	owner    string
	stageCfg *config.StageConfig
	player   config.MarkerConfig
	obstacle config.MarkerConfig
	world    *entity.World
}

// New creates a new Playing scene for the given stage
func New(stageCfg *config.StageConfig, entities *config.EntitiesConfig) *Playing {
	p := &Playing{
		owner:    state.StateInGame.String(),
		stageCfg: stageCfg,
		player:   config.MarkerConfig{Width: 16, Height: 16},
		obstacle: config.MarkerConfig{Width: 16, Height: 16},
	}
	if entities != nil {
		p.player = entities.Player
		p.obstacle = entities.Obstacle
	}
	return p
}

// World returns the current run's entities, nil before the first entry
func (p *Playing) World() *entity.World {
	return p.world
}

// OnEnter starts a fresh run (implements scene.Scene)
func (p *Playing) OnEnter(ctx context.Context) {
	p.world = p.newWorld()
	p.spawn(ctx)
}

// OnExit removes the scene's nodes and keeps the run (implements scene.Scene)
func (p *Playing) OnExit(ctx context.Context) {
	if w, ok := ecs.FromContext(ctx); ok {
		w.DespawnOwned(p.owner)
	}
}

// OnResume redraws the suspended run (implements scene.Scene)
func (p *Playing) OnResume(ctx context.Context) {
	if p.world == nil {
		p.world = p.newWorld()
	}
	p.spawn(ctx)
}

func (p *Playing) newWorld() *entity.World {
	if p.stageCfg == nil {
		return entity.NewWorld(1, entity.Position{}, nil)
	}
	obstacles := make([]entity.Position, 0, len(p.stageCfg.Obstacles))
	for _, o := range p.stageCfg.Obstacles {
		obstacles = append(obstacles, entity.Position{X: o.X, Y: o.Y})
	}
	spawn := entity.Position{X: p.stageCfg.PlayerSpawn.X, Y: p.stageCfg.PlayerSpawn.Y}
	return entity.NewWorld(p.stageCfg.Number, spawn, obstacles)
}

func (p *Playing) spawn(ctx context.Context) {
	w, ok := ecs.FromContext(ctx)
	if !ok {
		return
	}

	w.SpawnButton(p.owner,
		ecs.Transform{X: 8, Y: 40, Align: ecs.AlignRight},
		ecs.Panel{Width: 120, Height: 50, Color: colorBackButton},
		ecs.Text{Sections: []ecs.TextSection{{Value: "Back", Color: colorBackLabel}}},
		"request "+state.StateMainMenu.String(),
	)
	w.SpawnText(p.owner,
		ecs.Transform{X: 8, Y: 40},
		ecs.Text{Sections: []ecs.TextSection{{Value: fmt.Sprintf("Stage: %d", p.world.Counter.Stage), Color: colorStageText}}},
	)

	w.SpawnPanel(p.owner,
		ecs.Transform{X: p.world.Player.Position.X, Y: p.world.Player.Position.Y},
		ecs.Panel{Width: p.player.Width, Height: p.player.Height, Color: markerColor(p.player.Color, colorPlayer)},
	)
	for _, o := range p.world.Obstacles {
		w.SpawnPanel(p.owner,
			ecs.Transform{X: o.Position.X, Y: o.Position.Y},
			ecs.Panel{Width: p.obstacle.Width, Height: p.obstacle.Height, Color: markerColor(p.obstacle.Color, colorObstacle)},
		)
	}
}

func markerColor(hex string, fallback color.RGBA) color.RGBA {
	if c, err := config.ParseHexColor(hex); err == nil {
		return c
	}
	return fallback
}
