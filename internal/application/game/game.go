// Package game provides the ebiten host that drives the application state
// machine from key presses and renders the UI world.
package game

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/avoidtrouble/internal/application/replay"
	"github.com/younwookim/avoidtrouble/internal/application/state"
	"github.com/younwookim/avoidtrouble/internal/application/system"
	"github.com/younwookim/avoidtrouble/internal/ecs"
	"github.com/younwookim/avoidtrouble/internal/infrastructure/config"
)

var (
	colorStateLabel = color.RGBA{255, 255, 255, 255}
	colorFPSLabel   = color.RGBA{255, 255, 255, 255}
	colorFPSValue   = color.RGBA{255, 215, 0, 255}
)

// Options holds the collaborators of a Game. Machine, Input and Config are
// required; the rest have defaults.
type Options struct {
	Config   *config.AppConfig
	Machine  *state.Machine[state.AppState]
	Input    *system.InputSystem
	Keyboard system.Keyboard
	Pointer  system.Pointer
	Logger   *slog.Logger
	Recorder *replay.Recorder
	World    *ecs.World

	// FPS reports the measured frame rate; defaults to ebiten.ActualFPS
	FPS func() float64
}

// Game implements ebiten.Game
type Game struct {
	machine  *state.Machine[state.AppState]
	world    *ecs.World
	input    *system.InputSystem
	keyboard system.Keyboard
	pointer  system.Pointer
	logger   *slog.Logger
	recorder *replay.Recorder
	fps      func() float64

	overlay    config.OverlayConfig
	background color.RGBA
	screenW    int
	screenH    int
	frame      int

	textCache map[string]*ebiten.Image
}

// New creates a Game and spawns its persistent overlay nodes
func New(opts Options) (*Game, error) {
	if opts.Config == nil || opts.Machine == nil || opts.Input == nil {
		return nil, errors.New("game: config, machine and input are required")
	}
	bg, err := config.ParseHexColor(opts.Config.Window.Background)
	if err != nil {
		return nil, fmt.Errorf("game: background: %w", err)
	}

	g := &Game{
		machine:    opts.Machine,
		world:      opts.World,
		input:      opts.Input,
		keyboard:   opts.Keyboard,
		pointer:    opts.Pointer,
		logger:     opts.Logger,
		recorder:   opts.Recorder,
		fps:        opts.FPS,
		overlay:    opts.Config.Overlay,
		background: bg,
		screenW:    opts.Config.Window.Width,
		screenH:    opts.Config.Window.Height,
		textCache:  make(map[string]*ebiten.Image),
	}
	if g.world == nil {
		g.world = ecs.NewWorld()
	}
	if g.keyboard == nil {
		g.keyboard = system.EbitenKeyboard{}
	}
	if g.pointer == nil {
		g.pointer = system.EbitenPointer{}
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.fps == nil {
		g.fps = ebiten.ActualFPS
	}

	g.spawnOverlay()
	return g, nil
}

func (g *Game) spawnOverlay() {
	margin := g.overlay.Margin
	if g.overlay.ShowState {
		id := g.world.SpawnText("",
			ecs.Transform{X: margin, Y: margin},
			ecs.Text{
				Sections: []ecs.TextSection{{Value: g.machine.Current().String(), Color: colorStateLabel}},
				FontSize: g.overlay.FontSize,
			},
		)
		g.world.IsStateLabel[id] = struct{}{}
	}
	if g.overlay.ShowFPS {
		id := g.world.SpawnText("",
			ecs.Transform{X: margin, Y: margin, Align: ecs.AlignRight},
			ecs.Text{
				Sections: []ecs.TextSection{
					{Value: "FPS: ", Color: colorFPSLabel},
					{Value: "", Color: colorFPSValue},
				},
				FontSize: g.overlay.FontSize,
			},
		)
		g.world.IsFPSText[id] = struct{}{}
	}
}

// Start seals the machine and, when configured, enters the initial state.
// It is a no-op once the machine has started.
func (g *Game) Start(ctx context.Context) error {
	if g.machine.Started() {
		return nil
	}
	if err := g.machine.Start(g.context(ctx)); err != nil {
		return err
	}
	g.logger.Info("state machine started", "state", g.machine.Current())
	return nil
}

// Update applies the intents of this tick's key presses and button click,
// then refreshes the overlay. Rejected transitions are logged, never
// returned.
func (g *Game) Update() error {
	g.frame++
	ctx := g.context(context.Background())

	for _, b := range g.input.Poll(g.keyboard) {
		g.logger.Debug("key pressed", "key", b.Name, "intent", b.Intent.String())
		g.Apply(ctx, b.Intent)
	}
	if x, y, ok := g.pointer.JustClicked(); ok {
		g.click(ctx, x, y)
	}

	ecs.StateLabelSystem(g.world, g.machine.Current().String())
	if g.overlay.ShowFPS {
		ecs.FPSSystem(g.world, g.fps())
	}
	return nil
}

// Apply issues intent on the machine, records it and logs the outcome
func (g *Game) Apply(ctx context.Context, intent system.Intent) (state.AppState, error) {
	if g.recorder != nil {
		g.recorder.Record(g.frame, intent)
	}

	from := g.machine.Current()
	to, err := intent.Apply(g.context(ctx), g.machine)
	switch {
	case errors.Is(err, state.ErrNoOpTransition):
		g.logger.Warn("already in state", "state", from)
	case err != nil:
		g.logger.Warn("transition failed", "intent", intent.String(), "kind", state.Kind(err), "err", err)
	default:
		g.logger.Info("state changed", "from", from, "to", to, "depth", g.machine.Depth())
	}
	return to, err
}

// click issues the command of the button under (x, y), if any
func (g *Game) click(ctx context.Context, x, y int) {
	id, ok := g.world.ButtonAt(x, y, g.screenW)
	if !ok {
		return
	}
	btn := g.world.Button[id]
	if btn.Command == "" {
		return
	}
	intent, err := system.ParseIntent(btn.Command)
	if err != nil {
		g.logger.Warn("bad button command", "button", btn.Label, "cmd", btn.Command, "err", err)
		return
	}
	g.logger.Debug("button clicked", "button", btn.Label, "intent", intent.String())
	g.Apply(ctx, intent)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// World returns the UI world
func (g *Game) World() *ecs.World {
	return g.world
}

// Frame returns the number of ticks run so far
func (g *Game) Frame() int {
	return g.frame
}

// context attaches the UI world unless ctx already carries one
func (g *Game) context(ctx context.Context) context.Context {
	if _, ok := ecs.FromContext(ctx); ok {
		return ctx
	}
	return ecs.NewContext(ctx, g.world)
}
