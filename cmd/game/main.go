package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/avoidtrouble/internal/application/game"
	"github.com/younwookim/avoidtrouble/internal/application/replay"
	"github.com/younwookim/avoidtrouble/internal/application/scene"
	"github.com/younwookim/avoidtrouble/internal/application/scene/menu"
	"github.com/younwookim/avoidtrouble/internal/application/scene/paused"
	"github.com/younwookim/avoidtrouble/internal/application/scene/playing"
	"github.com/younwookim/avoidtrouble/internal/application/state"
	"github.com/younwookim/avoidtrouble/internal/application/system"
	"github.com/younwookim/avoidtrouble/internal/infrastructure/config"
	"github.com/younwookim/avoidtrouble/internal/infrastructure/logging"
)

//go:embed configs
var configFS embed.FS

func main() {
	recordFlag := flag.String("record", "", "Record transitions to file (e.g., -record replay.json)")
	configDir := flag.String("config", "", "Load configs from this directory instead of the embedded ones")
	stageName := flag.String("stage", "demo", "Stage shown in game")
	flag.Parse()

	if err := run(*configDir, *stageName, *recordFlag); err != nil {
		log.Fatal(err)
	}
}

func run(configDir, stageName, recordFilename string) error {
	loader, err := newLoader(configDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll(stageName)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appCfg := cfg.Game
	if err := appCfg.ValidateStates(func(name string) error {
		_, err := state.ParseAppState(name)
		return err
	}); err != nil {
		return err
	}

	logger := logging.New(os.Stderr, appCfg.Log.Level)
	slog.SetDefault(logger)

	initial, err := state.ParseAppState(appCfg.States.Initial)
	if err != nil {
		return err
	}
	var opts []state.Option[state.AppState]
	if appCfg.States.InitialEnter {
		opts = append(opts, state.WithInitialEnter[state.AppState]())
	}
	machine, err := state.NewAppMachine(initial, opts...)
	if err != nil {
		return err
	}
	if err := scene.Bind(machine, map[state.AppState]scene.Scene{
		state.StateMainMenu: menu.New(appCfg.Window.Title, appCfg.Window.Height),
		state.StateInGame:   playing.New(cfg.Stage, cfg.Entities),
		state.StatePaused:   paused.New(appCfg.Window.Width, appCfg.Window.Height),
	}); err != nil {
		return err
	}

	input, err := system.NewInputSystem(appCfg.Keys)
	if err != nil {
		return fmt.Errorf("failed to bind keys: %w", err)
	}

	var recorder *replay.Recorder
	if recordFilename != "" {
		recorder = replay.NewRecorder(initial.String())
		logger.Info("recording enabled", "file", recordFilename)
	}

	g, err := game.New(game.Options{
		Config:   appCfg,
		Machine:  machine,
		Input:    input,
		Logger:   logger,
		Recorder: recorder,
	})
	if err != nil {
		return err
	}
	if err := g.Start(context.Background()); err != nil {
		return err
	}

	ebiten.SetWindowSize(appCfg.Window.Width, appCfg.Window.Height)
	ebiten.SetWindowTitle(appCfg.Window.Title)
	ebiten.SetTPS(appCfg.Window.TPS)
	ebiten.SetVsyncEnabled(appCfg.Window.VSync)
	if appCfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}

	runErr := ebiten.RunGame(g)

	if recorder != nil {
		recorder.Stop()
		if err := recorder.Save(recordFilename); err != nil {
			logger.Error("failed to save recording", "err", err)
		} else {
			logger.Info("recording saved", "file", recordFilename, "commands", recorder.FrameCount())
		}
	}
	return runErr
}

func newLoader(configDir string) (*config.Loader, error) {
	if configDir != "" {
		return config.NewLoader(configDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
