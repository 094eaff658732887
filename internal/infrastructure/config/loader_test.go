package config

import (
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs").WithEnvironment(map[string]string{})

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, "Avoid Trouble", cfg.Window.Title)
	assert.Equal(t, 700, cfg.Window.Width)
	assert.Equal(t, 500, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Window.TPS)
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, "2E3440", cfg.Window.Background)
	assert.Equal(t, "MainMenu", cfg.States.Initial)
	assert.True(t, cfg.Overlay.ShowFPS)
	assert.Len(t, cfg.Keys, 4)
}

func TestLoader_LoadGame_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json": {Data: []byte(`{"window":{"title":"Test"}}`)},
	}
	loader := NewFSLoader(fsys, "mem").WithEnvironment(map[string]string{})

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, "Test", cfg.Window.Title)
	assert.Equal(t, 700, cfg.Window.Width)
	assert.Equal(t, Default().Keys, cfg.Keys)
}

func TestLoader_LoadGame_TOML(t *testing.T) {
	fsys := fstest.MapFS{
		"game.toml": {Data: []byte(`
[window]
title = "From TOML"
width = 320
height = 240

[states]
initial = "InGame"
initial_enter = true

[[keys]]
key = "Space"
action = "push"
state = "Paused"

[[keys]]
key = "Backspace"
action = "pop"
`)},
	}
	loader := NewFSLoader(fsys, "mem").WithEnvironment(map[string]string{})

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, "From TOML", cfg.Window.Title)
	assert.Equal(t, 320, cfg.Window.Width)
	assert.Equal(t, 240, cfg.Window.Height)
	assert.Equal(t, "InGame", cfg.States.Initial)
	assert.True(t, cfg.States.InitialEnter)
	require.Len(t, cfg.Keys, 2)
	assert.Equal(t, KeyBinding{Key: "Space", Action: ActionPush, State: "Paused"}, cfg.Keys[0])
	assert.Equal(t, ActionPop, cfg.Keys[1].Action)
}

func TestLoader_LoadGame_PrefersJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json": {Data: []byte(`{"window":{"title":"json"}}`)},
		"game.toml": {Data: []byte("[window]\ntitle = \"toml\"\n")},
	}

	cfg, err := NewFSLoader(fsys, "mem").WithEnvironment(map[string]string{}).LoadGame()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Window.Title)
}

func TestLoader_LoadGame_EnvOverrides(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json": {Data: []byte(`{}`)},
	}
	loader := NewFSLoader(fsys, "mem").WithEnvironment(map[string]string{
		"AVOID_TITLE":         "Env Title",
		"AVOID_WIDTH":         "1280",
		"AVOID_TPS":           "30",
		"AVOID_LOG_LEVEL":     "debug",
		"AVOID_INITIAL_STATE": "Paused",
	})

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, "Env Title", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 500, cfg.Window.Height)
	assert.Equal(t, 30, cfg.Window.TPS)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Paused", cfg.States.Initial)
}

func TestLoader_LoadGame_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing", fstest.MapFS{}},
		{"bad json", fstest.MapFS{"game.json": {Data: []byte(`{`)}}},
		{"bad toml", fstest.MapFS{"game.toml": {Data: []byte(`[window`)}}},
		{"invalid size", fstest.MapFS{"game.json": {Data: []byte(`{"window":{"width":0}}`)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, "mem").WithEnvironment(map[string]string{}).LoadGame()
			assert.Error(t, err)
		})
	}
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Player.Width)
	assert.Equal(t, 16, cfg.Player.Height)
	assert.NotEmpty(t, cfg.Obstacle.Color)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, 1, cfg.Number)
	assert.Equal(t, 48, cfg.PlayerSpawn.X)
	assert.Equal(t, 400, cfg.PlayerSpawn.Y)
	assert.Len(t, cfg.Obstacles, 3)

	_, err = loader.LoadStage("nope")
	assert.Error(t, err)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs").WithEnvironment(map[string]string{})

	cfg, err := loader.LoadAll("demo")
	require.NoError(t, err)

	assert.NotNil(t, cfg.Game)
	assert.NotNil(t, cfg.Entities)
	assert.NotNil(t, cfg.Stage)
}

func TestAppConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *AppConfig)
	}{
		{"zero height", func(c *AppConfig) { c.Window.Height = 0 }},
		{"zero tps", func(c *AppConfig) { c.Window.TPS = 0 }},
		{"bad colour", func(c *AppConfig) { c.Window.Background = "zzzzzz" }},
		{"no initial", func(c *AppConfig) { c.States.Initial = "" }},
		{"empty key", func(c *AppConfig) { c.Keys[0].Key = "" }},
		{"duplicate key", func(c *AppConfig) { c.Keys[1].Key = "m" }},
		{"unknown action", func(c *AppConfig) { c.Keys[0].Action = "jump" }},
		{"push without state", func(c *AppConfig) { c.Keys[2].State = "" }},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestAppConfig_ValidateStates(t *testing.T) {
	known := map[string]bool{"MainMenu": true, "InGame": true, "Paused": true}
	parse := func(s string) error {
		if !known[s] {
			return assert.AnError
		}
		return nil
	}

	require.NoError(t, Default().ValidateStates(parse))

	cfg := Default()
	cfg.Keys[0].State = "GameOver"
	assert.ErrorIs(t, cfg.ValidateStates(parse), ErrInvalidConfig)

	cfg = Default()
	cfg.States.Initial = "Nowhere"
	assert.ErrorIs(t, cfg.ValidateStates(parse), ErrInvalidConfig)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("2E3440")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x2e, 0x34, 0x40, 0xff}, c)

	c, err = ParseHexColor("#ffd70080")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0xd7, 0x00, 0x80}, c)

	_, err = ParseHexColor("abc")
	assert.Error(t, err)
	_, err = ParseHexColor("gggggg")
	assert.Error(t, err)
}
