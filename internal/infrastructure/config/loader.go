package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Loader loads game configuration from JSON or TOML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
	environ  map[string]string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// WithEnvironment replaces the process environment used for overrides.
func (l *Loader) WithEnvironment(environ map[string]string) *Loader {
	l.environ = environ
	return l
}

// LoadGame loads game.json, falling back to game.toml, on top of Default.
// Environment overrides are applied last, then the result is validated.
func (l *Loader) LoadGame() (*AppConfig, error) {
	cfg := Default()
	// Decoders reuse existing slice elements; bindings from a file must not
	// inherit fields of the defaults.
	cfg.Keys = nil

	data, err := fs.ReadFile(l.fsys, "game.json")
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse game.json: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		data, err = fs.ReadFile(l.fsys, "game.toml")
		if err != nil {
			return nil, fmt.Errorf("failed to read game.json or game.toml in %s: %w", l.basePath, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse game.toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	if cfg.Keys == nil {
		cfg.Keys = DefaultKeys()
	}
	if err := l.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg fields tagged with env from the environment.
func (l *Loader) ApplyEnv(cfg *AppConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: l.environ}); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.json: %w", err)
	}

	var cfg EntitiesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.json: %w", err)
	}

	return &cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads the game config, entities and the named stage
func (l *Loader) LoadAll(stage string) (*GameConfig, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	stageCfg, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Game:     game,
		Entities: entities,
		Stage:    stageCfg,
	}, nil
}
