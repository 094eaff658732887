package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks sizes, colours and binding actions. State names are
// resolved by the caller, which owns the state set.
func (c *AppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.Window.TPS)
	}
	if _, err := ParseHexColor(c.Window.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	if c.States.Initial == "" {
		return fmt.Errorf("%w: no initial state", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Keys))
	for i, k := range c.Keys {
		if k.Key == "" {
			return fmt.Errorf("%w: keys[%d]: empty key", ErrInvalidConfig, i)
		}
		if seen[strings.ToLower(k.Key)] {
			return fmt.Errorf("%w: keys[%d]: %s bound twice", ErrInvalidConfig, i, k.Key)
		}
		seen[strings.ToLower(k.Key)] = true

		switch k.Action {
		case ActionRequest, ActionPush:
			if k.State == "" {
				return fmt.Errorf("%w: keys[%d]: %s needs a state", ErrInvalidConfig, i, k.Action)
			}
		case ActionPop:
		default:
			return fmt.Errorf("%w: keys[%d]: unknown action %q", ErrInvalidConfig, i, k.Action)
		}
	}
	return nil
}

// ValidateStates resolves every state name in the config with parse.
func (c *AppConfig) ValidateStates(parse func(string) error) error {
	if err := parse(c.States.Initial); err != nil {
		return fmt.Errorf("%w: initial state: %v", ErrInvalidConfig, err)
	}
	for i, k := range c.Keys {
		if k.Action == ActionPop {
			continue
		}
		if err := parse(k.State); err != nil {
			return fmt.Errorf("%w: keys[%d]: %v", ErrInvalidConfig, i, err)
		}
	}
	return nil
}

// ParseHexColor parses "RRGGBB" or "RRGGBBAA", with or without a leading '#'
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("bad hex colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex colour %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
