package config

// GameConfig holds all loaded configurations
type GameConfig struct {
	Game     *AppConfig
	Entities *EntitiesConfig
	Stage    *StageConfig
}

// AppConfig is the root config for game.json / game.toml
type AppConfig struct {
	Window  WindowConfig  `json:"window" toml:"window"`
	Overlay OverlayConfig `json:"overlay" toml:"overlay"`
	States  StatesConfig  `json:"states" toml:"states"`
	Keys    []KeyBinding  `json:"keys" toml:"keys"`
	Log     LogConfig     `json:"log" toml:"log"`
}

type WindowConfig struct {
	Title      string `json:"title" toml:"title" env:"AVOID_TITLE"`
	Width      int    `json:"width" toml:"width" env:"AVOID_WIDTH"`
	Height     int    `json:"height" toml:"height" env:"AVOID_HEIGHT"`
	TPS        int    `json:"tps" toml:"tps" env:"AVOID_TPS"`
	VSync      bool   `json:"vsync" toml:"vsync" env:"AVOID_VSYNC"`
	Resizable  bool   `json:"resizable" toml:"resizable"`
	Background string `json:"background" toml:"background"` // RRGGBB hex
}

// OverlayConfig configures the state label and FPS counter
type OverlayConfig struct {
	ShowState bool `json:"showState" toml:"show_state"`
	ShowFPS   bool `json:"showFps" toml:"show_fps" env:"AVOID_SHOW_FPS"`
	FontSize  int  `json:"fontSize" toml:"font_size"`
	Margin    int  `json:"margin" toml:"margin"`
}

type StatesConfig struct {
	Initial      string `json:"initial" toml:"initial" env:"AVOID_INITIAL_STATE"`
	InitialEnter bool   `json:"initialEnter" toml:"initial_enter"`
}

// KeyBinding maps a key to a transition command.
// Action is "request", "push" or "pop"; State is ignored for "pop".
type KeyBinding struct {
	Key    string `json:"key" toml:"key"`
	Action string `json:"action" toml:"action"`
	State  string `json:"state,omitempty" toml:"state"`
}

type LogConfig struct {
	Level string `json:"level" toml:"level" env:"AVOID_LOG_LEVEL"`
}

// Binding actions
const (
	ActionRequest = "request"
	ActionPush    = "push"
	ActionPop     = "pop"
)

// Default returns the built-in configuration: the "Avoid Trouble" window
// with M/G/P/Escape bound to the three states.
func Default() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Title:      "Avoid Trouble",
			Width:      700,
			Height:     500,
			TPS:        60,
			VSync:      false,
			Resizable:  false,
			Background: "2E3440",
		},
		Overlay: OverlayConfig{
			ShowState: true,
			ShowFPS:   true,
			FontSize:  30,
			Margin:    2,
		},
		States: StatesConfig{
			Initial: "MainMenu",
		},
		Keys: DefaultKeys(),
		Log: LogConfig{Level: "info"},
	}
}

// DefaultKeys returns the M/G/P/Escape bindings
func DefaultKeys() []KeyBinding {
	return []KeyBinding{
		{Key: "M", Action: ActionRequest, State: "MainMenu"},
		{Key: "G", Action: ActionRequest, State: "InGame"},
		{Key: "P", Action: ActionPush, State: "Paused"},
		{Key: "Escape", Action: ActionPop},
	}
}
