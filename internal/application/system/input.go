package system

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/avoidtrouble/internal/infrastructure/config"
)

// Keyboard reports discrete key presses for the current tick
type Keyboard interface {
	JustPressed(key ebiten.Key) bool
}

// EbitenKeyboard reads key presses from ebiten's input state
type EbitenKeyboard struct{}

// JustPressed reports whether key went down this tick
func (EbitenKeyboard) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// Pointer reports a primary-button click for the current tick
type Pointer interface {
	// JustClicked returns the cursor position when the left button went
	// down this tick
	JustClicked() (x, y int, ok bool)
}

// EbitenPointer reads clicks from ebiten's mouse state
type EbitenPointer struct{}

// JustClicked implements Pointer
func (EbitenPointer) JustClicked() (x, y int, ok bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y = ebiten.CursorPosition()
	return x, y, true
}

// Binding maps a key to the intent it issues
type Binding struct {
	Key    ebiten.Key
	Name   string
	Intent Intent
}

// InputSystem turns key presses into intents
type InputSystem struct {
	bindings []Binding
}

// NewInputSystem resolves configured key bindings
func NewInputSystem(keys []config.KeyBinding) (*InputSystem, error) {
	s := &InputSystem{bindings: make([]Binding, 0, len(keys))}
	seen := make(map[ebiten.Key]string, len(keys))
	for i, k := range keys {
		key, ok := KeyByName(k.Key)
		if !ok {
			return nil, fmt.Errorf("keys[%d]: unknown key %q", i, k.Key)
		}
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("keys[%d]: %q is the same key as %q", i, k.Key, prev)
		}
		seen[key] = k.Key
		intent, err := NewIntent(k.Action, k.State)
		if err != nil {
			return nil, fmt.Errorf("keys[%d]: %w", i, err)
		}
		s.bindings = append(s.bindings, Binding{Key: key, Name: k.Key, Intent: intent})
	}
	return s, nil
}

// Bindings returns the resolved bindings in configuration order
func (s *InputSystem) Bindings() []Binding {
	out := make([]Binding, len(s.bindings))
	copy(out, s.bindings)
	return out
}

// Poll returns the intents whose keys were just pressed, in binding order
func (s *InputSystem) Poll(kb Keyboard) []Binding {
	var pressed []Binding
	for _, b := range s.bindings {
		if kb.JustPressed(b.Key) {
			pressed = append(pressed, b)
		}
	}
	return pressed
}

var namedKeys = map[string]ebiten.Key{
	"escape":    ebiten.KeyEscape,
	"esc":       ebiten.KeyEscape,
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"f1":        ebiten.KeyF1,
	"f2":        ebiten.KeyF2,
	"f3":        ebiten.KeyF3,
	"f4":        ebiten.KeyF4,
	"f5":        ebiten.KeyF5,
	"f6":        ebiten.KeyF6,
	"f7":        ebiten.KeyF7,
	"f8":        ebiten.KeyF8,
	"f9":        ebiten.KeyF9,
	"f10":       ebiten.KeyF10,
	"f11":       ebiten.KeyF11,
	"f12":       ebiten.KeyF12,
}

var letterKeys = [...]ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF,
	ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL,
	ebiten.KeyM, ebiten.KeyN, ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR,
	ebiten.KeyS, ebiten.KeyT, ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX,
	ebiten.KeyY, ebiten.KeyZ,
}

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// KeyByName resolves a key name such as "M", "7", "Escape" or "F5",
// case-insensitively
func KeyByName(name string) (ebiten.Key, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) == 1 {
		switch c := n[0]; {
		case c >= 'a' && c <= 'z':
			return letterKeys[c-'a'], true
		case c >= '0' && c <= '9':
			return digitKeys[c-'0'], true
		}
	}
	key, ok := namedKeys[n]
	return key, ok
}
