package ecs

import "fmt"

// StateLabelSystem writes the current state name into the first section of
// every state label
func StateLabelSystem(w *World, name string) {
	for id := range w.IsStateLabel {
		text, ok := w.Text[id]
		if !ok || len(text.Sections) == 0 {
			continue
		}
		text.Sections[0].Value = name
		w.Text[id] = text
	}
}

// FPSSystem writes fps into the second section of every FPS text.
// The first section holds the "FPS: " prefix.
func FPSSystem(w *World, fps float64) {
	for id := range w.IsFPSText {
		text, ok := w.Text[id]
		if !ok || len(text.Sections) < 2 {
			continue
		}
		text.Sections[1].Value = fmt.Sprintf("%.2f", fps)
		w.Text[id] = text
	}
}

// Size returns the node's size in pixels. Panels take their own size; bare
// text nodes take the size of their text.
func (w *World) Size(id EntityID) (width, height int) {
	if p, ok := w.Panel[id]; ok {
		return p.Width, p.Height
	}
	if t, ok := w.Text[id]; ok {
		return t.Width(), t.Height()
	}
	return 0, 0
}

// ScreenPos resolves the node's top-left corner on a screen screenW wide
func (w *World) ScreenPos(id EntityID, screenW int) (x, y int) {
	tf := w.Transform[id]
	width, _ := w.Size(id)
	switch tf.Align {
	case AlignRight:
		return screenW - width - tf.X, tf.Y
	case AlignCenter:
		return (screenW-width)/2 + tf.X, tf.Y
	default:
		return tf.X, tf.Y
	}
}

// ButtonAt returns the topmost button containing the screen point (x, y).
// Later spawns are drawn on top, so they win.
func (w *World) ButtonAt(x, y, screenW int) (EntityID, bool) {
	ids := w.Entities()
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		if _, ok := w.Button[id]; !ok {
			continue
		}
		px, py := w.ScreenPos(id, screenW)
		width, height := w.Size(id)
		if x >= px && x < px+width && y >= py && y < py+height {
			return id, true
		}
	}
	return 0, false
}

// LabelPos returns where a button's label is drawn so it is centred in the
// button
func (w *World) LabelPos(id EntityID, screenW int) (x, y int) {
	px, py := w.ScreenPos(id, screenW)
	p := w.Panel[id]
	t := w.Text[id]
	return px + (p.Width-t.Width())/2, py + (p.Height-t.Height())/2
}
