package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/avoidtrouble/internal/ecs"
)

// Draw renders every node in spawn order: panels first, then any text on
// top of them.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	for _, id := range g.world.Entities() {
		if p, ok := g.world.Panel[id]; ok {
			x, y := g.world.ScreenPos(id, g.screenW)
			ebitenutil.DrawRect(screen, float64(x), float64(y), float64(p.Width), float64(p.Height), p.Color)
		}
		t, ok := g.world.Text[id]
		if !ok {
			continue
		}
		var x, y int
		if _, isButton := g.world.Button[id]; isButton {
			x, y = g.world.LabelPos(id, g.screenW)
		} else {
			x, y = g.world.ScreenPos(id, g.screenW)
		}
		g.drawText(screen, t, x, y)
	}
}

// drawText draws each section with its own colour, scaled up from the
// debug font
func (g *Game) drawText(screen *ebiten.Image, t ecs.Text, x, y int) {
	scale := float64(t.Height()) / ecs.GlyphHeight
	dx := 0.0
	for _, sec := range t.Sections {
		if sec.Value == "" {
			continue
		}
		img := g.glyphs(sec.Value)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(x)+dx, float64(y))
		op.ColorScale.ScaleWithColor(sec.Color)
		screen.DrawImage(img, op)
		dx += float64(len(sec.Value)*ecs.GlyphWidth) * scale
	}
}

// glyphs returns a white rendering of s, cached by content. The FPS value
// changes every tick, so the cache is dropped when it grows large.
func (g *Game) glyphs(s string) *ebiten.Image {
	if img, ok := g.textCache[s]; ok {
		return img
	}
	if len(g.textCache) > 256 {
		for k, img := range g.textCache {
			img.Deallocate()
			delete(g.textCache, k)
		}
	}
	img := ebiten.NewImage(len(s)*ecs.GlyphWidth, ecs.GlyphHeight)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	g.textCache[s] = img
	return img
}
