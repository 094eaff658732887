package ecs

import "image/color"

// GlyphWidth and GlyphHeight are the size of one debug-font character at
// font size GlyphHeight.
const (
	GlyphWidth  = 6
	GlyphHeight = 16
)

// Align anchors a node horizontally against the screen edges
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Transform places a node. X is an offset from the anchored edge.
type Transform struct {
	X, Y  int
	Align Align
}

// TextSection is one run of text drawn with its own colour
type TextSection struct {
	Value string
	Color color.RGBA
}

// Text is a label made of sections drawn left to right
type Text struct {
	Sections []TextSection
	FontSize int
}

// String returns the concatenated section values
func (t Text) String() string {
	s := ""
	for _, sec := range t.Sections {
		s += sec.Value
	}
	return s
}

// Width returns the text width in pixels
func (t Text) Width() int {
	return len(t.String()) * GlyphWidth * t.scale()
}

// Height returns the text height in pixels
func (t Text) Height() int {
	return GlyphHeight * t.scale()
}

func (t Text) scale() int {
	if t.FontSize < GlyphHeight {
		return 1
	}
	return t.FontSize / GlyphHeight
}

// Panel is a filled rectangle
type Panel struct {
	Width, Height int
	Color         color.RGBA
}

// Button marks a panel the user can activate. Command is the transition
// command line issued on a click, e.g. "request InGame"; empty means inert.
type Button struct {
	Label   string
	Command string
}
