package render

import (
	"image/color"

	"life-canvas/internal/core"
)

// Palette holds the colours used by the grid renderer.
type Palette struct {
	Grid  color.Color
	Dead  color.Color
	Alive color.Color
}

// DefaultPalette is black cells on white with light grey gridlines.
func DefaultPalette() Palette {
	return Palette{
		Grid:  color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
		Dead:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Alive: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	}
}

// CellColor returns the fill for a cell state. Only core.Dead is drawn dead.
func (p Palette) CellColor(state uint8) color.Color {
	if state == core.Dead {
		return p.Dead
	}
	return p.Alive
}

// rgba converts any colour into the 8-bit RGBA the surfaces store.
func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
