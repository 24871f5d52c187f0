//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws into an offscreen ebiten image that the game blits to
// the screen each frame.
type EbitenSurface struct {
	img *ebiten.Image
}

// NewEbitenSurface allocates an offscreen image sized for geom.
func NewEbitenSurface(geom Geometry) *EbitenSurface {
	w, h := geom.SurfaceSize()
	return &EbitenSurface{img: ebiten.NewImage(w, h)}
}

// Image exposes the offscreen image.
func (s *EbitenSurface) Image() *ebiten.Image { return s.img }

// FillRect paints a w×h rectangle with its top-left corner at (x, y).
func (s *EbitenSurface) FillRect(x, y, w, h int, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

// StrokeLine paints every pixel from (x0, y0) to (x1, y1) inclusive.
// Axis-aligned lines are filled as 1-pixel rectangles so they land exactly
// on the pixel grid.
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1 int, c color.Color) {
	switch {
	case x0 == x1:
		top, bottom := min(y0, y1), max(y0, y1)
		s.FillRect(x0, top, 1, bottom-top+1, c)
	case y0 == y1:
		left, right := min(x0, x1), max(x0, x1)
		s.FillRect(left, y0, right-left+1, 1, c)
	default:
		vector.StrokeLine(s.img, float32(x0)+0.5, float32(y0)+0.5, float32(x1)+0.5, float32(y1)+0.5, 1, c, false)
	}
}

// Blit draws the surface onto dst with its top-left corner at (x, y).
func (s *EbitenSurface) Blit(dst *ebiten.Image, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(s.img, op)
}
