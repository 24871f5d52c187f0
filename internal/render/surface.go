package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Surface is the raster target of the grid renderer. It only ever receives
// filled rectangles and 1-pixel lines, both in pixel-index coordinates.
type Surface interface {
	FillRect(x, y, w, h int, c color.Color)
	StrokeLine(x0, y0, x1, y1 int, c color.Color)
}

// ImageSurface draws into an in-memory RGBA image.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface allocates an image sized for geom.
func NewImageSurface(geom Geometry) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(geom.Bounds())}
}

// Image exposes the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// FillRect paints a w×h rectangle with its top-left corner at (x, y).
func (s *ImageSurface) FillRect(x, y, w, h int, c color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// StrokeLine paints every pixel from (x0, y0) to (x1, y1) inclusive.
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1 int, c color.Color) {
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	col := rgba(c)
	if steps == 0 {
		s.set(x0, y0, col)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + (dx*i+sign(dx)*steps/2)/steps
		y := y0 + (dy*i+sign(dy)*steps/2)/steps
		s.set(x, y, col)
	}
}

func (s *ImageSurface) set(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(s.img.Bounds()) {
		return
	}
	s.img.SetRGBA(x, y, c)
}

// WritePNG encodes the surface as PNG.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
