package render

import "image"

// GridRenderer paints a cell buffer onto a Surface. It keeps no state between
// calls, so repainting the same buffer always yields the same image.
type GridRenderer struct {
	geom    Geometry
	palette Palette
}

// NewGridRenderer returns a renderer for geom using palette.
func NewGridRenderer(geom Geometry, palette Palette) *GridRenderer {
	return &GridRenderer{geom: geom, palette: palette}
}

// Geometry returns the viewport geometry the renderer draws with.
func (r *GridRenderer) Geometry() Geometry { return r.geom }

// Repaint draws gridlines and then every cell of the row-major buffer. A
// buffer of the wrong length only gets the gridlines.
func (r *GridRenderer) Repaint(dst Surface, cells []uint8) {
	r.drawGrid(dst)
	if len(cells) != r.geom.Cols*r.geom.Rows {
		return
	}
	r.drawCells(dst, cells)
}

func (r *GridRenderer) drawGrid(dst Surface) {
	w, h := r.geom.SurfaceSize()
	pitch := r.geom.Pitch()
	for i := 0; i <= r.geom.Cols; i++ {
		dst.StrokeLine(i*pitch, 0, i*pitch, h-1, r.palette.Grid)
	}
	for j := 0; j <= r.geom.Rows; j++ {
		dst.StrokeLine(0, j*pitch, w-1, j*pitch, r.palette.Grid)
	}
}

func (r *GridRenderer) drawCells(dst Surface, cells []uint8) {
	size := r.geom.CellSize
	for row := 0; row < r.geom.Rows; row++ {
		for col := 0; col < r.geom.Cols; col++ {
			x, y := r.geom.CellOrigin(row, col)
			dst.FillRect(x, y, size, size, r.palette.CellColor(cells[r.geom.Index(row, col)]))
		}
	}
}

// Snapshot renders cells into a fresh in-memory image.
func (r *GridRenderer) Snapshot(cells []uint8) *ImageSurface {
	s := NewImageSurface(r.geom)
	r.Repaint(s, cells)
	return s
}

// CellRect returns the pixel rectangle covered by the cell square at
// (row, col).
func (r *GridRenderer) CellRect(row, col int) image.Rectangle {
	x, y := r.geom.CellOrigin(row, col)
	return image.Rect(x, y, x+r.geom.CellSize, y+r.geom.CellSize)
}
