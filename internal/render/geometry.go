package render

import (
	"image"
	"math"

	"life-canvas/internal/core"
)

// DefaultCellSize is the edge length of a cell square in pixels.
const DefaultCellSize = 8

// Geometry maps between grid cells and raster pixels. Each cell is a
// CellSize square separated from its neighbours by a 1-pixel gridline.
type Geometry struct {
	CellSize int
	Cols     int
	Rows     int
}

// NewGeometry derives the viewport geometry for a grid. Non-positive cell
// sizes fall back to DefaultCellSize.
func NewGeometry(size core.Size, cellSize int) Geometry {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return Geometry{CellSize: cellSize, Cols: size.W, Rows: size.H}
}

// Size returns the grid dimensions in cells.
func (g Geometry) Size() core.Size { return core.Size{W: g.Cols, H: g.Rows} }

// Pitch is the distance in pixels between the origins of adjacent cells.
func (g Geometry) Pitch() int { return g.CellSize + 1 }

// SurfaceSize returns the raster size in pixels, including the outer border.
func (g Geometry) SurfaceSize() (w, h int) {
	return g.Pitch()*g.Cols + 1, g.Pitch()*g.Rows + 1
}

// Bounds returns the raster rectangle anchored at the origin.
func (g Geometry) Bounds() image.Rectangle {
	w, h := g.SurfaceSize()
	return image.Rect(0, 0, w, h)
}

// CellOrigin returns the top-left pixel of the cell square at (row, col).
func (g Geometry) CellOrigin(row, col int) (x, y int) {
	return col*g.Pitch() + 1, row*g.Pitch() + 1
}

// Index returns the buffer index of (row, col).
func (g Geometry) Index(row, col int) int { return core.Index(g.Cols, row, col) }

// Coords is the inverse of Index.
func (g Geometry) Coords(idx int) (row, col int) { return core.Coords(g.Cols, idx) }

// CellAt maps surface-local coordinates onto a cell. A point on a gridline
// belongs to the cell whose top-left corner sits on that line. ok is false
// for points outside the grid, including the right and bottom border.
func (g Geometry) CellAt(x, y float64) (row, col int, ok bool) {
	if x < 0 || y < 0 || math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	pitch := float64(g.Pitch())
	col = int(math.Floor(x / pitch))
	row = int(math.Floor(y / pitch))
	if !g.Size().Contains(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// Local converts a device position into surface-local coordinates given the
// surface's on-screen origin.
func Local(device, origin image.Point) image.Point { return device.Sub(origin) }
