package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return Index(g.W, row, col) }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// Clear fills the grid with Dead cells.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Index maps (row, col) onto a row-major buffer of the given width.
func Index(width, row, col int) int { return row*width + col }

// Coords is the inverse of Index.
func Coords(width, idx int) (row, col int) { return idx / width, idx % width }
