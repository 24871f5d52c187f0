package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"life-canvas/internal/core"
)

type recordingSurface struct {
	fills []color.Color
	lines int
}

func (s *recordingSurface) FillRect(x, y, w, h int, c color.Color) { s.fills = append(s.fills, c) }
func (s *recordingSurface) StrokeLine(x0, y0, x1, y1 int, c color.Color) { s.lines++ }

func TestRepaintCommandCounts(t *testing.T) {
	geom := NewGeometry(core.Size{W: 5, H: 3}, 8)
	r := NewGridRenderer(geom, DefaultPalette())
	s := &recordingSurface{}
	r.Repaint(s, make([]uint8, 15))
	if s.lines != 6+4 {
		t.Fatalf("drew %d gridlines, want 10", s.lines)
	}
	if len(s.fills) != 15 {
		t.Fatalf("filled %d cells, want 15", len(s.fills))
	}
}

func TestRepaintSkipsCellsOnLengthMismatch(t *testing.T) {
	geom := NewGeometry(core.Size{W: 2, H: 2}, 8)
	s := &recordingSurface{}
	NewGridRenderer(geom, DefaultPalette()).Repaint(s, make([]uint8, 3))
	if len(s.fills) != 0 {
		t.Fatalf("filled %d cells from a short buffer", len(s.fills))
	}
	if s.lines != 6 {
		t.Fatalf("drew %d gridlines, want 6", s.lines)
	}
}

func TestRepaintColours(t *testing.T) {
	pal := DefaultPalette()
	geom := NewGeometry(core.Size{W: 3, H: 2}, 8)
	r := NewGridRenderer(geom, pal)
	// 7 is not a valid state; anything but Dead paints as alive.
	cells := []uint8{core.Alive, core.Dead, 7, core.Dead, core.Dead, core.Alive}
	img := r.Snapshot(cells).Image()

	want := []color.Color{pal.Alive, pal.Dead, pal.Alive, pal.Dead, pal.Dead, pal.Alive}
	for idx, c := range want {
		row, col := geom.Coords(idx)
		rect := r.CellRect(row, col)
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			for x := rect.Min.X; x < rect.Max.X; x++ {
				if img.RGBAAt(x, y) != rgba(c) {
					t.Fatalf("cell (%d,%d) pixel (%d,%d) = %v, want %v", row, col, x, y, img.RGBAAt(x, y), rgba(c))
				}
			}
		}
	}

	w, h := geom.SurfaceSize()
	grid := rgba(pal.Grid)
	for x := 0; x < w; x++ {
		for j := 0; j <= geom.Rows; j++ {
			if img.RGBAAt(x, j*geom.Pitch()) != grid {
				t.Fatalf("pixel (%d,%d) is not a gridline", x, j*geom.Pitch())
			}
		}
	}
	for y := 0; y < h; y++ {
		for i := 0; i <= geom.Cols; i++ {
			if img.RGBAAt(i*geom.Pitch(), y) != grid {
				t.Fatalf("pixel (%d,%d) is not a gridline", i*geom.Pitch(), y)
			}
		}
	}
}

func TestRepaintAfterClearIsAllDead(t *testing.T) {
	pal := DefaultPalette()
	geom := NewGeometry(core.Size{W: 4, H: 4}, 8)
	r := NewGridRenderer(geom, pal)
	cells := make([]uint8, 16)
	for i := range cells {
		cells[i] = uint8(i % 3)
	}
	s := NewImageSurface(geom)
	r.Repaint(s, cells)
	for i := range cells {
		cells[i] = core.Dead
	}
	r.Repaint(s, cells)

	dead := rgba(pal.Dead)
	for idx := range cells {
		rect := r.CellRect(geom.Coords(idx))
		if got := s.Image().RGBAAt(rect.Min.X, rect.Min.Y); got != dead {
			t.Fatalf("cell %d is %v after clear", idx, got)
		}
	}
}

func TestRepaintIdempotent(t *testing.T) {
	geom := NewGeometry(core.Size{W: 6, H: 5}, 4)
	r := NewGridRenderer(geom, DefaultPalette())
	cells := make([]uint8, 30)
	core.NewRNG(3).Seed(cells, 0.4)

	first := r.Snapshot(cells)
	again := r.Snapshot(cells)
	r.Repaint(again, cells)
	if !bytes.Equal(first.Image().Pix, again.Image().Pix) {
		t.Fatal("repainting the same buffer changed the image")
	}
}

func TestWritePNG(t *testing.T) {
	geom := NewGeometry(core.Size{W: 4, H: 4}, 8)
	s := NewGridRenderer(geom, DefaultPalette()).Snapshot(make([]uint8, 16))
	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 37 || b.Dy() != 37 {
		t.Fatalf("png is %dx%d, want 37x37", b.Dx(), b.Dy())
	}
}
