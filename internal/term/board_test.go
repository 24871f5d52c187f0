package term

import (
	"bytes"
	"strings"
	"testing"

	"life-canvas/internal/core"

	"github.com/logrusorgru/aurora"
)

var plain = Fillers{Live: "#", Dead: "."}

func TestFormatBoard(t *testing.T) {
	cells := []uint8{1, 0, 0, 0, 1, 5}
	got := FormatBoard(cells, core.Size{W: 3, H: 2}, 0, 0, plain)
	if got != "#..\n.##" {
		t.Fatalf("FormatBoard=%q", got)
	}
}

func TestFormatBoardCrops(t *testing.T) {
	cells := make([]uint8, 16)
	cells[0] = core.Alive
	got := FormatBoard(cells, core.Size{W: 4, H: 4}, 2, 3, plain)
	if got != "#.\n..\n.." {
		t.Fatalf("cropped board=%q", got)
	}
	if FormatBoard(cells[:3], core.Size{W: 4, H: 4}, 0, 0, plain) != "" {
		t.Fatal("short buffer should render nothing")
	}
}

func TestNewFillersWithoutColour(t *testing.T) {
	f := NewFillers(aurora.NewAurora(false), '◼', '◻')
	if f.Live != "◼" || f.Dead != "◻" {
		t.Fatalf("plain fillers %q %q", f.Live, f.Dead)
	}
	coloured := NewFillers(aurora.NewAurora(true), '◼', '◻')
	if !strings.Contains(coloured.Live, "\x1b[") {
		t.Fatalf("coloured filler %q has no escape sequence", coloured.Live)
	}
}

type staticBoard struct {
	cells []uint8
}

func (b staticBoard) Name() string           { return "static" }
func (b staticBoard) Dimensions() core.Size  { return core.Size{W: 2, H: 2} }
func (b staticBoard) CurrentBuffer() []uint8 { return b.cells }
func (b staticBoard) Population() int        { return 1 }

func TestPrintBoard(t *testing.T) {
	var buf bytes.Buffer
	err := PrintBoard(&buf, staticBoard{cells: []uint8{0, 1, 0, 0}}, 3, aurora.NewAurora(false))
	if err != nil {
		t.Fatalf("PrintBoard: %v", err)
	}
	want := "engine static 2x2, generation 3, population 1\n◻◼\n◻◻\n"
	if buf.String() != want {
		t.Fatalf("PrintBoard wrote %q, want %q", buf.String(), want)
	}
}
