package term

import (
	"fmt"
	"io"
	"strings"

	"life-canvas/internal/core"

	"github.com/logrusorgru/aurora"
)

// Fillers are the strings drawn for live and dead cells. Each must occupy a
// single terminal column so cursor positions map onto cells.
type Fillers struct {
	Live string
	Dead string
}

// NewFillers colours the glyphs with au; a disabled Aurora yields plain text.
func NewFillers(au aurora.Aurora, live, dead rune) Fillers {
	return Fillers{
		Live: au.Green(string(live)).String(),
		Dead: au.White(string(dead)).String(),
	}
}

// FormatBoard draws a row-major buffer as text, one line per row, cropped to
// maxW columns and maxH rows. Non-positive limits disable cropping.
func FormatBoard(cells []uint8, size core.Size, maxW, maxH int, f Fillers) string {
	rows, cols := size.H, size.W
	if maxH > 0 && rows > maxH {
		rows = maxH
	}
	if maxW > 0 && cols > maxW {
		cols = maxW
	}
	if len(cells) != size.Cells() {
		return ""
	}
	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row != 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			if cells[core.Index(size.W, row, col)] == core.Dead {
				b.WriteString(f.Dead)
			} else {
				b.WriteString(f.Live)
			}
		}
	}
	return b.String()
}

// Board is the read side of the engine adapter used for text output.
type Board interface {
	Name() string
	Dimensions() core.Size
	CurrentBuffer() []uint8
	Population() int
}

// PrintBoard writes a one-line summary followed by the full board.
func PrintBoard(w io.Writer, b Board, generation int, au aurora.Aurora) error {
	size := b.Dimensions()
	_, err := fmt.Fprintf(w, "%s %s %dx%d, %s %d, %s %d\n",
		au.Green("engine"), b.Name(), size.W, size.H,
		au.Green("generation"), generation,
		au.Green("population"), b.Population())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, FormatBoard(b.CurrentBuffer(), size, 0, 0, NewFillers(au, '◼', '◻')))
	return err
}
