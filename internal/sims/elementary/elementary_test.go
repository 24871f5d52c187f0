package elementary

import (
	"slices"
	"testing"

	"life-canvas/internal/core"
)

func TestRule90Sierpinski(t *testing.T) {
	e := New(Config{Width: 7, Height: 3, Rule: 90})
	e.Tick()
	e.Tick()
	want := []uint8{
		0, 1, 0, 0, 0, 1, 0,
		0, 0, 1, 0, 1, 0, 0,
		0, 0, 0, 1, 0, 0, 0,
	}
	if !slices.Equal(e.Cells(), want) {
		t.Fatalf("rule 90 after two ticks:\n got %v\nwant %v", e.Cells(), want)
	}
}

func TestToggleSeedsTopRow(t *testing.T) {
	e := New(Config{Width: 5, Height: 2, Rule: 90})
	e.Clear()
	e.Toggle(0, 0)
	e.Toggle(9, 9)
	e.Tick()
	// Rule 90 is XOR of the neighbours; a lone cell at column 0 wraps to 4.
	want := []uint8{0, 1, 0, 0, 1, 1, 0, 0, 0, 0}
	if !slices.Equal(e.Cells(), want) {
		t.Fatalf("got %v, want %v", e.Cells(), want)
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Engines()["elementary"]
	if !ok {
		t.Fatal("elementary not registered")
	}
	eng := factory(map[string]string{"w": "9", "h": "4", "rule": "30"})
	if eng.Width() != 9 || eng.Height() != 4 || len(eng.Cells()) != 36 {
		t.Fatalf("got %dx%d with %d cells", eng.Width(), eng.Height(), len(eng.Cells()))
	}
	if eng.Cells()[4] != core.Alive {
		t.Fatal("top row not seeded at the centre")
	}
}

func TestParseRule(t *testing.T) {
	for in, want := range map[string]uint8{"0": 0, "30": 30, " 110 ": 110, "255": 255} {
		got, err := ParseRule(in)
		if err != nil || got != want {
			t.Fatalf("ParseRule(%q)=%d, %v; want %d", in, got, err, want)
		}
	}
	for _, in := range []string{"", "-1", "256", "B3/S23", "30.5"} {
		if _, err := ParseRule(in); err == nil {
			t.Fatalf("ParseRule(%q) accepted", in)
		}
	}
	if err := core.CheckRule("elementary", "300"); err == nil {
		t.Fatal("registered rule check accepted 300")
	}
}
