package life

import "testing"

func TestParseRule(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "B3/S23", want: "B3/S23"},
		{in: "b36/s23", want: "B36/S23"},
		{in: " S23/B3 ", want: "B3/S23"},
		{in: "B/S", want: "B/S"},
		{in: "B3S23", wantErr: true},
		{in: "B9/S23", wantErr: true},
		{in: "X3/S23", wantErr: true},
		{in: "/S23", wantErr: true},
	}
	for _, tc := range cases {
		r, err := ParseRule(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseRule(%q) succeeded, want error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseRule(%q): %v", tc.in, err)
		}
		if r.String() != tc.want {
			t.Fatalf("ParseRule(%q)=%s, want %s", tc.in, r, tc.want)
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "10", "h": "-3", "rule": "B36/S23", "seed": "5", "density": "2"})
	if c.Width != 10 {
		t.Fatalf("width %d, want 10", c.Width)
	}
	if c.Height != 64 {
		t.Fatalf("negative height should keep default, got %d", c.Height)
	}
	if c.Rule != HighLife {
		t.Fatalf("rule %s, want %s", c.Rule, HighLife)
	}
	if c.Seed != 5 {
		t.Fatalf("seed %d, want 5", c.Seed)
	}
	if c.Density != 0.5 {
		t.Fatalf("out-of-range density should keep default, got %v", c.Density)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}
