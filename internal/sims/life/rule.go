package life

import (
	"fmt"
	"strings"
)

// Rule is a Life-like birth/survival rule indexed by live neighbour count.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

var (
	// Conway is B3/S23.
	Conway = MustParseRule("B3/S23")
	// HighLife is B36/S23.
	HighLife = MustParseRule("B36/S23")
)

// ParseRule reads a rule in B/S notation, e.g. "B3/S23".
func ParseRule(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return r, fmt.Errorf("rule %q: want B<digits>/S<digits>", s)
	}
	for _, part := range parts {
		if part == "" {
			return r, fmt.Errorf("rule %q: empty section", s)
		}
		var dst *[9]bool
		switch part[0] {
		case 'B':
			dst = &r.Birth
		case 'S':
			dst = &r.Survive
		default:
			return r, fmt.Errorf("rule %q: unknown section %q", s, part)
		}
		for _, ch := range part[1:] {
			if ch < '0' || ch > '8' {
				return r, fmt.Errorf("rule %q: bad neighbour count %q", s, ch)
			}
			dst[ch-'0'] = true
		}
	}
	return r, nil
}

// MustParseRule is ParseRule for package-level constants.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String renders the rule back in B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, on := range r.Birth {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n, on := range r.Survive {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}
