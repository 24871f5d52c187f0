package core

import "sort"

// Cell states stored in an engine's buffer. Any value other than Dead is
// drawn as alive.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells in a grid of this size.
func (s Size) Cells() int { return s.W * s.H }

// Contains reports whether (row, col) lies inside the grid.
func (s Size) Contains(row, col int) bool {
	return row >= 0 && row < s.H && col >= 0 && col < s.W
}

// Engine is the contract a cellular automaton exposes to the presentation
// layer. Cells returns a row-major view owned by the engine; callers must not
// hold on to it across mutating calls.
type Engine interface {
	Name() string
	Width() int
	Height() int
	Cells() []uint8
	Tick()
	Toggle(row, col int)
	Clear()
	Reset()
}

// Factory constructs an Engine using an optional configuration map.
type Factory func(cfg map[string]string) Engine

// RuleCheck reports whether rule is meaningful to an engine.
type RuleCheck func(rule string) error

var (
	engines    = map[string]Factory{}
	ruleChecks = map[string]RuleCheck{}
)

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// RegisterRuleCheck attaches a rule validator to a registered engine name.
func RegisterRuleCheck(name string, check RuleCheck) {
	if name == "" || check == nil {
		return
	}
	ruleChecks[name] = check
}

// CheckRule validates rule for the named engine. Engines without a
// validator accept any rule.
func CheckRule(name, rule string) error {
	check, ok := ruleChecks[name]
	if !ok {
		return nil
	}
	return check(rule)
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}

// EngineNames returns the registered engine names in sorted order.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
