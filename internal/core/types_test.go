package core

import (
	"errors"
	"testing"
)

func TestCheckRule(t *testing.T) {
	errBad := errors.New("bad rule")
	RegisterRuleCheck("checked", func(rule string) error {
		if rule != "ok" {
			return errBad
		}
		return nil
	})
	t.Cleanup(func() { delete(ruleChecks, "checked") })

	if err := CheckRule("checked", "ok"); err != nil {
		t.Fatalf("valid rule rejected: %v", err)
	}
	if err := CheckRule("checked", "nope"); !errors.Is(err, errBad) {
		t.Fatalf("got %v, want %v", err, errBad)
	}
	if err := CheckRule("unchecked", "anything"); err != nil {
		t.Fatalf("engine without a check rejected a rule: %v", err)
	}
}
