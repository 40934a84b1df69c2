package tformat_test

import "testing"
import "github.com/go-temporal/tformat"

func TestSystemZoneRulesRecognizesUTC(t *testing.T) {
	rules := tformat.SystemZoneRules()
	if !rules.IsValidZoneID("UTC") {
		t.Errorf("expected UTC to be a valid zone ID")
	}
	if !rules.IsValidZoneID("") {
		t.Errorf("expected the empty zone ID to be treated as valid (floating/no-zone)")
	}
	if rules.IsValidZoneID("Not/A_Real_Zone") {
		t.Errorf("expected an invalid zone ID to be rejected")
	}
}

func TestSystemZoneRulesReturnsNonEmptyIDSet(t *testing.T) {
	rules := tformat.SystemZoneRules()
	if len(rules.AvailableZoneIDs()) == 0 {
		t.Errorf("expected at least a fallback set of zone IDs")
	}
}

func TestSystemZoneRulesIsProcessWideSingleton(t *testing.T) {
	if tformat.SystemZoneRules() != tformat.SystemZoneRules() {
		t.Errorf("expected SystemZoneRules() to return the same instance across calls")
	}
}
