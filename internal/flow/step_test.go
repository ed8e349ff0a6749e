package flow_test

import (
	"testing"

	"github.com/ilyagolubev1986-web/dreamitjob-bot-worker/internal/flow"
)

// ── ParseStep ──────────────────────────────────────────────────────────────

func TestParseStep_ValidValues(t *testing.T) {
	valid := []string{
		"idle", "industry", "hashtags", "position", "salary",
		"description", "contact", "location", "confirm",
	}
	for _, s := range valid {
		got, err := flow.ParseStep(s)
		if err != nil {
			t.Errorf("ParseStep(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStep(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseStep_InvalidValue(t *testing.T) {
	_, err := flow.ParseStep("submitted")
	if err == nil {
		t.Error("ParseStep(\"submitted\") expected error, got nil (terminal outcomes are not steps)")
	}
}

// ParseStep must be case-sensitive — uppercase variants must not be valid.
func TestParseStep_CaseSensitive(t *testing.T) {
	for _, s := range []string{"INDUSTRY", "Confirm", " salary"} {
		if _, err := flow.ParseStep(s); err == nil {
			t.Errorf("ParseStep(%q) should reject non-canonical value", s)
		}
	}
}

// ── StepNumber ─────────────────────────────────────────────────────────────

func TestStepNumber_HappyPathOrder(t *testing.T) {
	ordered := []flow.Step{
		flow.StepIndustry, flow.StepHashtags, flow.StepPosition, flow.StepSalary,
		flow.StepDescription, flow.StepContact, flow.StepLocation, flow.StepConfirm,
	}
	for i, s := range ordered {
		n, total := flow.StepNumber(s)
		if n != i+1 {
			t.Errorf("StepNumber(%s) = %d, want %d", s, n, i+1)
		}
		if total != len(ordered) {
			t.Errorf("StepNumber(%s) total = %d, want %d", s, total, len(ordered))
		}
	}
}

func TestStepNumber_IdleIsOffPath(t *testing.T) {
	n, _ := flow.StepNumber(flow.StepIdle)
	if n != 0 {
		t.Errorf("StepNumber(idle) = %d, want 0", n)
	}
}
