package flow_test

import (
	"testing"

	"github.com/ilyagolubev1986-web/dreamitjob-bot-worker/internal/flow"
)

func TestParseChoice_FixedChoices(t *testing.T) {
	cases := []struct {
		data string
		kind flow.ChoiceKind
	}{
		{"start_vacancy", flow.ChoiceBegin},
		{"continue_vacancy", flow.ChoiceResume},
		{"new_vacancy", flow.ChoiceRestart},
		{"show_rules", flow.ChoiceShowRules},
		{"show_safety", flow.ChoiceShowSafety},
		{"back_to_safety", flow.ChoiceShowSafety}, // legacy alias
		{"back_to_start", flow.ChoiceBackToStart},
		{"tags_done", flow.ChoiceTagsDone},
		{"sal_other", flow.ChoiceSalaryOther},
		{"loc_other", flow.ChoiceLocationOther},
		{"confirm_yes", flow.ChoiceConfirmYes},
		{"confirm_cancel", flow.ChoiceConfirmCancel},
	}
	for _, c := range cases {
		got, err := flow.ParseChoice(c.data)
		if err != nil {
			t.Errorf("ParseChoice(%q) error: %v", c.data, err)
			continue
		}
		if got.Kind != c.kind {
			t.Errorf("ParseChoice(%q).Kind = %q, want %q", c.data, got.Kind, c.kind)
		}
		if got.Payload != "" {
			t.Errorf("ParseChoice(%q).Payload = %q, want empty", c.data, got.Payload)
		}
	}
}

func TestParseChoice_PayloadChoices(t *testing.T) {
	cases := []struct {
		data    string
		kind    flow.ChoiceKind
		payload string
	}{
		{"ind_crypto", flow.ChoiceIndustry, "crypto"},
		{"tag_#Крипта", flow.ChoiceTagToggle, "#Крипта"},
		{"pos_senior", flow.ChoicePosition, "senior"},
		{"sal_4", flow.ChoiceSalary, "4"},
		{"cont_email", flow.ChoiceContactMode, "email"},
		{"loc_remote", flow.ChoiceLocation, "remote"},
	}
	for _, c := range cases {
		got, err := flow.ParseChoice(c.data)
		if err != nil {
			t.Errorf("ParseChoice(%q) error: %v", c.data, err)
			continue
		}
		if got.Kind != c.kind || got.Payload != c.payload {
			t.Errorf("ParseChoice(%q) = {%q %q}, want {%q %q}",
				c.data, got.Kind, got.Payload, c.kind, c.payload)
		}
	}
}

// "sal_other" and "loc_other" must decode as their dedicated kinds, not as
// payload-carrying salary/location picks.
func TestParseChoice_OtherBeatsPrefix(t *testing.T) {
	got, err := flow.ParseChoice("sal_other")
	if err != nil {
		t.Fatalf("ParseChoice error: %v", err)
	}
	if got.Kind != flow.ChoiceSalaryOther {
		t.Errorf("sal_other decoded as %q", got.Kind)
	}
}

func TestParseChoice_Invalid(t *testing.T) {
	for _, data := range []string{"", "bogus", "ind_", "tag_", "salary_4"} {
		if _, err := flow.ParseChoice(data); err == nil {
			t.Errorf("ParseChoice(%q) should fail", data)
		}
	}
}
