package flow

import "fmt"

// CompanyPlaceholder is the fixed company value meaning "undisclosed".
// The channel allows NDA postings, so every draft starts with it.
const CompanyPlaceholder = "NDA"

// Field names a draft field awaiting free-text input.
type Field string

const (
	FieldNone        Field = ""
	FieldSalary      Field = "salary"
	FieldDescription Field = "description"
	FieldContact     Field = "contact"
	FieldLocation    Field = "location"
)

// Draft is the vacancy record under construction for one user.
//
// Field order is part of the fingerprint contract (see Fingerprint) — do not
// reorder without invalidating outstanding dedup records.
type Draft struct {
	Company     string   `json:"company"`
	Industry    string   `json:"industry"`
	Tags        []string `json:"tags"`
	Position    string   `json:"position"`
	Salary      string   `json:"salary"`
	Description string   `json:"description"`
	Contact     string   `json:"contact"`
	Location    string   `json:"location"`
}

// Complete returns nil when every field is populated and the tag set is
// non-empty — the invariant required before a draft may be submitted.
func (d *Draft) Complete() error {
	named := []struct {
		name, value string
	}{
		{"company", d.Company},
		{"industry", d.Industry},
		{"position", d.Position},
		{"salary", d.Salary},
		{"description", d.Description},
		{"contact", d.Contact},
		{"location", d.Location},
	}
	for _, f := range named {
		if f.value == "" {
			return fmt.Errorf("draft field %s is empty", f.name)
		}
	}
	if len(d.Tags) == 0 {
		return fmt.Errorf("draft has no hashtags")
	}
	return nil
}

// Session is the conversational state for one user.
type Session struct {
	Step Step
	// Draft is the record being assembled, mutated in place by transitions.
	Draft Draft
	// SelectedTags is the hashtag multi-select scratch space. It is committed
	// to Draft.Tags only by the "done" transition.
	SelectedTags []string
	// Awaiting marks which draft field the next free-text message fills.
	Awaiting Field
}

// NewSession returns a fresh session at the initial step with the company
// placeholder pre-filled.
func NewSession() *Session {
	return &Session{
		Step:  StepIdle,
		Draft: Draft{Company: CompanyPlaceholder},
	}
}

// InProgress reports whether the user has started (and not finished) the
// form — the condition under which /start offers resume vs restart.
func (s *Session) InProgress() bool {
	return s.Step != StepIdle
}

// HasTag reports whether tag is currently in the scratch selection.
func (s *Session) HasTag(tag string) bool {
	for _, t := range s.SelectedTags {
		if t == tag {
			return true
		}
	}
	return false
}

// ToggleTag adds tag to the scratch selection if absent, removes it if
// present. Toggling twice restores the original selection.
func (s *Session) ToggleTag(tag string) {
	for i, t := range s.SelectedTags {
		if t == tag {
			s.SelectedTags = append(s.SelectedTags[:i], s.SelectedTags[i+1:]...)
			return
		}
	}
	s.SelectedTags = append(s.SelectedTags, tag)
}
