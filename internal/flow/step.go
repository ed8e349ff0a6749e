// Package flow implements the vacancy intake conversation: the per-user
// session state machine, menu rendering, the dedup guard consulted at
// submission, and the engine that turns inbound chat events into replies.
//
// Happy path:
//
//	idle ──► industry ──► hashtags ──► position ──► salary ──► description
//	                          │ (toggle self-loop)
//	          ──► contact ──► location ──► confirm ──► submitted | cancelled
//
// The package is transport-agnostic: it never talks to Telegram itself.
package flow

import "fmt"

// Step is one state of the intake conversation.
type Step string

const (
	StepIdle        Step = "idle"
	StepIndustry    Step = "industry"
	StepHashtags    Step = "hashtags"
	StepPosition    Step = "position"
	StepSalary      Step = "salary"
	StepDescription Step = "description"
	StepContact     Step = "contact"
	StepLocation    Step = "location"
	StepConfirm     Step = "confirm"
)

// stepOrder is the canonical happy path, used for the "Шаг N из 8" headers.
var stepOrder = []Step{
	StepIndustry, StepHashtags, StepPosition, StepSalary,
	StepDescription, StepContact, StepLocation, StepConfirm,
}

// ParseStep converts a raw string to a Step, returning an error for unknown
// values.
func ParseStep(s string) (Step, error) {
	st := Step(s)
	switch st {
	case StepIdle, StepIndustry, StepHashtags, StepPosition, StepSalary,
		StepDescription, StepContact, StepLocation, StepConfirm:
		return st, nil
	}
	return "", fmt.Errorf("unknown step %q", s)
}

// StepNumber returns the 1-based position of step on the happy path, and the
// path length. Idle (not part of the form) reports 0.
func StepNumber(step Step) (n, total int) {
	for i, s := range stepOrder {
		if s == step {
			return i + 1, len(stepOrder)
		}
	}
	return 0, len(stepOrder)
}
