package flow

import (
	"fmt"
	"strings"
)

// ChoiceKind identifies which transition a button press requests.
type ChoiceKind string

const (
	ChoiceBegin         ChoiceKind = "begin"         // start the form
	ChoiceResume        ChoiceKind = "resume"        // continue an in-progress form
	ChoiceRestart       ChoiceKind = "restart"       // throw the draft away, start over
	ChoiceShowRules     ChoiceKind = "show_rules"    // informational screen
	ChoiceShowSafety    ChoiceKind = "show_safety"   // informational screen
	ChoiceBackToStart   ChoiceKind = "back_to_start" // informational screen
	ChoiceIndustry      ChoiceKind = "industry"      // payload: industry key
	ChoiceTagToggle     ChoiceKind = "tag"           // payload: hashtag
	ChoiceTagsDone      ChoiceKind = "tags_done"
	ChoicePosition      ChoiceKind = "position" // payload: grade key
	ChoiceSalary        ChoiceKind = "salary"   // payload: bracket key
	ChoiceSalaryOther   ChoiceKind = "salary_other"
	ChoiceContactMode   ChoiceKind = "contact"  // payload: mode key
	ChoiceLocation      ChoiceKind = "location" // payload: location key
	ChoiceLocationOther ChoiceKind = "location_other"
	ChoiceConfirmYes    ChoiceKind = "confirm_yes"
	ChoiceConfirmCancel ChoiceKind = "confirm_cancel"
)

// Choice is a decoded button press: the transition it requests plus its
// payload (industry key, hashtag, …). Callback data is decoded exactly once,
// here at the boundary — transition logic never string-matches raw data.
type Choice struct {
	Kind    ChoiceKind
	Payload string
}

// Wire identifiers for the fixed (payload-free) choices.
const (
	dataBegin         = "start_vacancy"
	dataResume        = "continue_vacancy"
	dataRestart       = "new_vacancy"
	dataShowRules     = "show_rules"
	dataShowSafety    = "show_safety"
	dataBackToStart   = "back_to_start"
	dataBackToSafety  = "back_to_safety"
	dataTagsDone      = "tags_done"
	dataSalaryOther   = "sal_other"
	dataLocOther      = "loc_other"
	dataConfirmYes    = "confirm_yes"
	dataConfirmCancel = "confirm_cancel"
)

// Prefixes for payload-carrying choices.
const (
	prefixIndustry = "ind_"
	prefixTag      = "tag_"
	prefixPosition = "pos_"
	prefixSalary   = "sal_"
	prefixContact  = "cont_"
	prefixLocation = "loc_"
)

// ParseChoice decodes raw callback data into a Choice. Unknown data yields
// an error (stale buttons from old bot versions).
func ParseChoice(data string) (Choice, error) {
	switch data {
	case dataBegin:
		return Choice{Kind: ChoiceBegin}, nil
	case dataResume:
		return Choice{Kind: ChoiceResume}, nil
	case dataRestart:
		return Choice{Kind: ChoiceRestart}, nil
	case dataShowRules:
		return Choice{Kind: ChoiceShowRules}, nil
	case dataShowSafety, dataBackToSafety:
		return Choice{Kind: ChoiceShowSafety}, nil
	case dataBackToStart:
		return Choice{Kind: ChoiceBackToStart}, nil
	case dataTagsDone:
		return Choice{Kind: ChoiceTagsDone}, nil
	case dataSalaryOther:
		return Choice{Kind: ChoiceSalaryOther}, nil
	case dataLocOther:
		return Choice{Kind: ChoiceLocationOther}, nil
	case dataConfirmYes:
		return Choice{Kind: ChoiceConfirmYes}, nil
	case dataConfirmCancel:
		return Choice{Kind: ChoiceConfirmCancel}, nil
	}

	prefixed := []struct {
		prefix string
		kind   ChoiceKind
	}{
		{prefixIndustry, ChoiceIndustry},
		{prefixTag, ChoiceTagToggle},
		{prefixPosition, ChoicePosition},
		{prefixSalary, ChoiceSalary},
		{prefixContact, ChoiceContactMode},
		{prefixLocation, ChoiceLocation},
	}
	for _, p := range prefixed {
		if strings.HasPrefix(data, p.prefix) {
			payload := strings.TrimPrefix(data, p.prefix)
			if payload == "" {
				return Choice{}, fmt.Errorf("choice %q has empty payload", data)
			}
			return Choice{Kind: p.kind, Payload: payload}, nil
		}
	}

	return Choice{}, fmt.Errorf("unknown choice data %q", data)
}
