// Package moderation implements the content-policy checks applied to every
// free-text answer before it is accepted into a vacancy draft.
//
// Checks run in a fixed order and the first failure wins:
//
//	forbidden term → emoji → caps ratio → link → repeated exclamations
//
// Every rejection carries the human-readable field label it was checked for,
// so the reply can point the user at the offending answer.
package moderation

import (
	"fmt"
	"strings"
	"unicode"
)

// forbiddenTerms is the fixed denylist scanned (case-insensitive) inside
// every free-text answer. Covers adult content, pharma/nutra, spam and
// support-chat recruiting, gambling, and binary-options/forex terms.
var forbiddenTerms = []string{
	"adult", "porn", "18+", "nutra", "pharma", "лекарств",
	"spam", "рассылк", "support", "чат", "игрок", "player",
	"casino", "казино", "binary", "forex", "форекс", "cfd",
}

// capsExemptLimit: answers of this many runes or fewer are never rejected
// for caps ratio, so short acronyms (ASAP, СТО) pass.
const capsExemptLimit = 10

// Rejection is a user-correctable policy violation. The session stays on the
// same step; the reason is surfaced verbatim.
type Rejection struct {
	Field  string
	Reason string
}

func (r *Rejection) Error() string { return r.Reason }

// Check validates a free-text answer for the given field label. It returns
// nil on acceptance, or a *Rejection describing the first violated rule.
func Check(text, field string) error {
	lower := strings.ToLower(text)
	for _, term := range forbiddenTerms {
		if strings.Contains(lower, term) {
			return &Rejection{Field: field, Reason: fmt.Sprintf("❌ В поле «%s» обнаружено запрещённое слово.", field)}
		}
	}

	if containsEmoji(text) {
		return &Rejection{Field: field, Reason: fmt.Sprintf("❌ В поле «%s» обнаружены эмодзи.", field)}
	}

	if capsAbuse(text) {
		return &Rejection{Field: field, Reason: fmt.Sprintf("❌ В поле «%s» слишком много заглавных букв.", field)}
	}

	if containsLink(lower) {
		return &Rejection{Field: field, Reason: fmt.Sprintf("❌ В поле «%s» обнаружены ссылки.", field)}
	}

	if strings.Contains(text, "!!") {
		return &Rejection{Field: field, Reason: fmt.Sprintf("❌ В поле «%s» слишком много восклицательных знаков.", field)}
	}

	return nil
}

// CheckContact applies only the link rule: contact answers legitimately look
// like handles and addresses, so the generic checks would misfire.
func CheckContact(text, field string) error {
	if containsLink(strings.ToLower(text)) {
		return &Rejection{Field: field, Reason: "❌ Ссылки запрещены. Введи контакт без ссылок."}
	}
	return nil
}

// containsEmoji reports whether any rune falls in the standard pictographic
// emoji blocks (emoticons, symbols & pictographs, transport, flags).
func containsEmoji(text string) bool {
	for _, r := range text {
		switch {
		case r >= 0x1F300 && r <= 0x1F5FF,
			r >= 0x1F600 && r <= 0x1F64F,
			r >= 0x1F680 && r <= 0x1F6FF,
			r >= 0x1F1E0 && r <= 0x1F1FF:
			return true
		}
	}
	return false
}

// capsAbuse reports whether more than half of the Latin/Cyrillic letters are
// uppercase. Texts of capsExemptLimit runes or fewer are always exempt.
func capsAbuse(text string) bool {
	var total, upper, letters int
	for _, r := range text {
		total++
		if !isSupportedLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if total <= capsExemptLimit || letters == 0 {
		return false
	}
	return upper*2 > letters
}

// isSupportedLetter restricts the caps check to the two supported alphabets.
func isSupportedLetter(r rune) bool {
	return unicode.In(r, unicode.Latin, unicode.Cyrillic)
}

// containsLink matches http(s) URLs and t.me shortener links. The input must
// already be lowercased.
func containsLink(lower string) bool {
	return strings.Contains(lower, "http://") ||
		strings.Contains(lower, "https://") ||
		strings.Contains(lower, "t.me/")
}
