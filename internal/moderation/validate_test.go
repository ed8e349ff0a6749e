package moderation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ilyagolubev1986-web/dreamitjob-bot-worker/internal/moderation"
)

// ── Forbidden terms ────────────────────────────────────────────────────────

func TestCheck_ForbiddenTerms(t *testing.T) {
	inputs := []string{
		"ищем adult вебмастера",
		"ADULT трафик",
		"CaSiNo менеджер",
		"работа с казино без опыта",
		"binary options desk",
		"торговля на форекс",
		"поддержка игроков",
		"рассылки клиентам", // matches the "рассылк" stem
	}
	for _, in := range inputs {
		if err := moderation.Check(in, "описание"); err == nil {
			t.Errorf("Check(%q) should reject a forbidden term", in)
		}
	}
}

func TestCheck_ForbiddenTermWinsOverLaterRules(t *testing.T) {
	// Contains a forbidden term AND caps abuse AND !! — the denylist is
	// checked first, so its reason must win.
	err := moderation.Check("CASINO MANAGER NEEDED!!!", "описание")
	if err == nil {
		t.Fatal("expected rejection")
	}
	if !strings.Contains(err.Error(), "запрещённое слово") {
		t.Errorf("expected forbidden-term reason, got %q", err.Error())
	}
}

// ── Emoji ──────────────────────────────────────────────────────────────────

func TestCheck_Emoji(t *testing.T) {
	inputs := []string{
		"отличная работа 🚀",
		"🎰 менеджер",
		"флаг 🇩🇪 офис",
	}
	for _, in := range inputs {
		err := moderation.Check(in, "описание")
		if err == nil {
			t.Errorf("Check(%q) should reject emoji", in)
			continue
		}
		if !strings.Contains(err.Error(), "эмодзи") {
			t.Errorf("Check(%q) wrong reason: %q", in, err.Error())
		}
	}
}

func TestCheck_EmojiBeatsLink(t *testing.T) {
	err := moderation.Check("🚀 https://example.com", "описание")
	if err == nil {
		t.Fatal("expected rejection")
	}
	if !strings.Contains(err.Error(), "эмодзи") {
		t.Errorf("emoji is checked before links, got %q", err.Error())
	}
}

// ── Caps ratio ─────────────────────────────────────────────────────────────

func TestCheck_CapsRejected(t *testing.T) {
	inputs := []string{
		"ABCDEFGHIJK",        // 11 runes, all caps
		"СРОЧНО НУЖЕН РАЗРАБ", // cyrillic caps count too
	}
	for _, in := range inputs {
		err := moderation.Check(in, "описание")
		if err == nil {
			t.Errorf("Check(%q) should reject caps abuse", in)
			continue
		}
		if !strings.Contains(err.Error(), "заглавных") {
			t.Errorf("Check(%q) wrong reason: %q", in, err.Error())
		}
	}
}

// Strings of 10 runes or fewer are exempt even at 100% caps.
func TestCheck_ShortStringsExemptFromCaps(t *testing.T) {
	inputs := []string{"ABCDEFGHIJ", "ASAP", "СТО", "QA"}
	for _, in := range inputs {
		if err := moderation.Check(in, "описание"); err != nil {
			t.Errorf("Check(%q) should pass (≤10 runes), got %q", in, err.Error())
		}
	}
}

func TestCheck_MixedCaseAccepted(t *testing.T) {
	in := "Разработка интеграций и поддержка SDK для мерчантов"
	if err := moderation.Check(in, "описание"); err != nil {
		t.Errorf("Check(%q) should pass, got %q", in, err.Error())
	}
}

// Majority-caps but under the >0.5 threshold over letters: must pass caps
// and fall through to the link rule.
func TestCheck_LinkReportedWhenCapsRatioUnderHalf(t *testing.T) {
	// 10 uppercase letters vs 14 lowercase — ratio ≤ 0.5, caps passes.
	err := moderation.Check("AMAZING JOB!!! check https://t.me/x", "описание")
	if err == nil {
		t.Fatal("expected rejection")
	}
	if !strings.Contains(err.Error(), "ссылки") {
		t.Errorf("expected link reason (caps ratio is under half), got %q", err.Error())
	}
}

// ── Links ──────────────────────────────────────────────────────────────────

func TestCheck_Links(t *testing.T) {
	inputs := []string{
		"подробности на http://example.com",
		"смотри HTTPS://jobs.example.com",
		"пиши в t.me/recruiter",
	}
	for _, in := range inputs {
		err := moderation.Check(in, "описание")
		if err == nil {
			t.Errorf("Check(%q) should reject links", in)
			continue
		}
		if !strings.Contains(err.Error(), "ссылки") {
			t.Errorf("Check(%q) wrong reason: %q", in, err.Error())
		}
	}
}

// ── Exclamations ───────────────────────────────────────────────────────────

func TestCheck_RepeatedExclamations(t *testing.T) {
	err := moderation.Check("очень срочно нужен разработчик!!", "описание")
	if err == nil {
		t.Fatal("expected rejection for !!")
	}
	if !strings.Contains(err.Error(), "восклицательных") {
		t.Errorf("wrong reason: %q", err.Error())
	}

	if err := moderation.Check("срочно нужен разработчик!", "описание"); err != nil {
		t.Errorf("single ! should pass, got %q", err.Error())
	}
}

// ── Acceptance + rejection typing ──────────────────────────────────────────

func TestCheck_AcceptsNormalText(t *testing.T) {
	if err := moderation.Check("Ищем middle бэкенд-разработчика, стек Go и Postgres", "описание"); err != nil {
		t.Errorf("normal text should pass, got %q", err.Error())
	}
}

func TestCheck_RejectionCarriesField(t *testing.T) {
	err := moderation.Check("казино", "зарплата")
	var rej *moderation.Rejection
	if !errors.As(err, &rej) {
		t.Fatalf("expected *Rejection, got %T", err)
	}
	if rej.Field != "зарплата" {
		t.Errorf("Rejection.Field = %q, want %q", rej.Field, "зарплата")
	}
	if !strings.Contains(rej.Reason, "зарплата") {
		t.Errorf("reason should name the field, got %q", rej.Reason)
	}
}

// ── Contact check ──────────────────────────────────────────────────────────

func TestCheckContact_OnlyLinksRejected(t *testing.T) {
	// Handles, emails, even caps and ! are fine for contacts.
	ok := []string{"@DreamHR", "jobs@example.com", "WHATSAPP +1 555 0100!"}
	for _, in := range ok {
		if err := moderation.CheckContact(in, "контакт"); err != nil {
			t.Errorf("CheckContact(%q) should pass, got %q", in, err.Error())
		}
	}

	bad := []string{"https://example.com/contact", "t.me/recruiter", "T.ME/recruiter"}
	for _, in := range bad {
		if err := moderation.CheckContact(in, "контакт"); err == nil {
			t.Errorf("CheckContact(%q) should reject a link", in)
		}
	}
}
