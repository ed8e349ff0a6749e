package catalog_test

import (
	"strings"
	"testing"

	"github.com/ilyagolubev1986-web/dreamitjob-bot-worker/internal/catalog"
)

func mustLoad(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return c
}

func TestLoad_EveryIndustryHasHashtags(t *testing.T) {
	c := mustLoad(t)
	for _, ind := range c.Industries {
		if len(ind.Hashtags) == 0 {
			t.Errorf("industry %q has no hashtags", ind.Key)
		}
		for _, tag := range ind.Hashtags {
			if !strings.HasPrefix(tag, "#") {
				t.Errorf("industry %q: hashtag %q should start with #", ind.Key, tag)
			}
		}
	}
}

func TestIndustryByKey(t *testing.T) {
	c := mustLoad(t)

	it := c.IndustryByKey("it")
	if it == nil {
		t.Fatal(`IndustryByKey("it") = nil`)
	}
	if it.Label != "IT / Разработка" {
		t.Errorf("it industry label = %q", it.Label)
	}

	if c.IndustryByKey("nope") != nil {
		t.Error(`IndustryByKey("nope") should be nil`)
	}
}

// Unknown industry labels fall back to the "Другое" hashtag list.
func TestHashtagsFor_Fallback(t *testing.T) {
	c := mustLoad(t)

	want := c.IndustryByKey(catalog.OtherIndustryKey).Hashtags
	got := c.HashtagsFor("Несуществующая сфера")
	if len(got) != len(want) {
		t.Fatalf("fallback hashtags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fallback hashtags[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHashtagsFor_KnownLabel(t *testing.T) {
	c := mustLoad(t)
	tags := c.HashtagsFor("Крипта / Web3")
	found := false
	for _, tag := range tags {
		if tag == "#Crypto" {
			found = true
		}
	}
	if !found {
		t.Errorf("crypto hashtags %v should contain #Crypto", tags)
	}
}

func TestOptionLookups(t *testing.T) {
	c := mustLoad(t)

	cases := []struct {
		name string
		got  *catalog.Option
		want string
	}{
		{"position junior", c.PositionByKey("junior"), "Junior"},
		{"salary bracket 4", c.SalaryBracketByKey("4"), "$3000-5000"},
		{"location remote", c.LocationByKey("remote"), "Удалённо"},
		{"contact email", c.ContactModeByKey("email"), "Email"},
	}
	for _, tc := range cases {
		if tc.got == nil {
			t.Errorf("%s: lookup returned nil", tc.name)
			continue
		}
		if tc.got.Label != tc.want {
			t.Errorf("%s: label = %q, want %q", tc.name, tc.got.Label, tc.want)
		}
	}

	if c.PositionByKey("cto") != nil {
		t.Error(`PositionByKey("cto") should be nil`)
	}
}
