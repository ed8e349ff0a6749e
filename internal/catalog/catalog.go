// Package catalog holds the static menu data for the vacancy intake flow:
// the industry → hashtag mapping plus the fixed option sets for position,
// salary, location and contact method.
//
// The data lives in an embedded YAML file so that channel admins can adjust
// labels and hashtags without touching flow logic.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

// OtherIndustryKey is the designated fallback industry: its hashtag list is
// used whenever an industry has no explicit entry.
const OtherIndustryKey = "other"

// Industry is one selectable industry with its allowed hashtag set.
type Industry struct {
	Key      string   `yaml:"key"`
	Label    string   `yaml:"label"`
	Hashtags []string `yaml:"hashtags"`
}

// Option is a generic {wire key, display label} menu entry.
type Option struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// Catalog is the full set of menu data, loaded once at startup.
type Catalog struct {
	Industries     []Industry `yaml:"industries"`
	Positions      []Option   `yaml:"positions"`
	SalaryBrackets []Option   `yaml:"salary_brackets"`
	Locations      []Option   `yaml:"locations"`
	ContactModes   []Option   `yaml:"contact_modes"`
}

// Load parses the embedded catalog data and validates its basic shape.
func Load() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(rawCatalog, &c); err != nil {
		return nil, fmt.Errorf("catalog yaml: %w", err)
	}

	if len(c.Industries) == 0 {
		return nil, fmt.Errorf("catalog has no industries")
	}
	for _, ind := range c.Industries {
		if ind.Key == "" || ind.Label == "" {
			return nil, fmt.Errorf("industry entry missing key or label: %+v", ind)
		}
		if len(ind.Hashtags) == 0 {
			return nil, fmt.Errorf("industry %q has no hashtags", ind.Key)
		}
	}
	if c.IndustryByKey(OtherIndustryKey) == nil {
		return nil, fmt.Errorf("catalog is missing the %q fallback industry", OtherIndustryKey)
	}
	if len(c.Positions) == 0 || len(c.SalaryBrackets) == 0 || len(c.Locations) == 0 || len(c.ContactModes) == 0 {
		return nil, fmt.Errorf("catalog is missing one of the fixed option sets")
	}

	return &c, nil
}

// IndustryByKey returns the industry with the given wire key, or nil.
func (c *Catalog) IndustryByKey(key string) *Industry {
	for i := range c.Industries {
		if c.Industries[i].Key == key {
			return &c.Industries[i]
		}
	}
	return nil
}

// HashtagsFor returns the allowed hashtag set for an industry label, falling
// back to the "Другое" industry's list when the label has no explicit entry.
func (c *Catalog) HashtagsFor(industryLabel string) []string {
	for i := range c.Industries {
		if c.Industries[i].Label == industryLabel {
			return c.Industries[i].Hashtags
		}
	}
	return c.IndustryByKey(OtherIndustryKey).Hashtags
}

// optionByKey is the shared lookup for the fixed option sets.
func optionByKey(opts []Option, key string) *Option {
	for i := range opts {
		if opts[i].Key == key {
			return &opts[i]
		}
	}
	return nil
}

// PositionByKey returns the grade option with the given key, or nil.
func (c *Catalog) PositionByKey(key string) *Option { return optionByKey(c.Positions, key) }

// SalaryBracketByKey returns the salary bracket with the given key, or nil.
func (c *Catalog) SalaryBracketByKey(key string) *Option { return optionByKey(c.SalaryBrackets, key) }

// LocationByKey returns the location category with the given key, or nil.
func (c *Catalog) LocationByKey(key string) *Option { return optionByKey(c.Locations, key) }

// ContactModeByKey returns the contact mode with the given key, or nil.
func (c *Catalog) ContactModeByKey(key string) *Option { return optionByKey(c.ContactModes, key) }
