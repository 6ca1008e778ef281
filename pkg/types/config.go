// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultChoiceLength is the option-count threshold at which a choice list
// stops rendering inline and is deferred to the value-label appendix.
const DefaultChoiceLength = 10

// RenderConfig holds the settings for one conversion run.
// Flags, the --meta sidecar, and the viper config file all feed into it;
// flags win over the sidecar, the sidecar wins over the config file.
type RenderConfig struct {
	// SaveDir is the target directory for all part files (required).
	SaveDir string `json:"save" yaml:"save" mapstructure:"save"`

	// Title is the document title, used on the cover page and as the
	// merged output filename (required).
	Title string `json:"title" yaml:"title" mapstructure:"title"`

	// Date is a free-form date string shown on the cover page.
	Date string `json:"date,omitempty" yaml:"date,omitempty" mapstructure:"date"`

	// Version is a free-form version string shown on the cover page.
	Version string `json:"version,omitempty" yaml:"version,omitempty" mapstructure:"version"`

	// Authors lists the document authors in display order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty" mapstructure:"authors"`

	// CoverImage is a path to an image placed on the cover page.
	CoverImage string `json:"cover_image,omitempty" yaml:"cover_image,omitempty" mapstructure:"cover_image"`

	// Merge concatenates all part files into <Title>.pdf and deletes the
	// parts afterwards. Requires an external concatenation utility.
	Merge bool `json:"merge" yaml:"merge" mapstructure:"merge"`

	// SkipRows lists 1-based survey row indexes to exclude from output.
	SkipRows []int `json:"skip_list,omitempty" yaml:"skip_list,omitempty" mapstructure:"skip_list"`

	// ChoiceLength is the option-count threshold for inline rendering
	// (default DefaultChoiceLength).
	ChoiceLength int `json:"choice_length" yaml:"choice_length" mapstructure:"choice_length"`

	// Translation selects an alternate-language label column, e.g. "fr"
	// reads "label::fr" and falls back to "label" where it is blank.
	Translation string `json:"translation,omitempty" yaml:"translation,omitempty" mapstructure:"translation"`

	// Loud emits one diagnostic line per processed field.
	Loud bool `json:"loud" yaml:"loud" mapstructure:"loud"`
}

// Normalize fills defaulted values in place.
func (c *RenderConfig) Normalize() {
	if c.ChoiceLength <= 0 {
		c.ChoiceLength = DefaultChoiceLength
	}
}

// SkipSet returns the skip rows as a set keyed by field index.
func (c *RenderConfig) SkipSet() map[int]bool {
	s := make(map[int]bool, len(c.SkipRows))
	for _, i := range c.SkipRows {
		s[i] = true
	}
	return s
}
