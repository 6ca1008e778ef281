// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ChoiceOption is one value/label pair of a choice list.
type ChoiceOption struct {
	// ListName is the list this option belongs to.
	ListName string `json:"list_name" yaml:"list_name"`

	// Value is the stored answer code.
	Value string `json:"value" yaml:"value"`

	// Label is the human-readable option text.
	Label string `json:"label" yaml:"label"`

	// Ordinal is the option's 1-based position within its list, assigned
	// once by sorting on (list_name, value) and stable thereafter.
	Ordinal int `json:"ordinal" yaml:"ordinal"`
}

// ChoiceList is a named, ordered set of options referenced by
// select_one/select_multiple fields.
type ChoiceList struct {
	// ListName is the list key (non-empty).
	ListName string `json:"list_name" yaml:"list_name"`

	// Options holds the list's options in ordinal order.
	Options []ChoiceOption `json:"options" yaml:"options"`

	// Choices is the list's labels concatenated into one quoted string,
	// kept in sync with Options for compact display.
	Choices string `json:"choices" yaml:"choices"`

	// Values is the list's values concatenated into one quoted string,
	// kept in sync with Options.
	Values string `json:"values" yaml:"values"`
}

// Count returns the number of options in the list.
func (l *ChoiceList) Count() int { return len(l.Options) }
