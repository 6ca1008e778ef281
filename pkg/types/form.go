// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// FieldType classifies one survey row.
type FieldType string

const (
	TypeModule         FieldType = "MODULE"
	TypeBeginGroup     FieldType = "begin group"
	TypeEndGroup       FieldType = "end group"
	TypeBeginRepeat    FieldType = "begin repeat"
	TypeEndRepeat      FieldType = "end repeat"
	TypeNote           FieldType = "note"
	TypeText           FieldType = "text"
	TypeInteger        FieldType = "integer"
	TypeSelectOne      FieldType = "select_one"
	TypeSelectMultiple FieldType = "select_multiple"
	TypeCalculate      FieldType = "calculate"
	TypeCalculateHere  FieldType = "calculate_here"
)

// IsMarker reports whether t is a begin/end group/repeat structural marker.
// Marker rows are exempt from the field-name uniqueness check.
func (t FieldType) IsMarker() bool {
	switch t {
	case TypeBeginGroup, TypeEndGroup, TypeBeginRepeat, TypeEndRepeat:
		return true
	}
	return false
}

// IsSelect reports whether t carries a choice-list reference.
func (t FieldType) IsSelect() bool {
	return t == TypeSelectOne || t == TypeSelectMultiple
}

// IsQuestion reports whether t consumes a question number when rendered.
func (t FieldType) IsQuestion() bool {
	switch t {
	case TypeText, TypeInteger, TypeSelectOne, TypeSelectMultiple:
		return true
	}
	return false
}

// SurveyField is one normalized survey row. Optional attributes use the
// empty string for absence; Required is tri-state because it defaults to
// true and is displayed only when explicitly false.
type SurveyField struct {
	// Index is the 1-based original row position. Assigned when the sheet
	// is read and never changed; rendering order depends on it.
	Index int `json:"index" yaml:"index"`

	Type FieldType `json:"type" yaml:"type"`

	// Name is the variable name. Unique across all non-marker rows.
	Name string `json:"name" yaml:"name"`

	Label             string `json:"label,omitempty" yaml:"label,omitempty"`
	Hint              string `json:"hint,omitempty" yaml:"hint,omitempty"`
	Constraint        string `json:"constraint,omitempty" yaml:"constraint,omitempty"`
	ConstraintMessage string `json:"constraint_message,omitempty" yaml:"constraint_message,omitempty"`
	Relevance         string `json:"relevance,omitempty" yaml:"relevance,omitempty"`
	RepeatCount       string `json:"repeat_count,omitempty" yaml:"repeat_count,omitempty"`
	Calculation       string `json:"calculation,omitempty" yaml:"calculation,omitempty"`

	// Required is nil when the sheet left the column blank (treated as
	// required), and non-nil when the row said yes or no explicitly.
	Required *bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Disabled excludes the field from rendering entirely. MODULE markers
	// render regardless.
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty"`

	// Group is the nearest enclosing group/repeat name, computed during
	// normalization. Empty outside any group.
	Group string `json:"group,omitempty" yaml:"group,omitempty"`

	// ListName references a ChoiceList; present only for select types.
	ListName string `json:"list_name,omitempty" yaml:"list_name,omitempty"`

	// Choices is the resolved choice list, attached at merge time.
	Choices *ChoiceList `json:"-" yaml:"-"`
}

// IsRequired reports the effective required flag (default true).
func (f *SurveyField) IsRequired() bool {
	return f.Required == nil || *f.Required
}

// IsBlank reports whether the row carries no type, name, or label.
// Blank rows are dropped before index assignment.
func (f *SurveyField) IsBlank() bool {
	return strings.TrimSpace(string(f.Type)) == "" &&
		strings.TrimSpace(f.Name) == "" &&
		strings.TrimSpace(f.Label) == ""
}

// Heading returns the display heading for a section marker: the label when
// present, else the name.
func (f *SurveyField) Heading() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}
