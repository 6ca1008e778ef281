// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render walks normalized survey fields in index order and turns
// them into paginated document units. Planning (where the unit boundaries
// fall) is a pure pass over the field list; composition (what each unit
// contains) owns the run's counters and section context.
package render

import "github.com/pdiddy/survey-press/pkg/types"

// TitlePageLabel names the unit closed by the first module boundary.
const TitlePageLabel = "title-page"

// ValueLabelsLabel names the appendix unit.
const ValueLabelsLabel = "valuelabels"

// Table-budget constants. The per-field costs approximate consumed page
// space; they have no derivation beyond matching observed output volume.
const (
	tableBaseline = 10
	tableCeiling  = 500
	costField     = 3
	costChoices   = 1
)

// State holds the mutable counters of one conversion run. All of them are
// process-local to the run; nothing survives it.
type State struct {
	// QuestionCount is the next unused question number (starts at 1).
	QuestionCount int

	// TableCount is the running page budget of the current unit; it
	// resets to baseline each time a unit closes.
	TableCount int

	// DocCount counts output files produced.
	DocCount int

	// ModuleCount counts MODULE markers encountered.
	ModuleCount int

	// ModuleLabel is the label of the current module, used to name the
	// units it spans. Empty until the first module arrives.
	ModuleLabel string

	// Sections maps an open group/repeat name to its display heading.
	// Entries are created at the begin marker and consumed at the end
	// marker.
	Sections map[string]string
}

// NewState returns the initial state of a run.
func NewState() *State {
	return &State{
		QuestionCount: 1,
		TableCount:    tableBaseline,
		Sections:      make(map[string]string),
	}
}

// fieldCost returns the table-budget cost of rendering one field.
func fieldCost(t types.FieldType) int {
	if !t.IsQuestion() {
		return 0
	}
	c := costField
	if t.IsSelect() {
		c += costChoices
	}
	return c
}

// rendered reports whether a field produces output: disabled fields are
// dropped entirely unless they are MODULE markers, which always render.
func rendered(f *types.SurveyField, skip map[int]bool) bool {
	if skip[f.Index] {
		return false
	}
	if f.Disabled && f.Type != types.TypeModule {
		return false
	}
	return true
}
