// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/survey-press/internal/workbook"
	"github.com/pdiddy/survey-press/pkg/types"
)

// surveySheet builds a survey sheet from column/value maps.
func surveySheet(rows ...workbook.Row) *workbook.Sheet {
	return &workbook.Sheet{
		Name: workbook.SurveySheet,
		Columns: []string{
			"type", "name", "label", "hint", "constraint", "constraint_message",
			"relevance", "required", "disabled", "repeat_count", "calculation",
		},
		Rows: rows,
	}
}

func TestNormalize_IndexIsFrozenRowOrder(t *testing.T) {
	fields, err := Normalize(surveySheet(
		workbook.Row{"type": "text", "name": "a", "label": "A"},
		workbook.Row{}, // fully blank, dropped before indexing
		workbook.Row{"type": "text", "name": "b", "label": "B"},
		workbook.Row{"type": "note", "name": "c", "label": "C"},
	), nil, "", &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	if len(fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(fields))
	}
	for i, f := range fields {
		if f.Index != i+1 {
			t.Errorf("field %q index = %d, want %d", f.Name, f.Index, i+1)
		}
	}
}

func TestNormalize_TypeSplit(t *testing.T) {
	lists := map[string]*types.ChoiceList{
		"yn":   {ListName: "yn"},
		"freq": {ListName: "freq"},
	}
	fields, err := Normalize(surveySheet(
		workbook.Row{"type": "select_one yn", "name": "q1", "label": "Q1"},
		workbook.Row{"type": "select_multiple  freq", "name": "q2", "label": "Q2"},
		workbook.Row{"type": "integer", "name": "q3", "label": "Q3"},
	), lists, "", &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	if fields[0].Type != types.TypeSelectOne || fields[0].ListName != "yn" {
		t.Errorf("q1 = %s/%s", fields[0].Type, fields[0].ListName)
	}
	if fields[0].Choices != lists["yn"] {
		t.Error("q1 choices not attached")
	}
	if fields[1].Type != types.TypeSelectMultiple || fields[1].ListName != "freq" {
		t.Errorf("q2 = %s/%s", fields[1].Type, fields[1].ListName)
	}
	if fields[2].Type != types.TypeInteger || fields[2].Choices != nil {
		t.Errorf("q3 = %s, choices %v", fields[2].Type, fields[2].Choices)
	}
}

func TestNormalize_DuplicateNamesFatal(t *testing.T) {
	_, err := Normalize(surveySheet(
		workbook.Row{"type": "text", "name": "age", "label": "Age"},
		workbook.Row{"type": "text", "name": "other", "label": "Other"},
		workbook.Row{"type": "integer", "name": "age", "label": "Age again"},
	), nil, "", &bytes.Buffer{})

	if err == nil {
		t.Fatal("expected duplicate-name error")
	}
	if !strings.Contains(err.Error(), "age") {
		t.Errorf("error should name the duplicate: %v", err)
	}
	if !strings.Contains(err.Error(), "1") || !strings.Contains(err.Error(), "3") {
		t.Errorf("error should report every offending row: %v", err)
	}
}

func TestNormalize_MarkersExemptFromUniqueness(t *testing.T) {
	_, err := Normalize(surveySheet(
		workbook.Row{"type": "begin group", "name": "g1", "label": "G1"},
		workbook.Row{"type": "text", "name": "q1", "label": "Q1"},
		workbook.Row{"type": "end group", "name": "g1"},
	), nil, "", &bytes.Buffer{})
	if err != nil {
		t.Fatalf("marker rows may share a name: %v", err)
	}
}

func TestNormalize_GroupDerivation(t *testing.T) {
	fields, err := Normalize(surveySheet(
		workbook.Row{"type": "text", "name": "outside", "label": "O"},
		workbook.Row{"type": "begin group", "name": "g1", "label": "G1"},
		workbook.Row{"type": "text", "name": "inner", "label": "I"},
		workbook.Row{"type": "begin repeat", "name": "r1", "label": "R1"},
		workbook.Row{"type": "text", "name": "deep", "label": "D"},
		workbook.Row{"type": "end repeat", "name": "r1"},
		workbook.Row{"type": "end group", "name": "g1"},
		workbook.Row{"type": "text", "name": "after", "label": "A"},
	), nil, "", &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	byName := map[string]string{}
	for _, f := range fields {
		byName[f.Name] = f.Group
	}
	want := map[string]string{
		"outside": "",
		"inner":   "g1",
		"deep":    "r1",
		"after":   "",
	}
	for name, group := range want {
		if byName[name] != group {
			t.Errorf("field %q group = %q, want %q", name, byName[name], group)
		}
	}
}

func TestNormalize_MalformedNesting(t *testing.T) {
	tests := []struct {
		name string
		rows []workbook.Row
	}{
		{
			name: "end without begin",
			rows: []workbook.Row{
				{"type": "end group", "name": "g1"},
			},
		},
		{
			name: "unclosed at end of sheet",
			rows: []workbook.Row{
				{"type": "begin group", "name": "g1", "label": "G1"},
				{"type": "text", "name": "q1", "label": "Q1"},
			},
		},
		{
			name: "kind mismatch",
			rows: []workbook.Row{
				{"type": "begin group", "name": "g1", "label": "G1"},
				{"type": "end repeat", "name": "g1"},
			},
		},
		{
			name: "name reused while open",
			rows: []workbook.Row{
				{"type": "begin group", "name": "g1", "label": "G1"},
				{"type": "begin group", "name": "g1", "label": "G1 again"},
				{"type": "end group", "name": "g1"},
				{"type": "end group", "name": "g1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(surveySheet(tt.rows...), nil, "", &bytes.Buffer{})
			if err == nil {
				t.Fatal("expected nesting error")
			}
			if !strings.Contains(err.Error(), "nesting") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNormalize_UnresolvedListFatal(t *testing.T) {
	_, err := Normalize(surveySheet(
		workbook.Row{"type": "select_one ghost", "name": "q1", "label": "Q1"},
		workbook.Row{"type": "select_one phantom", "name": "q2", "label": "Q2"},
	), map[string]*types.ChoiceList{}, "", &bytes.Buffer{})

	if err == nil {
		t.Fatal("expected unresolved-list error")
	}
	for _, want := range []string{"ghost", "phantom"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should list %q: %v", want, err)
		}
	}
}

func TestNormalize_RequiredTriState(t *testing.T) {
	fields, err := Normalize(surveySheet(
		workbook.Row{"type": "text", "name": "a", "label": "A"},
		workbook.Row{"type": "text", "name": "b", "label": "B", "required": "no"},
		workbook.Row{"type": "text", "name": "c", "label": "C", "required": "yes"},
	), nil, "", &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	if fields[0].Required != nil || !fields[0].IsRequired() {
		t.Error("blank required should default to true with no explicit value")
	}
	if fields[1].IsRequired() {
		t.Error("required=no should be false")
	}
	if fields[2].Required == nil || !fields[2].IsRequired() {
		t.Error("required=yes should be explicit true")
	}
}

func TestNormalize_TranslationFallback(t *testing.T) {
	sheet := &workbook.Sheet{
		Name:    workbook.SurveySheet,
		Columns: []string{"type", "name", "label", "label::fr"},
		Rows: []workbook.Row{
			{"type": "text", "name": "a", "label": "Hello", "label::fr": "Bonjour"},
			{"type": "text", "name": "b", "label": "World"},
		},
	}

	var warn bytes.Buffer
	fields, err := Normalize(sheet, nil, "fr", &warn)
	if err != nil {
		t.Fatal(err)
	}

	if fields[0].Label != "Bonjour" {
		t.Errorf("label = %q, want Bonjour", fields[0].Label)
	}
	if fields[1].Label != "World" {
		t.Errorf("fallback label = %q, want World", fields[1].Label)
	}
	if !strings.Contains(warn.String(), "b") {
		t.Errorf("fallback warning should name the field, got: %s", warn.String())
	}
}
