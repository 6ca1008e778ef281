// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/survey-press/pkg/types"
)

func TestSanitize_StripsReservedCharacters(t *testing.T) {
	fields := []types.SurveyField{
		{Index: 1, Type: types.TypeText, Name: "q1", Label: `  Enter ${name} "here"  `},
	}

	Sanitize(fields, nil, &bytes.Buffer{})

	if got, want := fields[0].Label, "Enter name here"; got != want {
		t.Errorf("label = %q, want %q", got, want)
	}
}

func TestSanitize_QuotesKeptInConcatenatedStrings(t *testing.T) {
	lists := map[string]*types.ChoiceList{
		"yn": {
			ListName: "yn",
			Options: []types.ChoiceOption{
				{ListName: "yn", Value: "1", Label: `Yes "really"`, Ordinal: 1},
			},
			Choices: `"Yes really"`,
			Values:  `"1"`,
		},
	}

	Sanitize(nil, lists, &bytes.Buffer{})

	l := lists["yn"]
	if l.Options[0].Label != "Yes really" {
		t.Errorf("option label = %q, quotes should be stripped", l.Options[0].Label)
	}
	if l.Choices != `"Yes really"` {
		t.Errorf("choices = %q, concatenated string keeps its quoting", l.Choices)
	}
	if l.Values != `"1"` {
		t.Errorf("values = %q, concatenated string keeps its quoting", l.Values)
	}
}

func TestSanitize_TruncationWarnsWorstPerColumn(t *testing.T) {
	long := strings.Repeat("x", MaxTextLen+7)
	longer := strings.Repeat("y", MaxTextLen+40)
	fields := []types.SurveyField{
		{Index: 1, Type: types.TypeText, Name: "a", Label: long},
		{Index: 2, Type: types.TypeText, Name: "b", Label: longer},
	}

	var warn bytes.Buffer
	Sanitize(fields, nil, &warn)

	if len(fields[0].Label) != MaxTextLen || len(fields[1].Label) != MaxTextLen {
		t.Errorf("labels not truncated to %d: %d, %d", MaxTextLen, len(fields[0].Label), len(fields[1].Label))
	}
	out := warn.String()
	if !strings.Contains(out, "label") || !strings.Contains(out, "40") {
		t.Errorf("want one label warning with the worst overflow, got: %q", out)
	}
	if strings.Contains(out, "7") {
		t.Errorf("per-column report should not mention the smaller overflow: %q", out)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	fields := []types.SurveyField{
		{Index: 1, Type: types.TypeText, Name: "q1", Label: ` ${trim} "me" ` + strings.Repeat("z", MaxTextLen)},
		// Stripping the trailing reserved character exposes whitespace;
		// one pass must leave nothing for a second pass to trim.
		{Index: 2, Type: types.TypeText, Name: "q2", Label: "keep $"},
		// Cutting at the length limit exposes trailing whitespace too.
		{Index: 3, Type: types.TypeText, Name: "q3", Label: strings.Repeat("w", MaxTextLen-1) + "  tail"},
	}
	lists := map[string]*types.ChoiceList{
		"yn": {ListName: "yn", Choices: `"a" "b"`, Values: `"1" "2"`},
	}

	Sanitize(fields, lists, &bytes.Buffer{})
	if got := fields[1].Label; got != "keep" {
		t.Errorf("label = %q, want %q after one pass", got, "keep")
	}
	first := make([]string, len(fields))
	for i := range fields {
		first[i] = fields[i].Label
	}
	firstChoices := lists["yn"].Choices

	Sanitize(fields, lists, &bytes.Buffer{})
	for i := range fields {
		if fields[i].Label != first[i] {
			t.Errorf("second pass changed field %q label: %q -> %q", fields[i].Name, first[i], fields[i].Label)
		}
	}
	if lists["yn"].Choices != firstChoices {
		t.Error("second pass changed the choices string")
	}
}
