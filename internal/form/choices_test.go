// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/survey-press/internal/workbook"
)

// choiceSheet builds a choices sheet from (list_name, value, label) triples.
func choiceSheet(rows ...[3]string) *workbook.Sheet {
	s := &workbook.Sheet{
		Name:    workbook.ChoicesSheet,
		Columns: []string{"list_name", "value", "label"},
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, workbook.Row{
			"list_name": r[0], "value": r[1], "label": r[2],
		})
	}
	return s
}

func TestBuildChoiceLists(t *testing.T) {
	var warn bytes.Buffer
	lists, order := BuildChoiceLists(choiceSheet(
		[3]string{"yn", "1", "Yes"},
		[3]string{"freq", "2", "Sometimes"},
		[3]string{"yn", "0", "No"},
		[3]string{"", "9", "orphan"},
		[3]string{"freq", "1", "Never"},
	), "", &warn)

	if want := []string{"freq", "yn"}; !reflect.DeepEqual(order, want) {
		t.Fatalf("list order = %v, want %v", order, want)
	}

	yn := lists["yn"]
	if yn.Count() != 2 {
		t.Fatalf("yn count = %d, want 2", yn.Count())
	}
	// Options sort by value within the list, ordinals follow.
	if yn.Options[0].Value != "0" || yn.Options[0].Label != "No" || yn.Options[0].Ordinal != 1 {
		t.Errorf("yn option 1 = %+v", yn.Options[0])
	}
	if yn.Options[1].Value != "1" || yn.Options[1].Ordinal != 2 {
		t.Errorf("yn option 2 = %+v", yn.Options[1])
	}

	if yn.Choices != `"No" "Yes"` {
		t.Errorf("choices string = %q", yn.Choices)
	}
	if yn.Values != `"0" "1"` {
		t.Errorf("values string = %q", yn.Values)
	}
	if warn.Len() != 0 {
		t.Errorf("unexpected warnings: %s", warn.String())
	}
}

func TestBuildChoiceLists_Deterministic(t *testing.T) {
	sheet := choiceSheet(
		[3]string{"b", "2", "B2"},
		[3]string{"a", "1", "A1"},
		[3]string{"b", "1", "B1"},
	)
	first, orderA := BuildChoiceLists(sheet, "", &bytes.Buffer{})
	second, orderB := BuildChoiceLists(sheet, "", &bytes.Buffer{})

	if !reflect.DeepEqual(orderA, orderB) {
		t.Fatalf("order differs: %v vs %v", orderA, orderB)
	}
	for name := range first {
		if !reflect.DeepEqual(first[name], second[name]) {
			t.Errorf("list %q differs across builds", name)
		}
	}
}

func TestBuildChoiceLists_CountMismatchWarning(t *testing.T) {
	var warn bytes.Buffer
	BuildChoiceLists(choiceSheet(
		[3]string{"yn", "1", `say "yes"`},
		[3]string{"yn", "0", "No"},
	), "", &warn)

	if !strings.Contains(warn.String(), `"yn"`) {
		t.Errorf("mismatch warning should name the list, got: %s", warn.String())
	}
}

func TestBuildChoiceLists_Translation(t *testing.T) {
	sheet := &workbook.Sheet{
		Name:    workbook.ChoicesSheet,
		Columns: []string{"list_name", "value", "label", "label::fr"},
		Rows: []workbook.Row{
			{"list_name": "yn", "value": "1", "label": "Yes", "label::fr": "Oui"},
			{"list_name": "yn", "value": "0", "label": "No"},
		},
	}

	var warn bytes.Buffer
	lists, _ := BuildChoiceLists(sheet, "fr", &warn)

	yn := lists["yn"]
	if yn.Options[1].Label != "Oui" {
		t.Errorf("translated label = %q, want Oui", yn.Options[1].Label)
	}
	// The missing French label falls back to the default language.
	if yn.Options[0].Label != "No" {
		t.Errorf("fallback label = %q, want No", yn.Options[0].Label)
	}
	if !strings.Contains(warn.String(), "yn") {
		t.Errorf("fallback warning should name the list, got: %s", warn.String())
	}
}

func TestBuildChoiceLists_TranslationColumnAbsent(t *testing.T) {
	var warn bytes.Buffer
	lists, _ := BuildChoiceLists(choiceSheet([3]string{"yn", "1", "Yes"}), "de", &warn)

	if lists["yn"].Options[0].Label != "Yes" {
		t.Errorf("label = %q, want default", lists["yn"].Options[0].Label)
	}
	if !strings.Contains(warn.String(), "label::de") {
		t.Errorf("expected missing-column warning, got: %s", warn.String())
	}
}
