// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/survey-press/internal/workbook"
	"github.com/pdiddy/survey-press/pkg/types"
)

// Normalize turns the survey sheet into ordered SurveyField records and
// attaches resolved choice lists. The 1-based index is frozen immediately
// after blank rows are dropped; no later stage may reorder it.
//
// Fatal errors (duplicate non-marker names, unresolved list references,
// malformed group nesting) report every offender in one error.
func Normalize(sheet *workbook.Sheet, lists map[string]*types.ChoiceList, translation string, w io.Writer) ([]types.SurveyField, error) {
	labelCol := translationColumn(sheet, "label", translation, w)

	var fields []types.SurveyField
	var fellBack []string
	for _, row := range sheet.Rows {
		f := parseField(row, labelCol)
		if f.IsBlank() {
			continue
		}
		if labelCol != "label" && f.Label == "" {
			if def := row.Get("label"); def != "" {
				f.Label = def
				if f.Name != "" {
					fellBack = append(fellBack, f.Name)
				}
			}
		}
		f.Index = len(fields) + 1
		fields = append(fields, f)
	}
	if len(fellBack) > 0 {
		fmt.Fprintf(w, "warning: missing %q labels, default language used for field(s): %s\n",
			translation, strings.Join(dedupe(fellBack), ", "))
	}

	if err := checkDuplicateNames(fields); err != nil {
		return nil, err
	}
	if err := deriveGroups(fields); err != nil {
		return nil, err
	}
	if err := attachChoices(fields, lists); err != nil {
		return nil, err
	}

	// Index order is already guaranteed; keep the sort as a tripwire.
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Index < fields[j].Index })
	return fields, nil
}

// parseField maps one sheet row onto a SurveyField. Unrecognized columns
// are ignored; a "select_one x"/"select_multiple x" type splits into the
// base type and its list reference.
func parseField(row workbook.Row, labelCol string) types.SurveyField {
	f := types.SurveyField{
		Name:              row.Get("name"),
		Label:             row.Get(labelCol),
		Hint:              row.Get("hint"),
		Constraint:        row.Get("constraint"),
		ConstraintMessage: row.Get("constraint_message"),
		Relevance:         row.Get("relevance"),
		RepeatCount:       row.Get("repeat_count"),
		Calculation:       row.Get("calculation"),
		Disabled:          parseBool(row.Get("disabled")),
	}
	if v := row.Get("required"); v != "" {
		req := parseBool(v)
		f.Required = &req
	}

	raw := strings.Join(strings.Fields(row.Get("type")), " ")
	switch {
	case strings.HasPrefix(raw, string(types.TypeSelectOne)+" "):
		f.Type = types.TypeSelectOne
		f.ListName = strings.TrimSpace(strings.TrimPrefix(raw, string(types.TypeSelectOne)))
	case strings.HasPrefix(raw, string(types.TypeSelectMultiple)+" "):
		f.Type = types.TypeSelectMultiple
		f.ListName = strings.TrimSpace(strings.TrimPrefix(raw, string(types.TypeSelectMultiple)))
	default:
		f.Type = types.FieldType(raw)
	}
	return f
}

// parseBool reads the spreadsheet's loose boolean spellings.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true
	}
	return false
}

// checkDuplicateNames verifies name uniqueness across all non-marker rows.
// Begin/end markers may legitimately share a name with their construct.
func checkDuplicateNames(fields []types.SurveyField) error {
	byName := make(map[string][]int)
	for _, f := range fields {
		if f.Name == "" || f.Type.IsMarker() {
			continue
		}
		byName[f.Name] = append(byName[f.Name], f.Index)
	}

	var dups []string
	for name, idx := range byName {
		if len(idx) > 1 {
			dups = append(dups, fmt.Sprintf("%s (rows %s)", name, joinInts(idx)))
		}
	}
	if len(dups) > 0 {
		sort.Strings(dups)
		return fmt.Errorf("duplicate field names: %s", strings.Join(dups, "; "))
	}
	return nil
}

// deriveGroups assigns each field the name of its nearest enclosing open
// group/repeat and validates nesting: every end marker must close the
// innermost open construct of the same kind and name, names may not be
// reused while open, and nothing may remain open at the end of the sheet.
func deriveGroups(fields []types.SurveyField) error {
	type open struct {
		name string
		kind types.FieldType
	}
	var stack []open
	var faults []string

	enclosing := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1].name
	}
	openIdx := func(name string) bool {
		for _, o := range stack {
			if o.name == name {
				return true
			}
		}
		return false
	}

	for i := range fields {
		f := &fields[i]
		switch f.Type {
		case types.TypeBeginGroup, types.TypeBeginRepeat:
			f.Group = enclosing()
			if openIdx(f.Name) {
				faults = append(faults, fmt.Sprintf("row %d: %q reopened while already open", f.Index, f.Name))
				continue
			}
			stack = append(stack, open{name: f.Name, kind: f.Type})
		case types.TypeEndGroup, types.TypeEndRepeat:
			want := types.TypeBeginGroup
			if f.Type == types.TypeEndRepeat {
				want = types.TypeBeginRepeat
			}
			if len(stack) == 0 {
				faults = append(faults, fmt.Sprintf("row %d: %q of %q with no open construct", f.Index, f.Type, f.Name))
				continue
			}
			top := stack[len(stack)-1]
			if top.kind != want || (f.Name != "" && f.Name != top.name) {
				faults = append(faults, fmt.Sprintf("row %d: %q of %q does not close open %q %q",
					f.Index, f.Type, f.Name, top.kind, top.name))
				continue
			}
			stack = stack[:len(stack)-1]
			f.Group = enclosing()
		default:
			f.Group = enclosing()
		}
	}
	for _, o := range stack {
		faults = append(faults, fmt.Sprintf("%q %q is never closed", o.kind, o.name))
	}
	if len(faults) > 0 {
		return fmt.Errorf("malformed group nesting: %s", strings.Join(faults, "; "))
	}
	return nil
}

// attachChoices left-joins each field to its choice list. A select field
// naming an unknown list is fatal; fields without a list keep no choices.
func attachChoices(fields []types.SurveyField, lists map[string]*types.ChoiceList) error {
	var unresolved []string
	seen := make(map[string]bool)
	for i := range fields {
		f := &fields[i]
		if f.ListName == "" {
			continue
		}
		l, ok := lists[f.ListName]
		if !ok {
			if f.Type.IsSelect() && !seen[f.ListName] {
				seen[f.ListName] = true
				unresolved = append(unresolved, f.ListName)
			}
			continue
		}
		f.Choices = l
	}
	if len(unresolved) > 0 {
		sort.Strings(unresolved)
		return fmt.Errorf("unresolved choice list reference(s): %s", strings.Join(unresolved, ", "))
	}
	return nil
}

// joinInts renders ints as a comma-separated list.
func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}
