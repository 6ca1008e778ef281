// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "github.com/pdiddy/survey-press/pkg/types"

// UnitPlan is one planned output unit: its filename label and the fields
// it will render, in index order.
type UnitPlan struct {
	Label  string
	Fields []types.SurveyField
}

// Plan splits the field sequence into output units. It is a pure function
// of the ordered field list and the skip set: no counters or output state
// leak in or out, which keeps the pagination rule testable on its own.
//
// A unit closes when the running table budget reaches the ceiling or when
// a MODULE marker arrives; the closed unit carries the label of the module
// that opened it, except the very first, which is the title page. MODULE
// markers always force a boundary, even when disabled.
func Plan(fields []types.SurveyField, skip map[int]bool) []UnitPlan {
	var units []UnitPlan
	var cur []types.SurveyField
	budget := tableBaseline
	label := TitlePageLabel

	flush := func() {
		units = append(units, UnitPlan{Label: label, Fields: cur})
		cur = nil
		budget = tableBaseline
	}

	for i := range fields {
		f := &fields[i]
		if !rendered(f, skip) {
			continue
		}
		if budget >= tableCeiling || f.Type == types.TypeModule {
			flush()
		}
		if f.Type == types.TypeModule {
			label = f.Heading()
		}
		cur = append(cur, *f)
		budget += fieldCost(f.Type)
	}
	flush()
	return units
}
