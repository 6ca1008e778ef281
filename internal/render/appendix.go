// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"github.com/pdiddy/survey-press/internal/doc"
	"github.com/pdiddy/survey-press/pkg/types"
)

// Appendix builds the value-label dictionary unit: one label/value table
// per choice list whose option count meets the threshold, in list order
// and ordinal order. The unit is empty when no list qualifies; callers
// skip persisting it then.
func Appendix(lists map[string]*types.ChoiceList, order []string, choiceLength int) doc.Unit {
	u := doc.Unit{Label: ValueLabelsLabel}
	for _, name := range order {
		l := lists[name]
		if l.Count() < choiceLength {
			continue
		}
		if u.IsEmpty() {
			u.AddText(doc.Title, "Value Labels")
		}
		rows := make([][]string, 0, l.Count())
		for _, o := range l.Options {
			rows = append(rows, []string{o.Label, o.Value})
		}
		u.AddTable(l.ListName, rows)
	}
	return u
}
