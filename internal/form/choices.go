// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package form builds the normalized survey model: choice lists grouped from
// the choices sheet, survey fields with frozen display order, and the
// sanitation pass applied to both.
package form

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/survey-press/internal/workbook"
	"github.com/pdiddy/survey-press/pkg/types"
)

// BuildChoiceLists groups the choices sheet into one ChoiceList per
// list_name. Options are ordered by (list_name, value) and given a stable
// ordinal. Rows with a blank list_name are dropped. Data-quality problems
// (label/value count drift, missing translations) are warnings on w.
// The returned slice holds list names in deterministic order.
func BuildChoiceLists(sheet *workbook.Sheet, translation string, w io.Writer) (map[string]*types.ChoiceList, []string) {
	labelCol := translationColumn(sheet, "label", translation, w)
	valueCol := sheet.ValueColumn()

	var fellBack []string
	var opts []types.ChoiceOption
	for _, row := range sheet.Rows {
		list := row.Get("list_name")
		if list == "" {
			continue
		}
		label := row.Get(labelCol)
		if label == "" && labelCol != "label" {
			if def := row.Get("label"); def != "" {
				label = def
				fellBack = append(fellBack, list)
			}
		}
		opts = append(opts, types.ChoiceOption{
			ListName: list,
			Value:    row.Get(valueCol),
			Label:    label,
		})
	}
	if len(fellBack) > 0 {
		fmt.Fprintf(w, "warning: missing %q choice labels, default language used for list(s): %s\n",
			translation, strings.Join(dedupe(fellBack), ", "))
	}

	sort.SliceStable(opts, func(i, j int) bool {
		if opts[i].ListName != opts[j].ListName {
			return opts[i].ListName < opts[j].ListName
		}
		return opts[i].Value < opts[j].Value
	})

	lists := make(map[string]*types.ChoiceList)
	var order []string
	for _, o := range opts {
		l, ok := lists[o.ListName]
		if !ok {
			l = &types.ChoiceList{ListName: o.ListName}
			lists[o.ListName] = l
			order = append(order, o.ListName)
		}
		o.Ordinal = len(l.Options) + 1
		l.Options = append(l.Options, o)
	}

	for _, name := range order {
		l := lists[name]
		l.Choices = concatQuoted(l.Options, func(o types.ChoiceOption) string { return o.Label })
		l.Values = concatQuoted(l.Options, func(o types.ChoiceOption) string { return o.Value })
		if nl, nv := quotedCount(l.Choices), quotedCount(l.Values); nl != nv {
			fmt.Fprintf(w, "warning: list %q has %d labels but %d values; check for stray quote characters\n",
				name, nl, nv)
		}
	}
	return lists, order
}

// translationColumn resolves the column carrying labels: "<base>::<lang>"
// when a translation is requested and the sheet has it, else base. A
// requested translation with no matching column is a warning.
func translationColumn(sheet *workbook.Sheet, base, translation string, w io.Writer) string {
	if translation == "" {
		return base
	}
	col := base + "::" + translation
	if sheet.HasColumn(col) {
		return col
	}
	fmt.Fprintf(w, "warning: sheet %q has no %q column, using %q\n", sheet.Name, col, base)
	return base
}

// concatQuoted joins one quoted token per option into a single string.
// Source text containing quote characters will skew the token count; the
// builder reports that as a count-mismatch warning rather than repairing it.
func concatQuoted(opts []types.ChoiceOption, get func(types.ChoiceOption) string) string {
	var b strings.Builder
	for i, o := range opts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('"')
		b.WriteString(get(o))
		b.WriteByte('"')
	}
	return b.String()
}

// quotedCount counts the quoted tokens in a concatenated string.
func quotedCount(s string) int {
	return strings.Count(s, `"`) / 2
}

// dedupe returns the unique values of s preserving first-seen order.
func dedupe(s []string) []string {
	seen := make(map[string]bool, len(s))
	var out []string
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
