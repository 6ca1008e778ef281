// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/survey-press/pkg/types"
)

// MaxTextLen is the longest stored text value; anything beyond is cut.
const MaxTextLen = 2045

// reservedChars are stripped from every text field; the rendering layer
// uses them for templating.
const reservedChars = "${}"

// Sanitize trims, truncates, and strips reserved characters from every
// text field of both tables, after the merge. Double quotes are removed
// everywhere except the two concatenated choice/value strings, which are
// quoted by construction. The whole pass is a fixed point: running it on
// already-clean data changes nothing.
//
// Truncation is reported per column, using the worst overflow seen in that
// column.
func Sanitize(fields []types.SurveyField, lists map[string]*types.ChoiceList, w io.Writer) {
	over := overflows{}

	for i := range fields {
		f := &fields[i]
		f.Name = clean(f.Name, false, "name", over)
		f.Label = clean(f.Label, false, "label", over)
		f.Hint = clean(f.Hint, false, "hint", over)
		f.Constraint = clean(f.Constraint, false, "constraint", over)
		f.ConstraintMessage = clean(f.ConstraintMessage, false, "constraint_message", over)
		f.Relevance = clean(f.Relevance, false, "relevance", over)
		f.RepeatCount = clean(f.RepeatCount, false, "repeat_count", over)
		f.Calculation = clean(f.Calculation, false, "calculation", over)
		f.Group = clean(f.Group, false, "group", over)
		f.ListName = clean(f.ListName, false, "list_name", over)
	}

	for _, l := range lists {
		l.ListName = clean(l.ListName, false, "list_name", over)
		for i := range l.Options {
			o := &l.Options[i]
			o.ListName = clean(o.ListName, false, "list_name", over)
			o.Value = clean(o.Value, false, "choice value", over)
			o.Label = clean(o.Label, false, "choice label", over)
		}
		l.Choices = clean(l.Choices, true, "choices", over)
		l.Values = clean(l.Values, true, "values", over)
	}

	over.report(w)
}

// overflows tracks the worst truncation per column.
type overflows map[string]int

func (o overflows) note(column string, dropped int) {
	if dropped > o[column] {
		o[column] = dropped
	}
}

func (o overflows) report(w io.Writer) {
	cols := make([]string, 0, len(o))
	for c := range o {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	for _, c := range cols {
		fmt.Fprintf(w, "warning: %s values truncated, longest lost %d character(s)\n", c, o[c])
	}
}

// clean applies the sanitation rules to one value: strip reserved
// characters (and quotes, unless the field holds intentionally quoted
// content), trim, and truncate to MaxTextLen. Stripping runs before the
// trim, and the trim is reapplied after a truncation cut, so the result
// is a fixed point of clean.
func clean(s string, keepQuotes bool, column string, over overflows) string {
	drop := reservedChars
	if !keepQuotes {
		drop += `"`
	}
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(drop, r) {
			return -1
		}
		return r
	}, s)

	s = strings.TrimSpace(s)
	if len(s) > MaxTextLen {
		cut := MaxTextLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		over.note(column, len(s)-cut)
		s = strings.TrimSpace(s[:cut])
	}
	return s
}
