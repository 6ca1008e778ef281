// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"

	"github.com/pdiddy/survey-press/internal/doc"
	"github.com/pdiddy/survey-press/pkg/types"
)

// NoLabelPlaceholder stands in for an absent question label.
const NoLabelPlaceholder = "THIS FIELD HAS NO TEXT"

// relevanceAll is displayed when a section or question has no relevance
// expression.
const relevanceAll = "all"

// Cover holds the title-page content drawn from the run configuration.
type Cover struct {
	Title   string
	Date    string
	Version string
	Authors []string
	Image   string
}

// Composer turns planned units into document-unit trees. It owns the
// run's State so the per-type transitions can be tested by constructing a
// State directly.
type Composer struct {
	State        *State
	ChoiceLength int

	// Loud writes one line per processed field to W.
	Loud bool
	W    io.Writer
}

// Compose renders every planned unit. The first unit opens with the cover
// blocks. Question numbers and section context run across unit boundaries.
func (c *Composer) Compose(plans []UnitPlan, cover Cover) ([]doc.Unit, error) {
	units := make([]doc.Unit, 0, len(plans))
	for i, p := range plans {
		u := doc.Unit{Label: p.Label}
		if i == 0 {
			c.coverBlocks(&u, cover)
		}
		c.State.TableCount = tableBaseline
		for j := range p.Fields {
			if err := c.field(&u, &p.Fields[j]); err != nil {
				return nil, err
			}
		}
		units = append(units, u)
	}
	return units, nil
}

// field dispatches one record by type. Unknown types produce no output
// but still pass through the traversal.
func (c *Composer) field(u *doc.Unit, f *types.SurveyField) error {
	if c.Loud {
		fmt.Fprintf(c.W, "field %d: %s %s\n", f.Index, f.Type, f.Name)
	}
	c.State.TableCount += fieldCost(f.Type)

	switch f.Type {
	case types.TypeModule:
		c.module(u, f)
	case types.TypeBeginGroup, types.TypeBeginRepeat:
		c.beginSection(u, f)
	case types.TypeEndGroup, types.TypeEndRepeat:
		return c.endSection(u, f)
	case types.TypeNote:
		c.note(u, f)
	case types.TypeText, types.TypeInteger, types.TypeSelectOne, types.TypeSelectMultiple:
		c.question(u, f)
	case types.TypeCalculate, types.TypeCalculateHere:
		c.calculation(u, f)
	}
	return nil
}

// coverBlocks opens the title page: title, date, version, authors, image.
func (c *Composer) coverBlocks(u *doc.Unit, cover Cover) {
	if cover.Title != "" {
		u.AddText(doc.Title, cover.Title)
	}
	if cover.Date != "" {
		u.AddText(doc.Paragraph, cover.Date)
	}
	if cover.Version != "" {
		u.AddText(doc.Paragraph, "Version "+cover.Version)
	}
	for _, a := range cover.Authors {
		u.AddText(doc.Paragraph, a)
	}
	if cover.Image != "" {
		u.AddText(doc.Image, cover.Image)
	}
	if !u.IsEmpty() {
		u.Add(doc.Block{Kind: doc.Rule})
	}
}

func (c *Composer) module(u *doc.Unit, f *types.SurveyField) {
	c.State.ModuleCount++
	c.State.ModuleLabel = f.Heading()
	u.AddText(doc.Heading, f.Heading())
}

// beginSection records the heading under the section's name and renders
// the opening line. Repeats additionally show their count expression.
func (c *Composer) beginSection(u *doc.Unit, f *types.SurveyField) {
	heading := f.Heading()
	c.State.Sections[f.Name] = heading

	kind := "Group"
	if f.Type == types.TypeBeginRepeat {
		kind = "Repeat"
	}
	u.AddText(doc.Subheading, fmt.Sprintf("Begin %s: %s - %s", kind, heading, f.Name))
	u.AddText(doc.Annotation, "Ask if: "+orDefault(f.Relevance, relevanceAll))
	if f.Type == types.TypeBeginRepeat {
		u.AddText(doc.Annotation, "Repeat count: "+orDefault(f.RepeatCount, "unspecified"))
	}
}

// endSection closes the innermost section of the same name. The
// normalizer rejects malformed nesting before composition starts, so a
// missing entry here means the traversal itself is broken.
func (c *Composer) endSection(u *doc.Unit, f *types.SurveyField) error {
	heading, ok := c.State.Sections[f.Name]
	if !ok {
		return fmt.Errorf("row %d: %s %q closes a section that was never opened", f.Index, f.Type, f.Name)
	}
	delete(c.State.Sections, f.Name)

	kind := "Group"
	if f.Type == types.TypeEndRepeat {
		kind = "Repeat"
	}
	u.AddText(doc.Subheading, fmt.Sprintf("End %s: %s", kind, heading))
	return nil
}

func (c *Composer) note(u *doc.Unit, f *types.SurveyField) {
	u.AddText(doc.Paragraph, f.Label)
	if f.Relevance != "" {
		u.AddText(doc.Annotation, "Ask if: "+f.Relevance)
	}
}

// question renders the numbered two-part block: label and hint, inline
// options or an appendix pointer for select types, and the metadata box
// for attributes that diverge from their defaults.
func (c *Composer) question(u *doc.Unit, f *types.SurveyField) {
	n := c.State.QuestionCount
	c.State.QuestionCount++

	head := fmt.Sprintf("%d. %s", n, orDefault(f.Label, NoLabelPlaceholder))
	if f.Hint != "" {
		head += fmt.Sprintf(" (%s)", f.Hint)
	}
	u.AddText(doc.Subheading, head)

	if f.Type.IsSelect() && f.Choices != nil {
		if f.Choices.Count() < c.ChoiceLength {
			rows := make([][]string, 0, f.Choices.Count())
			for _, o := range f.Choices.Options {
				rows = append(rows, []string{fmt.Sprintf("%s = %s", o.Label, o.Value)})
			}
			u.AddTable(f.Choices.ListName, rows)
		} else {
			u.AddText(doc.Annotation, fmt.Sprintf("See value label '%s'", f.Choices.ListName))
		}
	}

	if rows := metadataRows(f); len(rows) > 0 {
		u.AddTable("", rows)
	}
	if f.ConstraintMessage != "" {
		u.AddText(doc.Annotation, "Constraint message: "+f.ConstraintMessage)
	}
}

// metadataRows collects the metadata-box rows for attributes that diverge
// from the implicit defaults. Required defaults to true and is shown only
// when explicitly false.
func metadataRows(f *types.SurveyField) [][]string {
	var rows [][]string
	if f.Name != "" {
		rows = append(rows, []string{"variable", f.Name})
	}
	if f.Group != "" {
		rows = append(rows, []string{"group", f.Group})
	}
	if f.Relevance != "" {
		rows = append(rows, []string{"ask if", f.Relevance})
	}
	if f.Constraint != "" {
		rows = append(rows, []string{"constraint", f.Constraint})
	}
	if !f.IsRequired() {
		rows = append(rows, []string{"required", "no"})
	}
	return rows
}

// calculation renders calculate/calculate_here as an annotation; it
// consumes no question number and no table budget.
func (c *Composer) calculation(u *doc.Unit, f *types.SurveyField) {
	u.AddText(doc.Annotation, fmt.Sprintf("Calculation %s: %s", f.Name, orDefault(f.Calculation, "(not specified)")))
	if f.Label != "" {
		u.AddText(doc.Annotation, f.Label)
	}
}

// orDefault returns s, or def when s is empty.
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
