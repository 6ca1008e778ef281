// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/survey-press/internal/doc"
	"github.com/pdiddy/survey-press/pkg/types"
)

// Persister turns one document unit into one file. The PDF backend is the
// production implementation; tests substitute an in-memory one.
type Persister interface {
	// Ext returns the filename extension including the dot.
	Ext() string

	// Persist writes the unit to path.
	Persist(u doc.Unit, path string) error
}

// Run performs the full render pass: plan unit boundaries, compose every
// unit plus the value-label appendix, and persist them into cfg.SaveDir
// as partNN_<label> files. It returns the written paths in order. Nothing
// is persisted if composition fails.
func Run(fields []types.SurveyField, lists map[string]*types.ChoiceList, listOrder []string,
	cfg types.RenderConfig, p Persister, w io.Writer) ([]string, error) {

	state := NewState()
	comp := &Composer{
		State:        state,
		ChoiceLength: cfg.ChoiceLength,
		Loud:         cfg.Loud,
		W:            w,
	}

	units, err := comp.Compose(Plan(fields, cfg.SkipSet()), Cover{
		Title:   cfg.Title,
		Date:    cfg.Date,
		Version: cfg.Version,
		Authors: cfg.Authors,
		Image:   cfg.CoverImage,
	})
	if err != nil {
		return nil, err
	}

	if appendix := Appendix(lists, listOrder, cfg.ChoiceLength); !appendix.IsEmpty() {
		units = append(units, appendix)
	}

	if err := os.MkdirAll(cfg.SaveDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var paths []string
	for _, u := range units {
		name := fmt.Sprintf("part%02d_%s%s", state.DocCount, slug(u.Label), p.Ext())
		path := filepath.Join(cfg.SaveDir, name)
		if err := p.Persist(u, path); err != nil {
			return paths, fmt.Errorf("writing %s: %w", path, err)
		}
		state.DocCount++
		paths = append(paths, path)
		fmt.Fprintf(w, "wrote: %s\n", path)
	}
	return paths, nil
}

// slug makes a unit label safe for filenames.
func slug(label string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		}
		return '-'
	}, label)
}
