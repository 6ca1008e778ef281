// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/survey-press/internal/doc"
)

func TestPersist(t *testing.T) {
	u := doc.Unit{Label: "title-page"}
	u.AddText(doc.Title, "Household Survey")
	u.AddText(doc.Heading, "Module A")
	u.AddText(doc.Subheading, "1. How old are you? (in years)")
	u.AddText(doc.Paragraph, "A note about the module.")
	u.AddText(doc.Annotation, "Ask if: all")
	u.AddTable("yn", [][]string{{"No = 0"}, {"Yes = 1"}})
	u.AddTable("", [][]string{{"variable", "age"}, {"required", "no"}})
	u.Add(doc.Block{Kind: doc.Rule})
	// A missing cover image is skipped, not an error.
	u.AddText(doc.Image, filepath.Join(t.TempDir(), "missing.png"))

	w := New()
	if w.Ext() != ".pdf" {
		t.Errorf("ext = %q", w.Ext())
	}

	path := filepath.Join(t.TempDir(), "part00_title-page.pdf")
	if err := w.Persist(u, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF: %q", data[:8])
	}
}

func TestPersist_ManyRowsPaginate(t *testing.T) {
	u := doc.Unit{Label: "valuelabels"}
	rows := make([][]string, 0, 120)
	for i := 0; i < 120; i++ {
		rows = append(rows, []string{"label", "value"})
	}
	u.AddTable("big", rows)

	path := filepath.Join(t.TempDir(), "part01_valuelabels.pdf")
	if err := New().Persist(u, path); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("stat %s: %v", path, err)
	}
}
