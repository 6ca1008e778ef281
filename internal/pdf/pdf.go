// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf persists document units as A4 PDF files. Blocks are laid
// out top to bottom; a table never splits across a page boundary.
package pdf

import (
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/survey-press/internal/doc"
)

const (
	pageMargin = 15.0
	lineHeight = 5.5
	tableWidth = 170.0
	coverImgW  = 80.0
)

// Writer implements render.Persister on top of fpdf.
type Writer struct{}

// New returns a PDF persister.
func New() *Writer { return &Writer{} }

// Ext returns ".pdf".
func (w *Writer) Ext() string { return ".pdf" }

// Persist renders one unit into a single PDF file at path.
func (w *Writer) Persist(u doc.Unit, path string) error {
	p := fpdf.New("P", "mm", "A4", "")
	p.SetMargins(pageMargin, pageMargin, pageMargin)
	p.SetAutoPageBreak(true, pageMargin)
	p.AddPage()
	tr := p.UnicodeTranslatorFromDescriptor("")

	for _, b := range u.Blocks {
		writeBlock(p, tr, b)
	}

	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF %s: %w", path, err)
	}
	return nil
}

func writeBlock(p *fpdf.Fpdf, tr func(string) string, b doc.Block) {
	switch b.Kind {
	case doc.Title:
		p.SetFont("Helvetica", "B", 18)
		p.MultiCell(0, 9, tr(b.Text), "", "C", false)
		p.Ln(3)
	case doc.Heading:
		p.SetFont("Helvetica", "B", 14)
		p.MultiCell(0, 7, tr(b.Text), "", "L", false)
		p.Ln(2)
	case doc.Subheading:
		p.SetFont("Helvetica", "B", 11)
		p.MultiCell(0, lineHeight, tr(b.Text), "", "L", false)
		p.Ln(1)
	case doc.Paragraph:
		p.SetFont("Helvetica", "", 10)
		p.MultiCell(0, lineHeight, tr(b.Text), "", "L", false)
		p.Ln(1)
	case doc.Annotation:
		p.SetFont("Helvetica", "I", 9)
		p.MultiCell(0, lineHeight, tr(b.Text), "", "L", false)
		p.Ln(1)
	case doc.Table:
		writeTable(p, tr, b)
	case doc.Image:
		writeImage(p, b.Text)
	case doc.Rule:
		x, y := p.GetX(), p.GetY()
		p.Line(x, y, x+tableWidth, y)
		p.Ln(4)
	}
}

// writeTable draws a bordered table, starting a fresh page when the whole
// table would not fit below the cursor.
func writeTable(p *fpdf.Fpdf, tr func(string) string, b doc.Block) {
	rows := len(b.Rows)
	if b.TableTitle != "" {
		rows++
	}
	_, pageH := p.GetPageSize()
	if p.GetY()+float64(rows)*(lineHeight+1) > pageH-pageMargin {
		p.AddPage()
	}

	if b.TableTitle != "" {
		p.SetFont("Helvetica", "B", 10)
		p.CellFormat(tableWidth, lineHeight+1, tr(b.TableTitle), "1", 1, "L", false, 0, "")
	}
	p.SetFont("Helvetica", "", 10)
	for _, row := range b.Rows {
		cw := tableWidth / float64(len(row))
		for _, cell := range row {
			p.CellFormat(cw, lineHeight+1, tr(cell), "1", 0, "L", false, 0, "")
		}
		p.Ln(lineHeight + 1)
	}
	p.Ln(2)
}

// writeImage places the cover image centered; a missing file is skipped
// rather than failing the whole unit.
func writeImage(p *fpdf.Fpdf, path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	pageW, _ := p.GetPageSize()
	x := (pageW - coverImgW) / 2
	p.ImageOptions(path, x, p.GetY(), coverImgW, 0, true, fpdf.ImageOptions{}, 0, "")
	p.Ln(4)
}
