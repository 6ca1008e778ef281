// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package doc defines the abstract document-unit tree the renderer emits
// and persistence backends consume: one Unit per output file, built from
// flat styled blocks. Backends decide typography and page geometry.
package doc

// BlockKind selects how a backend renders one block.
type BlockKind int

const (
	// Title is the document or cover title.
	Title BlockKind = iota
	// Heading is a top-level section heading (modules).
	Heading
	// Subheading is a nested section heading (groups, questions).
	Subheading
	// Paragraph is body text.
	Paragraph
	// Annotation is secondary text set smaller than body text.
	Annotation
	// Table is a bordered two-column-or-more table.
	Table
	// Image is a reference to an image file placed on the page.
	Image
	// Rule is a horizontal separator.
	Rule
)

// Block is one renderable element of a unit.
type Block struct {
	Kind BlockKind

	// Text carries the content for text kinds and the path for Image.
	Text string

	// TableTitle and Rows are set for Table blocks only.
	TableTitle string
	Rows       [][]string
}

// Unit is one self-contained output document, persisted as one file.
type Unit struct {
	// Label names the unit for its filename: "title-page", a module
	// label, or "valuelabels".
	Label string

	Blocks []Block
}

// IsEmpty reports whether the unit has nothing to render.
func (u *Unit) IsEmpty() bool { return len(u.Blocks) == 0 }

// Add appends a block and returns the unit for chaining.
func (u *Unit) Add(b Block) *Unit {
	u.Blocks = append(u.Blocks, b)
	return u
}

// AddText appends a text block of the given kind.
func (u *Unit) AddText(kind BlockKind, text string) *Unit {
	return u.Add(Block{Kind: kind, Text: text})
}

// AddTable appends a table block.
func (u *Unit) AddTable(title string, rows [][]string) *Unit {
	return u.Add(Block{Kind: Table, TableTitle: title, Rows: rows})
}
