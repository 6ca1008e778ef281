// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workbook reads the survey/choices workbook into header-keyed rows.
// It owns the fatal schema checks: both sheets must exist and carry their
// required columns before any downstream stage runs.
package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	// SurveySheet is the sheet holding question/group/repeat rows.
	SurveySheet = "survey"
	// ChoicesSheet is the sheet holding multiple-choice option rows.
	ChoicesSheet = "choices"
)

// surveyRequired lists the columns the survey sheet must carry.
var surveyRequired = []string{"type", "name", "label"}

// Row maps a column name to the cell text of one sheet row.
// Column names are matched exactly and case-sensitively.
type Row map[string]string

// Get returns the trimmed cell value for column name, or "" when absent.
func (r Row) Get(name string) string {
	return strings.TrimSpace(r[name])
}

// Sheet holds one parsed sheet: its header and all data rows in file order.
type Sheet struct {
	Name    string
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the sheet header contains name.
func (s *Sheet) HasColumn(name string) bool {
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Workbook holds the two sheets of one survey workbook.
type Workbook struct {
	Survey  *Sheet
	Choices *Sheet
}

// Load opens an xlsx workbook and parses the survey and choices sheets.
// Missing sheets or missing required columns are fatal schema errors.
func Load(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	survey, err := readSheet(f, SurveySheet)
	if err != nil {
		return nil, err
	}
	choices, err := readSheet(f, ChoicesSheet)
	if err != nil {
		return nil, err
	}

	if missing := missingColumns(survey, surveyRequired); len(missing) > 0 {
		return nil, fmt.Errorf("sheet %q is missing required columns: %s",
			SurveySheet, strings.Join(missing, ", "))
	}
	if err := checkChoiceColumns(choices); err != nil {
		return nil, err
	}

	return &Workbook{Survey: survey, Choices: choices}, nil
}

// readSheet parses one sheet: first row is the header, every later row is
// keyed by header name. Cells beyond the header width are dropped; short
// rows leave their trailing columns absent.
func readSheet(f *excelize.File, name string) (*Sheet, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("workbook has no %q sheet: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty: missing header row", name)
	}

	header := make([]string, 0, len(rows[0]))
	for _, c := range rows[0] {
		header = append(header, strings.TrimSpace(c))
	}

	sheet := &Sheet{Name: name, Columns: header}
	for _, raw := range rows[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if col == "" || i >= len(raw) {
				continue
			}
			row[col] = raw[i]
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

// missingColumns returns the names in required that the sheet lacks.
func missingColumns(s *Sheet, required []string) []string {
	var missing []string
	for _, col := range required {
		if !s.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// ValueColumn returns the column holding option values on the choices
// sheet: "value" when present, else "name".
func (s *Sheet) ValueColumn() string {
	if s.HasColumn("value") {
		return "value"
	}
	return "name"
}

// checkChoiceColumns validates the choices sheet header: list_name and
// label are required, and either value or name must supply option values.
func checkChoiceColumns(s *Sheet) error {
	var missing []string
	for _, col := range []string{"list_name", "label"} {
		if !s.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if !s.HasColumn("value") && !s.HasColumn("name") {
		missing = append(missing, "value (or name)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("sheet %q is missing required columns: %s",
			ChoicesSheet, strings.Join(missing, ", "))
	}
	return nil
}
