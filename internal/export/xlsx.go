package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	spellingSheet = "Spellings"
	summarySheet  = "Summary"
)

// WriteXLSX writes a workbook with one row per spelling on the first sheet
// and one row per phrase on a summary sheet
func (e *Exporter) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", spellingSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := f.SetSheetRow(spellingSheet, "A1", &[]interface{}{"Phrase", "Note", "Rank", "Spelling"}); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	if err := f.SetSheetRow(summarySheet, "A1", &[]interface{}{"Phrase", "Note", "Spellings", "Shown"}); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	row := 2
	for i, r := range e.results {
		for j, v := range r.Variants {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(spellingSheet, cell, &[]interface{}{r.Phrase, r.Note, j + 1, v}); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
			row++
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &[]interface{}{r.Phrase, r.Note, r.Total, len(r.Variants)}); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	if err := f.SetColWidth(spellingSheet, "A", "D", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "A", "B", 24); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
