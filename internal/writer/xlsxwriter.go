// Package writer serialises a compiled xlsform.XLSForm into the
// three-sheet ODK/Enketo/Kobo workbook (survey, choices, settings), using
// the exact column order fixed by internal/xlsform.
package writer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/savannahghi/mentorship-xls-form/internal/xlsform"
)

// Write renders form to a new workbook at path, overwriting any existing
// file there.
func Write(form *xlsform.XLSForm, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	s, err := newStyler(f)
	if err != nil {
		return fmt.Errorf("registering styles: %w", err)
	}

	if err := writeSurveySheet(f, s, form.Survey); err != nil {
		return fmt.Errorf("writing survey sheet: %w", err)
	}
	if err := writeChoicesSheet(f, s, form.Choices); err != nil {
		return fmt.Errorf("writing choices sheet: %w", err)
	}
	if err := writeSettingsSheet(f, s, form.Settings); err != nil {
		return fmt.Errorf("writing settings sheet: %w", err)
	}

	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func writeSurveySheet(f *excelize.File, s *styler, records []xlsform.Record) error {
	const sheet = "survey"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	writeRow(f, sheet, 1, xlsform.SurveyColumns, s.headerStyle)
	for i, r := range records {
		writeRow(f, sheet, i+2, r.Cells(), s.defaultStyle)
	}
	return freezeHeader(f, sheet)
}

func writeChoicesSheet(f *excelize.File, s *styler, choices []xlsform.Choice) error {
	const sheet = "choices"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	writeRow(f, sheet, 1, xlsform.ChoicesColumns, s.headerStyle)
	for i, c := range choices {
		writeRow(f, sheet, i+2, c.Cells(), s.defaultStyle)
	}
	return freezeHeader(f, sheet)
}

func writeSettingsSheet(f *excelize.File, s *styler, settings xlsform.Settings) error {
	const sheet = "settings"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	writeRow(f, sheet, 1, xlsform.SettingsColumns, s.headerStyle)
	writeRow(f, sheet, 2, settings.Cells(), s.defaultStyle)
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func freezeHeader(f *excelize.File, sheet string) error {
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
