package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/FocuswithJustin/BrentonAudit/core/errors"
	"github.com/FocuswithJustin/BrentonAudit/core/match"
)

const findingsSheet = "Findings"

// ExcelReport builds the reviewer-facing spreadsheet: a findings sheet with
// one row per token and a summary sheet with per-classification counts.
type ExcelReport struct {
	file    *excelize.File
	lineNum int
	styleID int
}

// NewExcelReport creates an empty workbook with the findings sheet active.
func NewExcelReport() (*ExcelReport, error) {
	r := &ExcelReport{file: excelize.NewFile()}

	index, err := r.file.NewSheet(findingsSheet)
	if err != nil {
		return nil, errors.Wrap(err, "create findings sheet")
	}
	r.file.SetActiveSheet(index)
	if err := r.file.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "drop default sheet")
	}

	if err := r.setStyle(); err != nil {
		return nil, err
	}
	if err := r.writeHeader(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ExcelReport) setStyle() error {
	var err error
	r.styleID, err = r.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size:   12,
			Family: "Calibri",
			Bold:   true,
		},
	})
	if err != nil {
		return errors.Wrap(err, "create header style")
	}
	_ = r.file.SetColWidth(findingsSheet, "A", "A", 9)
	_ = r.file.SetColWidth(findingsSheet, "B", "B", 14)
	_ = r.file.SetColWidth(findingsSheet, "C", "C", 20)
	_ = r.file.SetColWidth(findingsSheet, "D", "E", 18)
	_ = r.file.SetColWidth(findingsSheet, "F", "F", 20)
	_ = r.file.SetColWidth(findingsSheet, "G", "J", 10)
	_ = r.file.SetColWidth(findingsSheet, "K", "K", 80)
	return nil
}

func (r *ExcelReport) writeHeader() error {
	r.lineNum = 1
	for i, h := range tsvHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, r.lineNum)
		if err != nil {
			return errors.Wrap(err, "header cell name")
		}
		if err := r.file.SetCellValue(findingsSheet, cell, h); err != nil {
			return errors.Wrap(err, "write header cell")
		}
		if err := r.file.SetCellStyle(findingsSheet, cell, cell, r.styleID); err != nil {
			return errors.Wrap(err, "style header cell")
		}
	}
	return nil
}

// AddFinding appends one finding row.
func (r *ExcelReport) AddFinding(f Finding) error {
	r.lineNum++
	values := []any{
		f.Line,
		f.Ref,
		f.Word,
		string(f.Classification),
		f.Category,
		f.MatchedForm,
		f.Score,
		string(f.Scope),
		formatFlag(f.ProperName),
		formatFlag(f.Numeral),
		f.Source,
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, r.lineNum)
		if err != nil {
			return errors.Wrap(err, "finding cell name")
		}
		if err := r.file.SetCellValue(findingsSheet, cell, v); err != nil {
			return errors.Wrap(err, "write finding cell")
		}
	}
	return nil
}

// AddSummary appends the per-classification counts as a second sheet.
func (r *ExcelReport) AddSummary(s Summary) error {
	const sheet = "Summary"
	if _, err := r.file.NewSheet(sheet); err != nil {
		return errors.Wrap(err, "create summary sheet")
	}

	rows := []struct {
		label string
		count int
	}{
		{"Total findings", s.Total},
		{string(match.LegitimateVariation), s.Variations},
		{string(match.Typo), s.Typos},
		{string(match.Unknown), s.Unknown},
	}
	for i, row := range rows {
		if err := r.file.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), row.label); err != nil {
			return errors.Wrap(err, "write summary label")
		}
		if err := r.file.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), row.count); err != nil {
			return errors.Wrap(err, "write summary count")
		}
	}
	_ = r.file.SetColWidth(sheet, "A", "A", 24)
	return nil
}

// Save writes the workbook to path.
func (r *ExcelReport) Save(path string) error {
	if err := r.file.SaveAs(path); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}

// WriteExcel renders findings and their summary to an .xlsx file.
func WriteExcel(path string, findings []Finding) error {
	rpt, err := NewExcelReport()
	if err != nil {
		return err
	}
	for _, f := range findings {
		if err := rpt.AddFinding(f); err != nil {
			return err
		}
	}
	if err := rpt.AddSummary(Summarize(findings)); err != nil {
		return err
	}
	return rpt.Save(path)
}
