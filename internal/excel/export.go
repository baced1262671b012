package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/in-nis/bogyul-back/internal/models"
	"github.com/in-nis/bogyul-back/internal/schedule"
)

const (
	planSheet    = "보결계획"
	historySheet = "히스토리"
)

var tableHeader = []string{"교시", "구분", "보결 교사", "수업 내용", "자료"}

// Filename is the download name of a single record export.
func Filename(date string) string {
	return fmt.Sprintf("보결계획-%s.xlsx", date)
}

type styles struct {
	title, header, cell int
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "94A3B8", Style: 1},
		{Type: "top", Color: "94A3B8", Style: 1},
		{Type: "right", Color: "94A3B8", Style: 1},
		{Type: "bottom", Color: "94A3B8", Style: 1},
	}

	var st styles
	var err error
	if st.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return st, err
	}
	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"DBEAFE"}, Pattern: 1},
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return st, err
	}
	if st.cell, err = f.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
	}); err != nil {
		return st, err
	}
	return st, nil
}

// WriteRecord renders one record as a printable plan sheet.
func WriteRecord(rec models.Record, catalog *schedule.Catalog) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), planSheet); err != nil {
		return nil, err
	}
	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	set := func(cell string, v interface{}) {
		if err == nil {
			err = f.SetCellValue(planSheet, cell, v)
		}
	}

	set("A1", "보결 계획")
	set("A2", "날짜")
	set("B2", rec.Date)
	set("C2", "학급")
	set("D2", fmt.Sprintf("%s학년 %s반", rec.Grade, rec.ClassNum))
	set("A3", "결근 교사")
	set("B3", rec.AbsentTeacher+" 선생님")
	if err != nil {
		return nil, err
	}
	if err := f.MergeCell(planSheet, "A1", "E1"); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(planSheet, "A1", "E1", st.title); err != nil {
		return nil, err
	}

	const headerRow = 5
	if err := writeRow(f, planSheet, headerRow, tableHeader); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(planSheet, "A5", "E5", st.header); err != nil {
		return nil, err
	}

	for i, p := range rec.Schedule {
		row := headerRow + 1 + i
		vals := []string{p.Label, p.Status.Label(), p.SubstituteTeacher, p.Content, ""}
		link, hasLink := catalog.LinkFor(p.Content)
		if hasLink {
			vals[4] = link.URL
		}
		if err := writeRow(f, planSheet, row, vals); err != nil {
			return nil, err
		}
		if hasLink {
			cell, _ := excelize.CoordinatesToCellName(5, row)
			if err := f.SetCellHyperLink(planSheet, cell, link.URL, "External"); err != nil {
				return nil, err
			}
		}
	}

	last := headerRow + len(rec.Schedule)
	lastCell, _ := excelize.CoordinatesToCellName(5, last)
	if len(rec.Schedule) > 0 {
		if err := f.SetCellStyle(planSheet, "A6", lastCell, st.cell); err != nil {
			return nil, err
		}
	}
	if err := setWidths(f, planSheet, map[string]float64{"A": 10, "B": 12, "C": 14, "D": 48, "E": 40}); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteHistory lists records one period per row.
func WriteHistory(recs []models.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), historySheet); err != nil {
		return nil, err
	}
	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	header := []string{"날짜", "학년", "반", "결근 교사", "교시", "구분", "보결 교사", "수업 내용"}
	if err := writeRow(f, historySheet, 1, header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(historySheet, "A1", "H1", st.header); err != nil {
		return nil, err
	}

	row := 2
	for _, rec := range recs {
		for _, p := range rec.Schedule {
			vals := []string{rec.Date, rec.Grade, rec.ClassNum, rec.AbsentTeacher, p.Label, p.Status.Label(), p.SubstituteTeacher, p.Content}
			if err := writeRow(f, historySheet, row, vals); err != nil {
				return nil, err
			}
			row++
		}
	}
	if err := f.SetPanes(historySheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, err
	}
	if err := setWidths(f, historySheet, map[string]float64{"A": 12, "D": 14, "G": 14, "H": 48}); err != nil {
		return nil, err
	}
	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, vals []string) error {
	for i, v := range vals {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func setWidths(f *excelize.File, sheet string, widths map[string]float64) error {
	for col, w := range widths {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}
