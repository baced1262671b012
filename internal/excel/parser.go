package excel

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/in-nis/bogyul-back/internal/schedule"
)

var ErrNoTimetable = errors.New("no timetable header found")

// ParseTimetable reads the first sheet of a workbook laid out like
// WriteRecord: a header row starting with "교시" followed by one row per
// period (label, status, substitute teacher, content).
func ParseTimetable(r io.Reader) (schedule.Timetable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoTimetable
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	start := -1
	for i, row := range rows {
		if len(row) > 0 && strings.TrimSpace(row[0]) == tableHeader[0] {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, ErrNoTimetable
	}

	var tt schedule.Timetable
	for i := start; i < len(rows); i++ {
		row := rows[i]
		label := cell(row, 0)
		if label == "" {
			break
		}
		status, err := schedule.ParseStatus(cell(row, 1))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		tt = append(tt, schedule.Period{
			Label:             label,
			Status:            status,
			SubstituteTeacher: cell(row, 2),
			Content:           cell(row, 3),
		})
	}
	return tt, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
