package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"

	"github.com/in-nis/bogyul-back/internal/models"
	"github.com/in-nis/bogyul-back/internal/schedule"
)

func sampleRecord(t *testing.T) models.Record {
	t.Helper()
	catalog := schedule.DefaultCatalog()
	tt, err := schedule.NewTimetable("5")
	require.NoError(t, err)
	_, err = tt.Toggle(2)
	require.NoError(t, err)
	tt, _ = schedule.NewEngine(catalog).AutoAssign(tt, nil, "5", "3")
	tt[0].SubstituteTeacher = "이선생"

	return models.Record{
		ID:            "rec-1",
		AbsentTeacher: "김철수",
		Grade:         "5",
		ClassNum:      "3",
		Date:          "2024-05-02",
		Schedule:      datatypes.JSONSlice[schedule.Period](tt),
	}
}

func TestWriteRecordThenParse(t *testing.T) {
	rec := sampleRecord(t)

	f, err := WriteRecord(rec, schedule.DefaultCatalog())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	got, err := ParseTimetable(&buf)
	require.NoError(t, err)
	assert.Equal(t, rec.Timetable(), got)
}

func TestWriteRecordLinks(t *testing.T) {
	rec := sampleRecord(t)
	f, err := WriteRecord(rec, schedule.DefaultCatalog())
	require.NoError(t, err)

	v, err := f.GetCellValue(planSheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "5학년 3반", v)

	// the art pair sits at the end of the day for this shape
	var linked int
	for row := 6; row < 6+len(rec.Schedule); row++ {
		cell, _ := excelize.CoordinatesToCellName(5, row)
		ok, _, err := f.GetCellHyperLink(planSheet, cell)
		require.NoError(t, err)
		if ok {
			linked++
		}
	}
	assert.GreaterOrEqual(t, linked, 2)
}

func TestWriteHistory(t *testing.T) {
	rec := sampleRecord(t)
	f, err := WriteHistory([]models.Record{rec, rec})
	require.NoError(t, err)

	rows, err := f.GetRows(historySheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1+2*len(rec.Schedule))
	assert.Equal(t, "김철수", rows[1][3])
}

func TestParseTimetableErrors(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "nothing here"))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	_, err := ParseTimetable(&buf)
	assert.ErrorIs(t, err, ErrNoTimetable)

	f = excelize.NewFile()
	require.NoError(t, writeRow(f, "Sheet1", 1, tableHeader))
	require.NoError(t, writeRow(f, "Sheet1", 2, []string{"1교시", "휴강"}))
	buf.Reset()
	require.NoError(t, f.Write(&buf))

	_, err = ParseTimetable(&buf)
	assert.ErrorIs(t, err, schedule.ErrUnknownStatus)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "보결계획-2024-05-02.xlsx", Filename("2024-05-02"))
}
