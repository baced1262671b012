package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimetable(t *testing.T) {
	tests := []struct {
		grade string
		lunch int
	}{
		{grade: "4", lunch: 4},
		{grade: "5", lunch: 5},
		{grade: "6", lunch: 5},
	}
	for _, tt := range tests {
		table, err := NewTimetable(tt.grade)
		require.NoError(t, err)
		require.Len(t, table, 7)
		assert.True(t, table[tt.lunch].IsLunch(), "grade %s", tt.grade)
		assert.Equal(t, "1교시", table[0].Label)
		assert.Equal(t, "6교시", table[6].Label)
		assert.NoError(t, table.Validate(tt.grade))
	}

	_, err := NewTimetable("3")
	assert.ErrorIs(t, err, ErrInvalidGrade)
}

func TestToggleCycle(t *testing.T) {
	tt := highTimetable(t)
	tt[0].Content = "수학"
	tt[0].SubstituteTeacher = "김선생"

	changed, err := tt.Toggle(0)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, SpecialistCovered, tt[0].Status)
	assert.Empty(t, tt[0].Content)
	assert.Equal(t, SpecialistSentinel, tt[0].SubstituteTeacher)

	_, err = tt.Toggle(0)
	require.NoError(t, err)
	assert.Equal(t, NoClass, tt[0].Status)
	assert.Empty(t, tt[0].SubstituteTeacher)

	_, err = tt.Toggle(0)
	require.NoError(t, err)
	assert.Equal(t, NeedsSubstitute, tt[0].Status)
	assert.Empty(t, tt[0].SubstituteTeacher)
	assert.Empty(t, tt[0].Content)
}

func TestToggleLunch(t *testing.T) {
	tt := highTimetable(t)
	changed, err := tt.Toggle(5)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, NeedsSubstitute, tt[5].Status)
	assert.Equal(t, LunchContent, tt[5].Content)

	changed, err = tt.SetStatus(5, NoClass)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = tt.Toggle(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSetStatus(t *testing.T) {
	tt := highTimetable(t)
	tt[2].Content = "x"

	changed, err := tt.SetStatus(2, SpecialistCovered)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, SpecialistSentinel, tt[2].SubstituteTeacher)
	assert.Empty(t, tt[2].Content)

	_, err = tt.SetStatus(2, Status("bogus"))
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestWriteRule(t *testing.T) {
	tt := highTimetable(t)
	require.NoError(t, tt.SetContent(0, "국어"))
	require.NoError(t, tt.SetSubstituteTeacher(0, "박선생"))

	_, err := tt.Toggle(1)
	require.NoError(t, err)
	assert.ErrorIs(t, tt.SetContent(1, "국어"), ErrFieldDisabled)
	assert.ErrorIs(t, tt.SetSubstituteTeacher(1, "박선생"), ErrFieldDisabled)
	assert.ErrorIs(t, tt.SetContent(9, "x"), ErrIndexOutOfRange)
}

func TestValidate(t *testing.T) {
	t.Run("wrong lunch position", func(t *testing.T) {
		tt, err := NewTimetable("4")
		require.NoError(t, err)
		assert.ErrorIs(t, tt.Validate("6"), ErrInvalidTimetable)
	})

	t.Run("content on specialist", func(t *testing.T) {
		tt := highTimetable(t)
		tt[0].Status = SpecialistCovered
		tt[0].SubstituteTeacher = SpecialistSentinel
		tt[0].Content = "국어"
		err := tt.Validate("6")
		assert.ErrorIs(t, err, ErrInvalidTimetable)
		assert.ErrorIs(t, err, ErrFieldDisabled)
	})

	t.Run("wrong length", func(t *testing.T) {
		tt := highTimetable(t)
		assert.ErrorIs(t, tt[:6].Validate("6"), ErrInvalidTimetable)
	})

	t.Run("no lunch", func(t *testing.T) {
		tt := highTimetable(t)
		tt[5].Label = "7교시"
		assert.ErrorIs(t, tt.Validate("6"), ErrInvalidTimetable)
	})

	t.Run("bad grade", func(t *testing.T) {
		assert.ErrorIs(t, highTimetable(t).Validate("7"), ErrInvalidGrade)
	})
}

func TestParseStatus(t *testing.T) {
	for in, want := range map[string]Status{
		"보결":         NeedsSubstitute,
		"전담":         SpecialistCovered,
		" 수업없음 ":     NoClass,
		"substitute": NeedsSubstitute,
		"no_class":   NoClass,
	} {
		got, err := ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseStatus("휴강")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
