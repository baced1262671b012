package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/in-nis/bogyul-back/internal/models"
	"github.com/in-nis/bogyul-back/internal/records"
)

func TestRecordsNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		_, err := s.CreateRecord(ctx, models.Record{
			ID:        id,
			Grade:     "5",
			ClassNum:  "1",
			Date:      "2024-04-01",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	recs, err := s.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "c", recs[0].ID)
	assert.Equal(t, "a", recs[2].ID)
}

func TestUpdateAndDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.CreateRecord(ctx, models.Record{ID: "a", AbsentTeacher: "김철수"})
	require.NoError(t, err)

	name := "박영희"
	rec, err := s.UpdateRecord(ctx, "a", models.RecordUpdate{AbsentTeacher: &name, UpdatedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, "박영희", rec.AbsentTeacher)

	_, err = s.UpdateRecord(ctx, "missing", models.RecordUpdate{AbsentTeacher: &name})
	assert.ErrorIs(t, err, records.ErrNotFound)

	require.NoError(t, s.DeleteRecord(ctx, "a"))
	_, err = s.GetRecord(ctx, "a")
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestUsersKeepID(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveOrUpdateUser(ctx, models.User{Email: "a@school.kr", Name: "A"}))
	first, err := s.GetUserByEmail(ctx, "a@school.kr")
	require.NoError(t, err)

	require.NoError(t, s.SaveOrUpdateUser(ctx, models.User{Email: "a@school.kr", Name: "A2"}))
	second, err := s.GetUserByEmail(ctx, "a@school.kr")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "A2", second.Name)

	_, err = s.GetUserByEmail(ctx, "b@school.kr")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
