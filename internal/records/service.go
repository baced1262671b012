package records

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/in-nis/bogyul-back/internal/models"
	"github.com/in-nis/bogyul-back/internal/schedule"
)

const dateLayout = "2006-01-02"

type (
	// Store persists records. Implementations return ErrNotFound for
	// unknown ids.
	Store interface {
		CreateRecord(ctx context.Context, rec models.Record) (models.Record, error)
		// ListRecords returns every record, newest first.
		ListRecords(ctx context.Context) ([]models.Record, error)
		ListRecordsByClass(ctx context.Context, grade, classNum string) ([]models.Record, error)
		GetRecord(ctx context.Context, id string) (models.Record, error)
		UpdateRecord(ctx context.Context, id string, upd models.RecordUpdate) (models.Record, error)
		DeleteRecord(ctx context.Context, id string) error
		// DeleteRecordsBefore removes records whose date is before the given YYYY-MM-DD.
		DeleteRecordsBefore(ctx context.Context, date string) (int64, error)
		Ping(ctx context.Context) error
	}

	Service struct {
		store  Store
		engine *schedule.Engine
		log    *zap.Logger
		check  *checker
		now    func() time.Time
	}
)

type NewRecord struct {
	AbsentTeacher string             `json:"absent_teacher" validate:"required,max=50"`
	Grade         string             `json:"grade" validate:"required,oneof=4 5 6"`
	ClassNum      string             `json:"class_num" validate:"required,oneof=1 2 3 4 5 6 7 8 9 10 11"`
	Date          string             `json:"date" validate:"required,datetime=2006-01-02"`
	Schedule      schedule.Timetable `json:"schedule" validate:"required"`
}

type UpdateRecord struct {
	AbsentTeacher *string            `json:"absent_teacher"`
	Schedule      schedule.Timetable `json:"schedule"`
}

// ClassRef identifies one class of the school.
type ClassRef struct {
	Grade    string `json:"grade" validate:"required,oneof=4 5 6"`
	ClassNum string `json:"class_num" validate:"required,oneof=1 2 3 4 5 6 7 8 9 10 11"`
}

type AssignRequest struct {
	ClassRef
	Schedule schedule.Timetable `json:"schedule" validate:"required"`
}

type ArtRequest struct {
	AssignRequest
	Index int `json:"index" validate:"min=0"`
}

type Filter struct {
	Grade    string
	ClassNum string
}

func NewService(store Store, engine *schedule.Engine, log *zap.Logger) *Service {
	return &Service{
		store:  store,
		engine: engine,
		log:    log,
		check:  newChecker(),
		now:    time.Now,
	}
}

func (svc *Service) Catalog() *schedule.Catalog {
	return svc.engine.Catalog()
}

func (svc *Service) Ping(ctx context.Context) error {
	return svc.store.Ping(ctx)
}

func (svc *Service) Create(ctx context.Context, nr NewRecord, authorID string) (models.Record, error) {
	nr.AbsentTeacher = strings.TrimSpace(nr.AbsentTeacher)
	if err := svc.check.check(nr); err != nil {
		return models.Record{}, err
	}
	if err := validateTimetable(nr.Schedule, nr.Grade); err != nil {
		return models.Record{}, err
	}

	now := svc.now().UTC()
	rec := models.Record{
		ID:            uuid.NewString(),
		AbsentTeacher: nr.AbsentTeacher,
		Grade:         nr.Grade,
		ClassNum:      nr.ClassNum,
		Date:          nr.Date,
		Schedule:      datatypes.JSONSlice[schedule.Period](nr.Schedule.Clone()),
		AuthorID:      authorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	rec, err := svc.store.CreateRecord(ctx, rec)
	if err != nil {
		return models.Record{}, err
	}
	svc.log.Info("record created",
		zap.String("id", rec.ID),
		zap.String("grade", rec.Grade),
		zap.String("class", rec.ClassNum),
		zap.String("date", rec.Date),
	)
	return rec, nil
}

func (svc *Service) List(ctx context.Context, f Filter) ([]models.Record, error) {
	if f.Grade != "" && f.ClassNum != "" {
		return svc.store.ListRecordsByClass(ctx, f.Grade, f.ClassNum)
	}
	recs, err := svc.store.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	if f.Grade == "" && f.ClassNum == "" {
		return recs, nil
	}
	out := recs[:0]
	for _, r := range recs {
		if (f.Grade == "" || r.Grade == f.Grade) && (f.ClassNum == "" || r.ClassNum == f.ClassNum) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (svc *Service) Get(ctx context.Context, id string) (models.Record, error) {
	return svc.store.GetRecord(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, ur UpdateRecord) (models.Record, error) {
	existing, err := svc.store.GetRecord(ctx, id)
	if err != nil {
		return models.Record{}, err
	}

	upd := models.RecordUpdate{UpdatedAt: svc.now().UTC()}
	if ur.AbsentTeacher != nil {
		name := strings.TrimSpace(*ur.AbsentTeacher)
		if name == "" {
			return models.Record{}, NewValidationError(errInvalidInput,
				FieldError{Field: "absent_teacher", Error: "absent_teacher is a required field"})
		}
		upd.AbsentTeacher = &name
	}
	if ur.Schedule != nil {
		if err := validateTimetable(ur.Schedule, existing.Grade); err != nil {
			return models.Record{}, err
		}
		upd.Schedule = ur.Schedule.Clone()
	}

	rec, err := svc.store.UpdateRecord(ctx, id, upd)
	if err != nil {
		return models.Record{}, err
	}
	svc.log.Info("record updated", zap.String("id", id))
	return rec, nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	if err := svc.store.DeleteRecord(ctx, id); err != nil {
		return err
	}
	svc.log.Info("record deleted", zap.String("id", id))
	return nil
}

// History returns the saved timetables of one class for art deduplication.
func (svc *Service) History(ctx context.Context, grade, classNum string) ([]schedule.HistoryRecord, error) {
	recs, err := svc.store.ListRecordsByClass(ctx, grade, classNum)
	if err != nil {
		return nil, err
	}
	history := make([]schedule.HistoryRecord, 0, len(recs))
	for _, r := range recs {
		history = append(history, r.History())
	}
	return history, nil
}

// AutoAssign fills the eligible periods of req.Schedule using the class
// history for art rotation.
func (svc *Service) AutoAssign(ctx context.Context, req AssignRequest) (schedule.Timetable, schedule.Assignment, error) {
	if err := svc.checkAssign(req); err != nil {
		return nil, schedule.Assignment{}, err
	}
	history, err := svc.History(ctx, req.Grade, req.ClassNum)
	if err != nil {
		return nil, schedule.Assignment{}, err
	}

	tt, res := svc.engine.AutoAssign(req.Schedule, history, req.Grade, req.ClassNum)
	if len(res.Unfilled) > 0 {
		svc.log.Warn("periods left without content", zap.Ints("indices", res.Unfilled))
	}
	return tt, res, nil
}

// AssignArt puts a single art activity at req.Index.
func (svc *Service) AssignArt(ctx context.Context, req ArtRequest) (schedule.Timetable, schedule.ArtActivity, error) {
	if err := svc.check.check(req); err != nil {
		return nil, schedule.ArtActivity{}, err
	}
	if err := validateTimetable(req.Schedule, req.Grade); err != nil {
		return nil, schedule.ArtActivity{}, err
	}
	history, err := svc.History(ctx, req.Grade, req.ClassNum)
	if err != nil {
		return nil, schedule.ArtActivity{}, err
	}
	return svc.engine.AssignArt(req.Schedule, req.Index, history, req.Grade, req.ClassNum)
}

func (svc *Service) checkAssign(req AssignRequest) error {
	if err := svc.check.check(req); err != nil {
		return err
	}
	return validateTimetable(req.Schedule, req.Grade)
}

// Purge deletes records dated more than keep before today.
func (svc *Service) Purge(ctx context.Context, keep time.Duration) (int64, error) {
	cutoff := svc.now().Add(-keep).Format(dateLayout)
	n, err := svc.store.DeleteRecordsBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	svc.log.Info("old records purged", zap.String("before", cutoff), zap.Int64("count", n))
	return n, nil
}

func validateTimetable(tt schedule.Timetable, grade string) error {
	err := tt.Validate(grade)
	if err == nil {
		return nil
	}
	if errors.Is(err, schedule.ErrInvalidTimetable) || errors.Is(err, schedule.ErrInvalidGrade) {
		return NewValidationError(err, FieldError{Field: "schedule", Error: err.Error()})
	}
	return err
}
