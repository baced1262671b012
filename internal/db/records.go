package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/in-nis/bogyul-back/internal/models"
	"github.com/in-nis/bogyul-back/internal/records"
	"github.com/in-nis/bogyul-back/internal/schedule"
)

var _ records.Store = (*Store)(nil)

func (s *Store) CreateRecord(ctx context.Context, rec models.Record) (models.Record, error) {
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return models.Record{}, fmt.Errorf("create record: %w", err)
	}
	return rec, nil
}

func (s *Store) ListRecords(ctx context.Context) ([]models.Record, error) {
	var recs []models.Record
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return recs, nil
}

func (s *Store) ListRecordsByClass(ctx context.Context, grade, classNum string) ([]models.Record, error) {
	var recs []models.Record
	err := s.db.WithContext(ctx).
		Where("grade = ? AND class_num = ?", grade, classNum).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list records of %s-%s: %w", grade, classNum, err)
	}
	return recs, nil
}

func (s *Store) GetRecord(ctx context.Context, id string) (models.Record, error) {
	var rec models.Record
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Record{}, records.ErrNotFound
		}
		return models.Record{}, fmt.Errorf("get record %s: %w", id, err)
	}
	return rec, nil
}

func (s *Store) UpdateRecord(ctx context.Context, id string, upd models.RecordUpdate) (models.Record, error) {
	fields := map[string]interface{}{"updated_at": upd.UpdatedAt}
	if upd.AbsentTeacher != nil {
		fields["absent_teacher"] = *upd.AbsentTeacher
	}
	if upd.Schedule != nil {
		fields["schedule"] = datatypes.JSONSlice[schedule.Period](upd.Schedule)
	}

	tx := s.db.WithContext(ctx).Model(&models.Record{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return models.Record{}, fmt.Errorf("update record %s: %w", id, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return models.Record{}, records.ErrNotFound
	}
	return s.GetRecord(ctx, id)
}

func (s *Store) DeleteRecord(ctx context.Context, id string) error {
	tx := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Record{})
	if tx.Error != nil {
		return fmt.Errorf("delete record %s: %w", id, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return records.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteRecordsBefore(ctx context.Context, date string) (int64, error) {
	tx := s.db.WithContext(ctx).Where("date < ?", date).Delete(&models.Record{})
	if tx.Error != nil {
		return 0, fmt.Errorf("delete records before %s: %w", date, tx.Error)
	}
	return tx.RowsAffected, nil
}
