package models

import (
	"time"

	"github.com/in-nis/bogyul-back/internal/schedule"
	"gorm.io/datatypes"
)

// Record is one saved substitute plan: an absent teacher's timetable for a
// class on a date.
type Record struct {
	ID            string                               `gorm:"primaryKey;size:36" json:"id"`
	AbsentTeacher string                               `gorm:"not null" json:"absent_teacher"`
	Grade         string                               `gorm:"size:2;not null;index:idx_records_class" json:"grade"`
	ClassNum      string                               `gorm:"size:2;not null;index:idx_records_class" json:"class_num"`
	Date          string                               `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Schedule      datatypes.JSONSlice[schedule.Period] `json:"schedule"`
	AuthorID      string                               `json:"author_id"`
	CreatedAt     time.Time                            `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time                            `json:"updated_at"`
}

func (r Record) Timetable() schedule.Timetable {
	return schedule.Timetable(r.Schedule)
}

// History is the engine's read-only view of the record.
func (r Record) History() schedule.HistoryRecord {
	return schedule.HistoryRecord{
		Grade:    r.Grade,
		ClassNum: r.ClassNum,
		Date:     r.Date,
		Schedule: r.Timetable(),
	}
}

// RecordUpdate carries the editable fields; nil means unchanged.
type RecordUpdate struct {
	AbsentTeacher *string
	Schedule      schedule.Timetable
	UpdatedAt     time.Time
}

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	Name         string
	AccessToken  string `gorm:"not null"`
	RefreshToken string
	TokenType    string
	Expiry       time.Time
}
