// Package memory keeps records in process memory. It backs the memory
// storage driver and the tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/in-nis/bogyul-back/internal/models"
	"github.com/in-nis/bogyul-back/internal/records"
)

type Store struct {
	mu      sync.RWMutex
	records map[string]models.Record
	users   map[string]models.User
}

var _ records.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		records: make(map[string]models.Record),
		users:   make(map[string]models.User),
	}
}

func (s *Store) CreateRecord(_ context.Context, rec models.Record) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.Schedule = append(rec.Schedule[:0:0], rec.Schedule...)
	s.records[rec.ID] = rec
	return rec, nil
}

func (s *Store) ListRecords(_ context.Context) ([]models.Record, error) {
	return s.filter(func(models.Record) bool { return true }), nil
}

func (s *Store) ListRecordsByClass(_ context.Context, grade, classNum string) ([]models.Record, error) {
	return s.filter(func(r models.Record) bool {
		return r.Grade == grade && r.ClassNum == classNum
	}), nil
}

func (s *Store) filter(keep func(models.Record) bool) []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Record, 0, len(s.records))
	for _, r := range s.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) GetRecord(_ context.Context, id string) (models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return models.Record{}, records.ErrNotFound
	}
	return rec, nil
}

func (s *Store) UpdateRecord(_ context.Context, id string, upd models.RecordUpdate) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return models.Record{}, records.ErrNotFound
	}
	if upd.AbsentTeacher != nil {
		rec.AbsentTeacher = *upd.AbsentTeacher
	}
	if upd.Schedule != nil {
		rec.Schedule = append(rec.Schedule[:0:0], upd.Schedule...)
	}
	rec.UpdatedAt = upd.UpdatedAt
	s.records[id] = rec
	return rec, nil
}

func (s *Store) DeleteRecord(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return records.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func (s *Store) DeleteRecordsBefore(_ context.Context, date string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, r := range s.records {
		if r.Date < date {
			delete(s.records, id)
			n++
		}
	}
	return n, nil
}

func (s *Store) Ping(context.Context) error {
	return nil
}

var ErrUserNotFound = errors.New("user not found")

func (s *Store) SaveOrUpdateUser(_ context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.users[u.Email]; ok {
		u.ID = existing.ID
	} else {
		u.ID = uint(len(s.users) + 1)
	}
	s.users[u.Email] = u
	return nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}
