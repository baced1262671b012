// Package firebase stores records in a Firebase Realtime Database, one child
// per record id under a configurable path.
package firebase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"github.com/in-nis/bogyul-back/internal/models"
	"github.com/in-nis/bogyul-back/internal/records"
)

type Store struct {
	client *db.Client
	path   string
}

var _ records.Store = (*Store)(nil)

func New(ctx context.Context, credFile, dbURL, path string) (*Store, error) {
	sa := option.WithCredentialsFile(credFile)
	conf := &firebase.Config{DatabaseURL: dbURL}

	app, err := firebase.NewApp(ctx, conf, sa)
	if err != nil {
		return nil, fmt.Errorf("error init app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error init db: %w", err)
	}

	return &Store{client: client, path: path}, nil
}

func (s *Store) ref() *db.Ref {
	return s.client.NewRef(s.path)
}

func (s *Store) CreateRecord(ctx context.Context, rec models.Record) (models.Record, error) {
	if err := s.ref().Child(rec.ID).Set(ctx, rec); err != nil {
		return models.Record{}, fmt.Errorf("failed to save record: %w", err)
	}
	return rec, nil
}

func (s *Store) all(ctx context.Context) (map[string]models.Record, error) {
	var m map[string]models.Record
	if err := s.ref().Get(ctx, &m); err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return m, nil
}

func (s *Store) list(ctx context.Context, keep func(models.Record) bool) ([]models.Record, error) {
	m, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Record, 0, len(m))
	for _, r := range m {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) ListRecords(ctx context.Context) ([]models.Record, error) {
	return s.list(ctx, func(models.Record) bool { return true })
}

// ListRecordsByClass filters client side; the database has no index rules
// for grade/class queries.
func (s *Store) ListRecordsByClass(ctx context.Context, grade, classNum string) ([]models.Record, error) {
	return s.list(ctx, func(r models.Record) bool {
		return r.Grade == grade && r.ClassNum == classNum
	})
}

func (s *Store) GetRecord(ctx context.Context, id string) (models.Record, error) {
	var rec models.Record
	if err := s.ref().Child(id).Get(ctx, &rec); err != nil {
		return models.Record{}, fmt.Errorf("failed to load record %s: %w", id, err)
	}
	if rec.ID == "" {
		return models.Record{}, records.ErrNotFound
	}
	return rec, nil
}

func (s *Store) UpdateRecord(ctx context.Context, id string, upd models.RecordUpdate) (models.Record, error) {
	rec, err := s.GetRecord(ctx, id)
	if err != nil {
		return models.Record{}, err
	}

	fields := map[string]interface{}{"updated_at": upd.UpdatedAt}
	rec.UpdatedAt = upd.UpdatedAt
	if upd.AbsentTeacher != nil {
		fields["absent_teacher"] = *upd.AbsentTeacher
		rec.AbsentTeacher = *upd.AbsentTeacher
	}
	if upd.Schedule != nil {
		fields["schedule"] = upd.Schedule
		rec.Schedule = append(rec.Schedule[:0:0], upd.Schedule...)
	}

	if err := s.ref().Child(id).Update(ctx, fields); err != nil {
		return models.Record{}, fmt.Errorf("failed to update record %s: %w", id, err)
	}
	return rec, nil
}

func (s *Store) DeleteRecord(ctx context.Context, id string) error {
	if _, err := s.GetRecord(ctx, id); err != nil {
		return err
	}
	if err := s.ref().Child(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete record %s: %w", id, err)
	}
	return nil
}

func (s *Store) DeleteRecordsBefore(ctx context.Context, date string) (int64, error) {
	m, err := s.all(ctx)
	if err != nil {
		return 0, err
	}
	var n int64
	for id, r := range m {
		if r.Date >= date {
			continue
		}
		if err := s.ref().Child(id).Delete(ctx); err != nil {
			return n, fmt.Errorf("failed to delete record %s: %w", id, err)
		}
		n++
	}
	return n, nil
}

func (s *Store) Ping(ctx context.Context) error {
	var ts string
	return s.client.NewRef("last_ping").Get(ctx, &ts)
}

var ErrUserNotFound = errors.New("user not found")

// userKey maps an email to a legal database key; "." is reserved.
func userKey(email string) string {
	return strings.ReplaceAll(email, ".", ",")
}

func (s *Store) SaveOrUpdateUser(ctx context.Context, u models.User) error {
	if err := s.client.NewRef("users").Child(userKey(u.Email)).Set(ctx, u); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.client.NewRef("users").Child(userKey(email)).Get(ctx, &u); err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u.Email == "" {
		return nil, ErrUserNotFound
	}
	return &u, nil
}
