package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// Status of a single period in a daily timetable.
type Status string

const (
	NeedsSubstitute   Status = "substitute"
	SpecialistCovered Status = "specialist"
	NoClass           Status = "no_class"
)

const (
	LunchLabel   = "점심시간"
	LunchContent = "급식지도 및 휴게지원"

	// SpecialistSentinel is written as the substitute teacher of a period
	// covered by a subject specialist.
	SpecialistSentinel = "-"
)

var (
	ErrIndexOutOfRange  = errors.New("period index out of range")
	ErrNotEligible      = errors.New("period does not need a substitute")
	ErrFieldDisabled    = errors.New("field can only be written on substitute periods")
	ErrInvalidGrade     = errors.New("grade must be 4, 5 or 6")
	ErrInvalidTimetable = errors.New("invalid timetable")
	ErrUnknownStatus    = errors.New("unknown period status")
)

var statusLabels = map[Status]string{
	NeedsSubstitute:   "보결",
	SpecialistCovered: "전담",
	NoClass:           "수업없음",
}

// Label returns the Korean display label.
func (s Status) Label() string {
	return statusLabels[s]
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// ParseStatus accepts wire values as well as display labels.
func ParseStatus(v string) (Status, error) {
	v = strings.TrimSpace(v)
	for s, label := range statusLabels {
		if v == string(s) || v == label {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, v)
}

type Period struct {
	Label             string `json:"label"`
	Status            Status `json:"status"`
	SubstituteTeacher string `json:"substitute_teacher"`
	Content           string `json:"content"`
}

func (p Period) IsLunch() bool {
	return p.Label == LunchLabel
}

// Eligible reports whether auto-assignment may write content into p.
func (p Period) Eligible() bool {
	return p.Status == NeedsSubstitute && !p.IsLunch()
}

// Timetable is the ordered list of periods of one class for one day.
// Order defines adjacency.
type Timetable []Period

// LunchIndex returns the fixed lunch position for a grade.
func LunchIndex(grade string) (int, error) {
	switch grade {
	case "4":
		return 4, nil
	case "5", "6":
		return 5, nil
	}
	return 0, ErrInvalidGrade
}

// NewTimetable returns a fresh 7-slot template for the grade tier: six
// teaching periods plus lunch, every slot needing a substitute.
func NewTimetable(grade string) (Timetable, error) {
	lunch, err := LunchIndex(grade)
	if err != nil {
		return nil, err
	}

	tt := make(Timetable, 0, 7)
	n := 1
	for i := 0; i < 7; i++ {
		if i == lunch {
			tt = append(tt, Period{Label: LunchLabel, Status: NeedsSubstitute, Content: LunchContent})
			continue
		}
		tt = append(tt, Period{Label: fmt.Sprintf("%d교시", n), Status: NeedsSubstitute})
		n++
	}
	return tt, nil
}

// Clone returns a deep copy.
func (t Timetable) Clone() Timetable {
	if t == nil {
		return nil
	}
	out := make(Timetable, len(t))
	copy(out, t)
	return out
}

// EligibleIndices lists the indices of eligible periods in timetable order.
func (t Timetable) EligibleIndices() []int {
	var idx []int
	for i, p := range t {
		if p.Eligible() {
			idx = append(idx, i)
		}
	}
	return idx
}

// Validate checks the structural invariants for the grade and the write rule
// for disabled fields.
func (t Timetable) Validate(grade string) error {
	lunch, err := LunchIndex(grade)
	if err != nil {
		return err
	}
	if len(t) != 7 {
		return fmt.Errorf("%w: expected 7 periods, got %d", ErrInvalidTimetable, len(t))
	}

	lunches := 0
	for i, p := range t {
		if !p.Status.Valid() {
			return fmt.Errorf("%w: period %d: %w", ErrInvalidTimetable, i, ErrUnknownStatus)
		}
		if p.IsLunch() {
			lunches++
			if i != lunch {
				return fmt.Errorf("%w: lunch must be at index %d for grade %s", ErrInvalidTimetable, lunch, grade)
			}
			continue
		}
		if p.Status != NeedsSubstitute {
			if p.Content != "" || p.SubstituteTeacher != sentinelFor(p.Status) {
				return fmt.Errorf("%w: period %d: %w", ErrInvalidTimetable, i, ErrFieldDisabled)
			}
		}
	}
	if lunches != 1 {
		return fmt.Errorf("%w: expected exactly one lunch period, got %d", ErrInvalidTimetable, lunches)
	}
	return nil
}
