package schedule

// NextStatus returns the next status in the toggle cycle
// substitute -> specialist -> no_class -> substitute.
func NextStatus(s Status) Status {
	switch s {
	case NeedsSubstitute:
		return SpecialistCovered
	case SpecialistCovered:
		return NoClass
	default:
		return NeedsSubstitute
	}
}

func sentinelFor(s Status) string {
	if s == SpecialistCovered {
		return SpecialistSentinel
	}
	return ""
}

// Toggle advances period i one step through the status cycle. Lunch never
// changes; changed is false in that case.
func (t Timetable) Toggle(i int) (changed bool, err error) {
	if i < 0 || i >= len(t) {
		return false, ErrIndexOutOfRange
	}
	if t[i].IsLunch() {
		return false, nil
	}
	t.enter(i, NextStatus(t[i].Status))
	return true, nil
}

// SetStatus moves period i directly into status s.
func (t Timetable) SetStatus(i int, s Status) (changed bool, err error) {
	if i < 0 || i >= len(t) {
		return false, ErrIndexOutOfRange
	}
	if !s.Valid() {
		return false, ErrUnknownStatus
	}
	if t[i].IsLunch() {
		return false, nil
	}
	t.enter(i, s)
	return true, nil
}

func (t Timetable) enter(i int, s Status) {
	t[i].Status = s
	t[i].Content = ""
	t[i].SubstituteTeacher = sentinelFor(s)
}

// SetContent writes lesson content; only substitute periods accept it.
func (t Timetable) SetContent(i int, content string) error {
	if i < 0 || i >= len(t) {
		return ErrIndexOutOfRange
	}
	if t[i].Status != NeedsSubstitute {
		return ErrFieldDisabled
	}
	t[i].Content = content
	return nil
}

func (t Timetable) SetSubstituteTeacher(i int, name string) error {
	if i < 0 || i >= len(t) {
		return ErrIndexOutOfRange
	}
	if t[i].Status != NeedsSubstitute {
		return ErrFieldDisabled
	}
	t[i].SubstituteTeacher = name
	return nil
}
