package schedule

// Distribute decides which subjects cover n eligible periods. When
// includesArt is true, a two-period art activity takes two of the n slots
// on top of the returned subjects.
//
// For n >= 7 the table runs out: only two creative-activity slots are ever
// added, so trailing periods get no content.
func (c *Catalog) Distribute(n int) (subjects []string, includesArt bool) {
	korean := c.Text(SubjectKorean)
	math := c.Text(SubjectMath)
	cc1 := c.Text(SubjectCreative1)
	cc2 := c.Text(SubjectCreative2)

	switch {
	case n >= 5:
		subjects = []string{korean, math}
		if n-4 > 0 {
			subjects = append(subjects, cc1)
		}
		if n-4 > 1 {
			subjects = append(subjects, cc2)
		}
		return subjects, true
	case n == 4:
		return []string{math, cc1}, true
	case n == 3:
		return []string{korean, math, cc1}, false
	case n == 2:
		return []string{math, cc1}, false
	case n == 1:
		return []string{math}, false
	}
	return nil, false
}

// FindArtPair scans eligible indices from the end and returns the latest
// pair that is also adjacent in the full timetable.
func FindArtPair(eligible []int) (first, second int, ok bool) {
	for i := len(eligible) - 2; i >= 0; i-- {
		if eligible[i+1] == eligible[i]+1 {
			return eligible[i], eligible[i+1], true
		}
	}
	return 0, 0, false
}
