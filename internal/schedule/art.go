package schedule

import (
	"math/rand"
	"strings"
)

// Rand is the source of the single random draw in art selection.
type Rand interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.Intn(n) }

// HistoryRecord is a previously saved timetable, read-only here.
type HistoryRecord struct {
	Grade    string
	ClassNum string
	Date     string
	Schedule Timetable
}

// UsedArtTitles returns the catalog titles that already appear in the
// history of one grade and class. Matching is by substring containment.
func (c *Catalog) UsedArtTitles(history []HistoryRecord, grade, classNum string) map[string]bool {
	var contents []string
	for _, rec := range history {
		if rec.Grade != grade || rec.ClassNum != classNum {
			continue
		}
		for _, p := range rec.Schedule {
			if p.Content != "" && strings.Contains(p.Content, ArtMarker) {
				contents = append(contents, p.Content)
			}
		}
	}

	used := make(map[string]bool)
	for _, a := range c.arts {
		if containsTitle(contents, a.Title) {
			used[a.Title] = true
		}
	}
	return used
}

func containsTitle(contents []string, title string) bool {
	for _, s := range contents {
		if strings.Contains(s, title) {
			return true
		}
	}
	return false
}

// ArtCandidates returns the pool a draw is made from: activities unused in
// both history and the current session, or, once history is exhausted,
// those unused in the session alone.
func (c *Catalog) ArtCandidates(history []HistoryRecord, grade, classNum string, sessionUsed []string) []ArtActivity {
	used := c.UsedArtTitles(history, grade, classNum)

	var fresh, unusedNow []ArtActivity
	for _, a := range c.arts {
		if containsTitle(sessionUsed, a.Title) {
			continue
		}
		unusedNow = append(unusedNow, a)
		if !used[a.Title] {
			fresh = append(fresh, a)
		}
	}
	if len(fresh) > 0 {
		return fresh
	}
	if len(unusedNow) > 0 {
		return unusedNow
	}
	// The whole catalog went by in one session.
	return c.Arts()
}
