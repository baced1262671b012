package schedule

// Engine fills substitute content into timetables. It holds no per-call
// state and may be shared between goroutines when its Rand is safe for
// concurrent use.
type Engine struct {
	catalog *Catalog
	rand    Rand
}

type Option func(*Engine)

// WithRand replaces the default math/rand/v2 source.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rand = r }
}

func NewEngine(c *Catalog, opts ...Option) *Engine {
	e := &Engine{catalog: c, rand: globalRand{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// SelectArt draws one art activity for a class, avoiding titles from its
// history and from sessionUsed.
func (e *Engine) SelectArt(history []HistoryRecord, grade, classNum string, sessionUsed []string) ArtActivity {
	pool := e.catalog.ArtCandidates(history, grade, classNum, sessionUsed)
	return pool[e.rand.IntN(len(pool))]
}

// Assignment reports what AutoAssign decided.
type Assignment struct {
	Eligible    []int        `json:"eligible"`
	Subjects    []string     `json:"subjects"`
	IncludesArt bool         `json:"includes_art"`
	ArtPair     []int        `json:"art_pair,omitempty"`
	ArtSplit    bool         `json:"art_split"`
	Art         *ArtActivity `json:"art,omitempty"`
	Unfilled    []int        `json:"unfilled,omitempty"`
}

// AutoAssign distributes subjects and, when the count calls for it, a
// two-period art activity over the eligible periods of tt. The input is
// left untouched.
func (e *Engine) AutoAssign(tt Timetable, history []HistoryRecord, grade, classNum string) (Timetable, Assignment) {
	out := tt.Clone()
	eligible := out.EligibleIndices()
	subjects, includesArt := e.catalog.Distribute(len(eligible))

	res := Assignment{Eligible: eligible, IncludesArt: includesArt}

	claimed := make(map[int]bool, 2)
	if includesArt {
		art := e.SelectArt(history, grade, classNum, nil)
		res.Art = &art

		if first, second, ok := FindArtPair(eligible); ok {
			out[first].Content = art.Preview()
			out[second].Content = art.Finishing()
			claimed[first], claimed[second] = true, true
			res.ArtPair = []int{first, second}
		} else {
			subjects = append(subjects, art.Preview(), art.Finishing())
			res.ArtSplit = true
		}
	}
	res.Subjects = subjects

	next := 0
	for _, idx := range eligible {
		if claimed[idx] {
			continue
		}
		if next >= len(subjects) {
			res.Unfilled = append(res.Unfilled, idx)
			continue
		}
		out[idx].Content = subjects[next]
		next++
	}
	return out, res
}

// AssignArt writes a fresh art activity into period index and, when the
// next period is eligible too, its finishing half into index+1.
func (e *Engine) AssignArt(tt Timetable, index int, history []HistoryRecord, grade, classNum string) (Timetable, ArtActivity, error) {
	if index < 0 || index >= len(tt) {
		return tt, ArtActivity{}, ErrIndexOutOfRange
	}
	if !tt[index].Eligible() {
		return tt, ArtActivity{}, ErrNotEligible
	}

	out := tt.Clone()
	art := e.SelectArt(history, grade, classNum, nil)
	out[index].Content = art.Preview()
	if next := index + 1; next < len(out) && out[next].Eligible() {
		out[next].Content = art.Finishing()
	}
	return out, art, nil
}
