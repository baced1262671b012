package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// ArtMarker prefixes every art content string.
const ArtMarker = "미술"

var ErrEmptyCatalog = errors.New("art activity catalog is empty")

type ResourceKind string

const (
	KindVideo ResourceKind = "youtube"
	KindSite  ResourceKind = "site"
)

// Template keys.
const (
	SubjectKorean    = "korean"
	SubjectMath      = "math"
	SubjectArt       = "art"
	SubjectCreative1 = "creative1"
	SubjectCreative2 = "creative2"
	SubjectCustom    = "custom"
)

type SubjectTemplate struct {
	Key   string       `json:"key"`
	Label string       `json:"label"`
	Text  string       `json:"text"`
	Link  string       `json:"link,omitempty"`
	Kind  ResourceKind `json:"kind,omitempty"`
}

type ArtActivity struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Preview is the first half of the two-period activity.
func (a ArtActivity) Preview() string {
	return fmt.Sprintf("%s-%s (영상보기)", ArtMarker, a.Title)
}

// Finishing is the hands-on second half.
func (a ArtActivity) Finishing() string {
	return fmt.Sprintf("%s-%s (다듬기 및 채색)", ArtMarker, a.Title)
}

// Link is an external resource attached to a content string.
type Link struct {
	URL  string       `json:"url"`
	Kind ResourceKind `json:"kind"`
}

// Catalog holds the static reference tables. It is never mutated after
// construction.
type Catalog struct {
	subjects []SubjectTemplate
	arts     []ArtActivity
	byKey    map[string]SubjectTemplate
}

func NewCatalog(subjects []SubjectTemplate, arts []ArtActivity) (*Catalog, error) {
	if len(arts) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		subjects: append([]SubjectTemplate(nil), subjects...),
		arts:     append([]ArtActivity(nil), arts...),
		byKey:    make(map[string]SubjectTemplate, len(subjects)),
	}
	for _, s := range subjects {
		c.byKey[s.Key] = s
	}
	return c, nil
}

// Subjects returns a copy of the subject templates.
func (c *Catalog) Subjects() []SubjectTemplate {
	return append([]SubjectTemplate(nil), c.subjects...)
}

// Arts returns a copy of the art activities.
func (c *Catalog) Arts() []ArtActivity {
	return append([]ArtActivity(nil), c.arts...)
}

// Text returns the canonical content text for a template key.
func (c *Catalog) Text(key string) string {
	return c.byKey[key].Text
}

// LinkFor finds the resource referenced by a content string. Art titles
// win over templates.
func (c *Catalog) LinkFor(content string) (Link, bool) {
	if content == "" {
		return Link{}, false
	}
	for _, a := range c.arts {
		if strings.Contains(content, a.Title) {
			return Link{URL: a.URL, Kind: KindVideo}, true
		}
	}
	for _, s := range c.subjects {
		if s.Link == "" {
			continue
		}
		if strings.Contains(content, s.Label) || (s.Text != "" && strings.Contains(content, s.Text)) {
			kind := s.Kind
			if kind == "" {
				kind = KindSite
			}
			return Link{URL: s.Link, Kind: kind}, true
		}
	}
	return Link{}, false
}

const archiveURL = "https://sites.google.com/view/sonssam/손쌤의-교육자료-아카이브"

var defaultSubjects = []SubjectTemplate{
	{Key: SubjectKorean, Label: "국어", Text: "국어-단원평가(미래엔 ai 클래스 기능 추천)"},
	{Key: SubjectMath, Label: "수학", Text: "수학-단원평가(미래엔 ai 클래스 기능 추천)"},
	{Key: SubjectArt, Label: "미술", Text: "(자동배정)", Kind: KindVideo},
	{Key: SubjectCreative1, Label: "창체1(진로영상)", Text: "창체1-진로교육(영상 시청)", Link: archiveURL, Kind: KindSite},
	{Key: SubjectCreative2, Label: "창체2(자유영상시청)", Text: "창체2-자유영상시청", Link: archiveURL, Kind: KindSite},
	{Key: SubjectCustom, Label: "직접 입력"},
}

var defaultArts = []ArtActivity{
	{ID: "butterfly-zentangle", Title: "나비 젠탱글", URL: "https://www.youtube.com/watch?v=tl-Snui7YYs"},
	{ID: "picture-mindmap", Title: "그림 마인드맵 그리기", URL: "https://youtu.be/Ds08CGLeGRU?si=1t-m1XtdjfTt4ioG"},
	{ID: "hand-lines", Title: "선과 면으로 손 그리기", URL: "https://youtu.be/SviKxM3GfLQ?si=Dhtkzww1yF23SJVw"},
	{ID: "hand-animals", Title: "손모양 활용 동물 그리기", URL: "https://www.youtube.com/watch?v=lYp8k6gVICQ&list=PLwYGwTe8eOIhB0vktzu6x-CJnbuaEuqnn&index=8"},
	{ID: "sea", Title: "바다 꾸미기", URL: "https://www.youtube.com/watch?v=IoU_zSSzUas&list=PLwYGwTe8eOIhB0vktzu6x-CJnbuaEuqnn&index=10"},
	{ID: "number-animals", Title: "숫자 연상 동물 그리기", URL: "https://www.youtube.com/watch?v=HDY9axyZzc4&list=PLwYGwTe8eOIhB0vktzu6x-CJnbuaEuqnn&index=13"},
	{ID: "elephant-pop-art", Title: "코끼리 팝아트", URL: "https://www.youtube.com/watch?v=PLx42shlEbA&list=PLwYGwTe8eOIhB0vktzu6x-CJnbuaEuqnn&index=15"},
	{ID: "line-animals", Title: "선으로 동물 그리기", URL: "https://www.youtube.com/watch?v=LwOvuK1SUhA&list=PLwYGwTe8eOIhB0vktzu6x-CJnbuaEuqnn&index=30"},
	{ID: "note-tree", Title: "음표 나무 그리기", URL: "https://www.youtube.com/watch?v=tXjy2vm062A&list=PLwYGwTe8eOIhB0vktzu6x-CJnbuaEuqnn&index=31"},
	{ID: "croquis-animals", Title: "5분 크로키 동물", URL: "https://www.youtube.com/watch?v=PjyBs49HBKQ"},
	{ID: "croquis-landmarks", Title: "랜드마크 5분 크로키", URL: "https://www.youtube.com/watch?v=BCi453eY4qs&t=1s"},
	{ID: "croquis-sports", Title: "스포츠 5분 크로키", URL: "https://www.youtube.com/watch?v=4M5TDY5QklY"},
	{ID: "croquis-endangered", Title: "멸종위기동물 5분 크로키", URL: "https://www.youtube.com/watch?v=zpBk81JfjpM"},
	{ID: "croquis-snacks", Title: "과자봉지 5분 크로키", URL: "https://www.youtube.com/watch?v=Aa-aysNGyF8"},
	{ID: "croquis-kim-hongdo", Title: "김홍도 5분 크로키", URL: "https://www.youtube.com/watch?v=1aL3OQBAX8o"},
}

// DefaultCatalog returns the school's built-in templates and art pool.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultSubjects, defaultArts)
	if err != nil {
		panic(err)
	}
	return c
}
