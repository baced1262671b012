package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/in-nis/bogyul-back/internal/api"
	"github.com/in-nis/bogyul-back/internal/auth"
	"github.com/in-nis/bogyul-back/internal/config"
	"github.com/in-nis/bogyul-back/internal/excel"
	"github.com/in-nis/bogyul-back/internal/models"
	"github.com/in-nis/bogyul-back/internal/records"
	"github.com/in-nis/bogyul-back/internal/schedule"
	"github.com/in-nis/bogyul-back/internal/storage/memory"
)

const teacherEmail = "teacher@school.kr"

type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

type testServer struct {
	router *gin.Engine
	store  *memory.Store
	svc    *records.Service
	token  string
}

func newServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWT_SECRET: "secret"}
	store := memory.New()
	engine := schedule.NewEngine(schedule.DefaultCatalog(), schedule.WithRand(firstRand{}))
	svc := records.NewService(store, engine, zap.NewNop())
	r := api.SetupRouter(cfg, api.NewHandler(svc, store, zap.NewNop()), zap.NewNop())

	access, _, err := auth.IssueTokens([]byte(cfg.JWT_SECRET), teacherEmail)
	require.NoError(t, err)
	return &testServer{router: r, store: store, svc: svc, token: access}
}

func (s *testServer) do(method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func template(t *testing.T, grade string) schedule.Timetable {
	t.Helper()
	tt, err := schedule.NewTimetable(grade)
	require.NoError(t, err)
	return tt
}

func TestHealth(t *testing.T) {
	s := newServer(t)
	w := s.do(http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCatalog(t *testing.T) {
	s := newServer(t)
	w := s.do(http.MethodGet, "/catalog", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.CatalogResponse
	decode(t, w, &resp)
	assert.Len(t, resp.Subjects, len(s.svc.Catalog().Subjects()))
	assert.Len(t, resp.Arts, len(s.svc.Catalog().Arts()))
}

func TestTemplate(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/schedule/template?grade=4", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	var tt schedule.Timetable
	decode(t, w, &tt)
	require.Len(t, tt, 7)
	assert.True(t, tt[4].IsLunch())

	w = s.do(http.MethodGet, "/schedule/template?grade=3", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleAndStatus(t *testing.T) {
	s := newServer(t)
	tt := template(t, "5")
	idx := func(i int) *int { return &i }

	w := s.do(http.MethodPost, "/schedule/toggle", api.ToggleRequest{Schedule: tt, Index: idx(0)}, false)
	require.Equal(t, http.StatusOK, w.Code)
	var resp api.ScheduleResponse
	decode(t, w, &resp)
	assert.True(t, resp.Changed)
	assert.Equal(t, schedule.SpecialistCovered, resp.Schedule[0].Status)
	assert.Equal(t, schedule.SpecialistSentinel, resp.Schedule[0].SubstituteTeacher)

	w = s.do(http.MethodPost, "/schedule/toggle", api.ToggleRequest{Schedule: tt, Index: idx(5)}, false)
	require.Equal(t, http.StatusOK, w.Code)
	resp = api.ScheduleResponse{}
	decode(t, w, &resp)
	assert.False(t, resp.Changed)
	assert.Equal(t, schedule.LunchContent, resp.Schedule[5].Content)

	w = s.do(http.MethodPost, "/schedule/toggle", api.ToggleRequest{Schedule: tt, Index: idx(9)}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/schedule/toggle", gin.H{"schedule": tt}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/schedule/status", api.StatusRequest{
		ToggleRequest: api.ToggleRequest{Schedule: tt, Index: idx(2)},
		Status:        schedule.NoClass,
	}, false)
	require.Equal(t, http.StatusOK, w.Code)
	resp = api.ScheduleResponse{}
	decode(t, w, &resp)
	assert.Equal(t, schedule.NoClass, resp.Schedule[2].Status)
	assert.Empty(t, resp.Schedule[2].SubstituteTeacher)
}

func TestAutoAssign(t *testing.T) {
	s := newServer(t)
	arts := s.svc.Catalog().Arts()

	w := s.do(http.MethodPost, "/schedule/auto-assign", records.AssignRequest{
		ClassRef: records.ClassRef{Grade: "6", ClassNum: "1"},
		Schedule: template(t, "6"),
	}, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.AutoAssignResponse
	decode(t, w, &resp)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 6}, resp.Assignment.Eligible)
	assert.Equal(t, []int{3, 4}, resp.Assignment.ArtPair)
	assert.Equal(t, arts[0].Preview(), resp.Schedule[3].Content)
	assert.Equal(t, arts[0].Finishing(), resp.Schedule[4].Content)
	assert.Equal(t, schedule.LunchContent, resp.Schedule[5].Content)

	w = s.do(http.MethodPost, "/schedule/auto-assign", records.AssignRequest{
		ClassRef: records.ClassRef{Grade: "7", ClassNum: "1"},
		Schedule: template(t, "6"),
	}, false)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var errResp api.ErrorResponse
	decode(t, w, &errResp)
	require.NotEmpty(t, errResp.Fields)
	assert.Equal(t, "grade", errResp.Fields[0].Field)
}

func TestAssignArt(t *testing.T) {
	s := newServer(t)
	tt := template(t, "5")
	_, err := tt.Toggle(0)
	require.NoError(t, err)

	req := records.ArtRequest{
		AssignRequest: records.AssignRequest{
			ClassRef: records.ClassRef{Grade: "5", ClassNum: "3"},
			Schedule: tt,
		},
		Index: 1,
	}
	w := s.do(http.MethodPost, "/schedule/art", req, false)
	require.Equal(t, http.StatusOK, w.Code)
	var resp api.ArtResponse
	decode(t, w, &resp)
	assert.Equal(t, resp.Art.Preview(), resp.Schedule[1].Content)
	assert.Equal(t, resp.Art.Finishing(), resp.Schedule[2].Content)

	req.Index = 0
	w = s.do(http.MethodPost, "/schedule/art", req, false)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRecordLifecycle(t *testing.T) {
	s := newServer(t)
	nr := records.NewRecord{
		AbsentTeacher: "김철수",
		Grade:         "6",
		ClassNum:      "2",
		Date:          "2024-05-01",
		Schedule:      template(t, "6"),
	}

	w := s.do(http.MethodPost, "/records", nr, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/records", nr, true)
	require.Equal(t, http.StatusCreated, w.Code)
	var rec models.Record
	decode(t, w, &rec)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, teacherEmail, rec.AuthorID)

	w = s.do(http.MethodGet, "/records/"+rec.ID, nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/records?grade=6&class_num=2", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Record
	decode(t, w, &list)
	assert.Len(t, list, 1)

	w = s.do(http.MethodGet, "/records?grade=5", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	list = nil
	decode(t, w, &list)
	assert.Empty(t, list)

	name := "박영희"
	w = s.do(http.MethodPatch, "/records/"+rec.ID, records.UpdateRecord{AbsentTeacher: &name}, true)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Record
	decode(t, w, &updated)
	assert.Equal(t, "박영희", updated.AbsentTeacher)

	w = s.do(http.MethodDelete, "/records/"+rec.ID, nil, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/records/"+rec.ID, nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(http.MethodDelete, "/records/"+rec.ID, nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecordValidation(t *testing.T) {
	s := newServer(t)
	w := s.do(http.MethodPost, "/records", records.NewRecord{
		AbsentTeacher: "김철수",
		Grade:         "5",
		ClassNum:      "1",
		Date:          "tomorrow",
		Schedule:      template(t, "5"),
	}, true)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp api.ErrorResponse
	decode(t, w, &resp)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "date", resp.Fields[0].Field)
}

func TestExportRecord(t *testing.T) {
	s := newServer(t)
	rec, err := s.svc.Create(context.Background(), records.NewRecord{
		AbsentTeacher: "김철수",
		Grade:         "4",
		ClassNum:      "1",
		Date:          "2024-05-02",
		Schedule:      template(t, "4"),
	}, "")
	require.NoError(t, err)

	w := s.do(http.MethodGet, "/records/"+rec.ID+"/export", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "2024-05-02.xlsx")

	tt, err := excel.ParseTimetable(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, rec.Timetable(), tt)

	w = s.do(http.MethodGet, "/records/export?grade=4", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/records/missing/export", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func upload(t *testing.T, s *testServer, grade string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("grade", grade))
	part, err := mw.CreateFormFile("file", "plan.xlsx")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/schedule/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestImportTimetable(t *testing.T) {
	s := newServer(t)
	tt := template(t, "5")
	_, err := tt.Toggle(1)
	require.NoError(t, err)
	tt[0].Content = "국어"

	f, err := excel.WriteRecord(models.Record{
		AbsentTeacher: "김철수",
		Grade:         "5",
		ClassNum:      "7",
		Date:          "2024-05-03",
		Schedule:      []schedule.Period(tt),
	}, s.svc.Catalog())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	w := upload(t, s, "5", buf.Bytes())
	require.Equal(t, http.StatusOK, w.Code)
	var got schedule.Timetable
	decode(t, w, &got)
	assert.Equal(t, tt, got)

	w = upload(t, s, "4", buf.Bytes())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = upload(t, s, "5", []byte("not a workbook"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/me", nil, true)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	require.NoError(t, s.store.SaveOrUpdateUser(context.Background(), models.User{Email: teacherEmail, Name: "Kim"}))
	w = s.do(http.MethodGet, "/me", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), teacherEmail))
}
