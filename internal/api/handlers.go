package api

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/in-nis/bogyul-back/internal/auth"
	"github.com/in-nis/bogyul-back/internal/excel"
	"github.com/in-nis/bogyul-back/internal/records"
	"github.com/in-nis/bogyul-back/internal/schedule"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	svc   *records.Service
	users auth.Users
	log   *zap.Logger
}

func NewHandler(svc *records.Service, users auth.Users, log *zap.Logger) *Handler {
	return &Handler{svc: svc, users: users, log: log}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string               `json:"error"`
	Fields []records.FieldError `json:"fields,omitempty"`
}

func (h *Handler) fail(c *gin.Context, err error, msg string) {
	var verr *records.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Error(), Fields: verr.Fields})
	case errors.Is(err, records.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Record not found"})
	case errors.Is(err, schedule.ErrNotEligible):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, schedule.ErrIndexOutOfRange), errors.Is(err, schedule.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		h.log.Error(msg, zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
	}
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	if err := h.svc.Ping(c.Request.Context()); err != nil {
		h.log.Warn("store ping failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "db_ping_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CatalogResponse lists the reference data.
type CatalogResponse struct {
	Subjects []schedule.SubjectTemplate `json:"subjects"`
	Arts     []schedule.ArtActivity     `json:"arts"`
}

// GetCatalog godoc
// @Summary      Content templates and art activities
// @Tags         schedule
// @Produce      json
// @Success      200 {object} CatalogResponse
// @Router       /catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	catalog := h.svc.Catalog()
	c.JSON(http.StatusOK, CatalogResponse{Subjects: catalog.Subjects(), Arts: catalog.Arts()})
}

// GetTemplate godoc
// @Summary      Empty timetable for a grade
// @Description  Grade 4 has lunch after the 4th period, grades 5 and 6 after the 5th
// @Tags         schedule
// @Produce      json
// @Param        grade  query  string  true  "Grade (4, 5 or 6)"
// @Success      200 {array} schedule.Period
// @Failure      400 {object} ErrorResponse
// @Router       /schedule/template [get]
func (h *Handler) GetTemplate(c *gin.Context) {
	tt, err := schedule.NewTimetable(c.Query("grade"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, tt)
}

// ToggleRequest targets one period of a timetable.
type ToggleRequest struct {
	Schedule schedule.Timetable `json:"schedule" binding:"required"`
	Index    *int               `json:"index" binding:"required"`
}

// StatusRequest sets a period status directly.
type StatusRequest struct {
	ToggleRequest
	Status schedule.Status `json:"status" binding:"required"`
}

// ScheduleResponse carries an updated timetable.
type ScheduleResponse struct {
	Schedule schedule.Timetable `json:"schedule"`
	Changed  bool               `json:"changed"`
}

// ToggleStatus godoc
// @Summary      Cycle a period status
// @Description  substitute -> specialist -> no_class -> substitute; lunch never changes
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body  ToggleRequest  true  "Timetable and period index"
// @Success      200 {object} ScheduleResponse
// @Failure      400 {object} ErrorResponse
// @Router       /schedule/toggle [post]
func (h *Handler) ToggleStatus(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	changed, err := req.Schedule.Toggle(*req.Index)
	if err != nil {
		h.fail(c, err, "Failed to toggle status")
		return
	}
	c.JSON(http.StatusOK, ScheduleResponse{Schedule: req.Schedule, Changed: changed})
}

// SetStatus godoc
// @Summary      Set a period status
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body  StatusRequest  true  "Timetable, period index and status"
// @Success      200 {object} ScheduleResponse
// @Failure      400 {object} ErrorResponse
// @Router       /schedule/status [post]
func (h *Handler) SetStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	changed, err := req.Schedule.SetStatus(*req.Index, req.Status)
	if err != nil {
		h.fail(c, err, "Failed to set status")
		return
	}
	c.JSON(http.StatusOK, ScheduleResponse{Schedule: req.Schedule, Changed: changed})
}

// AutoAssignResponse is the filled timetable plus what was decided.
type AutoAssignResponse struct {
	Schedule   schedule.Timetable  `json:"schedule"`
	Assignment schedule.Assignment `json:"assignment"`
}

// AutoAssign godoc
// @Summary      Auto-assign substitute content
// @Description  Fills every substitute period with subjects and, from four periods up, a two-period art activity not yet used by the class
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body  records.AssignRequest  true  "Class and timetable"
// @Success      200 {object} AutoAssignResponse
// @Failure      400 {object} ErrorResponse
// @Router       /schedule/auto-assign [post]
func (h *Handler) AutoAssign(c *gin.Context) {
	var req records.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	tt, res, err := h.svc.AutoAssign(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to assign content")
		return
	}
	c.JSON(http.StatusOK, AutoAssignResponse{Schedule: tt, Assignment: res})
}

// ArtResponse is the timetable after a manual art assignment.
type ArtResponse struct {
	Schedule schedule.Timetable   `json:"schedule"`
	Art      schedule.ArtActivity `json:"art"`
}

// AssignArt godoc
// @Summary      Put an art activity on one period
// @Description  Writes the preview half at index and the finishing half at index+1 when that period also needs a substitute
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body  records.ArtRequest  true  "Class, timetable and period index"
// @Success      200 {object} ArtResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /schedule/art [post]
func (h *Handler) AssignArt(c *gin.Context) {
	var req records.ArtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	tt, art, err := h.svc.AssignArt(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to assign art")
		return
	}
	c.JSON(http.StatusOK, ArtResponse{Schedule: tt, Art: art})
}

// ImportTimetable godoc
// @Summary      Read a timetable from a spreadsheet
// @Tags         schedule
// @Accept       multipart/form-data
// @Produce      json
// @Param        grade  formData  string  true  "Grade (4, 5 or 6)"
// @Param        file   formData  file    true  "xlsx workbook"
// @Success      200 {array} schedule.Period
// @Failure      400 {object} ErrorResponse
// @Router       /schedule/import [post]
func (h *Handler) ImportTimetable(c *gin.Context) {
	grade := c.PostForm("grade")
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing file"})
		return
	}
	src, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read file"})
		return
	}
	defer src.Close()

	tt, err := excel.ParseTimetable(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := tt.Validate(grade); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, tt)
}

// ListRecords godoc
// @Summary      Saved substitute plans
// @Description  Newest first, optionally for one grade and/or class
// @Tags         records
// @Produce      json
// @Param        grade      query  string  false  "Grade"
// @Param        class_num  query  string  false  "Class number"
// @Success      200 {array} models.Record
// @Failure      500 {object} ErrorResponse
// @Router       /records [get]
func (h *Handler) ListRecords(c *gin.Context) {
	recs, err := h.svc.List(c.Request.Context(), records.Filter{
		Grade:    c.Query("grade"),
		ClassNum: c.Query("class_num"),
	})
	if err != nil {
		h.fail(c, err, "Failed to fetch records")
		return
	}
	c.JSON(http.StatusOK, recs)
}

// GetRecord godoc
// @Summary      One substitute plan
// @Tags         records
// @Produce      json
// @Param        id   path  string  true  "Record ID"
// @Success      200 {object} models.Record
// @Failure      404 {object} ErrorResponse
// @Router       /records/{id} [get]
func (h *Handler) GetRecord(c *gin.Context) {
	rec, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to fetch record")
		return
	}
	c.JSON(http.StatusOK, rec)
}

// CreateRecord godoc
// @Summary      Save a substitute plan
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        body  body  records.NewRecord  true  "Plan"
// @Success      201 {object} models.Record
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /records [post]
func (h *Handler) CreateRecord(c *gin.Context) {
	var req records.NewRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	rec, err := h.svc.Create(c.Request.Context(), req, c.GetString(auth.EmailKey))
	if err != nil {
		h.fail(c, err, "Failed to save record")
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// UpdateRecord godoc
// @Summary      Edit a saved plan
// @Description  Changes the absent teacher and/or the whole timetable
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "Record ID"
// @Param        body  body  records.UpdateRecord  true  "Fields to change"
// @Success      200 {object} models.Record
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /records/{id} [patch]
func (h *Handler) UpdateRecord(c *gin.Context) {
	var req records.UpdateRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	rec, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err, "Failed to update record")
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteRecord godoc
// @Summary      Delete a saved plan
// @Tags         records
// @Produce      json
// @Param        id   path  string  true  "Record ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /records/{id} [delete]
func (h *Handler) DeleteRecord(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Failed to delete record")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted"})
}

// ExportRecord godoc
// @Summary      Download a plan as xlsx
// @Tags         records
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path  string  true  "Record ID"
// @Success      200 {file} file
// @Failure      404 {object} ErrorResponse
// @Router       /records/{id}/export [get]
func (h *Handler) ExportRecord(c *gin.Context) {
	rec, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to fetch record")
		return
	}
	f, err := excel.WriteRecord(rec, h.svc.Catalog())
	if err != nil {
		h.fail(c, err, "Failed to build workbook")
		return
	}
	h.sendWorkbook(c, f, excel.Filename(rec.Date))
}

// ExportRecords godoc
// @Summary      Download the history as xlsx
// @Tags         records
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        grade      query  string  false  "Grade"
// @Param        class_num  query  string  false  "Class number"
// @Success      200 {file} file
// @Router       /records/export [get]
func (h *Handler) ExportRecords(c *gin.Context) {
	recs, err := h.svc.List(c.Request.Context(), records.Filter{
		Grade:    c.Query("grade"),
		ClassNum: c.Query("class_num"),
	})
	if err != nil {
		h.fail(c, err, "Failed to fetch records")
		return
	}
	f, err := excel.WriteHistory(recs)
	if err != nil {
		h.fail(c, err, "Failed to build workbook")
		return
	}
	h.sendWorkbook(c, f, "보결-히스토리.xlsx")
}

func (h *Handler) sendWorkbook(c *gin.Context, f *excelize.File, name string) {
	defer f.Close()
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		h.fail(c, err, "Failed to write workbook")
		return
	}
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(name))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// UserProfileResponse is a safe version of User for API responses
type UserProfileResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GetMe godoc
// @Summary      Get current teacher profile
// @Tags         user
// @Produce      json
// @Success      200 {object} UserProfileResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /me [get]
func (h *Handler) GetMe(c *gin.Context) {
	email := c.GetString(auth.EmailKey)

	user, err := h.users.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		h.log.Info("profile lookup failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not found"})
		return
	}

	c.JSON(http.StatusOK, UserProfileResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	})
}
