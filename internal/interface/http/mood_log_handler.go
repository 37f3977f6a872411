package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/moodtrack/moodjournal/internal/application"
	"github.com/moodtrack/moodjournal/internal/interface/middleware"
	"github.com/moodtrack/moodjournal/pkg/apperr"
	"github.com/moodtrack/moodjournal/pkg/response"
	"github.com/moodtrack/moodjournal/pkg/validation"
)

type MoodLogHandler struct {
	Service *application.MoodLogService
	Logger  *logrus.Logger
}

func NewMoodLogHandler(service *application.MoodLogService, logger *logrus.Logger) *MoodLogHandler {
	return &MoodLogHandler{Service: service, Logger: logger}
}

// intQuery parses a positive integer query param, falling back to def for
// absent or malformed values.
func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// dateQuery accepts RFC3339 timestamps and plain YYYY-MM-DD dates.
func dateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, apperr.Validation("invalid query", []apperr.FieldError{
			{Field: name, Message: "must be an RFC3339 timestamp or YYYY-MM-DD date"},
		})
	}
	t = t.UTC()
	return &t, nil
}

// Create POST /api/v1/mood
func (h *MoodLogHandler) Create(c *gin.Context) {
	var in application.CreateMoodLogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(apperr.Validation("invalid payload", validation.Details(err)))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	l, err := h.Service.Create(c.Request.Context(), uid, in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusCreated, "Mood log created", l)
}

// List GET /api/v1/mood
func (h *MoodLogHandler) List(c *gin.Context) {
	start, err := dateQuery(c, "startDate")
	if err != nil {
		_ = c.Error(err)
		return
	}
	end, err := dateQuery(c, "endDate")
	if err != nil {
		_ = c.Error(err)
		return
	}

	p := application.ListParams{
		Page:      intQuery(c, "page", application.DefaultPage),
		Limit:     intQuery(c, "limit", application.DefaultLimit),
		StartDate: start,
		EndDate:   end,
		Mood:      c.Query("mood"),
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	page, err := h.Service.List(c.Request.Context(), uid, p)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Page(c, http.StatusOK, page.Data, page.Count, page.Total, page.Page, page.Pages)
}

// Get GET /api/v1/mood/:id
func (h *MoodLogHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	l, err := h.Service.GetByID(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusOK, "", l)
}

// Update PUT /api/v1/mood/:id
func (h *MoodLogHandler) Update(c *gin.Context) {
	var in application.UpdateMoodLogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(apperr.Validation("invalid payload", validation.Details(err)))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	l, err := h.Service.Update(c.Request.Context(), uid, c.Param("id"), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusOK, "Mood log updated", l)
}

// Delete DELETE /api/v1/mood/:id
func (h *MoodLogHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Service.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusOK, "Mood log deleted", nil)
}

// Stats GET /api/v1/mood/stats?days=30
func (h *MoodLogHandler) Stats(c *gin.Context) {
	days := intQuery(c, "days", application.DefaultStatsDays)

	uid := c.GetString(middleware.CtxUserIDKey)
	stats, err := h.Service.Stats(c.Request.Context(), uid, days)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusOK, "", stats)
}

// Search GET /api/v1/mood/search?q=...&size=10
func (h *MoodLogHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		_ = c.Error(apperr.Validation("invalid query", []apperr.FieldError{
			{Field: "q", Message: "is required"},
		}))
		return
	}
	size := intQuery(c, "size", 10)

	uid := c.GetString(middleware.CtxUserIDKey)
	hits, err := h.Service.Search(c.Request.Context(), uid, q, size)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusOK, "", hits)
}
