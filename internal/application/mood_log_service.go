package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/moodtrack/moodjournal/internal/domain/entity"
	"github.com/moodtrack/moodjournal/internal/domain/repository"
	"github.com/moodtrack/moodjournal/pkg/apperr"
)

const (
	DefaultPage      = 1
	DefaultLimit     = 20
	DefaultStatsDays = 30
)

// MoodLogService enforces ownership scoping on every mood-log operation.
// The owner id always comes from the authenticated identity, never from
// the request payload.
type MoodLogService struct {
	Repo    repository.MoodLogRepository
	Logger  *logrus.Logger
	ES      *elasticsearch.Client // optional; indexing and search are skipped when nil
	ESIndex string
}

func NewMoodLogService(repo repository.MoodLogRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *MoodLogService {
	return &MoodLogService{Repo: repo, Logger: logger, ES: es, ESIndex: esIndex}
}

type CreateMoodLogInput struct {
	Mood            string     `json:"mood" binding:"required"`
	SpecificEmotion string     `json:"specificEmotion" binding:"omitempty,max=100"`
	Intensity       int        `json:"intensity" binding:"required,gte=1,lte=10"`
	EnergyLevel     int        `json:"energyLevel" binding:"required,gte=1,lte=10"`
	TagsPeople      TagList    `json:"tagsPeople"`
	TagsPlaces      TagList    `json:"tagsPlaces"`
	TagsEvents      TagList    `json:"tagsEvents"`
	SleepHours      *float64   `json:"sleepHours" binding:"required,gte=0,lte=24"`
	SleepQuality    int        `json:"sleepQuality" binding:"required,gte=1,lte=5"`
	Exercise        bool       `json:"exercise"`
	Notes           string     `json:"notes" binding:"omitempty,max=2000"`
	Reflections     string     `json:"reflections" binding:"omitempty,max=2000"`
	Date            *time.Time `json:"date"`
}

// UpdateMoodLogInput is a merge patch: only non-nil fields are applied.
type UpdateMoodLogInput struct {
	Mood            *string    `json:"mood" binding:"omitempty,min=1"`
	SpecificEmotion *string    `json:"specificEmotion" binding:"omitempty,max=100"`
	Intensity       *int       `json:"intensity" binding:"omitempty,gte=1,lte=10"`
	EnergyLevel     *int       `json:"energyLevel" binding:"omitempty,gte=1,lte=10"`
	TagsPeople      *TagList   `json:"tagsPeople"`
	TagsPlaces      *TagList   `json:"tagsPlaces"`
	TagsEvents      *TagList   `json:"tagsEvents"`
	SleepHours      *float64   `json:"sleepHours" binding:"omitempty,gte=0,lte=24"`
	SleepQuality    *int       `json:"sleepQuality" binding:"omitempty,gte=1,lte=5"`
	Exercise        *bool      `json:"exercise"`
	Notes           *string    `json:"notes" binding:"omitempty,max=2000"`
	Reflections     *string    `json:"reflections" binding:"omitempty,max=2000"`
	Date            *time.Time `json:"date"`
}

// ListParams come pre-parsed from the query string; the handler applies
// the page/limit defaults for absent or non-numeric values.
type ListParams struct {
	Page      int
	Limit     int
	StartDate *time.Time
	EndDate   *time.Time
	Mood      string
}

// MoodLogPage is one page of a listing plus pagination bookkeeping.
type MoodLogPage struct {
	Count int
	Total int
	Page  int
	Pages int
	Data  []*entity.MoodLog
}

// MoodStatsResult is the presentation shape of the stats aggregation.
// Averages are rounded to one decimal place and report 0 for an empty
// window; the breakdown is an empty map, never absent.
type MoodStatsResult struct {
	Period          string         `json:"period"`
	AvgIntensity    float64        `json:"avgIntensity"`
	AvgEnergyLevel  float64        `json:"avgEnergyLevel"`
	AvgSleepHours   float64        `json:"avgSleepHours"`
	AvgSleepQuality float64        `json:"avgSleepQuality"`
	TotalLogs       int            `json:"totalLogs"`
	MoodBreakdown   map[string]int `json:"moodBreakdown"`
}

// Create validates, defaults date and tags, and persists a new log owned
// by ownerID.
func (s *MoodLogService) Create(ctx context.Context, ownerID string, in CreateMoodLogInput) (*entity.MoodLog, error) {
	date := time.Now().UTC()
	if in.Date != nil {
		date = in.Date.UTC()
	}

	l := &entity.MoodLog{
		UserID:          ownerID,
		Mood:            in.Mood,
		SpecificEmotion: in.SpecificEmotion,
		Intensity:       in.Intensity,
		EnergyLevel:     in.EnergyLevel,
		TagsPeople:      orEmpty(in.TagsPeople),
		TagsPlaces:      orEmpty(in.TagsPlaces),
		TagsEvents:      orEmpty(in.TagsEvents),
		SleepHours:      *in.SleepHours,
		SleepQuality:    in.SleepQuality,
		Exercise:        in.Exercise,
		Notes:           in.Notes,
		Reflections:     in.Reflections,
		Date:            date,
	}
	if fields := validateRanges(l); len(fields) > 0 {
		return nil, apperr.Validation("invalid mood log", fields)
	}

	if err := s.Repo.Create(ctx, l); err != nil {
		return nil, apperr.Internal(err)
	}
	s.indexLog(ctx, l)
	return l, nil
}

// List returns one page of the owner's logs, newest first. An empty page
// is a valid outcome, not an error.
func (s *MoodLogService) List(ctx context.Context, ownerID string, p ListParams) (*MoodLogPage, error) {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}

	f := repository.MoodLogFilter{
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Mood:      p.Mood,
		Limit:     p.Limit,
		Offset:    (p.Page - 1) * p.Limit,
	}
	logs, total, err := s.Repo.List(ctx, ownerID, f)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &MoodLogPage{
		Count: len(logs),
		Total: total,
		Page:  p.Page,
		Pages: int(math.Ceil(float64(total) / float64(p.Limit))),
		Data:  logs,
	}, nil
}

// GetByID returns the log only when it exists and is owned by ownerID.
// "Someone else's log" and "no such log" are the same NotFound.
func (s *MoodLogService) GetByID(ctx context.Context, ownerID, logID string) (*entity.MoodLog, error) {
	l, err := s.Repo.GetByID(ctx, ownerID, logID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Mood log not found")
		}
		return nil, apperr.Internal(err)
	}
	return l, nil
}

// Update applies a merge patch: only supplied fields change, and the
// merged result is re-checked against the numeric ranges.
func (s *MoodLogService) Update(ctx context.Context, ownerID, logID string, in UpdateMoodLogInput) (*entity.MoodLog, error) {
	l, err := s.GetByID(ctx, ownerID, logID)
	if err != nil {
		return nil, err
	}

	applyPatch(l, in)
	if fields := validateRanges(l); len(fields) > 0 {
		return nil, apperr.Validation("invalid mood log", fields)
	}

	if err := s.Repo.Update(ctx, l); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Mood log not found")
		}
		return nil, apperr.Internal(err)
	}
	s.indexLog(ctx, l)
	return l, nil
}

// Delete removes the owner's log. Deleting a missing or foreign id is
// NotFound, never a silent no-op.
func (s *MoodLogService) Delete(ctx context.Context, ownerID, logID string) error {
	if err := s.Repo.Delete(ctx, ownerID, logID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Mood log not found")
		}
		return apperr.Internal(err)
	}
	s.removeFromIndex(ctx, logID)
	return nil
}

// Stats aggregates the trailing window. Windows are UTC-based.
func (s *MoodLogService) Stats(ctx context.Context, ownerID string, days int) (*MoodStatsResult, error) {
	if days < 1 {
		days = DefaultStatsDays
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	raw, err := s.Repo.Stats(ctx, ownerID, since)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	breakdown := raw.MoodBreakdown
	if breakdown == nil {
		breakdown = map[string]int{}
	}
	return &MoodStatsResult{
		Period:          fmt.Sprintf("Last %d days", days),
		AvgIntensity:    round1(raw.AvgIntensity),
		AvgEnergyLevel:  round1(raw.AvgEnergyLevel),
		AvgSleepHours:   round1(raw.AvgSleepHours),
		AvgSleepQuality: round1(raw.AvgSleepQuality),
		TotalLogs:       raw.TotalLogs,
		MoodBreakdown:   breakdown,
	}, nil
}

// Search queries the optional Elasticsearch index over the owner's logs.
// Returns an empty slice when search is not configured.
func (s *MoodLogService) Search(ctx context.Context, ownerID, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"mood^2", "specificEmotion", "notes", "reflections"},
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"userId": ownerID},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, apperr.Internal(err)
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *MoodLogService) indexLog(ctx context.Context, l *entity.MoodLog) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	b, _ := json.Marshal(l)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: l.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("log_id", l.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("log_id", l.ID).Warn("es index response error")
	}
}

func (s *MoodLogService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("log_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

func applyPatch(l *entity.MoodLog, in UpdateMoodLogInput) {
	if in.Mood != nil {
		l.Mood = *in.Mood
	}
	if in.SpecificEmotion != nil {
		l.SpecificEmotion = *in.SpecificEmotion
	}
	if in.Intensity != nil {
		l.Intensity = *in.Intensity
	}
	if in.EnergyLevel != nil {
		l.EnergyLevel = *in.EnergyLevel
	}
	if in.TagsPeople != nil {
		l.TagsPeople = orEmpty(*in.TagsPeople)
	}
	if in.TagsPlaces != nil {
		l.TagsPlaces = orEmpty(*in.TagsPlaces)
	}
	if in.TagsEvents != nil {
		l.TagsEvents = orEmpty(*in.TagsEvents)
	}
	if in.SleepHours != nil {
		l.SleepHours = *in.SleepHours
	}
	if in.SleepQuality != nil {
		l.SleepQuality = *in.SleepQuality
	}
	if in.Exercise != nil {
		l.Exercise = *in.Exercise
	}
	if in.Notes != nil {
		l.Notes = *in.Notes
	}
	if in.Reflections != nil {
		l.Reflections = *in.Reflections
	}
	if in.Date != nil {
		l.Date = in.Date.UTC()
	}
}

// validateRanges re-checks invariants on a merged record before it is
// persisted. The binding layer already validated the incoming fields;
// this guards the merge result itself.
func validateRanges(l *entity.MoodLog) []apperr.FieldError {
	var fields []apperr.FieldError
	if strings.TrimSpace(l.Mood) == "" {
		fields = append(fields, apperr.FieldError{Field: "mood", Message: "is required"})
	}
	if l.Intensity < 1 || l.Intensity > 10 {
		fields = append(fields, apperr.FieldError{Field: "intensity", Message: "must be between 1 and 10"})
	}
	if l.EnergyLevel < 1 || l.EnergyLevel > 10 {
		fields = append(fields, apperr.FieldError{Field: "energyLevel", Message: "must be between 1 and 10"})
	}
	if l.SleepHours < 0 || l.SleepHours > 24 {
		fields = append(fields, apperr.FieldError{Field: "sleepHours", Message: "must be between 0 and 24"})
	}
	if l.SleepQuality < 1 || l.SleepQuality > 5 {
		fields = append(fields, apperr.FieldError{Field: "sleepQuality", Message: "must be between 1 and 5"})
	}
	if len(l.Notes) > 2000 {
		fields = append(fields, apperr.FieldError{Field: "notes", Message: "must be at most 2000 characters long"})
	}
	if len(l.Reflections) > 2000 {
		fields = append(fields, apperr.FieldError{Field: "reflections", Message: "must be at most 2000 characters long"})
	}
	return fields
}

func orEmpty(t TagList) []string {
	if t == nil {
		return []string{}
	}
	return t
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
