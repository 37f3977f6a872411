package repository

import (
	"context"
	"time"

	"github.com/moodtrack/moodjournal/internal/domain/entity"
)

// MoodLogFilter narrows a listing. Date bounds are inclusive; Mood is an
// exact-match label. Limit/Offset page the result.
type MoodLogFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Mood      string
	Limit     int
	Offset    int
}

// MoodStats is the raw aggregation result over a user's window.
// Averages are unrounded; presentation rounding happens in the service.
type MoodStats struct {
	AvgIntensity    float64
	AvgEnergyLevel  float64
	AvgSleepHours   float64
	AvgSleepQuality float64
	TotalLogs       int
	MoodBreakdown   map[string]int
}

// MoodLogRepository defines the persistence operations for mood logs.
// Every read and write is scoped by the owning user's id; there is no
// unscoped access path.
type MoodLogRepository interface {
	Create(ctx context.Context, log *entity.MoodLog) error
	// List returns one page sorted by date descending plus the total
	// match count.
	List(ctx context.Context, userID string, f MoodLogFilter) ([]*entity.MoodLog, int, error)
	// GetByID returns ErrNotFound when the log does not exist or belongs
	// to a different user; the two cases are indistinguishable.
	GetByID(ctx context.Context, userID, id string) (*entity.MoodLog, error)
	Update(ctx context.Context, log *entity.MoodLog) error
	Delete(ctx context.Context, userID, id string) error
	// Stats aggregates logs with date >= since, computed database-side.
	Stats(ctx context.Context, userID string, since time.Time) (*MoodStats, error)
}
