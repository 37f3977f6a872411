package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moodtrack/moodjournal/internal/domain/entity"
	"github.com/moodtrack/moodjournal/internal/domain/repository"
)

type MoodLogRepository struct {
	pool *pgxpool.Pool
}

func NewMoodLogRepository(pool *pgxpool.Pool) *MoodLogRepository {
	return &MoodLogRepository{pool: pool}
}

const moodLogColumns = `id, user_id, mood, specific_emotion, intensity, energy_level,
	tags_people, tags_places, tags_events, sleep_hours, sleep_quality, exercise,
	notes, reflections, date, created_at, updated_at`

func (r *MoodLogRepository) Create(ctx context.Context, l *entity.MoodLog) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO mood_logs (
			user_id, mood, specific_emotion, intensity, energy_level,
			tags_people, tags_places, tags_events, sleep_hours, sleep_quality,
			exercise, notes, reflections, date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`, l.UserID, l.Mood, l.SpecificEmotion, l.Intensity, l.EnergyLevel,
		l.TagsPeople, l.TagsPlaces, l.TagsEvents, l.SleepHours, l.SleepQuality,
		l.Exercise, l.Notes, l.Reflections, l.Date)

	return row.Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

// List applies the owner scope plus optional filters, newest first.
func (r *MoodLogRepository) List(ctx context.Context, userID string, f repository.MoodLogFilter) ([]*entity.MoodLog, int, error) {
	where := "WHERE user_id = $1"
	args := []any{userID}

	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		where += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		where += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	if f.Mood != "" {
		args = append(args, f.Mood)
		where += fmt.Sprintf(" AND mood = $%d", len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM mood_logs "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(
		"SELECT %s FROM mood_logs %s ORDER BY date DESC LIMIT $%d OFFSET $%d",
		moodLogColumns, where, len(args)-1, len(args),
	)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs := make([]*entity.MoodLog, 0, f.Limit)
	for rows.Next() {
		l, err := scanMoodLog(rows)
		if err != nil {
			return nil, 0, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *MoodLogRepository) GetByID(ctx context.Context, userID, id string) (*entity.MoodLog, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+moodLogColumns+`
		FROM mood_logs
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	l, err := scanMoodLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r *MoodLogRepository) Update(ctx context.Context, l *entity.MoodLog) error {
	l.UpdatedAt = time.Now().UTC()

	res, err := r.pool.Exec(ctx, `
		UPDATE mood_logs
		SET mood = $1, specific_emotion = $2, intensity = $3, energy_level = $4,
			tags_people = $5, tags_places = $6, tags_events = $7,
			sleep_hours = $8, sleep_quality = $9, exercise = $10,
			notes = $11, reflections = $12, date = $13, updated_at = $14
		WHERE id = $15 AND user_id = $16
	`, l.Mood, l.SpecificEmotion, l.Intensity, l.EnergyLevel,
		l.TagsPeople, l.TagsPlaces, l.TagsEvents,
		l.SleepHours, l.SleepQuality, l.Exercise,
		l.Notes, l.Reflections, l.Date, l.UpdatedAt, l.ID, l.UserID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MoodLogRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM mood_logs WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Stats aggregates database-side: one summary query for averages and
// count, one GROUP BY for the per-mood breakdown.
func (r *MoodLogRepository) Stats(ctx context.Context, userID string, since time.Time) (*repository.MoodStats, error) {
	s := &repository.MoodStats{MoodBreakdown: map[string]int{}}

	row := r.pool.QueryRow(ctx, `
		SELECT
			COALESCE(AVG(intensity), 0),
			COALESCE(AVG(energy_level), 0),
			COALESCE(AVG(sleep_hours), 0),
			COALESCE(AVG(sleep_quality), 0),
			COUNT(*)
		FROM mood_logs
		WHERE user_id = $1 AND date >= $2
	`, userID, since)
	if err := row.Scan(&s.AvgIntensity, &s.AvgEnergyLevel, &s.AvgSleepHours,
		&s.AvgSleepQuality, &s.TotalLogs); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT mood, COUNT(*)
		FROM mood_logs
		WHERE user_id = $1 AND date >= $2
		GROUP BY mood
	`, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var mood string
		var count int
		if err := rows.Scan(&mood, &count); err != nil {
			return nil, err
		}
		s.MoodBreakdown[mood] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func scanMoodLog(row pgx.Row) (*entity.MoodLog, error) {
	l := &entity.MoodLog{}
	err := row.Scan(&l.ID, &l.UserID, &l.Mood, &l.SpecificEmotion, &l.Intensity,
		&l.EnergyLevel, &l.TagsPeople, &l.TagsPlaces, &l.TagsEvents,
		&l.SleepHours, &l.SleepQuality, &l.Exercise, &l.Notes, &l.Reflections,
		&l.Date, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

var _ repository.MoodLogRepository = (*MoodLogRepository)(nil)
