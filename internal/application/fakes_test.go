package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/moodtrack/moodjournal/internal/domain/entity"
	"github.com/moodtrack/moodjournal/internal/domain/repository"
)

// In-memory repository fakes. They honor the same contracts as the
// postgres implementations: sentinel errors, ownership scoping, and
// date-descending listings.

type fakeUserRepo struct {
	users map[string]*entity.User // by id
	next  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.next++
	u.ID = fmt.Sprintf("user-%d", r.next)
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeMoodLogRepo struct {
	logs map[string]*entity.MoodLog // by id
	next int
}

func newFakeMoodLogRepo() *fakeMoodLogRepo {
	return &fakeMoodLogRepo{logs: map[string]*entity.MoodLog{}}
}

func (r *fakeMoodLogRepo) Create(_ context.Context, l *entity.MoodLog) error {
	r.next++
	l.ID = fmt.Sprintf("log-%d", r.next)
	l.CreatedAt = time.Now().UTC()
	l.UpdatedAt = l.CreatedAt
	cp := *l
	r.logs[l.ID] = &cp
	return nil
}

func (r *fakeMoodLogRepo) matching(userID string, f repository.MoodLogFilter) []*entity.MoodLog {
	var out []*entity.MoodLog
	for _, l := range r.logs {
		if l.UserID != userID {
			continue
		}
		if f.StartDate != nil && l.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && l.Date.After(*f.EndDate) {
			continue
		}
		if f.Mood != "" && l.Mood != f.Mood {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (r *fakeMoodLogRepo) List(_ context.Context, userID string, f repository.MoodLogFilter) ([]*entity.MoodLog, int, error) {
	all := r.matching(userID, f)
	total := len(all)
	if f.Offset >= len(all) {
		return []*entity.MoodLog{}, total, nil
	}
	all = all[f.Offset:]
	if f.Limit > 0 && f.Limit < len(all) {
		all = all[:f.Limit]
	}
	return all, total, nil
}

func (r *fakeMoodLogRepo) GetByID(_ context.Context, userID, id string) (*entity.MoodLog, error) {
	l, ok := r.logs[id]
	if !ok || l.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeMoodLogRepo) Update(_ context.Context, l *entity.MoodLog) error {
	existing, ok := r.logs[l.ID]
	if !ok || existing.UserID != l.UserID {
		return repository.ErrNotFound
	}
	l.UpdatedAt = time.Now().UTC()
	cp := *l
	r.logs[l.ID] = &cp
	return nil
}

func (r *fakeMoodLogRepo) Delete(_ context.Context, userID, id string) error {
	l, ok := r.logs[id]
	if !ok || l.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.logs, id)
	return nil
}

func (r *fakeMoodLogRepo) Stats(_ context.Context, userID string, since time.Time) (*repository.MoodStats, error) {
	stats := &repository.MoodStats{MoodBreakdown: map[string]int{}}
	var sumI, sumE, sumH, sumQ float64
	for _, l := range r.logs {
		if l.UserID != userID || l.Date.Before(since) {
			continue
		}
		stats.TotalLogs++
		stats.MoodBreakdown[l.Mood]++
		sumI += float64(l.Intensity)
		sumE += float64(l.EnergyLevel)
		sumH += l.SleepHours
		sumQ += float64(l.SleepQuality)
	}
	if stats.TotalLogs > 0 {
		n := float64(stats.TotalLogs)
		stats.AvgIntensity = sumI / n
		stats.AvgEnergyLevel = sumE / n
		stats.AvgSleepHours = sumH / n
		stats.AvgSleepQuality = sumQ / n
	}
	return stats, nil
}
