package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodtrack/moodjournal/pkg/apperr"
)

func newMoodService() (*MoodLogService, *fakeMoodLogRepo) {
	repo := newFakeMoodLogRepo()
	return NewMoodLogService(repo, nil, nil, ""), repo
}

func floatp(v float64) *float64 { return &v }
func intp(v int) *int           { return &v }
func strp(v string) *string     { return &v }

func validCreate() CreateMoodLogInput {
	return CreateMoodLogInput{
		Mood:         "happy",
		Intensity:    7,
		EnergyLevel:  6,
		SleepHours:   floatp(7.5),
		SleepQuality: 4,
	}
}

func TestCreateDefaultsDateAndTags(t *testing.T) {
	svc, _ := newMoodService()

	before := time.Now().UTC()
	l, err := svc.Create(context.Background(), "owner-1", validCreate())
	require.NoError(t, err)

	assert.Equal(t, "owner-1", l.UserID)
	assert.False(t, l.Date.Before(before))
	assert.NotNil(t, l.TagsPeople)
	assert.Empty(t, l.TagsPeople)
	assert.NotNil(t, l.TagsPlaces)
	assert.NotNil(t, l.TagsEvents)
}

func TestCreateHonorsExplicitDate(t *testing.T) {
	svc, _ := newMoodService()

	date := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	in := validCreate()
	in.Date = &date

	l, err := svc.Create(context.Background(), "owner-1", in)
	require.NoError(t, err)
	assert.True(t, l.Date.Equal(date))
}

func TestCreateRejectsOutOfRange(t *testing.T) {
	svc, _ := newMoodService()

	in := validCreate()
	in.Intensity = 11
	in.SleepQuality = 0

	_, err := svc.Create(context.Background(), "owner-1", in)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeBadRequest, ae.Code)

	fields := make([]string, 0, len(ae.Fields))
	for _, f := range ae.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "intensity")
	assert.Contains(t, fields, "sleepQuality")
}

func TestListPagination(t *testing.T) {
	svc, _ := newMoodService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		in := validCreate()
		d := time.Date(2026, 1, 1+i, 12, 0, 0, 0, time.UTC)
		in.Date = &d
		_, err := svc.Create(ctx, "owner-1", in)
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, "owner-1", ListParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Count)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Pages)

	// Newest first
	assert.True(t, page.Data[0].Date.After(page.Data[1].Date))

	page2, err := svc.List(ctx, "owner-1", ListParams{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, page2.Count)
	assert.Equal(t, 2, page2.Page)

	// Beyond the last page is empty, not an error
	page3, err := svc.List(ctx, "owner-1", ListParams{Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 0, page3.Count)
	assert.NotNil(t, page3.Data)
}

func TestListDefaults(t *testing.T) {
	svc, _ := newMoodService()

	page, err := svc.List(context.Background(), "owner-1", ListParams{})
	require.NoError(t, err)
	assert.Equal(t, DefaultPage, page.Page)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.Pages)
}

func TestListFilters(t *testing.T) {
	svc, _ := newMoodService()
	ctx := context.Background()

	moods := []string{"happy", "sad", "happy"}
	for i, m := range moods {
		in := validCreate()
		in.Mood = m
		d := time.Date(2026, 1, 1+i, 12, 0, 0, 0, time.UTC)
		in.Date = &d
		_, err := svc.Create(ctx, "owner-1", in)
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, "owner-1", ListParams{Mood: "happy"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	page, err = svc.List(ctx, "owner-1", ListParams{StartDate: &start})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestOwnershipIsOpaque(t *testing.T) {
	svc, _ := newMoodService()
	ctx := context.Background()

	l, err := svc.Create(ctx, "owner-1", validCreate())
	require.NoError(t, err)

	// Foreign and missing ids are indistinguishable
	for _, id := range []string{l.ID, "no-such-id"} {
		_, err := svc.GetByID(ctx, "owner-2", id)
		var ae *apperr.Error
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, apperr.CodeNotFound, ae.Code)
		assert.Equal(t, "Mood log not found", ae.Message)
	}

	_, err = svc.Update(ctx, "owner-2", l.ID, UpdateMoodLogInput{Mood: strp("sad")})
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)

	err = svc.Delete(ctx, "owner-2", l.ID)
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)

	// The owner still sees it untouched
	got, err := svc.GetByID(ctx, "owner-1", l.ID)
	require.NoError(t, err)
	assert.Equal(t, "happy", got.Mood)
}

func TestUpdateMergePatch(t *testing.T) {
	svc, _ := newMoodService()
	ctx := context.Background()

	in := validCreate()
	in.Notes = "original notes"
	l, err := svc.Create(ctx, "owner-1", in)
	require.NoError(t, err)

	got, err := svc.Update(ctx, "owner-1", l.ID, UpdateMoodLogInput{
		Mood:      strp("sad"),
		Intensity: intp(3),
	})
	require.NoError(t, err)

	assert.Equal(t, "sad", got.Mood)
	assert.Equal(t, 3, got.Intensity)
	// Untouched fields survive
	assert.Equal(t, "original notes", got.Notes)
	assert.Equal(t, 6, got.EnergyLevel)
	assert.InDelta(t, 7.5, got.SleepHours, 0.001)
}

func TestUpdateRejectsInvalidMergeResult(t *testing.T) {
	svc, _ := newMoodService()
	ctx := context.Background()

	l, err := svc.Create(ctx, "owner-1", validCreate())
	require.NoError(t, err)

	_, err = svc.Update(ctx, "owner-1", l.ID, UpdateMoodLogInput{SleepHours: floatp(30)})
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeBadRequest, ae.Code)

	// Invalid patch left the stored record unchanged
	got, err := svc.GetByID(ctx, "owner-1", l.ID)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, got.SleepHours, 0.001)
}

func TestDeleteThenGet(t *testing.T) {
	svc, _ := newMoodService()
	ctx := context.Background()

	l, err := svc.Create(ctx, "owner-1", validCreate())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "owner-1", l.ID))

	_, err = svc.GetByID(ctx, "owner-1", l.ID)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
}

func TestStats(t *testing.T) {
	svc, _ := newMoodService()
	ctx := context.Background()

	type row struct {
		mood      string
		intensity int
		energy    int
		sleep     float64
		quality   int
	}
	rows := []row{
		{"happy", 8, 7, 7.5, 4},
		{"happy", 6, 5, 8, 4},
		{"sad", 4, 3, 5.5, 2},
	}
	for i, r := range rows {
		in := CreateMoodLogInput{
			Mood: r.mood, Intensity: r.intensity, EnergyLevel: r.energy,
			SleepHours: floatp(r.sleep), SleepQuality: r.quality,
		}
		d := time.Now().UTC().AddDate(0, 0, -(i + 1))
		in.Date = &d
		_, err := svc.Create(ctx, "owner-1", in)
		require.NoError(t, err)
	}

	stats, err := svc.Stats(ctx, "owner-1", 30)
	require.NoError(t, err)

	assert.Equal(t, "Last 30 days", stats.Period)
	assert.Equal(t, 3, stats.TotalLogs)
	assert.InDelta(t, 6.0, stats.AvgIntensity, 0.001)    // (8+6+4)/3
	assert.InDelta(t, 5.0, stats.AvgEnergyLevel, 0.001)  // (7+5+3)/3
	assert.InDelta(t, 7.0, stats.AvgSleepHours, 0.001)   // (7.5+8+5.5)/3
	assert.InDelta(t, 3.3, stats.AvgSleepQuality, 0.001) // round1(10/3)
	assert.Equal(t, map[string]int{"happy": 2, "sad": 1}, stats.MoodBreakdown)
}

func TestStatsEmptyWindow(t *testing.T) {
	svc, _ := newMoodService()

	stats, err := svc.Stats(context.Background(), "owner-1", 7)
	require.NoError(t, err)

	assert.Equal(t, "Last 7 days", stats.Period)
	assert.Equal(t, 0, stats.TotalLogs)
	assert.Zero(t, stats.AvgIntensity)
	assert.NotNil(t, stats.MoodBreakdown)
	assert.Empty(t, stats.MoodBreakdown)
}

func TestStatsWindowExcludesOldLogs(t *testing.T) {
	svc, _ := newMoodService()
	ctx := context.Background()

	recent := validCreate()
	d1 := time.Now().UTC().AddDate(0, 0, -2)
	recent.Date = &d1
	_, err := svc.Create(ctx, "owner-1", recent)
	require.NoError(t, err)

	old := validCreate()
	old.Mood = "sad"
	d2 := time.Now().UTC().AddDate(0, 0, -40)
	old.Date = &d2
	_, err = svc.Create(ctx, "owner-1", old)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, "owner-1", 7)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalLogs)
	assert.Equal(t, map[string]int{"happy": 1}, stats.MoodBreakdown)
}

func TestStatsDefaultDays(t *testing.T) {
	svc, _ := newMoodService()

	stats, err := svc.Stats(context.Background(), "owner-1", 0)
	require.NoError(t, err)
	assert.Equal(t, "Last 30 days", stats.Period)
}

func TestSearchWithoutESReturnsEmpty(t *testing.T) {
	svc, _ := newMoodService()

	hits, err := svc.Search(context.Background(), "owner-1", "walk", 10)
	require.NoError(t, err)
	assert.NotNil(t, hits)
	assert.Empty(t, hits)
}
