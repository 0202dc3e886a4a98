package calendar_test

import (
	"context"
	"testing"
	"time"

	"voyago/models"
	"voyago/services/calendar"
	"voyago/storage"

	"github.com/stretchr/testify/require"
)

var clock = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func newService(repo storage.Repository) *calendar.DefaultService {
	return &calendar.DefaultService{Repo: repo, Now: func() time.Time { return clock }}
}

func allDayEvent(userID string, day models.Date) models.CalendarEvent {
	return models.CalendarEvent{
		UserID: userID,
		Title:  "Work",
		Start:  day.Time,
		End:    day.Time.Add(24*time.Hour - time.Second),
		AllDay: true,
	}
}

// TestFindFreeDateRangesEmptyCalendar checks a user with no events gets one
// candidate range covering the entire look-ahead window.
func TestFindFreeDateRangesEmptyCalendar(t *testing.T) {
	repo := storage.NewMemoryRepository()
	svc := newService(repo)

	ranges, err := svc.FindFreeDateRanges(context.Background(), "u1", 5, 60)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	require.Equal(t, "2025-03-01", ranges[0].Start.String())
	require.Equal(t, "2025-04-29", ranges[0].End.String())
	require.Equal(t, 59, ranges[0].Days())
}

// TestFindFreeDateRangesBusyDaySplitsWindow checks one busy day splits the
// window into two candidates, neither containing the busy day.
func TestFindFreeDateRangesBusyDaySplitsWindow(t *testing.T) {
	repo := storage.NewMemoryRepository()
	svc := newService(repo)
	ctx := context.Background()

	busy := models.NewDate(2025, time.March, 11)
	require.NoError(t, repo.SetCalendarEvents(ctx, "u1", []models.CalendarEvent{allDayEvent("u1", busy)}))

	ranges, err := svc.FindFreeDateRanges(ctx, "u1", 5, 60)
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	require.Equal(t, "2025-03-01", ranges[0].Start.String())
	require.Equal(t, "2025-03-10", ranges[0].End.String())
	require.Equal(t, "2025-03-12", ranges[1].Start.String())
	require.Equal(t, "2025-04-29", ranges[1].End.String())
}

// TestFindFreeDateRangesDiscardsShortRuns checks a free run shorter than the
// trip duration is never emitted.
func TestFindFreeDateRangesDiscardsShortRuns(t *testing.T) {
	repo := storage.NewMemoryRepository()
	svc := newService(repo)
	ctx := context.Background()

	// Busy on day 3 of a 6 day window leaves a 2 day run and a 3 day run.
	busy := models.NewDate(2025, time.March, 3)
	require.NoError(t, repo.SetCalendarEvents(ctx, "u1", []models.CalendarEvent{allDayEvent("u1", busy)}))

	ranges, err := svc.FindFreeDateRanges(ctx, "u1", 3, 6)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	require.Equal(t, "2025-03-04", ranges[0].Start.String())
	require.Equal(t, "2025-03-06", ranges[0].End.String())
}

// TestFindFreeDateRangesMultiDayEvent checks every day touched by a spanning
// event is excluded.
func TestFindFreeDateRangesMultiDayEvent(t *testing.T) {
	repo := storage.NewMemoryRepository()
	svc := newService(repo)
	ctx := context.Background()

	start := models.NewDate(2025, time.March, 5)
	require.NoError(t, repo.SetCalendarEvents(ctx, "u1", []models.CalendarEvent{
		{
			UserID: "u1",
			Title:  "Conference",
			Start:  start.Time,
			End:    start.AddDays(2).Time.Add(17 * time.Hour),
		},
	}))

	ranges, err := svc.FindFreeDateRanges(ctx, "u1", 2, 10)
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	require.Equal(t, "2025-03-01", ranges[0].Start.String())
	require.Equal(t, "2025-03-04", ranges[0].End.String())
	require.Equal(t, "2025-03-08", ranges[1].Start.String())
	require.Equal(t, "2025-03-10", ranges[1].End.String())
}

// TestFindFreeDateRangesDefaultWindow checks a nonpositive window falls back
// to the sixty day default.
func TestFindFreeDateRangesDefaultWindow(t *testing.T) {
	repo := storage.NewMemoryRepository()
	svc := newService(repo)

	ranges, err := svc.FindFreeDateRanges(context.Background(), "u1", 5, 0)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	require.Equal(t, calendar.DefaultWindowDays-1, ranges[0].Days())
}

// TestSeedDemoCalendarOnlyOnce checks the demo busy day is created for a new
// user and never duplicated or layered over existing events.
func TestSeedDemoCalendarOnlyOnce(t *testing.T) {
	repo := storage.NewMemoryRepository()
	svc := newService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SeedDemoCalendar(ctx, "u1"))
	events, err := repo.CalendarEvents(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "2025-03-04", models.DateOf(events[0].Start).String())
	require.True(t, events[0].AllDay)

	require.NoError(t, svc.SeedDemoCalendar(ctx, "u1"))
	events, err = repo.CalendarEvents(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, events, 1)
}
