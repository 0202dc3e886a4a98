package calendar

import (
	"context"
	"time"

	"voyago/models"
	"voyago/storage"
)

// DefaultWindowDays bounds the free-interval look-ahead when the caller does
// not supply a window.
const DefaultWindowDays = 60

// Service finds candidate date ranges in a user's calendar.
type Service interface {
	SeedDemoCalendar(ctx context.Context, userID string) error
	FindFreeDateRanges(ctx context.Context, userID string, tripDurationDays, windowDays int) ([]models.DateRange, error)
}

// DefaultService scans the user's busy calendar for free runs. Now is
// injectable so tests can anchor the window; it defaults to time.Now.
type DefaultService struct {
	Repo storage.Repository
	Now  func() time.Time
}

func (s *DefaultService) today() models.Date {
	if s.Now != nil {
		return models.DateOf(s.Now())
	}
	return models.Today()
}

// SeedDemoCalendar pre-populates one busy day for first-time users so the
// planner has something to route around. No-op if events already exist.
func (s *DefaultService) SeedDemoCalendar(ctx context.Context, userID string) error {
	events, err := s.Repo.CalendarEvents(ctx, userID)
	if err != nil {
		return err
	}
	if len(events) > 0 {
		return nil
	}
	busy := s.today().AddDays(3)
	return s.Repo.SetCalendarEvents(ctx, userID, []models.CalendarEvent{
		{
			UserID: userID,
			Title:  "Work",
			Start:  busy.Time,
			End:    busy.Time.Add(24*time.Hour - time.Second),
			AllDay: true,
		},
	})
}

// FindFreeDateRanges marks every day touched by any event as busy, then scans
// the look-ahead window day by day. A maximal run of consecutive free days at
// least tripDurationDays long is emitted as a candidate range, in discovery
// order. A qualifying run that reaches the final day of the window is closed
// out at the window edge rather than truncated or extended.
func (s *DefaultService) FindFreeDateRanges(ctx context.Context, userID string, tripDurationDays, windowDays int) ([]models.DateRange, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	events, err := s.Repo.CalendarEvents(ctx, userID)
	if err != nil {
		return nil, err
	}

	busy := make(map[string]bool)
	for _, e := range events {
		for d := models.DateOf(e.Start); !d.After(models.DateOf(e.End).Time); d = d.AddDays(1) {
			busy[d.String()] = true
		}
	}

	today := s.today()
	var ranges []models.DateRange
	var runStart *models.Date

	for offset := 0; offset < windowDays; offset++ {
		d := today.AddDays(offset)
		if busy[d.String()] {
			if runStart != nil {
				if runStart.DaysUntil(d) >= tripDurationDays {
					ranges = append(ranges, models.DateRange{Start: *runStart, End: d.AddDays(-1)})
				}
				runStart = nil
			}
			continue
		}
		if runStart == nil {
			start := d
			runStart = &start
		}
	}

	// Close out a run that extends to the final day of the window.
	if runStart != nil {
		edge := today.AddDays(windowDays)
		if runStart.DaysUntil(edge) >= tripDurationDays {
			ranges = append(ranges, models.DateRange{Start: *runStart, End: edge.AddDays(-1)})
		}
	}

	return ranges, nil
}
