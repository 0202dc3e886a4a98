package models

import "time"

// CalendarEvent is a busy interval on a user's calendar. The planner only
// reads these; they are seeded once if the user has none.
type CalendarEvent struct {
	UserID string    `json:"user_id"`
	Title  string    `json:"title"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	AllDay bool      `json:"all_day"`
}
