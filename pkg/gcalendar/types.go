package gcalendar

import "time"

// CreateEventRequest is the input for mirroring one work block.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Moscow"
}

// Event is the subset of a Google Calendar event the planner keeps.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
}
