package usecase

import (
	"time"

	"routine-planner/internal/observability"
	"routine-planner/internal/planner"
	"routine-planner/internal/planner/repository"
	"routine-planner/pkg/gcalendar"
	pkgLog "routine-planner/pkg/log"
	"routine-planner/pkg/timegrid"
)

// LectureBlock is one fixed weekly lecture entry of the calendar template.
type LectureBlock struct {
	Weekday time.Weekday
	Times   []string // "HH:MM" keys
	Label   string
}

// Config holds the engine tunables.
type Config struct {
	HorizonDays       int
	MaxBlocksPerDay   int
	SleepStart        string
	SleepEnd          string
	Lectures          []LectureBlock
	ShortfallPolicy   ShortfallPolicy
	EvictionPlacement Placement
	SessionTTL        time.Duration
	CalendarID        string
	Timezone          string

	// Clock overrides the engine's notion of now; nil means time.Now.
	Clock func() time.Time
}

// DefaultLectures is the fixed weekly lecture table of the reference
// calendar template.
func DefaultLectures() []LectureBlock {
	return []LectureBlock{
		{Weekday: time.Monday, Times: []string{"09:00", "09:30", "10:00"}, Label: "ML lecture"},
		{Weekday: time.Tuesday, Times: []string{"12:30", "13:00", "13:30", "14:00"}, Label: "ML lab"},
		{Weekday: time.Thursday, Times: []string{"12:30", "13:00", "13:30", "14:00"}, Label: "Databases lab"},
		{Weekday: time.Friday, Times: []string{"17:30", "18:00", "18:30", "19:00"}, Label: "Networks lab"},
	}
}

type implUseCase struct {
	l        pkgLog.Logger
	slots    repository.SlotRepository
	tasks    repository.TaskRepository
	calendar *gcalendar.Client // optional mirror, may be nil
	metrics  *observability.Metrics
	cfg      Config
	loc      *time.Location
	sessions *sessionStore
	locks    *userLocks
}

// New creates the slot allocation engine. calendar and metrics are optional.
func New(
	l pkgLog.Logger,
	slots repository.SlotRepository,
	tasks repository.TaskRepository,
	calendar *gcalendar.Client,
	metrics *observability.Metrics,
	cfg Config,
) planner.UseCase {
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = 30
	}
	if cfg.MaxBlocksPerDay <= 0 {
		cfg.MaxBlocksPerDay = 4
	}
	if cfg.SleepStart == "" {
		cfg.SleepStart = "01:00"
	}
	if cfg.SleepEnd == "" {
		cfg.SleepEnd = "07:30"
	}
	if cfg.Lectures == nil {
		cfg.Lectures = DefaultLectures()
	}
	if cfg.ShortfallPolicy == nil {
		cfg.ShortfallPolicy = LegacyShortfallPolicy
	}
	if cfg.EvictionPlacement == "" {
		cfg.EvictionPlacement = PlacementAfterDeadline
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 15 * time.Minute
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	loc := time.Local
	if cfg.Timezone != "" {
		if parsed, err := time.LoadLocation(cfg.Timezone); err == nil {
			loc = parsed
		}
	}

	return &implUseCase{
		l:        l,
		slots:    slots,
		tasks:    tasks,
		calendar: calendar,
		metrics:  metrics,
		cfg:      cfg,
		loc:      loc,
		sessions: newSessionStore(cfg.SessionTTL),
		locks:    newUserLocks(),
	}
}

// today returns the engine's current date in the configured zone.
func (uc *implUseCase) today() time.Time {
	now := uc.cfg.Clock().In(uc.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)
}

// parseDate reads a "2006-01-02" key as midnight in the engine's zone.
// Dates compared against today() must go through here: a UTC-parsed
// midnight sits earlier than the same calendar date in any zone west of
// UTC, which would misclassify same-day deadlines.
func (uc *implUseCase) parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(timegrid.DateLayout, s, uc.loc)
}
