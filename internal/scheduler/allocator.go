package scheduler

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Tiliavir/study-time-planner/internal/apperrors"
	"github.com/Tiliavir/study-time-planner/internal/model"
	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

// MinSessionHours is the shortest session the allocator will create.
const MinSessionHours = 0.5

// Request describes one auto-scheduling run.
type Request struct {
	WindowStart  timecalc.Clock
	WindowEnd    timecalc.Clock
	SessionHours float64
	BreakHours   float64
	Today        timecalc.Date
}

// Shortfall records a subject that could not be given all of its hours.
type Shortfall struct {
	Subject   string
	Scheduled float64
	Needed    float64
}

func (s Shortfall) String() string {
	return fmt.Sprintf("%s (scheduled %.1fh / %.1fh needed)", s.Subject, s.Scheduled, s.Needed)
}

// Result is the outcome of a successful run. Incomplete is a warning, not
// a failure.
type Result struct {
	Sessions       []model.Session
	ScheduledCount int
	Incomplete     []Shortfall
}

// Allocate builds a fresh set of study sessions for subjects. It walks the
// calendar day by day from req.Today, skips weekends, and hands each free
// slot to the most urgent subject that still needs hours, has not reached
// its daily limit, and whose exam is more than one day away.
//
// newID generates session IDs; nil means random UUIDs. The inputs are not
// modified.
func Allocate(subjects []model.Subject, req Request, newID func() string) (Result, error) {
	if len(subjects) == 0 {
		return Result{}, apperrors.ErrNoSubjects
	}
	slots := GenerateSlots(req.WindowStart, req.WindowEnd, req.SessionHours, req.BreakHours)
	if len(slots) == 0 {
		return Result{}, apperrors.ErrWindowTooShort
	}
	queue := Prepare(subjects, req.Today)
	if len(queue) == 0 {
		return Result{}, apperrors.ErrNothingToSchedule
	}
	if newID == nil {
		newID = uuid.NewString
	}

	maxDays := 0
	for _, item := range queue {
		maxDays = max(maxDays, item.DaysUntilExam)
	}

	var sessions []model.Session
	for offset := 0; offset < maxDays; offset++ {
		date := req.Today.AddDays(offset)
		if date.IsWeekend() {
			continue
		}

		hoursToday := make(map[string]float64)
		for _, slot := range slots {
			if !IsSlotFree(date, slot, sessions) {
				continue
			}
			item := nextEligible(queue, date, hoursToday)
			if item == nil {
				continue
			}

			actual := min(
				req.SessionHours,
				item.DailyLimit-hoursToday[item.Name],
				item.RemainingHours-item.HoursScheduled,
			)
			// Too short to be useful; the slot stays empty this pass.
			if actual < MinSessionHours {
				continue
			}

			sessions = append(sessions, model.Session{
				ID:      newID(),
				Subject: item.Name,
				Date:    date,
				Start:   slot.Start,
				End:     slot.Start.AddHours(actual),
				Notes:   model.AutoScheduledNote,
			})
			item.HoursScheduled += actual
			hoursToday[item.Name] += actual
		}
	}

	var incomplete []Shortfall
	for _, item := range queue {
		if item.HoursScheduled < item.RemainingHours {
			incomplete = append(incomplete, Shortfall{
				Subject:   item.Name,
				Scheduled: item.HoursScheduled,
				Needed:    item.RemainingHours,
			})
		}
	}

	return Result{
		Sessions:       sessions,
		ScheduledCount: len(sessions),
		Incomplete:     incomplete,
	}, nil
}

// nextEligible returns the first queued subject that may take a slot on date.
func nextEligible(queue []WorkItem, date timecalc.Date, hoursToday map[string]float64) *WorkItem {
	for i := range queue {
		item := &queue[i]
		if item.HoursScheduled >= item.RemainingHours {
			continue
		}
		// No studying on the exam day or the day before it.
		if !date.Before(item.ExamDate.AddDays(-1)) {
			continue
		}
		if hoursToday[item.Name] >= item.DailyLimit {
			continue
		}
		return item
	}
	return nil
}
