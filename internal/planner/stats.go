package planner

import (
	"time"

	"go.uber.org/zap"

	"github.com/Tiliavir/study-time-planner/internal/model"
	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

// Stats summarises the planner for the dashboard.
type Stats struct {
	TotalSubjects       int
	TotalHoursNeeded    int
	TotalHoursCompleted float64
	TotalSessions       int
	CompletedSessions   int
	// WeekPlannedHours is the length of all sessions in the current ISO week.
	WeekPlannedHours float64
}

// Statistics computes the dashboard totals.
func (p *Planner) Statistics() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	monday, sunday := timecalc.WeekRange(p.today())
	st := Stats{
		TotalSubjects: len(p.subjects),
		TotalSessions: len(p.sessions),
	}
	for _, s := range p.subjects {
		st.TotalHoursNeeded += s.RecommendedHours
		st.TotalHoursCompleted += s.HoursCompleted
	}
	for _, s := range p.sessions {
		if s.Completed {
			st.CompletedSessions++
		}
		if !s.Date.Before(monday) && !s.Date.After(sunday) {
			st.WeekPlannedHours += s.Hours()
		}
	}
	return st
}

// DueReminders returns today's open sessions that start lead (±1 minute)
// after now and have not been reminded yet.
func (p *Planner) DueReminders(now time.Time, lead time.Duration) []model.Session {
	p.mu.Lock()
	defer p.mu.Unlock()

	today := timecalc.DateOf(now)
	nowClock := timecalc.NewClock(now.Hour(), now.Minute())
	leadMin := int(lead.Minutes())

	var due []model.Session
	for _, s := range p.sessions {
		if !s.Date.Equal(today) || s.Completed || s.Reminded {
			continue
		}
		diff := int(s.Start - nowClock)
		if diff >= leadMin-1 && diff <= leadMin+1 {
			due = append(due, s)
		}
	}
	return due
}

// MarkReminded records that a reminder fired for the session.
func (p *Planner) MarkReminded(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.sessionIndex(id)
	if idx < 0 {
		return sessionNotFound(id)
	}
	p.sessions[idx].Reminded = true

	p.logger.Debug("session_reminded", zap.String("id", id))
	return p.save("mark_reminded")
}
