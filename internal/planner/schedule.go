package planner

import (
	"go.uber.org/zap"

	"github.com/Tiliavir/study-time-planner/internal/model"
	"github.com/Tiliavir/study-time-planner/internal/scheduler"
	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

// ScheduleInput is the raw auto-scheduling request.
type ScheduleInput struct {
	WindowStart  string  `validate:"required,datetime=15:04"`
	WindowEnd    string  `validate:"required,datetime=15:04"`
	SessionHours float64 `validate:"gt=0,lte=24"`
	BreakHours   float64 `validate:"gte=0,lte=24"`
}

// AutoSchedule replaces every existing session, manual ones included, with
// a freshly allocated schedule starting today. Callers confirm the
// replacement with the user before calling. On failure nothing changes.
func (p *Planner) AutoSchedule(in ScheduleInput) (scheduler.Result, error) {
	if err := p.check(in); err != nil {
		return scheduler.Result{}, err
	}
	start, errStart := timecalc.ParseClock(in.WindowStart)
	end, errEnd := timecalc.ParseClock(in.WindowEnd)
	if errStart != nil || errEnd != nil {
		return scheduler.Result{}, invalid(msgTimes)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	req := scheduler.Request{
		WindowStart:  start,
		WindowEnd:    end,
		SessionHours: in.SessionHours,
		BreakHours:   in.BreakHours,
		Today:        p.today(),
	}
	res, err := scheduler.Allocate(p.subjects, req, p.newID)
	if err != nil {
		p.logger.Info("schedule_rejected", zap.Error(err))
		return scheduler.Result{}, err
	}

	replaced := len(p.sessions)
	p.sessions = append([]model.Session{}, res.Sessions...)

	p.logger.Info("schedule_generated",
		zap.Int("sessions", res.ScheduledCount),
		zap.Int("replaced", replaced),
		zap.Int("incomplete_subjects", len(res.Incomplete)))
	return res, p.save("auto_schedule")
}

// DetectConflicts reports overlapping sessions and shared exam dates.
func (p *Planner) DetectConflicts() []scheduler.Conflict {
	p.mu.Lock()
	defer p.mu.Unlock()
	return scheduler.DetectConflicts(p.subjects, p.sessions)
}

// ConflictMessages detects conflicts and renders them for display.
func (p *Planner) ConflictMessages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return scheduler.FormatMessages(scheduler.DetectConflicts(p.subjects, p.sessions), p.sessions)
}

// FormatConflicts renders conflicts against the current sessions.
func (p *Planner) FormatConflicts(conflicts []scheduler.Conflict) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return scheduler.FormatMessages(conflicts, p.sessions)
}

// ResolveConflict moves the second session of an overlap one day later.
// It reports false, without saving, for anything it cannot resolve.
func (p *Planner) ResolveConflict(c scheduler.Conflict) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !scheduler.ResolveOverlap(c, p.sessions) {
		return false, nil
	}
	p.logger.Info("conflict_resolved", zap.String("moved_session", c.SessionB))
	return true, p.save("resolve_conflict")
}
