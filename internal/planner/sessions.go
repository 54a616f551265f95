package planner

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Tiliavir/study-time-planner/internal/apperrors"
	"github.com/Tiliavir/study-time-planner/internal/model"
	"github.com/Tiliavir/study-time-planner/internal/scheduler"
	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

// SessionInput is the raw data for a manually entered session.
type SessionInput struct {
	Subject string `validate:"required"`
	Date    string `validate:"required,datetime=2006-01-02"`
	Start   string `validate:"required,datetime=15:04"`
	End     string `validate:"required,datetime=15:04"`
	Notes   string
}

// DayGroup is the sessions of one date, in the order they were added.
type DayGroup struct {
	Date     timecalc.Date
	Sessions []model.Session
}

// AddSession validates and stores a manual session. Overlaps with existing
// sessions are allowed; they are returned so the caller can warn about them.
func (p *Planner) AddSession(in SessionInput) (model.Session, []model.Session, error) {
	if err := p.check(in); err != nil {
		return model.Session{}, nil, err
	}
	day, err := timecalc.ParseDate(in.Date)
	if err != nil {
		return model.Session{}, nil, invalid(msgDateFormat)
	}
	start, errStart := timecalc.ParseClock(in.Start)
	end, errEnd := timecalc.ParseClock(in.End)
	if errStart != nil || errEnd != nil || start >= end {
		return model.Session{}, nil, invalid(msgTimes)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if day.Before(p.today()) {
		return model.Session{}, nil, invalid("Cannot schedule sessions for past dates. Please select today or a future date.")
	}

	idx := p.subjectIndex(in.Subject)
	if idx < 0 {
		return model.Session{}, nil, apperrors.Clone(apperrors.ErrNotFound, fmt.Sprintf("subject %q not found", in.Subject))
	}
	subject := p.subjects[idx]

	if exams := p.examsOn(day); len(exams) > 0 {
		return model.Session{}, nil, invalid(fmt.Sprintf(
			"Cannot schedule study sessions on %s. Exam(s) scheduled on this date: %s",
			day, strings.Join(exams, ", ")))
	}

	hours := timecalc.HoursBetween(start, end)
	if limit := subject.DailyLimit(); hours > limit {
		return model.Session{}, nil, invalid(fmt.Sprintf(
			"Session duration (%.1fh) exceeds daily study hours (%gh) for %s. Please schedule a session of %gh or less.",
			hours, limit, subject.Name, limit))
	}

	var overlaps []model.Session
	for _, s := range p.sessions {
		if s.Date.Equal(day) && scheduler.Overlaps(start, end, s.Start, s.End) {
			overlaps = append(overlaps, s)
		}
	}

	session := model.Session{
		ID:      p.newID(),
		Subject: subject.Name,
		Date:    day,
		Start:   start,
		End:     end,
		Notes:   in.Notes,
	}
	p.sessions = append(p.sessions, session)

	p.logger.Info("session_added",
		zap.String("id", session.ID),
		zap.String("subject", session.Subject),
		zap.String("date", day.String()),
		zap.Int("overlaps", len(overlaps)))
	return session, overlaps, p.save("add_session")
}

// DeleteSession removes a session by ID.
func (p *Planner) DeleteSession(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.sessionIndex(id)
	if idx < 0 {
		return sessionNotFound(id)
	}
	p.sessions = append(p.sessions[:idx], p.sessions[idx+1:]...)

	p.logger.Info("session_deleted", zap.String("id", id))
	return p.save("delete_session")
}

// CompleteSession marks a session done and credits its duration to the
// subject. It returns the credited hours and the subject name.
func (p *Planner) CompleteSession(id string) (float64, string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.sessionIndex(id)
	if idx < 0 {
		return 0, "", sessionNotFound(id)
	}
	session := &p.sessions[idx]
	if session.Completed {
		return 0, session.Subject, invalid("Session is already completed")
	}

	session.Completed = true
	hours := session.Hours()
	if si := p.subjectIndex(session.Subject); si >= 0 {
		p.subjects[si].HoursCompleted += hours
	}

	p.logger.Info("session_completed",
		zap.String("id", id),
		zap.String("subject", session.Subject),
		zap.Float64("hours", hours))
	return hours, session.Subject, p.save("complete_session")
}

// FindSession resolves a full ID or a unique ID prefix.
func (p *Planner) FindSession(ref string) (model.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if idx := p.sessionIndex(ref); idx >= 0 {
		return p.sessions[idx], nil
	}
	if ref == "" {
		return model.Session{}, sessionNotFound(ref)
	}

	var match *model.Session
	for i := range p.sessions {
		if !strings.HasPrefix(p.sessions[i].ID, ref) {
			continue
		}
		if match != nil {
			return model.Session{}, invalid(fmt.Sprintf("session id %q is ambiguous", ref))
		}
		match = &p.sessions[i]
	}
	if match == nil {
		return model.Session{}, sessionNotFound(ref)
	}
	return *match, nil
}

// Sessions returns a copy of all sessions in insertion order.
func (p *Planner) Sessions() []model.Session {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.Session{}, p.sessions...)
}

// SessionsByDate groups sessions by date in ascending date order.
func (p *Planner) SessionsByDate() []DayGroup {
	p.mu.Lock()
	defer p.mu.Unlock()

	var groups []DayGroup
	index := make(map[string]int)
	for _, s := range p.sessions {
		key := s.Date.String()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{Date: s.Date})
		}
		groups[i].Sessions = append(groups[i].Sessions, s)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})
	return groups
}

func (p *Planner) sessionIndex(id string) int {
	for i, s := range p.sessions {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// examsOn lists subjects whose exam falls on day.
func (p *Planner) examsOn(day timecalc.Date) []string {
	var names []string
	for _, s := range p.subjects {
		if s.ExamDate.Equal(day) {
			names = append(names, s.Name)
		}
	}
	return names
}

func sessionNotFound(id string) error {
	return apperrors.Clone(apperrors.ErrNotFound, fmt.Sprintf("session %q not found", id))
}
