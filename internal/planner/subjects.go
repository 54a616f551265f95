package planner

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Tiliavir/study-time-planner/internal/apperrors"
	"github.com/Tiliavir/study-time-planner/internal/model"
	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

// SubjectInput is the raw data for a new subject. A zero DailyStudyHours
// means "use the default".
type SubjectInput struct {
	Name            string  `validate:"required"`
	ExamDate        string  `validate:"required,datetime=2006-01-02"`
	Difficulty      int     `validate:"min=1,max=5"`
	PastScore       int     `validate:"min=0,max=100"`
	DailyStudyHours float64 `validate:"gte=0"`
}

// AddSubject validates in, estimates its recommended hours once and stores
// the subject. Names are unique; a duplicate is rejected.
func (p *Planner) AddSubject(in SubjectInput) (model.Subject, error) {
	if err := p.check(in); err != nil {
		return model.Subject{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Subject{}, invalid(fieldMessages["Name"])
	}
	exam, err := timecalc.ParseDate(in.ExamDate)
	if err != nil {
		return model.Subject{}, invalid(msgDateFormat)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	today := p.today()
	if !exam.After(today) {
		return model.Subject{}, invalid("Exam date must be in the future")
	}
	if p.subjectIndex(name) >= 0 {
		return model.Subject{}, apperrors.Clone(apperrors.ErrConflict, fmt.Sprintf("subject %q already exists", name))
	}

	daily := in.DailyStudyHours
	if daily == 0 {
		daily = p.defaultDailyHours
	}
	subject := model.Subject{
		Name:             name,
		ExamDate:         exam,
		Difficulty:       in.Difficulty,
		PastScore:        in.PastScore,
		RecommendedHours: p.estimator.EstimateHours(in.Difficulty, in.PastScore, today.DaysUntil(exam)),
		DailyStudyHours:  daily,
	}
	p.subjects = append(p.subjects, subject)

	p.logger.Info("subject_added",
		zap.String("subject", name),
		zap.String("exam_date", exam.String()),
		zap.Int("recommended_hours", subject.RecommendedHours))
	return subject, p.save("add_subject")
}

// DeleteSubject removes the subject and every session that refers to it.
// It returns the number of sessions removed.
func (p *Planner) DeleteSubject(name string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.subjectIndex(name)
	if idx < 0 {
		return 0, apperrors.Clone(apperrors.ErrNotFound, fmt.Sprintf("subject %q not found", name))
	}
	p.subjects = append(p.subjects[:idx], p.subjects[idx+1:]...)

	kept := p.sessions[:0]
	removed := 0
	for _, s := range p.sessions {
		if s.Subject == name {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	p.sessions = kept

	p.logger.Info("subject_deleted", zap.String("subject", name), zap.Int("sessions_removed", removed))
	return removed, p.save("delete_subject")
}

// Subjects returns a copy of all subjects in insertion order.
func (p *Planner) Subjects() []model.Subject {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.Subject{}, p.subjects...)
}

// Subject looks a subject up by name.
func (p *Planner) Subject(name string) (model.Subject, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if idx := p.subjectIndex(name); idx >= 0 {
		return p.subjects[idx], true
	}
	return model.Subject{}, false
}

func (p *Planner) subjectIndex(name string) int {
	for i, s := range p.subjects {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// Progress returns completed hours as a percentage of the recommended
// hours, capped at 100.
func Progress(s model.Subject) float64 {
	if s.RecommendedHours <= 0 {
		return 0
	}
	return min(s.HoursCompleted/float64(s.RecommendedHours)*100, 100)
}
