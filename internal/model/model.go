package model

import "github.com/Tiliavir/study-time-planner/internal/timecalc"

// DefaultDailyStudyHours is the per-day cap used whenever a subject has no
// positive daily_study_hours of its own.
const DefaultDailyStudyHours = 3.0

// AutoScheduledNote is attached to every session the allocator creates.
const AutoScheduledNote = "Auto-scheduled"

// Subject is a course with an exam deadline and a study-hour budget.
type Subject struct {
	Name             string        `json:"name"`
	ExamDate         timecalc.Date `json:"exam_date"`
	Difficulty       int           `json:"difficulty"`
	PastScore        int           `json:"past_score"`
	RecommendedHours int           `json:"recommended_hours"`
	HoursCompleted   float64       `json:"hours_completed"`
	DailyStudyHours  float64       `json:"daily_study_hours"`
}

// DailyLimit returns the subject's per-day cap, falling back to
// DefaultDailyStudyHours.
func (s Subject) DailyLimit() float64 {
	if s.DailyStudyHours > 0 {
		return s.DailyStudyHours
	}
	return DefaultDailyStudyHours
}

// RemainingHours is the recommended budget minus completed hours.
func (s Subject) RemainingHours() float64 {
	return float64(s.RecommendedHours) - s.HoursCompleted
}

// Session is one block of study time for a subject, referenced by name.
type Session struct {
	ID        string         `json:"id"`
	Subject   string         `json:"subject"`
	Date      timecalc.Date  `json:"date"`
	Start     timecalc.Clock `json:"start_time"`
	End       timecalc.Clock `json:"end_time"`
	Notes     string         `json:"notes"`
	Completed bool           `json:"completed"`
	Reminded  bool           `json:"reminded"`
}

// Hours returns the session length in hours.
func (s Session) Hours() float64 {
	return timecalc.HoursBetween(s.Start, s.End)
}

// Document is the top-level structure stored in the planner data file.
type Document struct {
	Subjects []Subject `json:"subjects"`
	Sessions []Session `json:"study_sessions"`
}
