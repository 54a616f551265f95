package scheduler

import (
	"fmt"
	"strings"

	"github.com/Tiliavir/study-time-planner/internal/model"
	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

// ConflictKind distinguishes the conflict categories.
type ConflictKind string

const (
	KindOverlap       ConflictKind = "overlap"
	KindMultipleExams ConflictKind = "multiple_exams"
)

// Conflict is either an overlapping session pair or a date with several
// exams. For overlaps IndexA < IndexB are positions in the session slice
// the conflict was detected on; SessionA and SessionB are the stable IDs.
type Conflict struct {
	Kind     ConflictKind
	Date     timecalc.Date
	IndexA   int
	IndexB   int
	SessionA string
	SessionB string
	Subjects []string
}

// DetectConflicts reports overlapping sessions in session-index order,
// followed by shared exam dates in the order the dates first appear.
func DetectConflicts(subjects []model.Subject, sessions []model.Session) []Conflict {
	var conflicts []Conflict

	for i := 0; i < len(sessions); i++ {
		for j := i + 1; j < len(sessions); j++ {
			a, b := sessions[i], sessions[j]
			if !a.Date.Equal(b.Date) {
				continue
			}
			if Overlaps(a.Start, a.End, b.Start, b.End) {
				conflicts = append(conflicts, Conflict{
					Kind:     KindOverlap,
					Date:     a.Date,
					IndexA:   i,
					IndexB:   j,
					SessionA: a.ID,
					SessionB: b.ID,
				})
			}
		}
	}

	byDate := make(map[string][]string)
	var order []timecalc.Date
	for _, s := range subjects {
		key := s.ExamDate.String()
		if _, seen := byDate[key]; !seen {
			order = append(order, s.ExamDate)
		}
		byDate[key] = append(byDate[key], s.Name)
	}
	for _, d := range order {
		names := byDate[d.String()]
		if len(names) > 1 {
			conflicts = append(conflicts, Conflict{
				Kind:     KindMultipleExams,
				Date:     d,
				Subjects: names,
			})
		}
	}

	return conflicts
}

// FormatMessages renders conflicts for display. Overlap sessions are
// resolved by ID against sessions.
func FormatMessages(conflicts []Conflict, sessions []model.Session) []string {
	byID := make(map[string]model.Session, len(sessions))
	for _, s := range sessions {
		byID[s.ID] = s
	}

	var lines []string
	for _, c := range conflicts {
		switch c.Kind {
		case KindOverlap:
			a, b := byID[c.SessionA], byID[c.SessionB]
			lines = append(lines, fmt.Sprintf("Overlap on %s: %s (%s-%s) and %s (%s-%s)",
				c.Date, a.Subject, a.Start, a.End, b.Subject, b.Start, b.End))
		case KindMultipleExams:
			lines = append(lines, fmt.Sprintf("Multiple exams on %s: %s", c.Date, strings.Join(c.Subjects, ", ")))
		}
	}
	return lines
}

// ResolveOverlap moves the second session of an overlap to the following
// day, keeping its times. The new date is not re-checked, so the move can
// create a fresh conflict. It reports false for non-overlap conflicts, when
// either session no longer exists, or when the pair no longer overlaps
// because an earlier move already separated them.
func ResolveOverlap(c Conflict, sessions []model.Session) bool {
	if c.Kind != KindOverlap {
		return false
	}
	ia, ib := indexOf(sessions, c.SessionA), indexOf(sessions, c.SessionB)
	if ia < 0 || ib < 0 {
		return false
	}
	a, b := sessions[ia], sessions[ib]
	if !a.Date.Equal(b.Date) || !Overlaps(a.Start, a.End, b.Start, b.End) {
		return false
	}
	sessions[ib].Date = b.Date.AddDays(1)
	return true
}

func indexOf(sessions []model.Session, id string) int {
	for i := range sessions {
		if sessions[i].ID == id {
			return i
		}
	}
	return -1
}
