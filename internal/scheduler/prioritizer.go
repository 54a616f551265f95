package scheduler

import (
	"sort"

	"github.com/Tiliavir/study-time-planner/internal/model"
	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

// WorkItem is a subject queued for allocation.
type WorkItem struct {
	Name           string
	RemainingHours float64
	DailyLimit     float64
	ExamDate       timecalc.Date
	DaysUntilExam  int
	HoursScheduled float64
}

// Prepare returns the subjects that still need hours and whose exam lies
// after today, most urgent first. Ties keep input order.
func Prepare(subjects []model.Subject, today timecalc.Date) []WorkItem {
	var items []WorkItem
	for _, s := range subjects {
		remaining := s.RemainingHours()
		if remaining <= 0 {
			continue
		}
		days := today.DaysUntil(s.ExamDate)
		if days <= 0 {
			continue
		}
		items = append(items, WorkItem{
			Name:           s.Name,
			RemainingHours: remaining,
			DailyLimit:     s.DailyLimit(),
			ExamDate:       s.ExamDate,
			DaysUntilExam:  days,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysUntilExam < items[j].DaysUntilExam
	})
	return items
}
