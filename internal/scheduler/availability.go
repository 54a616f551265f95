package scheduler

import (
	"github.com/Tiliavir/study-time-planner/internal/model"
	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd timecalc.Clock) bool {
	return aStart < bEnd && aEnd > bStart
}

// IsSlotFree reports whether no session on date overlaps slot.
func IsSlotFree(date timecalc.Date, slot Slot, sessions []model.Session) bool {
	for _, s := range sessions {
		if !s.Date.Equal(date) {
			continue
		}
		if Overlaps(slot.Start, slot.End, s.Start, s.End) {
			return false
		}
	}
	return true
}
