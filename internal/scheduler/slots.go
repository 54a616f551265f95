// Package scheduler holds the pure scheduling algorithms: slot generation,
// availability checks, subject prioritisation, the greedy allocator and
// conflict detection. Nothing in here mutates planner state.
package scheduler

import "github.com/Tiliavir/study-time-planner/internal/timecalc"

// Slot is a candidate study interval [Start, End) within one day.
type Slot struct {
	Start timecalc.Clock
	End   timecalc.Clock
}

// MaxSlotHours bounds session and break lengths; nothing longer fits in a
// day.
const MaxSlotHours = 24.0

// GenerateSlots splits the availability window into consecutive slots of
// sessionHours, separated by breakHours. No slot ends after windowEnd.
// A session longer than MaxSlotHours yields no slots; a longer break
// leaves only the first slot.
func GenerateSlots(windowStart, windowEnd timecalc.Clock, sessionHours, breakHours float64) []Slot {
	if !(sessionHours > 0 && sessionHours <= MaxSlotHours) {
		return nil
	}
	session := timecalc.Clock(timecalc.HoursToMinutes(sessionHours))
	if session <= 0 {
		return nil
	}
	step := session
	if breakHours > 0 {
		step += timecalc.Clock(timecalc.HoursToMinutes(min(breakHours, MaxSlotHours)))
	}

	var slots []Slot
	for cursor := windowStart; cursor+session <= windowEnd; cursor += step {
		slots = append(slots, Slot{Start: cursor, End: cursor + session})
	}
	return slots
}
