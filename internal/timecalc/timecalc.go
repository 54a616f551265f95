package timecalc

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

const (
	// DateLayout is the on-disk and CLI format for calendar dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the on-disk and CLI format for times of day.
	ClockLayout = "15:04"
)

// Date is a calendar date without a time of day. The zero value is "no date".
type Date struct {
	t time.Time // always midnight UTC
}

// NewDate returns the date y-m-d. Out-of-range values are normalised the
// same way time.Date normalises them.
func NewDate(y int, m time.Month, d int) Date {
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: must be YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Display formats the date like "Monday, December 09, 2024".
func (d Date) Display() string {
	return d.t.Format("Monday, January 02, 2006")
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// IsWeekend reports whether d is a Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaysUntil returns the number of calendar days from d to other. It is
// negative when other lies before d.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// At combines d with a clock time in loc.
func (d Date) At(c Clock, loc *time.Location) time.Time {
	y, m, day := d.t.Date()
	return time.Date(y, m, day, c.Hour(), c.Minute(), 0, 0, loc)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Clock is a time of day in minutes since midnight.
type Clock int

// NewClock returns the clock time h:m.
func NewClock(h, m int) Clock { return Clock(h*60 + m) }

// ParseClock parses an HH:MM string.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: must be HH:MM", s)
	}
	return NewClock(t.Hour(), t.Minute()), nil
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// AddHours returns c advanced by a fractional number of hours, rounded to
// the nearest minute.
func (c Clock) AddHours(h float64) Clock {
	return c + Clock(HoursToMinutes(h))
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// HoursBetween returns the length of [from, to) in hours.
func HoursBetween(from, to Clock) float64 {
	return float64(to-from) / 60
}

// HoursToMinutes converts fractional hours to whole minutes.
func HoursToMinutes(h float64) int {
	return int(math.Round(h * 60))
}

// FormatHours formats fractional hours like "1h 30m", "45m" or "0m".
func FormatHours(h float64) string {
	total := HoursToMinutes(h)
	if total < 0 {
		total = 0
	}
	hh := total / 60
	mm := total % 60
	if hh > 0 {
		return fmt.Sprintf("%dh %dm", hh, mm)
	}
	return fmt.Sprintf("%dm", mm)
}

// WeekRange returns the Monday and Sunday of the ISO week containing d.
func WeekRange(d Date) (Date, Date) {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := d.AddDays(-(wd - 1))
	return monday, monday.AddDays(6)
}

// ISOWeekLabel returns a label like "2026-W09".
func ISOWeekLabel(d Date) string {
	year, week := d.t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
