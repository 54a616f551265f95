package timecalc_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

func TestParseDate(t *testing.T) {
	d, err := timecalc.ParseDate("2026-02-27")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-27", d.String())
	assert.Equal(t, time.Friday, d.Weekday())

	for _, bad := range []string{"2026-2-27", "27.02.2026", "2026-02-30", ""} {
		_, err := timecalc.ParseDate(bad)
		assert.Error(t, err, "ParseDate(%q)", bad)
	}
}

func TestDateArithmetic(t *testing.T) {
	fri := timecalc.NewDate(2026, 2, 27)

	assert.Equal(t, "2026-03-01", fri.AddDays(2).String())
	assert.Equal(t, 2, fri.DaysUntil(fri.AddDays(2)))
	assert.Equal(t, -3, fri.DaysUntil(fri.AddDays(-3)))
	assert.True(t, fri.Before(fri.AddDays(1)))
	assert.True(t, fri.AddDays(1).After(fri))
	assert.True(t, fri.Equal(timecalc.NewDate(2026, 2, 27)))
}

func TestIsWeekend(t *testing.T) {
	mon := timecalc.NewDate(2026, 3, 2)
	want := []bool{false, false, false, false, false, true, true}
	for i, w := range want {
		d := mon.AddDays(i)
		assert.Equal(t, w, d.IsWeekend(), "IsWeekend(%s)", d)
	}
}

func TestDateOfUsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	ts := time.Date(2026, 2, 27, 23, 30, 0, 0, loc)
	assert.Equal(t, "2026-02-27", timecalc.DateOf(ts).String())
}

func TestDateJSON(t *testing.T) {
	d := timecalc.NewDate(2026, 5, 4)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-05-04"`, string(data))

	var back timecalc.Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, d.Equal(back))

	var zero timecalc.Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &zero))
	assert.True(t, zero.IsZero())
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want timecalc.Clock
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"9:30", 570},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		got, err := timecalc.ParseClock(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"24:00", "9", "ab:cd", "12:60"} {
		_, err := timecalc.ParseClock(bad)
		assert.Error(t, err, "ParseClock(%q)", bad)
	}
}

func TestClockAddHours(t *testing.T) {
	start := timecalc.NewClock(9, 0)
	assert.Equal(t, "11:00", start.AddHours(2).String())
	assert.Equal(t, "10:30", start.AddHours(1.5).String())
	assert.Equal(t, "09:15", start.AddHours(0.25).String())
	assert.InDelta(t, 1.5, timecalc.HoursBetween(start, start.AddHours(1.5)), 1e-9)
}

func TestClockJSON(t *testing.T) {
	data, err := json.Marshal(timecalc.NewClock(7, 5))
	require.NoError(t, err)
	assert.Equal(t, `"07:05"`, string(data))

	var c timecalc.Clock
	require.NoError(t, json.Unmarshal([]byte(`"18:45"`), &c))
	assert.Equal(t, timecalc.NewClock(18, 45), c)
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0m"},
		{0.5, "30m"},
		{1, "1h 0m"},
		{1.5, "1h 30m"},
		{2.25, "2h 15m"},
		{-1, "0m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, timecalc.FormatHours(tt.hours), "FormatHours(%v)", tt.hours)
	}
}

func TestWeekRange(t *testing.T) {
	// 2026-02-27 is a Friday (week 9).
	monday, sunday := timecalc.WeekRange(timecalc.NewDate(2026, 2, 27))
	assert.Equal(t, "2026-02-23", monday.String())
	assert.Equal(t, "2026-03-01", sunday.String())

	monday, _ = timecalc.WeekRange(timecalc.NewDate(2026, 3, 1))
	assert.Equal(t, "2026-02-23", monday.String())
}

func TestISOWeekLabel(t *testing.T) {
	assert.Equal(t, "2026-W09", timecalc.ISOWeekLabel(timecalc.NewDate(2026, 2, 27)))
}
