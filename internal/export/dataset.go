// Package export renders study sessions as tabular documents.
package export

import (
	"strconv"

	"github.com/Tiliavir/study-time-planner/internal/model"
	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

// Column describes one exported field. Key is the machine name used by
// CSV and Markdown; Width is the relative PDF column width.
type Column struct {
	Key   string
	Title string
	Width float64
}

// Table is an ordered set of rows, each holding one cell per column.
type Table struct {
	Columns []Column
	Rows    [][]string
	// Footer is an optional summary line printed under the table.
	Footer string
}

// Keys returns the column keys in order.
func (t Table) Keys() []string {
	keys := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		keys[i] = c.Key
	}
	return keys
}

// SessionColumns are the columns of a session export.
var SessionColumns = []Column{
	{Key: "date", Title: "Date", Width: 2.2},
	{Key: "subject", Title: "Subject", Width: 3},
	{Key: "start", Title: "Start", Width: 1.2},
	{Key: "end", Title: "End", Width: 1.2},
	{Key: "hours", Title: "Hours", Width: 1.2},
	{Key: "completed", Title: "Done", Width: 1},
	{Key: "notes", Title: "Notes", Width: 4},
}

// SessionTable turns sessions into one row each, in the given order, and
// totals planned and completed hours in the footer.
func SessionTable(sessions []model.Session) Table {
	rows := make([][]string, 0, len(sessions))
	var planned, done float64
	for _, s := range sessions {
		hours := s.Hours()
		planned += hours
		if s.Completed {
			done += hours
		}
		rows = append(rows, []string{
			s.Date.String(),
			s.Subject,
			s.Start.String(),
			s.End.String(),
			strconv.FormatFloat(hours, 'f', 2, 64),
			strconv.FormatBool(s.Completed),
			s.Notes,
		})
	}
	return Table{
		Columns: SessionColumns,
		Rows:    rows,
		Footer: strconv.Itoa(len(sessions)) + " sessions, " + timecalc.FormatHours(planned) +
			" planned, " + timecalc.FormatHours(done) + " completed",
	}
}
