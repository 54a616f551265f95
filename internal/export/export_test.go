package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/study-time-planner/internal/export"
	"github.com/Tiliavir/study-time-planner/internal/model"
	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

func sampleSessions() []model.Session {
	return []model.Session{
		{
			ID: "a", Subject: "Math", Date: timecalc.NewDate(2026, 3, 3),
			Start: timecalc.NewClock(9, 0), End: timecalc.NewClock(10, 30),
			Notes: "chapters 1, 2", Completed: true,
		},
		{
			ID: "b", Subject: `Bio "advanced"`, Date: timecalc.NewDate(2026, 3, 4),
			Start: timecalc.NewClock(14, 0), End: timecalc.NewClock(16, 0),
			Notes: "lab|notes",
		},
	}
}

func TestSessionTable(t *testing.T) {
	tbl := export.SessionTable(sampleSessions())
	assert.Equal(t, []string{"date", "subject", "start", "end", "hours", "completed", "notes"}, tbl.Keys())
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"2026-03-03", "Math", "09:00", "10:30", "1.50", "true", "chapters 1, 2"}, tbl.Rows[0])
	assert.Equal(t, "2 sessions, 3h 30m planned, 1h 30m completed", tbl.Footer)
}

func TestCSVExporterQuotesFields(t *testing.T) {
	out, err := export.NewCSVExporter().Render(export.SessionTable(sampleSessions()))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "date", records[0][0])
	assert.Equal(t, "chapters 1, 2", records[1][6])
	assert.Equal(t, `Bio "advanced"`, records[2][1])
	assert.Contains(t, string(out), `"Bio ""advanced"""`)
	assert.NotContains(t, string(out), "planned")
}

func TestCSVExporterRejectsRaggedRows(t *testing.T) {
	tbl := export.Table{Columns: []export.Column{{Key: "a"}, {Key: "b"}}, Rows: [][]string{{"only one"}}}
	_, err := export.NewCSVExporter().Render(tbl)
	assert.Error(t, err)
}

func TestExportersRequireColumns(t *testing.T) {
	_, err := export.NewCSVExporter().Render(export.Table{})
	assert.Error(t, err)
	_, err = export.NewMarkdownExporter().Render(export.Table{}, "")
	assert.Error(t, err)
	_, err = export.NewPDFExporter().Render(export.Table{}, "")
	assert.Error(t, err)
}

func TestMarkdownExporter(t *testing.T) {
	tbl := export.Table{
		Columns: []export.Column{{Key: "subject", Title: "Subject"}, {Key: "notes", Title: "Notes"}},
		Rows:    [][]string{{"Math", "a|b"}},
		Footer:  "1 sessions",
	}
	out, err := export.NewMarkdownExporter().Render(tbl, "Study plan")
	require.NoError(t, err)
	assert.Equal(t, "# Study plan\n\n| Subject | Notes |\n| --- | --- |\n| Math | a\\|b |\n\n_1 sessions_\n", string(out))
}

func TestPDFExporter(t *testing.T) {
	out, err := export.NewPDFExporter().Render(export.SessionTable(sampleSessions()), "Study plan")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestPDFExporterSpansPages(t *testing.T) {
	var sessions []model.Session
	for i := 0; i < 80; i++ {
		s := sampleSessions()[0]
		s.Notes = strings.Repeat("x", i%10)
		sessions = append(sessions, s)
	}
	out, err := export.NewPDFExporter().Render(export.SessionTable(sessions), "")
	require.NoError(t, err)
	pages := bytes.Count(out, []byte("/Type /Page")) - bytes.Count(out, []byte("/Type /Pages"))
	assert.GreaterOrEqual(t, pages, 2)
}
