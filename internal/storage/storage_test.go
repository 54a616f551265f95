package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Tiliavir/study-time-planner/internal/model"
	"github.com/Tiliavir/study-time-planner/internal/storage"
	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

func TestLoadNotExist(t *testing.T) {
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "planner.json"), nil)
	doc := store.Load()
	assert.NotNil(t, doc.Subjects)
	assert.NotNil(t, doc.Sessions)
	assert.Empty(t, doc.Subjects)
	assert.Empty(t, doc.Sessions)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "planner.json")
	store := storage.NewFileStore(path, nil)

	exam := timecalc.NewDate(2026, 5, 4)
	doc := model.Document{
		Subjects: []model.Subject{
			{Name: "Math", ExamDate: exam, Difficulty: 4, PastScore: 60, RecommendedHours: 30, DailyStudyHours: 2.5},
		},
		Sessions: []model.Session{
			{ID: "s1", Subject: "Math", Date: exam.AddDays(-3), Start: timecalc.NewClock(9, 0), End: timecalc.NewClock(11, 30), Notes: "ch. 4"},
		},
	}
	require.NoError(t, store.Save(doc))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must not be left behind")

	loaded := store.Load()
	assert.Equal(t, doc, loaded)
}

func TestSaveUsesCollectionNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.json")
	store := storage.NewFileStore(path, nil)
	require.NoError(t, store.Save(model.Document{Subjects: []model.Subject{}, Sessions: []model.Session{}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"subjects"`)
	assert.Contains(t, string(data), `"study_sessions"`)
}

func TestLoadCorruptBacksUpAndReturnsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.json")
	require.NoError(t, os.WriteFile(path, []byte("{bad json"), 0o600))

	core, logs := observer.New(zap.WarnLevel)
	store := storage.NewFileStore(path, zap.New(core))

	doc := store.Load()
	assert.Empty(t, doc.Subjects)
	assert.Empty(t, doc.Sessions)

	_, err := os.Stat(path + ".corrupt")
	assert.NoError(t, err, "expected backup file to exist after corrupt JSON")
	assert.Equal(t, 1, logs.FilterMessage("document_corrupt").Len())
}

func TestLoadLegacyDocumentAssignsIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.json")
	legacy := `{
  "subjects": [
    {"name": "Math", "exam_date": "2026-05-04", "difficulty": 3, "past_score": 70,
     "recommended_hours": 20, "hours_completed": 2, "daily_study_hours": 3}
  ],
  "study_sessions": [
    {"subject": "Math", "date": "2026-04-20", "start_time": "09:00", "end_time": "11:00",
     "notes": "Auto-scheduled", "completed": true},
    {"subject": "Math", "date": "2026-04-21", "start_time": "09:00", "end_time": "11:00",
     "notes": "", "completed": false, "reminded": true}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	doc := storage.NewFileStore(path, nil).Load()
	require.Len(t, doc.Sessions, 2)
	assert.NotEmpty(t, doc.Sessions[0].ID)
	assert.NotEmpty(t, doc.Sessions[1].ID)
	assert.NotEqual(t, doc.Sessions[0].ID, doc.Sessions[1].ID)
	assert.True(t, doc.Sessions[0].Completed)
	assert.True(t, doc.Sessions[1].Reminded)
	assert.InDelta(t, 2.0, doc.Sessions[0].Hours(), 1e-9)
	assert.Equal(t, "2026-05-04", doc.Subjects[0].ExamDate.String())
}

func TestSaveFailsWhenDirectoryIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	store := storage.NewFileStore(filepath.Join(blocker, "planner.json"), nil)
	assert.Error(t, store.Save(model.Document{}))
}
