package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Tiliavir/study-time-planner/internal/model"
)

// DataFileName is the name of the planner document inside BaseDir.
const DataFileName = "planner.json"

// BaseDir returns the root data directory (~/.stp).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".stp"), nil
}

// DefaultPath returns ~/.stp/planner.json.
func DefaultPath() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DataFileName), nil
}

// FileStore keeps the whole planner document in one JSON file.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore returns a store for path. A nil logger discards output.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load reads the document. It never fails: a missing file gives an empty
// document, and an unreadable or corrupt one is logged (and, if corrupt,
// backed up to <path>.corrupt) before an empty document is returned.
// Sessions without an ID, as written by older versions, get one.
func (s *FileStore) Load() model.Document {
	empty := model.Document{Subjects: []model.Subject{}, Sessions: []model.Session{}}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return empty
	}
	if err != nil {
		s.logger.Warn("document_unreadable", zap.String("path", s.path), zap.Error(err))
		return empty
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		backupPath := s.path + ".corrupt"
		_ = os.Rename(s.path, backupPath)
		s.logger.Warn("document_corrupt",
			zap.String("path", s.path),
			zap.String("backup", backupPath),
			zap.Error(err))
		return empty
	}

	if doc.Subjects == nil {
		doc.Subjects = []model.Subject{}
	}
	if doc.Sessions == nil {
		doc.Sessions = []model.Session{}
	}
	for i := range doc.Sessions {
		if doc.Sessions[i].ID == "" {
			doc.Sessions[i].ID = uuid.NewString()
		}
	}
	return doc
}

// Save atomically writes the document.
func (s *FileStore) Save(doc model.Document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
