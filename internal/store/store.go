// Package store persists the task collection as a single JSON document.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/bymeSatya/TaskPilot-AI/internal/models"
)

// Store reads and replaces the whole task collection in one file. There is no
// incremental update: every save rewrites the file, and the last writer wins.
type Store struct {
	path string
	log  *zap.Logger
}

// New creates a store backed by the JSON file at path.
func New(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{path: path, log: log}
}

// Path returns the location of the tasks file.
func (s *Store) Path() string { return s.path }

// LoadAll returns every persisted task. A missing file is an empty
// collection, and a file that cannot be read or parsed degrades to an empty
// collection with a warning instead of failing the caller: the read path must
// keep working no matter what state the file is in.
func (s *Store) LoadAll() []models.Task {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("tasks file unreadable, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return nil
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.log.Warn("tasks file corrupt, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return nil
	}
	return normalize(tasks)
}

// SaveAll replaces the persisted collection with tasks. The new content is
// written to a temp file, synced, and renamed over the old one so a failed
// save never truncates the previous collection. Write failures are returned:
// an operation that cannot persist must not claim success.
func (s *Store) SaveAll(tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tasks-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write tasks: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync tasks: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace tasks file: %w", err)
	}
	return nil
}

// normalize folds legacy status spellings into the canonical enum and fills
// defaulted fields, so tasks written by older versions behave like new ones.
func normalize(tasks []models.Task) []models.Task {
	for i := range tasks {
		if st, ok := models.ParseStatus(string(tasks[i].Status)); ok {
			tasks[i].Status = st
		} else {
			tasks[i].Status = models.StatusOpen
		}
		if tasks[i].DueDays < 1 {
			tasks[i].DueDays = models.DefaultDueDays
		}
	}
	return tasks
}
