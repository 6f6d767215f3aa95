// Package tasks implements the task lifecycle on top of the JSON store.
package tasks

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bymeSatya/TaskPilot-AI/internal/models"
	"github.com/bymeSatya/TaskPilot-AI/internal/store"
	"github.com/bymeSatya/TaskPilot-AI/internal/timeutil"
)

// Service enforces task invariants over the raw store. Every operation
// reloads the collection, mutates it in memory, and writes it back under one
// mutex, so concurrent operations within the process cannot lose updates.
type Service struct {
	store *store.Store
	now   func() time.Time
	mu    sync.Mutex
}

// Filter controls which tasks List returns.
type Filter struct {
	Status *models.Status
}

// NewService creates a lifecycle service over st.
func NewService(st *store.Store) *Service {
	return &Service{store: st, now: timeutil.Now}
}

// Create validates and persists a new task. The title must be non-empty
// after trimming; dueDays below 1 falls back to the default threshold.
func (s *Service) Create(title, description string, tags []string, dueDays int) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, models.ErrEmptyTitle
	}
	if dueDays < 1 {
		dueDays = models.DefaultDueDays
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.store.LoadAll()
	task := models.Task{
		ID:          nextID(all),
		Title:       title,
		Description: strings.TrimSpace(description),
		Status:      models.StatusOpen,
		Tags:        cleanTags(tags),
		CreatedAt:   timeutil.Format(s.now()),
		DueDays:     dueDays,
		Activity:    []models.Activity{},
	}
	all = append(all, task)

	if err := s.store.SaveAll(all); err != nil {
		return nil, models.WrapError(models.ErrCodeStorage, "save new task", err)
	}
	return &task, nil
}

// Get returns the task with the given id.
func (s *Service) Get(id string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.store.LoadAll()
	if i := indexOf(all, id); i >= 0 {
		task := all[i]
		return &task, nil
	}
	return nil, models.ErrTaskNotFound
}

// List returns tasks in collection order, optionally filtered by status.
func (s *Service) List(filter Filter) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.store.LoadAll()
	if filter.Status == nil {
		return all
	}
	var out []models.Task
	for _, t := range all {
		if t.Status == *filter.Status {
			out = append(out, t)
		}
	}
	return out
}

// SetStatus moves a task to a new status. The status is validated strictly
// against the enum (legacy spellings of Closed are accepted). Entering the
// terminal state stamps completed_at unless already set; leaving it clears
// the stamp.
func (s *Service) SetStatus(id, rawStatus string) (*models.Task, error) {
	status, ok := models.ParseStatus(rawStatus)
	if !ok {
		return nil, models.WrapError(models.ErrCodeInvalid,
			fmt.Sprintf("unknown status %q", rawStatus), models.ErrInvalidStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.store.LoadAll()
	i := indexOf(all, id)
	if i < 0 {
		return nil, models.ErrTaskNotFound
	}

	task := &all[i]
	task.Status = status
	if status.Terminal() {
		if task.CompletedAt == nil {
			stamp := timeutil.Format(s.now())
			task.CompletedAt = &stamp
		}
	} else {
		task.CompletedAt = nil
	}

	if err := s.store.SaveAll(all); err != nil {
		return nil, models.WrapError(models.ErrCodeStorage, "save status change", err)
	}
	out := *task
	return &out, nil
}

// AddActivity appends an attributed note to the task's activity feed. Notes
// are append-only and keep insertion order.
func (s *Service) AddActivity(id, who, text string) (*models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.ErrEmptyNote
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.store.LoadAll()
	i := indexOf(all, id)
	if i < 0 {
		return nil, models.ErrTaskNotFound
	}

	all[i].Activity = append(all[i].Activity, models.Activity{
		At:   timeutil.Format(s.now()),
		Who:  strings.TrimSpace(who),
		Text: text,
	})

	if err := s.store.SaveAll(all); err != nil {
		return nil, models.WrapError(models.ErrCodeStorage, "save activity", err)
	}
	out := all[i]
	return &out, nil
}

// Delete removes a task and its activity permanently. It reports whether a
// task was actually removed; deleting an unknown id is a benign no-op.
func (s *Service) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.store.LoadAll()
	i := indexOf(all, id)
	if i < 0 {
		return false, nil
	}
	all = append(all[:i], all[i+1:]...)

	if err := s.store.SaveAll(all); err != nil {
		return false, models.WrapError(models.ErrCodeStorage, "save deletion", err)
	}
	return true, nil
}

const idPrefix = "TASK-"

// nextID returns the next counter id, scoped to the highest numeric suffix
// already in the collection. Non-numeric suffixes are skipped.
func nextID(all []models.Task) string {
	max := 0
	for _, t := range all {
		rest, ok := strings.CutPrefix(t.ID, idPrefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > max {
			max = n
		}
	}
	id := fmt.Sprintf("%s%d", idPrefix, max+1)
	// The counter can't collide with a numeric suffix, but the file may hold
	// hand-edited ids; bump until free.
	for indexOf(all, id) >= 0 {
		max++
		id = fmt.Sprintf("%s%d", idPrefix, max+1)
	}
	return id
}

func indexOf(all []models.Task, id string) int {
	for i := range all {
		if all[i].ID == id {
			return i
		}
	}
	return -1
}

func cleanTags(tags []string) []string {
	out := []string{}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}
