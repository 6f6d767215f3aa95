package models

import "strings"

// Status is the lifecycle state of a task.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusClosed     Status = "Closed"
)

// ParseStatus resolves a raw status string to one of the three canonical
// values. Data written by earlier versions of the tracker used "Completed" or
// "Done" for the terminal state; those spellings are folded into StatusClosed
// here so the rest of the code only ever sees the closed enum.
func ParseStatus(raw string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "open":
		return StatusOpen, true
	case "in progress", "in_progress", "progress":
		return StatusInProgress, true
	case "closed", "completed", "done":
		return StatusClosed, true
	}
	return "", false
}

// Terminal reports whether s is the terminal (closed) state.
func (s Status) Terminal() bool {
	return s == StatusClosed
}

// Statuses lists the canonical status values in lifecycle order.
func Statuses() []Status {
	return []Status{StatusOpen, StatusInProgress, StatusClosed}
}

// Activity is a timestamped, attributed note appended to a task.
type Activity struct {
	At   string `json:"at"`
	Who  string `json:"who"`
	Text string `json:"text"`
}

// Task represents a tracked unit of work.
//
// CreatedAt and CompletedAt are kept as raw strings rather than time.Time:
// the tasks file may contain zone-less ISO stamps written by older versions,
// and a strict time field would fail the whole collection decode. Timestamps
// are parsed on demand through the timeutil package, which never fails.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Tags        []string   `json:"tags"`
	CreatedAt   string     `json:"created_at"`
	CompletedAt *string    `json:"completed_at,omitempty"`
	DueDays     int        `json:"due_days"`
	Activity    []Activity `json:"activity"`
}

// DefaultDueDays is the urgency threshold applied when a task doesn't carry
// its own.
const DefaultDueDays = 5

// HasTag reports whether the task carries the given tag.
func (t *Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if strings.EqualFold(have, tag) {
			return true
		}
	}
	return false
}

// LastActivity returns the most recently appended activity entry, or nil if
// the task has none.
func (t *Task) LastActivity() *Activity {
	if len(t.Activity) == 0 {
		return nil
	}
	return &t.Activity[len(t.Activity)-1]
}
