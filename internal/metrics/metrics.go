// Package metrics derives display metrics from tasks. Everything here is a
// pure function of the task and the supplied clock; nothing is persisted.
package metrics

import (
	"time"

	"github.com/bymeSatya/TaskPilot-AI/internal/models"
	"github.com/bymeSatya/TaskPilot-AI/internal/timeutil"
)

// Urgency is the three-level age classification shown on the dashboard.
type Urgency int

const (
	Green Urgency = iota
	Orange
	Red
)

func (u Urgency) String() string {
	switch u {
	case Green:
		return "green"
	case Orange:
		return "orange"
	default:
		return "red"
	}
}

// Aggregate thresholds, in days. Nearing and overdue are disjoint: nearing
// covers [3,5), overdue [5,∞).
const (
	nearingFromDays  = 3
	overdueAfterDays = 5
)

// AgeDays returns the task's age in whole days at now, clamped to zero. An
// unreadable created_at counts as created now (age zero) rather than failing.
func AgeDays(task *models.Task, now time.Time) int {
	created, ok := timeutil.TryParse(task.CreatedAt)
	if !ok {
		return 0
	}
	days := int(now.UTC().Sub(created).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Bucket classifies an age against a due-days threshold. The scale splits
// [0,dueDays] 2/2/1: with the default 5-day threshold, ages 0–2 are green,
// 3–4 orange, and 5 or more red.
func Bucket(ageDays, dueDays int) Urgency {
	if dueDays < 1 {
		dueDays = models.DefaultDueDays
	}
	greenMax := dueDays * 2 / 5
	orangeMax := dueDays * 4 / 5
	switch {
	case ageDays <= greenMax:
		return Green
	case ageDays <= orangeMax:
		return Orange
	default:
		return Red
	}
}

// TaskUrgency classifies a task by its own due-days threshold.
func TaskUrgency(task *models.Task, now time.Time) Urgency {
	return Bucket(AgeDays(task, now), task.DueDays)
}

// PctComplete reports how much of the task's due window has elapsed, 0–100.
func PctComplete(task *models.Task, now time.Time) float64 {
	created, ok := timeutil.TryParse(task.CreatedAt)
	if !ok {
		return 0
	}
	dueDays := task.DueDays
	if dueDays < 1 {
		dueDays = models.DefaultDueDays
	}
	total := float64(dueDays) * 24
	spent := now.UTC().Sub(created).Hours()
	if total <= 0 {
		return 100
	}
	pct := 100 * spent / total
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Summary holds the dashboard's aggregate counts.
type Summary struct {
	Open            int
	Overdue         int
	NearingDeadline int
	Closed          int
}

// Summarize folds the aggregate counts over a task list. Terminal tasks are
// never counted as overdue or nearing deadline.
func Summarize(tasks []models.Task, now time.Time) Summary {
	var s Summary
	for i := range tasks {
		t := &tasks[i]
		if t.Status.Terminal() {
			s.Closed++
			continue
		}
		s.Open++
		age := AgeDays(t, now)
		switch {
		case age >= overdueAfterDays:
			s.Overdue++
		case age >= nearingFromDays:
			s.NearingDeadline++
		}
	}
	return s
}

// Overdue returns the non-terminal tasks at or past the overdue threshold,
// in collection order.
func Overdue(tasks []models.Task, now time.Time) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if !t.Status.Terminal() && AgeDays(&t, now) >= overdueAfterDays {
			out = append(out, t)
		}
	}
	return out
}
