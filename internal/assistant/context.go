package assistant

import (
	"fmt"
	"strings"

	"github.com/bymeSatya/TaskPilot-AI/internal/models"
)

// maxContextNotes caps how much of the activity feed is sent to the model.
const maxContextNotes = 5

// TaskContext renders a task into the system context string for Ask.
func TaskContext(t *models.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task %s: %s\n", t.ID, t.Title)
	fmt.Fprintf(&b, "Status: %s\n", t.Status)
	if t.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", t.Description)
	}
	if len(t.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(t.Tags, ", "))
	}

	activity := t.Activity
	if len(activity) > maxContextNotes {
		activity = activity[len(activity)-maxContextNotes:]
	}
	if len(activity) > 0 {
		b.WriteString("Recent updates:\n")
		for _, a := range activity {
			fmt.Fprintf(&b, "- [%s] %s: %s\n", a.At, a.Who, a.Text)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
