package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bymeSatya/TaskPilot-AI/internal/metrics"
	"github.com/bymeSatya/TaskPilot-AI/internal/timeutil"
)

var showCmd = &cobra.Command{
	Use:     "show [task-id]",
	Aliases: []string{"view"},
	Short:   "Show a task's details and activity",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initService()

		task, err := svc.Get(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		now := timeutil.Now()
		fmt.Printf("%s — %s\n", task.ID, task.Title)
		fmt.Printf("Status:    %s\n", task.Status)
		fmt.Printf("Created:   %s (%d day(s) old)\n",
			timeutil.Parse(task.CreatedAt).Format("Jan 02, 2006 15:04"),
			metrics.AgeDays(task, now))
		if task.CompletedAt != nil {
			fmt.Printf("Completed: %s\n", timeutil.Parse(*task.CompletedAt).Format("Jan 02, 2006 15:04"))
		} else {
			fmt.Printf("Urgency:   %s (threshold %d days)\n", metrics.TaskUrgency(task, now), task.DueDays)
		}
		if len(task.Tags) > 0 {
			fmt.Printf("Tags:      %s\n", strings.Join(task.Tags, ", "))
		}
		if task.Description != "" {
			fmt.Printf("\n%s\n", task.Description)
		}

		if len(task.Activity) == 0 {
			fmt.Println("\nNo activity yet. Use 'taskpilot note' to add an update.")
			return
		}
		fmt.Println("\nActivity:")
		for _, a := range task.Activity {
			fmt.Printf("  %s  %s — %s\n",
				timeutil.Parse(a.At).Format("Jan 02 15:04"), a.Who, a.Text)
		}
	},
}
