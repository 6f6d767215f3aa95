package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bymeSatya/TaskPilot-AI/internal/metrics"
	"github.com/bymeSatya/TaskPilot-AI/internal/models"
	"github.com/bymeSatya/TaskPilot-AI/internal/tasks"
	"github.com/bymeSatya/TaskPilot-AI/internal/timeutil"
	"github.com/bymeSatya/TaskPilot-AI/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List tasks in creation order, optionally filtered by status (Open, \"In Progress\", Closed)",
	Run: func(cmd *cobra.Command, args []string) {
		initService()

		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
			if err := tui.RunListTUI(svc); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		filter := tasks.Filter{}
		if raw, _ := cmd.Flags().GetString("status"); raw != "" {
			status, ok := models.ParseStatus(raw)
			if !ok {
				fmt.Printf("Error: unknown status '%s' (use Open, \"In Progress\", or Closed)\n", raw)
				return
			}
			filter.Status = &status
		}

		list := svc.List(filter)
		if len(list) == 0 {
			fmt.Println("No tasks found. Use 'taskpilot add \"task title\"' to create your first task.")
			return
		}

		now := timeutil.Now()

		// Print table header
		fmt.Printf("%-9s %-12s %-42s %-5s %-8s %-12s %s\n",
			"ID", "STATUS", "TITLE", "AGE", "URGENCY", "CREATED", "COMPLETED")
		fmt.Println(strings.Repeat("-", 100))

		for i := range list {
			task := &list[i]

			title := task.Title
			if len(title) > 40 {
				title = title[:37] + "..."
			}

			completed := "-"
			if task.CompletedAt != nil {
				completed = timeutil.Parse(*task.CompletedAt).Format("Jan 02, 2006")
			}

			urgency := "-"
			if !task.Status.Terminal() {
				urgency = metrics.TaskUrgency(task, now).String()
			}

			fmt.Printf("%-9s %-12s %-42s %-5s %-8s %-12s %s\n",
				task.ID,
				task.Status,
				title,
				fmt.Sprintf("%dd", metrics.AgeDays(task, now)),
				urgency,
				timeutil.Parse(task.CreatedAt).Format("Jan 02, 2006"),
				completed)
		}
	},
}

func init() {
	listCmd.Flags().StringP("status", "s", "", "Filter by status: Open, \"In Progress\", Closed")
	listCmd.Flags().BoolP("interactive", "i", false, "Interactive browser with TUI")
}
