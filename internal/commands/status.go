package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bymeSatya/TaskPilot-AI/internal/models"
	"github.com/bymeSatya/TaskPilot-AI/internal/timeutil"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Close a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initService()

		task, err := svc.SetStatus(args[0], string(models.StatusClosed))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Closed task %s: %s\n", task.ID, task.Title)
		if task.CompletedAt != nil {
			fmt.Printf("Completed at: %s\n", timeutil.Parse(*task.CompletedAt).Format("15:04:05"))
		}
	},
}

var reopenCmd = &cobra.Command{
	Use:   "reopen [task-id]",
	Short: "Reopen a closed task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initService()

		task, err := svc.SetStatus(args[0], string(models.StatusOpen))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("↩️  Reopened task %s: %s\n", task.ID, task.Title)
		fmt.Printf("Status: %s\n", task.Status)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status [task-id] [status]",
	Short: "Set a task's status (Open, \"In Progress\", Closed)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initService()

		task, err := svc.SetStatus(args[0], args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🔄 Task %s is now %s\n", task.ID, task.Status)
	},
}
