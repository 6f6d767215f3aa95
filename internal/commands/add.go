package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bymeSatya/TaskPilot-AI/internal/models"
	"github.com/bymeSatya/TaskPilot-AI/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [task title]",
	Short: "Add a new task",
	Long: `Add a new task.

Modes:
  Interactive: taskpilot add -i (or just 'taskpilot add' with no arguments)
  Quick: taskpilot add "Task title" --desc "details" --tags etl,infra --due-days 3`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initService()
		interactive, _ := cmd.Flags().GetBool("interactive")

		// No args means interactive
		if len(args) == 0 && !interactive {
			interactive = true
		}

		if interactive {
			runInteractiveAdd(cmd, args)
			return
		}
		runDirectAdd(cmd, strings.Join(args, " "))
	},
}

// runInteractiveAdd starts the TUI form, pre-filled from any flags
func runInteractiveAdd(cmd *cobra.Command, args []string) {
	prefilled := make(map[string]string)

	if len(args) > 0 {
		prefilled["title"] = strings.Join(args, " ")
	}
	if desc, _ := cmd.Flags().GetString("desc"); desc != "" {
		prefilled["description"] = desc
	}
	if tags, _ := cmd.Flags().GetStringSlice("tags"); len(tags) > 0 {
		prefilled["tags"] = strings.Join(tags, ", ")
	}
	if dueDays, _ := cmd.Flags().GetInt("due-days"); dueDays > 0 {
		prefilled["due_days"] = fmt.Sprintf("%d", dueDays)
	}

	if err := tui.RunAddTaskTUI(svc, prefilled); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// runDirectAdd creates the task without the TUI
func runDirectAdd(cmd *cobra.Command, title string) {
	desc, _ := cmd.Flags().GetString("desc")
	tags, _ := cmd.Flags().GetStringSlice("tags")
	dueDays, _ := cmd.Flags().GetInt("due-days")

	task, err := svc.Create(title, desc, tags, dueDays)
	if err != nil {
		fmt.Printf("Error creating task: %v\n", err)
		return
	}

	fmt.Printf("✅ Created task %s: %s\n", task.ID, task.Title)
	if len(task.Tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(task.Tags, ", "))
	}
	if task.DueDays != models.DefaultDueDays {
		fmt.Printf("  Due days: %d\n", task.DueDays)
	}
}

func init() {
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	addCmd.Flags().StringP("desc", "d", "", "Task description")
	addCmd.Flags().StringSliceP("tags", "t", []string{}, "Comma-separated tags")
	addCmd.Flags().Int("due-days", 0, "Urgency threshold in days (default 5)")
}
