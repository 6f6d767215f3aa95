package commands

import (
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note [task-id] [text]",
	Short: "Append an activity note to a task",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initService()

		who, _ := cmd.Flags().GetString("who")
		if who == "" {
			who = defaultActor()
		}

		task, err := svc.AddActivity(args[0], who, strings.Join(args[1:], " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		last := task.LastActivity()
		fmt.Printf("📝 Added note to %s (%d update(s) total)\n", task.ID, len(task.Activity))
		fmt.Printf("  %s — %s\n", last.Who, last.Text)
	},
}

// defaultActor labels the note with the OS user when --who is not given.
func defaultActor() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "me"
}

func init() {
	noteCmd.Flags().StringP("who", "w", "", "Actor label for the note")
}
