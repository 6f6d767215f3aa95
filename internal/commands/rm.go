package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm [task-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a task and its activity permanently",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initService()

		removed, err := svc.Delete(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !removed {
			fmt.Printf("Nothing to delete: no task with id '%s'\n", args[0])
			return
		}
		fmt.Printf("🗑️  Deleted task %s\n", args[0])
	},
}
