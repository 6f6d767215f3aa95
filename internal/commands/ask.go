package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bymeSatya/TaskPilot-AI/internal/assistant"
)

var askCmd = &cobra.Command{
	Use:   "ask [task-id] [question]",
	Short: "Ask the AI assistant about a task",
	Long: `Ask the AI assistant for guidance on a task. The task's title,
description, and recent activity are sent along as context.

The assistant is best effort: without an OPENAI_API_KEY, or when the service
is unreachable, you get an explanatory message instead of a suggestion. Task
data stays local either way.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initService()

		task, err := svc.Get(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		question := strings.Join(args[1:], " ")
		reply := newAssistant().Ask(cmd.Context(), assistant.TaskContext(task), []assistant.Message{
			{Role: "user", Content: question},
		})

		fmt.Printf("🤖 %s\n", reply)
	},
}
