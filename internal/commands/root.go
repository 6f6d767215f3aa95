package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bymeSatya/TaskPilot-AI/internal/assistant"
	"github.com/bymeSatya/TaskPilot-AI/internal/config"
	"github.com/bymeSatya/TaskPilot-AI/internal/logger"
	"github.com/bymeSatya/TaskPilot-AI/internal/store"
	"github.com/bymeSatya/TaskPilot-AI/internal/tasks"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taskpilot",
	Short: "A task tracker with an AI copilot",
	Long: `taskpilot is a command-line task tracker. Create tasks, watch their
age-based urgency on the dashboard, keep an activity log per task, and ask
the AI assistant for guidance on any of them.`,
}

var (
	cfg *config.Config
	log *zap.Logger
	svc *tasks.Service
)

// initService wires config, logging, store, and the lifecycle service.
// Called at the top of every command's Run.
func initService() {
	cfg = config.Load()
	var err error
	log, err = logger.New(logger.Config(cfg.Logger))
	if err != nil {
		log = zap.NewNop()
	}
	svc = tasks.NewService(store.New(cfg.DataFile, log))
}

// newAssistant builds the AI client from the loaded config.
func newAssistant() *assistant.Client {
	return assistant.NewClient(assistant.Config{
		APIKey:  cfg.Assistant.APIKey,
		Model:   cfg.Assistant.Model,
		BaseURL: cfg.Assistant.BaseURL,
		Timeout: cfg.Assistant.Timeout,
	}, log)
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(reopenCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(versionCmd)
}
