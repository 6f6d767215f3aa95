package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings for the CLI.
type Config struct {
	DataFile  string
	Logger    LoggerConfig
	Assistant AssistantConfig
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// AssistantConfig holds the AI guidance service settings. The API key is a
// concern of this boundary only; the task lifecycle never sees it.
type AssistantConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Load reads .env (when present) and the TASKPILOT_* environment variables,
// falling back to defaults. It never fails: a missing .env or unreadable home
// directory degrades to a tasks file in the working directory.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DataFile: getEnv("TASKPILOT_DATA_FILE", defaultDataFile()),
		Logger: LoggerConfig{
			Level:    getEnv("TASKPILOT_LOG_LEVEL", "warn"),
			Encoding: getEnv("TASKPILOT_LOG_ENCODING", "console"),
		},
		Assistant: AssistantConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			Model:   getEnv("TASKPILOT_AI_MODEL", ""),
			BaseURL: getEnv("TASKPILOT_AI_BASE_URL", ""),
			Timeout: getDuration("TASKPILOT_AI_TIMEOUT", 0),
		},
	}
}

// defaultDataFile returns the path to the tasks file under the user's home
// directory.
func defaultDataFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "tasks.json"
	}
	return filepath.Join(homeDir, ".taskpilot", "tasks.json")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
