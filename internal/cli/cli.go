// Package cli holds the flag and logging setup shared by the commands.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultDatabase is where the commands keep the dataset unless told otherwise.
	DefaultDatabase = "/tmp/race-stats.json"

	EnvDatabase = "RACE_STATS_DB"
	EnvLogLevel = "LOG_LEVEL"
)

// Value returns flagValue if set, else the environment variable envKey,
// else defaultValue.
func Value(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return defaultValue
}

// SetupLogging configures the global logger. Unknown levels fall back to info.
func SetupLogging(level string, out io.Writer) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	})
}
