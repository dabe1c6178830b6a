package smoke

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/okian/draftboard/pkg/logger"
)

const logFilePermission = 0600

// SetupLogging initialises the logger to write to stdout and to logFile.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if logFile == "" {
		logFile = "smoke_" + time.Now().Format("20060102_150405") + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	if err := logger.Init(logger.WithWriter(io.MultiWriter(os.Stdout, file))); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the smoke tool.
func ShowHelp() {
	os.Stdout.WriteString(`Draft Board Smoke Tool
======================

Files generated scouting reports against a running draft board from several
scouts at once, bookmarks the top of the board and checks the board, watchlist
and my-reports views.

Usage:
  go run cmd/smoke/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -reports int
        Number of reports to submit (default 200)
  -scouts int
        Number of generated scouts (default 5)
  -bookmarks int
        Number of top players to bookmark (default 3)
  -min-grade int
        Grade floor used for the filtered board check (default 6)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 10s)
  -log string
        Log file for run output (default: smoke_TIMESTAMP.log)
  -verbose
        Log every rejected report
  -help
        Show this help message

Examples:
  # Run against a local board
  go run cmd/smoke/main.go

  # Heavier run against another host
  go run cmd/smoke/main.go -reports 5000 -scouts 20 -workers 16 -url http://localhost:8080
`)
}
