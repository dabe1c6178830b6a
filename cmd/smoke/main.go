package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/draftboard/internal/smoke"
)

const (
	defaultWorkers    = 2 // multiplier for runtime.NumCPU()
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL   = flag.String("url", smoke.DefaultBaseURL, "Base URL of the service")
		reports   = flag.Int("reports", smoke.DefaultReports, "Number of reports to submit")
		scouts    = flag.Int("scouts", smoke.DefaultScouts, "Number of generated scouts")
		bookmarks = flag.Int("bookmarks", smoke.DefaultBookmarks, "Number of top players to bookmark")
		minGrade  = flag.Int("min-grade", smoke.DefaultMinGrade, "Grade floor used for the filtered board check")
		workers   = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout   = flag.Duration("timeout", smoke.DefaultTimeout, "HTTP request timeout")
		logFile   = flag.String("log", "", "Log file for run output (default: smoke_TIMESTAMP.log)")
		verbose   = flag.Bool("verbose", false, "Log every rejected report")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		smoke.ShowHelp()
		return
	}

	if err := smoke.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	cfg := &smoke.Config{
		BaseURL:   *baseURL,
		Reports:   *reports,
		Scouts:    *scouts,
		Bookmarks: *bookmarks,
		Workers:   *workers,
		MinGrade:  *minGrade,
		Timeout:   *timeout,
		Verbose:   *verbose,
	}

	if _, err := smoke.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("Smoke run failed: " + err.Error() + "\n")
		cancel()
		os.Exit(1)
	}
}
