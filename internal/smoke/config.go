// Package smoke drives a running draft board over HTTP: it files generated
// scouting reports from several scouts at once, toggles bookmarks and then
// checks that the board, watchlist and my-reports views agree with what was
// written.
package smoke

import (
	"fmt"
	"time"
)

// Defaults for a smoke run.
const (
	DefaultBaseURL   = "http://localhost:9080"
	DefaultReports   = 200
	DefaultScouts    = 5
	DefaultBookmarks = 3
	DefaultWorkers   = 8
	DefaultTimeout   = 10 * time.Second
	DefaultMinGrade  = 6
)

// Config holds the settings for a smoke run.
type Config struct {
	BaseURL   string
	Reports   int
	Scouts    int
	Bookmarks int
	Workers   int
	MinGrade  int
	Timeout   time.Duration
	Verbose   bool
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		Reports:   DefaultReports,
		Scouts:    DefaultScouts,
		Bookmarks: DefaultBookmarks,
		Workers:   DefaultWorkers,
		MinGrade:  DefaultMinGrade,
		Timeout:   DefaultTimeout,
	}
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	switch {
	case c.BaseURL == "":
		return fmt.Errorf("%w: base url is required", ErrInvalidConfig)
	case c.Reports < 0:
		return fmt.Errorf("%w: reports must be >= 0", ErrInvalidConfig)
	case c.Scouts <= 0:
		return fmt.Errorf("%w: scouts must be > 0", ErrInvalidConfig)
	case c.Bookmarks < 0:
		return fmt.Errorf("%w: bookmarks must be >= 0", ErrInvalidConfig)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be > 0", ErrInvalidConfig)
	case c.MinGrade < 0 || c.MinGrade > 10:
		return fmt.Errorf("%w: min grade must be in 0-10", ErrInvalidConfig)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be > 0", ErrInvalidConfig)
	}
	return nil
}

// Stats summarises a finished run.
type Stats struct {
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
	BoardSize         int
	ReportsSubmitted  int
	ReportsAccepted   int
	ReportsFailed     int
	BookmarksSet      int
	FilteredRows      int
	WatchlistSize     int
	MyReportsVerified int
}
