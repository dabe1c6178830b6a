package smoke

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/draftboard/pkg/logger"
)

// Run executes a full smoke pass against cfg.BaseURL using the default HTTP client.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	return RunWithClient(ctx, cfg, &http.Client{Timeout: cfg.Timeout})
}

// RunWithClient executes a full smoke pass using hc for every request.
func RunWithClient(ctx context.Context, cfg *Config, hc *http.Client) (*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	stats := &Stats{StartTime: time.Now()}
	c := newClient(cfg.BaseURL, hc)

	logger.Get().Info(ctx, "starting draft board smoke run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("reports", cfg.Reports),
		logger.Int("scouts", cfg.Scouts),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout))

	if err := c.health(ctx); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}

	rows, err := c.board(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("fetch board: %w", err)
	}
	if err := verifyBoardOrder(rows); err != nil {
		return stats, err
	}
	stats.BoardSize = len(rows)
	if len(rows) == 0 {
		logger.Get().Warn(ctx, "board is empty, nothing to annotate")
		return finish(ctx, stats), nil
	}

	ids := make([]int, len(rows))
	for i, r := range rows {
		ids[i] = r.PlayerID
	}

	scouts := generateScouts(cfg.Scouts)
	subs := generateSubmissions(cfg.Reports, scouts, ids)
	accepted := submitReports(ctx, cfg, c, subs, stats)

	marked := ids[:min(cfg.Bookmarks, len(ids))]
	for _, id := range marked {
		if err := c.setBookmark(ctx, id); err != nil {
			return stats, fmt.Errorf("bookmark player %d: %w", id, err)
		}
		stats.BookmarksSet++
	}

	q := url.Values{"minGrade": {strconv.Itoa(cfg.MinGrade)}}
	filtered, err := c.board(ctx, q)
	if err != nil {
		return stats, fmt.Errorf("fetch filtered board: %w", err)
	}
	if err := verifyMinGrade(filtered, cfg.MinGrade); err != nil {
		return stats, err
	}
	if err := verifyBoardOrder(filtered); err != nil {
		return stats, err
	}
	stats.FilteredRows = len(filtered)

	watch, err := c.watchlist(ctx)
	if err != nil {
		return stats, fmt.Errorf("fetch watchlist: %w", err)
	}
	if err := verifyWatchlist(watch, marked); err != nil {
		return stats, err
	}
	stats.WatchlistSize = len(watch)

	for _, scout := range scouts {
		groups, err := c.myReports(ctx, scout)
		if err != nil {
			return stats, fmt.Errorf("fetch reports for %s: %w", scout, err)
		}
		if err := verifyMyReports(scout, groups, accepted[scout]); err != nil {
			return stats, err
		}
		stats.MyReportsVerified++
	}

	return finish(ctx, stats), nil
}

// submitReports files subs through a pool of cfg.Workers goroutines and
// returns the number of accepted reports per scout.
func submitReports(ctx context.Context, cfg *Config, c *client, subs []submission, stats *Stats) map[string]int {
	var (
		submitted int64
		failed    int64
		mu        sync.Mutex
		accepted  = make(map[string]int)
		wg        sync.WaitGroup
	)

	work := make(chan submission, cfg.Workers*2)
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range work {
				atomic.AddInt64(&submitted, 1)
				if err := c.submitReport(ctx, s); err != nil {
					atomic.AddInt64(&failed, 1)
					if cfg.Verbose {
						logger.Get().Warn(ctx, "report rejected",
							logger.String("scout", s.Scout),
							logger.Int("playerID", s.PlayerID),
							logger.Error(err))
					}
					continue
				}
				mu.Lock()
				accepted[s.Scout]++
				mu.Unlock()
			}
		}()
	}

	go func() {
		defer close(work)
		for _, s := range subs {
			select {
			case <-ctx.Done():
				return
			case work <- s:
			}
		}
	}()
	wg.Wait()

	stats.ReportsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.ReportsFailed = int(atomic.LoadInt64(&failed))
	stats.ReportsAccepted = stats.ReportsSubmitted - stats.ReportsFailed

	logger.Get().Info(ctx, "report submission completed",
		logger.Int("submitted", stats.ReportsSubmitted),
		logger.Int("accepted", stats.ReportsAccepted),
		logger.Int("failed", stats.ReportsFailed))
	return accepted
}

func finish(ctx context.Context, stats *Stats) *Stats {
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	var perSecond float64
	if stats.Duration > 0 {
		perSecond = float64(stats.ReportsSubmitted) / stats.Duration.Seconds()
	}
	logger.Get().Info(ctx, "smoke run completed",
		logger.Int("boardSize", stats.BoardSize),
		logger.Int("reportsAccepted", stats.ReportsAccepted),
		logger.Int("reportsFailed", stats.ReportsFailed),
		logger.Int("bookmarks", stats.BookmarksSet),
		logger.Int("filteredRows", stats.FilteredRows),
		logger.Int("watchlist", stats.WatchlistSize),
		logger.Int("scoutsVerified", stats.MyReportsVerified),
		logger.Duration("duration", stats.Duration),
		logger.Float64("reportsPerSecond", perSecond))
	return stats
}
