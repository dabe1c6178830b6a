// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/okian/draftboard/internal/adapters/annotations"
	"github.com/okian/draftboard/internal/adapters/snapshot"
	"github.com/okian/draftboard/internal/domain/compare"
	"github.com/okian/draftboard/internal/domain/filter"
	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/ranking"
	"github.com/okian/draftboard/internal/domain/types"
	"github.com/okian/draftboard/internal/domain/view"
	"github.com/okian/draftboard/pkg/logger"
	"github.com/okian/draftboard/pkg/metrics"
)

const defaultTopN = 10

// Service serves the draft board. The snapshot is loaded once by Start and
// the built views are shared read-only by every call; annotations go through
// the configured store.
type Service struct {
	mu sync.RWMutex

	// Collaborators
	loader snapshot.Loader
	store  annotations.Store

	// Configuration
	topN int

	// State
	views   []*model.PlayerView
	index   map[int]*model.PlayerView
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLoader sets the source of the raw snapshot.
func WithLoader(l snapshot.Loader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithStore sets the annotation store. Defaults to an in-memory store.
func WithStore(st annotations.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithTopN sets the average-rank threshold used for top-of-board filtering.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		store: annotations.NewMemoryStore(),
		topN:  defaultTopN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the snapshot and builds the player views.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.loader == nil {
		return ErrNoLoader
	}

	s.logger.Info(ctx, "starting draft board service...")

	snap, err := s.loader.Load(ctx)
	if err != nil {
		metrics.RecordSnapshotLoadError()
		return fmt.Errorf("load snapshot: %w", err)
	}

	start := time.Now()
	s.views = view.Build(snap)
	s.index = view.Index(s.views)
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	withStats, unranked := coverage(s.views)
	metrics.RecordViewBuild(len(s.views), withStats, unranked, elapsed)

	s.started = true
	s.logger.Info(ctx, "draft board service started",
		logger.Int("players", len(s.views)),
		logger.Int("playersWithStats", withStats),
		logger.Int("unranked", unranked),
		logger.Float64("buildMs", elapsed),
	)
	return nil
}

// Stop releases the annotation store if it holds resources.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping draft board service...")

	if closer, ok := s.store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			s.logger.Warn(context.Background(), "failed to close annotation store", logger.Error(err))
		}
	}

	s.views = nil
	s.index = nil
	s.started = false
	s.logger.Info(context.Background(), "draft board service stopped")
}

// TopN returns the threshold applied by top-of-board filtering.
func (s *Service) TopN() int {
	return s.topN
}

func (s *Service) loaded() ([]*model.PlayerView, map[int]*model.PlayerView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, nil, ErrNotStarted
	}
	return s.views, s.index, nil
}

func (s *Service) player(id int) (*model.PlayerView, error) {
	_, index, err := s.loaded()
	if err != nil {
		return nil, err
	}
	v, ok := index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
	}
	return v, nil
}

// Players returns every view in snapshot order.
func (s *Service) Players(_ context.Context) ([]*model.PlayerView, error) {
	views, _, err := s.loaded()
	return views, err
}

// Player returns one view by playerId.
func (s *Service) Player(_ context.Context, id int) (*model.PlayerView, error) {
	return s.player(id)
}

// Board filters and orders the views by spec and renders board rows.
func (s *Service) Board(ctx context.Context, spec filter.Spec) ([]types.Row, error) {
	views, _, err := s.loaded()
	if err != nil {
		return nil, err
	}
	reports, err := s.store.AllReports(ctx)
	if err != nil {
		metrics.RecordAnnotationError("all_reports")
		return nil, err
	}
	if spec.Mode == "" {
		spec.Mode = filter.ModeBoard
	}

	start := time.Now()
	result := filter.Apply(views, spec, filter.ReportIndex(reports))
	metrics.RecordFilter(string(spec.Mode), len(result), float64(time.Since(start).Microseconds())/1000)

	rows := types.Rows(result)
	if err := s.decorate(ctx, rows, reports); err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "board filtered",
		logger.String("mode", string(spec.Mode)),
		logger.Int("matches", len(rows)),
	)
	return rows, nil
}

// Search returns the players whose name contains name, in snapshot order.
func (s *Service) Search(ctx context.Context, name string) ([]types.Row, error) {
	return s.Board(ctx, filter.Spec{Name: name, Mode: filter.ModeSearch})
}

func (s *Service) decorate(ctx context.Context, rows []types.Row, reports map[int][]model.Report) error {
	ids, err := s.store.BookmarkedIDs(ctx)
	if err != nil {
		metrics.RecordAnnotationError("bookmarked_ids")
		return err
	}
	bookmarked := make(map[int]bool, len(ids))
	for _, id := range ids {
		bookmarked[id] = true
	}
	for i := range rows {
		rows[i].Bookmarked = bookmarked[rows[i].PlayerID]
		if last, ok := model.Last(reports[rows[i].PlayerID]); ok {
			rows[i].LastReport = &last
		}
	}
	return nil
}

// Profile returns the full page for one player.
func (s *Service) Profile(ctx context.Context, id int) (types.Profile, error) {
	v, err := s.player(id)
	if err != nil {
		return types.Profile{}, err
	}
	reports, err := s.store.Reports(ctx, id)
	if err != nil {
		metrics.RecordAnnotationError("reports")
		return types.Profile{}, err
	}
	bookmarked, err := s.store.Bookmarked(ctx, id)
	if err != nil {
		metrics.RecordAnnotationError("bookmarked")
		return types.Profile{}, err
	}
	return types.NewProfile(v, reports, bookmarked), nil
}

// Compare lines up two players using the stat map selected by mode.
func (s *Service) Compare(_ context.Context, left, right int, mode model.StatMode) (compare.Comparison, error) {
	lv, err := s.player(left)
	if err != nil {
		return compare.Comparison{}, err
	}
	rv, err := s.player(right)
	if err != nil {
		return compare.Comparison{}, err
	}
	return compare.Players(lv, rv, mode), nil
}

// Watchlist returns the bookmarked players in snapshot order.
func (s *Service) Watchlist(ctx context.Context) ([]types.Row, error) {
	views, _, err := s.loaded()
	if err != nil {
		return nil, err
	}
	ids, err := s.store.BookmarkedIDs(ctx)
	if err != nil {
		metrics.RecordAnnotationError("bookmarked_ids")
		return nil, err
	}
	marked := make(map[int]bool, len(ids))
	for _, id := range ids {
		marked[id] = true
	}

	var picked []*model.PlayerView
	for _, v := range views {
		if marked[v.PlayerID()] {
			picked = append(picked, v)
		}
	}
	metrics.UpdateBookmarkedPlayers(len(picked))

	reports, err := s.store.AllReports(ctx)
	if err != nil {
		metrics.RecordAnnotationError("all_reports")
		return nil, err
	}
	rows := types.Rows(picked)
	if err := s.decorate(ctx, rows, reports); err != nil {
		return nil, err
	}
	return rows, nil
}

// SetBookmark sets or clears a player's bookmark flag.
func (s *Service) SetBookmark(ctx context.Context, id int, on bool) error {
	if _, err := s.player(id); err != nil {
		return err
	}
	if err := s.store.SetBookmark(ctx, id, on); err != nil {
		metrics.RecordAnnotationError("set_bookmark")
		return err
	}

	state := "off"
	if on {
		state = "on"
	}
	metrics.RecordBookmarkToggle(state)
	s.logger.Debug(ctx, "bookmark updated", logger.Int("playerId", id), logger.Bool("bookmarked", on))
	return nil
}

// Reports returns a player's reports in append order.
func (s *Service) Reports(ctx context.Context, id int) ([]model.Report, error) {
	if _, err := s.player(id); err != nil {
		return nil, err
	}
	reports, err := s.store.Reports(ctx, id)
	if err != nil {
		metrics.RecordAnnotationError("reports")
		return nil, err
	}
	if reports == nil {
		reports = []model.Report{}
	}
	return reports, nil
}

// SubmitReport appends a report for a player. A blank author defaults to
// the session's scout email.
func (s *Service) SubmitReport(ctx context.Context, sess Session, id int, r model.Report) (model.Report, error) {
	if _, err := s.player(id); err != nil {
		return model.Report{}, err
	}
	if r.Name == "" {
		r.Name = sess.ScoutEmail
	}

	stored, err := s.store.AppendReport(ctx, id, r)
	switch {
	case errors.Is(err, annotations.ErrInvalidReport):
		metrics.RecordReportRejected()
		return model.Report{}, err
	case err != nil:
		metrics.RecordAnnotationError("append_report")
		return model.Report{}, err
	}

	metrics.RecordReportSubmitted()
	s.logger.Info(ctx, "report submitted",
		logger.Int("playerId", id),
		logger.String("reportId", stored.ID),
		logger.String("interest", string(stored.Interest)),
		logger.String("type", string(stored.Type)),
	)
	return stored, nil
}

// MyReports groups, in snapshot order, the reports written by the session's
// scout. Players without such reports are omitted.
func (s *Service) MyReports(ctx context.Context, sess Session) ([]types.PlayerReports, error) {
	views, _, err := s.loaded()
	if err != nil {
		return nil, err
	}
	all, err := s.store.AllReports(ctx)
	if err != nil {
		metrics.RecordAnnotationError("all_reports")
		return nil, err
	}

	out := []types.PlayerReports{}
	for _, v := range views {
		var mine []model.Report
		for _, r := range all[v.PlayerID()] {
			if sess.Owns(r) {
				mine = append(mine, r)
			}
		}
		if len(mine) == 0 {
			continue
		}
		out = append(out, types.PlayerReports{
			PlayerID: v.PlayerID(),
			Name:     v.Bio.Name,
			Team:     v.Bio.CurrentTeam,
			Reports:  mine,
		})
	}
	return out, nil
}

// HealthCheck pings the annotation store when it supports it.
func (s *Service) HealthCheck(ctx context.Context) error {
	if _, _, err := s.loaded(); err != nil {
		return err
	}
	if hc, ok := s.store.(interface{ HealthCheck(context.Context) error }); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started": s.started,
		"topN":    s.topN,
	}
	if s.started {
		withStats, unranked := coverage(s.views)
		stats["players"] = len(s.views)
		stats["playersWithStats"] = withStats
		stats["unranked"] = unranked
	}
	return stats
}

// coverage counts the views that have stats and the views without a rank.
func coverage(views []*model.PlayerView) (withStats, unranked int) {
	for _, v := range views {
		if v.Stats != nil {
			withStats++
		}
		if !ranking.Average(v.Ranking).Ranked() {
			unranked++
		}
	}
	return withStats, unranked
}
