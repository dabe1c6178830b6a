package annotations

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/okian/draftboard/internal/domain/model"
)

// MemoryStore keeps annotations in a string key-value map, encoding values
// the same way a browser key-value store would: "true"/"false" flags and
// JSON report arrays.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Bookmarked implements Store.
func (s *MemoryStore) Bookmarked(_ context.Context, playerID int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[BookmarkKey(playerID)] == "true", nil
}

// SetBookmark implements Store.
func (s *MemoryStore) SetBookmark(_ context.Context, playerID int, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[BookmarkKey(playerID)] = fmt.Sprint(on)
	return nil
}

// BookmarkedIDs implements Store.
func (s *MemoryStore) BookmarkedIDs(_ context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []int
	for k, v := range s.data {
		if id, ok := playerIDFromKey(k, BookmarkPrefix); ok && v == "true" {
			ids = append(ids, id)
		}
	}
	return sortedIDs(ids), nil
}

// AppendReport implements Store.
func (s *MemoryStore) AppendReport(_ context.Context, playerID int, r model.Report) (model.Report, error) {
	r, err := NormalizeReport(r)
	if err != nil {
		return model.Report{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, err := s.decodeReports(ReportsKey(playerID))
	if err != nil {
		return model.Report{}, err
	}
	raw, err := json.Marshal(append(existing, r))
	if err != nil {
		return model.Report{}, fmt.Errorf("%w: encode reports: %w", ErrStore, err)
	}
	s.data[ReportsKey(playerID)] = string(raw)
	return r, nil
}

// Reports implements Store.
func (s *MemoryStore) Reports(_ context.Context, playerID int) ([]model.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.decodeReports(ReportsKey(playerID))
}

// AllReports implements Store.
func (s *MemoryStore) AllReports(_ context.Context) (map[int][]model.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int][]model.Report)
	for k := range s.data {
		id, ok := playerIDFromKey(k, ReportsPrefix)
		if !ok {
			continue
		}
		reports, err := s.decodeReports(k)
		if err != nil {
			return nil, err
		}
		if len(reports) > 0 {
			out[id] = reports
		}
	}
	return out, nil
}

// decodeReports must be called with s.mu held.
func (s *MemoryStore) decodeReports(key string) ([]model.Report, error) {
	raw, ok := s.data[key]
	if !ok || raw == "" {
		return nil, nil
	}
	var reports []model.Report
	if err := json.Unmarshal([]byte(raw), &reports); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrStore, key, err)
	}
	return reports, nil
}
