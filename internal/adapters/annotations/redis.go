package annotations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/okian/draftboard/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

const (
	pingTimeout = 5 * time.Second
	scanCount   = 100
)

// RedisStore keeps bookmarks as string flags and reports as Redis lists of
// JSON documents, so appends are a single RPUSH.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// NewRedisStoreFromURL connects to redisURL and verifies the connection.
func NewRedisStoreFromURL(ctx context.Context, redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse redis url: %w", ErrStore, err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping redis: %w", ErrStore, err)
	}
	return &RedisStore{client: client}, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// HealthCheck pings Redis.
func (s *RedisStore) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Bookmarked implements Store.
func (s *RedisStore) Bookmarked(ctx context.Context, playerID int) (bool, error) {
	v, err := s.client.Get(ctx, BookmarkKey(playerID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: get bookmark: %w", ErrStore, err)
	}
	return v == "true", nil
}

// SetBookmark implements Store.
func (s *RedisStore) SetBookmark(ctx context.Context, playerID int, on bool) error {
	if err := s.client.Set(ctx, BookmarkKey(playerID), strconv.FormatBool(on), 0).Err(); err != nil {
		return fmt.Errorf("%w: set bookmark: %w", ErrStore, err)
	}
	return nil
}

// BookmarkedIDs implements Store.
func (s *RedisStore) BookmarkedIDs(ctx context.Context) ([]int, error) {
	keys, err := s.scan(ctx, BookmarkPrefix+"*")
	if err != nil {
		return nil, err
	}
	var ids []int
	for _, k := range keys {
		id, ok := playerIDFromKey(k, BookmarkPrefix)
		if !ok {
			continue
		}
		on, err := s.Bookmarked(ctx, id)
		if err != nil {
			return nil, err
		}
		if on {
			ids = append(ids, id)
		}
	}
	return sortedIDs(ids), nil
}

// AppendReport implements Store.
func (s *RedisStore) AppendReport(ctx context.Context, playerID int, r model.Report) (model.Report, error) {
	r, err := NormalizeReport(r)
	if err != nil {
		return model.Report{}, err
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return model.Report{}, fmt.Errorf("%w: encode report: %w", ErrStore, err)
	}
	if err := s.client.RPush(ctx, ReportsKey(playerID), raw).Err(); err != nil {
		return model.Report{}, fmt.Errorf("%w: append report: %w", ErrStore, err)
	}
	return r, nil
}

// Reports implements Store.
func (s *RedisStore) Reports(ctx context.Context, playerID int) ([]model.Report, error) {
	items, err := s.client.LRange(ctx, ReportsKey(playerID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: list reports: %w", ErrStore, err)
	}
	reports := make([]model.Report, 0, len(items))
	for _, item := range items {
		var r model.Report
		if err := json.Unmarshal([]byte(item), &r); err != nil {
			return nil, fmt.Errorf("%w: decode report: %w", ErrStore, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// AllReports implements Store.
func (s *RedisStore) AllReports(ctx context.Context) (map[int][]model.Report, error) {
	keys, err := s.scan(ctx, ReportsPrefix+"*")
	if err != nil {
		return nil, err
	}
	out := make(map[int][]model.Report, len(keys))
	for _, k := range keys {
		id, ok := playerIDFromKey(k, ReportsPrefix)
		if !ok {
			continue
		}
		reports, err := s.Reports(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(reports) > 0 {
			out[id] = reports
		}
	}
	return out, nil
}

func (s *RedisStore) scan(ctx context.Context, match string) ([]string, error) {
	var keys []string
	seen := make(map[string]struct{})
	iter := s.client.Scan(ctx, 0, match, scanCount).Iterator()
	for iter.Next(ctx) {
		// SCAN may return a key more than once.
		if _, dup := seen[iter.Val()]; dup {
			continue
		}
		seen[iter.Val()] = struct{}{}
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan %s: %w", ErrStore, match, err)
	}
	return keys, nil
}
