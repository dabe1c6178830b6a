// Package snapshot loads the static raw record store from disk.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/okian/draftboard/internal/domain/model"
)

// Loader provides the raw record store.
type Loader interface {
	Load(ctx context.Context) (*model.Snapshot, error)
}

// FileLoader reads a JSON snapshot with the collections bio, scoutRankings,
// measurements and game_logs.
type FileLoader struct {
	path string
}

// NewFileLoader constructs a loader for the snapshot at path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load opens and decodes the snapshot file.
func (l *FileLoader) Load(ctx context.Context) (*model.Snapshot, error) {
	if l == nil || l.path == "" {
		return nil, ErrNoPath
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a snapshot from r.
func Decode(r io.Reader) (*model.Snapshot, error) {
	var s model.Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &s, nil
}

// Static serves an in-memory snapshot.
type Static struct {
	Snapshot *model.Snapshot
}

// Load returns the wrapped snapshot.
func (s Static) Load(_ context.Context) (*model.Snapshot, error) {
	if s.Snapshot == nil {
		return &model.Snapshot{}, nil
	}
	return s.Snapshot, nil
}
