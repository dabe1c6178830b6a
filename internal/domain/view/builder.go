// Package view composes raw records into PlayerViews.
package view

import (
	"github.com/okian/draftboard/internal/domain/linker"
	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/stats"
)

// Build produces one PlayerView per bio, in bio order. It has no side
// effects; callers should keep the result since the snapshot is static.
func Build(s *model.Snapshot) []*model.PlayerView {
	if s == nil {
		return nil
	}
	l := linker.New(s)
	views := make([]*model.PlayerView, 0, len(s.Bios))
	for _, bio := range s.Bios {
		links := l.Link(bio.PlayerID)
		views = append(views, &model.PlayerView{
			Bio:         bio,
			Ranking:     links.Ranking,
			Measurement: links.Measurement,
			Stats:       stats.Aggregate(links.GameLogs),
		})
	}
	return views
}

// Index maps playerId to view. When bios repeat an id the first view wins.
func Index(views []*model.PlayerView) map[int]*model.PlayerView {
	idx := make(map[int]*model.PlayerView, len(views))
	for _, v := range views {
		if _, ok := idx[v.PlayerID()]; !ok {
			idx[v.PlayerID()] = v
		}
	}
	return idx
}
