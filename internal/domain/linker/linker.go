// Package linker joins the raw record collections on playerId.
package linker

import "github.com/okian/draftboard/internal/domain/model"

// Links holds the records that share one playerId. Ranking and Measurement
// are nil when no record matched.
type Links struct {
	Ranking     *model.Ranking
	Measurement *model.Measurement
	GameLogs    []model.GameLog
}

// Linker resolves records by playerId over an indexed snapshot.
//
// When a collection holds several ranking or measurement records for the same
// player, the first one in store order wins. Game logs keep store order.
type Linker struct {
	rankings     map[int]*model.Ranking
	measurements map[int]*model.Measurement
	gameLogs     map[int][]model.GameLog
}

// New indexes the snapshot. The snapshot is only read.
func New(s *model.Snapshot) *Linker {
	l := &Linker{
		rankings:     make(map[int]*model.Ranking, len(s.Rankings)),
		measurements: make(map[int]*model.Measurement, len(s.Measurements)),
		gameLogs:     make(map[int][]model.GameLog),
	}
	for i := range s.Rankings {
		r := &s.Rankings[i]
		if _, seen := l.rankings[r.PlayerID]; !seen {
			l.rankings[r.PlayerID] = r
		}
	}
	for i := range s.Measurements {
		m := &s.Measurements[i]
		if _, seen := l.measurements[m.PlayerID]; !seen {
			l.measurements[m.PlayerID] = m
		}
	}
	for _, g := range s.GameLogs {
		l.gameLogs[g.PlayerID] = append(l.gameLogs[g.PlayerID], g)
	}
	return l
}

// Link returns every record for playerID.
func (l *Linker) Link(playerID int) Links {
	return Links{
		Ranking:     l.rankings[playerID],
		Measurement: l.measurements[playerID],
		GameLogs:    l.gameLogs[playerID],
	}
}
