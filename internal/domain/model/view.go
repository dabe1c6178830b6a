package model

// StatMap holds one value per statistical category.
type StatMap map[string]float64

// Stats summarises a player's game logs. It only exists for players with at
// least one log.
type Stats struct {
	PerGame      StatMap `json:"perGame"`
	SeasonTotals StatMap `json:"seasonTotals"`
}

// StatMode selects which StatMap a consumer reads.
type StatMode string

// Stat modes.
const (
	PerGame      StatMode = "perGame"
	SeasonTotals StatMode = "seasonTotals"
)

// ParseStatMode accepts "perGame" or "seasonTotals"; empty means per game.
func ParseStatMode(s string) (StatMode, bool) {
	switch StatMode(s) {
	case "", PerGame:
		return PerGame, true
	case SeasonTotals:
		return SeasonTotals, true
	default:
		return "", false
	}
}

// Map returns the StatMap for mode, or nil when there are no stats.
func (s *Stats) Map(mode StatMode) StatMap {
	if s == nil {
		return nil
	}
	if mode == SeasonTotals {
		return s.SeasonTotals
	}
	return s.PerGame
}

// PlayerView is the denormalized aggregate for one player. Ranking and
// Measurement are nil when no record matched; Stats is nil when the player
// has no game logs. Views are shared and must not be mutated.
type PlayerView struct {
	Bio         Bio          `json:"bio"`
	Ranking     *Ranking     `json:"ranking"`
	Measurement *Measurement `json:"measurement"`
	Stats       *Stats       `json:"stats,omitempty"`
}

// PlayerID is a shorthand for v.Bio.PlayerID.
func (v *PlayerView) PlayerID() int {
	return v.Bio.PlayerID
}
