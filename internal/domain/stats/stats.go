// Package stats reduces game logs into season totals and per-game averages.
package stats

import (
	"math"
	"strconv"

	"github.com/okian/draftboard/internal/domain/model"
)

// Stat keys.
const (
	Points         = "pts"
	Assists        = "ast"
	Rebounds       = "reb"
	FieldGoalsMade = "fgm"
	FieldGoalsAtt  = "fga"
	ThreesMade     = "tpm"
	ThreesAtt      = "tpa"
	FreeThrowsMade = "ftm"
	FreeThrowsAtt  = "fta"
	Steals         = "stl"
	Blocks         = "blk"
	Turnovers      = "tov"
	PersonalFouls  = "pf"
	OffRebounds    = "oreb"
	DefRebounds    = "dreb"
)

const percentMultiplier = 100

// NoData is shown wherever a derived value cannot be computed.
const NoData = "—"

// Keys is the fixed stat-key set, in display order.
var Keys = []string{
	Points, Assists, Rebounds,
	FieldGoalsMade, FieldGoalsAtt,
	ThreesMade, ThreesAtt,
	FreeThrowsMade, FreeThrowsAtt,
	Steals, Blocks, Turnovers, PersonalFouls,
	OffRebounds, DefRebounds,
}

// Aggregate sums every key over logs and divides by the number of games.
// It returns nil when logs is empty.
func Aggregate(logs []model.GameLog) *model.Stats {
	if len(logs) == 0 {
		return nil
	}
	games := float64(len(logs))
	totals := make(model.StatMap, len(Keys))
	perGame := make(model.StatMap, len(Keys))
	for _, key := range Keys {
		var sum float64
		for _, g := range logs {
			sum += g.Get(key)
		}
		totals[key] = sum
		perGame[key] = Round1(sum / games)
	}
	return &model.Stats{PerGame: perGame, SeasonTotals: totals}
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Percentage returns made/attempted*100 rounded to one decimal. ok is false
// when nothing was attempted.
func Percentage(m model.StatMap, madeKey, attKey string) (pct float64, ok bool) {
	att := m[attKey]
	if att <= 0 {
		return 0, false
	}
	return Round1(m[madeKey] / att * percentMultiplier), true
}

// FieldGoalPct is the field-goal percentage of m.
func FieldGoalPct(m model.StatMap) (float64, bool) {
	return Percentage(m, FieldGoalsMade, FieldGoalsAtt)
}

// ThreePointPct is the three-point percentage of m.
func ThreePointPct(m model.StatMap) (float64, bool) {
	return Percentage(m, ThreesMade, ThreesAtt)
}

// FreeThrowPct is the free-throw percentage of m.
func FreeThrowPct(m model.StatMap) (float64, bool) {
	return Percentage(m, FreeThrowsMade, FreeThrowsAtt)
}

// Format renders a value with one decimal, or NoData.
func Format(v float64, ok bool) string {
	if !ok {
		return NoData
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatStat renders m[key], or NoData when m is nil or lacks key.
func FormatStat(m model.StatMap, key string) string {
	v, ok := m[key]
	if m == nil || !ok {
		return NoData
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
