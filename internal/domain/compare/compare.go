// Package compare lines up two players side by side.
package compare

import (
	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/stats"
)

// Side names the player that leads a row.
type Side string

// Sides.
const (
	None  Side = ""
	Left  Side = "left"
	Right Side = "right"
)

// FieldGoalPctKey is the summary row key for field-goal percentage.
const FieldGoalPctKey = "fgPct"

// Row is one compared value. Left or Right is nil when that player has no
// value for it.
type Row struct {
	Key    string   `json:"key"`
	Label  string   `json:"label"`
	Left   *float64 `json:"left"`
	Right  *float64 `json:"right"`
	Leader Side     `json:"leader,omitempty"`
}

// Comparison holds every compared row for two players.
type Comparison struct {
	Mode         model.StatMode    `json:"mode"`
	Left         *model.PlayerView `json:"left"`
	Right        *model.PlayerView `json:"right"`
	Summary      []Row             `json:"summary"`
	Stats        []Row             `json:"stats"`
	Measurements []Row             `json:"measurements"`
}

var summaryKeys = []struct{ key, label string }{
	{stats.Points, "PTS"},
	{stats.Rebounds, "REB"},
	{stats.Assists, "AST"},
}

// Players compares left and right using the stat map selected by mode.
func Players(left, right *model.PlayerView, mode model.StatMode) Comparison {
	lm, rm := left.Stats.Map(mode), right.Stats.Map(mode)
	c := Comparison{Mode: mode, Left: left, Right: right}

	for _, s := range summaryKeys {
		c.Summary = append(c.Summary, newRow(s.key, s.label, statValue(lm, s.key), statValue(rm, s.key)))
	}
	c.Summary = append(c.Summary, newRow(FieldGoalPctKey, "FG%", pct(lm), pct(rm)))

	for _, key := range stats.Keys {
		c.Stats = append(c.Stats, newRow(key, key, statValue(lm, key), statValue(rm, key)))
	}

	for _, name := range model.MeasurementNames(left.Measurement, right.Measurement) {
		c.Measurements = append(c.Measurements, newRow(name, model.MeasurementLabel(name),
			measurementValue(left.Measurement, name), measurementValue(right.Measurement, name)))
	}
	return c
}

func newRow(key, label string, l, r *float64) Row {
	return Row{Key: key, Label: label, Left: l, Right: r, Leader: leader(l, r)}
}

// leader picks the higher value; missing values and ties have no leader.
func leader(l, r *float64) Side {
	switch {
	case l == nil || r == nil || *l == *r:
		return None
	case *l > *r:
		return Left
	default:
		return Right
	}
}

func statValue(m model.StatMap, key string) *float64 {
	v, ok := m[key]
	if !ok {
		return nil
	}
	return &v
}

func pct(m model.StatMap) *float64 {
	v, ok := stats.FieldGoalPct(m)
	if !ok {
		return nil
	}
	return &v
}

func measurementValue(m *model.Measurement, name string) *float64 {
	v, ok := m.Value(name)
	if !ok {
		return nil
	}
	return &v
}
