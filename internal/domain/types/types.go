// Package types contains the display shapes handed to presentation layers.
package types

import (
	"strconv"

	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/ranking"
	"github.com/okian/draftboard/internal/domain/stats"
)

// Row is one line of the board list view. Missing values render as a dash.
type Row struct {
	Position      int               `json:"position"`
	PlayerID      int               `json:"playerId"`
	Name          string            `json:"name"`
	Role          string            `json:"role,omitempty"`
	Team          string            `json:"team"`
	League        string            `json:"league"`
	PhotoURL      string            `json:"photoUrl,omitempty"`
	International bool              `json:"international"`
	AvgRank       string            `json:"avgRank"`
	Points        string            `json:"pts"`
	Rebounds      string            `json:"reb"`
	Assists       string            `json:"ast"`
	FieldGoalPct  string            `json:"fgPct"`
	Scouts        map[string]string `json:"scouts,omitempty"`
	Bookmarked    bool              `json:"bookmarked"`
	LastReport    *model.Report     `json:"lastReport,omitempty"`
}

// NewRow renders v at 1-based position.
func NewRow(position int, v *model.PlayerView) Row {
	perGame := v.Stats.Map(model.PerGame)
	row := Row{
		Position:      position,
		PlayerID:      v.PlayerID(),
		Name:          v.Bio.Name,
		Role:          deref(v.Bio.Position),
		Team:          v.Bio.CurrentTeam,
		League:        v.Bio.League,
		PhotoURL:      deref(v.Bio.PhotoURL),
		International: v.Bio.IsInternational(),
		AvgRank:       ranking.Average(v.Ranking).Display(),
		Points:        stats.FormatStat(perGame, stats.Points),
		Rebounds:      stats.FormatStat(perGame, stats.Rebounds),
		Assists:       stats.FormatStat(perGame, stats.Assists),
		FieldGoalPct:  stats.Format(stats.FieldGoalPct(perGame)),
	}
	if names := v.Ranking.ScoutNames(); len(names) > 0 {
		row.Scouts = make(map[string]string, len(names))
		for _, name := range names {
			row.Scouts[name] = ranking.ScoutDisplay(v.Ranking, name)
		}
	}
	return row
}

// Rows renders views in order, numbering from 1.
func Rows(views []*model.PlayerView) []Row {
	rows := make([]Row, 0, len(views))
	for i, v := range views {
		rows = append(rows, NewRow(i+1, v))
	}
	return rows
}

// Shooting holds the derived ratio stats for one stat mode.
type Shooting struct {
	FieldGoalPct  string `json:"fgPct"`
	ThreePointPct string `json:"tpPct"`
	FreeThrowPct  string `json:"ftPct"`
}

// NewShooting derives shooting percentages from m.
func NewShooting(m model.StatMap) Shooting {
	return Shooting{
		FieldGoalPct:  stats.Format(stats.FieldGoalPct(m)),
		ThreePointPct: stats.Format(stats.ThreePointPct(m)),
		FreeThrowPct:  stats.Format(stats.FreeThrowPct(m)),
	}
}

// Measurement is a labelled physical-test result.
type Measurement struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Profile is the full player page.
type Profile struct {
	Player       *model.PlayerView           `json:"player"`
	AvgRank      string                      `json:"avgRank"`
	Bookmarked   bool                        `json:"bookmarked"`
	Reports      []model.Report              `json:"reports"`
	Shooting     map[model.StatMode]Shooting `json:"shooting"`
	Measurements []Measurement               `json:"measurements"`
}

// NewProfile renders v with its annotations.
func NewProfile(v *model.PlayerView, reports []model.Report, bookmarked bool) Profile {
	if reports == nil {
		reports = []model.Report{}
	}
	p := Profile{
		Player:     v,
		AvgRank:    ranking.Average(v.Ranking).Display(),
		Bookmarked: bookmarked,
		Reports:    reports,
		Shooting: map[model.StatMode]Shooting{
			model.PerGame:      NewShooting(v.Stats.Map(model.PerGame)),
			model.SeasonTotals: NewShooting(v.Stats.Map(model.SeasonTotals)),
		},
	}
	if v.Measurement != nil {
		for _, name := range model.MeasurementNames(v.Measurement) {
			if _, present := v.Measurement.Values[name]; !present {
				continue
			}
			value := stats.NoData
			if val, ok := v.Measurement.Value(name); ok {
				value = strconv.FormatFloat(val, 'f', -1, 64)
			}
			p.Measurements = append(p.Measurements, Measurement{Key: name, Label: model.MeasurementLabel(name), Value: value})
		}
	}
	return p
}

// PlayerReports groups one player's reports for the my-reports page.
type PlayerReports struct {
	PlayerID int            `json:"playerId"`
	Name     string         `json:"name"`
	Team     string         `json:"team"`
	Reports  []model.Report `json:"reports"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
