package types_test

import (
	"testing"

	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/stats"
	types "github.com/okian/draftboard/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func num(v float64) *float64 { return &v }
func str(s string) *string   { return &s }

func TestNewRow(t *testing.T) {
	Convey("Given a fully populated view", t, func() {
		v := &model.PlayerView{
			Bio: model.Bio{PlayerID: 4, Name: "Dylan Harper", Position: str("G"), CurrentTeam: "Rutgers", League: "NCAA", HomeCountry: "USA"},
			Ranking: &model.Ranking{PlayerID: 4, Scouts: map[string]*float64{
				"ESPN Rank": num(2), "Kevin O'Connor Rank": num(3), "Other": nil,
			}},
			Stats: &model.Stats{
				PerGame:      model.StatMap{"pts": 19.4, "reb": 4.6, "ast": 4, "fgm": 7, "fga": 14},
				SeasonTotals: model.StatMap{"pts": 582},
			},
		}

		Convey("When rendering a row", func() {
			row := types.NewRow(1, v)

			Convey("Then derived values are formatted", func() {
				So(row.Position, ShouldEqual, 1)
				So(row.Role, ShouldEqual, "G")
				So(row.AvgRank, ShouldEqual, "2.5")
				So(row.Points, ShouldEqual, "19.4")
				So(row.Assists, ShouldEqual, "4")
				So(row.FieldGoalPct, ShouldEqual, "50.0")
				So(row.International, ShouldBeFalse)
			})

			Convey("And every scout is rendered, null as a dash", func() {
				So(row.Scouts["ESPN Rank"], ShouldEqual, "2")
				So(row.Scouts["Other"], ShouldEqual, stats.NoData)
			})
		})
	})

	Convey("Given a view without any linked data", t, func() {
		v := &model.PlayerView{Bio: model.Bio{PlayerID: 9, Name: "Unknown", HomeCountry: "France"}}

		Convey("When rendering rows", func() {
			rows := types.Rows([]*model.PlayerView{v, v})

			Convey("Then every derived value shows a dash", func() {
				So(len(rows), ShouldEqual, 2)
				So(rows[1].Position, ShouldEqual, 2)
				So(rows[0].AvgRank, ShouldEqual, stats.NoData)
				So(rows[0].Points, ShouldEqual, stats.NoData)
				So(rows[0].FieldGoalPct, ShouldEqual, stats.NoData)
				So(rows[0].Scouts, ShouldBeNil)
				So(rows[0].International, ShouldBeTrue)
			})
		})
	})
}

func TestNewProfile(t *testing.T) {
	Convey("Given a view with measurements and stats", t, func() {
		v := &model.PlayerView{
			Bio: model.Bio{PlayerID: 1, Name: "P"},
			Measurement: &model.Measurement{Values: map[string]*float64{
				"wingspan": num(83.25), "maxVertical": nil, "armLength": num(35),
			}},
			Stats: &model.Stats{
				PerGame:      model.StatMap{"fgm": 5, "fga": 10, "tpm": 1, "tpa": 0, "ftm": 3, "fta": 4},
				SeasonTotals: model.StatMap{"fgm": 50, "fga": 100, "tpm": 10, "tpa": 40, "ftm": 30, "fta": 40},
			},
		}
		grade := 8

		Convey("When rendering the profile", func() {
			p := types.NewProfile(v, []model.Report{{Name: "s", Text: "t", Grade: &grade}}, true)

			Convey("Then shooting is derived per mode with the no-attempt guard", func() {
				So(p.Shooting[model.PerGame].FieldGoalPct, ShouldEqual, "50.0")
				So(p.Shooting[model.PerGame].ThreePointPct, ShouldEqual, stats.NoData)
				So(p.Shooting[model.SeasonTotals].ThreePointPct, ShouldEqual, "25.0")
				So(p.Shooting[model.PerGame].FreeThrowPct, ShouldEqual, "75.0")
			})

			Convey("And only present measurements are labelled in display order", func() {
				So(len(p.Measurements), ShouldEqual, 3)
				So(p.Measurements[0].Label, ShouldEqual, "Wingspan")
				So(p.Measurements[0].Value, ShouldEqual, "83.25")
				So(p.Measurements[1].Label, ShouldEqual, "Max Vertical")
				So(p.Measurements[1].Value, ShouldEqual, stats.NoData)
				So(p.Measurements[2].Label, ShouldEqual, "armLength")
			})

			Convey("And annotations are attached", func() {
				So(p.Bookmarked, ShouldBeTrue)
				So(len(p.Reports), ShouldEqual, 1)
				So(p.AvgRank, ShouldEqual, stats.NoData)
			})
		})

		Convey("When there are no reports", func() {
			p := types.NewProfile(v, nil, false)

			Convey("Then reports is an empty list", func() {
				So(p.Reports, ShouldNotBeNil)
				So(p.Reports, ShouldBeEmpty)
			})
		})
	})
}
