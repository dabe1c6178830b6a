package compare_test

import (
	"testing"

	"github.com/okian/draftboard/internal/domain/compare"
	"github.com/okian/draftboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func num(v float64) *float64 { return &v }

func rowByKey(rows []compare.Row, key string) compare.Row {
	for _, r := range rows {
		if r.Key == key {
			return r
		}
	}
	return compare.Row{}
}

func TestPlayers(t *testing.T) {
	Convey("Given two players with partial data", t, func() {
		left := &model.PlayerView{
			Bio: model.Bio{PlayerID: 1, Name: "Left"},
			Stats: &model.Stats{
				PerGame:      model.StatMap{"pts": 20, "reb": 5, "ast": 4, "fgm": 8, "fga": 16},
				SeasonTotals: model.StatMap{"pts": 600, "reb": 150, "ast": 120, "fgm": 240, "fga": 480},
			},
			Measurement: &model.Measurement{Values: map[string]*float64{"wingspan": num(84), "armLength": num(35)}},
		}
		right := &model.PlayerView{
			Bio: model.Bio{PlayerID: 2, Name: "Right"},
			Stats: &model.Stats{
				PerGame:      model.StatMap{"pts": 18, "reb": 9, "ast": 4, "fgm": 0, "fga": 0},
				SeasonTotals: model.StatMap{"pts": 700, "reb": 300, "ast": 90, "fgm": 0, "fga": 0},
			},
		}

		Convey("When comparing per game", func() {
			c := compare.Players(left, right, model.PerGame)

			Convey("Then the higher value leads", func() {
				So(rowByKey(c.Summary, "pts").Leader, ShouldEqual, compare.Left)
				So(rowByKey(c.Summary, "reb").Leader, ShouldEqual, compare.Right)
			})

			Convey("And ties have no leader", func() {
				So(rowByKey(c.Summary, "ast").Leader, ShouldEqual, compare.None)
			})

			Convey("And FG% without attempts is missing", func() {
				row := rowByKey(c.Summary, compare.FieldGoalPctKey)
				So(*row.Left, ShouldEqual, 50)
				So(row.Right, ShouldBeNil)
				So(row.Leader, ShouldEqual, compare.None)
			})

			Convey("And every stat key is compared", func() {
				So(len(c.Stats), ShouldEqual, 15)
			})

			Convey("And measurements include known and extra tests", func() {
				wing := rowByKey(c.Measurements, "wingspan")
				So(wing.Label, ShouldEqual, "Wingspan")
				So(*wing.Left, ShouldEqual, 84)
				So(wing.Right, ShouldBeNil)
				So(rowByKey(c.Measurements, "armLength").Label, ShouldEqual, "armLength")
			})
		})

		Convey("When comparing season totals", func() {
			c := compare.Players(left, right, model.SeasonTotals)

			Convey("Then totals are used", func() {
				So(*rowByKey(c.Summary, "pts").Right, ShouldEqual, 700)
				So(rowByKey(c.Summary, "pts").Leader, ShouldEqual, compare.Right)
			})
		})

		Convey("When one player has no stats", func() {
			c := compare.Players(left, &model.PlayerView{Bio: model.Bio{PlayerID: 3}}, model.PerGame)

			Convey("Then its side is missing everywhere", func() {
				for _, row := range c.Stats {
					So(row.Right, ShouldBeNil)
					So(row.Leader, ShouldEqual, compare.None)
				}
			})
		})
	})
}
