package stats_test

import (
	"testing"

	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func logOf(values map[string]float64) model.GameLog {
	return model.GameLog{PlayerID: 1, Values: values}
}

func TestAggregate(t *testing.T) {
	Convey("Given a player without game logs", t, func() {
		Convey("Then no stats are produced", func() {
			So(stats.Aggregate(nil), ShouldBeNil)
			So(stats.Aggregate([]model.GameLog{}), ShouldBeNil)
		})
	})

	Convey("Given two game logs", t, func() {
		logs := []model.GameLog{
			logOf(map[string]float64{"pts": 20, "fga": 10, "fgm": 5}),
			logOf(map[string]float64{"pts": 30, "fga": 12, "fgm": 7}),
		}
		s := stats.Aggregate(logs)

		Convey("Then season totals are sums", func() {
			So(s, ShouldNotBeNil)
			So(s.SeasonTotals["pts"], ShouldEqual, 50)
			So(s.SeasonTotals["fgm"], ShouldEqual, 12)
			So(s.SeasonTotals["fga"], ShouldEqual, 22)
		})

		Convey("And per-game values divide by games played", func() {
			So(s.PerGame["pts"], ShouldEqual, 25.0)
		})

		Convey("And missing fields count as zero for every key", func() {
			for _, key := range stats.Keys {
				_, hasTotal := s.SeasonTotals[key]
				_, hasPerGame := s.PerGame[key]
				So(hasTotal, ShouldBeTrue)
				So(hasPerGame, ShouldBeTrue)
			}
			So(s.SeasonTotals["stl"], ShouldEqual, 0)
			So(s.PerGame["stl"], ShouldEqual, 0)
		})

		Convey("And the derived field-goal percentage is 54.5", func() {
			pct, ok := stats.FieldGoalPct(s.SeasonTotals)
			So(ok, ShouldBeTrue)
			So(pct, ShouldEqual, 54.5)
		})
	})

	Convey("Given logs whose averages need rounding", t, func() {
		logs := []model.GameLog{
			logOf(map[string]float64{"pts": 10, "ast": 1}),
			logOf(map[string]float64{"pts": 0}),
			logOf(map[string]float64{"pts": 0}),
			logOf(map[string]float64{"pts": 0}),
		}
		s := stats.Aggregate(logs)

		Convey("Then halves round away from zero", func() {
			So(s.PerGame["pts"], ShouldEqual, 2.5)
			So(s.PerGame["ast"], ShouldEqual, 0.3)
		})

		Convey("And every per-game value matches totals over games", func() {
			for _, key := range stats.Keys {
				So(s.PerGame[key], ShouldEqual, stats.Round1(s.SeasonTotals[key]/float64(len(logs))))
			}
		})
	})

	Convey("Given three games of ten points", t, func() {
		s := stats.Aggregate([]model.GameLog{
			logOf(map[string]float64{"pts": 3}),
			logOf(map[string]float64{"pts": 3}),
			logOf(map[string]float64{"pts": 4}),
		})

		Convey("Then the average is rounded to one decimal", func() {
			So(s.PerGame["pts"], ShouldEqual, 3.3)
		})
	})
}

func TestPercentages(t *testing.T) {
	Convey("Given stat maps with and without attempts", t, func() {
		Convey("When nothing was attempted", func() {
			_, ok := stats.FieldGoalPct(model.StatMap{"fgm": 0, "fga": 0})
			_, okMissing := stats.ThreePointPct(model.StatMap{})
			_, okNil := stats.FreeThrowPct(nil)

			Convey("Then there is no data", func() {
				So(ok, ShouldBeFalse)
				So(okMissing, ShouldBeFalse)
				So(okNil, ShouldBeFalse)
				So(stats.Format(0, ok), ShouldEqual, stats.NoData)
			})
		})

		Convey("When attempts exist but nothing was made", func() {
			pct, ok := stats.FreeThrowPct(model.StatMap{"ftm": 0, "fta": 4})

			Convey("Then the percentage is zero", func() {
				So(ok, ShouldBeTrue)
				So(pct, ShouldEqual, 0)
				So(stats.Format(pct, ok), ShouldEqual, "0.0")
			})
		})

		Convey("When formatting a stat", func() {
			Convey("Then missing maps and keys render no data", func() {
				So(stats.FormatStat(nil, "pts"), ShouldEqual, stats.NoData)
				So(stats.FormatStat(model.StatMap{}, "pts"), ShouldEqual, stats.NoData)
				So(stats.FormatStat(model.StatMap{"pts": 12.5}, "pts"), ShouldEqual, "12.5")
			})
		})
	})
}
