package view_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/view"
	. "github.com/smartystreets/goconvey/convey"
)

const snapshotJSON = `{
  "bio": [
    {"playerId": 10, "name": "Cooper Flagg", "currentTeam": "Duke", "league": "NCAA", "homeCountry": "USA"},
    {"playerId": 20, "name": "Egor Demin", "currentTeam": "BYU", "league": "NCAA", "homeCountry": "Russia"},
    {"playerId": 30, "name": "No Data", "currentTeam": "Club", "league": "Euro"}
  ],
  "scoutRankings": [
    {"playerId": 10, "ESPN Rank": 1, "Kevin O'Connor Rank": 2, "Other": null},
    {"playerId": 20, "ESPN Rank": null}
  ],
  "measurements": [
    {"playerId": 10, "wingspan": 84.5, "maxVertical": null}
  ],
  "game_logs": [
    {"playerId": 10, "pts": 20, "fga": 10, "fgm": 5, "gameDate": "2024-11-04"},
    {"playerId": 10, "pts": 30, "fga": 12, "fgm": 7},
    {"playerId": 20, "pts": 11}
  ]
}`

func loadSnapshot() *model.Snapshot {
	var s model.Snapshot
	if err := json.Unmarshal([]byte(snapshotJSON), &s); err != nil {
		panic(err)
	}
	return &s
}

func TestBuild(t *testing.T) {
	Convey("Given a decoded snapshot", t, func() {
		snap := loadSnapshot()

		Convey("When building views", func() {
			views := view.Build(snap)

			Convey("Then there is one view per bio in bio order", func() {
				So(len(views), ShouldEqual, 3)
				So(views[0].Bio.Name, ShouldEqual, "Cooper Flagg")
				So(views[1].Bio.Name, ShouldEqual, "Egor Demin")
				So(views[2].Bio.Name, ShouldEqual, "No Data")
			})

			Convey("And stats exist only for players with game logs", func() {
				So(views[0].Stats, ShouldNotBeNil)
				So(views[0].Stats.SeasonTotals["pts"], ShouldEqual, 50)
				So(views[0].Stats.PerGame["pts"], ShouldEqual, 25)
				So(views[1].Stats.PerGame["pts"], ShouldEqual, 11)
				So(views[2].Stats, ShouldBeNil)
			})

			Convey("And missing links resolve to nil", func() {
				So(views[1].Measurement, ShouldBeNil)
				So(views[2].Ranking, ShouldBeNil)
				So(views[2].Measurement, ShouldBeNil)
			})

			Convey("And null scout values are kept as null", func() {
				_, ok := views[1].Ranking.Scout("ESPN Rank")
				So(ok, ShouldBeFalse)
				So(views[1].Ranking.ScoutNames(), ShouldResemble, []string{"ESPN Rank"})
			})

			Convey("And views marshal with null links and no stats field", func() {
				raw, err := json.Marshal(views[2])
				So(err, ShouldBeNil)
				var out map[string]any
				So(json.Unmarshal(raw, &out), ShouldBeNil)
				So(out["ranking"], ShouldBeNil)
				So(out["measurement"], ShouldBeNil)
				_, hasStats := out["stats"]
				So(hasStats, ShouldBeFalse)
			})
		})

		Convey("When building twice", func() {
			first := view.Build(snap)
			second := view.Build(snap)

			Convey("Then the results are equal", func() {
				So(second, ShouldResemble, first)
			})
		})

		Convey("When indexing views", func() {
			idx := view.Index(view.Build(snap))

			Convey("Then each player id maps to its view", func() {
				So(len(idx), ShouldEqual, 3)
				So(idx[20].Bio.Name, ShouldEqual, "Egor Demin")
			})
		})
	})

	Convey("Given a nil snapshot", t, func() {
		Convey("Then no views are built", func() {
			So(view.Build(nil), ShouldBeEmpty)
		})
	})
}
