package annotations_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/draftboard/internal/adapters/annotations"
	"github.com/okian/draftboard/internal/domain/model"
	"github.com/redis/go-redis/v9"
	. "github.com/smartystreets/goconvey/convey"
)

func grade(v int) *int { return &v }

// storeContract exercises behaviour shared by every backend.
func storeContract(t *testing.T, name string, newStore func() annotations.Store) {
	Convey("Given an empty "+name+" store", t, func() {
		ctx := context.Background()
		s := newStore()

		Convey("When nothing was written", func() {
			on, err := s.Bookmarked(ctx, 1)
			So(err, ShouldBeNil)
			So(on, ShouldBeFalse)

			reports, err := s.Reports(ctx, 1)
			So(err, ShouldBeNil)
			So(reports, ShouldBeEmpty)

			all, err := s.AllReports(ctx)
			So(err, ShouldBeNil)
			So(all, ShouldBeEmpty)
		})

		Convey("When toggling bookmarks", func() {
			So(s.SetBookmark(ctx, 7, true), ShouldBeNil)
			So(s.SetBookmark(ctx, 3, true), ShouldBeNil)
			So(s.SetBookmark(ctx, 5, true), ShouldBeNil)
			So(s.SetBookmark(ctx, 5, false), ShouldBeNil)

			Convey("Then only set flags are reported", func() {
				on, err := s.Bookmarked(ctx, 7)
				So(err, ShouldBeNil)
				So(on, ShouldBeTrue)
				off, err := s.Bookmarked(ctx, 5)
				So(err, ShouldBeNil)
				So(off, ShouldBeFalse)
				ids, err := s.BookmarkedIDs(ctx)
				So(err, ShouldBeNil)
				So(ids, ShouldResemble, []int{3, 7})
			})
		})

		Convey("When appending reports", func() {
			first, err := s.AppendReport(ctx, 9, model.Report{Name: " scout@mavs.com ", Text: "Long arms", Grade: grade(7), Interest: "high", Type: "need"})
			So(err, ShouldBeNil)
			_, err = s.AppendReport(ctx, 9, model.Report{Name: "other", Text: "Needs strength"})
			So(err, ShouldBeNil)
			_, err = s.AppendReport(ctx, 2, model.Report{Name: "other", Text: "Quick"})
			So(err, ShouldBeNil)

			Convey("Then they are normalised and given ids", func() {
				So(first.ID, ShouldNotBeEmpty)
				So(first.Name, ShouldEqual, "scout@mavs.com")
				So(first.Interest, ShouldEqual, model.InterestHigh)
				So(first.Type, ShouldEqual, model.DraftNeed)
			})

			Convey("And they are kept in append order", func() {
				reports, err := s.Reports(ctx, 9)
				So(err, ShouldBeNil)
				So(len(reports), ShouldEqual, 2)
				So(reports[0].Text, ShouldEqual, "Long arms")
				So(reports[1].Text, ShouldEqual, "Needs strength")
				So(reports[1].Interest, ShouldEqual, model.InterestMedium)
				So(reports[1].Type, ShouldEqual, model.DraftBPA)
				So(reports[1].Grade, ShouldBeNil)
			})

			Convey("And every player's list is available", func() {
				all, err := s.AllReports(ctx)
				So(err, ShouldBeNil)
				So(len(all), ShouldEqual, 2)
				So(len(all[9]), ShouldEqual, 2)
				So(len(all[2]), ShouldEqual, 1)
			})
		})

		Convey("When appending an invalid report", func() {
			_, err := s.AppendReport(ctx, 1, model.Report{Name: "x", Text: "y", Grade: grade(11)})

			Convey("Then it is rejected and nothing is stored", func() {
				So(errors.Is(err, annotations.ErrInvalidReport), ShouldBeTrue)
				reports, _ := s.Reports(ctx, 1)
				So(reports, ShouldBeEmpty)
			})
		})
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, "memory", func() annotations.Store { return annotations.NewMemoryStore() })
}

// TestRedisStore runs against a live server and flushes its database.
func TestRedisStore(t *testing.T) {
	url := os.Getenv("DRAFTBOARD_TEST_REDIS_URL")
	if url == "" {
		t.Skip("DRAFTBOARD_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	store, err := annotations.NewRedisStoreFromURL(ctx, url)
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	defer store.Close()

	opt, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("parse redis url: %v", err)
	}
	admin := redis.NewClient(opt)
	defer admin.Close()

	storeContract(t, "redis", func() annotations.Store {
		if err := admin.FlushDB(ctx).Err(); err != nil {
			t.Fatalf("flush redis: %v", err)
		}
		return store
	})

	Convey("Given report lists under non-canonical keys", t, func() {
		So(admin.FlushDB(ctx).Err(), ShouldBeNil)
		So(admin.RPush(ctx, annotations.ReportsPrefix+"007", `{"name":"x","text":"padded"}`).Err(), ShouldBeNil)
		So(admin.RPush(ctx, annotations.ReportsPrefix+"+7", `{"name":"x","text":"signed"}`).Err(), ShouldBeNil)
		_, err := store.AppendReport(ctx, 7, model.Report{Name: "scout@team.test", Text: "canonical"})
		So(err, ShouldBeNil)

		Convey("Then AllReports only reads the canonical key", func() {
			all, err := store.AllReports(ctx)
			So(err, ShouldBeNil)
			So(len(all), ShouldEqual, 1)
			So(len(all[7]), ShouldEqual, 1)
			So(all[7][0].Text, ShouldEqual, "canonical")
		})
	})
}

func TestNormalizeReport(t *testing.T) {
	Convey("Given reports with missing or invalid fields", t, func() {
		cases := []model.Report{
			{Text: "no author"},
			{Name: "a", Text: "   "},
			{Name: "a", Text: "t", Grade: grade(-1)},
			{Name: "a", Text: "t", Interest: "Extreme"},
			{Name: "a", Text: "t", Type: "Steal"},
		}

		Convey("Then each is rejected as invalid", func() {
			for _, c := range cases {
				_, err := annotations.NormalizeReport(c)
				So(errors.Is(err, annotations.ErrInvalidReport), ShouldBeTrue)
			}
		})
	})

	Convey("Given a report with boundary grades", t, func() {
		Convey("Then 0 and 10 are accepted", func() {
			_, err := annotations.NormalizeReport(model.Report{Name: "a", Text: "t", Grade: grade(0)})
			So(err, ShouldBeNil)
			_, err = annotations.NormalizeReport(model.Report{Name: "a", Text: "t", Grade: grade(10)})
			So(err, ShouldBeNil)
		})
	})

	Convey("Given player ids", t, func() {
		Convey("Then keys follow the shared layout", func() {
			So(annotations.BookmarkKey(42), ShouldEqual, "scout-bookmark-42")
			So(annotations.ReportsKey(42), ShouldEqual, "reports-42")
		})
	})
}
