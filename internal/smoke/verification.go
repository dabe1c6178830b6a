package smoke

import (
	"fmt"
	"strconv"

	"github.com/okian/draftboard/internal/domain/stats"
	"github.com/okian/draftboard/internal/domain/types"
)

// verifyBoardOrder checks that average ranks never decrease down the list
// and that unranked rows only appear after every ranked one.
func verifyBoardOrder(rows []types.Row) error {
	prev := -1.0
	unranked := false
	for _, r := range rows {
		if r.AvgRank == stats.NoData {
			unranked = true
			continue
		}
		if unranked {
			return fmt.Errorf("%w: ranked player %d listed after an unranked player", ErrVerification, r.PlayerID)
		}
		v, err := strconv.ParseFloat(r.AvgRank, 64)
		if err != nil {
			return fmt.Errorf("%w: player %d has unreadable average rank %q", ErrVerification, r.PlayerID, r.AvgRank)
		}
		if v < prev {
			return fmt.Errorf("%w: player %d average rank %s is ahead of %.1f", ErrVerification, r.PlayerID, r.AvgRank, prev)
		}
		prev = v
	}
	return nil
}

// verifyMinGrade checks that every row's latest report meets the grade floor.
func verifyMinGrade(rows []types.Row, floor int) error {
	if floor == 0 {
		return nil
	}
	for _, r := range rows {
		if r.LastReport == nil || r.LastReport.Grade == nil {
			return fmt.Errorf("%w: player %d passed the grade filter without a graded report", ErrVerification, r.PlayerID)
		}
		if *r.LastReport.Grade < floor {
			return fmt.Errorf("%w: player %d latest grade %d is below %d", ErrVerification, r.PlayerID, *r.LastReport.Grade, floor)
		}
	}
	return nil
}

// verifyWatchlist checks that every bookmarked player is on the watchlist
// and flagged as bookmarked.
func verifyWatchlist(rows []types.Row, marked []int) error {
	seen := make(map[int]bool, len(rows))
	for _, r := range rows {
		if !r.Bookmarked {
			return fmt.Errorf("%w: watchlist player %d is not flagged as bookmarked", ErrVerification, r.PlayerID)
		}
		seen[r.PlayerID] = true
	}
	for _, id := range marked {
		if !seen[id] {
			return fmt.Errorf("%w: bookmarked player %d missing from watchlist", ErrVerification, id)
		}
	}
	return nil
}

// verifyMyReports checks that scout sees exactly the reports it filed.
func verifyMyReports(scout string, groups []types.PlayerReports, want int) error {
	got := 0
	for _, g := range groups {
		for _, r := range g.Reports {
			if r.Name != scout {
				return fmt.Errorf("%w: %s sees report by %q on player %d", ErrVerification, scout, r.Name, g.PlayerID)
			}
			got++
		}
	}
	if got != want {
		return fmt.Errorf("%w: %s has %d reports, filed %d", ErrVerification, scout, got, want)
	}
	return nil
}
