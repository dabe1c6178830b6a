// Package ranking reduces per-scout rankings into an average rank.
package ranking

import (
	"math"
	"strconv"

	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/stats"
)

// Rank is an optional average rank. The zero value is unranked.
type Rank struct {
	value  float64
	ranked bool
}

// Unranked is the rank of a player without any numeric scout rank.
var Unranked = Rank{}

// Of returns a ranked value.
func Of(v float64) Rank {
	return Rank{value: v, ranked: true}
}

// Value returns the average rank and whether the player is ranked at all.
func (r Rank) Value() (float64, bool) {
	return r.value, r.ranked
}

// Ranked reports whether any scout ranked the player.
func (r Rank) Ranked() bool {
	return r.ranked
}

// SortKey maps the rank onto an ordering where unranked players sort after
// every ranked one.
func (r Rank) SortKey() float64 {
	if !r.ranked {
		return math.Inf(1)
	}
	return r.value
}

// Display renders the rank with one decimal, or a dash when unranked.
func (r Rank) Display() string {
	if !r.ranked {
		return stats.NoData
	}
	return strconv.FormatFloat(r.value, 'f', 1, 64)
}

// Within reports whether the rank is at most threshold. Unranked players
// never qualify.
func (r Rank) Within(threshold float64) bool {
	return r.ranked && r.value <= threshold
}

// Average computes the mean of every numeric scout rank, rounded to one
// decimal. Null and missing scouts are excluded from both sum and count.
func Average(r *model.Ranking) Rank {
	if r == nil {
		return Unranked
	}
	var (
		sum   float64
		count int
	)
	for name, v := range r.Scouts {
		if name == model.IDField || v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			continue
		}
		sum += *v
		count++
	}
	if count == 0 {
		return Unranked
	}
	return Of(stats.Round1(sum / float64(count)))
}

// ScoutDisplay renders one scout's rank, or a dash when absent or null.
func ScoutDisplay(r *model.Ranking, scout string) string {
	v, ok := r.Scout(scout)
	if !ok {
		return stats.NoData
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
