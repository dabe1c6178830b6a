package filter

import (
	"cmp"
	"slices"
	"strings"

	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/ranking"
)

// Predicate decides whether a view belongs in the result.
type Predicate func(v *model.PlayerView, reports ReportIndex) bool

// Predicates returns one predicate per constraint present in spec.
func Predicates(spec Spec) []Predicate {
	var preds []Predicate
	if name := strings.TrimSpace(spec.Name); name != "" {
		needle := strings.ToLower(name)
		preds = append(preds, func(v *model.PlayerView, _ ReportIndex) bool {
			return strings.Contains(strings.ToLower(v.Bio.Name), needle)
		})
	}
	if spec.Interest != nil {
		want := *spec.Interest
		preds = append(preds, func(v *model.PlayerView, reports ReportIndex) bool {
			last, ok := reports.Last(v.PlayerID())
			return ok && last.Interest == want
		})
	}
	if spec.Type != nil {
		want := *spec.Type
		preds = append(preds, func(v *model.PlayerView, reports ReportIndex) bool {
			last, ok := reports.Last(v.PlayerID())
			return ok && last.Type == want
		})
	}
	if spec.MinGrade != nil {
		minGrade := *spec.MinGrade
		preds = append(preds, func(v *model.PlayerView, reports ReportIndex) bool {
			last, _ := reports.Last(v.PlayerID())
			return last.GradeOrZero() >= minGrade
		})
	}
	if spec.InternationalOnly {
		preds = append(preds, func(v *model.PlayerView, _ ReportIndex) bool {
			return v.Bio.IsInternational()
		})
	}
	if spec.MaxRank != nil {
		threshold := *spec.MaxRank
		preds = append(preds, func(v *model.PlayerView, _ ReportIndex) bool {
			return ranking.Average(v.Ranking).Within(threshold)
		})
	}
	return preds
}

// Select returns the views that satisfy every predicate, in input order.
func Select(views []*model.PlayerView, reports ReportIndex, preds ...Predicate) []*model.PlayerView {
	out := make([]*model.PlayerView, 0, len(views))
	for _, v := range views {
		if matchAll(v, reports, preds) {
			out = append(out, v)
		}
	}
	return out
}

func matchAll(v *model.PlayerView, reports ReportIndex, preds []Predicate) bool {
	for _, p := range preds {
		if !p(v, reports) {
			return false
		}
	}
	return true
}

// Apply filters views by spec and orders the result. The input slice and the
// views it references are never modified; the result is a new slice sharing
// the same views. An empty result is valid.
func Apply(views []*model.PlayerView, spec Spec, reports ReportIndex) []*model.PlayerView {
	out := Select(views, reports, Predicates(spec)...)
	if spec.Mode == ModeSearch {
		return out
	}
	return SortByRank(out)
}

// SortByRank stably sorts views in place by average rank, unranked last.
// Views with equal rank keep their relative order.
func SortByRank(views []*model.PlayerView) []*model.PlayerView {
	keys := make(map[*model.PlayerView]float64, len(views))
	for _, v := range views {
		keys[v] = ranking.Average(v.Ranking).SortKey()
	}
	slices.SortStableFunc(views, func(a, b *model.PlayerView) int {
		return cmp.Compare(keys[a], keys[b])
	})
	return views
}
