package summary

import (
	"cmp"
	"slices"

	"github.com/bft-labs/tabsum/internal/tabs"
)

// CategoryCount is the number of records carrying one category label.
type CategoryCount struct {
	Label string
	Count int
}

// ByFrequency returns the category groups of t, most populous first. Ties
// keep the order in which the categories first appear in the file.
func ByFrequency(t *tabs.Table) []tabs.Group {
	groups := t.Groups()
	slices.SortStableFunc(groups, func(a, b tabs.Group) int {
		return cmp.Compare(len(b.Records), len(a.Records))
	})
	return groups
}

// SortedCounts returns per-category counts ordered by label (byte order).
func SortedCounts(t *tabs.Table) []CategoryCount {
	groups := t.Groups()
	counts := make([]CategoryCount, 0, len(groups))
	for _, g := range groups {
		counts = append(counts, CategoryCount{Label: g.Label, Count: len(g.Records)})
	}
	slices.SortFunc(counts, func(a, b CategoryCount) int {
		return cmp.Compare(a.Label, b.Label)
	})
	return counts
}
