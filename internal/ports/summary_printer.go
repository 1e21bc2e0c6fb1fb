package ports

import "github.com/bft-labs/tabsum/internal/tabs"

// SummaryPrinter renders human-readable views of a table.
type SummaryPrinter interface {
	Preview(t *tabs.Table, rows int) error
	Overview(t *tabs.Table) error
	CategoryBreakdown(t *tabs.Table, sampleSize int) error
	SortedCategoryList(t *tabs.Table) error
}
