package ports

import "github.com/bft-labs/tabsum/internal/tabs"

// TableReader loads a categorization mapping.
type TableReader interface {
	// ReadFile returns the table read from path. A non-nil error means the
	// table is absent; the failure has already been reported.
	ReadFile(path string) (*tabs.Table, error)
}
