package summary

import (
	"math/rand/v2"

	"github.com/bft-labs/tabsum/internal/tabs"
)

// DefaultSeed seeds sampling when none is configured.
const DefaultSeed uint64 = 42

// Sample picks min(n, len(records)) records without replacement. The choice
// depends only on seed and the input, so repeated runs print the same rows.
func Sample(records []tabs.Record, n int, seed uint64) []tabs.Record {
	if n > len(records) {
		n = len(records)
	}
	if n <= 0 {
		return nil
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	// Partial Fisher-Yates: the first n slots hold the sample.
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	out := make([]tabs.Record, n)
	for i := 0; i < n; i++ {
		out[i] = records[idx[i]]
	}
	return out
}
