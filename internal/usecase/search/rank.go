package search

import (
	"cmp"
	"math"
	"slices"

	"github.com/kailas-cloud/letterdex/internal/domain/search/result"
)

// compareScores orders scores descending with NaN after every number.
// Two NaNs compare equal.
func compareScores(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	return cmp.Compare(b, a)
}

// compareResults is the total ranking order: score descending (NaN last),
// defined before undefined, then corpus position ascending.
func compareResults(a, b *result.Result) int {
	if c := compareScores(a.Score(), b.Score()); c != 0 {
		return c
	}
	if a.Defined() != b.Defined() {
		if a.Defined() {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.Position(), b.Position())
}

// rank sorts results in place and truncates to n.
func rank(results []result.Result, n int) []result.Result {
	slices.SortFunc(results, func(a, b result.Result) int {
		return compareResults(&a, &b)
	})
	if len(results) > n {
		results = results[:n]
	}
	return results
}
