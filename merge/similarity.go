package merge

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/miku/bibmerge/normal"
)

// SimilarityFunc scores the similarity of two normalized titles on a 0-100
// scale, 100 meaning an identical token multiset. Implementations may fail;
// the resolver treats a failure as "no match" and mints a fresh key.
type SimilarityFunc func(a, b string) (float64, error)

// TokenSortRatio compares the sorted token multisets of both strings with a
// Levenshtein similarity, so word order does not matter. Result is 0-100.
func TokenSortRatio(a, b string) (float64, error) {
	a, b = normal.TokenSortKey(a), normal.TokenSortKey(b)
	switch {
	case a == "" && b == "":
		return 100, nil
	case a == "" || b == "":
		return 0, nil
	}
	lev := metrics.NewLevenshtein()
	return 100 * strutil.Similarity(a, b, lev), nil
}
