package tally

import (
	"slices"

	"github.com/antzucaro/matchr"
)

const DefaultSimilarity = 0.9

// SimilarPair is two distinct company keys that probably name the same company.
type SimilarPair struct {
	Left       string
	Right      string
	Similarity float64
}

// SimilarCompanies lists the pairs of names whose Jaro-Winkler similarity
// is at least `threshold`. Nothing is merged, the tally keeps both keys.
func SimilarCompanies(names []string, threshold float64) []SimilarPair {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var result []SimilarPair
	for i, left := range sorted {
		for _, right := range sorted[i+1:] {
			similarity := matchr.JaroWinkler(left, right, false)
			if similarity < threshold {
				continue
			}
			result = append(result, SimilarPair{
				Left:       left,
				Right:      right,
				Similarity: similarity,
			})
		}
	}

	slices.SortStableFunc(result, func(a, b SimilarPair) int {
		switch {
		case a.Similarity > b.Similarity:
			return -1
		case a.Similarity < b.Similarity:
			return 1
		}
		return 0
	})
	return result
}
