package tally

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBucketString(t *testing.T) {
	require.Equal(t, "selected", BucketSelected.String())
	require.Equal(t, "waitlisted", BucketWaitlisted.String())
	require.Equal(t, "under_review", BucketUnderReview.String())
}

func TestOfferCountIncGet(t *testing.T) {
	var c OfferCount
	c.Inc(BucketSelected)
	c.Inc(BucketSelected)
	c.Inc(BucketUnderReview)

	require.Equal(t, 2, c.Get(BucketSelected))
	require.Equal(t, 0, c.Get(BucketWaitlisted))
	require.Equal(t, 1, c.Get(BucketUnderReview))
	require.Equal(t, 3, c.Total())
	require.False(t, c.IsZero())
	require.True(t, OfferCount{}.IsZero())
}

func TestResultMergeSkipsZeroCounts(t *testing.T) {
	result := NewResult(ModePPO)
	result.Merge("Google", OfferCount{})

	require.Empty(t, result.Companies)
	require.Equal(t, OfferCount{}, result.Totals)
}

func TestResultTotalsMatchCompanies(t *testing.T) {
	merges := []struct {
		company string
		count   OfferCount
	}{
		{"Google", OfferCount{Selected: 3}},
		{"Amazon", OfferCount{Selected: 1, Waitlisted: 2}},
		{"Google", OfferCount{UnderReview: 4}},
		{"Unknown", OfferCount{}},
		{"Amazon", OfferCount{Selected: 1}},
	}

	result := NewResult(ModeIntern)
	for _, m := range merges {
		result.Merge(m.company, m.count)
		require.Equal(t, result.Companies.Sum(), result.Totals)
	}

	diff := cmp.Diff(CompanyTally{
		"Google": {Selected: 3, UnderReview: 4},
		"Amazon": {Selected: 2, Waitlisted: 2},
	}, result.Companies)
	require.Empty(t, diff)
	require.Equal(t, OfferCount{Selected: 5, Waitlisted: 2, UnderReview: 4}, result.Totals)
}

func TestSortedCompanies(t *testing.T) {
	result := NewResult(ModePPO)
	result.Merge("Zomato", OfferCount{Selected: 1})
	result.Merge("Amazon", OfferCount{Selected: 1})
	result.Merge("Google", OfferCount{Selected: 5})

	require.Equal(t, []string{"Google", "Amazon", "Zomato"}, result.SortedCompanies())
}
