package tally

import (
	"slices"
	"strings"
)

type Bucket int

const (
	BucketSelected Bucket = iota
	BucketWaitlisted
	BucketUnderReview
)

func (b Bucket) String() string {
	switch b {
	case BucketSelected:
		return "selected"
	case BucketWaitlisted:
		return "waitlisted"
	case BucketUnderReview:
		return "under_review"
	}
	return "unknown"
}

// OfferCount holds how many roll numbers were seen in each bucket.
// Counts only ever grow.
type OfferCount struct {
	Selected    int `json:"selected"`
	Waitlisted  int `json:"waitlisted"`
	UnderReview int `json:"under_review"`
}

func (c *OfferCount) Inc(b Bucket) {
	switch b {
	case BucketSelected:
		c.Selected++
	case BucketWaitlisted:
		c.Waitlisted++
	case BucketUnderReview:
		c.UnderReview++
	}
}

func (c OfferCount) Get(b Bucket) int {
	switch b {
	case BucketSelected:
		return c.Selected
	case BucketWaitlisted:
		return c.Waitlisted
	case BucketUnderReview:
		return c.UnderReview
	}
	return 0
}

func (c OfferCount) Add(other OfferCount) OfferCount {
	return OfferCount{
		Selected:    c.Selected + other.Selected,
		Waitlisted:  c.Waitlisted + other.Waitlisted,
		UnderReview: c.UnderReview + other.UnderReview,
	}
}

func (c OfferCount) Total() int {
	return c.Selected + c.Waitlisted + c.UnderReview
}

func (c OfferCount) IsZero() bool {
	return c.Total() == 0
}

// CompanyTally maps a normalized company name to its counts.
type CompanyTally map[string]OfferCount

// Merge adds `count` to the entry of `company`, inserting a zero entry first
// if the company hasn't been seen.
func (t CompanyTally) Merge(company string, count OfferCount) {
	t[company] = t[company].Add(count)
}

// Sum returns the field-wise sum of every entry.
func (t CompanyTally) Sum() OfferCount {
	var sum OfferCount
	for _, c := range t {
		sum = sum.Add(c)
	}
	return sum
}

// Result is everything a single scrape produces, Totals always equals
// Companies.Sum().
type Result struct {
	Mode           Mode
	Companies      CompanyTally
	Totals         OfferCount
	PagesVisited   int
	ThreadsChecked int
}

func NewResult(mode Mode) Result {
	return Result{
		Mode:      mode,
		Companies: CompanyTally{},
	}
}

// Merge records the counts of one thread. All-zero counts are dropped so
// they never create a company entry.
func (r *Result) Merge(company string, count OfferCount) {
	if count.IsZero() {
		return
	}
	r.Companies.Merge(company, count)
	r.Totals = r.Totals.Add(count)
}

// SortedCompanies returns company names by descending total, ties broken
// by name.
func (r Result) SortedCompanies() []string {
	names := make([]string, 0, len(r.Companies))
	for name := range r.Companies {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		ta := r.Companies[a].Total()
		tb := r.Companies[b].Total()
		if ta != tb {
			return tb - ta
		}
		return strings.Compare(a, b)
	})
	return names
}
