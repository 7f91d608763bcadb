package render

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"noticeboard-tally/services/tally"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testResult() tally.Result {
	result := tally.NewResult(tally.ModeIntern)
	result.Merge("Uber", tally.OfferCount{Selected: 1})
	result.Merge("Google", tally.OfferCount{Selected: 3, Waitlisted: 1})
	result.Merge("Acme, Inc", tally.OfferCount{UnderReview: 2})
	return result
}

func TestCSV(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, CSV(&out, testResult()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	diff := cmp.Diff([]string{
		",selected,waitlisted,under_review",
		"Google,3,1,0",
		"\"Acme, Inc\",0,0,2",
		"Uber,1,0,0",
	}, lines)
	require.Empty(t, diff)
}

func TestCSVQuotesCompanyNames(t *testing.T) {
	result := testResult()
	result.Merge(`Say "Hi"`, tally.OfferCount{Selected: 1})

	var out bytes.Buffer
	require.NoError(t, CSV(&out, result))

	records, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	diff := cmp.Diff([][]string{
		{"", "selected", "waitlisted", "under_review"},
		{"Google", "3", "1", "0"},
		{"Acme, Inc", "0", "0", "2"},
		{`Say "Hi"`, "1", "0", "0"},
		{"Uber", "1", "0", "0"},
	}, records)
	require.Empty(t, diff)
}

func TestCSVEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, CSV(&out, tally.NewResult(tally.ModePPO)))
	require.Equal(t, ",selected,waitlisted,under_review", strings.TrimSpace(out.String()))
}

func TestTotals(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Totals(&out, tally.OfferCount{Selected: 4, Waitlisted: 1, UnderReview: 2}))
	require.Equal(t, `{"selected":4,"waitlisted":1,"under_review":2}`+"\n", out.String())
}

func TestTable(t *testing.T) {
	var out bytes.Buffer
	Table(&out, testResult())

	rendered := out.String()
	require.Contains(t, rendered, "Google")
	require.Contains(t, rendered, "Acme, Inc")
	require.Contains(t, rendered, "TOTAL")
	require.Less(t, strings.Index(rendered, "Google"), strings.Index(rendered, "Uber"))
}

func TestTableEmpty(t *testing.T) {
	var out bytes.Buffer
	Table(&out, tally.NewResult(tally.ModePPO))
	require.Equal(t, "No ppo results found.\n", out.String())
}

func TestSimilarPairs(t *testing.T) {
	var out bytes.Buffer
	SimilarPairs(&out, []tally.SimilarPair{{Left: "Googel", Right: "Google", Similarity: 0.9667}})
	require.Contains(t, out.String(), "Googel")
	require.Contains(t, out.String(), "0.967")
}
