package tally

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseDocument(t testing.TB, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func post(body string) string {
	return `<tr><td class="post-content">` + body + `</td></tr>`
}

func thread(posts ...string) string {
	return `<html><body><table>` + strings.Join(posts, "") + `</table></body></html>`
}

func TestClassifyLines(t *testing.T) {
	testCases := []struct {
		name     string
		lines    []string
		expected OfferCount
	}{
		{
			name:     "defaults to selected",
			lines:    []string{"Congratulations to", "21075001 Alice", "21075002 Bob"},
			expected: OfferCount{Selected: 2},
		},
		{
			name: "headings switch the section",
			lines: []string{
				"21075001",
				"Waitlisted candidates:",
				"21075002",
				"21075003",
				"Under Review",
				"21075004",
			},
			expected: OfferCount{Selected: 1, Waitlisted: 2, UnderReview: 1},
		},
		{
			name:     "abbreviations",
			lines:    []string{"WL:", "21075001", "SL:", "21075002"},
			expected: OfferCount{Waitlisted: 1, UnderReview: 1},
		},
		{
			name:     "shortlist heading",
			lines:    []string{"Shortlisted for final round", "21075001"},
			expected: OfferCount{UnderReview: 1},
		},
		{
			name:     "heading lines are not counted even with a roll number",
			lines:    []string{"Waitlist 21075001", "21075002"},
			expected: OfferCount{Waitlisted: 1},
		},
		{
			name:     "waitlist is checked before under review",
			lines:    []string{"waitlist / shortlist", "21075001"},
			expected: OfferCount{Waitlisted: 1},
		},
		{
			name:     "one increment per line",
			lines:    []string{"21075001, 21075002, 21075003"},
			expected: OfferCount{Selected: 1},
		},
		{
			name:     "only whole 8 digit tokens",
			lines:    []string{"2107500", "210750011", "roll:21075001.", "phone 9876543210"},
			expected: OfferCount{Selected: 1},
		},
		{
			name: "abbreviations match inside words",
			// "aslam" contains "sl" so the line is taken as a heading
			lines:    []string{"21075001 Aslam", "21075002 Bob"},
			expected: OfferCount{UnderReview: 1},
		},
		{
			name:     "empty",
			lines:    nil,
			expected: OfferCount{},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, ClassifyLines(test.lines))
		})
	}
}

func TestClassifyDocument(t *testing.T) {
	doc := parseDocument(t, thread(
		post(`Selected students:<br>21075001 Alice<br/>21075002 Bob<br>Waitlist:<br>21075003 Carol`),
		post(`21075004 Dan<br>Under review<br>21075005 Eve`),
	))

	require.Equal(t, OfferCount{Selected: 3, Waitlisted: 1, UnderReview: 1}, Classify(doc))
}

func TestClassifyResetsSectionPerPost(t *testing.T) {
	doc := parseDocument(t, thread(
		post(`Waitlist<br>21075001`),
		post(`21075002`),
		post(`21075003`),
	))

	require.Equal(t, OfferCount{Selected: 2, Waitlisted: 1}, Classify(doc))
}

func TestClassifySplitsLiteralNewlines(t *testing.T) {
	doc := parseDocument(t, thread(post("Results\n<p>21075001</p>\n21075002\nwl\n21075003")))

	require.Equal(t, OfferCount{Selected: 2, Waitlisted: 1}, Classify(doc))
}

func TestClassifyIgnoresOtherElements(t *testing.T) {
	doc := parseDocument(t, `<table><tr><td class="signature">21075001</td>`+
		`<td class="post-content">21075002</td></tr></table>`)

	require.Equal(t, OfferCount{Selected: 1}, Classify(doc))
}

func TestClassifyEmptyDocument(t *testing.T) {
	require.Equal(t, OfferCount{}, Classify(parseDocument(t, "")))
}
