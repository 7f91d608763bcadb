package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"noticeboard-tally/services/tally"

	"github.com/jedib0t/go-pretty/v6/table"
)

func NewTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

// Table prints one row per company, largest tally first, with the
// totals in the footer.
func Table(out io.Writer, result tally.Result) {
	if len(result.Companies) == 0 {
		fmt.Fprintf(out, "No %s results found.\n", result.Mode)
		return
	}

	t := NewTable(out)
	t.AppendHeader(table.Row{"Company", "Selected", "Waitlisted", "Under Review"})
	for _, company := range result.SortedCompanies() {
		count := result.Companies[company]
		t.AppendRow(table.Row{company, count.Selected, count.Waitlisted, count.UnderReview})
	}
	t.AppendFooter(table.Row{"Total", result.Totals.Selected, result.Totals.Waitlisted, result.Totals.UnderReview})
	t.Render()
}

// Totals prints the totals as a single json object.
func Totals(out io.Writer, totals tally.OfferCount) error {
	buf, err := json.Marshal(totals)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(buf))
	return err
}

// CSV writes the company tally indexed by company name, the header's first
// cell is left empty. Quoting follows RFC 4180.
func CSV(out io.Writer, result tally.Result) error {
	w := csv.NewWriter(out)
	err := w.Write([]string{
		"",
		tally.BucketSelected.String(),
		tally.BucketWaitlisted.String(),
		tally.BucketUnderReview.String(),
	})
	if err != nil {
		return err
	}
	for _, company := range result.SortedCompanies() {
		count := result.Companies[company]
		err := w.Write([]string{
			company,
			strconv.Itoa(count.Selected),
			strconv.Itoa(count.Waitlisted),
			strconv.Itoa(count.UnderReview),
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func SimilarPairs(out io.Writer, pairs []tally.SimilarPair) {
	if len(pairs) == 0 {
		fmt.Fprintln(out, "No similar company names found.")
		return
	}

	t := NewTable(out)
	t.SetTitle("Possibly the same company")
	t.AppendHeader(table.Row{"Company", "Company", "Similarity"})
	for _, p := range pairs {
		t.AppendRow(table.Row{p.Left, p.Right, fmt.Sprintf("%.3f", p.Similarity)})
	}
	t.Render()
}
