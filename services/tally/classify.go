package tally

import (
	"regexp"
	"strings"

	"noticeboard-tally/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// the abbreviations are matched anywhere in the line, not as whole words
var waitlistHeading = regexp.MustCompile(`waitlist|wl`)
var underReviewHeading = regexp.MustCompile(`under review|shortlist|sl`)

// roll numbers are exactly 8 digits
var rollNumber = regexp.MustCompile(`\b\d{8}\b`)

const postBodySelector = "td.post-content"

// ClassifyLines counts the roll numbers in the lines of one post body.
//
// The section starts as selected and switches whenever a heading line is
// seen, heading lines themselves are never counted. A line counts at most
// once, however many roll numbers it holds.
func ClassifyLines(lines []string) OfferCount {
	var count OfferCount
	section := BucketSelected

	for _, line := range lines {
		lower := strings.ToLower(line)

		if waitlistHeading.MatchString(lower) {
			section = BucketWaitlisted
			continue
		}
		if underReviewHeading.MatchString(lower) {
			section = BucketUnderReview
			continue
		}
		if rollNumber.MatchString(line) {
			count.Inc(section)
		}
	}

	return count
}

// Classify sums ClassifyLines over every post body of a thread page, each
// body starts over in the selected section.
func Classify(doc *goquery.Document) OfferCount {
	var count OfferCount
	for _, post := range doc.Find(postBodySelector).Nodes {
		count = count.Add(ClassifyLines(htmlutil.GetLines(post)))
	}
	return count
}
