// Package fakeboard generates a random notice board whose offer tally is
// known up front and serves it over http like the real forum does.
package fakeboard

import (
	"fmt"
	"html"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"noticeboard-tally/lib/scrapers/noticeboard"
	"noticeboard-tally/services/tally"
)

// Topic is one thread of the board, Posts hold the raw post-content html.
type Topic struct {
	Id      int
	Title   string
	Company string
	Posts   []string
	// the mode whose results this thread announces, empty for unrelated threads
	Mode  tally.Mode
	Count tally.OfferCount
}

type Board struct {
	Session  string
	PageSize int
	Topics   []Topic
}

// Expected is the tally a scrape of the whole board in `mode` must produce.
func (b Board) Expected(mode tally.Mode) tally.CompanyTally {
	out := tally.CompanyTally{}
	for _, topic := range b.Topics {
		if topic.Mode != mode || topic.Count.IsZero() {
			continue
		}
		out.Merge(topic.Company, topic.Count)
	}
	return out
}

func (b Board) Pages() int {
	return (len(b.Topics) + b.PageSize - 1) / b.PageSize
}

var companies = []string{
	"Google", "Amazon", "Microsoft", "Uber", "Zomato", "Goldman Sachs",
	"Texas Instruments", "Sprinklr", "Flipkart", "Rubrik",
}

// titles per kind, %s is the company
var (
	internTitles = []string{
		"%s - Internship Results",
		"[2025] %s: intern offers",
		"Topic: %s - Summer Intern Selections",
	}
	ppoTitles = []string{
		"%s - PPO Results",
		"[Campus] %s: Pre-Placement Offers",
		"%s - PPO list",
	}
	otherTitles = []string{
		"%s - Interview Shortlist for Internship",
		"%s Placement Drive Schedule",
		"%s - Online Test Venue",
	}
	kind = randomSwitch(4, 3, 3)
)

const (
	kindIntern = iota
	kindPPO
	kindOther
)

// Generate creates a board with `topics` threads from a deterministic seed.
func Generate(seed int64, topics, pageSize int) Board {
	rndm := rand.New(rand.NewSource(seed))
	board := Board{
		Session:  fmt.Sprintf("dev-%d", seed),
		PageSize: pageSize,
	}

	for i := 0; i < topics; i++ {
		company := pick(rndm, companies)
		topic := Topic{Id: i + 1, Company: company}

		switch kind(rndm) {
		case kindIntern:
			topic.Title = fmt.Sprintf(pick(rndm, internTitles), company)
			topic.Mode = tally.ModeIntern
		case kindPPO:
			topic.Title = fmt.Sprintf(pick(rndm, ppoTitles), company)
			topic.Mode = tally.ModePPO
		default:
			topic.Title = fmt.Sprintf(pick(rndm, otherTitles), company)
		}

		posts := 1 + rndm.Intn(2)
		for p := 0; p < posts; p++ {
			body, count := generatePost(rndm)
			topic.Posts = append(topic.Posts, body)
			topic.Count = topic.Count.Add(count)
		}
		board.Topics = append(board.Topics, topic)
	}
	return board
}

var (
	waitlistHeadings    = []string{"Waitlist", "WL:", "Wait-listed candidates (WL)"}
	underReviewHeadings = []string{"Under Review", "Shortlisted", "SL"}
	postLine            = randomSwitch(6, 1, 1, 1)
)

const (
	lineRollNumber = iota
	lineWaitlistHeading
	lineUnderReviewHeading
	lineNoise
)

func generatePost(rndm *rand.Rand) (string, tally.OfferCount) {
	var count tally.OfferCount
	bucket := tally.BucketSelected
	lines := []string{"Congratulations to the following students"}

	n := rndm.Intn(12)
	for i := 0; i < n; i++ {
		switch postLine(rndm) {
		case lineRollNumber:
			lines = append(lines, fmt.Sprintf("%s %s", randomRollNumber(rndm), string(rune('A'+rndm.Intn(26)))+"."))
			count.Inc(bucket)
		case lineWaitlistHeading:
			lines = append(lines, pick(rndm, waitlistHeadings))
			bucket = tally.BucketWaitlisted
		case lineUnderReviewHeading:
			lines = append(lines, pick(rndm, underReviewHeadings))
			bucket = tally.BucketUnderReview
		default:
			lines = append(lines, "Reporting time 10:00 AM, room 123")
		}
	}

	escaped := make([]string, len(lines))
	for i, l := range lines {
		escaped[i] = html.EscapeString(l)
	}
	return strings.Join(escaped, "<br>"), count
}

// Handler serves the board under noticeboard.DefaultListingPath and
// /forum/t/<id>/, requests without the session cookie get a 403.
func (b Board) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(noticeboard.DefaultListingPath, b.serveListing)
	mux.HandleFunc("/forum/t/", b.serveThread)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(noticeboard.SessionCookieName)
		if err != nil || cookie.Value != b.Session {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func (b Board) serveListing(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	var sb strings.Builder
	sb.WriteString("<html><body><table>")
	start := (page - 1) * b.PageSize
	for i := start; i < start+b.PageSize && i < len(b.Topics); i++ {
		topic := b.Topics[i]
		fmt.Fprintf(
			&sb,
			`<tr class="topic-row"><td class="topic-name"><a href="/forum/t/%d/">%s</a></td><td>%d</td></tr>`,
			topic.Id, html.EscapeString(topic.Title), len(topic.Posts),
		)
	}
	sb.WriteString("</table></body></html>")

	w.Header().Set("content-type", "text/html; charset=utf-8")
	fmt.Fprint(w, sb.String())
}

func (b Board) serveThread(w http.ResponseWriter, r *http.Request) {
	idText := strings.Trim(strings.TrimPrefix(r.URL.Path, "/forum/t/"), "/")
	id, err := strconv.Atoi(idText)
	if err != nil || id < 1 || id > len(b.Topics) {
		http.NotFound(w, r)
		return
	}
	topic := b.Topics[id-1]

	var sb strings.Builder
	fmt.Fprintf(&sb, "<html><body><h1>%s</h1><table>", html.EscapeString(topic.Title))
	for _, post := range topic.Posts {
		fmt.Fprintf(&sb, `<tr><td class="post-content">%s</td></tr>`, post)
	}
	sb.WriteString("</table></body></html>")

	w.Header().Set("content-type", "text/html; charset=utf-8")
	fmt.Fprint(w, sb.String())
}
