package tally

import (
	"context"
	"log/slog"
	"time"

	"noticeboard-tally/lib/scrapers/noticeboard"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("services/tally")

const (
	DefaultDelay    = 500 * time.Millisecond
	DefaultMaxPages = 100
)

// Source is where listing pages and threads come from,
// *noticeboard.Client is the real one.
type Source interface {
	ListingPage(ctx context.Context, page int) noticeboard.Listing
	Thread(ctx context.Context, ref noticeboard.ThreadRef) *goquery.Document
}

type Options struct {
	Mode Mode
	// pause after each listing page
	Delay time.Duration
	// pages after this one are never visited, <= 0 means DefaultMaxPages
	MaxPages int
}

func DefaultOptions(mode Mode) Options {
	return Options{
		Mode:     mode,
		Delay:    DefaultDelay,
		MaxPages: DefaultMaxPages,
	}
}

// Scrape walks the listing from page 1 until a page without topic rows (or
// MaxPages) and tallies every thread whose title matches the mode.
//
// Requests are made one at a time. If ctx is cancelled the partial result is
// returned along with ctx.Err().
func Scrape(ctx context.Context, src Source, opts Options) (Result, error) {
	if _, err := ParseMode(string(opts.Mode)); err != nil {
		return Result{}, err
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}

	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()
	span.SetAttributes(
		attribute.String("mode", string(opts.Mode)),
		attribute.Int("max_pages", opts.MaxPages),
	)

	result := NewResult(opts.Mode)
	for page := 1; page <= opts.MaxPages; page++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		slog.InfoContext(ctx, "scraping page", "page", page)
		listing := src.ListingPage(ctx, page)
		result.PagesVisited = page
		if listing.Rows == 0 {
			slog.InfoContext(ctx, "stopped, no more data", "page", page)
			break
		}

		for _, ref := range listing.Threads {
			if !Matches(ref.Title, opts.Mode) {
				continue
			}
			if err := ctx.Err(); err != nil {
				return result, err
			}

			slog.InfoContext(ctx, "checking thread", "title", ref.Title)
			count := Classify(src.Thread(ctx, ref))
			result.ThreadsChecked++
			if count.IsZero() {
				continue
			}

			company := NormalizeCompany(ref.Title)
			result.Merge(company, count)
			slog.DebugContext(
				ctx, "thread counted",
				"company", company,
				"selected", count.Selected,
				"waitlisted", count.Waitlisted,
				"under_review", count.UnderReview,
			)
		}

		if err := sleep(ctx, opts.Delay); err != nil {
			return result, err
		}
	}

	span.SetAttributes(
		attribute.Int("pages_visited", result.PagesVisited),
		attribute.Int("threads_checked", result.ThreadsChecked),
		attribute.Int("companies", len(result.Companies)),
	)
	return result, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
