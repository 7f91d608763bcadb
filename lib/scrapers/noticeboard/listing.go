package noticeboard

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
)

// ThreadRef is a topic row of the listing, Link is absolute.
type ThreadRef struct {
	Title string
	Link  string
}

type Listing struct {
	Page int
	// number of topic rows on the page, including the ones without a usable link
	Rows    int
	Threads []ThreadRef
}

func (c *Client) listingEndpoint(page int) string {
	return fmt.Sprintf("%s?page=%d", c.ListingPath, page)
}

// ListingPage fetches page `page` (1-based) of the notice board.
func (c *Client) ListingPage(ctx context.Context, page int) Listing {
	ctx, span := tracer.Start(ctx, "ListingPage")
	defer span.End()
	span.SetAttributes(attribute.Int("page", page))

	pageCounter.Add(ctx, 1)
	doc := c.Fetch(ctx, c.listingEndpoint(page))
	listing := ParseListing(doc, c.resolveFunc(c.listingEndpoint(page)))
	listing.Page = page

	span.SetAttributes(
		attribute.Int("rows", listing.Rows),
		attribute.Int("threads", len(listing.Threads)),
	)
	return listing
}

// Thread fetches the page of a single topic.
func (c *Client) Thread(ctx context.Context, ref ThreadRef) *goquery.Document {
	ctx, span := tracer.Start(ctx, "Thread")
	defer span.End()
	span.SetAttributes(attribute.String("title", ref.Title))

	threadCounter.Add(ctx, 1)
	return c.Fetch(ctx, ref.Link)
}

// ParseListing extracts the topic rows of a listing page. Rows without a
// title anchor or without an href are counted but skipped.
func ParseListing(doc *goquery.Document, resolve func(href string) string) Listing {
	var listing Listing
	doc.Find("tr.topic-row").Each(func(_ int, row *goquery.Selection) {
		listing.Rows++

		anchor := row.Find("td.topic-name a").First()
		if anchor.Length() == 0 {
			return
		}
		href, ok := anchor.Attr("href")
		if !ok {
			return
		}

		listing.Threads = append(listing.Threads, ThreadRef{
			Title: strings.TrimSpace(anchor.Text()),
			Link:  resolve(href),
		})
	})
	return listing
}

// resolveFunc turns an href found on the page at `endpoint` into an
// absolute url. Root-relative hrefs are appended to the base url as-is.
func (c *Client) resolveFunc(endpoint string) func(string) string {
	base := strings.TrimSuffix(c.BaseUrl.String(), "/")
	return func(href string) string {
		link, err := url.Parse(href)
		if err != nil {
			return base + href
		}
		if link.IsAbs() {
			return href
		}
		if strings.HasPrefix(href, "/") {
			return base + href
		}
		page, err := url.Parse(base + endpoint)
		if err != nil {
			return base + "/" + href
		}
		return page.ResolveReference(link).String()
	}
}
