package noticeboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"noticeboard-tally/lib/htmlutil"
	"noticeboard-tally/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseUrl     = "https://placement.iitbhu.ac.in"
	DefaultListingPath = "/forum/c/notice-board/2025-26/"
	DefaultTimeout     = time.Second * 10

	SessionCookieName = "sessionid"
)

var ErrNoSession = errors.New("a session token is required")

type ClientOptions struct {
	BaseUrl     string
	ListingPath string
	// value of the sessionid cookie sent with every request
	Session string
	Timeout time.Duration
	// wraps the transport with a browser-like TLS configuration and headers
	BypassCloudflare bool
	// upper bound on requests made by the session, <= 0 means unlimited
	RequestsPerSecond float64
	// receives request/response dumps when debug logging is enabled, may be nil
	Output restyutil.InstrumentOutput
}

// Client is the authenticated session against the forum, it must be
// closed once the scrape using it is done.
type Client struct {
	BaseUrl     *url.URL
	ListingPath string
	Http        *resty.Client

	limiter *rate.Limiter
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Session == "" {
		return nil, ErrNoSession
	}
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.ListingPath == "" {
		opts.ListingPath = DefaultListingPath
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}
	if !baseUrl.IsAbs() {
		return nil, fmt.Errorf("base url must be absolute: %q", opts.BaseUrl)
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.SetCookie(&http.Cookie{
		Name:  SessionCookieName,
		Value: opts.Session,
	})
	if opts.BypassCloudflare {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(opts.Timeout)

	restyutil.InstrumentClient(client, tracer, opts.Output)

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	return &Client{
		BaseUrl:     baseUrl,
		ListingPath: opts.ListingPath,
		Http:        client,
		limiter:     rate.NewLimiter(limit, 1),
	}, nil
}

// Close releases the connections held by the session.
func (c *Client) Close() {
	c.Http.GetClient().CloseIdleConnections()
}

// Fetch GETs `endpoint` (relative to the base url, or absolute) and parses it.
//
// It never fails: on a transport error, a timeout or a non-2xx status the
// problem is logged as a warning and an empty document is returned.
func (c *Client) Fetch(ctx context.Context, endpoint string) *goquery.Document {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("endpoint", endpoint))

	err := c.limiter.Wait(ctx)
	if err != nil {
		return failedFetch(ctx, span, endpoint, err)
	}

	res, err := c.Http.R().
		SetContext(ctx).
		Get(endpoint)
	if err == nil && !res.IsSuccess() {
		err = fmt.Errorf("unexpected status %s", res.Status())
	}
	if err != nil {
		return failedFetch(ctx, span, endpoint, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return failedFetch(ctx, span, endpoint, err)
	}
	return doc
}

func failedFetch(ctx context.Context, span trace.Span, endpoint string, err error) *goquery.Document {
	span.RecordError(err)
	span.SetStatus(codes.Error, "failed to fetch page")
	fetchFailureCounter.Add(ctx, 1)
	slog.WarnContext(ctx, "failed to fetch page", "url", endpoint, "err", err)
	return htmlutil.EmptyDocument()
}
