package noticeboard

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("scrapers/noticeboard")
var meter = otel.Meter("scrapers/noticeboard")

var pageCounter, _ = meter.Int64Counter("noticeboard.pages")
var threadCounter, _ = meter.Int64Counter("noticeboard.threads")
var fetchFailureCounter, _ = meter.Int64Counter("noticeboard.fetch_failures")
