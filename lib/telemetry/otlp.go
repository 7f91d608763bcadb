package telemetry

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// OtlpEndpoint configures one signal, GrpcEndpoint wins when both are set.
type OtlpEndpoint struct {
	GrpcEndpoint string            `json:"grpc_endpoint"`
	HttpEndpoint string            `json:"http_endpoint"`
	Headers      map[string]string `json:"headers"`
}

func (e OtlpEndpoint) configured() bool {
	return e.GrpcEndpoint != "" || e.HttpEndpoint != ""
}

type OtlpConfig struct {
	Traces  OtlpEndpoint `json:"traces"`
	Metrics OtlpEndpoint `json:"metrics"`
}

// Config is the shape of telemetry.json5.
type Config struct {
	Otlp OtlpConfig `json:"otlp"`
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newTraceProvider(ctx context.Context, r *resource.Resource, config Config) (*trace.TracerProvider, error) {
	opts := []trace.TracerProviderOption{trace.WithResource(r)}
	if config.Otlp.Traces.configured() {
		exporter, err := otlpTraceExporter(ctx, config.Otlp.Traces)
		if err != nil {
			return nil, err
		}
		opts = append(opts, trace.WithBatcher(exporter))
	}
	return trace.NewTracerProvider(opts...), nil
}

func otlpTraceExporter(ctx context.Context, e OtlpEndpoint) (trace.SpanExporter, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	if e.GrpcEndpoint != "" {
		slog.Info(
			"tracer export initialized",
			"type", "grpc",
			"endpoint", e.GrpcEndpoint,
			"headers", len(e.Headers) > 0,
		)
		return otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpointURL(e.GrpcEndpoint),
			otlptracegrpc.WithHeaders(e.Headers),
		)
	}

	slog.Info(
		"tracer export initialized",
		"type", "http",
		"endpoint", e.HttpEndpoint,
		"headers", len(e.Headers) > 0,
	)
	return otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(e.HttpEndpoint),
		otlptracehttp.WithHeaders(e.Headers),
	)
}

func newMetricProvider(ctx context.Context, r *resource.Resource, config Config) (*metric.MeterProvider, error) {
	opts := []metric.Option{metric.WithResource(r)}
	if config.Otlp.Metrics.configured() {
		exporter, err := otlpMetricExporter(ctx, config.Otlp.Metrics)
		if err != nil {
			return nil, err
		}
		opts = append(opts, metric.WithReader(
			metric.NewPeriodicReader(exporter, metric.WithInterval(time.Second*5)),
		))
	}
	return metric.NewMeterProvider(opts...), nil
}

func otlpMetricExporter(ctx context.Context, e OtlpEndpoint) (metric.Exporter, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	if e.GrpcEndpoint != "" {
		slog.Info(
			"metric exporter initialized",
			"type", "grpc",
			"endpoint", e.GrpcEndpoint,
			"headers", len(e.Headers) > 0,
		)
		return otlpmetricgrpc.New(
			ctx,
			otlpmetricgrpc.WithEndpointURL(e.GrpcEndpoint),
			otlpmetricgrpc.WithHeaders(e.Headers),
		)
	}
	slog.Info(
		"metric exporter initialized",
		"type", "http",
		"endpoint", e.HttpEndpoint,
		"headers", len(e.Headers) > 0,
	)
	return otlpmetrichttp.New(
		ctx,
		otlpmetrichttp.WithEndpointURL(e.HttpEndpoint),
		otlpmetrichttp.WithHeaders(e.Headers),
	)
}
