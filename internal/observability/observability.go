// Package observability wires the structured logger, tracer and Prometheus
// registry shared by all modules.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/Black-And-White-Club/anleague/internal/observability/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config holds observability settings.
type Config struct {
	ServiceName string
	Environment string
	Version     string
	LogLevel    slog.Level
	Output      io.Writer
}

// Observability bundles the process-wide telemetry handles.
type Observability struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Registry *prometheus.Registry
	Metrics  metrics.Recorder
}

// Init builds the logger, tracer and metrics registry. Development
// environments log as text, everything else logs JSON.
func Init(cfg Config) (*Observability, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.Environment == "development" {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}
	logger := slog.New(handler).With(
		slog.String("service", cfg.ServiceName),
		slog.String("environment", cfg.Environment),
		slog.String("version", cfg.Version),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recorder, err := metrics.NewPrometheus(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return &Observability{
		Logger:   logger,
		Tracer:   otel.GetTracerProvider().Tracer(cfg.ServiceName),
		Registry: registry,
		Metrics:  recorder,
	}, nil
}

// NewNoop returns telemetry that discards logs, spans and measurements.
func NewNoop() *Observability {
	return &Observability{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tracer:   noop.NewTracerProvider().Tracer("noop"),
		Registry: prometheus.NewRegistry(),
		Metrics:  metrics.NewNoop(),
	}
}

// MetricsHandler exposes the registry in Prometheus text format.
func (o *Observability) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(o.Registry, promhttp.HandlerOpts{Registry: o.Registry})
}
