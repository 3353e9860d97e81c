package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/AntonStoeckl/solid-specifications-go/specification"
	"github.com/AntonStoeckl/solid-specifications-go/specification/oteladapters"
	"github.com/AntonStoeckl/solid-specifications-go/specification/promadapters"
)

const instrumentationName = "github.com/AntonStoeckl/solid-specifications-go/cmd/solid"

const (
	logMsgMetricCollected = "metric collected"
	logMsgSpanEnded       = "span ended"
	logMsgGatheringFailed = "gathering metrics failed"
	logMsgShutdownFailed  = "shutting down telemetry failed"
	logAttrName           = "name"
	logAttrSeries         = "series"
	logAttrStatus         = "status"
	logAttrTraceID        = "trace_id"
	logAttrDurationMS     = "duration_ms"
	logAttrError          = "error"
)

// observability holds the adapters handed to the catalog store and the journal persistence manager.
type observability struct {
	logger           *slog.Logger
	contextualLogger specification.ContextualLogger
	metrics          specification.MetricsCollector
	tracing          specification.TracingCollector
	registry         *prometheus.Registry
	metricReader     *sdkmetric.ManualReader
	shutdownFuncs    []func(context.Context) error
}

func newObservability(cfg Config, logOutput io.Writer) observability {
	level, _ := cfg.slogLevel()
	handlerOptions := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(logOutput, handlerOptions)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(logOutput, handlerOptions)
	}

	obs := observability{logger: slog.New(handler)}

	switch cfg.Metrics {
	case metricsPrometheus:
		obs.registry = prometheus.NewRegistry()
		obs.metrics = promadapters.NewMetricsCollector(obs.registry, "solid")

	case metricsOTel:
		obs.metricReader = sdkmetric.NewManualReader()
		meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(obs.metricReader))
		otel.SetMeterProvider(meterProvider)
		obs.shutdownFuncs = append(obs.shutdownFuncs, meterProvider.Shutdown)
		obs.metrics = oteladapters.NewMetricsCollector(meterProvider.Meter(instrumentationName))
	}

	if cfg.OTel {
		tracerProvider := sdktrace.NewTracerProvider(
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
			sdktrace.WithSpanProcessor(spanLogger{logger: obs.logger}),
		)
		otel.SetTracerProvider(tracerProvider)
		obs.shutdownFuncs = append(obs.shutdownFuncs, tracerProvider.Shutdown)
		obs.tracing = oteladapters.NewTracingCollector(tracerProvider.Tracer(instrumentationName))

		// no log exporter is configured, so records go to the regular handler with trace correlation
		obs.contextualLogger = oteladapters.NewSlogBridgeLoggerWithHandler(oteladapters.NewTraceContextHandler(handler))
	}

	return obs
}

// reportMetrics logs a summary of the collected Prometheus or OpenTelemetry metrics, if any.
func (o observability) reportMetrics(ctx context.Context) {
	switch {
	case o.registry != nil:
		families, err := o.registry.Gather()
		if err != nil {
			o.logger.WarnContext(ctx, logMsgGatheringFailed, logAttrError, err.Error())
			return
		}

		for _, family := range families {
			o.logger.InfoContext(ctx, logMsgMetricCollected, logAttrName, family.GetName(), logAttrSeries, len(family.GetMetric()))
		}

	case o.metricReader != nil:
		var resourceMetrics metricdata.ResourceMetrics
		if err := o.metricReader.Collect(ctx, &resourceMetrics); err != nil {
			o.logger.WarnContext(ctx, logMsgGatheringFailed, logAttrError, err.Error())
			return
		}

		for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
			for _, m := range scopeMetrics.Metrics {
				o.logger.InfoContext(ctx, logMsgMetricCollected, logAttrName, m.Name, logAttrSeries, dataPointCount(m.Data))
			}
		}
	}
}

// shutdown flushes and stops the OpenTelemetry providers, after reportMetrics.
func (o observability) shutdown(ctx context.Context) {
	var err error
	for _, shutdownFunc := range o.shutdownFuncs {
		err = errors.Join(err, shutdownFunc(ctx))
	}

	if err != nil {
		o.logger.WarnContext(ctx, logMsgShutdownFailed, logAttrError, err.Error())
	}
}

func dataPointCount(data metricdata.Aggregation) int {
	switch d := data.(type) {
	case metricdata.Histogram[float64]:
		return len(d.DataPoints)
	case metricdata.Sum[int64]:
		return len(d.DataPoints)
	case metricdata.Gauge[float64]:
		return len(d.DataPoints)
	default:
		return 0
	}
}

// spanLogger is a span processor that logs every ended span.
type spanLogger struct {
	logger *slog.Logger
}

func (p spanLogger) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p spanLogger) OnEnd(span sdktrace.ReadOnlySpan) {
	p.logger.Info(
		logMsgSpanEnded,
		logAttrName, span.Name(),
		logAttrStatus, span.Status().Code.String(),
		logAttrTraceID, span.SpanContext().TraceID().String(),
		logAttrDurationMS, span.EndTime().Sub(span.StartTime()).Milliseconds(),
	)
}

func (p spanLogger) Shutdown(context.Context) error {
	return nil
}

func (p spanLogger) ForceFlush(context.Context) error {
	return nil
}

var _ sdktrace.SpanProcessor = spanLogger{}
