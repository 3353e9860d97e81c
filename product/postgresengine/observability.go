package postgresengine

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

const (
	metricQueryDuration   = "catalog_query_duration_seconds"
	metricSaveDuration    = "catalog_save_duration_seconds"
	metricProductsQueried = "catalog_products_queried"
	metricProductsSaved   = "catalog_products_saved"
	metricDatabaseErrors  = "catalog_database_errors_total"

	spanNameQuery = "catalog.query"
	spanNameSave  = "catalog.save"

	spanAttrOperation    = "operation"
	spanAttrTable        = "table"
	spanAttrProductCount = "product_count"
	spanAttrErrorType    = "error_type"
	spanAttrDurationMS   = "duration_ms"

	labelStatus = "status"

	statusSuccess = "success"
	statusError   = "error"

	operationQuery = "query"
	operationSave  = "save"

	errorTypeBuildQuery    = "build_query"
	errorTypeDatabaseQuery = "database_query"
	errorTypeDatabaseExec  = "database_exec"
	errorTypeRowScan       = "row_scan"
	errorTypeRowsAffected  = "rows_affected"
)

var (
	durationMetrics = map[string]string{operationQuery: metricQueryDuration, operationSave: metricSaveDuration}
	countMetrics    = map[string]string{operationQuery: metricProductsQueried, operationSave: metricProductsSaved}
	spanNames       = map[string]string{operationQuery: spanNameQuery, operationSave: spanNameSave}
)

/***** logging *****/

// logSQL logs an executed statement with its duration at debug level to every configured logger.
func (s Store) logSQL(ctx context.Context, sqlQuery string, action string, duration time.Duration) {
	args := []any{logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery}

	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+action, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action, args...)
	}
}

// logOperation logs operational information at info level to every configured logger.
func (s Store) logOperation(ctx context.Context, action string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	}
}

// logWarn logs a non-fatal failure at warn level to every configured logger.
func (s Store) logWarn(ctx context.Context, message string, err error) {
	if s.logger != nil {
		s.logger.Warn(message, logAttrError, err.Error())
	}

	if s.contextualLogger != nil {
		s.contextualLogger.WarnContext(ctx, message, logAttrError, err.Error())
	}
}

// logError logs a failure at error level to every configured logger.
func (s Store) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := append([]any{logAttrError, err.Error()}, args...)

	if s.logger != nil {
		s.logger.Error(message, allArgs...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

/***** metrics *****/

func (s Store) recordDuration(ctx context.Context, metric string, duration time.Duration, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := s.metricsCollector.(specification.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	s.metricsCollector.RecordDuration(metric, duration, labels)
}

func (s Store) recordValue(ctx context.Context, metric string, value float64, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := s.metricsCollector.(specification.ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metric, value, labels)
		return
	}

	s.metricsCollector.RecordValue(metric, value, labels)
}

func (s Store) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := s.metricsCollector.(specification.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
		return
	}

	s.metricsCollector.IncrementCounter(metric, labels)
}

/***** operation observer *****/

// operationObserver bundles span lifecycle and metrics recording for one Query or Save call.
type operationObserver struct {
	store     Store
	ctx       context.Context
	operation string
	span      specification.SpanContext
	start     time.Time
}

// startObservation starts the span (if tracing is configured) and the clock for an operation.
func (s Store) startObservation(ctx context.Context, operation string) (*operationObserver, context.Context) {
	var span specification.SpanContext

	if s.tracingCollector != nil {
		ctx, span = s.tracingCollector.StartSpan(
			ctx,
			spanNames[operation],
			map[string]string{spanAttrOperation: operation, spanAttrTable: s.tableName},
		)
	}

	return &operationObserver{
		store:     s,
		ctx:       ctx,
		operation: operation,
		span:      span,
		start:     time.Now(),
	}, ctx
}

func (o *operationObserver) finishSuccess(productCount int) time.Duration {
	duration := time.Since(o.start)
	labels := map[string]string{spanAttrOperation: o.operation, labelStatus: statusSuccess}

	o.store.recordDuration(o.ctx, durationMetrics[o.operation], duration, labels)
	o.store.recordValue(o.ctx, countMetrics[o.operation], float64(productCount), labels)

	if o.span != nil {
		count := strconv.Itoa(productCount)
		o.span.SetStatus(statusSuccess)
		o.span.AddAttribute(spanAttrProductCount, count)
		o.span.AddAttribute(spanAttrDurationMS, strconv.FormatFloat(toMilliseconds(duration), 'f', 3, 64))
		o.store.tracingCollector.FinishSpan(o.span, statusSuccess, map[string]string{spanAttrProductCount: count})
	}

	return duration
}

func (o *operationObserver) finishError(errorType string) {
	duration := time.Since(o.start)
	labels := map[string]string{spanAttrOperation: o.operation, labelStatus: statusError}

	o.store.recordDuration(o.ctx, durationMetrics[o.operation], duration, labels)
	o.store.incrementCounter(
		o.ctx,
		metricDatabaseErrors,
		map[string]string{spanAttrOperation: o.operation, labelStatus: statusError, spanAttrErrorType: errorType},
	)

	if o.span != nil {
		o.span.SetStatus(statusError)
		o.span.AddAttribute(spanAttrErrorType, errorType)
		o.store.tracingCollector.FinishSpan(o.span, statusError, map[string]string{spanAttrErrorType: errorType})
	}
}
