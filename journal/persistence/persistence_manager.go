package persistence

import (
	"context"
	"time"

	"github.com/AntonStoeckl/solid-specifications-go/journal"
	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

const (
	logMsgRenderFailed = "failed to render journal"
	logMsgSaveFailed   = "failed to save journal"
	logMsgJournalSaved = "journal saved"
	logAttrError       = "error"
	logAttrDestination = "destination"
	logAttrFormat      = "format"
	logAttrEntryCount  = "entry_count"
	logAttrDurationMS  = "duration_ms"
	metricSaveDuration = "journal_save_duration_seconds"
	metricEntriesSaved = "journal_entries_saved"
	metricSaveFailures = "journal_save_failures_total"
	labelStatus        = "status"
	labelFormat        = "format"
	labelErrorType     = "error_type"
	statusSuccess      = "success"
	statusError        = "error"
	errorTypeRendering = "rendering"
	errorTypeStorage   = "storage"
)

// Option defines a functional option for configuring PersistenceManager.
type Option func(*PersistenceManager) error

// WithFormat sets the rendering format, FormatText by default.
func WithFormat(format Format) Option {
	return func(pm *PersistenceManager) error {
		switch format {
		case FormatText, FormatJSON:
			pm.format = format
			return nil

		default:
			return ErrUnsupportedFormat
		}
	}
}

// WithLogger sets the logger, which receives one info message per saved journal and errors for failures.
func WithLogger(logger specification.Logger) Option {
	return func(pm *PersistenceManager) error {
		pm.logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger receiving the same messages as the Logger.
func WithContextualLogger(logger specification.ContextualLogger) Option {
	return func(pm *PersistenceManager) error {
		pm.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(collector specification.MetricsCollector) Option {
	return func(pm *PersistenceManager) error {
		pm.metricsCollector = collector
		return nil
	}
}

// PersistenceManager saves journals to a Storage. The Journal itself knows nothing about persistence.
type PersistenceManager struct {
	storage          Storage
	format           Format
	logger           specification.Logger
	contextualLogger specification.ContextualLogger
	metricsCollector specification.MetricsCollector
}

func NewPersistenceManager(storage Storage, options ...Option) (PersistenceManager, error) {
	if storage == nil {
		return PersistenceManager{}, ErrNilStorage
	}

	pm := PersistenceManager{
		storage: storage,
		format:  FormatText,
	}

	for _, option := range options {
		if err := option(&pm); err != nil {
			return PersistenceManager{}, err
		}
	}

	return pm, nil
}

// Save renders j and stores it under destination.
func (pm PersistenceManager) Save(ctx context.Context, j *journal.Journal, destination string) error {
	if destination == "" {
		return ErrEmptyDestination
	}

	start := time.Now()

	content, renderErr := Render(j, pm.format)
	if renderErr != nil {
		pm.logError(ctx, logMsgRenderFailed, renderErr, destination)
		pm.recordFailure(ctx, errorTypeRendering, time.Since(start))

		return renderErr
	}

	if saveErr := pm.storage.Save(ctx, destination, content); saveErr != nil {
		pm.logError(ctx, logMsgSaveFailed, saveErr, destination)
		pm.recordFailure(ctx, errorTypeStorage, time.Since(start))

		return saveErr
	}

	duration := time.Since(start)
	pm.recordSuccess(ctx, j.Len(), duration)
	pm.logInfo(
		ctx,
		logMsgJournalSaved,
		logAttrDestination, destination,
		logAttrFormat, string(pm.format),
		logAttrEntryCount, j.Len(),
		logAttrDurationMS, float64(duration.Microseconds())/1000,
	)

	return nil
}

// SaveToFile saves j as text into the named file.
func SaveToFile(ctx context.Context, j *journal.Journal, filename string) error {
	pm, err := NewPersistenceManager(NewFileStorage())
	if err != nil {
		return err
	}

	return pm.Save(ctx, j, filename)
}

func (pm PersistenceManager) logInfo(ctx context.Context, msg string, args ...any) {
	if pm.logger != nil {
		pm.logger.Info(msg, args...)
	}

	if pm.contextualLogger != nil {
		pm.contextualLogger.InfoContext(ctx, msg, args...)
	}
}

func (pm PersistenceManager) logError(ctx context.Context, msg string, err error, destination string) {
	args := []any{logAttrError, err.Error(), logAttrDestination, destination, logAttrFormat, string(pm.format)}

	if pm.logger != nil {
		pm.logger.Error(msg, args...)
	}

	if pm.contextualLogger != nil {
		pm.contextualLogger.ErrorContext(ctx, msg, args...)
	}
}

func (pm PersistenceManager) recordSuccess(ctx context.Context, entryCount int, duration time.Duration) {
	if pm.metricsCollector == nil {
		return
	}

	labels := map[string]string{labelStatus: statusSuccess, labelFormat: string(pm.format)}

	if contextualCollector, ok := pm.metricsCollector.(specification.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricSaveDuration, duration, labels)
		contextualCollector.RecordValueContext(ctx, metricEntriesSaved, float64(entryCount), labels)

		return
	}

	pm.metricsCollector.RecordDuration(metricSaveDuration, duration, labels)
	pm.metricsCollector.RecordValue(metricEntriesSaved, float64(entryCount), labels)
}

func (pm PersistenceManager) recordFailure(ctx context.Context, errorType string, duration time.Duration) {
	if pm.metricsCollector == nil {
		return
	}

	durationLabels := map[string]string{labelStatus: statusError, labelFormat: string(pm.format)}
	failureLabels := map[string]string{labelStatus: statusError, labelFormat: string(pm.format), labelErrorType: errorType}

	if contextualCollector, ok := pm.metricsCollector.(specification.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricSaveDuration, duration, durationLabels)
		contextualCollector.IncrementCounterContext(ctx, metricSaveFailures, failureLabels)

		return
	}

	pm.metricsCollector.RecordDuration(metricSaveDuration, duration, durationLabels)
	pm.metricsCollector.IncrementCounter(metricSaveFailures, failureLabels)
}

