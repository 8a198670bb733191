package engine

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sicko7947/statusreset"
)

// Engine runs a bulk attribute reset against a table service
type Engine struct {
	service statusreset.TableService
	logger  zerolog.Logger
	config  statusreset.ResetConfig
}

// EngineOption configures the reset engine
type EngineOption func(*Engine)

// WithLogger sets a custom logger for the engine
func WithLogger(logger zerolog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithConfig sets the table and attribute to reset
func WithConfig(config statusreset.ResetConfig) EngineOption {
	return func(e *Engine) {
		e.config = config
	}
}

// NewEngine creates a new reset engine with optional configuration
// If no logger is provided, a default stdout logger with Info level is used
// If no config is provided, statusreset.DefaultResetConfig is used
func NewEngine(service statusreset.TableService, opts ...EngineOption) *Engine {
	// Default logger: pretty console output, Info level
	defaultLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)

	eng := &Engine{
		service: service,
		logger:  defaultLogger,
		config:  statusreset.DefaultResetConfig,
	}

	for _, opt := range opts {
		opt(eng)
	}

	return eng
}

// Config returns the engine's reset configuration
func (e *Engine) Config() statusreset.ResetConfig {
	return e.config
}

// Run acquires the table, scans a single page and sets the target attribute
// on every scanned item, one update at a time in scan order. The first
// error aborts the run; items already updated stay updated. The returned
// report is never nil.
func (e *Engine) Run(ctx context.Context) (*statusreset.RunReport, error) {
	report := &statusreset.RunReport{
		RunID:     uuid.New().String(),
		TableName: e.config.TableName,
		Stage:     statusreset.RunStageStart,
		StartedAt: time.Now(),
	}
	logger := statusreset.RunLogger(e.logger, report.RunID, e.config.TableName)

	if err := e.config.Validate(); err != nil {
		return e.fail(logger, report, statusreset.ClassifyError(err))
	}

	statusreset.LogResetStarted(logger, report.RunID, e.config)

	// Start -> HandleAcquired
	table, err := e.service.Table(ctx, e.config.TableName)
	if err != nil {
		return e.fail(logger, report, statusreset.ClassifyError(err))
	}
	report.Stage = statusreset.RunStageHandleAcquired
	statusreset.LogTableAcquired(logger, report.RunID, table.Name())

	// HandleAcquired -> Scanned
	page, err := table.Scan(ctx)
	if err != nil {
		return e.fail(logger, report, statusreset.ClassifyError(err))
	}
	report.Stage = statusreset.RunStageScanned
	report.Scanned = len(page.Items)
	report.Truncated = page.Truncated()
	statusreset.LogTableScanned(logger, report.RunID, report.Scanned)
	if report.Truncated {
		statusreset.LogScanTruncated(logger, report.RunID, report.Scanned)
	}

	// Scanned -> (UpdateItem)*
	if len(page.Items) > 0 {
		report.Stage = statusreset.RunStageUpdating
	}
	for _, item := range page.Items {
		if rerr := e.updateItem(ctx, logger, report, table, item); rerr != nil {
			return e.fail(logger, report, rerr)
		}
		report.Updated++
	}

	// -> Done
	report.Stage = statusreset.RunStageDone
	report.CompletedAt = statusreset.ToPtr(time.Now())
	statusreset.LogResetCompleted(logger, report.RunID, report.Updated, report.Duration())

	return report, nil
}

func (e *Engine) fail(logger zerolog.Logger, report *statusreset.RunReport, rerr *statusreset.ResetError) (*statusreset.RunReport, error) {
	if rerr.Stage == "" {
		rerr.Stage = report.Stage
	}
	report.Stage = statusreset.RunStageFailed
	report.Error = rerr
	report.CompletedAt = statusreset.ToPtr(time.Now())

	statusreset.LogResetFailed(logger, report.RunID, report.Updated, rerr)

	return report, rerr
}
