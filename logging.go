package statusreset

import (
	"time"

	"github.com/rs/zerolog"
)

// Log event names
const (
	// Run-level events
	EventResetStarted   = "reset_started"
	EventResetCompleted = "reset_completed"
	EventResetFailed    = "reset_failed"

	// Table events
	EventTableAcquired = "table_acquired"
	EventTableScanned  = "table_scanned"
	EventScanTruncated = "scan_truncated"

	// Item events
	EventItemUpdated = "item_updated"
)

// LogResetStarted logs when a reset run starts
func LogResetStarted(logger zerolog.Logger, runID string, cfg ResetConfig) {
	logger.Info().
		Str("event", EventResetStarted).
		Str("run_id", runID).
		Str("table", cfg.TableName).
		Str("key_attribute", cfg.KeyAttribute).
		Str("target_attribute", cfg.TargetAttribute).
		Interface("value", cfg.Value).
		Msg("Reset started")
}

// LogTableAcquired logs when the table handle has been obtained
func LogTableAcquired(logger zerolog.Logger, runID, table string) {
	logger.Debug().
		Str("event", EventTableAcquired).
		Str("run_id", runID).
		Str("table", table).
		Msg("Table acquired")
}

// LogTableScanned logs the result of the single scan request
func LogTableScanned(logger zerolog.Logger, runID string, count int) {
	logger.Info().
		Str("event", EventTableScanned).
		Str("run_id", runID).
		Int("count", count).
		Msg("Table scanned")
}

// LogScanTruncated warns that the scan returned only the first page
func LogScanTruncated(logger zerolog.Logger, runID string, count int) {
	logger.Warn().
		Str("event", EventScanTruncated).
		Str("run_id", runID).
		Int("count", count).
		Msg("Scan returned more pages; only the first page will be updated")
}

// LogItemUpdated logs a single successful item update
func LogItemUpdated(logger zerolog.Logger, runID, key string) {
	logger.Debug().
		Str("event", EventItemUpdated).
		Str("run_id", runID).
		Str("key", key).
		Msg("Item updated")
}

// LogResetCompleted logs successful run completion
func LogResetCompleted(logger zerolog.Logger, runID string, updated int, duration time.Duration) {
	logger.Info().
		Str("event", EventResetCompleted).
		Str("run_id", runID).
		Int("updated", updated).
		Dur("duration", duration).
		Msg("Reset completed")
}

// LogResetFailed logs the error that aborted the run
func LogResetFailed(logger zerolog.Logger, runID string, updated int, err error) {
	logger.Error().
		Str("event", EventResetFailed).
		Str("run_id", runID).
		Int("updated", updated).
		Err(err).
		Msg("Reset failed")
}

// RunLogger creates a logger enriched with run context
func RunLogger(baseLogger zerolog.Logger, runID, table string) zerolog.Logger {
	return baseLogger.With().
		Str("run_id", runID).
		Str("table", table).
		Logger()
}
