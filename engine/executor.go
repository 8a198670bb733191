package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sicko7947/statusreset"
)

// updateItem issues the single update for one scanned item. Missing keys
// and failed updates are returned as ResetErrors carrying the item key.
func (e *Engine) updateItem(
	ctx context.Context,
	logger zerolog.Logger,
	report *statusreset.RunReport,
	table statusreset.TableHandle,
	item statusreset.Item,
) *statusreset.ResetError {
	key, keyValue, ok := statusreset.KeyOf(item, e.config.KeyAttribute)
	if !ok {
		return statusreset.NewResetError(
			statusreset.ErrCodeMissingKey,
			fmt.Sprintf("scanned item has no %s attribute", e.config.KeyAttribute),
		).WithStage(report.Stage)
	}

	err := table.UpdateItem(ctx, statusreset.UpdateRequest{
		Key:       key,
		Attribute: e.config.TargetAttribute,
		Value:     e.config.Value,
	})
	if err != nil {
		return statusreset.NewResetError(
			statusreset.ErrCodeUpdateFailed,
			fmt.Sprintf("failed to set %s: %v", e.config.TargetAttribute, err),
		).WithStage(report.Stage).WithKey(keyValue).WithCause(err)
	}

	statusreset.LogItemUpdated(logger, report.RunID, keyValue)
	return nil
}
