// Package statusreset resets one attribute on every item of a DynamoDB table
// scan page. The run itself lives in the engine package; table services live
// in the store package.
package statusreset

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is a single table record as returned by a scan, keyed by attribute name.
// Items are read-only snapshots; changes happen remotely through UpdateItem.
type Item = map[string]types.AttributeValue

// RunStage represents the position of a reset run in its linear lifecycle
type RunStage string

const (
	RunStageStart          RunStage = "START"
	RunStageHandleAcquired RunStage = "HANDLE_ACQUIRED"
	RunStageScanned        RunStage = "SCANNED"
	RunStageUpdating       RunStage = "UPDATING"
	RunStageDone           RunStage = "DONE"
	RunStageFailed         RunStage = "FAILED"
)

// IsTerminal returns true if the stage is a final state
func (s RunStage) IsTerminal() bool {
	return s == RunStageDone || s == RunStageFailed
}

// String returns the string representation
func (s RunStage) String() string {
	return string(s)
}

// ScanPage is the result of a single scan request.
type ScanPage struct {
	Items []Item
	Count int32

	// LastEvaluatedKey is set by the service when more items remain.
	// It is recorded but never used to continue scanning.
	LastEvaluatedKey Item
}

// Truncated reports whether the service signalled further pages.
func (p *ScanPage) Truncated() bool {
	return p != nil && len(p.LastEvaluatedKey) > 0
}

// UpdateRequest sets a single attribute on the item identified by Key.
// The write is unconditional; attributes not named are left untouched.
type UpdateRequest struct {
	Key       Item
	Attribute string
	Value     interface{}
}

// RunReport summarizes a reset run
type RunReport struct {
	RunID     string   `json:"runId"`
	TableName string   `json:"tableName"`
	Stage     RunStage `json:"stage"`

	// Counts
	Scanned   int  `json:"scanned"`
	Updated   int  `json:"updated"`
	Truncated bool `json:"truncated"`

	// Timing
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	Error *ResetError `json:"error,omitempty"`
}

// Duration returns the elapsed run time, or zero if the run has not finished
func (r *RunReport) Duration() time.Duration {
	if r.CompletedAt == nil {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}
