package extraction

import (
	"context"
	"encoding/json"
)

// OperationStatus is the upstream service's view of an operation.
type OperationStatus string

const (
	StatusRunning   OperationStatus = "running"
	StatusSucceeded OperationStatus = "succeeded"
	StatusFailed    OperationStatus = "failed"
)

// PollResult is one observation of an external operation.
type PollResult struct {
	Status OperationStatus
	// Fields is set when Status is succeeded.
	Fields json.RawMessage
	// Error is set when Status is failed.
	Error string
}

// Client is the three-call contract with the extraction service. Any
// compliant OCR/extraction backend can be substituted.
type Client interface {
	// Submit uploads one unit and returns the operation ref to poll.
	Submit(ctx context.Context, fileBytes []byte, modelID string) (string, error)
	// Poll queries the operation by ref.
	Poll(ctx context.Context, operationRef string) (*PollResult, error)
}
