package entities

import "time"

// ConfirmationJobStatus tracks a deferred-confirmation job on the work queue.

type ConfirmationJobStatus string

const (
	ConfirmationJobPending   ConfirmationJobStatus = "PENDING"
	ConfirmationJobCompleted ConfirmationJobStatus = "COMPLETED"
	ConfirmationJobFailed    ConfirmationJobStatus = "FAILED"
)

// ConfirmationJob is one scheduled confirmation tuple. Jobs may be
// redelivered; the handler that consumes them must be idempotent.
//
// Storage model (DynamoDB):
//   - PK: id

type ConfirmationJob struct {
	ID              string                `json:"id"`
	TransactionID   string                `json:"transaction_id"`
	TransactionKind TransactionKind       `json:"transaction_kind"`
	GatewayType     GatewayType           `json:"gateway_type"`
	Status          ConfirmationJobStatus `json:"status"`
	Attempts        int                   `json:"attempts"`
	NotBefore       time.Time             `json:"not_before"`
	CreatedAt       time.Time             `json:"created_at"`
}
