package entities

import (
	"encoding/json"
	"time"
)

// WebhookEvent is the append-only audit record of one received notification.
//
// Every delivery produces a new record, repeats included; events are never
// updated or deduplicated.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (transaction_id-index): transaction_id

type WebhookEvent struct {
	ID              string          `json:"id"`
	TransactionKind TransactionKind `json:"transaction_kind"`
	TransactionID   string          `json:"transaction_id"`
	Payload         json.RawMessage `json:"payload"`
	ProcessedAt     time.Time       `json:"processed_at"`
}
