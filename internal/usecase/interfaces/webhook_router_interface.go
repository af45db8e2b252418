package interfaces

import (
	"encoding/json"

	"pixbridge/internal/domain/entities"
)

// WebhookClassification is the typed result of shape-based payload routing:
// which sub-acquirer sent the notification, which transaction kind it refers
// to, and the correlation id (our external_id) to look the transaction up by.

type WebhookClassification struct {
	GatewayType entities.GatewayType
	Kind        entities.TransactionKind
	ExternalID  string
}

// IWebhookRouter classifies an arbitrary inbound payload with no explicit
// discriminator. ok is false when no known gateway shape matches or the
// matched shape carries no correlation id; callers treat that as a no-op
// accept, never as an error to the sender.

type IWebhookRouter interface {
	Classify(payload json.RawMessage) (c WebhookClassification, ok bool)
}
