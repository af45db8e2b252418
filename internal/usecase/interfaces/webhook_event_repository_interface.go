package interfaces

import (
	"context"

	"pixbridge/internal/domain/entities"
)

// IWebhookEventRepository abstracts the append-only webhook audit trail.
//
// Append always writes a new record; repeated deliveries of the same payload
// produce separate records.

type IWebhookEventRepository interface {
	Append(ctx context.Context, ev entities.WebhookEvent) (entities.WebhookEvent, error)
	ListByTransactionID(ctx context.Context, transactionID string) ([]entities.WebhookEvent, error)
}
