package interfaces

import (
	"context"
	"time"

	"pixbridge/internal/domain/entities"
)

// IConfirmationQueue is the injected port for scheduling the deferred
// confirmation that follows a create. The bridge has no control over the
// queue's workers or redelivery; handlers invoked on dequeue must tolerate
// re-processing the same tuple.

type IConfirmationQueue interface {
	Enqueue(ctx context.Context, transactionID string, kind entities.TransactionKind, gatewayType entities.GatewayType, notBefore time.Time) error
}
