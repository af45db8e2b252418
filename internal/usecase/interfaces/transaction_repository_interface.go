package interfaces

import (
	"context"

	"pixbridge/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
//
// Update applies only the fields present in the TransactionUpdate; it never
// touches external_id or amount, which are fixed at creation. Concurrent
// webhook updates race with last-write-wins semantics; no optimistic
// versioning is performed.

type ITransactionRepository interface {
	Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	GetByExternalID(ctx context.Context, kind entities.TransactionKind, externalID string) (entities.Transaction, error)
	Update(ctx context.Context, id string, upd entities.TransactionUpdate) (entities.Transaction, error)
}
