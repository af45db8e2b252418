package interfaces

import (
	"encoding/json"

	"pixbridge/internal/domain/entities"
)

// IWebhookNormalizer maps one sub-acquirer's webhook payload to the canonical
// update fields. Fields absent from the payload are left nil in the update so
// they never overwrite stored values; a status outside the known table
// normalizes to PENDING.

type IWebhookNormalizer interface {
	NormalizePix(payload json.RawMessage) (entities.TransactionUpdate, error)
	NormalizeWithdraw(payload json.RawMessage) (entities.TransactionUpdate, error)
}
