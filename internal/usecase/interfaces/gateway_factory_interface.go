package interfaces

import "pixbridge/internal/domain/entities"

// IGatewayFactory resolves a configured Gateway record to the adapter and
// webhook normalizer for its type. Resolution fails for missing or inactive
// records and for unknown types; construction is cheap and uncached.

type IGatewayFactory interface {
	FromRecord(gw entities.Gateway) (IGatewayAdapter, error)
	NormalizerFor(t entities.GatewayType) (IWebhookNormalizer, error)
}
