package interfaces

import (
	"context"

	"pixbridge/internal/domain/entities"
)

// IGatewayRepository abstracts DynamoDB persistence for Gateway records.
//
// Gateways are read-only from the bridge's perspective; Create exists only so
// local environments can seed the two sub-acquirer records.

type IGatewayRepository interface {
	Create(ctx context.Context, gw entities.Gateway) (entities.Gateway, error)
	GetByID(ctx context.Context, id string) (entities.Gateway, error)
	GetByType(ctx context.Context, t entities.GatewayType) (entities.Gateway, error)
}
