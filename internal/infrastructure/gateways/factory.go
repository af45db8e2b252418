package gateways

import (
	"fmt"

	"pixbridge/internal/domain/entities"
	"pixbridge/internal/usecase/interfaces"
)

// Factory resolves Gateway records to adapter variants. Selection is a closed
// switch over GatewayType so a third sub-acquirer is a compile-time-checked
// addition; construction is cheap and nothing is cached.

type Factory struct{}

var _ interfaces.IGatewayFactory = (*Factory)(nil)

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) FromRecord(gw entities.Gateway) (interfaces.IGatewayAdapter, error) {
	if gw.ID == "" {
		return nil, ErrGatewayNotConfigured
	}
	if !gw.Active {
		return nil, ErrGatewayInactive
	}
	return f.ByType(gw.Type, gw.BaseURL)
}

func (f *Factory) ByType(t entities.GatewayType, baseURL string) (interfaces.IGatewayAdapter, error) {
	switch t {
	case entities.GatewayTypeSubadqA:
		return NewSubadqAGateway(baseURL), nil
	case entities.GatewayTypeSubadqB:
		return NewSubadqBGateway(baseURL), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGatewayType, t)
	}
}

func (f *Factory) NormalizerFor(t entities.GatewayType) (interfaces.IWebhookNormalizer, error) {
	switch t {
	case entities.GatewayTypeSubadqA:
		return &SubadqAWebhookNormalizer{}, nil
	case entities.GatewayTypeSubadqB:
		return &SubadqBWebhookNormalizer{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGatewayType, t)
	}
}
