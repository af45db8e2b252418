package gateways

import (
	"errors"
	"testing"

	"pixbridge/internal/domain/entities"
)

func TestFactory_FromRecord(t *testing.T) {
	f := NewFactory()

	t.Run("missing record", func(t *testing.T) {
		_, err := f.FromRecord(entities.Gateway{})
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("inactive record", func(t *testing.T) {
		_, err := f.FromRecord(entities.Gateway{ID: "gw-1", Type: entities.GatewayTypeSubadqA, Active: false})
		if !errors.Is(err, ErrGatewayInactive) {
			t.Fatalf("expected ErrGatewayInactive, got %v", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := f.FromRecord(entities.Gateway{ID: "gw-1", Type: "subadq_c", Active: true})
		if !errors.Is(err, ErrUnsupportedGatewayType) {
			t.Fatalf("expected ErrUnsupportedGatewayType, got %v", err)
		}
	})

	t.Run("subadq_a", func(t *testing.T) {
		adapter, err := f.FromRecord(entities.Gateway{ID: "gw-a", Type: entities.GatewayTypeSubadqA, BaseURL: "http://a", Active: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := adapter.(*SubadqAGateway); !ok {
			t.Fatalf("expected SubadqAGateway, got %T", adapter)
		}
		if adapter.BaseURL() != "http://a" {
			t.Fatalf("base url not forwarded, got %s", adapter.BaseURL())
		}
	})

	t.Run("subadq_b", func(t *testing.T) {
		adapter, err := f.FromRecord(entities.Gateway{ID: "gw-b", Type: entities.GatewayTypeSubadqB, BaseURL: "http://b", Active: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := adapter.(*SubadqBGateway); !ok {
			t.Fatalf("expected SubadqBGateway, got %T", adapter)
		}
	})
}

func TestFactory_NormalizerFor(t *testing.T) {
	f := NewFactory()

	t.Run("subadq_a", func(t *testing.T) {
		n, err := f.NormalizerFor(entities.GatewayTypeSubadqA)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := n.(*SubadqAWebhookNormalizer); !ok {
			t.Fatalf("expected SubadqAWebhookNormalizer, got %T", n)
		}
	})

	t.Run("subadq_b", func(t *testing.T) {
		n, err := f.NormalizerFor(entities.GatewayTypeSubadqB)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := n.(*SubadqBWebhookNormalizer); !ok {
			t.Fatalf("expected SubadqBWebhookNormalizer, got %T", n)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := f.NormalizerFor("whatever")
		if !errors.Is(err, ErrUnsupportedGatewayType) {
			t.Fatalf("expected ErrUnsupportedGatewayType, got %v", err)
		}
	})
}
