package gateways

import (
	"encoding/json"
	"strings"

	"pixbridge/internal/domain/entities"
	"pixbridge/internal/usecase/interfaces"
)

// Router classifies inbound webhook payloads by shape alone; the
// sub-acquirers share no schema and send no explicit routing key.
//
// One decoder per known gateway shape is attempted in order:
//   - SubadqA payloads carry an "event" field.
//   - SubadqB payloads carry a "type" or "signature" field.
//
// A payload matching neither, or matching one but carrying no correlation id,
// is reported as unrecognized; callers accept it as a no-op.

type Router struct{}

var _ interfaces.IWebhookRouter = (*Router)(nil)

func NewRouter() *Router {
	return &Router{}
}

func (r *Router) Classify(payload json.RawMessage) (interfaces.WebhookClassification, bool) {
	if c, ok := decodeSubadqA(payload); ok {
		return c, true
	}
	if c, ok := decodeSubadqB(payload); ok {
		return c, true
	}
	return interfaces.WebhookClassification{}, false
}

type subadqAWebhookShape struct {
	Event         *string `json:"event"`
	TransactionID string  `json:"transaction_id"`
	PixID         string  `json:"pix_id"`
	WithdrawID    string  `json:"withdraw_id"`
}

func decodeSubadqA(payload json.RawMessage) (interfaces.WebhookClassification, bool) {
	var shape subadqAWebhookShape
	if err := json.Unmarshal(payload, &shape); err != nil || shape.Event == nil {
		return interfaces.WebhookClassification{}, false
	}

	event := *shape.Event
	var kind entities.TransactionKind
	var externalID string
	switch {
	case strings.Contains(event, "pix") || shape.PixID != "":
		kind = entities.TransactionKindPix
		externalID = firstNonEmpty(shape.TransactionID, shape.PixID)
	case strings.Contains(event, "withdraw") || shape.WithdrawID != "":
		kind = entities.TransactionKindWithdraw
		externalID = firstNonEmpty(shape.WithdrawID, shape.TransactionID)
	default:
		return interfaces.WebhookClassification{}, false
	}

	if externalID == "" {
		return interfaces.WebhookClassification{}, false
	}
	return interfaces.WebhookClassification{
		GatewayType: entities.GatewayTypeSubadqA,
		Kind:        kind,
		ExternalID:  externalID,
	}, true
}

type subadqBWebhookShape struct {
	Type      *string `json:"type"`
	Signature *string `json:"signature"`
	Data      struct {
		ID string `json:"id"`
	} `json:"data"`
}

func decodeSubadqB(payload json.RawMessage) (interfaces.WebhookClassification, bool) {
	var shape subadqBWebhookShape
	if err := json.Unmarshal(payload, &shape); err != nil {
		return interfaces.WebhookClassification{}, false
	}
	if shape.Type == nil && shape.Signature == nil {
		return interfaces.WebhookClassification{}, false
	}

	var eventType string
	if shape.Type != nil {
		eventType = *shape.Type
	}

	var kind entities.TransactionKind
	switch {
	case strings.Contains(eventType, "pix"):
		kind = entities.TransactionKindPix
	case strings.Contains(eventType, "withdraw"):
		kind = entities.TransactionKindWithdraw
	default:
		return interfaces.WebhookClassification{}, false
	}

	if shape.Data.ID == "" {
		return interfaces.WebhookClassification{}, false
	}
	return interfaces.WebhookClassification{
		GatewayType: entities.GatewayTypeSubadqB,
		Kind:        kind,
		ExternalID:  shape.Data.ID,
	}, true
}
