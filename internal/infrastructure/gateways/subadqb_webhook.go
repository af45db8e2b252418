package gateways

import (
	"encoding/json"

	"pixbridge/internal/domain/entities"
	"pixbridge/internal/usecase/interfaces"
)

// SubadqBWebhookNormalizer maps SubadqB's data-envelope webhook payloads to
// canonical update fields. Payloads missing the envelope are read flat, as the
// sub-acquirer's sandbox sends both shapes.

type SubadqBWebhookNormalizer struct{}

var _ interfaces.IWebhookNormalizer = (*SubadqBWebhookNormalizer)(nil)

type subadqBWebhookData struct {
	Status string `json:"status"`
	Payer  *struct {
		Name     string `json:"name"`
		Document string `json:"document"`
	} `json:"payer"`
	ConfirmedAt string `json:"confirmed_at"`
	ProcessedAt string `json:"processed_at"`
}

func subadqBData(payload json.RawMessage) (subadqBWebhookData, error) {
	var envelope struct {
		Data *subadqBWebhookData `json:"data"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return subadqBWebhookData{}, err
	}
	if envelope.Data != nil {
		return *envelope.Data, nil
	}

	var flat subadqBWebhookData
	if err := json.Unmarshal(payload, &flat); err != nil {
		return subadqBWebhookData{}, err
	}
	return flat, nil
}

func (n *SubadqBWebhookNormalizer) NormalizePix(payload json.RawMessage) (entities.TransactionUpdate, error) {
	data, err := subadqBData(payload)
	if err != nil {
		return entities.TransactionUpdate{}, err
	}

	upd := entities.TransactionUpdate{
		Status: mapStatus(subadqBPixStatuses, data.Status),
	}
	if data.Payer != nil {
		if data.Payer.Name != "" {
			upd.PayerName = &data.Payer.Name
		}
		if data.Payer.Document != "" {
			upd.PayerDocument = &data.Payer.Document
		}
	}
	if ts, ok := parseWebhookTime(data.ConfirmedAt); ok {
		upd.PaidAt = &ts
	}
	return upd, nil
}

func (n *SubadqBWebhookNormalizer) NormalizeWithdraw(payload json.RawMessage) (entities.TransactionUpdate, error) {
	data, err := subadqBData(payload)
	if err != nil {
		return entities.TransactionUpdate{}, err
	}

	upd := entities.TransactionUpdate{
		Status: mapStatus(subadqBWithdrawStatuses, data.Status),
	}
	if ts, ok := parseWebhookTime(data.ProcessedAt); ok {
		upd.ProcessedAt = &ts
	}
	return upd, nil
}
