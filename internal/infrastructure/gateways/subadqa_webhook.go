package gateways

import (
	"encoding/json"
	"time"

	"pixbridge/internal/domain/entities"
	"pixbridge/internal/usecase/interfaces"
)

// SubadqAWebhookNormalizer maps SubadqA's flat webhook payloads to canonical
// update fields. Absent fields stay nil so stored values survive.

type SubadqAWebhookNormalizer struct{}

var _ interfaces.IWebhookNormalizer = (*SubadqAWebhookNormalizer)(nil)

func (n *SubadqAWebhookNormalizer) NormalizePix(payload json.RawMessage) (entities.TransactionUpdate, error) {
	var wh struct {
		Status      string `json:"status"`
		PayerName   string `json:"payer_name"`
		PayerCpf    string `json:"payer_cpf"`
		PaymentDate string `json:"payment_date"`
	}
	if err := json.Unmarshal(payload, &wh); err != nil {
		return entities.TransactionUpdate{}, err
	}

	upd := entities.TransactionUpdate{
		Status: mapStatus(subadqAPixStatuses, wh.Status),
	}
	if wh.PayerName != "" {
		upd.PayerName = &wh.PayerName
	}
	if wh.PayerCpf != "" {
		upd.PayerDocument = &wh.PayerCpf
	}
	if ts, ok := parseWebhookTime(wh.PaymentDate); ok {
		upd.PaidAt = &ts
	}
	return upd, nil
}

func (n *SubadqAWebhookNormalizer) NormalizeWithdraw(payload json.RawMessage) (entities.TransactionUpdate, error) {
	var wh struct {
		Status      string `json:"status"`
		CompletedAt string `json:"completed_at"`
	}
	if err := json.Unmarshal(payload, &wh); err != nil {
		return entities.TransactionUpdate{}, err
	}

	upd := entities.TransactionUpdate{
		Status: mapStatus(subadqAWithdrawStatuses, wh.Status),
	}
	if ts, ok := parseWebhookTime(wh.CompletedAt); ok {
		upd.ProcessedAt = &ts
	}
	return upd, nil
}

// parseWebhookTime accepts the timestamp formats the sub-acquirers actually
// send: RFC3339 (with or without sub-seconds) and "2006-01-02 15:04:05".
func parseWebhookTime(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}
