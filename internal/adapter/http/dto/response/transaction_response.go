package response

import (
	"encoding/json"
	"time"

	"pixbridge/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// TransactionData is the canonical transaction view exposed over HTTP.

type TransactionData struct {
	ID          string                `json:"id"`
	Kind        string                `json:"kind"`
	ExternalID  string                `json:"external_id,omitempty"`
	Status      string                `json:"status"`
	Amount      decimal.Decimal       `json:"amount"`
	QRCode      string                `json:"qr_code,omitempty"`
	BankAccount *entities.BankAccount `json:"bank_account,omitempty"`
	PayerName   string                `json:"payer_name,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	PaidAt      *time.Time            `json:"paid_at,omitempty"`
	ProcessedAt *time.Time            `json:"processed_at,omitempty"`
}

// TransactionResponse is the success envelope used by the transaction routes.

type TransactionResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    TransactionData `json:"data"`
}

func FromTransaction(message string, tx entities.Transaction) TransactionResponse {
	return TransactionResponse{
		Success: true,
		Message: message,
		Data: TransactionData{
			ID:          tx.ID,
			Kind:        string(tx.Kind),
			ExternalID:  tx.ExternalID,
			Status:      string(tx.Status),
			Amount:      tx.Amount,
			QRCode:      tx.QRCode,
			BankAccount: tx.BankAccount,
			PayerName:   tx.PayerName,
			CreatedAt:   tx.CreatedAt,
			PaidAt:      tx.PaidAt,
			ProcessedAt: tx.ProcessedAt,
		},
	}
}

// WebhookEventData is one recorded webhook delivery, payload verbatim.

type WebhookEventData struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Payload     json.RawMessage `json:"payload"`
	ProcessedAt time.Time       `json:"processed_at"`
}

// WebhookEventsResponse is the success envelope for the audit trail route.

type WebhookEventsResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    []WebhookEventData `json:"data"`
}

func FromWebhookEvents(events []entities.WebhookEvent) WebhookEventsResponse {
	data := make([]WebhookEventData, 0, len(events))
	for _, ev := range events {
		data = append(data, WebhookEventData{
			ID:          ev.ID,
			Kind:        string(ev.TransactionKind),
			Payload:     ev.Payload,
			ProcessedAt: ev.ProcessedAt,
		})
	}
	return WebhookEventsResponse{Success: true, Message: "OK", Data: data}
}

// WebhookAck is the unconditional acknowledgment returned to webhook senders.

type WebhookAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewWebhookAck() WebhookAck {
	return WebhookAck{Success: true, Message: "Webhook recebido"}
}
