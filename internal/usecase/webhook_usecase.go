package usecase

import (
	"context"
	"encoding/json"
	"log"

	"pixbridge/internal/usecase/interfaces"
)

// WebhookOutcome reports what happened to one inbound delivery. The HTTP
// boundary ignores it and always acknowledges success; it exists for operator
// logs and tests.

type WebhookOutcome struct {
	Processed     bool
	Reason        string
	TransactionID string
}

// IWebhookUseCase handles the inbound notification boundary: classify the
// payload by shape, resolve the transaction, dispatch processing. It is an
// at-least-once, best-effort contract; no failure is ever surfaced to the
// sender.

type IWebhookUseCase interface {
	HandleInbound(ctx context.Context, payload json.RawMessage) WebhookOutcome
}

type WebhookUseCase struct {
	router       interfaces.IWebhookRouter
	repo         interfaces.ITransactionRepository
	transactions ITransactionUseCase
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	router interfaces.IWebhookRouter,
	repo interfaces.ITransactionRepository,
	transactions ITransactionUseCase,
) *WebhookUseCase {
	return &WebhookUseCase{
		router:       router,
		repo:         repo,
		transactions: transactions,
	}
}

func (u *WebhookUseCase) HandleInbound(ctx context.Context, payload json.RawMessage) WebhookOutcome {
	if len(payload) == 0 || !json.Valid(payload) {
		log.Printf("[webhook][usecase] empty or invalid payload; accepting")
		return WebhookOutcome{Reason: "empty or invalid payload"}
	}

	classification, ok := u.router.Classify(payload)
	if !ok {
		log.Printf("[webhook][usecase] unrecognized payload shape; accepting payload_len=%d", len(payload))
		return WebhookOutcome{Reason: "unrecognized payload"}
	}

	log.Printf("[webhook][usecase] classified gateway_type=%s kind=%s external_id=%s",
		classification.GatewayType, classification.Kind, classification.ExternalID)

	tx, err := u.repo.GetByExternalID(ctx, classification.Kind, classification.ExternalID)
	if err != nil {
		log.Printf("[webhook][usecase] transaction lookup failed external_id=%s err=%v", classification.ExternalID, err)
		return WebhookOutcome{Reason: "lookup failed"}
	}
	if tx.ID == "" {
		log.Printf("[webhook][usecase] no transaction for webhook kind=%s external_id=%s", classification.Kind, classification.ExternalID)
		return WebhookOutcome{Reason: "transaction not found"}
	}

	updated, err := u.transactions.ProcessWebhook(ctx, classification.Kind, tx.ID, classification.GatewayType, payload)
	if err != nil {
		log.Printf("[webhook][usecase] processing failed transaction_id=%s err=%v", tx.ID, err)
		return WebhookOutcome{Reason: "processing failed", TransactionID: tx.ID}
	}

	return WebhookOutcome{Processed: true, TransactionID: updated.ID}
}
