package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"pixbridge/internal/domain/entities"
	"pixbridge/internal/usecase"
	"pixbridge/internal/usecase/interfaces"
)

// SimulationHandler emulates the sandbox sub-acquirers: on dequeue it
// fabricates a gateway-shaped webhook payload for the transaction and pushes
// it through the normal inbound pipeline. Development aid only; production
// deployments receive real notifications on /webhook and run the queue with a
// different handler.

type SimulationHandler struct {
	repo     interfaces.ITransactionRepository
	webhooks usecase.IWebhookUseCase
}

var _ ConfirmationHandler = (*SimulationHandler)(nil)

func NewSimulationHandler(repo interfaces.ITransactionRepository, webhooks usecase.IWebhookUseCase) *SimulationHandler {
	return &SimulationHandler{repo: repo, webhooks: webhooks}
}

func (h *SimulationHandler) HandleConfirmation(ctx context.Context, job entities.ConfirmationJob) error {
	tx, err := h.repo.GetByID(ctx, job.TransactionID)
	if err != nil {
		return err
	}
	if tx.ID == "" {
		return fmt.Errorf("transaction not found: %s", job.TransactionID)
	}

	payload, err := json.Marshal(simulatedPayload(tx, job.GatewayType))
	if err != nil {
		return err
	}

	outcome := h.webhooks.HandleInbound(ctx, payload)
	log.Printf("[confirmation][simulator] webhook simulated transaction_id=%s gateway_type=%s processed=%t",
		job.TransactionID, job.GatewayType, outcome.Processed)
	return nil
}

// simulatedPayload mirrors what the sandbox environments send: an 80% chance
// of a success status, full payer data on PIX confirmations.
func simulatedPayload(tx entities.Transaction, gatewayType entities.GatewayType) map[string]any {
	now := time.Now().UTC().Format(time.RFC3339)

	if tx.Kind == entities.TransactionKindPix {
		status := pickStatus([]string{"CONFIRMED", "PAID"}, []string{"CANCELLED", "FAILED"})
		if gatewayType == entities.GatewayTypeSubadqA {
			return map[string]any{
				"event":          "pix_payment_confirmed",
				"transaction_id": tx.ExternalID,
				"pix_id":         tx.ExternalID,
				"status":         status,
				"amount":         tx.Amount,
				"payer_name":     "João da Silva",
				"payer_cpf":      randomDocument(),
				"payment_date":   now,
			}
		}
		if status == "CONFIRMED" {
			status = "PAID"
		}
		return map[string]any{
			"type": "pix.status_update",
			"data": map[string]any{
				"id":     tx.ExternalID,
				"status": status,
				"value":  tx.Amount,
				"payer": map[string]any{
					"name":     "Maria Oliveira",
					"document": randomDocument(),
				},
				"confirmed_at": now,
			},
			"signature": randomSignature(),
		}
	}

	if gatewayType == entities.GatewayTypeSubadqA {
		return map[string]any{
			"event":        "withdraw_completed",
			"withdraw_id":  tx.ExternalID,
			"status":       pickStatus([]string{"SUCCESS"}, []string{"CANCELLED", "FAILED"}),
			"amount":       tx.Amount,
			"completed_at": now,
		}
	}
	return map[string]any{
		"type": "withdraw.status_update",
		"data": map[string]any{
			"id":           tx.ExternalID,
			"status":       pickStatus([]string{"DONE", "SUCCESS"}, []string{"CANCELLED", "FAILED"}),
			"amount":       tx.Amount,
			"processed_at": now,
		},
		"signature": randomSignature(),
	}
}

func pickStatus(success, failure []string) string {
	if rand.Intn(100) < 80 {
		return success[rand.Intn(len(success))]
	}
	return failure[rand.Intn(len(failure))]
}

func randomDocument() string {
	return fmt.Sprintf("%011d", rand.Int63n(100000000000))
}

func randomSignature() string {
	return fmt.Sprintf("%012x", rand.Int63n(1<<48))
}

// SimulationEnabled gates the simulator the same way the sandbox payment
// mocks are gated elsewhere: a truthy WEBHOOK_SIMULATION env value.
func SimulationEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("WEBHOOK_SIMULATION")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
