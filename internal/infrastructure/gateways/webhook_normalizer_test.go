package gateways

import (
	"encoding/json"
	"testing"
	"time"

	"pixbridge/internal/domain/entities"
)

func TestSubadqAWebhookNormalizer_NormalizePix(t *testing.T) {
	n := &SubadqAWebhookNormalizer{}

	t.Run("full payload", func(t *testing.T) {
		payload := json.RawMessage(`{
			"event": "pix_paid",
			"transaction_id": "ext-1",
			"status": "PAID",
			"payer_name": "Fulano de Tal",
			"payer_cpf": "12345678900",
			"payment_date": "2026-08-30T12:30:45Z"
		}`)

		upd, err := n.NormalizePix(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if upd.Status != entities.StatusPaid {
			t.Fatalf("expected PAID, got %s", upd.Status)
		}
		if upd.PayerName == nil || *upd.PayerName != "Fulano de Tal" {
			t.Fatalf("payer name not mapped: %+v", upd)
		}
		if upd.PayerDocument == nil || *upd.PayerDocument != "12345678900" {
			t.Fatalf("payer document not mapped: %+v", upd)
		}
		want := time.Date(2026, 8, 30, 12, 30, 45, 0, time.UTC)
		if upd.PaidAt == nil || !upd.PaidAt.Equal(want) {
			t.Fatalf("paid_at not mapped: %+v", upd.PaidAt)
		}
	})

	t.Run("absent fields stay nil", func(t *testing.T) {
		upd, err := n.NormalizePix(json.RawMessage(`{"event":"pix_created","status":"PENDING"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if upd.PayerName != nil || upd.PayerDocument != nil || upd.PaidAt != nil {
			t.Fatalf("absent fields must stay nil: %+v", upd)
		}
	})

	t.Run("unknown status normalizes to PENDING", func(t *testing.T) {
		upd, err := n.NormalizePix(json.RawMessage(`{"status":"EXPLODED"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if upd.Status != entities.StatusPending {
			t.Fatalf("expected PENDING, got %s", upd.Status)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := n.NormalizePix(json.RawMessage(`{`)); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestSubadqAWebhookNormalizer_NormalizeWithdraw(t *testing.T) {
	n := &SubadqAWebhookNormalizer{}

	t.Run("success with space-separated timestamp", func(t *testing.T) {
		payload := json.RawMessage(`{"event":"withdraw_completed","status":"SUCCESS","completed_at":"2026-08-30 09:15:00"}`)
		upd, err := n.NormalizeWithdraw(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if upd.Status != entities.StatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", upd.Status)
		}
		want := time.Date(2026, 8, 30, 9, 15, 0, 0, time.UTC)
		if upd.ProcessedAt == nil || !upd.ProcessedAt.Equal(want) {
			t.Fatalf("completed_at not mapped: %+v", upd.ProcessedAt)
		}
	})

	t.Run("unparseable timestamp ignored", func(t *testing.T) {
		upd, err := n.NormalizeWithdraw(json.RawMessage(`{"status":"FAILED","completed_at":"yesterday"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if upd.Status != entities.StatusFailed || upd.ProcessedAt != nil {
			t.Fatalf("unexpected update: %+v", upd)
		}
	})
}

func TestSubadqBWebhookNormalizer_NormalizePix(t *testing.T) {
	n := &SubadqBWebhookNormalizer{}

	t.Run("data envelope", func(t *testing.T) {
		payload := json.RawMessage(`{
			"type": "pix.status_update",
			"data": {
				"id": "b-1",
				"status": "CONFIRMED",
				"payer": {"name": "Beltrano", "document": "98765432100"},
				"confirmed_at": "2026-08-30T10:00:00Z"
			},
			"signature": "sig"
		}`)

		upd, err := n.NormalizePix(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if upd.Status != entities.StatusConfirmed {
			t.Fatalf("expected CONFIRMED, got %s", upd.Status)
		}
		if upd.PayerName == nil || *upd.PayerName != "Beltrano" {
			t.Fatalf("payer name not mapped: %+v", upd)
		}
		if upd.PaidAt == nil {
			t.Fatalf("confirmed_at not mapped")
		}
	})

	t.Run("flat payload without envelope", func(t *testing.T) {
		upd, err := n.NormalizePix(json.RawMessage(`{"type":"pix.status_update","status":"PAID"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if upd.Status != entities.StatusPaid {
			t.Fatalf("expected PAID, got %s", upd.Status)
		}
	})
}

func TestSubadqBWebhookNormalizer_NormalizeWithdraw(t *testing.T) {
	n := &SubadqBWebhookNormalizer{}

	t.Run("done with processed_at", func(t *testing.T) {
		payload := json.RawMessage(`{"type":"withdraw.status_update","data":{"id":"b-2","status":"DONE","processed_at":"2026-08-30T11:00:00Z"}}`)
		upd, err := n.NormalizeWithdraw(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if upd.Status != entities.StatusDone {
			t.Fatalf("expected DONE, got %s", upd.Status)
		}
		if upd.ProcessedAt == nil {
			t.Fatalf("processed_at not mapped")
		}
	})

	t.Run("unknown status normalizes to PENDING", func(t *testing.T) {
		upd, err := n.NormalizeWithdraw(json.RawMessage(`{"data":{"status":"LIMBO"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if upd.Status != entities.StatusPending {
			t.Fatalf("expected PENDING, got %s", upd.Status)
		}
	})
}
