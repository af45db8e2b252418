package gateways

import "pixbridge/internal/domain/entities"

// Per-gateway, per-kind status tables. Each sub-acquirer reports only the
// statuses listed here; anything else normalizes to PENDING rather than
// failing the webhook.

var subadqAPixStatuses = map[string]entities.TransactionStatus{
	"PENDING":    entities.StatusPending,
	"PROCESSING": entities.StatusProcessing,
	"CONFIRMED":  entities.StatusConfirmed,
	"PAID":       entities.StatusPaid,
	"CANCELLED":  entities.StatusCancelled,
	"FAILED":     entities.StatusFailed,
}

var subadqAWithdrawStatuses = map[string]entities.TransactionStatus{
	"PENDING":    entities.StatusPending,
	"PROCESSING": entities.StatusProcessing,
	"SUCCESS":    entities.StatusSuccess,
	"FAILED":     entities.StatusFailed,
	"CANCELLED":  entities.StatusCancelled,
}

var subadqBPixStatuses = map[string]entities.TransactionStatus{
	"PENDING":    entities.StatusPending,
	"PROCESSING": entities.StatusProcessing,
	"PAID":       entities.StatusPaid,
	"CONFIRMED":  entities.StatusConfirmed,
	"CANCELLED":  entities.StatusCancelled,
	"FAILED":     entities.StatusFailed,
}

var subadqBWithdrawStatuses = map[string]entities.TransactionStatus{
	"PENDING":    entities.StatusPending,
	"PROCESSING": entities.StatusProcessing,
	"DONE":       entities.StatusDone,
	"SUCCESS":    entities.StatusSuccess,
	"FAILED":     entities.StatusFailed,
	"CANCELLED":  entities.StatusCancelled,
}

func mapStatus(table map[string]entities.TransactionStatus, raw string) entities.TransactionStatus {
	if s, ok := table[raw]; ok {
		return s
	}
	return entities.StatusPending
}
