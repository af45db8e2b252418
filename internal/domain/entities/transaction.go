package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind discriminates the two operations this core supports.

type TransactionKind string

const (
	TransactionKindPix      TransactionKind = "pix"
	TransactionKindWithdraw TransactionKind = "withdraw"
)

// TransactionStatus is the canonical status shared by both kinds. The valid
// set differs per kind (see PixStatuses / WithdrawStatuses); anything a
// gateway reports outside the known set normalizes to PENDING.

type TransactionStatus string

const (
	StatusPending    TransactionStatus = "PENDING"
	StatusProcessing TransactionStatus = "PROCESSING"
	StatusConfirmed  TransactionStatus = "CONFIRMED"
	StatusPaid       TransactionStatus = "PAID"
	StatusSuccess    TransactionStatus = "SUCCESS"
	StatusDone       TransactionStatus = "DONE"
	StatusCancelled  TransactionStatus = "CANCELLED"
	StatusFailed     TransactionStatus = "FAILED"
)

// PixStatuses and WithdrawStatuses enumerate the per-kind state machines.
// Terminal-looking statuses do not block later webhook updates; the last
// delivery wins.
var (
	PixStatuses = []TransactionStatus{
		StatusPending, StatusProcessing, StatusConfirmed, StatusPaid, StatusCancelled, StatusFailed,
	}
	WithdrawStatuses = []TransactionStatus{
		StatusPending, StatusProcessing, StatusSuccess, StatusDone, StatusFailed, StatusCancelled,
	}
)

// BankAccount is the withdraw destination provided by the owner.

type BankAccount struct {
	Bank                  string `json:"bank"`
	Agency                string `json:"agency"`
	Account               string `json:"account"`
	AccountType           string `json:"account_type,omitempty"`
	AccountHolderName     string `json:"account_holder_name"`
	AccountHolderDocument string `json:"account_holder_document"`
}

// Transaction is the canonical PIX/withdraw record persisted by the bridge.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (external_id-index): external_id
//
// Invariants:
//   - ExternalID is assigned once, from the gateway create response, and is
//     immutable afterwards.
//   - Amount is fixed at creation; adapters may convert it for transport
//     (e.g. minor units) but never mutate the stored value.
//   - GatewayID never changes for the lifetime of the transaction.

type Transaction struct {
	ID         string            `json:"id"`
	Kind       TransactionKind   `json:"kind"`
	OwnerID    string            `json:"owner_id"`
	GatewayID  string            `json:"gateway_id"`
	ExternalID string            `json:"external_id,omitempty"`
	Status     TransactionStatus `json:"status"`
	Amount     decimal.Decimal   `json:"amount"`

	// PIX-only fields.
	QRCode        string `json:"qr_code,omitempty"`
	PayerName     string `json:"payer_name,omitempty"`
	PayerDocument string `json:"payer_document,omitempty"`

	// Withdraw-only field.
	BankAccount *BankAccount `json:"bank_account,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// PaidAt is set by PIX confirmation webhooks, ProcessedAt by withdraw ones.
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

// TransactionUpdate carries the partial update extracted from a webhook.
// Nil pointers mean "leave the stored value alone"; webhooks never force a
// field back to empty.

type TransactionUpdate struct {
	Status        TransactionStatus
	PayerName     *string
	PayerDocument *string
	PaidAt        *time.Time
	ProcessedAt   *time.Time
}
