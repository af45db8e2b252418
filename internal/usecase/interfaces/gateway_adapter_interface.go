package interfaces

import (
	"context"
	"encoding/json"

	"pixbridge/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PixPayer identifies the expected payer on a PIX charge.

type PixPayer struct {
	Name    string `json:"name"`
	CpfCnpj string `json:"cpf_cnpj"`
}

// CreatePixInput is the canonical create-PIX command. Adapters translate it
// into their sub-acquirer's wire shape; Amount stays an exact decimal here
// even when the wire wants minor units.

type CreatePixInput struct {
	Amount      decimal.Decimal
	Description string
	MerchantID  string
	Currency    string
	OrderID     string
	Payer       *PixPayer
	ExpiresIn   int
}

// CreateWithdrawInput is the canonical create-withdraw command.
// TransactionID carries the bridge-side id for sub-acquirers that echo it.

type CreateWithdrawInput struct {
	Amount        decimal.Decimal
	BankAccount   entities.BankAccount
	MerchantID    string
	TransactionID string
}

// NormalizedPixCreate is the canonical view of a create-PIX wire response.

type NormalizedPixCreate struct {
	ExternalID string
	Status     entities.TransactionStatus
	QRCode     string
}

// NormalizedWithdrawCreate is the canonical view of a create-withdraw wire response.

type NormalizedWithdrawCreate struct {
	ExternalID string
	Status     entities.TransactionStatus
}

// IGatewayAdapter is the closed capability set implemented once per
// sub-acquirer. Adding a gateway means a new implementation plus a new
// GatewayType constant; the factory switch keeps the set compile-time checked.

type IGatewayAdapter interface {
	CreatePix(ctx context.Context, in CreatePixInput) (json.RawMessage, error)
	CreateWithdraw(ctx context.Context, in CreateWithdrawInput) (json.RawMessage, error)
	NormalizePixResponse(raw json.RawMessage) (NormalizedPixCreate, error)
	NormalizeWithdrawResponse(raw json.RawMessage) (NormalizedWithdrawCreate, error)
	BaseURL() string
}
