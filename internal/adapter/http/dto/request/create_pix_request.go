package request

import (
	"pixbridge/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// PixPayerRequest identifies the expected payer on a PIX charge.

type PixPayerRequest struct {
	Name    string `json:"name"`
	CpfCnpj string `json:"cpf_cnpj"`
}

// CreatePixRequest is the payload for POST /v1/pix. Amount is decoded as an
// exact decimal; everything but amount is optional.

type CreatePixRequest struct {
	Amount      decimal.Decimal  `json:"amount"`
	Description string           `json:"description"`
	MerchantID  string           `json:"merchant_id"`
	Currency    string           `json:"currency"`
	OrderID     string           `json:"order_id"`
	Payer       *PixPayerRequest `json:"payer"`
	ExpiresIn   int              `json:"expires_in"`
}

func (r CreatePixRequest) ToInput() interfaces.CreatePixInput {
	in := interfaces.CreatePixInput{
		Amount:      r.Amount,
		Description: r.Description,
		MerchantID:  r.MerchantID,
		Currency:    r.Currency,
		OrderID:     r.OrderID,
		ExpiresIn:   r.ExpiresIn,
	}
	if r.Payer != nil {
		in.Payer = &interfaces.PixPayer{Name: r.Payer.Name, CpfCnpj: r.Payer.CpfCnpj}
	}
	return in
}
