package gateways

import (
	"context"
	"encoding/json"
	"log"

	"pixbridge/internal/usecase/interfaces"
)

const (
	subadqAPixBaseMsg      = "Falha ao criar PIX na SubadqA"
	subadqAWithdrawBaseMsg = "Falha ao criar saque na SubadqA"

	defaultCurrency = "BRL"
	defaultExpiry   = 3600
)

// SubadqAGateway speaks SubadqA's wire format: amounts travel as an integer
// count of centavos and the payer rides as a flat object on the request.

type SubadqAGateway struct {
	client *wireClient
}

var _ interfaces.IGatewayAdapter = (*SubadqAGateway)(nil)

func NewSubadqAGateway(baseURL string) *SubadqAGateway {
	return &SubadqAGateway{client: newWireClient(baseURL)}
}

type subadqAPayer struct {
	Name    string `json:"name"`
	CpfCnpj string `json:"cpf_cnpj"`
}

type subadqAPixRequest struct {
	MerchantID string        `json:"merchant_id"`
	Amount     int64         `json:"amount"`
	Currency   string        `json:"currency"`
	OrderID    string        `json:"order_id,omitempty"`
	Payer      *subadqAPayer `json:"payer,omitempty"`
	ExpiresIn  int           `json:"expires_in"`
}

type subadqAAccount struct {
	BankCode string `json:"bank_code"`
	Agencia  string `json:"agencia"`
	Conta    string `json:"conta"`
	Type     string `json:"type,omitempty"`
}

type subadqAWithdrawRequest struct {
	MerchantID    string         `json:"merchant_id"`
	Account       subadqAAccount `json:"account"`
	Amount        int64          `json:"amount"`
	TransactionID string         `json:"transaction_id"`
}

func (g *SubadqAGateway) CreatePix(ctx context.Context, in interfaces.CreatePixInput) (json.RawMessage, error) {
	body := subadqAPixRequest{
		MerchantID: in.MerchantID,
		Amount:     toMinorUnits(in.Amount),
		Currency:   in.Currency,
		OrderID:    in.OrderID,
		ExpiresIn:  in.ExpiresIn,
	}
	if body.Currency == "" {
		body.Currency = defaultCurrency
	}
	if body.ExpiresIn <= 0 {
		body.ExpiresIn = defaultExpiry
	}
	if in.Payer != nil {
		body.Payer = &subadqAPayer{Name: in.Payer.Name, CpfCnpj: in.Payer.CpfCnpj}
	}

	log.Printf("[gateway][subadq_a] create pix start amount_minor=%d order_id=%s", body.Amount, body.OrderID)
	return g.client.postJSON(ctx, "/pix/create", body, subadqAPixBaseMsg)
}

func (g *SubadqAGateway) CreateWithdraw(ctx context.Context, in interfaces.CreateWithdrawInput) (json.RawMessage, error) {
	body := subadqAWithdrawRequest{
		MerchantID: in.MerchantID,
		Account: subadqAAccount{
			BankCode: in.BankAccount.Bank,
			Agencia:  in.BankAccount.Agency,
			Conta:    in.BankAccount.Account,
			Type:     in.BankAccount.AccountType,
		},
		Amount:        toMinorUnits(in.Amount),
		TransactionID: in.TransactionID,
	}

	log.Printf("[gateway][subadq_a] create withdraw start amount_minor=%d transaction_id=%s", body.Amount, body.TransactionID)
	return g.client.postJSON(ctx, "/withdraw", body, subadqAWithdrawBaseMsg)
}

func (g *SubadqAGateway) NormalizePixResponse(raw json.RawMessage) (interfaces.NormalizedPixCreate, error) {
	var resp struct {
		TransactionID string `json:"transaction_id"`
		ID            string `json:"id"`
		QRCode        string `json:"qr_code"`
		PixQRCode     string `json:"pix_qr_code"`
		Qrcode        string `json:"qrcode"`
		Status        string `json:"status"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return interfaces.NormalizedPixCreate{}, err
	}

	return interfaces.NormalizedPixCreate{
		ExternalID: firstNonEmpty(resp.TransactionID, resp.ID),
		QRCode:     firstNonEmpty(resp.QRCode, resp.PixQRCode, resp.Qrcode),
		Status:     mapStatus(subadqAPixStatuses, resp.Status),
	}, nil
}

func (g *SubadqAGateway) NormalizeWithdrawResponse(raw json.RawMessage) (interfaces.NormalizedWithdrawCreate, error) {
	var resp struct {
		WithdrawID    string `json:"withdraw_id"`
		TransactionID string `json:"transaction_id"`
		ID            string `json:"id"`
		Status        string `json:"status"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return interfaces.NormalizedWithdrawCreate{}, err
	}

	return interfaces.NormalizedWithdrawCreate{
		ExternalID: firstNonEmpty(resp.WithdrawID, resp.TransactionID, resp.ID),
		Status:     mapStatus(subadqAWithdrawStatuses, resp.Status),
	}, nil
}

func (g *SubadqAGateway) BaseURL() string {
	return g.client.baseURL
}
