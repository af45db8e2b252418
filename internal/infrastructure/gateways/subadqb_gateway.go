package gateways

import (
	"context"
	"encoding/json"
	"log"

	"pixbridge/internal/domain/entities"
	"pixbridge/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	subadqBPixBaseMsg      = "Falha ao criar PIX na SubadqB"
	subadqBWithdrawBaseMsg = "Falha ao criar saque na SubadqB"

	defaultPixDescription = "Pagamento PIX"
)

// SubadqBGateway speaks SubadqB's wire format: decimal amounts and responses
// nested under a data envelope.

type SubadqBGateway struct {
	client *wireClient
}

var _ interfaces.IGatewayAdapter = (*SubadqBGateway)(nil)

func NewSubadqBGateway(baseURL string) *SubadqBGateway {
	return &SubadqBGateway{client: newWireClient(baseURL)}
}

type subadqBPixRequest struct {
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description"`
}

type subadqBWithdrawRequest struct {
	Amount      decimal.Decimal      `json:"amount"`
	BankAccount entities.BankAccount `json:"bank_account"`
}

func (g *SubadqBGateway) CreatePix(ctx context.Context, in interfaces.CreatePixInput) (json.RawMessage, error) {
	body := subadqBPixRequest{
		Value:       in.Amount,
		Description: in.Description,
	}
	if body.Description == "" {
		body.Description = defaultPixDescription
	}

	log.Printf("[gateway][subadq_b] create pix start value=%s", body.Value)
	return g.client.postJSON(ctx, "/pix/create", body, subadqBPixBaseMsg)
}

func (g *SubadqBGateway) CreateWithdraw(ctx context.Context, in interfaces.CreateWithdrawInput) (json.RawMessage, error) {
	body := subadqBWithdrawRequest{
		Amount:      in.Amount,
		BankAccount: in.BankAccount,
	}

	log.Printf("[gateway][subadq_b] create withdraw start amount=%s", body.Amount)
	return g.client.postJSON(ctx, "/withdraw", body, subadqBWithdrawBaseMsg)
}

type subadqBCreateResponse struct {
	ID     string `json:"id"`
	QRCode string `json:"qr_code"`
	Status string `json:"status"`
	Data   *struct {
		ID     string `json:"id"`
		QRCode string `json:"qr_code"`
		Status string `json:"status"`
	} `json:"data"`
}

func (g *SubadqBGateway) NormalizePixResponse(raw json.RawMessage) (interfaces.NormalizedPixCreate, error) {
	var resp subadqBCreateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return interfaces.NormalizedPixCreate{}, err
	}

	out := interfaces.NormalizedPixCreate{
		ExternalID: resp.ID,
		QRCode:     resp.QRCode,
		Status:     mapStatus(subadqBPixStatuses, resp.Status),
	}
	if resp.Data != nil {
		out.ExternalID = firstNonEmpty(resp.Data.ID, resp.ID)
		out.QRCode = firstNonEmpty(resp.Data.QRCode, resp.QRCode)
		out.Status = mapStatus(subadqBPixStatuses, firstNonEmpty(resp.Data.Status, resp.Status))
	}
	return out, nil
}

func (g *SubadqBGateway) NormalizeWithdrawResponse(raw json.RawMessage) (interfaces.NormalizedWithdrawCreate, error) {
	var resp subadqBCreateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return interfaces.NormalizedWithdrawCreate{}, err
	}

	out := interfaces.NormalizedWithdrawCreate{
		ExternalID: resp.ID,
		Status:     mapStatus(subadqBWithdrawStatuses, resp.Status),
	}
	if resp.Data != nil {
		out.ExternalID = firstNonEmpty(resp.Data.ID, resp.ID)
		out.Status = mapStatus(subadqBWithdrawStatuses, firstNonEmpty(resp.Data.Status, resp.Status))
	}
	return out, nil
}

func (g *SubadqBGateway) BaseURL() string {
	return g.client.baseURL
}
