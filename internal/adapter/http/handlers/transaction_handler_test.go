package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pixbridge/internal/adapter/http/handlers/mocks"
	"pixbridge/internal/domain/entities"
	"pixbridge/internal/infrastructure/gateways"
	"pixbridge/internal/usecase"
	"pixbridge/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPixRouter(h *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/pix", h.CreatePix)
	r.GET("/v1/pix/:id", h.GetByID)
	r.GET("/v1/pix/:id/events", h.ListEvents)
	return r
}

func TestTransactionHandler_CreatePix(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newPixRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/pix", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway type header forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newPixRouter(h)

		uc.EXPECT().CreatePix(gomock.Any(), "owner-1", entities.GatewayTypeSubadqB, gomock.Any()).DoAndReturn(
			func(_ any, _ string, _ entities.GatewayType, in interfaces.CreatePixInput) (entities.Transaction, error) {
				if !in.Amount.Equal(decimal.RequireFromString("100.50")) {
					t.Fatalf("amount decoded inexactly: %s", in.Amount)
				}
				return entities.Transaction{ID: "tx-1", Kind: entities.TransactionKindPix, Status: entities.StatusPending, Amount: in.Amount, CreatedAt: time.Now().UTC()}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/pix", bytes.NewBufferString(`{"amount":100.50}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Owner-ID", "owner-1")
		req.Header.Set("X-Gateway-Type", "subadq_b")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["message"] != "PIX criado com sucesso" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("default gateway type from env", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newPixRouter(h)
		t.Setenv("DEFAULT_GATEWAY_TYPE", "")

		uc.EXPECT().CreatePix(gomock.Any(), "owner-1", entities.GatewayTypeSubadqA, gomock.Any()).Return(entities.Transaction{ID: "tx-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pix", bytes.NewBufferString(`{"amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Owner-ID", "owner-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("gateway not configured maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newPixRouter(h)

		uc.EXPECT().CreatePix(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Transaction{}, gateways.ErrGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/pix", bytes.NewBufferString(`{"amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Owner-ID", "owner-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "GATEWAY_NOT_CONFIGURED" || body["message"] != "Usuário não possui gateway configurado" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("api error maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newPixRouter(h)

		apiErr := &gateways.APIError{
			BaseMsg:    "Falha ao criar PIX na SubadqA",
			StatusCode: http.StatusUnprocessableEntity,
			Code:       "insufficient_funds",
			Message:    "Not enough balance",
		}
		uc.EXPECT().CreatePix(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Transaction{}, apiErr)

		req := httptest.NewRequest(http.MethodPost, "/v1/pix", bytes.NewBufferString(`{"amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Owner-ID", "owner-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "GATEWAY_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["message"] != "Falha ao criar PIX na SubadqA: Not enough balance (Código: insufficient_funds)" {
			t.Fatalf("unexpected message: %s", w.Body.String())
		}
	})

	t.Run("transport error maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newPixRouter(h)

		uc.EXPECT().CreatePix(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(
			entities.Transaction{},
			&gateways.TransportError{BaseMsg: "Falha ao criar PIX na SubadqA", Err: errors.New("connection refused")},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/pix", bytes.NewBufferString(`{"amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Owner-ID", "owner-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "GATEWAY_UNREACHABLE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newPixRouter(h)

		uc.EXPECT().CreatePix(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Transaction{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/v1/pix", bytes.NewBufferString(`{"amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Owner-ID", "owner-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_CreateWithdraw(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *TransactionHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/withdraw", h.CreateWithdraw)
		return r
	}

	t.Run("missing bank account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/withdraw", bytes.NewBufferString(`{"amount":50}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Owner-ID", "owner-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "bank_account is required" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing required account field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newRouter(h)

		payload := `{"amount":50,"bank_account":{"bank":"001","agency":"1234","account":"56789-0","account_holder_name":"Fulano"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/withdraw", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Owner-ID", "owner-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().CreateWithdraw(gomock.Any(), "owner-1", entities.GatewayTypeSubadqA, gomock.Any()).DoAndReturn(
			func(_ any, _ string, _ entities.GatewayType, in interfaces.CreateWithdrawInput) (entities.Transaction, error) {
				if in.BankAccount.Bank != "001" || in.BankAccount.AccountHolderDocument != "12345678900" {
					t.Fatalf("bank account not forwarded: %+v", in.BankAccount)
				}
				account := in.BankAccount
				return entities.Transaction{ID: "tx-2", Kind: entities.TransactionKindWithdraw, Status: entities.StatusProcessing, Amount: in.Amount, BankAccount: &account}, nil
			},
		)

		payload := `{"amount":50,"bank_account":{"bank":"001","agency":"1234","account":"56789-0","account_holder_name":"Fulano","account_holder_document":"12345678900"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/withdraw", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Owner-ID", "owner-1")
		req.Header.Set("X-Gateway-Type", "subadq_a")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Saque criado com sucesso" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestTransactionHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newPixRouter(h)

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Transaction{}, usecase.ErrTransactionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/pix/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newPixRouter(h)

		uc.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.Transaction{
			ID:     "tx-1",
			Kind:   entities.TransactionKindPix,
			Status: entities.StatusPaid,
			Amount: decimal.RequireFromString("100.50"),
			QRCode: "qr-data",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/pix/tx-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Data struct {
				ID     string `json:"id"`
				Status string `json:"status"`
				QRCode string `json:"qr_code"`
			} `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Data.ID != "tx-1" || body.Data.Status != "PAID" || body.Data.QRCode != "qr-data" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestTransactionHandler_ListEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newPixRouter(h)

		uc.EXPECT().ListWebhookEvents(gomock.Any(), "ghost").Return(nil, usecase.ErrTransactionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/pix/ghost/events", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newPixRouter(h)

		processed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		uc.EXPECT().ListWebhookEvents(gomock.Any(), "tx-1").Return([]entities.WebhookEvent{
			{ID: "ev-1", TransactionID: "tx-1", TransactionKind: entities.TransactionKindPix, Payload: json.RawMessage(`{"event":"pix_paid","status":"PAID"}`), ProcessedAt: processed},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/pix/tx-1/events", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body struct {
			Success bool `json:"success"`
			Data    []struct {
				ID      string          `json:"id"`
				Kind    string          `json:"kind"`
				Payload json.RawMessage `json:"payload"`
			} `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if !body.Success || len(body.Data) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body.Data[0].ID != "ev-1" || body.Data[0].Kind != "pix" {
			t.Fatalf("unexpected event: %+v", body.Data[0])
		}
		if string(body.Data[0].Payload) != `{"event":"pix_paid","status":"PAID"}` {
			t.Fatalf("payload must round-trip verbatim: %s", body.Data[0].Payload)
		}
	})

	t.Run("empty trail returns empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)
		r := newPixRouter(h)

		uc.EXPECT().ListWebhookEvents(gomock.Any(), "tx-2").Return([]entities.WebhookEvent{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/pix/tx-2/events", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		data, ok := body["data"].([]any)
		if !ok || len(data) != 0 {
			t.Fatalf("expected empty data array, got %s", w.Body.String())
		}
	})
}
