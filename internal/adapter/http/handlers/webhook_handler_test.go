package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pixbridge/internal/adapter/http/handlers/mocks"
	"pixbridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_Handle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *WebhookHandler) *gin.Engine {
		r := gin.New()
		r.POST("/webhook", h.Handle)
		return r
	}

	assertAck := func(t *testing.T, w *httptest.ResponseRecorder) {
		t.Helper()
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["message"] != "Webhook recebido" {
			t.Fatalf("unexpected ack: %s", w.Body.String())
		}
	}

	t.Run("processed delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)
		r := newRouter(h)

		payload := `{"event":"pix_paid","transaction_id":"ext-1","status":"PAID"}`
		uc.EXPECT().HandleInbound(gomock.Any(), json.RawMessage(payload)).Return(usecase.WebhookOutcome{Processed: true, TransactionID: "tx-1"})

		req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assertAck(t, w)
	})

	t.Run("unprocessed delivery still acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)
		r := newRouter(h)

		uc.EXPECT().HandleInbound(gomock.Any(), gomock.Any()).Return(usecase.WebhookOutcome{Reason: "unrecognized payload"})

		req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(`{"whatever":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assertAck(t, w)
	})

	t.Run("empty body still acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)
		r := newRouter(h)

		uc.EXPECT().HandleInbound(gomock.Any(), gomock.Any()).Return(usecase.WebhookOutcome{Reason: "empty or invalid payload"})

		req := httptest.NewRequest(http.MethodPost, "/webhook", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assertAck(t, w)
	})
}
