package handlers

import (
	"log"
	"net/http"

	response "pixbridge/internal/adapter/http/dto/response"
	"pixbridge/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives sub-acquirer notifications. The boundary is
// best-effort, at-least-once: whatever arrives, the sender gets a success
// acknowledgment. Classification and lookup failures are logged for
// operators, never surfaced.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// Handle accepts any JSON body and always acknowledges.
func (h *WebhookHandler) Handle(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		c.JSON(http.StatusOK, response.NewWebhookAck())
		return
	}

	outcome := h.usecase.HandleInbound(c.Request.Context(), raw)
	if !outcome.Processed {
		log.Printf("[webhook][handler] accepted without processing reason=%q", outcome.Reason)
	}

	c.JSON(http.StatusOK, response.NewWebhookAck())
}
