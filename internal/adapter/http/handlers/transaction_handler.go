package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	request "pixbridge/internal/adapter/http/dto/request"
	response "pixbridge/internal/adapter/http/dto/response"
	"pixbridge/internal/domain/entities"
	"pixbridge/internal/infrastructure/gateways"
	"pixbridge/internal/usecase"
	"pixbridge/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTransactionPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// TransactionHandler handles HTTP requests for PIX and withdraw creation.
//
// Authentication is out of scope here: the owner comes from the X-Owner-ID
// header and the sub-acquirer from X-Gateway-Type, falling back to the
// DEFAULT_GATEWAY_TYPE env.

type TransactionHandler struct {
	usecase usecase.ITransactionUseCase
}

func NewTransactionHandler(uc usecase.ITransactionUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc}
}

// CreatePix creates a PIX charge on the owner's configured sub-acquirer.
func (h *TransactionHandler) CreatePix(c *gin.Context) {
	ownerID := ownerIDFrom(c)
	gatewayType := gatewayTypeFrom(c)
	log.Printf("[transaction][handler] create pix start owner_id=%s gateway_type=%s", ownerID, gatewayType)

	var payload request.CreatePixRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[transaction][handler] invalid pix payload owner_id=%s err=%v", ownerID, err)
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreatePix(c.Request.Context(), ownerID, gatewayType, payload.ToInput())
	if err != nil {
		log.Printf("[transaction][handler] create pix failed owner_id=%s err=%v", ownerID, err)
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[transaction][handler] create pix success transaction_id=%s status=%s", created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromTransaction("PIX criado com sucesso", created))
}

// CreateWithdraw creates a bank withdrawal on the owner's configured sub-acquirer.
func (h *TransactionHandler) CreateWithdraw(c *gin.Context) {
	ownerID := ownerIDFrom(c)
	gatewayType := gatewayTypeFrom(c)
	log.Printf("[transaction][handler] create withdraw start owner_id=%s gateway_type=%s", ownerID, gatewayType)

	var payload request.CreateWithdrawRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[transaction][handler] invalid withdraw payload owner_id=%s err=%v", ownerID, err)
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		log.Printf("[transaction][handler] withdraw validation failed owner_id=%s err=%v", ownerID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateWithdraw(c.Request.Context(), ownerID, gatewayType, payload.ToInput())
	if err != nil {
		log.Printf("[transaction][handler] create withdraw failed owner_id=%s err=%v", ownerID, err)
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[transaction][handler] create withdraw success transaction_id=%s status=%s", created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromTransaction("Saque criado com sucesso", created))
}

// GetByID fetches one transaction.
func (h *TransactionHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	tx, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction("OK", tx))
}

// ListEvents returns the webhook deliveries recorded for one transaction.
func (h *TransactionHandler) ListEvents(c *gin.Context) {
	id := c.Param("id")

	events, err := h.usecase.ListWebhookEvents(c.Request.Context(), id)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWebhookEvents(events))
}

func ownerIDFrom(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader("X-Owner-ID"))
}

func gatewayTypeFrom(c *gin.Context) entities.GatewayType {
	if v := strings.TrimSpace(c.GetHeader("X-Gateway-Type")); v != "" {
		return entities.GatewayType(v)
	}
	return entities.GatewayType(getenvDefault("DEFAULT_GATEWAY_TYPE", string(entities.GatewayTypeSubadqA)))
}

func mapTransactionError(err error) *pkg.AppError {
	var apiErr *gateways.APIError
	var transportErr *gateways.TransportError

	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidBankAccount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, gateways.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Usuário não possui gateway configurado", http.StatusBadRequest)
	case errors.Is(err, gateways.ErrGatewayInactive):
		return pkg.NewDomainErrorSimple("GATEWAY_INACTIVE", "Gateway não está ativo", http.StatusBadRequest)
	case errors.Is(err, gateways.ErrUnsupportedGatewayType):
		return pkg.NewDomainErrorSimple("GATEWAY_UNSUPPORTED", "Tipo de gateway não suportado", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.As(err, &apiErr):
		return pkg.NewDomainError("GATEWAY_ERROR", apiErr.Error(), err, http.StatusBadGateway)
	case errors.As(err, &transportErr):
		return pkg.NewDomainError("GATEWAY_UNREACHABLE", transportErr.Error(), err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
