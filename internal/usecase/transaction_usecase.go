package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"strings"
	"time"

	"pixbridge/internal/domain/entities"
	"pixbridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidOwnerID      = errors.New("invalid owner id")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidBankAccount  = errors.New("invalid bank account")
)

// ITransactionUseCase orchestrates the canonical transaction lifecycle:
// create against a sub-acquirer and reconcile from inbound webhooks.

type ITransactionUseCase interface {
	CreatePix(ctx context.Context, ownerID string, gatewayType entities.GatewayType, in interfaces.CreatePixInput) (entities.Transaction, error)
	CreateWithdraw(ctx context.Context, ownerID string, gatewayType entities.GatewayType, in interfaces.CreateWithdrawInput) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListWebhookEvents(ctx context.Context, transactionID string) ([]entities.WebhookEvent, error)
	ProcessWebhook(ctx context.Context, kind entities.TransactionKind, transactionID string, gatewayType entities.GatewayType, payload json.RawMessage) (entities.Transaction, error)
}

type TransactionUseCase struct {
	repo        interfaces.ITransactionRepository
	gatewayRepo interfaces.IGatewayRepository
	eventRepo   interfaces.IWebhookEventRepository
	factory     interfaces.IGatewayFactory
	queue       interfaces.IConfirmationQueue
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(
	repo interfaces.ITransactionRepository,
	gatewayRepo interfaces.IGatewayRepository,
	eventRepo interfaces.IWebhookEventRepository,
	factory interfaces.IGatewayFactory,
	queue interfaces.IConfirmationQueue,
) *TransactionUseCase {
	return &TransactionUseCase{
		repo:        repo,
		gatewayRepo: gatewayRepo,
		eventRepo:   eventRepo,
		factory:     factory,
		queue:       queue,
	}
}

func (u *TransactionUseCase) CreatePix(ctx context.Context, ownerID string, gatewayType entities.GatewayType, in interfaces.CreatePixInput) (entities.Transaction, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Transaction{}, ErrInvalidOwnerID
	}
	if !in.Amount.IsPositive() {
		return entities.Transaction{}, ErrInvalidAmount
	}

	log.Printf("[transaction][usecase] create pix start owner_id=%s gateway_type=%s amount=%s", ownerID, gatewayType, in.Amount)

	gw, adapter, err := u.resolveAdapter(ctx, gatewayType)
	if err != nil {
		log.Printf("[transaction][usecase] gateway resolution failed owner_id=%s gateway_type=%s err=%v", ownerID, gatewayType, err)
		return entities.Transaction{}, err
	}

	id := uuid.NewString()
	if in.MerchantID == "" {
		in.MerchantID = ownerID
	}
	if in.OrderID == "" {
		in.OrderID = id
	}

	raw, err := adapter.CreatePix(ctx, in)
	if err != nil {
		log.Printf("[transaction][usecase] gateway create pix failed owner_id=%s gateway_type=%s err=%v", ownerID, gatewayType, err)
		return entities.Transaction{}, err
	}

	normalized, err := adapter.NormalizePixResponse(raw)
	if err != nil {
		log.Printf("[transaction][usecase] pix response normalization failed owner_id=%s err=%v", ownerID, err)
		return entities.Transaction{}, err
	}

	now := time.Now().UTC()
	tx := entities.Transaction{
		ID:         id,
		Kind:       entities.TransactionKindPix,
		OwnerID:    ownerID,
		GatewayID:  gw.ID,
		ExternalID: normalized.ExternalID,
		Status:     normalized.Status,
		Amount:     in.Amount,
		QRCode:     normalized.QRCode,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, tx)
	if err != nil {
		log.Printf("[transaction][usecase] pix persist failed owner_id=%s transaction_id=%s err=%v", ownerID, tx.ID, err)
		return entities.Transaction{}, err
	}

	if err := u.enqueueConfirmation(ctx, created, gw.Type); err != nil {
		return entities.Transaction{}, err
	}

	log.Printf("[transaction][usecase] create pix success transaction_id=%s external_id=%s status=%s", created.ID, created.ExternalID, created.Status)
	return created, nil
}

func (u *TransactionUseCase) CreateWithdraw(ctx context.Context, ownerID string, gatewayType entities.GatewayType, in interfaces.CreateWithdrawInput) (entities.Transaction, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Transaction{}, ErrInvalidOwnerID
	}
	if !in.Amount.IsPositive() {
		return entities.Transaction{}, ErrInvalidAmount
	}
	if in.BankAccount.Bank == "" || in.BankAccount.Agency == "" || in.BankAccount.Account == "" {
		return entities.Transaction{}, ErrInvalidBankAccount
	}

	log.Printf("[transaction][usecase] create withdraw start owner_id=%s gateway_type=%s amount=%s", ownerID, gatewayType, in.Amount)

	gw, adapter, err := u.resolveAdapter(ctx, gatewayType)
	if err != nil {
		log.Printf("[transaction][usecase] gateway resolution failed owner_id=%s gateway_type=%s err=%v", ownerID, gatewayType, err)
		return entities.Transaction{}, err
	}

	id := uuid.NewString()
	if in.MerchantID == "" {
		in.MerchantID = ownerID
	}
	in.TransactionID = id

	raw, err := adapter.CreateWithdraw(ctx, in)
	if err != nil {
		log.Printf("[transaction][usecase] gateway create withdraw failed owner_id=%s gateway_type=%s err=%v", ownerID, gatewayType, err)
		return entities.Transaction{}, err
	}

	normalized, err := adapter.NormalizeWithdrawResponse(raw)
	if err != nil {
		log.Printf("[transaction][usecase] withdraw response normalization failed owner_id=%s err=%v", ownerID, err)
		return entities.Transaction{}, err
	}

	bankAccount := in.BankAccount
	now := time.Now().UTC()
	tx := entities.Transaction{
		ID:          id,
		Kind:        entities.TransactionKindWithdraw,
		OwnerID:     ownerID,
		GatewayID:   gw.ID,
		ExternalID:  normalized.ExternalID,
		Status:      normalized.Status,
		Amount:      in.Amount,
		BankAccount: &bankAccount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, tx)
	if err != nil {
		log.Printf("[transaction][usecase] withdraw persist failed owner_id=%s transaction_id=%s err=%v", ownerID, tx.ID, err)
		return entities.Transaction{}, err
	}

	if err := u.enqueueConfirmation(ctx, created, gw.Type); err != nil {
		return entities.Transaction{}, err
	}

	log.Printf("[transaction][usecase] create withdraw success transaction_id=%s external_id=%s status=%s", created.ID, created.ExternalID, created.Status)
	return created, nil
}

func (u *TransactionUseCase) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}

	tx, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return tx, nil
}

// ListWebhookEvents returns the append-only audit trail for one transaction,
// oldest first.
func (u *TransactionUseCase) ListWebhookEvents(ctx context.Context, transactionID string) ([]entities.WebhookEvent, error) {
	tx, err := u.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return u.eventRepo.ListByTransactionID(ctx, tx.ID)
}

// ProcessWebhook applies one inbound notification to an already-resolved
// transaction: normalize, partial-update, append the immutable audit event.
// Every delivery is applied, terminal-looking statuses included; repeats
// produce new WebhookEvent records rather than being deduplicated.
func (u *TransactionUseCase) ProcessWebhook(ctx context.Context, kind entities.TransactionKind, transactionID string, gatewayType entities.GatewayType, payload json.RawMessage) (entities.Transaction, error) {
	tx, err := u.repo.GetByID(ctx, transactionID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.ID == "" || tx.Kind != kind {
		return entities.Transaction{}, ErrTransactionNotFound
	}

	normalizer, err := u.factory.NormalizerFor(gatewayType)
	if err != nil {
		return entities.Transaction{}, err
	}

	var upd entities.TransactionUpdate
	if kind == entities.TransactionKindPix {
		upd, err = normalizer.NormalizePix(payload)
	} else {
		upd, err = normalizer.NormalizeWithdraw(payload)
	}
	if err != nil {
		log.Printf("[transaction][usecase] webhook normalization failed transaction_id=%s gateway_type=%s err=%v", transactionID, gatewayType, err)
		return entities.Transaction{}, err
	}

	updated, err := u.repo.Update(ctx, tx.ID, upd)
	if err != nil {
		log.Printf("[transaction][usecase] webhook update failed transaction_id=%s err=%v", transactionID, err)
		return entities.Transaction{}, err
	}

	event := entities.WebhookEvent{
		ID:              uuid.NewString(),
		TransactionKind: kind,
		TransactionID:   tx.ID,
		Payload:         payload,
		ProcessedAt:     time.Now().UTC(),
	}
	if _, err := u.eventRepo.Append(ctx, event); err != nil {
		log.Printf("[transaction][usecase] webhook event append failed transaction_id=%s err=%v", transactionID, err)
		return entities.Transaction{}, err
	}

	log.Printf("[transaction][usecase] webhook processed transaction_id=%s kind=%s status=%s", updated.ID, kind, updated.Status)
	return updated, nil
}

func (u *TransactionUseCase) resolveAdapter(ctx context.Context, gatewayType entities.GatewayType) (entities.Gateway, interfaces.IGatewayAdapter, error) {
	gw, err := u.gatewayRepo.GetByType(ctx, gatewayType)
	if err != nil {
		return entities.Gateway{}, nil, err
	}

	adapter, err := u.factory.FromRecord(gw)
	if err != nil {
		return entities.Gateway{}, nil, err
	}
	return gw, adapter, nil
}

// enqueueConfirmation schedules the deferred confirmation 2-5 seconds out,
// matching the sandbox sub-acquirers' notification delay.
func (u *TransactionUseCase) enqueueConfirmation(ctx context.Context, tx entities.Transaction, gatewayType entities.GatewayType) error {
	notBefore := time.Now().UTC().Add(time.Duration(2+rand.Intn(4)) * time.Second)
	if err := u.queue.Enqueue(ctx, tx.ID, tx.Kind, gatewayType, notBefore); err != nil {
		log.Printf("[transaction][usecase] confirmation enqueue failed transaction_id=%s err=%v", tx.ID, err)
		return err
	}
	return nil
}
