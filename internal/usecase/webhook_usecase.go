package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrMissingTransactionID = errors.New("transaction id not found in webhook payload")

const (
	WebhookActionCreated = "created"
	WebhookActionUpdated = "updated"

	ownerSourceExisting = "existing"
)

// WebhookResult describes what an inbound notification did to the store.
type WebhookResult struct {
	BestfyID              string                 `json:"bestfy_id"`
	Action                string                 `json:"action"`
	UserID                string                 `json:"user_id"`
	Status                entities.PaymentStatus `json:"status"`
	OwnerSource           string                 `json:"owner_source"`
	ConvertedFromRecovery bool                   `json:"converted_from_recovery"`
	CheckoutLinksUpdated  int                    `json:"checkout_links_updated"`
}

// WebhookHealth is returned by the GET diagnostic on the webhook endpoint.
type WebhookHealth struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

//go:generate mockgen -source=webhook_usecase.go -destination=../adapter/http/handlers/mocks/mock_webhook_usecase.go -package=mocks

type IWebhookUseCase interface {
	Process(ctx context.Context, event entities.WebhookEvent) (WebhookResult, error)
	Health(ctx context.Context) WebhookHealth
}

type WebhookUseCase struct {
	payments interfaces.IPaymentRepository
	links    interfaces.ICheckoutLinkRepository
	owners   *OwnerResolver
	probe    interfaces.IHealthProbe
	factory  CheckoutLinkFactory
	now      func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	payments interfaces.IPaymentRepository,
	links interfaces.ICheckoutLinkRepository,
	owners *OwnerResolver,
	probe interfaces.IHealthProbe,
	factory CheckoutLinkFactory,
) *WebhookUseCase {
	return &WebhookUseCase{
		payments: payments,
		links:    links,
		owners:   owners,
		probe:    probe,
		factory:  factory,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *WebhookUseCase) Process(ctx context.Context, event entities.WebhookEvent) (WebhookResult, error) {
	txID := event.TransactionID()
	if txID == "" {
		log.Printf("[webhook][usecase] missing transaction id type=%s", event.Type)
		return WebhookResult{}, ErrMissingTransactionID
	}
	tx := event.Data
	status := entities.NormalizePaymentStatus(tx.Status)
	now := u.now()
	log.Printf("[webhook][usecase] process start bestfy_id=%s type=%s status=%s", txID, event.Type, status)

	existing, err := u.payments.GetByBestfyID(ctx, txID)
	if err != nil {
		log.Printf("[webhook][usecase] lookup failed bestfy_id=%s err=%v", txID, err)
		return WebhookResult{}, err
	}

	var result WebhookResult
	if existing.BestfyID != "" {
		result, err = u.patchExisting(ctx, existing, tx, status, now)
	} else {
		result, err = u.insertNew(ctx, txID, tx, status, now)
	}
	if err != nil {
		return WebhookResult{}, err
	}

	result.CheckoutLinksUpdated = u.propagate(ctx, txID, status, now)
	log.Printf("[webhook][usecase] process done bestfy_id=%s action=%s user_id=%s links=%d", txID, result.Action, result.UserID, result.CheckoutLinksUpdated)
	return result, nil
}

func (u *WebhookUseCase) patchExisting(ctx context.Context, existing entities.Payment, tx entities.GatewayTransaction, status entities.PaymentStatus, now time.Time) (WebhookResult, error) {
	convert := status == entities.PaymentStatusPaid && existing.HasRecoveryLinkage()
	updated, err := u.payments.Patch(ctx, existing.BestfyID, entities.PaymentPatch{
		Status:           status,
		Amount:           tx.Amount,
		CustomerName:     tx.CustomerName(),
		CustomerEmail:    tx.CustomerEmail(),
		CustomerPhone:    tx.CustomerPhone(),
		CustomerDocument: tx.CustomerDocument(),
		ProductName:      tx.ProductName(),
		MarkConverted:    convert,
		UpdatedAt:        now,
	})
	if err != nil {
		log.Printf("[webhook][usecase] patch failed bestfy_id=%s err=%v", existing.BestfyID, err)
		return WebhookResult{}, err
	}
	if updated.BestfyID == "" {
		updated = existing
	}
	return WebhookResult{
		BestfyID:              existing.BestfyID,
		Action:                WebhookActionUpdated,
		UserID:                existing.UserID,
		Status:                status,
		OwnerSource:           ownerSourceExisting,
		ConvertedFromRecovery: updated.ConvertedFromRecovery || convert,
	}, nil
}

func (u *WebhookUseCase) insertNew(ctx context.Context, txID string, tx entities.GatewayTransaction, status entities.PaymentStatus, now time.Time) (WebhookResult, error) {
	userID, source, err := u.owners.Resolve(ctx, tx.CompanyID.String(), tx.CustomerEmail())
	if err != nil {
		log.Printf("[webhook][usecase] owner resolution failed bestfy_id=%s company_id=%s err=%v", txID, tx.CompanyID, err)
		return WebhookResult{}, err
	}

	p := paymentFromTransaction(txID, tx, status, now)
	p.UserID = userID
	p.Source = entities.PaymentSourceWebhook
	p.OwnerSource = source

	if _, err := u.payments.Insert(ctx, p); err != nil {
		if !errors.Is(err, interfaces.ErrAlreadyExists) {
			log.Printf("[webhook][usecase] insert failed bestfy_id=%s err=%v", txID, err)
			return WebhookResult{}, err
		}
		// Lost a race with a concurrent delivery or the sync job.
		existing, err := u.payments.GetByBestfyID(ctx, txID)
		if err != nil {
			return WebhookResult{}, err
		}
		return u.patchExisting(ctx, existing, tx, status, now)
	}

	if p.Status == entities.PaymentStatusWaitingPayment && p.PaymentMethod == entities.PaymentMethodPix {
		provisionCheckoutLink(ctx, u.links, u.factory, p, now)
	}

	return WebhookResult{
		BestfyID:    txID,
		Action:      WebhookActionCreated,
		UserID:      userID,
		Status:      status,
		OwnerSource: string(source),
	}, nil
}

// propagate copies status onto every checkout link referencing the
// transaction. Failures are logged and never reach the caller.
func (u *WebhookUseCase) propagate(ctx context.Context, bestfyID string, status entities.PaymentStatus, now time.Time) int {
	links, err := u.links.ListByPaymentBestfyID(ctx, bestfyID)
	if err != nil {
		log.Printf("[webhook][usecase] propagation lookup failed bestfy_id=%s err=%v", bestfyID, err)
		return 0
	}
	updated := 0
	for _, l := range links {
		slug := ""
		if status == entities.PaymentStatusPaid {
			slug = newThankYouSlug()
		}
		if _, err := u.links.PropagatePaymentStatus(ctx, l.ID, status, slug, now); err != nil {
			log.Printf("[webhook][usecase] propagation failed checkout_id=%s err=%v", l.ID, err)
			continue
		}
		updated++
	}
	return updated
}

func (u *WebhookUseCase) Health(ctx context.Context) WebhookHealth {
	h := WebhookHealth{Status: "ok", Database: "ok", CheckedAt: u.now()}
	if u.probe == nil {
		h.Database = "unknown"
		return h
	}
	if err := u.probe.Ping(ctx); err != nil {
		h.Status = "degraded"
		h.Database = "unreachable"
		h.Error = err.Error()
	}
	return h
}

func paymentFromTransaction(txID string, tx entities.GatewayTransaction, status entities.PaymentStatus, now time.Time) entities.Payment {
	p := entities.Payment{
		ID:               uuid.NewString(),
		BestfyID:         txID,
		CustomerName:     tx.CustomerName(),
		CustomerEmail:    tx.CustomerEmail(),
		CustomerPhone:    tx.CustomerPhone(),
		CustomerDocument: tx.CustomerDocument(),
		ProductName:      tx.ProductName(),
		Amount:           tx.Amount,
		Currency:         entities.CurrencyBRL,
		PaymentMethod:    tx.Method(),
		Status:           status,
		CreatedAt:        tx.CreatedTime(now),
		UpdatedAt:        now,
	}
	if p.CustomerName == "" {
		p.CustomerName = entities.DefaultCustomerName
	}
	if p.CustomerEmail == "" {
		p.CustomerEmail = entities.DefaultCustomerEmail
	}
	if p.ProductName == "" {
		p.ProductName = entities.DefaultProductName
	}
	return p
}

// provisionCheckoutLink creates the recovery checkout for a freshly stored
// pending PIX payment. Best-effort: the payment is already persisted.
func provisionCheckoutLink(ctx context.Context, links interfaces.ICheckoutLinkRepository, factory CheckoutLinkFactory, p entities.Payment, now time.Time) {
	if links == nil {
		return
	}
	l := factory.Build(p, nil, now)
	if _, err := links.Create(ctx, l); err != nil {
		log.Printf("[checkout][usecase] auto-provision failed bestfy_id=%s err=%v", p.BestfyID, err)
		return
	}
	log.Printf("[checkout][usecase] auto-provisioned checkout_id=%s slug=%s bestfy_id=%s", l.ID, l.CheckoutSlug, p.BestfyID)
}
