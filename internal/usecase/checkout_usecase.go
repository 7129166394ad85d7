package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCheckoutID        = errors.New("invalid checkout_id")
	ErrInvalidPaymentID         = errors.New("invalid payment_id")
	ErrInvalidDiscount          = errors.New("discount_percentage must be between 0 and 90")
	ErrCheckoutNotFound         = errors.New("checkout not found")
	ErrCheckoutExpired          = errors.New("checkout expired")
	ErrCheckoutAlreadyPaid      = errors.New("checkout already paid")
	ErrPixNotGenerated          = errors.New("pix not generated for this checkout")
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrPaymentNotOwned          = errors.New("payment does not belong to merchant")
	ErrCredentialNotConfigured  = errors.New("merchant gateway credential not configured")
	ErrThankYouNotFound         = errors.New("thank-you page not found")
	ErrPaymentGatewayFailure    = errors.New("payment gateway failure")
	ErrPaymentGatewayRejectsKey = errors.New("payment gateway rejected merchant credential")
)

// CheckoutStatus is the lightweight view polled by the checkout page.
type CheckoutStatus struct {
	CheckoutID      string                 `json:"checkout_id"`
	PaymentStatus   entities.PaymentStatus `json:"payment_status"`
	PaymentBestfyID string                 `json:"payment_bestfy_id,omitempty"`
	ThankYouSlug    string                 `json:"thank_you_slug,omitempty"`
	PixExpiresAt    *time.Time             `json:"pix_expires_at,omitempty"`
	ExpiresAt       time.Time              `json:"expires_at"`
}

// ThankYouPage is returned when a payer lands on /obrigado/{slug}.
type ThankYouPage struct {
	Checkout    entities.CheckoutLink `json:"checkout"`
	FirstAccess bool                  `json:"first_access"`
}

// QRRenderer turns a PIX copy-paste code into a PNG image.
type QRRenderer func(content string, size int) ([]byte, error)

//go:generate mockgen -source=checkout_usecase.go -destination=../adapter/http/handlers/mocks/mock_checkout_usecase.go -package=mocks

type ICheckoutUseCase interface {
	CreateLink(ctx context.Context, merchant entities.Merchant, paymentID string, discountPct *int) (entities.CheckoutLink, error)
	ListByMerchant(ctx context.Context, merchant entities.Merchant) ([]entities.CheckoutLink, error)
	GetBySlug(ctx context.Context, slug string) (entities.CheckoutLink, error)
	GetStatus(ctx context.Context, slug string) (CheckoutStatus, error)
	GeneratePix(ctx context.Context, checkoutID string) (entities.CheckoutLink, error)
	QRCodePNG(ctx context.Context, slug string, size int) ([]byte, error)
	AccessThankYou(ctx context.Context, thankYouSlug string) (ThankYouPage, error)
}

type CheckoutUseCase struct {
	links       interfaces.ICheckoutLinkRepository
	payments    interfaces.IPaymentRepository
	credentials interfaces.ICredentialRepository
	gateway     interfaces.IPixGateway
	service     string
	factory     CheckoutLinkFactory
	renderQR    QRRenderer
	now         func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	links interfaces.ICheckoutLinkRepository,
	payments interfaces.IPaymentRepository,
	credentials interfaces.ICredentialRepository,
	gateway interfaces.IPixGateway,
	service string,
	factory CheckoutLinkFactory,
	renderQR QRRenderer,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		links:       links,
		payments:    payments,
		credentials: credentials,
		gateway:     gateway,
		service:     service,
		factory:     factory,
		renderQR:    renderQR,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *CheckoutUseCase) CreateLink(ctx context.Context, merchant entities.Merchant, paymentID string, discountPct *int) (entities.CheckoutLink, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.CheckoutLink{}, ErrInvalidPaymentID
	}
	if discountPct != nil && (*discountPct < 0 || *discountPct > MaxDiscountPercentage) {
		return entities.CheckoutLink{}, ErrInvalidDiscount
	}

	p, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return entities.CheckoutLink{}, err
	}
	if p.ID == "" {
		// Merchants may also reference the gateway transaction id.
		if p, err = u.payments.GetByBestfyID(ctx, paymentID); err != nil {
			return entities.CheckoutLink{}, err
		}
	}
	if p.ID == "" {
		return entities.CheckoutLink{}, ErrPaymentNotFound
	}
	if p.UserID != merchant.UserID && !merchant.IsAdmin {
		return entities.CheckoutLink{}, ErrPaymentNotOwned
	}
	if p.IsPaid() {
		return entities.CheckoutLink{}, ErrCheckoutAlreadyPaid
	}

	existing, err := u.links.GetLatestByPaymentID(ctx, p.ID)
	if err != nil {
		return entities.CheckoutLink{}, err
	}
	if existing.ID != "" && !existing.IsExpired(u.now()) {
		log.Printf("[checkout][usecase] reusing checkout_id=%s payment_id=%s", existing.ID, p.ID)
		return existing, nil
	}

	l := u.factory.Build(p, discountPct, u.now())
	created, err := u.links.Create(ctx, l)
	if err != nil {
		log.Printf("[checkout][usecase] create failed payment_id=%s err=%v", p.ID, err)
		return entities.CheckoutLink{}, err
	}
	log.Printf("[checkout][usecase] created checkout_id=%s slug=%s payment_id=%s discount=%d", created.ID, created.CheckoutSlug, p.ID, created.DiscountPercentage)
	return created, nil
}

func (u *CheckoutUseCase) ListByMerchant(ctx context.Context, merchant entities.Merchant) ([]entities.CheckoutLink, error) {
	return u.links.ListByUser(ctx, merchant.UserID)
}

func (u *CheckoutUseCase) GetBySlug(ctx context.Context, slug string) (entities.CheckoutLink, error) {
	l, err := u.findBySlug(ctx, slug)
	if err != nil {
		return entities.CheckoutLink{}, err
	}
	now := u.now()
	if err := u.links.IncrementAccess(ctx, l.ID, now); err != nil {
		log.Printf("[checkout][usecase] access count failed checkout_id=%s err=%v", l.ID, err)
	} else {
		l.AccessCount++
		l.LastAccessedAt = &now
	}
	return l, nil
}

func (u *CheckoutUseCase) GetStatus(ctx context.Context, slug string) (CheckoutStatus, error) {
	l, err := u.findBySlug(ctx, slug)
	if err != nil {
		return CheckoutStatus{}, err
	}
	return CheckoutStatus{
		CheckoutID:      l.ID,
		PaymentStatus:   l.PaymentStatus,
		PaymentBestfyID: l.PaymentBestfyID,
		ThankYouSlug:    l.ThankYouSlug,
		PixExpiresAt:    l.PixExpiresAt,
		ExpiresAt:       l.ExpiresAt,
	}, nil
}

func (u *CheckoutUseCase) findBySlug(ctx context.Context, slug string) (entities.CheckoutLink, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.CheckoutLink{}, ErrCheckoutNotFound
	}
	l, err := u.links.GetBySlug(ctx, slug)
	if err != nil {
		return entities.CheckoutLink{}, err
	}
	if l.ID == "" {
		return entities.CheckoutLink{}, ErrCheckoutNotFound
	}
	return l, nil
}

func (u *CheckoutUseCase) GeneratePix(ctx context.Context, checkoutID string) (entities.CheckoutLink, error) {
	checkoutID = strings.TrimSpace(checkoutID)
	if checkoutID == "" {
		return entities.CheckoutLink{}, ErrInvalidCheckoutID
	}
	log.Printf("[checkout][usecase] generate-pix start checkout_id=%s", checkoutID)

	l, err := u.links.GetByID(ctx, checkoutID)
	if err != nil {
		return entities.CheckoutLink{}, err
	}
	if l.ID == "" {
		return entities.CheckoutLink{}, ErrCheckoutNotFound
	}
	now := u.now()
	if l.IsExpired(now) {
		return entities.CheckoutLink{}, ErrCheckoutExpired
	}
	if l.PaymentStatus == entities.PaymentStatusPaid {
		return entities.CheckoutLink{}, ErrCheckoutAlreadyPaid
	}

	cred, err := u.credentials.GetActiveByUser(ctx, l.UserID, u.service)
	if err != nil {
		return entities.CheckoutLink{}, err
	}
	if cred.ID == "" {
		log.Printf("[checkout][usecase] no active credential user_id=%s", l.UserID)
		return entities.CheckoutLink{}, ErrCredentialNotConfigured
	}
	secret := cred.Secret()

	req := entities.PixChargeRequest{
		Amount:            l.ChargeAmount(),
		CustomerName:      firstNonEmpty(l.CustomerName, entities.DefaultCustomerName),
		CustomerEmail:     firstNonEmpty(l.CustomerEmail, entities.DefaultCustomerEmail),
		CustomerPhone:     l.CustomerPhone,
		CustomerDocument:  l.CustomerDocument,
		ProductName:       firstNonEmpty(l.ProductName, entities.DefaultProductName),
		ExternalReference: l.ID,
	}
	u.preferOriginalCustomer(ctx, secret, l.PaymentBestfyID, &req)

	charge, err := u.gateway.CreatePixCharge(ctx, secret, req)
	if err != nil {
		log.Printf("[checkout][usecase] gateway charge failed checkout_id=%s err=%v", l.ID, err)
		return entities.CheckoutLink{}, mapGatewayError(err)
	}
	if charge.Status == "" {
		charge.Status = entities.PaymentStatusWaitingPayment
	}

	updated, err := u.links.SavePix(ctx, l.ID, entities.PixUpdate{
		PaymentBestfyID: charge.TransactionID,
		PaymentStatus:   charge.Status,
		QRCode:          charge.QRCode,
		ExpiresAt:       charge.ExpiresAt,
		GeneratedAt:     now,
	})
	if err != nil {
		log.Printf("[checkout][usecase] save pix failed checkout_id=%s err=%v", l.ID, err)
		return entities.CheckoutLink{}, err
	}
	if updated.ID == "" {
		return entities.CheckoutLink{}, ErrCheckoutNotFound
	}

	u.recordRecoveryPayment(ctx, l, req, charge, now)
	log.Printf("[checkout][usecase] generate-pix done checkout_id=%s bestfy_id=%s", l.ID, charge.TransactionID)
	return updated, nil
}

// preferOriginalCustomer fills the charge with the customer data the gateway
// holds for the abandoned transaction, which is usually more complete than
// the copy on the link.
func (u *CheckoutUseCase) preferOriginalCustomer(ctx context.Context, secret, bestfyID string, req *entities.PixChargeRequest) {
	if bestfyID == "" {
		return
	}
	tx, err := u.gateway.GetTransaction(ctx, secret, bestfyID)
	if err != nil {
		log.Printf("[checkout][usecase] original transaction lookup failed bestfy_id=%s err=%v", bestfyID, err)
		return
	}
	if v := tx.CustomerName(); v != "" {
		req.CustomerName = v
	}
	if v := tx.CustomerEmail(); v != "" {
		req.CustomerEmail = v
	}
	if v := tx.CustomerPhone(); v != "" {
		req.CustomerPhone = v
	}
	if v := tx.CustomerDocument(); v != "" {
		req.CustomerDocument = v
	}
}

func (u *CheckoutUseCase) recordRecoveryPayment(ctx context.Context, l entities.CheckoutLink, req entities.PixChargeRequest, charge entities.PixCharge, now time.Time) {
	if charge.TransactionID == "" {
		return
	}
	p := entities.Payment{
		ID:                     uuid.NewString(),
		BestfyID:               charge.TransactionID,
		UserID:                 l.UserID,
		CustomerName:           req.CustomerName,
		CustomerEmail:          req.CustomerEmail,
		CustomerPhone:          req.CustomerPhone,
		CustomerDocument:       req.CustomerDocument,
		ProductName:            req.ProductName,
		Amount:                 req.Amount,
		Currency:               entities.CurrencyBRL,
		PaymentMethod:          entities.PaymentMethodPix,
		Status:                 charge.Status,
		Source:                 entities.PaymentSourceRecoveryCheckout,
		OwnerSource:            entities.OwnerSourceCheckoutLink,
		RecoverySource:         entities.RecoverySourceCheckout,
		RecoveryCheckoutLinkID: l.ID,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	_, err := u.payments.Insert(ctx, p)
	if err == nil {
		return
	}
	if !errors.Is(err, interfaces.ErrAlreadyExists) {
		log.Printf("[checkout][usecase] recovery payment insert failed bestfy_id=%s err=%v", p.BestfyID, err)
		return
	}
	// The gateway webhook got there first.
	if err := u.payments.SetRecoveryLinkage(ctx, p.BestfyID, l.ID); err != nil {
		log.Printf("[checkout][usecase] recovery linkage failed bestfy_id=%s err=%v", p.BestfyID, err)
	}
}

func (u *CheckoutUseCase) QRCodePNG(ctx context.Context, slug string, size int) ([]byte, error) {
	l, err := u.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !l.HasPix() {
		return nil, ErrPixNotGenerated
	}
	return u.renderQR(l.PixQRCode, size)
}

func (u *CheckoutUseCase) AccessThankYou(ctx context.Context, thankYouSlug string) (ThankYouPage, error) {
	thankYouSlug = strings.TrimSpace(thankYouSlug)
	if thankYouSlug == "" {
		return ThankYouPage{}, ErrThankYouNotFound
	}
	l, err := u.links.GetByThankYouSlug(ctx, thankYouSlug)
	if err != nil {
		return ThankYouPage{}, err
	}
	if l.ID == "" {
		return ThankYouPage{}, ErrThankYouNotFound
	}

	now := u.now()
	err = u.links.MarkThankYouAccessed(ctx, l.ID, now)
	switch {
	case errors.Is(err, interfaces.ErrConditionNotMet):
		return ThankYouPage{Checkout: l}, nil
	case err != nil:
		return ThankYouPage{}, err
	}
	l.ThankYouAccessedAt = &now

	if l.PaymentBestfyID != "" {
		if err := u.payments.MarkConvertedFromRecovery(ctx, l.PaymentBestfyID); err != nil {
			log.Printf("[checkout][usecase] mark converted failed bestfy_id=%s err=%v", l.PaymentBestfyID, err)
		}
	}
	log.Printf("[checkout][usecase] sale recovered checkout_id=%s bestfy_id=%s", l.ID, l.PaymentBestfyID)
	return ThankYouPage{Checkout: l, FirstAccess: true}, nil
}

func mapGatewayError(err error) error {
	ge, ok := entities.AsGatewayError(err)
	if !ok {
		return err
	}
	if ge.IsUnauthorized() {
		return errors.Join(ErrPaymentGatewayRejectsKey, ge)
	}
	return errors.Join(ErrPaymentGatewayFailure, ge)
}
