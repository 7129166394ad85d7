package interfaces

import (
	"context"
	"time"

	"pix_checkout/internal/domain/entities"
)

//go:generate mockgen -source=checkout_link_repository_interface.go -destination=mocks/mock_checkout_link_repository_interface.go -package=mock_interfaces

// ICheckoutLinkRepository abstracts DynamoDB persistence for CheckoutLink.
type ICheckoutLinkRepository interface {
	Create(ctx context.Context, l entities.CheckoutLink) (entities.CheckoutLink, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutLink, error)
	GetBySlug(ctx context.Context, slug string) (entities.CheckoutLink, error)
	GetByThankYouSlug(ctx context.Context, slug string) (entities.CheckoutLink, error)
	GetLatestByPaymentID(ctx context.Context, paymentID string) (entities.CheckoutLink, error)
	ListByPaymentBestfyID(ctx context.Context, bestfyID string) ([]entities.CheckoutLink, error)
	ListByUser(ctx context.Context, userID string) ([]entities.CheckoutLink, error)
	ListAll(ctx context.Context) ([]entities.CheckoutLink, error)
	// PropagatePaymentStatus copies status onto the link and stamps
	// last_status_check. thankYouSlug is only written when the link has none.
	PropagatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus, thankYouSlug string, at time.Time) (entities.CheckoutLink, error)
	SavePix(ctx context.Context, id string, upd entities.PixUpdate) (entities.CheckoutLink, error)
	IncrementAccess(ctx context.Context, id string, at time.Time) error
	// MarkThankYouAccessed stamps thank_you_accessed_at once; a second call
	// returns ErrConditionNotMet.
	MarkThankYouAccessed(ctx context.Context, id string, at time.Time) error
}
