package interfaces

import (
	"context"
	"errors"
	"time"

	"pix_checkout/internal/domain/entities"
)

// ErrAlreadyExists is returned by conditional inserts when the key is taken.
var ErrAlreadyExists = errors.New("item already exists")

// ErrConditionNotMet is returned by conditional updates that found the item
// in a state that forbids the write (e.g. a one-time stamp already set).
var ErrConditionNotMet = errors.New("condition not met")

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/mock_payment_repository_interface.go -package=mock_interfaces

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Lookups return a zero-value Payment (empty BestfyID) when nothing matches.
type IPaymentRepository interface {
	// Insert stores p only if no payment with the same BestfyID exists;
	// otherwise it returns ErrAlreadyExists.
	Insert(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByBestfyID(ctx context.Context, bestfyID string) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	Patch(ctx context.Context, bestfyID string, patch entities.PaymentPatch) (entities.Payment, error)
	SetRecoveryLinkage(ctx context.Context, bestfyID, checkoutLinkID string) error
	MarkConvertedFromRecovery(ctx context.Context, bestfyID string) error
	// MarkRecoveryEmailSent stamps recovery_email_sent_at once; a second call
	// returns ErrConditionNotMet.
	MarkRecoveryEmailSent(ctx context.Context, bestfyID string, at time.Time) error
	FindLatestByCustomerEmail(ctx context.Context, email string) (entities.Payment, error)
	ListBestfyIDsByUser(ctx context.Context, userID string) ([]string, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Payment, error)
	ListPendingRecovery(ctx context.Context) ([]entities.Payment, error)
	ListAll(ctx context.Context) ([]entities.Payment, error)
}
