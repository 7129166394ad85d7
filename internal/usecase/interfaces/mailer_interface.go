package interfaces

import (
	"context"

	"pix_checkout/internal/domain/entities"
)

//go:generate mockgen -source=mailer_interface.go -destination=mocks/mock_mailer_interface.go -package=mock_interfaces

// IMailer sends transactional email and returns the provider's message id.
type IMailer interface {
	Send(ctx context.Context, msg entities.EmailMessage) (string, error)
}
