package interfaces

import (
	"context"
	"time"

	"pix_checkout/internal/domain/entities"
)

//go:generate mockgen -source=credential_repository_interface.go -destination=mocks/mock_credential_repository_interface.go -package=mock_interfaces

// ICredentialRepository abstracts persistence of merchant gateway keys (api_keys).
type ICredentialRepository interface {
	Create(ctx context.Context, c entities.MerchantCredential) (entities.MerchantCredential, error)
	GetActiveByUser(ctx context.Context, userID, service string) (entities.MerchantCredential, error)
	FindActiveByCompanyID(ctx context.Context, companyID string) (entities.MerchantCredential, error)
	ListActive(ctx context.Context, service string) ([]entities.MerchantCredential, error)
	Deactivate(ctx context.Context, id string, at time.Time) error
}

// ICompanyMappingRepository stores the company -> merchant attribution table.
type ICompanyMappingRepository interface {
	GetByCompanyID(ctx context.Context, companyID string) (entities.CompanyMapping, error)
	Upsert(ctx context.Context, m entities.CompanyMapping) error
}
