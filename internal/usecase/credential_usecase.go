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
	ErrInvalidAPIKey     = errors.New("invalid api key")
	ErrAPIKeyRejected    = errors.New("api key rejected by payment gateway")
	ErrCredentialMissing = errors.New("no active api key")
)

// CredentialView is what merchants see of their stored key.
type CredentialView struct {
	ID              string    `json:"id"`
	Service         string    `json:"service"`
	MaskedKey       string    `json:"masked_key"`
	BestfyCompanyID string    `json:"bestfy_company_id,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

//go:generate mockgen -source=credential_usecase.go -destination=../adapter/http/handlers/mocks/mock_credential_usecase.go -package=mocks

type ICredentialUseCase interface {
	Save(ctx context.Context, merchant entities.Merchant, apiKey string) (CredentialView, error)
	GetActive(ctx context.Context, merchant entities.Merchant) (CredentialView, error)
}

type CredentialUseCase struct {
	credentials interfaces.ICredentialRepository
	mappings    interfaces.ICompanyMappingRepository
	gateway     interfaces.IPixGateway
	service     string
}

var _ ICredentialUseCase = (*CredentialUseCase)(nil)

func NewCredentialUseCase(credentials interfaces.ICredentialRepository, mappings interfaces.ICompanyMappingRepository, gateway interfaces.IPixGateway, service string) *CredentialUseCase {
	return &CredentialUseCase{credentials: credentials, mappings: mappings, gateway: gateway, service: service}
}

func (u *CredentialUseCase) Save(ctx context.Context, merchant entities.Merchant, apiKey string) (CredentialView, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return CredentialView{}, ErrInvalidAPIKey
	}
	log.Printf("[credential][usecase] save start user_id=%s service=%s", merchant.UserID, u.service)

	if err := u.gateway.ValidateKey(ctx, apiKey); err != nil {
		log.Printf("[credential][usecase] validation failed user_id=%s err=%v", merchant.UserID, err)
		if ge, ok := entities.AsGatewayError(err); ok && ge.IsUnauthorized() {
			return CredentialView{}, ErrAPIKeyRejected
		}
		return CredentialView{}, mapGatewayError(err)
	}

	companyID, err := u.gateway.FetchCompanyID(ctx, apiKey)
	if err != nil {
		log.Printf("[credential][usecase] company id lookup failed user_id=%s err=%v", merchant.UserID, err)
		companyID = ""
	}

	now := time.Now().UTC()
	previous, err := u.credentials.GetActiveByUser(ctx, merchant.UserID, u.service)
	if err != nil {
		return CredentialView{}, err
	}
	if previous.ID != "" {
		if err := u.credentials.Deactivate(ctx, previous.ID, now); err != nil {
			return CredentialView{}, err
		}
	}

	created, err := u.credentials.Create(ctx, entities.MerchantCredential{
		ID:              uuid.NewString(),
		UserID:          merchant.UserID,
		Service:         u.service,
		EncryptedKey:    entities.EncodeSecret(apiKey),
		BestfyCompanyID: companyID,
		IsActive:        true,
		CreatedAt:       now,
	})
	if err != nil {
		return CredentialView{}, err
	}

	if companyID != "" {
		err := u.mappings.Upsert(ctx, entities.CompanyMapping{
			CompanyID: companyID,
			UserID:    merchant.UserID,
			Source:    companyMappingSourceCredential,
			UpdatedAt: now,
		})
		if err != nil {
			log.Printf("[credential][usecase] mapping upsert failed company_id=%s err=%v", companyID, err)
		}
	}

	log.Printf("[credential][usecase] saved credential_id=%s user_id=%s company_id=%s", created.ID, merchant.UserID, companyID)
	return toCredentialView(created), nil
}

func (u *CredentialUseCase) GetActive(ctx context.Context, merchant entities.Merchant) (CredentialView, error) {
	c, err := u.credentials.GetActiveByUser(ctx, merchant.UserID, u.service)
	if err != nil {
		return CredentialView{}, err
	}
	if c.ID == "" {
		return CredentialView{}, ErrCredentialMissing
	}
	return toCredentialView(c), nil
}

func toCredentialView(c entities.MerchantCredential) CredentialView {
	return CredentialView{
		ID:              c.ID,
		Service:         c.Service,
		MaskedKey:       c.MaskedSecret(),
		BestfyCompanyID: c.BestfyCompanyID,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
	}
}
