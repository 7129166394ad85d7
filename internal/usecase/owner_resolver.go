package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"
)

var ErrOwnerNotResolved = errors.New("owner user not resolved")

const companyMappingSourceCredential = "credential"

// OwnerResolver attributes an inbound, unauthenticated notification to a
// merchant. Strategies, in order:
//  1. company mapping table (company_id -> user_id)
//  2. active credential whose cached company id matches (backfills the mapping)
//  3. most recent payment with the same customer email
type OwnerResolver struct {
	mappings    interfaces.ICompanyMappingRepository
	credentials interfaces.ICredentialRepository
	payments    interfaces.IPaymentRepository
}

func NewOwnerResolver(mappings interfaces.ICompanyMappingRepository, credentials interfaces.ICredentialRepository, payments interfaces.IPaymentRepository) *OwnerResolver {
	return &OwnerResolver{mappings: mappings, credentials: credentials, payments: payments}
}

func (r *OwnerResolver) Resolve(ctx context.Context, companyID, customerEmail string) (string, entities.OwnerSource, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID != "" {
		m, err := r.mappings.GetByCompanyID(ctx, companyID)
		if err != nil {
			return "", "", err
		}
		if m.UserID != "" {
			return m.UserID, entities.OwnerSourceCompanyMapping, nil
		}

		cred, err := r.credentials.FindActiveByCompanyID(ctx, companyID)
		if err != nil {
			return "", "", err
		}
		if cred.UserID != "" {
			err := r.mappings.Upsert(ctx, entities.CompanyMapping{
				CompanyID: companyID,
				UserID:    cred.UserID,
				Source:    companyMappingSourceCredential,
				UpdatedAt: time.Now().UTC(),
			})
			if err != nil {
				log.Printf("[webhook][owner] mapping backfill failed company_id=%s err=%v", companyID, err)
			}
			return cred.UserID, entities.OwnerSourceCredential, nil
		}
	}

	email := strings.ToLower(strings.TrimSpace(customerEmail))
	if email != "" && email != entities.DefaultCustomerEmail {
		p, err := r.payments.FindLatestByCustomerEmail(ctx, email)
		if err != nil {
			return "", "", err
		}
		if p.UserID != "" {
			return p.UserID, entities.OwnerSourceCustomerEmail, nil
		}
	}

	return "", "", ErrOwnerNotResolved
}
