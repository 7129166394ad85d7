package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"golang.org/x/time/rate"
)

// SyncMerchantResult is the per-merchant line of a sync report.
type SyncMerchantResult struct {
	UserID  string `json:"user_id"`
	Synced  int    `json:"synced"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}

type SyncReport struct {
	UsersProcessed int                  `json:"users_processed"`
	TotalSynced    int                  `json:"total_synced"`
	TotalErrors    int                  `json:"total_errors"`
	Results        []SyncMerchantResult `json:"results"`
	StartedAt      time.Time            `json:"started_at"`
	FinishedAt     time.Time            `json:"finished_at"`
}

//go:generate mockgen -source=sync_usecase.go -destination=../adapter/http/handlers/mocks/mock_sync_usecase.go -package=mocks

// ISyncUseCase pulls remote transactions for every merchant with an active
// credential and inserts the ones never seen before.
type ISyncUseCase interface {
	Run(ctx context.Context) (SyncReport, error)
}

type SyncUseCase struct {
	credentials interfaces.ICredentialRepository
	payments    interfaces.IPaymentRepository
	links       interfaces.ICheckoutLinkRepository
	gateway     interfaces.IPixGateway
	service     string
	limiter     *rate.Limiter
	factory     CheckoutLinkFactory
	now         func() time.Time
}

var _ ISyncUseCase = (*SyncUseCase)(nil)

func NewSyncUseCase(
	credentials interfaces.ICredentialRepository,
	payments interfaces.IPaymentRepository,
	links interfaces.ICheckoutLinkRepository,
	gateway interfaces.IPixGateway,
	service string,
	interval time.Duration,
	factory CheckoutLinkFactory,
) *SyncUseCase {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &SyncUseCase{
		credentials: credentials,
		payments:    payments,
		links:       links,
		gateway:     gateway,
		service:     service,
		limiter:     rate.NewLimiter(limit, 1),
		factory:     factory,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *SyncUseCase) Run(ctx context.Context) (SyncReport, error) {
	report := SyncReport{StartedAt: u.now(), Results: []SyncMerchantResult{}}
	log.Printf("[sync][usecase] run start service=%s", u.service)

	creds, err := u.credentials.ListActive(ctx, u.service)
	if err != nil {
		log.Printf("[sync][usecase] list credentials failed err=%v", err)
		return report, err
	}

	for _, cred := range creds {
		if err := u.limiter.Wait(ctx); err != nil {
			log.Printf("[sync][usecase] aborted err=%v", err)
			report.FinishedAt = u.now()
			return report, err
		}
		res := u.syncMerchant(ctx, cred)
		report.UsersProcessed++
		report.TotalSynced += res.Synced
		if res.Error != "" {
			report.TotalErrors++
		}
		report.Results = append(report.Results, res)
	}

	report.FinishedAt = u.now()
	log.Printf("[sync][usecase] run done users=%d synced=%d errors=%d", report.UsersProcessed, report.TotalSynced, report.TotalErrors)
	return report, nil
}

func (u *SyncUseCase) syncMerchant(ctx context.Context, cred entities.MerchantCredential) SyncMerchantResult {
	res := SyncMerchantResult{UserID: cred.UserID}

	txs, err := u.gateway.ListTransactions(ctx, cred.Secret())
	if err != nil {
		log.Printf("[sync][usecase] list transactions failed user_id=%s err=%v", cred.UserID, err)
		res.Error = err.Error()
		res.Message = "failed to list gateway transactions"
		if ge, ok := entities.AsGatewayError(err); ok && ge.IsUnauthorized() {
			res.Message = "gateway rejected the stored api key"
		}
		return res
	}

	known, err := u.payments.ListBestfyIDsByUser(ctx, cred.UserID)
	if err != nil {
		log.Printf("[sync][usecase] list known ids failed user_id=%s err=%v", cred.UserID, err)
		res.Error = err.Error()
		res.Message = "failed to load existing payments"
		return res
	}
	seen := make(map[string]struct{}, len(known))
	for _, id := range known {
		seen[id] = struct{}{}
	}

	now := u.now()
	var failures int
	for _, tx := range txs {
		txID := tx.ID.String()
		if txID == "" {
			continue
		}
		if _, ok := seen[txID]; ok {
			continue
		}
		// Bestfy values pass through NormalizePaymentStatus unchanged.
		p := paymentFromTransaction(txID, tx, entities.NormalizePaymentStatus(tx.Status), now)
		p.UserID = cred.UserID
		p.Source = entities.PaymentSourceBackendSync
		p.OwnerSource = entities.OwnerSourceSync

		if _, err := u.payments.Insert(ctx, p); err != nil {
			if errors.Is(err, interfaces.ErrAlreadyExists) {
				seen[txID] = struct{}{}
				continue
			}
			log.Printf("[sync][usecase] insert failed user_id=%s bestfy_id=%s err=%v", cred.UserID, txID, err)
			failures++
			res.Error = err.Error()
			continue
		}
		seen[txID] = struct{}{}
		res.Synced++
		if p.Status == entities.PaymentStatusWaitingPayment && p.PaymentMethod == entities.PaymentMethodPix {
			provisionCheckoutLink(ctx, u.links, u.factory, p, now)
		}
	}

	res.Message = "ok"
	if failures > 0 {
		res.Message = "some transactions could not be stored"
	}
	log.Printf("[sync][usecase] merchant done user_id=%s remote=%d synced=%d failures=%d", cred.UserID, len(txs), res.Synced, failures)
	return res
}
