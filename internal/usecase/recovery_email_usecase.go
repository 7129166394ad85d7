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

// RecoveryEmailResult is the per-recipient line of a recovery report.
type RecoveryEmailResult struct {
	BestfyID  string `json:"bestfy_id"`
	Email     string `json:"email"`
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

type RecoveryReport struct {
	Total   int                   `json:"total"`
	Sent    int                   `json:"sent"`
	Failed  int                   `json:"failed"`
	Skipped int                   `json:"skipped"`
	Results []RecoveryEmailResult `json:"results"`
}

//go:generate mockgen -source=recovery_email_usecase.go -destination=../adapter/http/handlers/mocks/mock_recovery_email_usecase.go -package=mocks

// IRecoveryEmailUseCase emails a checkout link to payers who left a PIX
// charge unpaid for longer than their merchant's configured delay.
type IRecoveryEmailUseCase interface {
	Run(ctx context.Context, now time.Time) (RecoveryReport, error)
}

type RecoveryEmailUseCase struct {
	payments      interfaces.IPaymentRepository
	links         interfaces.ICheckoutLinkRepository
	settings      interfaces.ISettingsRepository
	mailer        interfaces.IMailer
	publicBaseURL string
}

var _ IRecoveryEmailUseCase = (*RecoveryEmailUseCase)(nil)

func NewRecoveryEmailUseCase(
	payments interfaces.IPaymentRepository,
	links interfaces.ICheckoutLinkRepository,
	settings interfaces.ISettingsRepository,
	mailer interfaces.IMailer,
	publicBaseURL string,
) *RecoveryEmailUseCase {
	return &RecoveryEmailUseCase{
		payments:      payments,
		links:         links,
		settings:      settings,
		mailer:        mailer,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (u *RecoveryEmailUseCase) Run(ctx context.Context, now time.Time) (RecoveryReport, error) {
	report := RecoveryReport{Results: []RecoveryEmailResult{}}

	pending, err := u.payments.ListPendingRecovery(ctx)
	if err != nil {
		log.Printf("[recovery][usecase] list pending failed err=%v", err)
		return report, err
	}
	log.Printf("[recovery][usecase] run start candidates=%d", len(pending))

	delays := map[string]time.Duration{}
	for _, p := range pending {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		if !u.eligible(p) {
			report.Skipped++
			continue
		}

		delay, ok := delays[p.UserID]
		if !ok {
			s, err := u.settings.GetByUser(ctx, p.UserID)
			if err != nil {
				log.Printf("[recovery][usecase] settings lookup failed user_id=%s err=%v", p.UserID, err)
			}
			delay = s.RecoveryDelay()
			delays[p.UserID] = delay
		}
		if now.Sub(p.CreatedAt) < delay {
			report.Skipped++
			continue
		}

		link, err := u.links.GetLatestByPaymentID(ctx, p.ID)
		if err != nil {
			report.Total++
			report.Failed++
			report.Results = append(report.Results, RecoveryEmailResult{BestfyID: p.BestfyID, Email: p.CustomerEmail, Error: err.Error()})
			continue
		}
		if link.ID == "" {
			report.Skipped++
			continue
		}

		report.Total++
		res := u.send(ctx, p, link, now)
		if res.Success {
			report.Sent++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}

	log.Printf("[recovery][usecase] run done total=%d sent=%d failed=%d skipped=%d", report.Total, report.Sent, report.Failed, report.Skipped)
	return report, nil
}

func (u *RecoveryEmailUseCase) eligible(p entities.Payment) bool {
	if p.Status != entities.PaymentStatusWaitingPayment || p.RecoveryEmailSentAt != nil {
		return false
	}
	// Charges created from a recovery checkout are not recovered again.
	if p.HasRecoveryLinkage() {
		return false
	}
	email := strings.TrimSpace(p.CustomerEmail)
	return email != "" && email != entities.DefaultCustomerEmail
}

func (u *RecoveryEmailUseCase) send(ctx context.Context, p entities.Payment, link entities.CheckoutLink, now time.Time) RecoveryEmailResult {
	res := RecoveryEmailResult{BestfyID: p.BestfyID, Email: p.CustomerEmail}

	data := recoveryEmailData{
		CustomerName:  firstNonEmpty(p.CustomerName, entities.DefaultCustomerName),
		ProductName:   firstNonEmpty(p.ProductName, entities.DefaultProductName),
		Amount:        FormatBRL(p.Amount),
		TransactionID: p.BestfyID,
		CheckoutURL:   u.publicBaseURL + "/checkout/" + link.CheckoutSlug,
	}
	if link.DiscountPercentage > 0 && link.FinalAmount > 0 {
		data.HasDiscount = true
		data.DiscountPercentage = link.DiscountPercentage
		data.FinalAmount = FormatBRL(link.FinalAmount)
	}
	htmlBody, textBody, err := renderRecoveryEmail(data)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	msgID, err := u.mailer.Send(ctx, entities.EmailMessage{
		ToAddress: p.CustomerEmail,
		ToName:    data.CustomerName,
		Subject:   recoveryEmailSubject(data.CustomerName, data.ProductName),
		HTML:      htmlBody,
		Text:      textBody,
		Tag:       recoveryEmailTag,
	})
	if err != nil {
		log.Printf("[recovery][usecase] send failed bestfy_id=%s err=%v", p.BestfyID, err)
		res.Error = err.Error()
		return res
	}
	res.MessageID = msgID

	if err := u.payments.MarkRecoveryEmailSent(ctx, p.BestfyID, now); err != nil {
		if errors.Is(err, interfaces.ErrConditionNotMet) {
			log.Printf("[recovery][usecase] already stamped by another run bestfy_id=%s", p.BestfyID)
		} else {
			log.Printf("[recovery][usecase] stamp failed bestfy_id=%s err=%v", p.BestfyID, err)
			res.Error = err.Error()
			return res
		}
	}
	res.Success = true
	log.Printf("[recovery][usecase] sent bestfy_id=%s checkout_id=%s message_id=%s", p.BestfyID, link.ID, msgID)
	return res
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
