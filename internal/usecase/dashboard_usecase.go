package usecase

import (
	"context"
	"sort"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"
)

//go:generate mockgen -source=dashboard_usecase.go -destination=../adapter/http/handlers/mocks/mock_dashboard_usecase.go -package=mocks

type IDashboardUseCase interface {
	MerchantStats(ctx context.Context, merchant entities.Merchant) (entities.DashboardStats, error)
	AdminStats(ctx context.Context) (entities.AdminStats, error)
	ListPayments(ctx context.Context, merchant entities.Merchant) ([]entities.Payment, error)
}

type DashboardUseCase struct {
	payments interfaces.IPaymentRepository
	links    interfaces.ICheckoutLinkRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(payments interfaces.IPaymentRepository, links interfaces.ICheckoutLinkRepository) *DashboardUseCase {
	return &DashboardUseCase{payments: payments, links: links}
}

func (u *DashboardUseCase) MerchantStats(ctx context.Context, merchant entities.Merchant) (entities.DashboardStats, error) {
	payments, err := u.payments.ListByUser(ctx, merchant.UserID)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	links, err := u.links.ListByUser(ctx, merchant.UserID)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	return BuildDashboardStats(payments, links), nil
}

// BuildDashboardStats aggregates payments and checkout links. A sale counts
// as recovered when its checkout link carries a thank-you slug.
func BuildDashboardStats(payments []entities.Payment, links []entities.CheckoutLink) entities.DashboardStats {
	var s entities.DashboardStats
	s.TotalPayments = len(payments)
	for _, p := range payments {
		switch p.Status {
		case entities.PaymentStatusPaid:
			s.PaidCount++
			s.PaidAmount += p.Amount
		case entities.PaymentStatusWaitingPayment:
			s.PendingCount++
			s.PendingAmount += p.Amount
		}
		if p.RecoveryEmailSentAt != nil {
			s.EmailsSent++
		}
	}
	for _, l := range links {
		s.CheckoutAccesses += l.AccessCount
		if l.IsRecovered() {
			s.RecoveredCount++
			s.RecoveredAmount += l.ChargeAmount()
		}
	}
	if s.EmailsSent > 0 {
		s.ConversionRate = float64(s.RecoveredCount) / float64(s.EmailsSent) * 100
	}
	return s
}

func (u *DashboardUseCase) AdminStats(ctx context.Context) (entities.AdminStats, error) {
	payments, err := u.payments.ListAll(ctx)
	if err != nil {
		return entities.AdminStats{}, err
	}
	links, err := u.links.ListAll(ctx)
	if err != nil {
		return entities.AdminStats{}, err
	}

	out := entities.AdminStats{TotalPayments: len(payments), Merchants: []entities.MerchantPaymentSummary{}}
	perUser := map[string]*entities.MerchantPaymentSummary{}
	for _, p := range payments {
		m, ok := perUser[p.UserID]
		if !ok {
			m = &entities.MerchantPaymentSummary{UserID: p.UserID}
			perUser[p.UserID] = m
		}
		m.TotalPayments++
		switch p.Status {
		case entities.PaymentStatusPaid:
			out.PaidCount++
			out.PaidAmount += p.Amount
			m.PaidPayments++
			m.PaidAmount += p.Amount
		case entities.PaymentStatusWaitingPayment:
			out.PendingCount++
		}
		if p.RecoveryEmailSentAt != nil {
			out.EmailsSent++
		}
	}
	for _, l := range links {
		if l.IsRecovered() {
			out.RecoveredCount++
		}
	}

	out.TotalMerchants = len(perUser)
	for _, m := range perUser {
		out.Merchants = append(out.Merchants, *m)
	}
	sort.Slice(out.Merchants, func(i, j int) bool {
		if out.Merchants[i].TotalPayments != out.Merchants[j].TotalPayments {
			return out.Merchants[i].TotalPayments > out.Merchants[j].TotalPayments
		}
		return out.Merchants[i].UserID < out.Merchants[j].UserID
	})
	return out, nil
}

func (u *DashboardUseCase) ListPayments(ctx context.Context, merchant entities.Merchant) ([]entities.Payment, error) {
	payments, err := u.payments.ListByUser(ctx, merchant.UserID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})
	return payments, nil
}
