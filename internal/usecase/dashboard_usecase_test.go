package usecase

import (
	"context"
	"testing"
	"time"

	"pix_checkout/internal/domain/entities"
	mock_interfaces "pix_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBuildDashboardStats(t *testing.T) {
	sent := time.Now()
	payments := []entities.Payment{
		{Status: entities.PaymentStatusPaid, Amount: 1000},
		{Status: entities.PaymentStatusPaid, Amount: 500, RecoveryEmailSentAt: &sent},
		{Status: entities.PaymentStatusWaitingPayment, Amount: 300, RecoveryEmailSentAt: &sent},
		{Status: entities.PaymentStatusWaitingPayment, Amount: 200, RecoveryEmailSentAt: &sent},
		{Status: entities.PaymentStatusWaitingPayment, Amount: 100, RecoveryEmailSentAt: &sent},
		{Status: entities.PaymentStatusExpired, Amount: 50},
	}
	links := []entities.CheckoutLink{
		{AccessCount: 3, ThankYouSlug: "ty-1", Amount: 500, FinalAmount: 450},
		{AccessCount: 2},
	}

	s := BuildDashboardStats(payments, links)
	if s.TotalPayments != 6 || s.PaidCount != 2 || s.PaidAmount != 1500 {
		t.Fatalf("unexpected paid stats: %+v", s)
	}
	if s.PendingCount != 3 || s.PendingAmount != 600 {
		t.Fatalf("unexpected pending stats: %+v", s)
	}
	if s.RecoveredCount != 1 || s.RecoveredAmount != 450 || s.CheckoutAccesses != 5 {
		t.Fatalf("unexpected recovery stats: %+v", s)
	}
	if s.EmailsSent != 4 || s.ConversionRate != 25 {
		t.Fatalf("unexpected conversion: %+v", s)
	}

	if empty := BuildDashboardStats(nil, nil); empty.ConversionRate != 0 {
		t.Fatalf("conversion must be 0 without emails, got %v", empty.ConversionRate)
	}
}

func TestDashboardUseCase_AdminStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	links := mock_interfaces.NewMockICheckoutLinkRepository(ctrl)
	uc := NewDashboardUseCase(payments, links)

	payments.EXPECT().ListAll(gomock.Any()).Return([]entities.Payment{
		{UserID: "u-1", Status: entities.PaymentStatusPaid, Amount: 100},
		{UserID: "u-2", Status: entities.PaymentStatusWaitingPayment, Amount: 50},
		{UserID: "u-2", Status: entities.PaymentStatusPaid, Amount: 70},
	}, nil)
	links.EXPECT().ListAll(gomock.Any()).Return([]entities.CheckoutLink{{ThankYouSlug: "ty"}, {}}, nil)

	s, err := uc.AdminStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalMerchants != 2 || s.TotalPayments != 3 || s.PaidCount != 2 || s.PaidAmount != 170 || s.PendingCount != 1 || s.RecoveredCount != 1 {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if s.Merchants[0].UserID != "u-2" || s.Merchants[0].PaidAmount != 70 {
		t.Fatalf("merchants must be ordered by payment count: %+v", s.Merchants)
	}
}

func TestDashboardUseCase_ListPayments_NewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewDashboardUseCase(payments, nil)

	old := entities.Payment{BestfyID: "old", CreatedAt: time.Now().Add(-time.Hour)}
	recent := entities.Payment{BestfyID: "recent", CreatedAt: time.Now()}
	payments.EXPECT().ListByUser(gomock.Any(), "u-1").Return([]entities.Payment{old, recent}, nil)

	got, err := uc.ListPayments(context.Background(), entities.Merchant{UserID: "u-1"})
	if err != nil || got[0].BestfyID != "recent" {
		t.Fatalf("unexpected order %+v err=%v", got, err)
	}
}
