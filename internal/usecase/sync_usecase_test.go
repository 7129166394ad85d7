package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"
	mock_interfaces "pix_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSyncUseCase_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock_interfaces.NewMockICredentialRepository(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	links := mock_interfaces.NewMockICheckoutLinkRepository(ctrl)
	gateway := mock_interfaces.NewMockIPixGateway(ctrl)
	uc := NewSyncUseCase(creds, payments, links, gateway, "bestfy", 0, NewCheckoutLinkFactory(0, time.Hour))

	good := entities.MerchantCredential{ID: "c-1", UserID: "u-1", EncryptedKey: entities.EncodeSecret("sk_good")}
	bad := entities.MerchantCredential{ID: "c-2", UserID: "u-2", EncryptedKey: entities.EncodeSecret("sk_bad")}

	creds.EXPECT().ListActive(gomock.Any(), "bestfy").Return([]entities.MerchantCredential{good, bad}, nil)
	gateway.EXPECT().ListTransactions(gomock.Any(), "sk_good").Return([]entities.GatewayTransaction{
		{ID: "known", Status: "paid", Amount: 100},
		{ID: "new-paid", Status: "paid", Amount: 200},
		{ID: "new-pending", Status: "waiting_payment", Amount: 300},
		{ID: "raced", Status: "paid", Amount: 400},
		{ID: "", Status: "paid"},
	}, nil)
	gateway.EXPECT().ListTransactions(gomock.Any(), "sk_bad").Return(nil, &entities.GatewayError{Provider: "bestfy", StatusCode: http.StatusUnauthorized})
	payments.EXPECT().ListBestfyIDsByUser(gomock.Any(), "u-1").Return([]string{"known"}, nil)

	inserted := map[string]entities.Payment{}
	payments.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(3).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
		if p.BestfyID == "raced" {
			return entities.Payment{}, interfaces.ErrAlreadyExists
		}
		inserted[p.BestfyID] = p
		return p, nil
	})
	links.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.CheckoutLink) (entities.CheckoutLink, error) {
		if l.PaymentBestfyID != "new-pending" {
			t.Fatalf("only pending payments get a checkout link, got %s", l.PaymentBestfyID)
		}
		return l, nil
	})

	report, err := uc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.UsersProcessed != 2 || report.TotalSynced != 2 || report.TotalErrors != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.Results[1].Message != "gateway rejected the stored api key" {
		t.Fatalf("unexpected failure message: %+v", report.Results[1])
	}
	for id, p := range inserted {
		if p.Source != entities.PaymentSourceBackendSync || p.UserID != "u-1" || p.OwnerSource != entities.OwnerSourceSync {
			t.Fatalf("unexpected inserted payment %s: %+v", id, p)
		}
	}
	if inserted["new-paid"].Status != entities.PaymentStatusPaid {
		t.Fatalf("gateway status must be stored as reported: %+v", inserted["new-paid"])
	}
}

func TestSyncUseCase_Run_ListCredentialsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock_interfaces.NewMockICredentialRepository(ctrl)
	uc := NewSyncUseCase(creds, nil, nil, nil, "bestfy", 0, CheckoutLinkFactory{})

	creds.EXPECT().ListActive(gomock.Any(), "bestfy").Return(nil, errors.New("db"))
	if _, err := uc.Run(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSyncUseCase_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock_interfaces.NewMockICredentialRepository(ctrl)
	uc := NewSyncUseCase(creds, nil, nil, nil, "bestfy", time.Hour, CheckoutLinkFactory{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	creds.EXPECT().ListActive(gomock.Any(), "bestfy").Return([]entities.MerchantCredential{{UserID: "u-1"}}, nil)

	report, err := uc.Run(ctx)
	if err == nil {
		t.Fatalf("expected context error")
	}
	if report.UsersProcessed != 0 {
		t.Fatalf("no merchant should be processed: %+v", report)
	}
}
