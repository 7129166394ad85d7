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

type checkoutDeps struct {
	links    *mock_interfaces.MockICheckoutLinkRepository
	payments *mock_interfaces.MockIPaymentRepository
	creds    *mock_interfaces.MockICredentialRepository
	gateway  *mock_interfaces.MockIPixGateway
	uc       *CheckoutUseCase
	now      time.Time
}

func newCheckoutDeps(t *testing.T) checkoutDeps {
	ctrl := gomock.NewController(t)
	d := checkoutDeps{
		links:    mock_interfaces.NewMockICheckoutLinkRepository(ctrl),
		payments: mock_interfaces.NewMockIPaymentRepository(ctrl),
		creds:    mock_interfaces.NewMockICredentialRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPixGateway(ctrl),
		now:      time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	render := func(content string, size int) ([]byte, error) {
		return []byte(content), nil
	}
	d.uc = NewCheckoutUseCase(d.links, d.payments, d.creds, d.gateway, "bestfy", NewCheckoutLinkFactory(10, 24*time.Hour), render)
	d.uc.now = func() time.Time { return d.now }
	return d
}

func TestCheckoutUseCase_GeneratePix(t *testing.T) {
	d := newCheckoutDeps(t)
	link := entities.CheckoutLink{
		ID:              "cl-1",
		UserID:          "u-1",
		CustomerName:    "Ana",
		CustomerEmail:   "ana@example.com",
		ProductName:     "Curso",
		Amount:          10000,
		FinalAmount:     9000,
		PaymentBestfyID: "orig-1",
		PaymentStatus:   entities.PaymentStatusWaitingPayment,
		ExpiresAt:       d.now.Add(time.Hour),
	}
	pixExpiry := d.now.Add(15 * time.Minute)

	d.links.EXPECT().GetByID(gomock.Any(), "cl-1").Return(link, nil)
	d.creds.EXPECT().GetActiveByUser(gomock.Any(), "u-1", "bestfy").Return(entities.MerchantCredential{ID: "c-1", EncryptedKey: entities.EncodeSecret("sk_live")}, nil)
	d.gateway.EXPECT().GetTransaction(gomock.Any(), "sk_live", "orig-1").Return(entities.GatewayTransaction{
		Customer: &entities.GatewayCustomer{Name: "Ana Souza", Document: &entities.GatewayDocument{Number: "12345678901"}},
	}, nil)
	d.gateway.EXPECT().CreatePixCharge(gomock.Any(), "sk_live", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, req entities.PixChargeRequest) (entities.PixCharge, error) {
		if req.Amount != 9000 {
			t.Fatalf("expected discounted amount, got %d", req.Amount)
		}
		if req.CustomerName != "Ana Souza" || req.CustomerDocument != "12345678901" || req.CustomerEmail != "ana@example.com" {
			t.Fatalf("unexpected customer: %+v", req)
		}
		return entities.PixCharge{TransactionID: "tx-new", Status: entities.PaymentStatusWaitingPayment, QRCode: "000201...", ExpiresAt: &pixExpiry}, nil
	})
	d.links.EXPECT().SavePix(gomock.Any(), "cl-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, upd entities.PixUpdate) (entities.CheckoutLink, error) {
		if upd.PaymentBestfyID != "tx-new" || upd.QRCode != "000201..." || !upd.GeneratedAt.Equal(d.now) {
			t.Fatalf("unexpected pix update: %+v", upd)
		}
		out := link
		out.PaymentBestfyID = upd.PaymentBestfyID
		out.PixQRCode = upd.QRCode
		out.PixExpiresAt = upd.ExpiresAt
		return out, nil
	})
	d.payments.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
		if p.BestfyID != "tx-new" || p.RecoverySource != entities.RecoverySourceCheckout || p.RecoveryCheckoutLinkID != "cl-1" {
			t.Fatalf("unexpected recovery payment: %+v", p)
		}
		return p, nil
	})

	got, err := d.uc.GeneratePix(context.Background(), "cl-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PixQRCode != "000201..." || got.PixExpiresAt == nil || !got.PixExpiresAt.Equal(pixExpiry) {
		t.Fatalf("unexpected checkout: %+v", got)
	}
}

func TestCheckoutUseCase_GeneratePix_Rejections(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		d := newCheckoutDeps(t)
		if _, err := d.uc.GeneratePix(context.Background(), " "); !errors.Is(err, ErrInvalidCheckoutID) {
			t.Fatalf("expected ErrInvalidCheckoutID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.links.EXPECT().GetByID(gomock.Any(), "x").Return(entities.CheckoutLink{}, nil)
		if _, err := d.uc.GeneratePix(context.Background(), "x"); !errors.Is(err, ErrCheckoutNotFound) {
			t.Fatalf("expected ErrCheckoutNotFound, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.links.EXPECT().GetByID(gomock.Any(), "x").Return(entities.CheckoutLink{ID: "x", ExpiresAt: d.now}, nil)
		if _, err := d.uc.GeneratePix(context.Background(), "x"); !errors.Is(err, ErrCheckoutExpired) {
			t.Fatalf("expected ErrCheckoutExpired, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.links.EXPECT().GetByID(gomock.Any(), "x").Return(entities.CheckoutLink{ID: "x", PaymentStatus: entities.PaymentStatusPaid}, nil)
		if _, err := d.uc.GeneratePix(context.Background(), "x"); !errors.Is(err, ErrCheckoutAlreadyPaid) {
			t.Fatalf("expected ErrCheckoutAlreadyPaid, got %v", err)
		}
	})

	t.Run("no credential", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.links.EXPECT().GetByID(gomock.Any(), "x").Return(entities.CheckoutLink{ID: "x", UserID: "u-1"}, nil)
		d.creds.EXPECT().GetActiveByUser(gomock.Any(), "u-1", "bestfy").Return(entities.MerchantCredential{}, nil)
		if _, err := d.uc.GeneratePix(context.Background(), "x"); !errors.Is(err, ErrCredentialNotConfigured) {
			t.Fatalf("expected ErrCredentialNotConfigured, got %v", err)
		}
	})

	t.Run("gateway rejects key", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.links.EXPECT().GetByID(gomock.Any(), "x").Return(entities.CheckoutLink{ID: "x", UserID: "u-1", Amount: 100}, nil)
		d.creds.EXPECT().GetActiveByUser(gomock.Any(), "u-1", "bestfy").Return(entities.MerchantCredential{ID: "c", EncryptedKey: "k"}, nil)
		d.gateway.EXPECT().CreatePixCharge(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.PixCharge{}, &entities.GatewayError{Provider: "bestfy", StatusCode: http.StatusUnauthorized})

		_, err := d.uc.GeneratePix(context.Background(), "x")
		if !errors.Is(err, ErrPaymentGatewayRejectsKey) {
			t.Fatalf("expected ErrPaymentGatewayRejectsKey, got %v", err)
		}
		if _, ok := entities.AsGatewayError(err); !ok {
			t.Fatalf("gateway error details must be preserved")
		}
	})
}

func TestCheckoutUseCase_GeneratePix_WebhookWonInsertRace(t *testing.T) {
	d := newCheckoutDeps(t)
	link := entities.CheckoutLink{ID: "cl-1", UserID: "u-1", Amount: 100, ExpiresAt: d.now.Add(time.Hour)}

	d.links.EXPECT().GetByID(gomock.Any(), "cl-1").Return(link, nil)
	d.creds.EXPECT().GetActiveByUser(gomock.Any(), "u-1", "bestfy").Return(entities.MerchantCredential{ID: "c", EncryptedKey: "k"}, nil)
	d.gateway.EXPECT().CreatePixCharge(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.PixCharge{TransactionID: "tx-new", QRCode: "q"}, nil)
	d.links.EXPECT().SavePix(gomock.Any(), "cl-1", gomock.Any()).Return(entities.CheckoutLink{ID: "cl-1", PixQRCode: "q"}, nil)
	d.payments.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(entities.Payment{}, interfaces.ErrAlreadyExists)
	d.payments.EXPECT().SetRecoveryLinkage(gomock.Any(), "tx-new", "cl-1").Return(nil)

	if _, err := d.uc.GeneratePix(context.Background(), "cl-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckoutUseCase_CreateLink(t *testing.T) {
	merchant := entities.Merchant{UserID: "u-1"}

	t.Run("invalid discount", func(t *testing.T) {
		d := newCheckoutDeps(t)
		pct := 95
		if _, err := d.uc.CreateLink(context.Background(), merchant, "p-1", &pct); !errors.Is(err, ErrInvalidDiscount) {
			t.Fatalf("expected ErrInvalidDiscount, got %v", err)
		}
	})

	t.Run("payment of another merchant", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.payments.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Payment{ID: "p-1", UserID: "u-2"}, nil)
		if _, err := d.uc.CreateLink(context.Background(), merchant, "p-1", nil); !errors.Is(err, ErrPaymentNotOwned) {
			t.Fatalf("expected ErrPaymentNotOwned, got %v", err)
		}
	})

	t.Run("resolves by gateway id and computes discount", func(t *testing.T) {
		d := newCheckoutDeps(t)
		pct := 15
		p := entities.Payment{ID: "p-1", BestfyID: "tx-1", UserID: "u-1", Amount: 9999, Status: entities.PaymentStatusWaitingPayment, CustomerName: "Ana"}
		d.payments.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.Payment{}, nil)
		d.payments.EXPECT().GetByBestfyID(gomock.Any(), "tx-1").Return(p, nil)
		d.links.EXPECT().GetLatestByPaymentID(gomock.Any(), "p-1").Return(entities.CheckoutLink{}, nil)
		d.links.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.CheckoutLink) (entities.CheckoutLink, error) {
			return l, nil
		})

		l, err := d.uc.CreateLink(context.Background(), merchant, "tx-1", &pct)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.DiscountAmount != 1500 || l.FinalAmount != 8499 || l.OriginalAmount != 9999 {
			t.Fatalf("unexpected amounts: %+v", l)
		}
		if len(l.CheckoutSlug) != 12 || !l.ExpiresAt.Equal(d.now.Add(24*time.Hour)) {
			t.Fatalf("unexpected slug/expiry: %+v", l)
		}
		if l.PaymentBestfyID != "tx-1" || l.CustomerName != "Ana" {
			t.Fatalf("payment data not copied: %+v", l)
		}
	})

	t.Run("reuses live link", func(t *testing.T) {
		d := newCheckoutDeps(t)
		existing := entities.CheckoutLink{ID: "cl-1", ExpiresAt: d.now.Add(time.Hour)}
		d.payments.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Payment{ID: "p-1", UserID: "u-1"}, nil)
		d.links.EXPECT().GetLatestByPaymentID(gomock.Any(), "p-1").Return(existing, nil)

		l, err := d.uc.CreateLink(context.Background(), merchant, "p-1", nil)
		if err != nil || l.ID != "cl-1" {
			t.Fatalf("expected existing link, got %+v err=%v", l, err)
		}
	})
}

func TestCheckoutUseCase_GetBySlug(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.links.EXPECT().GetBySlug(gomock.Any(), "nope").Return(entities.CheckoutLink{}, nil)
		if _, err := d.uc.GetBySlug(context.Background(), "nope"); !errors.Is(err, ErrCheckoutNotFound) {
			t.Fatalf("expected ErrCheckoutNotFound, got %v", err)
		}
	})

	t.Run("access count failure is ignored", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.links.EXPECT().GetBySlug(gomock.Any(), "abc").Return(entities.CheckoutLink{ID: "cl-1", AccessCount: 2}, nil)
		d.links.EXPECT().IncrementAccess(gomock.Any(), "cl-1", d.now).Return(errors.New("throttled"))

		l, err := d.uc.GetBySlug(context.Background(), "abc")
		if err != nil || l.AccessCount != 2 {
			t.Fatalf("unexpected link %+v err=%v", l, err)
		}
	})

	t.Run("counts access", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.links.EXPECT().GetBySlug(gomock.Any(), "abc").Return(entities.CheckoutLink{ID: "cl-1", AccessCount: 2}, nil)
		d.links.EXPECT().IncrementAccess(gomock.Any(), "cl-1", d.now).Return(nil)

		l, err := d.uc.GetBySlug(context.Background(), "abc")
		if err != nil || l.AccessCount != 3 || l.LastAccessedAt == nil {
			t.Fatalf("unexpected link %+v err=%v", l, err)
		}
	})
}

func TestCheckoutUseCase_GetStatus(t *testing.T) {
	d := newCheckoutDeps(t)
	d.links.EXPECT().GetBySlug(gomock.Any(), "abc").Return(entities.CheckoutLink{ID: "cl-1", PaymentStatus: entities.PaymentStatusPaid, ThankYouSlug: "ty-abc123"}, nil)

	st, err := d.uc.GetStatus(context.Background(), "abc")
	if err != nil || st.PaymentStatus != entities.PaymentStatusPaid || st.ThankYouSlug != "ty-abc123" {
		t.Fatalf("unexpected status %+v err=%v", st, err)
	}
}

func TestCheckoutUseCase_QRCodePNG(t *testing.T) {
	t.Run("no pix yet", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.links.EXPECT().GetBySlug(gomock.Any(), "abc").Return(entities.CheckoutLink{ID: "cl-1"}, nil)
		if _, err := d.uc.QRCodePNG(context.Background(), "abc", 256); !errors.Is(err, ErrPixNotGenerated) {
			t.Fatalf("expected ErrPixNotGenerated, got %v", err)
		}
	})

	t.Run("renders stored code", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.links.EXPECT().GetBySlug(gomock.Any(), "abc").Return(entities.CheckoutLink{ID: "cl-1", PixQRCode: "000201"}, nil)
		png, err := d.uc.QRCodePNG(context.Background(), "abc", 256)
		if err != nil || string(png) != "000201" {
			t.Fatalf("unexpected png %q err=%v", png, err)
		}
	})
}

func TestCheckoutUseCase_AccessThankYou(t *testing.T) {
	t.Run("first access marks conversion", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.links.EXPECT().GetByThankYouSlug(gomock.Any(), "ty-abc123").Return(entities.CheckoutLink{ID: "cl-1", PaymentBestfyID: "tx-new", ThankYouSlug: "ty-abc123"}, nil)
		d.links.EXPECT().MarkThankYouAccessed(gomock.Any(), "cl-1", d.now).Return(nil)
		d.payments.EXPECT().MarkConvertedFromRecovery(gomock.Any(), "tx-new").Return(nil)

		page, err := d.uc.AccessThankYou(context.Background(), "ty-abc123")
		if err != nil || !page.FirstAccess || page.Checkout.ThankYouAccessedAt == nil {
			t.Fatalf("unexpected page %+v err=%v", page, err)
		}
	})

	t.Run("second access changes nothing", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.links.EXPECT().GetByThankYouSlug(gomock.Any(), "ty-abc123").Return(entities.CheckoutLink{ID: "cl-1", PaymentBestfyID: "tx-new"}, nil)
		d.links.EXPECT().MarkThankYouAccessed(gomock.Any(), "cl-1", d.now).Return(interfaces.ErrConditionNotMet)

		page, err := d.uc.AccessThankYou(context.Background(), "ty-abc123")
		if err != nil || page.FirstAccess {
			t.Fatalf("unexpected page %+v err=%v", page, err)
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.links.EXPECT().GetByThankYouSlug(gomock.Any(), "ty-x").Return(entities.CheckoutLink{}, nil)
		if _, err := d.uc.AccessThankYou(context.Background(), "ty-x"); !errors.Is(err, ErrThankYouNotFound) {
			t.Fatalf("expected ErrThankYouNotFound, got %v", err)
		}
	})
}
