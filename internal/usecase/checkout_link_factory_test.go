package usecase

import (
	"testing"
	"time"

	"pix_checkout/internal/domain/entities"
)

func TestApplyDiscount(t *testing.T) {
	cases := []struct {
		amount   int64
		pct      int
		discount int64
		final    int64
	}{
		{10000, 10, 1000, 9000},
		{9999, 15, 1500, 8499},
		{333, 50, 167, 166},
		{1000, 0, 0, 1000},
		{0, 10, 0, 0},
	}
	for _, tc := range cases {
		d, f := applyDiscount(tc.amount, tc.pct)
		if d != tc.discount || f != tc.final {
			t.Fatalf("applyDiscount(%d, %d) = %d, %d; want %d, %d", tc.amount, tc.pct, d, f, tc.discount, tc.final)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	cases := map[int64]string{
		0:        "R$ 0,00",
		5:        "R$ 0,05",
		1234:     "R$ 12,34",
		123456:   "R$ 1.234,56",
		12345678: "R$ 123.456,78",
		-990:     "-R$ 9,90",
	}
	for cents, want := range cases {
		if got := FormatBRL(cents); got != want {
			t.Fatalf("FormatBRL(%d) = %q, want %q", cents, got, want)
		}
	}
}

func TestCheckoutLinkFactory_Build(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f := NewCheckoutLinkFactory(200, 0)
	if f.DiscountPercentage != 0 || f.Expiration != 24*time.Hour {
		t.Fatalf("invalid settings must fall back: %+v", f)
	}

	p := entities.Payment{ID: "p-1", BestfyID: "tx-1", UserID: "u-1", Amount: 1000, Status: entities.PaymentStatusWaitingPayment}
	l := f.Build(p, nil, now)
	if l.FinalAmount != 1000 || l.PaymentID != "p-1" || l.PaymentStatus != entities.PaymentStatusWaitingPayment {
		t.Fatalf("unexpected link: %+v", l)
	}
	if l.CheckoutSlug == newSlug() || len(l.CheckoutSlug) != 12 {
		t.Fatalf("unexpected slug %q", l.CheckoutSlug)
	}
	if got := newThankYouSlug(); len(got) != 15 || got[:3] != "ty-" {
		t.Fatalf("unexpected thank-you slug %q", got)
	}
}
