package entities

import (
	"testing"
	"time"
)

func TestNormalizePaymentStatus(t *testing.T) {
	tests := map[string]PaymentStatus{
		"":                PaymentStatusWaitingPayment,
		"waiting_payment": PaymentStatusWaitingPayment,
		"pending":         PaymentStatusWaitingPayment,
		"PAID":            PaymentStatusPaid,
		"approved":        PaymentStatusPaid,
		"canceled":        PaymentStatusCancelled,
		"rejected":        PaymentStatusRefused,
		"expired":         PaymentStatusExpired,
		"chargedback":     PaymentStatus("chargedback"),
	}
	for in, want := range tests {
		if got := NormalizePaymentStatus(in); got != want {
			t.Errorf("NormalizePaymentStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizePaymentStatus_BestfyValuesUnchanged(t *testing.T) {
	for _, st := range []PaymentStatus{PaymentStatusWaitingPayment, PaymentStatusPaid, PaymentStatusCancelled, PaymentStatusExpired, PaymentStatusRefused} {
		if got := NormalizePaymentStatus(string(st)); got != st {
			t.Errorf("NormalizePaymentStatus(%q) = %q", st, got)
		}
	}
}

func TestPayment_HasRecoveryLinkage(t *testing.T) {
	if (Payment{}).HasRecoveryLinkage() {
		t.Fatalf("empty payment should not be linked")
	}
	if !(Payment{RecoverySource: RecoverySourceCheckout}).HasRecoveryLinkage() {
		t.Fatalf("recovery source should link")
	}
	if !(Payment{RecoveryCheckoutLinkID: "link-1"}).HasRecoveryLinkage() {
		t.Fatalf("checkout link id should link")
	}
}

func TestCheckoutLink(t *testing.T) {
	now := time.Now().UTC()
	l := CheckoutLink{Amount: 1000}
	if l.ChargeAmount() != 1000 {
		t.Fatalf("expected amount fallback")
	}
	l.FinalAmount = 900
	if l.ChargeAmount() != 900 {
		t.Fatalf("expected final amount")
	}
	if l.IsExpired(now) {
		t.Fatalf("zero expiry never expires")
	}
	l.ExpiresAt = now
	if !l.IsExpired(now) {
		t.Fatalf("expiry instant counts as expired")
	}
	if l.IsRecovered() {
		t.Fatalf("no thank-you slug means not recovered")
	}
	l.ThankYouSlug = "ty-abc123"
	if !l.IsRecovered() {
		t.Fatalf("thank-you slug means recovered")
	}
}

func TestUserSettings(t *testing.T) {
	for _, m := range []int{0, 61, -1} {
		if ValidRecoveryDelay(m) {
			t.Errorf("delay %d should be invalid", m)
		}
	}
	for _, m := range []int{1, 3, 60} {
		if !ValidRecoveryDelay(m) {
			t.Errorf("delay %d should be valid", m)
		}
	}
	if DefaultUserSettings("u").RecoveryDelay() != 3*time.Minute {
		t.Fatalf("unexpected default delay")
	}
	if (UserSettings{RecoveryEmailDelayMinutes: 99}).RecoveryDelay() != 3*time.Minute {
		t.Fatalf("out of range delay should fall back to default")
	}
}

func TestMerchantCredential_Secret(t *testing.T) {
	c := MerchantCredential{EncryptedKey: EncodeSecret(" sk_live_abcd1234 ")}
	if c.Secret() != "sk_live_abcd1234" {
		t.Fatalf("unexpected secret %q", c.Secret())
	}
	if c.MaskedSecret() != "************1234" {
		t.Fatalf("unexpected mask %q", c.MaskedSecret())
	}
	legacy := MerchantCredential{EncryptedKey: "not base64!"}
	if legacy.Secret() != "not base64!" {
		t.Fatalf("legacy key should pass through")
	}
}
