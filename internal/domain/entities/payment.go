package entities

import (
	"strings"
	"time"
)

// PaymentStatus is the gateway-facing status of a charge.
type PaymentStatus string

const (
	PaymentStatusWaitingPayment PaymentStatus = "waiting_payment"
	PaymentStatusPaid           PaymentStatus = "paid"
	PaymentStatusCancelled      PaymentStatus = "cancelled"
	PaymentStatusExpired        PaymentStatus = "expired"
	PaymentStatusRefused        PaymentStatus = "refused"
)

// OwnerSource records how a payment's owner was determined when it was first stored.
type OwnerSource string

const (
	OwnerSourceCompanyMapping OwnerSource = "company_mapping"
	OwnerSourceCredential     OwnerSource = "credential_company_id"
	OwnerSourceCustomerEmail  OwnerSource = "customer_email"
	OwnerSourceSync           OwnerSource = "sync_credential"
	OwnerSourceCheckoutLink   OwnerSource = "checkout_link"
)

const (
	PaymentSourceWebhook          = "webhook"
	PaymentSourceBackendSync      = "backend_sync"
	PaymentSourceRecoveryCheckout = "recovery_checkout"

	RecoverySourceCheckout = "recovery_checkout"

	PaymentMethodPix = "pix"
	CurrencyBRL      = "BRL"

	DefaultCustomerName  = "Cliente não informado"
	DefaultCustomerEmail = "email@nao-informado.com"
	DefaultProductName   = "Produto não especificado"
)

// Payment is one attempted or completed charge, keyed by the gateway's
// transaction id (BestfyID).
//
// Storage model (DynamoDB):
//   - PK: bestfy_id
//   - GSI id-index: id
//   - GSI user_id-index: user_id / created_at
//   - GSI customer_email-index: customer_email / created_at
//   - GSI status-index: status / created_at
type Payment struct {
	ID       string `json:"id"`
	BestfyID string `json:"bestfy_id"`
	UserID   string `json:"user_id"`

	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	CustomerPhone    string `json:"customer_phone,omitempty"`
	CustomerDocument string `json:"customer_document,omitempty"`
	ProductName      string `json:"product_name"`

	Amount        int64         `json:"amount"`
	Currency      string        `json:"currency"`
	PaymentMethod string        `json:"payment_method"`
	Status        PaymentStatus `json:"status"`
	Source        string        `json:"source"`
	OwnerSource   OwnerSource   `json:"owner_source,omitempty"`

	RecoveryEmailSentAt    *time.Time `json:"recovery_email_sent_at,omitempty"`
	RecoverySource         string     `json:"recovery_source,omitempty"`
	RecoveryCheckoutLinkID string     `json:"recovery_checkout_link_id,omitempty"`
	ConvertedFromRecovery  bool       `json:"converted_from_recovery"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasRecoveryLinkage reports whether the payment was produced by a recovery checkout.
func (p Payment) HasRecoveryLinkage() bool {
	return p.RecoverySource == RecoverySourceCheckout || p.RecoveryCheckoutLinkID != ""
}

// IsPaid reports whether the payment has been confirmed.
func (p Payment) IsPaid() bool {
	return p.Status == PaymentStatusPaid
}

// PaymentPatch carries the fields an inbound notification may overwrite on an
// existing payment. Empty strings leave the stored value untouched.
type PaymentPatch struct {
	Status           PaymentStatus
	Amount           int64
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	CustomerDocument string
	ProductName      string
	// MarkConverted only ever sets converted_from_recovery to true.
	MarkConverted bool
	UpdatedAt     time.Time
}

// NormalizePaymentStatus maps gateway status vocabularies onto PaymentStatus.
// Unknown values are kept verbatim.
func NormalizePaymentStatus(raw string) PaymentStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "":
		return PaymentStatusWaitingPayment
	case "waiting_payment", "pending", "in_process", "authorized", "in_mediation":
		return PaymentStatusWaitingPayment
	case "paid", "approved":
		return PaymentStatusPaid
	case "cancelled", "canceled":
		return PaymentStatusCancelled
	case "expired":
		return PaymentStatusExpired
	case "refused", "rejected":
		return PaymentStatusRefused
	}
	return PaymentStatus(s)
}
