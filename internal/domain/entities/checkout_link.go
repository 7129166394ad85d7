package entities

import "time"

// CheckoutLink is the slug-addressed offer page bound to exactly one Payment.
// PaymentStatus is a denormalised copy of the payment's status.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI checkout_slug-index, thank_you_slug-index, payment_bestfy_id-index,
//     payment_id-index, user_id-index
type CheckoutLink struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	PaymentID    string `json:"payment_id"`
	CheckoutSlug string `json:"checkout_slug"`

	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	CustomerDocument string `json:"customer_document,omitempty"`
	CustomerPhone    string `json:"customer_phone,omitempty"`
	ProductName      string `json:"product_name"`

	Amount             int64 `json:"amount"`
	OriginalAmount     int64 `json:"original_amount"`
	DiscountPercentage int   `json:"discount_percentage"`
	DiscountAmount     int64 `json:"discount_amount"`
	FinalAmount        int64 `json:"final_amount"`

	PaymentBestfyID string        `json:"payment_bestfy_id,omitempty"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PixQRCode       string        `json:"pix_qrcode,omitempty"`
	PixExpiresAt    *time.Time    `json:"pix_expires_at,omitempty"`
	PixGeneratedAt  *time.Time    `json:"pix_generated_at,omitempty"`
	LastStatusCheck *time.Time    `json:"last_status_check,omitempty"`

	AccessCount    int        `json:"access_count"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`

	ExpiresAt          time.Time  `json:"expires_at"`
	ThankYouSlug       string     `json:"thank_you_slug,omitempty"`
	ThankYouAccessedAt *time.Time `json:"thank_you_accessed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChargeAmount is the amount the payer is asked for: the discounted value
// when one exists, otherwise the original amount.
func (l CheckoutLink) ChargeAmount() int64 {
	if l.FinalAmount > 0 {
		return l.FinalAmount
	}
	return l.Amount
}

func (l CheckoutLink) HasPix() bool {
	return l.PixQRCode != ""
}

func (l CheckoutLink) IsExpired(now time.Time) bool {
	return !l.ExpiresAt.IsZero() && !now.Before(l.ExpiresAt)
}

// IsRecovered reports whether the sale behind this link was recovered.
func (l CheckoutLink) IsRecovered() bool {
	return l.ThankYouSlug != ""
}

// PixUpdate is written to a checkout link after a PIX charge is created.
type PixUpdate struct {
	PaymentBestfyID string
	PaymentStatus   PaymentStatus
	QRCode          string
	ExpiresAt       *time.Time
	GeneratedAt     time.Time
}
