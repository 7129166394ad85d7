package response

import (
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase"
)

// CheckoutResponse is the public view of a checkout link. Owner and
// bookkeeping fields are left out.
type CheckoutResponse struct {
	ID                 string     `json:"id"`
	CheckoutSlug       string     `json:"checkout_slug"`
	CustomerName       string     `json:"customer_name"`
	CustomerEmail      string     `json:"customer_email"`
	ProductName        string     `json:"product_name"`
	Amount             int64      `json:"amount"`
	OriginalAmount     int64      `json:"original_amount"`
	DiscountPercentage int        `json:"discount_percentage"`
	DiscountAmount     int64      `json:"discount_amount"`
	FinalAmount        int64      `json:"final_amount"`
	PaymentBestfyID    string     `json:"payment_bestfy_id,omitempty"`
	PaymentStatus      string     `json:"payment_status"`
	PixQRCode          string     `json:"pix_qrcode,omitempty"`
	PixExpiresAt       *time.Time `json:"pix_expires_at,omitempty"`
	PixGeneratedAt     *time.Time `json:"pix_generated_at,omitempty"`
	ThankYouSlug       string     `json:"thank_you_slug,omitempty"`
	ExpiresAt          time.Time  `json:"expires_at"`
	CreatedAt          time.Time  `json:"created_at"`
}

func FromCheckoutLink(l entities.CheckoutLink) CheckoutResponse {
	return CheckoutResponse{
		ID:                 l.ID,
		CheckoutSlug:       l.CheckoutSlug,
		CustomerName:       l.CustomerName,
		CustomerEmail:      l.CustomerEmail,
		ProductName:        l.ProductName,
		Amount:             l.Amount,
		OriginalAmount:     l.OriginalAmount,
		DiscountPercentage: l.DiscountPercentage,
		DiscountAmount:     l.DiscountAmount,
		FinalAmount:        l.FinalAmount,
		PaymentBestfyID:    l.PaymentBestfyID,
		PaymentStatus:      string(l.PaymentStatus),
		PixQRCode:          l.PixQRCode,
		PixExpiresAt:       l.PixExpiresAt,
		PixGeneratedAt:     l.PixGeneratedAt,
		ThankYouSlug:       l.ThankYouSlug,
		ExpiresAt:          l.ExpiresAt,
		CreatedAt:          l.CreatedAt,
	}
}

// GeneratePixResponse wraps the updated checkout row.
type GeneratePixResponse struct {
	Success  bool             `json:"success"`
	Checkout CheckoutResponse `json:"checkout"`
}

type ThankYouResponse struct {
	CustomerName  string `json:"customer_name"`
	ProductName   string `json:"product_name"`
	Amount        int64  `json:"amount"`
	PaymentStatus string `json:"payment_status"`
	FirstAccess   bool   `json:"first_access"`
}

func FromThankYouPage(p usecase.ThankYouPage) ThankYouResponse {
	return ThankYouResponse{
		CustomerName:  p.Checkout.CustomerName,
		ProductName:   p.Checkout.ProductName,
		Amount:        p.Checkout.ChargeAmount(),
		PaymentStatus: string(p.Checkout.PaymentStatus),
		FirstAccess:   p.FirstAccess,
	}
}
