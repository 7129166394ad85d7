package request

import "strings"

// GeneratePixRequest is the body of POST /v1/checkout/generate-pix.
type GeneratePixRequest struct {
	CheckoutID string `json:"checkout_id" binding:"required"`
}

func (r GeneratePixRequest) ResolveCheckoutID() string {
	return strings.TrimSpace(r.CheckoutID)
}

// CreateCheckoutLinkRequest lets a merchant open a recovery checkout for one
// of its payments. PaymentID accepts the internal id or the gateway id.
type CreateCheckoutLinkRequest struct {
	PaymentID          string `json:"payment_id" binding:"required"`
	DiscountPercentage *int   `json:"discount_percentage"`
}
