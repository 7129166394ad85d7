package response

import "pix_checkout/internal/usecase"

type WebhookResponse struct {
	Success   bool                  `json:"success"`
	RequestID string                `json:"request_id"`
	Result    usecase.WebhookResult `json:"result"`
}

type WebhookHealthResponse struct {
	RequestID string                `json:"request_id"`
	Health    usecase.WebhookHealth `json:"health"`
}
