package payments

import (
	"errors"
	"net/http"

	"pix_checkout/internal/domain/entities"
)

var (
	ErrInvalidGatewayResponse = errors.New("invalid payment gateway response")
	ErrPixCodeMissing         = errors.New("payment gateway returned no pix code")
)

func newGatewayError(provider string, status int, body string) *entities.GatewayError {
	msg := ""
	switch status {
	case http.StatusUnauthorized:
		msg = "invalid API key"
	case http.StatusForbidden:
		msg = "access denied for this API key"
	case http.StatusTooManyRequests:
		msg = "rate limit exceeded"
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return &entities.GatewayError{Provider: provider, StatusCode: status, Body: body, Message: msg}
}
