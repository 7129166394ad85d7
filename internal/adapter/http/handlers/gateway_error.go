package handlers

import (
	"net/http"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/pkg"
)

// gatewayAppError surfaces an upstream gateway failure with its status and body.
func gatewayAppError(err error) (*pkg.AppError, bool) {
	ge, ok := entities.AsGatewayError(err)
	if !ok {
		return nil, false
	}
	status := http.StatusBadGateway
	code := "PAYMENT_GATEWAY_ERROR"
	if ge.IsUnauthorized() {
		code = "PAYMENT_GATEWAY_UNAUTHORIZED"
	}
	appErr := pkg.NewDomainError(code, "Payment gateway request failed", err, status)
	return appErr.WithDetails(map[string]any{
		"provider":        ge.Provider,
		"upstream_status": ge.StatusCode,
		"upstream_body":   ge.Body,
	}), true
}
