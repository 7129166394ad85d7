package entities

import (
	"errors"
	"fmt"
	"net/http"
)

// GatewayError is an upstream payment-gateway failure carrying the
// provider's HTTP status and (truncated) body.
type GatewayError struct {
	Provider   string
	StatusCode int
	Body       string
	Message    string
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s gateway error: status=%d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s gateway error: status=%d body=%s", e.Provider, e.StatusCode, e.Body)
}

// IsUnauthorized reports whether the gateway rejected the merchant's key.
func (e *GatewayError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// AsGatewayError unwraps err into a *GatewayError when possible.
func AsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
