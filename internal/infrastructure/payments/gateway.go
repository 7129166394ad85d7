package payments

import (
	"log"
	"net/http"
	"time"

	"pix_checkout/internal/config"
	"pix_checkout/internal/usecase/interfaces"
)

// NewPixGateway selects the provider configured by PAYMENT_GATEWAY. Mock mode
// wins over any provider.
func NewPixGateway(cfg config.Config) interfaces.IPixGateway {
	if cfg.PaymentGatewayMock {
		log.Printf("[payment][gateway] mock mode enabled")
		return NewMockGateway()
	}
	switch cfg.PaymentGateway {
	case config.GatewayMercadoPago:
		log.Printf("[payment][gateway] Mercado Pago gateway selected")
		return NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	default:
		log.Printf("[payment][gateway] Bestfy gateway selected base_url=%s", cfg.BestfyAPIURL)
		return NewBestfyGateway(cfg.BestfyAPIURL, cfg.BestfyAlternateAPIURL, &http.Client{Timeout: 30 * time.Second})
	}
}

// CredentialService is the api_keys service name used for the configured provider.
func CredentialService(cfg config.Config) string {
	if cfg.PaymentGateway == config.GatewayMercadoPago {
		return config.GatewayMercadoPago
	}
	return config.GatewayBestfy
}
