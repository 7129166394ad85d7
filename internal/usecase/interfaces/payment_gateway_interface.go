package interfaces

import (
	"context"

	"pix_checkout/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

// IPixGateway abstracts the external PIX provider. Every call is made on
// behalf of one merchant, identified by its secret key. Upstream HTTP
// failures are returned as *entities.GatewayError.
type IPixGateway interface {
	ValidateKey(ctx context.Context, secret string) error
	FetchCompanyID(ctx context.Context, secret string) (string, error)
	ListTransactions(ctx context.Context, secret string) ([]entities.GatewayTransaction, error)
	GetTransaction(ctx context.Context, secret, transactionID string) (entities.GatewayTransaction, error)
	CreatePixCharge(ctx context.Context, secret string, req entities.PixChargeRequest) (entities.PixCharge, error)
}
