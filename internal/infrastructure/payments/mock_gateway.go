package payments

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"
)

// MockGateway answers every call locally. It is selected with
// PAYMENT_GATEWAY_MOCK for development without gateway credentials.
type MockGateway struct {
	now func() time.Time
}

var _ interfaces.IPixGateway = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	return &MockGateway{now: time.Now}
}

func (g *MockGateway) ValidateKey(_ context.Context, secret string) error {
	if secret == "" {
		return newGatewayError("mock", http.StatusUnauthorized, "empty key")
	}
	log.Printf("[payment][gateway] mock key accepted")
	return nil
}

func (g *MockGateway) FetchCompanyID(_ context.Context, secret string) (string, error) {
	enc := entities.EncodeSecret(secret)
	if len(enc) > 8 {
		enc = enc[:8]
	}
	return "mock-company-" + enc, nil
}

func (g *MockGateway) ListTransactions(_ context.Context, _ string) ([]entities.GatewayTransaction, error) {
	log.Printf("[payment][gateway] mock list transactions (empty)")
	return nil, nil
}

func (g *MockGateway) GetTransaction(_ context.Context, _ string, transactionID string) (entities.GatewayTransaction, error) {
	return entities.GatewayTransaction{
		ID:     entities.FlexibleID(transactionID),
		Status: string(entities.PaymentStatusWaitingPayment),
	}, nil
}

func (g *MockGateway) CreatePixCharge(_ context.Context, _ string, req entities.PixChargeRequest) (entities.PixCharge, error) {
	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	exp := now.Add(15 * time.Minute)
	log.Printf("[payment][gateway] mock create pix success transaction_id=%s amount=%d", id, req.Amount)
	return entities.PixCharge{
		TransactionID: id,
		Status:        entities.PaymentStatusWaitingPayment,
		QRCode:        fmt.Sprintf("00020126580014br.gov.bcb.pix0136mock-%s520400005303986540%d5802BR6304ABCD", id, req.Amount),
		ExpiresAt:     &exp,
	}, nil
}
