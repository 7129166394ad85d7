package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

const providerMercadoPago = "mercadopago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway issues PIX charges through Mercado Pago. The merchant
// secret is its access token; the platform token is used when it is empty.
type MercadoPagoGateway struct {
	defaultToken string
}

var _ interfaces.IPixGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(defaultToken string) *MercadoPagoGateway {
	return &MercadoPagoGateway{defaultToken: strings.TrimSpace(defaultToken)}
}

func (g *MercadoPagoGateway) client(secret string) (payment.Client, error) {
	token := strings.TrimSpace(secret)
	if token == "" {
		token = g.defaultToken
	}
	if token == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}
	cfg, err := config.New(token)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	return payment.NewClient(cfg), nil
}

func (g *MercadoPagoGateway) ValidateKey(ctx context.Context, secret string) error {
	_, err := g.search(ctx, secret, map[string]string{"limit": "1"})
	return err
}

// FetchCompanyID is not supported: Mercado Pago tokens are already scoped to
// one seller, so attribution relies on the stored credential.
func (g *MercadoPagoGateway) FetchCompanyID(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (g *MercadoPagoGateway) ListTransactions(ctx context.Context, secret string) ([]entities.GatewayTransaction, error) {
	return g.search(ctx, secret, map[string]string{
		"sort":              "date_created",
		"criteria":          "desc",
		"payment_method_id": "pix",
	})
}

func (g *MercadoPagoGateway) GetTransaction(ctx context.Context, secret, transactionID string) (entities.GatewayTransaction, error) {
	id, err := strconv.Atoi(transactionID)
	if err != nil {
		return entities.GatewayTransaction{}, fmt.Errorf("invalid mercado pago payment id %q", transactionID)
	}
	c, err := g.client(secret)
	if err != nil {
		return entities.GatewayTransaction{}, err
	}
	resp, err := c.Get(ctx, id)
	if err != nil {
		return entities.GatewayTransaction{}, classifyMercadoPagoError(err)
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return entities.GatewayTransaction{}, err
	}
	var p mpPayment
	if err := json.Unmarshal(b, &p); err != nil {
		return entities.GatewayTransaction{}, fmt.Errorf("%w: %v", ErrInvalidGatewayResponse, err)
	}
	return p.toTransaction(), nil
}

func (g *MercadoPagoGateway) CreatePixCharge(ctx context.Context, secret string, req entities.PixChargeRequest) (entities.PixCharge, error) {
	c, err := g.client(secret)
	if err != nil {
		return entities.PixCharge{}, err
	}

	payer := map[string]any{"email": req.CustomerEmail}
	if name := strings.TrimSpace(req.CustomerName); name != "" {
		parts := strings.SplitN(name, " ", 2)
		payer["first_name"] = parts[0]
		if len(parts) == 2 {
			payer["last_name"] = parts[1]
		}
	}
	if doc := entities.OnlyDigits(req.CustomerDocument); doc != "" {
		payer["identification"] = map[string]any{"type": strings.ToUpper(req.DocumentType()), "number": doc}
	}
	reqMap := map[string]any{
		"transaction_amount": float64(req.Amount) / 100,
		"payment_method_id":  entities.PaymentMethodPix,
		"description":        req.ProductName,
		"payer":              payer,
	}
	if req.ExternalReference != "" {
		reqMap["external_reference"] = req.ExternalReference
	}

	b, err := json.Marshal(reqMap)
	if err != nil {
		return entities.PixCharge{}, err
	}
	var mpReq payment.Request
	if err := json.Unmarshal(b, &mpReq); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return entities.PixCharge{}, err
	}

	log.Printf("[payment][gateway] mercadopago create pix start amount=%d", req.Amount)
	resp, err := c.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return entities.PixCharge{}, classifyMercadoPagoError(err)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return entities.PixCharge{}, err
	}
	var p mpPayment
	if err := json.Unmarshal(raw, &p); err != nil {
		return entities.PixCharge{}, fmt.Errorf("%w: %v", ErrInvalidGatewayResponse, err)
	}
	qr := p.PointOfInteraction.TransactionData.QRCode
	if qr == "" {
		return entities.PixCharge{}, ErrPixCodeMissing
	}
	log.Printf("[payment][gateway] mercadopago create pix success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	charge := entities.PixCharge{
		TransactionID: strconv.Itoa(resp.ID),
		Status:        entities.NormalizePaymentStatus(resp.Status),
		QRCode:        qr,
	}
	if t, ok := parseGatewayTime(p.DateOfExpiration); ok {
		charge.ExpiresAt = &t
	}
	return charge, nil
}

func (g *MercadoPagoGateway) search(ctx context.Context, secret string, filters map[string]string) ([]entities.GatewayTransaction, error) {
	c, err := g.client(secret)
	if err != nil {
		return nil, err
	}
	resp, err := c.Search(ctx, payment.SearchRequest{Filters: filters})
	if err != nil {
		return nil, classifyMercadoPagoError(err)
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	var page struct {
		Results []mpPayment `json:"results"`
	}
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGatewayResponse, err)
	}
	out := make([]entities.GatewayTransaction, 0, len(page.Results))
	for _, p := range page.Results {
		out = append(out, p.toTransaction())
	}
	return out, nil
}

// mpPayment is the subset of the Mercado Pago payment resource we read.
type mpPayment struct {
	ID                int     `json:"id"`
	Status            string  `json:"status"`
	TransactionAmount float64 `json:"transaction_amount"`
	Description       string  `json:"description"`
	PaymentMethodID   string  `json:"payment_method_id"`
	DateCreated       string  `json:"date_created"`
	DateOfExpiration  string  `json:"date_of_expiration"`
	CollectorID       int     `json:"collector_id"`
	Payer             struct {
		Email          string `json:"email"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		Identification struct {
			Type   string `json:"type"`
			Number string `json:"number"`
		} `json:"identification"`
	} `json:"payer"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode string `json:"qr_code"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func (p mpPayment) toTransaction() entities.GatewayTransaction {
	tx := entities.GatewayTransaction{
		ID:            entities.FlexibleID(strconv.Itoa(p.ID)),
		Status:        string(entities.NormalizePaymentStatus(p.Status)),
		Amount:        int64(math.Round(p.TransactionAmount * 100)),
		PaymentMethod: p.PaymentMethodID,
		CreatedAt:     p.DateCreated,
		Customer: &entities.GatewayCustomer{
			Name:  strings.TrimSpace(p.Payer.FirstName + " " + p.Payer.LastName),
			Email: p.Payer.Email,
		},
	}
	if p.CollectorID != 0 {
		tx.CompanyID = entities.FlexibleID(strconv.Itoa(p.CollectorID))
	}
	if p.Payer.Identification.Number != "" {
		tx.Customer.Document = &entities.GatewayDocument{
			Number: p.Payer.Identification.Number,
			Type:   strings.ToLower(p.Payer.Identification.Type),
		}
	}
	if p.Description != "" {
		tx.Items = []entities.GatewayItem{{Title: p.Description, Quantity: 1, UnitPrice: tx.Amount}}
	}
	if t, ok := parseGatewayTime(p.DateCreated); ok {
		tx.CreatedAt = t.Format(time.RFC3339Nano)
	}
	return tx
}

// classifyMercadoPagoError maps SDK error text onto a GatewayError status.
func classifyMercadoPagoError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"status\":401") || strings.Contains(msg, "unauthorized"):
		return newGatewayError(providerMercadoPago, http.StatusUnauthorized, err.Error())
	case strings.Contains(msg, "\"status\":403") || strings.Contains(msg, "forbidden"):
		return newGatewayError(providerMercadoPago, http.StatusForbidden, err.Error())
	case strings.Contains(msg, "\"status\":429"):
		return newGatewayError(providerMercadoPago, http.StatusTooManyRequests, err.Error())
	case strings.Contains(msg, "\"status\":400") || strings.Contains(msg, "bad_request"):
		return newGatewayError(providerMercadoPago, http.StatusBadRequest, err.Error())
	case strings.Contains(msg, "\"status\":404") || strings.Contains(msg, "not_found"):
		return newGatewayError(providerMercadoPago, http.StatusNotFound, err.Error())
	}
	return err
}
