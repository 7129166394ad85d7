package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"
)

const (
	providerBestfy     = "bestfy"
	maxGatewayBodySize = 1 << 20
)

// BestfyGateway talks to the Bestfy REST API using the merchant's secret key
// with HTTP basic auth (secret as user, "x" as password).
type BestfyGateway struct {
	baseURL    string
	altBaseURL string
	httpClient *http.Client
}

var _ interfaces.IPixGateway = (*BestfyGateway)(nil)

func NewBestfyGateway(baseURL, altBaseURL string, httpClient *http.Client) *BestfyGateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &BestfyGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		altBaseURL: strings.TrimRight(altBaseURL, "/"),
		httpClient: httpClient,
	}
}

// ValidateKey accepts the key when any of the known auth schemes succeeds on
// either API domain.
func (g *BestfyGateway) ValidateKey(ctx context.Context, secret string) error {
	type attempt struct {
		base string
		path string
		auth string
	}
	attempts := []attempt{
		{base: g.baseURL, path: "/v1/transactions?per_page=1", auth: basicAuth(secret)},
		{base: g.baseURL, path: "/v1/account", auth: "Bearer " + secret},
	}
	if g.altBaseURL != "" && g.altBaseURL != g.baseURL {
		attempts = append(attempts,
			attempt{base: g.altBaseURL, path: "/v1/account", auth: "Bearer " + secret},
			attempt{base: g.altBaseURL, path: "/v1/transactions?per_page=1", auth: basicAuth(secret)},
		)
	}

	var lastErr error
	for _, a := range attempts {
		_, err := g.do(ctx, http.MethodGet, a.base+a.path, a.auth, nil)
		if err == nil {
			log.Printf("[payment][gateway] bestfy key accepted base=%s path=%s", a.base, a.path)
			return nil
		}
		lastErr = err
	}
	log.Printf("[payment][gateway] bestfy key rejected err=%v", lastErr)
	return lastErr
}

func (g *BestfyGateway) FetchCompanyID(ctx context.Context, secret string) (string, error) {
	raw, err := g.do(ctx, http.MethodGet, g.baseURL+"/v1/company", basicAuth(secret), nil)
	if err != nil {
		return "", err
	}
	var body struct {
		ID   entities.FlexibleID `json:"id"`
		Data struct {
			ID entities.FlexibleID `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidGatewayResponse, err)
	}
	if body.ID != "" {
		return body.ID.String(), nil
	}
	return body.Data.ID.String(), nil
}

func (g *BestfyGateway) ListTransactions(ctx context.Context, secret string) ([]entities.GatewayTransaction, error) {
	raw, err := g.do(ctx, http.MethodGet, g.baseURL+"/v1/transactions", basicAuth(secret), nil)
	if err != nil {
		return nil, err
	}
	return decodeTransactionList(raw)
}

func (g *BestfyGateway) GetTransaction(ctx context.Context, secret, transactionID string) (entities.GatewayTransaction, error) {
	raw, err := g.do(ctx, http.MethodGet, g.baseURL+"/v1/transactions/"+transactionID, basicAuth(secret), nil)
	if err != nil {
		return entities.GatewayTransaction{}, err
	}
	var tx entities.GatewayTransaction
	if err := json.Unmarshal(raw, &tx); err != nil {
		return entities.GatewayTransaction{}, fmt.Errorf("%w: %v", ErrInvalidGatewayResponse, err)
	}
	return tx, nil
}

func (g *BestfyGateway) CreatePixCharge(ctx context.Context, secret string, req entities.PixChargeRequest) (entities.PixCharge, error) {
	customer := map[string]any{
		"name":  req.CustomerName,
		"email": req.CustomerEmail,
	}
	if req.CustomerPhone != "" {
		customer["phone"] = req.CustomerPhone
	}
	if doc := entities.OnlyDigits(req.CustomerDocument); doc != "" {
		customer["document"] = map[string]any{"number": doc, "type": req.DocumentType()}
	}
	payload := map[string]any{
		"amount":        req.Amount,
		"paymentMethod": entities.PaymentMethodPix,
		"customer":      customer,
		"items": []map[string]any{{
			"title":     req.ProductName,
			"quantity":  1,
			"unitPrice": req.Amount,
			"tangible":  false,
		}},
	}
	if req.ExternalReference != "" {
		payload["externalRef"] = req.ExternalReference
	}

	log.Printf("[payment][gateway] bestfy create pix start amount=%d", req.Amount)
	raw, err := g.do(ctx, http.MethodPost, g.baseURL+"/v1/transactions", basicAuth(secret), payload)
	if err != nil {
		log.Printf("[payment][gateway] bestfy create pix failed err=%v", err)
		return entities.PixCharge{}, err
	}
	charge, err := decodePixCharge(raw)
	if err != nil {
		return entities.PixCharge{}, err
	}
	log.Printf("[payment][gateway] bestfy create pix success transaction_id=%s status=%s", charge.TransactionID, charge.Status)
	return charge, nil
}

func (g *BestfyGateway) do(ctx context.Context, method, url, auth string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", auth)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxGatewayBodySize))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newGatewayError(providerBestfy, resp.StatusCode, string(raw))
	}
	if !json.Valid(raw) {
		snippet := string(raw)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return nil, fmt.Errorf("%w: content-type=%q body=%q", ErrInvalidGatewayResponse, resp.Header.Get("Content-Type"), snippet)
	}
	return raw, nil
}

func basicAuth(secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(secret+":x"))
}

// decodeTransactionList accepts either a bare array or a {"data": [...]} envelope.
func decodeTransactionList(raw []byte) ([]entities.GatewayTransaction, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []entities.GatewayTransaction
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGatewayResponse, err)
		}
		return list, nil
	}
	var envelope struct {
		Data []entities.GatewayTransaction `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGatewayResponse, err)
	}
	return envelope.Data, nil
}

func decodePixCharge(raw []byte) (entities.PixCharge, error) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return entities.PixCharge{}, fmt.Errorf("%w: %v", ErrInvalidGatewayResponse, err)
	}

	id := anyToString(body["id"])
	if id == "" {
		return entities.PixCharge{}, fmt.Errorf("%w: missing transaction id", ErrInvalidGatewayResponse)
	}

	pix, _ := body["pix"].(map[string]any)
	qr := firstString(pix, "qrcode", "qrCode", "qr_code", "emvqrcps", "pixCopiaECola")
	if qr == "" {
		qr = firstString(body, "qrCode", "qr_code")
	}
	if qr == "" {
		return entities.PixCharge{}, ErrPixCodeMissing
	}

	charge := entities.PixCharge{
		TransactionID: id,
		Status:        entities.NormalizePaymentStatus(anyToString(body["status"])),
		QRCode:        qr,
	}
	if exp := firstString(pix, "expiresAt", "expires_at", "expirationDate"); exp != "" {
		if t, ok := parseGatewayTime(exp); ok {
			charge.ExpiresAt = &t
		}
	}
	return charge, nil
}

func firstString(m map[string]any, keys ...string) string {
	if m == nil {
		return ""
	}
	for _, k := range keys {
		if s := anyToString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func anyToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

func parseGatewayTime(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
