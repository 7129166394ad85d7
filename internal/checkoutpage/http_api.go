package checkoutpage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	response "pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/usecase"
	"pix_checkout/pkg"
)

// APIError is a non-2xx answer from the checkout service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("checkout api status=%d", e.StatusCode)
}

// HTTPAPI talks to the service's public /v1/checkout endpoints.
type HTTPAPI struct {
	baseURL string
	client  *http.Client
}

var _ API = (*HTTPAPI)(nil)

func NewHTTPAPI(baseURL string, client *http.Client) *HTTPAPI {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPAPI{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (a *HTTPAPI) GetCheckout(ctx context.Context, slug string) (response.CheckoutResponse, error) {
	var out response.CheckoutResponse
	err := a.do(ctx, http.MethodGet, "/v1/checkout/"+url.PathEscape(slug), nil, &out)
	return out, err
}

func (a *HTTPAPI) GeneratePix(ctx context.Context, checkoutID string) (response.CheckoutResponse, error) {
	var out response.GeneratePixResponse
	err := a.do(ctx, http.MethodPost, "/v1/checkout/generate-pix", map[string]string{"checkout_id": checkoutID}, &out)
	return out.Checkout, err
}

func (a *HTTPAPI) GetStatus(ctx context.Context, slug string) (usecase.CheckoutStatus, error) {
	var out usecase.CheckoutStatus
	err := a.do(ctx, http.MethodGet, "/v1/checkout/"+url.PathEscape(slug)+"/status", nil, &out)
	return out, err
}

func (a *HTTPAPI) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("checkout api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusNotFound && method == http.MethodGet {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var httpErr pkg.HTTPError
		_ = json.Unmarshal(raw, &httpErr)
		return &APIError{StatusCode: resp.StatusCode, Code: httpErr.Code, Message: httpErr.Message}
	}
	return json.Unmarshal(raw, out)
}
