package checkoutpage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/checkout/abc":
			_, _ = w.Write([]byte(`{"id":"chk-1","checkout_slug":"abc","payment_status":"waiting_payment","expires_at":"2030-01-01T00:00:00Z"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/v1/checkout/abc/status":
			_, _ = w.Write([]byte(`{"checkout_id":"chk-1","payment_status":"paid","thank_you_slug":"ty-abc123","expires_at":"2030-01-01T00:00:00Z"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/v1/checkout/generate-pix":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["checkout_id"] != "chk-1" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"code":"INVALID_REQUEST","message":"checkout_id is required"}`))
				return
			}
			w.WriteHeader(http.StatusGone)
			_, _ = w.Write([]byte(`{"code":"CHECKOUT_EXPIRED","message":"Este link de checkout expirou"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":"CHECKOUT_NOT_FOUND","message":"Checkout not found"}`))
		}
	}))
	defer srv.Close()

	api := NewHTTPAPI(srv.URL+"/", srv.Client())
	ctx := context.Background()

	co, err := api.GetCheckout(ctx, "abc")
	if err != nil || co.ID != "chk-1" || co.ExpiresAt.IsZero() {
		t.Fatalf("get checkout: %+v %v", co, err)
	}

	st, err := api.GetStatus(ctx, "abc")
	if err != nil || st.ThankYouSlug != "ty-abc123" || st.PaymentStatus != "paid" {
		t.Fatalf("get status: %+v %v", st, err)
	}

	if _, err := api.GetCheckout(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = api.GeneratePix(ctx, "chk-1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusGone || apiErr.Error() != "Este link de checkout expirou" {
		t.Fatalf("unexpected generate error: %v", err)
	}
}
