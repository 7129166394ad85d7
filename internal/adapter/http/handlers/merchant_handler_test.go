package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pix_checkout/internal/adapter/http/handlers/mocks"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type merchantMocks struct {
	dashboard   *mocks.MockIDashboardUseCase
	settings    *mocks.MockISettingsUseCase
	credentials *mocks.MockICredentialUseCase
}

func newMerchantHandler(t *testing.T) (*MerchantHandler, merchantMocks) {
	ctrl := gomock.NewController(t)
	m := merchantMocks{
		dashboard:   mocks.NewMockIDashboardUseCase(ctrl),
		settings:    mocks.NewMockISettingsUseCase(ctrl),
		credentials: mocks.NewMockICredentialUseCase(ctrl),
	}
	return NewMerchantHandler(m.dashboard, m.settings, m.credentials), m
}

func TestMerchantHandler_Settings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	merchant := entities.Merchant{UserID: "u-1"}

	t.Run("get defaults", func(t *testing.T) {
		h, m := newMerchantHandler(t)
		r := gin.New()
		r.GET("/v1/settings", withMerchant(merchant), h.GetSettings)

		m.settings.EXPECT().Get(gomock.Any(), merchant).Return(entities.DefaultUserSettings("u-1"), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/settings", nil))
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["recovery_email_delay_minutes"] != float64(entities.DefaultRecoveryDelayMinutes) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("update missing field", func(t *testing.T) {
		h, _ := newMerchantHandler(t)
		r := gin.New()
		r.PUT("/v1/settings", withMerchant(merchant), h.UpdateSettings)

		req := httptest.NewRequest(http.MethodPut, "/v1/settings", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update out of range", func(t *testing.T) {
		h, m := newMerchantHandler(t)
		r := gin.New()
		r.PUT("/v1/settings", withMerchant(merchant), h.UpdateSettings)

		m.settings.EXPECT().Save(gomock.Any(), merchant, 61).Return(entities.UserSettings{}, usecase.ErrInvalidRecoveryDelay)

		req := httptest.NewRequest(http.MethodPut, "/v1/settings", bytes.NewBufferString(`{"recovery_email_delay_minutes":61}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		h, m := newMerchantHandler(t)
		r := gin.New()
		r.PUT("/v1/settings", withMerchant(merchant), h.UpdateSettings)

		m.settings.EXPECT().Save(gomock.Any(), merchant, 10).Return(entities.UserSettings{UserID: "u-1", RecoveryEmailDelayMinutes: 10}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/settings", bytes.NewBufferString(`{"recovery_email_delay_minutes":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMerchantHandler_APIKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	merchant := entities.Merchant{UserID: "u-1"}

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"rejected", usecase.ErrAPIKeyRejected, http.StatusBadRequest},
		{"gateway down", &entities.GatewayError{Provider: "bestfy", StatusCode: 503}, http.StatusBadGateway},
		{"storage", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newMerchantHandler(t)
			r := gin.New()
			r.POST("/v1/api-keys", withMerchant(merchant), h.SaveAPIKey)

			m.credentials.EXPECT().Save(gomock.Any(), merchant, "sk_live_1234").Return(usecase.CredentialView{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/api-keys", bytes.NewBufferString(`{"api_key":"sk_live_1234"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}

	t.Run("save", func(t *testing.T) {
		h, m := newMerchantHandler(t)
		r := gin.New()
		r.POST("/v1/api-keys", withMerchant(merchant), h.SaveAPIKey)

		m.credentials.EXPECT().Save(gomock.Any(), merchant, "sk_live_1234").Return(usecase.CredentialView{ID: "cred-1", MaskedKey: "********1234", IsActive: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/api-keys", bytes.NewBufferString(`{"api_key":"sk_live_1234"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated || bytes.Contains(w.Body.Bytes(), []byte("sk_live")) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("get missing", func(t *testing.T) {
		h, m := newMerchantHandler(t)
		r := gin.New()
		r.GET("/v1/api-keys", withMerchant(merchant), h.GetAPIKey)

		m.credentials.EXPECT().GetActive(gomock.Any(), merchant).Return(usecase.CredentialView{}, usecase.ErrCredentialMissing)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/api-keys", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMerchantHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	merchant := entities.Merchant{UserID: "u-1"}

	t.Run("stats", func(t *testing.T) {
		h, m := newMerchantHandler(t)
		r := gin.New()
		r.GET("/v1/dashboard", withMerchant(merchant), h.Dashboard)

		m.dashboard.EXPECT().MerchantStats(gomock.Any(), merchant).Return(entities.DashboardStats{TotalPayments: 3, PaidCount: 1}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["total_payments"] != float64(3) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("payments", func(t *testing.T) {
		h, m := newMerchantHandler(t)
		r := gin.New()
		r.GET("/v1/payments", withMerchant(merchant), h.ListPayments)

		m.dashboard.EXPECT().ListPayments(gomock.Any(), merchant).Return([]entities.Payment{{ID: "p1"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("admin failure", func(t *testing.T) {
		h, m := newMerchantHandler(t)
		r := gin.New()
		r.GET("/v1/admin/dashboard", h.AdminDashboard)

		m.dashboard.EXPECT().AdminStats(gomock.Any()).Return(entities.AdminStats{}, errors.New("scan failed"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
