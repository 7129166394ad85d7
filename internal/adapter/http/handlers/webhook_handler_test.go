package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pix_checkout/internal/adapter/http/handlers/mocks"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(h *WebhookHandler) *gin.Engine {
	r := gin.New()
	r.Any("/v1/webhooks/bestfy", h.Handle)
	return r
}

func TestWebhookHandler_Handle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get returns health", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Health(gomock.Any()).Return(usecase.WebhookHealth{Status: "healthy", Database: "connected", CheckedAt: time.Now()})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/webhooks/bestfy", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("X-Request-Id") == "" {
			t.Fatal("expected request id header")
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		health, _ := body["health"].(map[string]any)
		if health["database"] != "connected" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("options preflight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newWebhookRouter(NewWebhookHandler(mocks.NewMockIWebhookUseCase(ctrl)))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/v1/webhooks/bestfy", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("other methods rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newWebhookRouter(NewWebhookHandler(mocks.NewMockIWebhookUseCase(ctrl)))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/webhooks/bestfy", nil))
		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", w.Code)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newWebhookRouter(NewWebhookHandler(mocks.NewMockIWebhookUseCase(ctrl)))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/webhooks/bestfy", bytes.NewBufferString("  ")))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newWebhookRouter(NewWebhookHandler(mocks.NewMockIWebhookUseCase(ctrl)))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/webhooks/bestfy", bytes.NewBufferString("{")))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing transaction id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Process(gomock.Any(), gomock.Any()).Return(usecase.WebhookResult{}, usecase.ErrMissingTransactionID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/webhooks/bestfy", bytes.NewBufferString(`{"type":"transaction"}`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Process(gomock.Any(), gomock.Any()).Return(usecase.WebhookResult{}, errors.New("dynamo down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/webhooks/bestfy", bytes.NewBufferString(`{"data":{"id":"tx-1"}}`)))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("numeric id accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, ev entities.WebhookEvent) (usecase.WebhookResult, error) {
			if ev.TransactionID() != "12345" {
				t.Fatalf("unexpected transaction id %q", ev.TransactionID())
			}
			return usecase.WebhookResult{BestfyID: "12345", Action: usecase.WebhookActionCreated, Status: "paid"}, nil
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/webhooks/bestfy", bytes.NewBufferString(`{"type":"transaction","data":{"id":12345,"status":"paid","amount":1000}}`)))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
