package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pix_checkout/internal/app"
	"pix_checkout/internal/config"

	"github.com/gin-gonic/gin"
)

func newTestEngine(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	getRoutes(r, &app.Container{Config: cfg})
	return r
}

func TestRoutes_Guards(t *testing.T) {
	r := newTestEngine(config.Config{JWTSecret: "s3cret", CronSecret: "cron-token", PublicRateLimitRPS: 0})

	cases := []struct {
		name   string
		method string
		path   string
		header string
		code   int
	}{
		{"ping", http.MethodGet, "/v1/ping", "", http.StatusOK},
		{"jobs without secret", http.MethodPost, "/v1/jobs/sync", "", http.StatusUnauthorized},
		{"jobs wrong secret", http.MethodPost, "/v1/jobs/cron", "Bearer nope", http.StatusUnauthorized},
		{"merchant without token", http.MethodGet, "/v1/payments", "", http.StatusUnauthorized},
		{"admin without token", http.MethodGet, "/v1/admin/dashboard", "", http.StatusUnauthorized},
		{"webhook delete", http.MethodDelete, "/v1/webhooks/bestfy", "", http.StatusMethodNotAllowed},
		{"webhook head", http.MethodHead, "/v1/webhooks/bestfy", "", http.StatusMethodNotAllowed},
		{"webhook trace", http.MethodTrace, "/v1/webhooks/bestfy", "", http.StatusMethodNotAllowed},
		{"unknown", http.MethodGet, "/v1/nope", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}
