package handlers

import (
	"errors"
	"log"
	"net/http"

	request "pix_checkout/internal/adapter/http/dto/request"
	"pix_checkout/internal/adapter/http/middleware"
	"pix_checkout/internal/usecase"
	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "recovery_email_delay_minutes is required", http.StatusBadRequest)
	errInvalidAPIKeyPayload   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "api_key is required", http.StatusBadRequest)
)

// MerchantHandler serves the authenticated merchant area: payments,
// dashboard, settings and gateway keys.
type MerchantHandler struct {
	dashboard   usecase.IDashboardUseCase
	settings    usecase.ISettingsUseCase
	credentials usecase.ICredentialUseCase
}

func NewMerchantHandler(dashboard usecase.IDashboardUseCase, settings usecase.ISettingsUseCase, credentials usecase.ICredentialUseCase) *MerchantHandler {
	return &MerchantHandler{dashboard: dashboard, settings: settings, credentials: credentials}
}

func (h *MerchantHandler) ListPayments(c *gin.Context) {
	merchant, ok := middleware.MerchantFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}
	payments, err := h.dashboard.ListPayments(c.Request.Context(), merchant)
	if err != nil {
		appErr := mapMerchantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments, "count": len(payments)})
}

func (h *MerchantHandler) Dashboard(c *gin.Context) {
	merchant, ok := middleware.MerchantFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}
	stats, err := h.dashboard.MerchantStats(c.Request.Context(), merchant)
	if err != nil {
		appErr := mapMerchantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *MerchantHandler) AdminDashboard(c *gin.Context) {
	stats, err := h.dashboard.AdminStats(c.Request.Context())
	if err != nil {
		appErr := mapMerchantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *MerchantHandler) GetSettings(c *gin.Context) {
	merchant, ok := middleware.MerchantFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}
	s, err := h.settings.Get(c.Request.Context(), merchant)
	if err != nil {
		appErr := mapMerchantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *MerchantHandler) UpdateSettings(c *gin.Context) {
	merchant, ok := middleware.MerchantFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}
	var payload request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.RecoveryEmailDelayMinutes == nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	s, err := h.settings.Save(c.Request.Context(), merchant, *payload.RecoveryEmailDelayMinutes)
	if err != nil {
		log.Printf("[settings][handler] save failed user_id=%s err=%v", merchant.UserID, err)
		appErr := mapMerchantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *MerchantHandler) GetAPIKey(c *gin.Context) {
	merchant, ok := middleware.MerchantFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}
	view, err := h.credentials.GetActive(c.Request.Context(), merchant)
	if err != nil {
		appErr := mapMerchantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *MerchantHandler) SaveAPIKey(c *gin.Context) {
	merchant, ok := middleware.MerchantFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}
	var payload request.SaveAPIKeyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAPIKeyPayload.HTTPStatus, errInvalidAPIKeyPayload.ToHTTPError())
		return
	}

	view, err := h.credentials.Save(c.Request.Context(), merchant, payload.APIKey)
	if err != nil {
		log.Printf("[credential][handler] save failed user_id=%s err=%v", merchant.UserID, err)
		appErr := mapMerchantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, view)
}

func mapMerchantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecoveryDelay):
		return pkg.NewDomainErrorSimple("INVALID_RECOVERY_DELAY", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAPIKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "api_key is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAPIKeyRejected):
		return pkg.NewDomainErrorSimple("API_KEY_REJECTED", "The payment gateway rejected this api key", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCredentialMissing):
		return pkg.NewDomainErrorSimple("API_KEY_NOT_FOUND", "No active api key", http.StatusNotFound)
	}
	if appErr, ok := gatewayAppError(err); ok {
		return appErr
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
