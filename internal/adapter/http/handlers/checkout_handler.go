package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "pix_checkout/internal/adapter/http/dto/request"
	response "pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/adapter/http/middleware"
	"pix_checkout/internal/usecase"
	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
)

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "checkout_id is required", http.StatusBadRequest)
	errInvalidLinkPayload     = pkg.NewDomainErrorSimple("INVALID_REQUEST", "payment_id is required", http.StatusBadRequest)
	errUnauthenticated        = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// CheckoutHandler serves the public checkout pages and the merchant's
// checkout link management.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

func (h *CheckoutHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	l, err := h.usecase.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		log.Printf("[checkout][handler] get failed slug=%s err=%v", slug, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutLink(l))
}

// GetStatus is polled by the checkout page; it does not count as an access.
func (h *CheckoutHandler) GetStatus(c *gin.Context) {
	st, err := h.usecase.GetStatus(c.Request.Context(), c.Param("slug"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *CheckoutHandler) QRCode(c *gin.Context) {
	size := defaultQRSize
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = min(v, maxQRSize)
	}
	png, err := h.usecase.QRCodePNG(c.Request.Context(), c.Param("slug"), size)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// GeneratePix creates the PIX charge for a checkout.
//
// @Summary      Generate PIX for a checkout
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      request.GeneratePixRequest  true  "checkout id"
// @Success      200   {object}  response.GeneratePixResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      410   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /checkout/generate-pix [post]
func (h *CheckoutHandler) GeneratePix(c *gin.Context) {
	var payload request.GeneratePixRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ResolveCheckoutID() == "" {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	l, err := h.usecase.GeneratePix(c.Request.Context(), payload.ResolveCheckoutID())
	if err != nil {
		log.Printf("[checkout][handler] generate-pix failed checkout_id=%s err=%v", payload.CheckoutID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.GeneratePixResponse{Success: true, Checkout: response.FromCheckoutLink(l)})
}

func (h *CheckoutHandler) ThankYou(c *gin.Context) {
	page, err := h.usecase.AccessThankYou(c.Request.Context(), c.Param("thank_you_slug"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromThankYouPage(page))
}

func (h *CheckoutHandler) CreateLink(c *gin.Context) {
	merchant, ok := middleware.MerchantFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}
	var payload request.CreateCheckoutLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLinkPayload.HTTPStatus, errInvalidLinkPayload.ToHTTPError())
		return
	}

	l, err := h.usecase.CreateLink(c.Request.Context(), merchant, payload.PaymentID, payload.DiscountPercentage)
	if err != nil {
		log.Printf("[checkout][handler] create link failed user_id=%s payment_id=%s err=%v", merchant.UserID, payload.PaymentID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *CheckoutHandler) ListLinks(c *gin.Context) {
	merchant, ok := middleware.MerchantFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}
	links, err := h.usecase.ListByMerchant(c.Request.Context(), merchant)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkout_links": links, "count": len(links)})
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutID), errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCredentialNotConfigured):
		return pkg.NewDomainErrorSimple("CREDENTIAL_NOT_CONFIGURED", "Merchant has no active gateway api key", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_FOUND", "Checkout not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotOwned):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Payment does not belong to this merchant", http.StatusForbidden)
	case errors.Is(err, usecase.ErrThankYouNotFound):
		return pkg.NewDomainErrorSimple("THANK_YOU_NOT_FOUND", "Page not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPixNotGenerated):
		return pkg.NewDomainErrorSimple("PIX_NOT_GENERATED", "PIX has not been generated for this checkout", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutExpired):
		return pkg.NewDomainErrorSimple("CHECKOUT_EXPIRED", "Este link de checkout expirou", http.StatusGone)
	case errors.Is(err, usecase.ErrCheckoutAlreadyPaid):
		return pkg.NewDomainErrorSimple("CHECKOUT_ALREADY_PAID", "Checkout already paid", http.StatusConflict)
	}
	if appErr, ok := gatewayAppError(err); ok {
		return appErr
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
