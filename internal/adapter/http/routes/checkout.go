package routes

import (
	"pix_checkout/internal/adapter/http/handlers"
	"pix_checkout/internal/adapter/http/middleware"
	"pix_checkout/internal/app"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathThankYou = "/obrigado"
)

func addCheckoutRoutes(rg *gin.RouterGroup, c *app.Container, limiter *middleware.RateLimiter) {
	h := handlers.NewCheckoutHandler(c.Checkout)

	checkout := rg.Group(PathCheckout, limiter.Middleware())
	{
		checkout.POST("/generate-pix", h.GeneratePix)
		checkout.GET("/:slug", h.GetBySlug)
		checkout.GET("/:slug/status", h.GetStatus)
		checkout.GET("/:slug/qrcode.png", h.QRCode)
	}

	rg.GET(PathThankYou+"/:thank_you_slug", limiter.Middleware(), h.ThankYou)
}
