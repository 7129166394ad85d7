package routes

import (
	"pix_checkout/internal/adapter/http/handlers"
	"pix_checkout/internal/adapter/http/middleware"
	"pix_checkout/internal/app"

	"github.com/gin-gonic/gin"
)

func addMerchantRoutes(rg *gin.RouterGroup, c *app.Container) {
	merchant := handlers.NewMerchantHandler(c.Dashboard, c.Settings, c.Credential)
	checkout := handlers.NewCheckoutHandler(c.Checkout)

	authed := rg.Group("", middleware.JWTAuth(c.Config.JWTSecret))
	{
		authed.GET("/payments", merchant.ListPayments)
		authed.GET("/dashboard", merchant.Dashboard)

		authed.GET("/checkout-links", checkout.ListLinks)
		authed.POST("/checkout-links", checkout.CreateLink)

		authed.GET("/settings", merchant.GetSettings)
		authed.PUT("/settings", merchant.UpdateSettings)

		authed.GET("/api-keys", merchant.GetAPIKey)
		authed.POST("/api-keys", merchant.SaveAPIKey)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, c *app.Container) {
	merchant := handlers.NewMerchantHandler(c.Dashboard, c.Settings, c.Credential)

	admin := rg.Group("/admin", middleware.JWTAuth(c.Config.JWTSecret), middleware.RequireAdmin())
	{
		admin.GET("/dashboard", merchant.AdminDashboard)
	}
}
