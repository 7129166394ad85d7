package routes

import (
	"pix_checkout/internal/adapter/http/handlers"
	"pix_checkout/internal/app"

	"github.com/gin-gonic/gin"
)

const PathWebhooks = "/webhooks"

func addWebhookRoutes(rg *gin.RouterGroup, c *app.Container) {
	h := handlers.NewWebhookHandler(c.Webhook)

	webhooks := rg.Group(PathWebhooks)
	{
		// The handler owns method dispatch, including 405s.
		webhooks.Any("/bestfy", h.Handle)
	}
}
