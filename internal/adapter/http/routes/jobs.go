package routes

import (
	"pix_checkout/internal/adapter/http/handlers"
	"pix_checkout/internal/adapter/http/middleware"
	"pix_checkout/internal/app"

	"github.com/gin-gonic/gin"
)

const PathJobs = "/jobs"

func addJobRoutes(rg *gin.RouterGroup, c *app.Container) {
	h := handlers.NewJobsHandler(c.Jobs)

	jobs := rg.Group(PathJobs, middleware.CronSecret(c.Config.CronSecret))
	{
		jobs.GET("/sync", h.Sync)
		jobs.POST("/sync", h.Sync)
		jobs.POST("/recovery-emails", h.RecoveryEmails)
		jobs.GET("/cron", h.Cron)
		jobs.POST("/cron", h.Cron)
	}
}
