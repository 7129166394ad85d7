package routes

import (
	"log"
	"strconv"

	_ "pix_checkout/docs"
	"pix_checkout/internal/adapter/http/middleware"
	"pix_checkout/internal/app"
	"pix_checkout/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, app.NewContainer(cfg))

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(r *gin.Engine, c *app.Container) {
	v1 := r.Group("/v1")

	// Rotas publicas
	addPingRoutes(v1)
	addWebhookRoutes(v1, c)
	addCheckoutRoutes(v1, c, middleware.NewRateLimiter(c.Config.PublicRateLimitRPS, c.Config.PublicRateLimitBurst))

	// Rotas protegidas
	addJobRoutes(v1, c)
	addMerchantRoutes(v1, c)
	addAdminRoutes(v1, c)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.CORS())
}
