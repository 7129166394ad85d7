package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"

	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCronSecret = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid cron secret", http.StatusUnauthorized)

// CronSecret protects job endpoints with a shared bearer secret. An empty
// secret leaves the endpoints open (local development).
func CronSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		tok, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok || subtle.ConstantTimeCompare([]byte(tok), []byte(secret)) != 1 {
			log.Printf("[jobs][middleware] rejected job call path=%s ip=%s", c.FullPath(), c.ClientIP())
			c.AbortWithStatusJSON(errInvalidCronSecret.HTTPStatus, errInvalidCronSecret.ToHTTPError())
			return
		}
		c.Next()
	}
}
