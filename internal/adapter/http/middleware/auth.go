package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	merchantContextKey = "merchant"
	RoleAdmin          = "admin"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
	errAuthDisabled = pkg.NewDomainErrorSimple("AUTH_NOT_CONFIGURED", "Authentication is not configured", http.StatusServiceUnavailable)
)

// MerchantClaims is the JWT payload issued to merchants. The subject is the
// merchant user id.
type MerchantClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTAuth validates an HS256 bearer token and stores the resulting
// entities.Merchant in the gin context.
func JWTAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		if secret == "" {
			log.Printf("[auth][middleware] JWT_SECRET not configured path=%s", c.FullPath())
			c.AbortWithStatusJSON(errAuthDisabled.HTTPStatus, errAuthDisabled.ToHTTPError())
			return
		}
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims := &MerchantClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			log.Printf("[auth][middleware] token rejected err=%v", err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		userID, _ := claims.GetSubject()
		if strings.TrimSpace(userID) == "" {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}
		c.Set(merchantContextKey, entities.Merchant{
			UserID:  userID,
			Email:   claims.Email,
			IsAdmin: claims.Role == RoleAdmin,
		})
		c.Next()
	}
}

// RequireAdmin must run after JWTAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := MerchantFrom(c)
		if !ok || !m.IsAdmin {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// MerchantFrom returns the authenticated merchant set by JWTAuth.
func MerchantFrom(c *gin.Context) (entities.Merchant, bool) {
	v, ok := c.Get(merchantContextKey)
	if !ok {
		return entities.Merchant{}, false
	}
	m, ok := v.(entities.Merchant)
	return m, ok && m.UserID != ""
}

// SignMerchantToken issues a token accepted by JWTAuth.
func SignMerchantToken(secret string, m entities.Merchant, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	role := ""
	if m.IsAdmin {
		role = RoleAdmin
	}
	claims := MerchantClaims{
		Email: m.Email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   m.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(header[len(prefix):])
	return tok, tok != ""
}
