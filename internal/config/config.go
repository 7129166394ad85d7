package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	GatewayBestfy      = "bestfy"
	GatewayMercadoPago = "mercadopago"
)

// Config is the process configuration, read from the environment (and .env
// through godotenv autoload in the entrypoints).
type Config struct {
	Port          int
	PublicBaseURL string

	AWSRegion            string
	DynamoDBEndpoint     string
	PaymentsTable        string
	CheckoutLinksTable   string
	APIKeysTable         string
	UserSettingsTable    string
	CompanyMappingsTable string

	PaymentGateway         string
	PaymentGatewayMock     bool
	BestfyAPIURL           string
	BestfyAlternateAPIURL  string
	MercadoPagoAccessToken string

	SendGridAPIKey   string
	EmailFromAddress string
	EmailFromName    string
	EmailMock        bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret  string
	CronSecret string

	SyncRequestInterval        time.Duration
	CheckoutExpiration         time.Duration
	RecoveryDiscountPercentage int
	JobLockTTL                 time.Duration

	PublicRateLimitRPS   float64
	PublicRateLimitBurst int
}

// Load builds a Config from the environment.
func Load() Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return Config{
		Port:          v.GetInt("PORT"),
		PublicBaseURL: strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),

		AWSRegion:            v.GetString("AWS_REGION"),
		DynamoDBEndpoint:     v.GetString("DYNAMODB_ENDPOINT"),
		PaymentsTable:        v.GetString("PAYMENTS_TABLE"),
		CheckoutLinksTable:   v.GetString("CHECKOUT_LINKS_TABLE"),
		APIKeysTable:         v.GetString("API_KEYS_TABLE"),
		UserSettingsTable:    v.GetString("USER_SETTINGS_TABLE"),
		CompanyMappingsTable: v.GetString("COMPANY_MAPPINGS_TABLE"),

		PaymentGateway:         strings.ToLower(strings.TrimSpace(v.GetString("PAYMENT_GATEWAY"))),
		PaymentGatewayMock:     isTruthy(v.GetString("PAYMENT_GATEWAY_MOCK")) || isTruthy(v.GetString("MERCADOPAGO_MOCK")),
		BestfyAPIURL:           strings.TrimRight(v.GetString("BESTFY_API_URL"), "/"),
		BestfyAlternateAPIURL:  strings.TrimRight(v.GetString("BESTFY_ALTERNATE_API_URL"), "/"),
		MercadoPagoAccessToken: v.GetString("MERCADOPAGO_ACCESS_TOKEN"),

		SendGridAPIKey:   v.GetString("SENDGRID_API_KEY"),
		EmailFromAddress: v.GetString("EMAIL_FROM_ADDRESS"),
		EmailFromName:    v.GetString("EMAIL_FROM_NAME"),
		EmailMock:        isTruthy(v.GetString("EMAIL_MOCK")),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		JWTSecret:  v.GetString("JWT_SECRET"),
		CronSecret: v.GetString("CRON_SECRET"),

		SyncRequestInterval:        v.GetDuration("SYNC_REQUEST_INTERVAL"),
		CheckoutExpiration:         v.GetDuration("CHECKOUT_EXPIRATION"),
		RecoveryDiscountPercentage: v.GetInt("RECOVERY_DISCOUNT_PERCENTAGE"),
		JobLockTTL:                 v.GetDuration("JOB_LOCK_TTL"),

		PublicRateLimitRPS:   v.GetFloat64("PUBLIC_RATE_LIMIT_RPS"),
		PublicRateLimitBurst: v.GetInt("PUBLIC_RATE_LIMIT_BURST"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("PAYMENTS_TABLE", "payments")
	v.SetDefault("CHECKOUT_LINKS_TABLE", "checkout_links")
	v.SetDefault("API_KEYS_TABLE", "api_keys")
	v.SetDefault("USER_SETTINGS_TABLE", "user_settings")
	v.SetDefault("COMPANY_MAPPINGS_TABLE", "merchant_company_mappings")

	v.SetDefault("PAYMENT_GATEWAY", GatewayBestfy)
	v.SetDefault("BESTFY_API_URL", "https://api.bestfybr.com.br")
	v.SetDefault("BESTFY_ALTERNATE_API_URL", "https://api.bestfy.com.br")

	v.SetDefault("EMAIL_FROM_ADDRESS", "noreply@example.com")
	v.SetDefault("EMAIL_FROM_NAME", "Bestfy Pay")

	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SYNC_REQUEST_INTERVAL", time.Second)
	v.SetDefault("CHECKOUT_EXPIRATION", 24*time.Hour)
	v.SetDefault("RECOVERY_DISCOUNT_PERCENTAGE", 10)
	v.SetDefault("JOB_LOCK_TTL", 5*time.Minute)

	v.SetDefault("PUBLIC_RATE_LIMIT_RPS", 5)
	v.SetDefault("PUBLIC_RATE_LIMIT_BURST", 20)
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
