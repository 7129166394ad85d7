package app

import (
	"log"

	"pix_checkout/internal/adapter/persistence/repository"
	"pix_checkout/internal/config"
	"pix_checkout/internal/infrastructure/cache"
	"pix_checkout/internal/infrastructure/database"
	"pix_checkout/internal/infrastructure/email"
	"pix_checkout/internal/infrastructure/payments"
	"pix_checkout/internal/infrastructure/qrcode"
	"pix_checkout/internal/usecase"
)

// Container holds the use cases shared by the HTTP server and the cron CLI.
type Container struct {
	Config config.Config

	Webhook    *usecase.WebhookUseCase
	Checkout   *usecase.CheckoutUseCase
	Settings   *usecase.SettingsUseCase
	Credential *usecase.CredentialUseCase
	Dashboard  *usecase.DashboardUseCase
	Jobs       *usecase.JobsUseCase
}

func NewContainer(cfg config.Config) *Container {
	ddb := database.ConnectDynamoDB(cfg)

	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.PaymentsTable)
	linkRepo := repository.NewCheckoutLinkDynamoRepository(ddb, cfg.CheckoutLinksTable)
	credentialRepo := repository.NewCredentialDynamoRepository(ddb, cfg.APIKeysTable)
	mappingRepo := repository.NewCompanyMappingDynamoRepository(ddb, cfg.CompanyMappingsTable)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb, cfg.UserSettingsTable)

	gateway := payments.NewPixGateway(cfg)
	service := payments.CredentialService(cfg)
	mailer := email.NewMailer(cfg.SendGridAPIKey, cfg.EmailFromAddress, cfg.EmailFromName, cfg.EmailMock)
	locker := cache.NewRedisJobLocker(cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB))
	if cfg.RedisAddr == "" {
		log.Printf("[app][container] REDIS_ADDR not set, jobs run without a distributed lock")
	}

	factory := usecase.NewCheckoutLinkFactory(cfg.RecoveryDiscountPercentage, cfg.CheckoutExpiration)
	owners := usecase.NewOwnerResolver(mappingRepo, credentialRepo, paymentRepo)

	sync := usecase.NewSyncUseCase(credentialRepo, paymentRepo, linkRepo, gateway, service, cfg.SyncRequestInterval, factory)
	recovery := usecase.NewRecoveryEmailUseCase(paymentRepo, linkRepo, settingsRepo, mailer, cfg.PublicBaseURL)

	return &Container{
		Config:     cfg,
		Webhook:    usecase.NewWebhookUseCase(paymentRepo, linkRepo, owners, database.TablePinger{Client: ddb, Table: cfg.PaymentsTable}, factory),
		Checkout:   usecase.NewCheckoutUseCase(linkRepo, paymentRepo, credentialRepo, gateway, service, factory, qrcode.PNG),
		Settings:   usecase.NewSettingsUseCase(settingsRepo),
		Credential: usecase.NewCredentialUseCase(credentialRepo, mappingRepo, gateway, service),
		Dashboard:  usecase.NewDashboardUseCase(paymentRepo, linkRepo),
		Jobs:       usecase.NewJobsUseCase(sync, recovery, locker, cfg.JobLockTTL),
	}
}
