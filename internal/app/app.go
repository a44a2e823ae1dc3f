package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"marketplace/internal/cache"
	"marketplace/internal/entities"
	"marketplace/internal/gateway/events"
	"marketplace/internal/gateway/payment"
	"marketplace/internal/gateway/sms"
	"marketplace/internal/handlers/rest/admin_overview_get"
	"marketplace/internal/handlers/rest/auth_login_post"
	"marketplace/internal/handlers/rest/auth_register_post"
	"marketplace/internal/handlers/rest/courier_availability_put"
	"marketplace/internal/handlers/rest/courier_packages_get"
	"marketplace/internal/handlers/rest/courier_recharge_post"
	"marketplace/internal/handlers/rest/marketplace_get"
	"marketplace/internal/handlers/rest/notification_read_post"
	"marketplace/internal/handlers/rest/notifications_get"
	"marketplace/internal/handlers/rest/package_get"
	"marketplace/internal/handlers/rest/package_post"
	"marketplace/internal/handlers/rest/package_status_post"
	"marketplace/internal/handlers/rest/pricing_estimate_post"
	"marketplace/internal/handlers/rest/pricing_get"
	"marketplace/internal/handlers/rest/pricing_put"
	"marketplace/internal/handlers/rest/sender_packages_get"
	"marketplace/internal/handlers/rest/tracking_get"
	"marketplace/internal/handlers/rest/user_blocked_put"
	"marketplace/internal/handlers/rest/users_get"
	"marketplace/internal/handlers/tasks/client_limiter_sweep"
	"marketplace/internal/handlers/tasks/packages_gauge"
	"marketplace/internal/pkg/auth"
	"marketplace/internal/pkg/changes"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/package_event"
	"marketplace/internal/pkg/identity"
	"marketplace/internal/pkg/kafka"
	"marketplace/internal/pkg/middlewares/rate_limiter"
	notificationRepo "marketplace/internal/repository/notification"
	parcelRepo "marketplace/internal/repository/parcel"
	pricingRepo "marketplace/internal/repository/pricing"
	reportRepo "marketplace/internal/repository/report"
	settlementRepo "marketplace/internal/repository/settlement"
	userRepo "marketplace/internal/repository/user"
	dispatchService "marketplace/internal/service/dispatch"
	notificationService "marketplace/internal/service/notification"
	parcelService "marketplace/internal/service/parcel"
	pricingService "marketplace/internal/service/pricing"
	reportService "marketplace/internal/service/report"
	settlementService "marketplace/internal/service/settlement"
	userService "marketplace/internal/service/user"
	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"
)

const (
	changeBufferSize    = 16
	loginLimiterIdleTTL = 10 * time.Minute
	loginLimiterSweep   = time.Minute
)

type Application struct {
	ServiceUser         ServiceUser
	ServicePackage      ServicePackage
	ServicePricing      ServicePricing
	ServiceSettlement   ServiceSettlement
	ServiceNotification ServiceNotification
	ServiceReport       ServiceReport

	Tokens            *auth.JWTManager
	Changes           *changes.Broker
	LoginLimiter      *rate_limiter.ClientLimiter
	BackgroundWorkers *background.Worker
}

type ServiceUser interface {
	auth_register_post.Service
	auth_login_post.Service
	users_get.Service
	user_blocked_put.Service
	courier_availability_put.Service
	auth.UserLookup
	EnsureAdmin(ctx context.Context, phone, password string) (*entities.User, error)
}

type ServicePackage interface {
	package_post.Service
	package_get.Service
	tracking_get.Service
	marketplace_get.Service
	sender_packages_get.Service
	courier_packages_get.Service
	package_status_post.Service
}

type ServicePricing interface {
	pricing_get.Service
	pricing_put.Service
	pricing_estimate_post.Service
}

type ServiceSettlement interface {
	courier_recharge_post.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_post.Service
}

type ServiceReport interface {
	admin_overview_get.Service
}

type KafkaWorkerApp struct {
	DispatchService *dispatchService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideIDGenerator() *identity.Generator {
	return identity.New()
}

func provideChangeBroker() *changes.Broker {
	return changes.NewBroker(changeBufferSize)
}

func providePasswordHasher() *auth.BcryptHasher {
	return auth.NewBcryptHasher(0)
}

func provideTokenManager(cfg *config.Config) *auth.JWTManager {
	return auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer)
}

func providePricingCache(client *goredis.Client, cfg *config.Config) *cache.PricingStore {
	return cache.NewPricingStore(client, cfg.Redis.PricingTTL)
}

func providePaymentGateway(cfg *config.Config) *payment.Gateway {
	return payment.New(payment.NewSimulator(payment.SimulatorConfig{
		LatencyMin:  cfg.Payment.LatencyMin,
		LatencyMax:  cfg.Payment.LatencyMax,
		SuccessRate: cfg.Payment.SuccessRate,
	}))
}

func provideEventPublisher(log logger.Logger, producer *kafka.Producer) *events.Publisher {
	return events.NewPublisher(log, producer)
}

func provideLoginLimiter(cfg *config.Config) *rate_limiter.ClientLimiter {
	return rate_limiter.NewClientLimiter(cfg.Auth.LoginRate, cfg.Auth.LoginBurst, loginLimiterIdleTTL)
}

func provideSMSNotifier(log logger.Logger) *sms.Notifier {
	return sms.NewNotifier(log)
}

func provideUserRepository(q *querier.Querier) *userRepo.Repository {
	return userRepo.New(q)
}

func provideParcelRepository(q *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(q)
}

func providePricingRepository(q *querier.Querier) *pricingRepo.Repository {
	return pricingRepo.New(q)
}

func provideSettlementRepository(q *querier.Querier) *settlementRepo.Repository {
	return settlementRepo.New(q)
}

func provideNotificationRepository(q *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(q)
}

func provideReportRepository(q *querier.Querier) *reportRepo.Repository {
	return reportRepo.New(q)
}

func provideUserService(
	repository *userRepo.Repository,
	hasher *auth.BcryptHasher,
	tokens *auth.JWTManager,
	ids *identity.Generator,
	txManager *tx.Manager,
) *userService.Service {
	return userService.New(repository, hasher, tokens, ids, txManager)
}

func providePricingService(
	repository *pricingRepo.Repository,
	store *cache.PricingStore,
	txManager *tx.Manager,
) *pricingService.Service {
	return pricingService.New(repository, store, txManager)
}

func provideNotificationService(
	repository *notificationRepo.Repository,
	broker *changes.Broker,
	ids *identity.Generator,
) *notificationService.Service {
	return notificationService.New(repository, broker, ids)
}

func provideSettlementService(
	repository *settlementRepo.Repository,
	users *userService.Service,
	notifications *notificationService.Service,
	payments *payment.Gateway,
	broker *changes.Broker,
	txManager *tx.Manager,
) *settlementService.Service {
	return settlementService.New(repository, repository, users, notifications, payments, broker, txManager)
}

func provideParcelService(
	cfg *config.Config,
	repository *parcelRepo.Repository,
	users *userService.Service,
	pricing *pricingService.Service,
	settlement *settlementService.Service,
	notifications *notificationService.Service,
	payments *payment.Gateway,
	publisher *events.Publisher,
	broker *changes.Broker,
	ids *identity.Generator,
	txManager *tx.Manager,
) *parcelService.Service {
	return parcelService.New(
		parcelService.Config{MinDeposit: cfg.Marketplace.MinDeposit},
		repository,
		users,
		pricing,
		settlement,
		notifications,
		payments,
		publisher,
		broker,
		ids,
		txManager,
	)
}

func provideReportService(repository *reportRepo.Repository, txManager *tx.Manager) *reportService.Service {
	return reportService.New(repository, txManager)
}

func provideStatusHandlerFactory(notifier *sms.Notifier, cfg *config.Config) *package_event.StatusHandlerFactory {
	return package_event.NewStatusHandlerFactory(notifier, cfg.Kafka.Handlers.PackageStatusChanged.TrackingBaseURL)
}

func provideDispatchService(
	repository *parcelRepo.Repository,
	factory *package_event.StatusHandlerFactory,
) *dispatchService.Service {
	return dispatchService.New(repository, factory)
}

func providePackagesGaugeTask(
	log logger.Logger,
	reports *reportService.Service,
	cfg *config.Config,
) *packages_gauge.PackagesGauge {
	return packages_gauge.NewPackagesGauge(log, reports, cfg.Tasks.PackagesGaugeInterval)
}

func provideClientLimiterSweepTask(
	log logger.Logger,
	limiter *rate_limiter.ClientLimiter,
) *client_limiter_sweep.ClientLimiterSweep {
	return client_limiter_sweep.NewClientLimiterSweep(log, limiter, loginLimiterSweep)
}

func provideTaskList(
	packagesGauge *packages_gauge.PackagesGauge,
	limiterSweep *client_limiter_sweep.ClientLimiterSweep,
) []background.Task {
	return []background.Task{
		packagesGauge,
		limiterSweep,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
