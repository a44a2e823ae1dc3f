//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/kafka"
	notificationService "marketplace/internal/service/notification"
	parcelService "marketplace/internal/service/parcel"
	pricingService "marketplace/internal/service/pricing"
	reportService "marketplace/internal/service/report"
	settlementService "marketplace/internal/service/settlement"
	userService "marketplace/internal/service/user"
	"marketplace/pkg/logger"
)

// InitializeApplication for the HTTP service (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideIDGenerator,
		provideChangeBroker,
		providePasswordHasher,
		provideTokenManager,
		providePricingCache,
		providePaymentGateway,
		provideEventPublisher,
		provideLoginLimiter,

		provideUserRepository,
		provideParcelRepository,
		providePricingRepository,
		provideSettlementRepository,
		provideNotificationRepository,
		provideReportRepository,

		provideUserService,
		providePricingService,
		provideNotificationService,
		provideSettlementService,
		provideParcelService,
		provideReportService,

		providePackagesGaugeTask,
		provideClientLimiterSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceUser), new(*userService.Service)),
		wire.Bind(new(ServicePackage), new(*parcelService.Service)),
		wire.Bind(new(ServicePricing), new(*pricingService.Service)),
		wire.Bind(new(ServiceSettlement), new(*settlementService.Service)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Service)),
		wire.Bind(new(ServiceReport), new(*reportService.Service)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp for the Kafka worker (cmd/worker-package-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideParcelRepository,
		provideSMSNotifier,
		provideStatusHandlerFactory,
		provideDispatchService,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
