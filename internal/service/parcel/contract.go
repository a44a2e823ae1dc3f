//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, pkg entities.Package) (*entities.Package, error)
	GetByID(ctx context.Context, id string) (*entities.Package, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Package, error)
	List(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error)
	// ApplyTransition persists a state change only if the stored status still equals From.
	ApplyTransition(ctx context.Context, transition entities.PackageTransition) error
}

type UserService interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
}

type PricingService interface {
	Quote(ctx context.Context, draft entities.PackageDraft) (entities.Quote, error)
	GetConfig(ctx context.Context) (*entities.PricingConfig, error)
}

type SettlementService interface {
	Settle(ctx context.Context, pkg entities.Package, commissionRate float64) (*entities.Settlement, error)
}

type NotificationService interface {
	Notify(ctx context.Context, notification entities.Notification) (*entities.Notification, error)
}

type PaymentGateway interface {
	InitiatePayment(ctx context.Context, req entities.PaymentRequest) (*entities.PaymentResult, error)
}

type EventPublisher interface {
	PublishPackageEvent(ctx context.Context, event entities.PackageEvent)
}

type ChangePublisher interface {
	Publish(signal entities.ChangeSignal)
}

type IDGenerator interface {
	NewID() string
	NewTrackingNumber() string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
