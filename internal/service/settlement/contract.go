//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_test
package settlement

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	// Record fails with ErrAlreadySettled if the package was settled before.
	Record(ctx context.Context, settlement entities.Settlement) (*entities.Settlement, error)
}

type BalanceRepository interface {
	DebitWallet(ctx context.Context, courierID string, amount int64) (*entities.Balances, error)
	CreditWallet(ctx context.Context, courierID string, amount int64) (*entities.Balances, error)
	CreditEarnings(ctx context.Context, courierID string, amount int64) (*entities.Balances, error)
}

type UserService interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
}

type NotificationService interface {
	Notify(ctx context.Context, notification entities.Notification) (*entities.Notification, error)
}

type PaymentGateway interface {
	InitiatePayment(ctx context.Context, req entities.PaymentRequest) (*entities.PaymentResult, error)
}

type ChangePublisher interface {
	Publish(signal entities.ChangeSignal)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
