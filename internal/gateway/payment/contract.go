//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"marketplace/internal/entities"
)

type processor interface {
	Charge(ctx context.Context, req entities.PaymentRequest) (*entities.PaymentResult, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
