//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pricing_test
package pricing

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Get(ctx context.Context) (*entities.PricingConfig, error)
	Save(ctx context.Context, cfg entities.PricingConfig) (*entities.PricingConfig, error)
}

type Cache interface {
	GetPricingConfig(ctx context.Context) (*entities.PricingConfig, error)
	SetPricingConfig(ctx context.Context, cfg entities.PricingConfig) error
	DeletePricingConfig(ctx context.Context) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
