//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pricing_put_test
package pricing_put

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateConfig(ctx context.Context, modify entities.PricingConfigModify) (*entities.PricingConfig, error)
}
