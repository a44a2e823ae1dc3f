//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_recharge_post_test
package courier_recharge_post

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
	Recharge(ctx context.Context, actor entities.Actor, recharge entities.Recharge) (*entities.Balances, error)
}
