//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_blocked_put_test
package user_blocked_put

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
	SetBlocked(ctx context.Context, actor entities.Actor, id string, blocked bool) (*entities.User, error)
}
