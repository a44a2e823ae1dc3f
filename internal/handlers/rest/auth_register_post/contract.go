//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_register_post_test
package auth_register_post

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
	Register(ctx context.Context, reg entities.Registration) (*entities.User, error)
}
