//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type TokenValidator interface {
	Validate(token string) (entities.Actor, error)
}

type UserLookup interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
