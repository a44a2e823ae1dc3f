//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sender_packages_get_test
package sender_packages_get

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
	ListForSender(ctx context.Context, actor entities.Actor, senderID string) ([]entities.Package, error)
}
