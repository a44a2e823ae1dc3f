//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=changes_get_test
package changes_get

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

type Broker interface {
	Subscribe(ctx context.Context, userID string) (<-chan entities.ChangeSignal, func())
}
