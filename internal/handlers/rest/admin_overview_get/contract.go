//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_overview_get_test
package admin_overview_get

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
	Overview(ctx context.Context, actor entities.Actor) (*entities.Overview, error)
}
