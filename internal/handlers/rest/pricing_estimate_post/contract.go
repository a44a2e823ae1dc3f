//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pricing_estimate_post_test
package pricing_estimate_post

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
	Quote(ctx context.Context, draft entities.PackageDraft) (entities.Quote, error)
}
