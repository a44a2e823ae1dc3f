//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_status_changed_test
package package_status_changed

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
	ProcessPackageEvent(ctx context.Context, event entities.PackageEvent) (*entities.Package, error)
}
