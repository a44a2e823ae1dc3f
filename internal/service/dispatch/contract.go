//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"marketplace/internal/entities"
)

type PackageReader interface {
	GetByID(ctx context.Context, id string) (*entities.Package, error)
}

type (
	ExecuteFn      func(ctx context.Context, pkg entities.Package) error
	HandlerFactory interface {
		GetHandler(status entities.PackageStatus) (ExecuteFn, error)
	}
)

type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}
