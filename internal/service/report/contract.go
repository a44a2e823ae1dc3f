//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	CountUsers(ctx context.Context) (total int64, couriers int64, err error)
	CountPackagesByStatus(ctx context.Context) (map[entities.PackageStatus]int64, error)
	// Revenue is the commission collected over all settlements.
	Revenue(ctx context.Context) (int64, error)
}

type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
