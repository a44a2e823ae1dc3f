package report

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Service struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
	}
}

// Overview reads all figures from one snapshot so they add up.
func (s *Service) Overview(ctx context.Context, actor entities.Actor) (*entities.Overview, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	overview := entities.Overview{}
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		overview.TotalUsers, overview.TotalCouriers, err = s.repository.CountUsers(ctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}

		overview.PackagesByStatus, err = s.packagesByStatus(ctx)
		if err != nil {
			return err
		}

		overview.Revenue, err = s.repository.Revenue(ctx)
		if err != nil {
			return fmt.Errorf("revenue: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, status := range entities.ActiveStatuses {
		overview.ActiveDeliveries += overview.PackagesByStatus[status]
	}
	return &overview, nil
}

// PackagesByStatus always has an entry for every status, zero included.
func (s *Service) PackagesByStatus(ctx context.Context) (map[entities.PackageStatus]int64, error) {
	return s.packagesByStatus(ctx)
}

func (s *Service) packagesByStatus(ctx context.Context) (map[entities.PackageStatus]int64, error) {
	counts, err := s.repository.CountPackagesByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count packages: %w", err)
	}

	out := make(map[entities.PackageStatus]int64, len(entities.AllPackageStatuses()))
	for _, status := range entities.AllPackageStatuses() {
		out[status] = counts[status]
	}
	return out, nil
}
