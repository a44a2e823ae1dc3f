package dispatch

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/entities"
)

type Service struct {
	packages      PackageReader
	statusFactory HandlerFactory
}

func New(packages PackageReader, statusFactory HandlerFactory) *Service {
	return &Service{
		packages:      packages,
		statusFactory: statusFactory,
	}
}

// ProcessPackageEvent checks the event against the registry and runs the
// side effects registered for its status. Events may arrive after the package
// has moved on, so the check is against history, not the current status.
func (s *Service) ProcessPackageEvent(ctx context.Context, event entities.PackageEvent) (*entities.Package, error) {
	if event.PackageID == "" || !event.Status.IsValid() {
		return nil, ErrInvalidEvent
	}

	pkg, err := s.packages.GetByID(ctx, event.PackageID)
	if err != nil {
		return nil, fmt.Errorf("get package from registry: %w", err)
	}
	if !reached(pkg, event.Status) {
		return pkg, fmt.Errorf("%w: %s", ErrStatusMismatch, event.Status)
	}

	executeFn, err := s.statusFactory.GetHandler(event.Status)
	if err != nil {
		// statuses without side effects are skipped
		if errors.Is(err, ErrUndefinedStatus) {
			return pkg, nil
		}
		return pkg, err
	}

	if err := executeFn(ctx, *pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

func reached(pkg *entities.Package, status entities.PackageStatus) bool {
	for _, entry := range pkg.StatusHistory {
		if entry.Status == status {
			return true
		}
	}
	return false
}
