package pricing

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/entities"
)

type Service struct {
	repository Repository
	cache      Cache
	txManager  TxManager
}

func New(repository Repository, cache Cache, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		cache:      cache,
		txManager:  txManager,
	}
}

// GetConfig reads the tariff through the cache. Cache failures fall back to the
// repository; the cache is never the source of truth.
func (s *Service) GetConfig(ctx context.Context) (*entities.PricingConfig, error) {
	cached, err := s.cache.GetPricingConfig(ctx)
	if err == nil && cached != nil {
		return cached, nil
	}

	cfg, err := s.repository.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			def := entities.DefaultPricingConfig()
			return &def, nil
		}
		return nil, fmt.Errorf("get pricing config: %w", err)
	}

	_ = s.cache.SetPricingConfig(ctx, *cfg)
	return cfg, nil
}

func (s *Service) UpdateConfig(ctx context.Context, modify entities.PricingConfigModify) (*entities.PricingConfig, error) {
	var updated *entities.PricingConfig

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.Get(ctx)
		switch {
		case errors.Is(err, ErrConfigNotFound):
			def := entities.DefaultPricingConfig()
			current = &def
		case err != nil:
			return fmt.Errorf("get pricing config: %w", err)
		}

		next := modify.Apply(*current)
		if err := validateConfig(next); err != nil {
			return err
		}

		updated, err = s.repository.Save(ctx, next)
		if err != nil {
			return fmt.Errorf("save pricing config: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// a failed invalidation is bounded by the cache TTL
	_ = s.cache.DeletePricingConfig(ctx)
	return updated, nil
}

// Quote validates the draft and prices it against the current tariff.
func (s *Service) Quote(ctx context.Context, draft entities.PackageDraft) (entities.Quote, error) {
	if err := ValidateDraft(draft); err != nil {
		return entities.Quote{}, err
	}

	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	return Estimate(draft, *cfg)
}
