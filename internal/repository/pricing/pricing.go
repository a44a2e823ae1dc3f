package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/pricing"
)

// the tariff is a single row
const configRowID = 1

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Get(ctx context.Context) (*entities.PricingConfig, error) {
	query := `SELECT base_price_intra, base_price_inter, base_price_doc,
			km_surcharge_interval, km_surcharge_amount,
			weight_surcharge_medium, weight_surcharge_heavy,
			commission_rate, updated_at
		FROM pricing_config
		WHERE id = $1`

	var cfg entities.PricingConfig
	err := r.querier.QueryRow(ctx, query, configRowID).Scan(
		&cfg.BasePriceIntra,
		&cfg.BasePriceInter,
		&cfg.BasePriceDoc,
		&cfg.KmSurchargeInterval,
		&cfg.KmSurchargeAmount,
		&cfg.WeightSurchargeMedium,
		&cfg.WeightSurchargeHeavy,
		&cfg.CommissionRate,
		&cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pricing.ErrConfigNotFound
		}
		return nil, fmt.Errorf("unexpected pricing repository get error: %w", err)
	}
	return &cfg, nil
}

func (r *Repository) Save(ctx context.Context, cfg entities.PricingConfig) (*entities.PricingConfig, error) {
	query := `INSERT INTO pricing_config (id, base_price_intra, base_price_inter, base_price_doc,
			km_surcharge_interval, km_surcharge_amount,
			weight_surcharge_medium, weight_surcharge_heavy, commission_rate, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (id) DO UPDATE SET
			base_price_intra = EXCLUDED.base_price_intra,
			base_price_inter = EXCLUDED.base_price_inter,
			base_price_doc = EXCLUDED.base_price_doc,
			km_surcharge_interval = EXCLUDED.km_surcharge_interval,
			km_surcharge_amount = EXCLUDED.km_surcharge_amount,
			weight_surcharge_medium = EXCLUDED.weight_surcharge_medium,
			weight_surcharge_heavy = EXCLUDED.weight_surcharge_heavy,
			commission_rate = EXCLUDED.commission_rate,
			updated_at = EXCLUDED.updated_at
		RETURNING updated_at`

	err := r.querier.QueryRow(ctx, query,
		configRowID,
		cfg.BasePriceIntra,
		cfg.BasePriceInter,
		cfg.BasePriceDoc,
		cfg.KmSurchargeInterval,
		cfg.KmSurchargeAmount,
		cfg.WeightSurchargeMedium,
		cfg.WeightSurchargeHeavy,
		cfg.CommissionRate,
	).Scan(&cfg.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected pricing repository save error: %w", err)
	}
	return &cfg, nil
}
