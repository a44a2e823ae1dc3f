package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"marketplace/internal/entities"
	"marketplace/internal/service/pricing"
)

const pricingConfigKey = "cache:pricing:config"

type pricingConfigJSON struct {
	BasePriceIntra        int64     `json:"base_price_intra"`
	BasePriceInter        int64     `json:"base_price_inter"`
	BasePriceDoc          int64     `json:"base_price_doc"`
	KmSurchargeInterval   float64   `json:"km_surcharge_interval"`
	KmSurchargeAmount     int64     `json:"km_surcharge_amount"`
	WeightSurchargeMedium float64   `json:"weight_surcharge_medium"`
	WeightSurchargeHeavy  float64   `json:"weight_surcharge_heavy"`
	CommissionRate        float64   `json:"commission_rate"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// PricingStore keeps the current tariff in Redis so quotes skip the database.
type PricingStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPricingStore(client *redis.Client, ttl time.Duration) *PricingStore {
	return &PricingStore{client: client, ttl: ttl}
}

func (s *PricingStore) GetPricingConfig(ctx context.Context) (*entities.PricingConfig, error) {
	data, err := s.client.Get(ctx, pricingConfigKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, pricing.ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get pricing config: %w", err)
	}

	var cached pricingConfigJSON
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("decode cached pricing config: %w", err)
	}

	return &entities.PricingConfig{
		BasePriceIntra:        cached.BasePriceIntra,
		BasePriceInter:        cached.BasePriceInter,
		BasePriceDoc:          cached.BasePriceDoc,
		KmSurchargeInterval:   cached.KmSurchargeInterval,
		KmSurchargeAmount:     cached.KmSurchargeAmount,
		WeightSurchargeMedium: cached.WeightSurchargeMedium,
		WeightSurchargeHeavy:  cached.WeightSurchargeHeavy,
		CommissionRate:        cached.CommissionRate,
		UpdatedAt:             cached.UpdatedAt,
	}, nil
}

func (s *PricingStore) SetPricingConfig(ctx context.Context, cfg entities.PricingConfig) error {
	data, err := json.Marshal(pricingConfigJSON{
		BasePriceIntra:        cfg.BasePriceIntra,
		BasePriceInter:        cfg.BasePriceInter,
		BasePriceDoc:          cfg.BasePriceDoc,
		KmSurchargeInterval:   cfg.KmSurchargeInterval,
		KmSurchargeAmount:     cfg.KmSurchargeAmount,
		WeightSurchargeMedium: cfg.WeightSurchargeMedium,
		WeightSurchargeHeavy:  cfg.WeightSurchargeHeavy,
		CommissionRate:        cfg.CommissionRate,
		UpdatedAt:             cfg.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode pricing config: %w", err)
	}
	return s.client.Set(ctx, pricingConfigKey, data, s.ttl).Err()
}

func (s *PricingStore) DeletePricingConfig(ctx context.Context) error {
	return s.client.Del(ctx, pricingConfigKey).Err()
}
