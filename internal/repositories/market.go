package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"

	"simpasar/internal/models"
	"simpasar/internal/repositories/cache"
	"simpasar/internal/services/qris"

	"gorm.io/gorm"
)

// MarketRepository serves market rows and the read-only snapshots the
// payment and billing paths consume.
type MarketRepository interface {
	GetByCode(ctx context.Context, marketCode string) (*models.Market, error)
	GetSnapshot(ctx context.Context, marketCode string) (*models.MarketSnapshot, error)
	DueDay(ctx context.Context, marketCode string) (string, error)
	Create(ctx context.Context, market *models.Market) error
	Update(ctx context.Context, market *models.Market) error
}

type marketRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

func NewMarketRepository(db *gorm.DB, cacheSvc *cache.CacheService) MarketRepository {
	return &marketRepository{db: db, cache: cacheSvc}
}

func (r *marketRepository) GetByCode(ctx context.Context, marketCode string) (*models.Market, error) {
	var market models.Market
	err := r.db.WithContext(ctx).Where("market_code = ?", marketCode).First(&market).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", qris.ErrMarketNotFound, marketCode)
		}
		return nil, err
	}
	return &market, nil
}

// GetSnapshot is cache-first: the payment path calls it on every dynamic
// code request.
func (r *marketRepository) GetSnapshot(ctx context.Context, marketCode string) (*models.MarketSnapshot, error) {
	if r.cache != nil {
		if snapshot, ok := r.cache.GetMarketSnapshot(ctx, marketCode); ok {
			return snapshot, nil
		}
	}

	market, err := r.GetByCode(ctx, marketCode)
	if err != nil {
		return nil, err
	}

	snapshot := market.Snapshot()
	if r.cache != nil {
		if err := r.cache.CacheMarketSnapshot(ctx, snapshot); err != nil {
			log.Printf("[CACHE] failed to cache market %s: %v", marketCode, err)
		}
	}
	return snapshot, nil
}

func (r *marketRepository) DueDay(ctx context.Context, marketCode string) (string, error) {
	snapshot, err := r.GetSnapshot(ctx, marketCode)
	if err != nil {
		return "", err
	}
	return snapshot.InvoiceDueDay, nil
}

func (r *marketRepository) Create(ctx context.Context, market *models.Market) error {
	return r.db.WithContext(ctx).Create(market).Error
}

func (r *marketRepository) Update(ctx context.Context, market *models.Market) error {
	if err := r.db.WithContext(ctx).Save(market).Error; err != nil {
		return err
	}
	if r.cache != nil {
		if err := r.cache.InvalidateMarket(ctx, market.MarketCode); err != nil {
			log.Printf("[CACHE] failed to invalidate market %s: %v", market.MarketCode, err)
		}
	}
	return nil
}
