package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/logger"
	"krishisanjivni-backend/internal/market"
)

// MandiSource feeds raw price records for one arrival date (dd/mm/yyyy).
type MandiSource interface {
	FetchByDate(ctx context.Context, arrivalDate string) ([]domain.MarketRecord, error)
}

type marketService struct {
	source   MandiSource
	cache    redis.Cmdable
	cacheTTL time.Duration
}

func NewMarketService(source MandiSource, cache redis.Cmdable, cacheTTLMinutes int) MarketService {
	return &marketService{
		source:   source,
		cache:    cache,
		cacheTTL: time.Duration(cacheTTLMinutes) * time.Minute,
	}
}

func cacheKey(day time.Time) string {
	return "market:prices:" + day.Format("2006-01-02")
}

// upstreamDate renders a day the way the data.gov.in resource filters on it.
func upstreamDate(day time.Time) string {
	return day.Format("02/01/2006")
}

func (s *marketService) DailyPrices(ctx context.Context) ([]domain.MarketPrice, error) {
	now := time.Now()
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey(now)).Result(); err == nil {
			var prices []domain.MarketPrice
			if err := json.Unmarshal([]byte(raw), &prices); err == nil {
				return prices, nil
			}
		}
	}
	return s.compute(ctx, now)
}

// RefreshDailyPrices recomputes today's selection and overwrites the cache.
// Run from the scheduler so the first morning request is already warm.
func (s *marketService) RefreshDailyPrices(ctx context.Context) (int, error) {
	prices, err := s.compute(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	return len(prices), nil
}

func (s *marketService) compute(ctx context.Context, now time.Time) ([]domain.MarketPrice, error) {
	today, err := s.source.FetchByDate(ctx, upstreamDate(now))
	if err != nil {
		return nil, err
	}

	// Yesterday only feeds trends and the empty-today fallback; a failed
	// fetch degrades every trend to stable rather than failing the request.
	yesterday, err := s.source.FetchByDate(ctx, upstreamDate(now.AddDate(0, 0, -1)))
	if err != nil {
		logger.Warn("yesterday's mandi prices unavailable, trends degrade to stable", "error", err)
		yesterday = nil
	}

	prices := market.SelectDaily(today, yesterday)

	if s.cache != nil {
		if raw, err := json.Marshal(prices); err == nil {
			if err := s.cache.Set(ctx, cacheKey(now), raw, s.cacheTTL).Err(); err != nil {
				logger.Warn("market price cache write failed", "error", err)
			}
		}
	}
	return prices, nil
}

// Fertilizers is a static reference catalog of government-priced fertilizers.
func (s *marketService) Fertilizers() []domain.Fertilizer {
	return []domain.Fertilizer{
		{Name: "Urea", Price: 266.50, Unit: "45 kg bag", Subsidy: true},
		{Name: "DAP", Price: 1350.00, Unit: "50 kg bag", Subsidy: true},
		{Name: "MOP", Price: 1655.00, Unit: "50 kg bag", Subsidy: true},
		{Name: "NPK 10-26-26", Price: 1470.00, Unit: "50 kg bag", Subsidy: true},
		{Name: "NPK 12-32-16", Price: 1470.00, Unit: "50 kg bag", Subsidy: true},
		{Name: "SSP", Price: 560.00, Unit: "50 kg bag", Subsidy: false},
		{Name: "Zinc Sulphate", Price: 68.00, Unit: "per kg", Subsidy: false},
	}
}
