package repository

import (
	"context"
	"time"

	"TradeView/internal/domain/models"
)

// MarketDataSource fetches daily price history for one symbol over a date
// range. Implementations must return models.ErrDataUnavailable for unknown or
// delisted symbols and for provider failures, never a panic or a raw provider
// error, and must hand back bars that are calendar-day keyed, de-duplicated
// and sorted ascending.
type MarketDataSource interface {
	Fetch(ctx context.Context, symbol string, start, end time.Time) (models.PriceSeries, error)
}

// CacheController exposes the only invalidation the dashboard offers:
// clear everything.
type CacheController interface {
	ClearAll(ctx context.Context) error
}

type Metrics interface {
	RecordFetch(provider, symbol string)
	RecordCache(result string) // "hit" or "miss"
	RecordError(kind string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
