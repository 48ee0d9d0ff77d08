package marketdata

import (
	"context"
	"strings"
	"time"

	"TradeView/internal/domain/models"
	drepo "TradeView/internal/domain/repository"
	"TradeView/internal/service/ratelimit"
	"TradeView/pkg/cache"
	applogger "TradeView/pkg/logger"
)

const (
	historyKeyPrefix = "history"
	providerKey      = "yahoo"
)

// CachedSource decorates a MarketDataSource with a shared price-history
// cache and a provider rate limit. A cache hit is served without touching
// the provider; a miss waits for a token, fetches, and stores the series
// for the configured TTL.
type CachedSource struct {
	source   drepo.MarketDataSource
	cache    cache.Service
	limiter  *ratelimit.Limiter
	metrics  drepo.Metrics
	logger   *applogger.Logger
	ttl      time.Duration
	rate     float64 // provider requests per second
	capacity float64
}

// Option configures CachedSource.
type Option func(*CachedSource)

// New creates a cached market data source.
func New(source drepo.MarketDataSource, c cache.Service, opts ...Option) *CachedSource {
	s := &CachedSource{
		source:   source,
		cache:    c,
		limiter:  ratelimit.New(),
		logger:   applogger.NewLogger("marketdata"),
		ttl:      time.Hour,
		rate:     2,
		capacity: 4,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithTTL sets the history cache TTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *CachedSource) { s.ttl = ttl }
}

// WithRateLimit sets the provider token bucket parameters.
func WithRateLimit(capacity, perSec float64) Option {
	return func(s *CachedSource) {
		s.capacity = capacity
		s.rate = perSec
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m drepo.Metrics) Option {
	return func(s *CachedSource) { s.metrics = m }
}

// WithLogger sets the logger.
func WithLogger(l *applogger.Logger) Option {
	return func(s *CachedSource) { s.logger = l }
}

func historyKey(symbol string, start, end time.Time) string {
	return cache.GenerateKeyWithParams(historyKeyPrefix,
		strings.ToUpper(symbol),
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
	)
}

// Fetch returns the cached series for (symbol, start, end) or fetches it
// from the underlying source. Identical requests within the TTL produce
// identical series.
func (s *CachedSource) Fetch(ctx context.Context, symbol string, start, end time.Time) (models.PriceSeries, error) {
	key := historyKey(symbol, start, end)

	computed := false
	series, err := cache.GetOrCompute(ctx, s.cache, key, s.ttl, func() (models.PriceSeries, error) {
		computed = true
		s.recordCache("miss")

		if err := s.limiter.Wait(ctx, providerKey, s.capacity, s.rate); err != nil {
			return models.PriceSeries{}, err
		}

		started := time.Now()
		out, err := s.source.Fetch(ctx, symbol, start, end)
		if s.metrics != nil {
			s.metrics.RecordFetch(providerKey, strings.ToUpper(symbol))
			s.metrics.RecordLatency("provider_fetch", time.Since(started).Seconds())
		}
		if err != nil {
			if s.metrics != nil {
				s.metrics.RecordError("provider_fetch")
			}
			return models.PriceSeries{}, err
		}
		return out, nil
	})
	if err != nil {
		return models.PriceSeries{}, err
	}
	if !computed {
		s.recordCache("hit")
	}
	return series, nil
}

// ClearAll drops every cached entry. The next request for any symbol goes
// back to the provider.
func (s *CachedSource) ClearAll(ctx context.Context) error {
	if err := s.cache.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("cache cleared")
	return nil
}

func (s *CachedSource) recordCache(result string) {
	if s.metrics != nil {
		s.metrics.RecordCache(result)
	}
}

var (
	_ drepo.MarketDataSource = (*CachedSource)(nil)
	_ drepo.CacheController  = (*CachedSource)(nil)
)
