package di

import (
	"fmt"

	"TradeView/internal/domain/repository"
	"TradeView/internal/handler/api"
	"TradeView/internal/handler/ws"
	"TradeView/internal/service/marketdata"
	"TradeView/internal/service/yahoo"
	"TradeView/internal/usecase"
	pkgcache "TradeView/pkg/cache"
	"TradeView/pkg/config"
	xhttp "TradeView/pkg/http"
	applogger "TradeView/pkg/logger"
	"TradeView/pkg/metrics"
	"TradeView/pkg/server"

	"github.com/labstack/echo/v4"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache selects the cache backend: redis when enabled, in-process
// LRU otherwise.
func ProvideCache(cfg *config.Config) (pkgcache.Service, error) {
	if cfg.Cache.Redis.Enabled {
		rc, err := pkgcache.NewRedisCache(
			pkgcache.WithRedisAddr(cfg.Cache.Redis.Addr),
			pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
			pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return rc, nil
	}
	return pkgcache.NewMemoryCache(
		pkgcache.WithMaxSize(cfg.Cache.MaxEntries),
	), nil
}

// ProvideMarketDataSource creates the Yahoo source wrapped in the fetch
// cache and provider rate limit.
func ProvideMarketDataSource(cfg *config.Config, c pkgcache.Service, m repository.Metrics, l *applogger.Logger) *marketdata.CachedSource {
	yopts := []yahoo.Option{yahoo.WithLogger(l)}
	if cfg.MarketData.BaseURL != "" {
		yopts = append(yopts, yahoo.WithBaseURL(cfg.MarketData.BaseURL))
	}
	if cfg.MarketData.Timeout > 0 {
		yopts = append(yopts, yahoo.WithHTTPClient(xhttp.NewClient(xhttp.WithTimeout(cfg.MarketData.Timeout))))
	}
	source := yahoo.New(yopts...)

	return marketdata.New(source, c,
		marketdata.WithTTL(cfg.MarketData.CacheTTL),
		marketdata.WithRateLimit(cfg.MarketData.RequestsPerSec*2, cfg.MarketData.RequestsPerSec),
		marketdata.WithMetrics(m),
		marketdata.WithLogger(l),
	)
}

// ProvideDashboardUseCase creates the dashboard orchestrator.
func ProvideDashboardUseCase(cfg *config.Config, source *marketdata.CachedSource, m repository.Metrics, l *applogger.Logger) *usecase.DashboardUseCase {
	return usecase.NewDashboardUseCase(source,
		usecase.WithLookbackDays(cfg.MarketData.LookbackDays),
		usecase.WithUseCaseMetrics(m),
		usecase.WithUseCaseLogger(l),
	)
}

// ProvideHTTPHandler combines the API and websocket handlers.
func ProvideHTTPHandler(cfg *config.Config, l *applogger.Logger, uc *usecase.DashboardUseCase, source *marketdata.CachedSource) xhttp.Handler {
	return compositeHandler{
		api.NewDashboardEchoHandler(l, uc, source),
		ws.NewQuoteStreamHandler(l, uc, cfg.Quotes.PushInterval),
	}
}

// compositeHandler registers several route groups on one server.
type compositeHandler []xhttp.Handler

func (h compositeHandler) RegisterRoutes(e *echo.Echo) {
	for _, sub := range h {
		sub.RegisterRoutes(e)
	}
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler, c pkgcache.Service) *server.App {
	return server.New(cfg, l, handler, c)
}
