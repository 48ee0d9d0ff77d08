package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"TradeView/internal/domain/models"
	domrepo "TradeView/internal/domain/repository"
	"TradeView/internal/services/analytics"
	applogger "TradeView/pkg/logger"
)

// Section keys used in Dashboard.Errors.
const (
	SectionForecast   = "forecast"
	SectionComparison = "comparison"
	SectionVolatility = "volatility"
	SectionIndicators = "indicators"
)

// DashboardUseCase orchestrates one full dashboard recomputation: resolve
// windows, fetch history through the cache, align, derive indicators, fit the
// trend, compare, narrate. Secondary sections degrade into the Errors map;
// only a failed primary fetch or an unusable primary series is fatal.
type DashboardUseCase struct {
	source       domrepo.MarketDataSource
	metrics      domrepo.Metrics
	logger       *applogger.Logger
	lookbackDays int

	// Now is injectable for deterministic tests.
	Now func() time.Time
}

// UseCaseOption configures DashboardUseCase.
type UseCaseOption func(*DashboardUseCase)

// NewDashboardUseCase creates the dashboard orchestrator.
func NewDashboardUseCase(source domrepo.MarketDataSource, opts ...UseCaseOption) *DashboardUseCase {
	uc := &DashboardUseCase{
		source:       source,
		logger:       applogger.NewLogger("dashboard"),
		lookbackDays: 300,
		Now:          time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// WithLookbackDays sets the indicator warm-up buffer in calendar days.
func WithLookbackDays(days int) UseCaseOption {
	return func(uc *DashboardUseCase) { uc.lookbackDays = days }
}

// WithUseCaseMetrics sets the metrics recorder.
func WithUseCaseMetrics(m domrepo.Metrics) UseCaseOption {
	return func(uc *DashboardUseCase) { uc.metrics = m }
}

// WithUseCaseLogger sets the logger.
func WithUseCaseLogger(l *applogger.Logger) UseCaseOption {
	return func(uc *DashboardUseCase) { uc.logger = l }
}

// GetDashboardParams drive one recomputation. Days > 0 overrides Timeframe.
type GetDashboardParams struct {
	Symbol    string
	Compare   string
	Timeframe domrepo.Timeframe
	Days      int
}

func (uc *DashboardUseCase) resolve(tf domrepo.Timeframe, days int) (models.ViewWindow, time.Time) {
	vw := domrepo.ResolveWindow(tf, days, uc.Now())
	return vw, domrepo.ComputationStart(vw, uc.lookbackDays)
}

// fetchAligned fetches the computation window and splits it into the
// canonical (warm-up included) and view series.
func (uc *DashboardUseCase) fetchAligned(ctx context.Context, symbol string, vw models.ViewWindow, compStart time.Time) (canonical, view models.PriceSeries, err error) {
	raw, err := uc.source.Fetch(ctx, symbol, compStart, vw.End)
	if err != nil {
		return models.PriceSeries{}, models.PriceSeries{}, err
	}
	return analytics.Align(raw, vw)
}

// GetDashboard runs the whole pipeline for one interaction.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, p GetDashboardParams) (*models.Dashboard, error) {
	symbol := strings.ToUpper(strings.TrimSpace(p.Symbol))
	if symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	tf := p.Timeframe
	if !domrepo.IsValidTimeframe(tf) {
		tf = domrepo.DefaultTimeframe()
	}

	vw, compStart := uc.resolve(tf, p.Days)

	canonical, view, err := uc.fetchAligned(ctx, symbol, vw, compStart)
	if err != nil {
		return nil, fmt.Errorf("dashboard %s: %w", symbol, err)
	}

	d := &models.Dashboard{
		Symbol:    symbol,
		Timeframe: string(tf),
		Window:    vw,
		AsOf:      uc.Now(),
		Series:    view.Bars,
		Errors:    map[string]string{},
	}

	// quote card
	last, _ := view.Last()
	d.Quote = models.Quote{Symbol: symbol, Price: last.Close, Volume: last.Volume}
	if n := view.Len(); n >= 2 {
		d.Quote.Change = last.Close - view.Bars[n-2].Close
	}
	if uc.metrics != nil {
		uc.metrics.RecordLastPrice(symbol, last.Close)
	}

	// indicators over the canonical series, sliced to the view
	set, err := analytics.ComputeIndicators(canonical)
	if err != nil {
		d.Errors[SectionIndicators] = err.Error()
	} else {
		d.Indicators = set.Slice(analytics.ViewOffset(canonical, view))
	}

	// volatility over the visible closes only
	if vol, ok := analytics.AnnualizedVolatility(view.Closes()); ok {
		v := vol
		d.Volatility = &v
		d.Insights.Volatility = analytics.NarrateVolatility(vol, true)
	} else {
		d.Errors[SectionVolatility] = models.ErrInsufficientData.Error()
	}

	// trend fit over the visible range
	forecast, err := analytics.FitTrend(view)
	if err != nil {
		d.Errors[SectionForecast] = err.Error()
	} else {
		d.Forecast = &forecast
		d.Insights.Forecast = analytics.NarrateForecast(forecast.Slope)
	}

	// optional cross-asset comparison
	if cmp := strings.ToUpper(strings.TrimSpace(p.Compare)); cmp != "" && cmp != symbol {
		res, err := uc.compare(ctx, view, cmp, vw, compStart)
		if err != nil {
			d.Errors[SectionComparison] = err.Error()
		} else {
			d.Comparison = &res
			d.Insights.Correlation = analytics.NarrateCorrelation(res.Correlation)
		}
	}

	// point-in-time insights from the latest snapshot
	if d.Indicators != nil {
		snap := d.Indicators.Last()
		d.Insights.Trend = analytics.NarrateTrend(last.Close, snap.SMA50)
		d.Insights.Momentum = analytics.NarrateMomentum(snap.RSI14)
		d.Insights.Bands = analytics.NarrateBands(last.Close, snap.BBUpper, snap.BBLower)
	}

	if len(d.Errors) == 0 {
		d.Errors = nil
	}
	return d, nil
}

func (uc *DashboardUseCase) compare(ctx context.Context, primary models.PriceSeries, cmpSymbol string, vw models.ViewWindow, compStart time.Time) (models.ComparisonResult, error) {
	rawB, err := uc.source.Fetch(ctx, cmpSymbol, compStart, vw.End)
	if err != nil {
		return models.ComparisonResult{}, err
	}
	canonB, _, err := analytics.Align(rawB, vw)
	if err != nil && !errors.Is(err, models.ErrInsufficientRange) {
		// a comparison series with no bars inside the view can still
		// overlap the primary, so only integrity errors are fatal here
		return models.ComparisonResult{}, err
	}
	return analytics.Compare(primary, canonB, vw)
}

// GetHistory returns the view-sliced series with its indicator columns.
func (uc *DashboardUseCase) GetHistory(ctx context.Context, symbol string, tf domrepo.Timeframe, days int) (models.PriceSeries, *models.IndicatorSet, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	vw, compStart := uc.resolve(tf, days)

	canonical, view, err := uc.fetchAligned(ctx, symbol, vw, compStart)
	if err != nil {
		return models.PriceSeries{}, nil, err
	}
	set, err := analytics.ComputeIndicators(canonical)
	if err != nil {
		return view, nil, nil
	}
	return view, set.Slice(analytics.ViewOffset(canonical, view)), nil
}

// GetForecast fits the trend over the visible range.
func (uc *DashboardUseCase) GetForecast(ctx context.Context, symbol string, tf domrepo.Timeframe, days int) (models.ForecastResult, *models.ForecastInsight, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	vw, compStart := uc.resolve(tf, days)

	_, view, err := uc.fetchAligned(ctx, symbol, vw, compStart)
	if err != nil {
		return models.ForecastResult{}, nil, err
	}
	forecast, err := analytics.FitTrend(view)
	if err != nil {
		return models.ForecastResult{}, nil, err
	}
	return forecast, analytics.NarrateForecast(forecast.Slope), nil
}

// GetComparison aligns two symbols over the visible range.
func (uc *DashboardUseCase) GetComparison(ctx context.Context, symbolA, symbolB string, tf domrepo.Timeframe, days int) (models.ComparisonResult, *models.CorrelationInsight, error) {
	symbolA = strings.ToUpper(strings.TrimSpace(symbolA))
	symbolB = strings.ToUpper(strings.TrimSpace(symbolB))
	vw, compStart := uc.resolve(tf, days)

	_, viewA, err := uc.fetchAligned(ctx, symbolA, vw, compStart)
	if err != nil {
		return models.ComparisonResult{}, nil, err
	}
	res, err := uc.compare(ctx, viewA, symbolB, vw, compStart)
	if err != nil {
		return models.ComparisonResult{}, nil, err
	}
	return res, analytics.NarrateCorrelation(res.Correlation), nil
}

// LatestQuote returns the freshest close for symbol, fetched through the
// cache over a short trailing window. Used by the live quote push.
func (uc *DashboardUseCase) LatestQuote(ctx context.Context, symbol string) (models.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	now := uc.Now()
	raw, err := uc.source.Fetch(ctx, symbol, now.AddDate(0, 0, -14), now)
	if err != nil {
		return models.Quote{}, err
	}
	last, ok := raw.Last()
	if !ok {
		return models.Quote{}, models.ErrDataUnavailable
	}
	q := models.Quote{Symbol: symbol, Price: last.Close, Volume: last.Volume}
	if n := raw.Len(); n >= 2 {
		q.Change = last.Close - raw.Bars[n-2].Close
	}
	return q, nil
}
