package analytics

import "TradeView/internal/domain/models"

// Fixed narration thresholds. Not configurable.
const (
	rsiOverbought = 70.0
	rsiOversold   = 30.0
	highVolPct    = 30.0
	strongCorr    = 0.7
	inverseCorr   = -0.5
)

// NarrateTrend calls the price bullish iff it trades above the 50-day SMA.
func NarrateTrend(price float64, sma50 *float64) *models.TrendInsight {
	in := &models.TrendInsight{Price: price, SMA50: sma50}
	switch {
	case sma50 == nil:
		in.Direction = models.TrendInsufficient
	case price > *sma50:
		in.Direction = models.TrendBullish
	default:
		in.Direction = models.TrendBearish
	}
	return in
}

// NarrateMomentum grades the latest RSI reading.
func NarrateMomentum(rsi *float64) *models.MomentumInsight {
	in := &models.MomentumInsight{RSI: rsi}
	switch {
	case rsi == nil:
		in.Regime = models.MomentumUnknown
	case *rsi > rsiOverbought:
		in.Regime = models.MomentumOverbought
	case *rsi < rsiOversold:
		in.Regime = models.MomentumOversold
	default:
		in.Regime = models.MomentumNeutral
	}
	return in
}

// NarrateVolatility grades annualized volatility; nil when the figure was
// unavailable for the window.
func NarrateVolatility(annualizedPct float64, ok bool) *models.VolatilityInsight {
	if !ok {
		return nil
	}
	in := &models.VolatilityInsight{Annualized: annualizedPct, Regime: models.VolatilityStable}
	if annualizedPct > highVolPct {
		in.Regime = models.VolatilityHigh
	}
	return in
}

// NarrateBands places the last close against the Bollinger envelope.
func NarrateBands(price float64, upper, lower *float64) *models.BandInsight {
	in := &models.BandInsight{Price: price, Upper: upper, Lower: lower}
	switch {
	case upper == nil || lower == nil:
		in.Position = models.BandUnknown
	case price >= *upper:
		in.Position = models.BandAboveUpper
	case price <= *lower:
		in.Position = models.BandBelowLower
	default:
		in.Position = models.BandWithin
	}
	return in
}

// NarrateCorrelation grades a Pearson coefficient.
func NarrateCorrelation(r float64) *models.CorrelationInsight {
	in := &models.CorrelationInsight{Coefficient: r, Strength: models.CorrelationWeak}
	switch {
	case r > strongCorr:
		in.Strength = models.CorrelationStrongPositive
	case r <= inverseCorr:
		in.Strength = models.CorrelationInverse
	}
	return in
}

// NarrateForecast reads the fitted slope. A slope of exactly zero counts as
// downward; the upward side of the tie-break is strict.
func NarrateForecast(slope float64) *models.ForecastInsight {
	in := &models.ForecastInsight{Slope: slope, Direction: models.TrendBearish}
	if slope > 0 {
		in.Direction = models.TrendBullish
	}
	return in
}
