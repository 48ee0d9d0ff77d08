package models

import "time"

// Dashboard is one full recomputation for one user interaction. Sections that
// failed independently are nil with the reason recorded in Errors, keyed by
// section name; the primary series sections are always populated when the
// primary fetch succeeded.
type Dashboard struct {
	Symbol     string            `json:"symbol"`
	Timeframe  string            `json:"timeframe"`
	Window     ViewWindow        `json:"window"`
	AsOf       time.Time         `json:"as_of"`
	Quote      Quote             `json:"quote"`
	Volatility *float64          `json:"volatility_pct,omitempty"`
	Series     []PriceBar        `json:"series"`
	Indicators *IndicatorSet     `json:"indicators,omitempty"`
	Forecast   *ForecastResult   `json:"forecast,omitempty"`
	Comparison *ComparisonResult `json:"comparison,omitempty"`
	Insights   Insights          `json:"insights"`
	Errors     map[string]string `json:"errors,omitempty"`
}
