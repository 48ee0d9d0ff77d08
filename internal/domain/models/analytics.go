package models

import "time"

// Indicator column names as they appear in API payloads and CSV exports.
const (
	ColSMA20   = "SMA_20"
	ColSMA50   = "SMA_50"
	ColSMA200  = "SMA_200"
	ColBBUpper = "BB_Upper"
	ColBBLower = "BB_Lower"
	ColRSI14   = "RSI_14"
)

// IndicatorSet holds nullable indicator columns index-aligned to exactly one
// PriceSeries. A nil entry marks insufficient lookback at that position and
// marshals to JSON null, so no NaN can reach a display.
type IndicatorSet struct {
	SMA20   []*float64 `json:"sma_20"`
	SMA50   []*float64 `json:"sma_50"`
	SMA200  []*float64 `json:"sma_200"`
	BBUpper []*float64 `json:"bb_upper"`
	BBLower []*float64 `json:"bb_lower"`
	RSI14   []*float64 `json:"rsi_14"`
}

// Columns returns the indicator columns in stable export order.
func (s *IndicatorSet) Columns() []NamedColumn {
	return []NamedColumn{
		{Name: ColSMA20, Values: s.SMA20},
		{Name: ColSMA50, Values: s.SMA50},
		{Name: ColSMA200, Values: s.SMA200},
		{Name: ColBBUpper, Values: s.BBUpper},
		{Name: ColBBLower, Values: s.BBLower},
		{Name: ColRSI14, Values: s.RSI14},
	}
}

// Slice returns the set restricted to positions [from:], preserving alignment
// with the same slice of the source series.
func (s *IndicatorSet) Slice(from int) *IndicatorSet {
	return &IndicatorSet{
		SMA20:   s.SMA20[from:],
		SMA50:   s.SMA50[from:],
		SMA200:  s.SMA200[from:],
		BBUpper: s.BBUpper[from:],
		BBLower: s.BBLower[from:],
		RSI14:   s.RSI14[from:],
	}
}

// Last returns the final value of each column (nil when still warming up).
func (s *IndicatorSet) Last() IndicatorSnapshot {
	last := func(col []*float64) *float64 {
		if len(col) == 0 {
			return nil
		}
		return col[len(col)-1]
	}
	return IndicatorSnapshot{
		SMA20:   last(s.SMA20),
		SMA50:   last(s.SMA50),
		SMA200:  last(s.SMA200),
		BBUpper: last(s.BBUpper),
		BBLower: last(s.BBLower),
		RSI14:   last(s.RSI14),
	}
}

// NamedColumn pairs an indicator name with its values for export.
type NamedColumn struct {
	Name   string
	Values []*float64
}

// IndicatorSnapshot is the most recent value of each indicator column.
type IndicatorSnapshot struct {
	SMA20   *float64 `json:"sma_20"`
	SMA50   *float64 `json:"sma_50"`
	SMA200  *float64 `json:"sma_200"`
	BBUpper *float64 `json:"bb_upper"`
	BBLower *float64 `json:"bb_lower"`
	RSI14   *float64 `json:"rsi_14"`
}

// ForecastPoint is one projected close on the fitted trend line.
type ForecastPoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// ForecastResult is a naive OLS line fit plus a 30-day projection.
type ForecastResult struct {
	Symbol    string          `json:"symbol"`
	Slope     float64         `json:"slope"`
	Intercept float64         `json:"intercept"`
	Points    []ForecastPoint `json:"points"`
}

// ComparisonResult aligns two assets on their shared trading dates and
// normalizes both to percent change from the first common close.
type ComparisonResult struct {
	SymbolA     string      `json:"symbol_a"`
	SymbolB     string      `json:"symbol_b"`
	Dates       []time.Time `json:"dates"`
	ReturnsA    []float64   `json:"returns_a"`
	ReturnsB    []float64   `json:"returns_b"`
	Correlation float64     `json:"correlation"`
	LastPriceB  float64     `json:"last_price_b"`
}
