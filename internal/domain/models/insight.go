package models

// Categorical judgment tags. Closed sets; thresholds live in the narrator.
type (
	TrendDirection      string
	MomentumRegime      string
	VolatilityRegime    string
	BandPosition        string
	CorrelationStrength string
)

const (
	TrendBullish      TrendDirection = "bullish"
	TrendBearish      TrendDirection = "bearish"
	TrendInsufficient TrendDirection = "insufficient_data"

	MomentumOverbought MomentumRegime = "overbought"
	MomentumOversold   MomentumRegime = "oversold"
	MomentumNeutral    MomentumRegime = "neutral"
	MomentumUnknown    MomentumRegime = "unknown"

	VolatilityHigh   VolatilityRegime = "high"
	VolatilityStable VolatilityRegime = "stable"

	BandAboveUpper BandPosition = "at_or_above_upper"
	BandBelowLower BandPosition = "at_or_below_lower"
	BandWithin     BandPosition = "within_bands"
	BandUnknown    BandPosition = "unknown"

	CorrelationStrongPositive CorrelationStrength = "strong_positive"
	CorrelationInverse        CorrelationStrength = "inverse"
	CorrelationWeak           CorrelationStrength = "weak"
)

// TrendInsight pairs the bullish/bearish call with the figures behind it.
type TrendInsight struct {
	Direction TrendDirection `json:"direction"`
	Price     float64        `json:"price"`
	SMA50     *float64       `json:"sma_50"`
}

// MomentumInsight is the RSI regime plus the RSI value that produced it.
type MomentumInsight struct {
	Regime MomentumRegime `json:"regime"`
	RSI    *float64       `json:"rsi"`
}

// VolatilityInsight is the annualized volatility regime.
type VolatilityInsight struct {
	Regime     VolatilityRegime `json:"regime"`
	Annualized float64          `json:"annualized_pct"`
}

// BandInsight is where the last close sits relative to the Bollinger envelope.
type BandInsight struct {
	Position BandPosition `json:"position"`
	Price    float64      `json:"price"`
	Upper    *float64     `json:"upper"`
	Lower    *float64     `json:"lower"`
}

// CorrelationInsight grades the pairwise correlation coefficient.
type CorrelationInsight struct {
	Strength    CorrelationStrength `json:"strength"`
	Coefficient float64             `json:"coefficient"`
}

// ForecastInsight is the fitted trend direction.
type ForecastInsight struct {
	Direction TrendDirection `json:"direction"`
	Slope     float64        `json:"slope"`
}

// Insights is the narrator's full output for one dashboard view. Pointer
// sections are omitted when their computation was unavailable.
type Insights struct {
	Trend       *TrendInsight       `json:"trend,omitempty"`
	Momentum    *MomentumInsight    `json:"momentum,omitempty"`
	Volatility  *VolatilityInsight  `json:"volatility,omitempty"`
	Bands       *BandInsight        `json:"bands,omitempty"`
	Correlation *CorrelationInsight `json:"correlation,omitempty"`
	Forecast    *ForecastInsight    `json:"forecast,omitempty"`
}
