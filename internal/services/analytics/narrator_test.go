package analytics

import (
	"testing"

	"TradeView/internal/domain/models"
)

func fp(v float64) *float64 { return &v }

func TestNarrateTrend(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		sma50 *float64
		want  models.TrendDirection
	}{
		{"above sma", 105, fp(100), models.TrendBullish},
		{"below sma", 95, fp(100), models.TrendBearish},
		{"at sma", 100, fp(100), models.TrendBearish},
		{"no sma yet", 100, nil, models.TrendInsufficient},
	}
	for _, tt := range tests {
		if got := NarrateTrend(tt.price, tt.sma50); got.Direction != tt.want {
			t.Errorf("%s: got %s want %s", tt.name, got.Direction, tt.want)
		}
	}
}

func TestNarrateMomentum(t *testing.T) {
	tests := []struct {
		name string
		rsi  *float64
		want models.MomentumRegime
	}{
		{"overbought", fp(70.1), models.MomentumOverbought},
		{"boundary 70 is neutral", fp(70), models.MomentumNeutral},
		{"oversold", fp(29.9), models.MomentumOversold},
		{"boundary 30 is neutral", fp(30), models.MomentumNeutral},
		{"mid-range", fp(50), models.MomentumNeutral},
		{"warming up", nil, models.MomentumUnknown},
	}
	for _, tt := range tests {
		if got := NarrateMomentum(tt.rsi); got.Regime != tt.want {
			t.Errorf("%s: got %s want %s", tt.name, got.Regime, tt.want)
		}
	}
}

func TestNarrateVolatility(t *testing.T) {
	if got := NarrateVolatility(30.5, true); got.Regime != models.VolatilityHigh {
		t.Errorf("30.5%%: got %s want high", got.Regime)
	}
	if got := NarrateVolatility(30, true); got.Regime != models.VolatilityStable {
		t.Errorf("boundary 30%%: got %s want stable", got.Regime)
	}
	if got := NarrateVolatility(0, false); got != nil {
		t.Error("unavailable volatility must not produce an insight")
	}
}

func TestNarrateBands(t *testing.T) {
	tests := []struct {
		name         string
		price        float64
		upper, lower *float64
		want         models.BandPosition
	}{
		{"touching upper", 110, fp(110), fp(90), models.BandAboveUpper},
		{"touching lower", 90, fp(110), fp(90), models.BandBelowLower},
		{"inside", 100, fp(110), fp(90), models.BandWithin},
		{"warming up", 100, nil, nil, models.BandUnknown},
	}
	for _, tt := range tests {
		if got := NarrateBands(tt.price, tt.upper, tt.lower); got.Position != tt.want {
			t.Errorf("%s: got %s want %s", tt.name, got.Position, tt.want)
		}
	}
}

func TestNarrateCorrelation(t *testing.T) {
	tests := []struct {
		r    float64
		want models.CorrelationStrength
	}{
		{0.71, models.CorrelationStrongPositive},
		{0.7, models.CorrelationWeak},
		{0, models.CorrelationWeak},
		{-0.49, models.CorrelationWeak},
		{-0.5, models.CorrelationInverse},
		{-0.9, models.CorrelationInverse},
	}
	for _, tt := range tests {
		if got := NarrateCorrelation(tt.r); got.Strength != tt.want {
			t.Errorf("r=%v: got %s want %s", tt.r, got.Strength, tt.want)
		}
	}
}

func TestNarrateForecastZeroSlopeIsBearish(t *testing.T) {
	if got := NarrateForecast(0); got.Direction != models.TrendBearish {
		t.Errorf("zero slope tie-break: got %s want bearish", got.Direction)
	}
	if got := NarrateForecast(0.001); got.Direction != models.TrendBullish {
		t.Errorf("positive slope: got %s want bullish", got.Direction)
	}
}
