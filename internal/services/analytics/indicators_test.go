package analytics

import (
	"errors"
	"math"
	"testing"
	"time"

	"TradeView/internal/domain/models"
)

func daySeries(symbol string, closes []float64) models.PriceSeries {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]models.PriceBar, len(closes))
	for i, c := range closes {
		bars[i] = models.PriceBar{
			Date: base.AddDate(0, 0, i),
			Open: c, High: c, Low: c, Close: c,
			Volume: 1000,
		}
	}
	return models.PriceSeries{Symbol: symbol, Bars: bars}
}

func TestSMAWindowExactness(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	sma := SMA(closes, 50)
	for i := 0; i < 49; i++ {
		if sma[i] != nil {
			t.Fatalf("position %d: expected nil during warm-up, got %v", i, *sma[i])
		}
	}
	for i := 49; i < len(closes); i++ {
		if sma[i] == nil {
			t.Fatalf("position %d: expected value", i)
		}
		// mean of an arithmetic run is the midpoint
		want := (closes[i-49] + closes[i]) / 2
		if math.Abs(*sma[i]-want) > 1e-9 {
			t.Errorf("position %d: got %v want %v", i, *sma[i], want)
		}
	}
}

func TestRSIBounds(t *testing.T) {
	closes := make([]float64, 100)
	for i := range closes {
		closes[i] = 50 + 10*math.Sin(float64(i)/3) + float64(i%7)
	}
	rsi := RSI(closes, 14)
	for i := 0; i < 14; i++ {
		if rsi[i] != nil {
			t.Fatalf("position %d: expected nil during warm-up", i)
		}
	}
	for i := 14; i < len(closes); i++ {
		if rsi[i] == nil {
			t.Fatalf("position %d: expected value", i)
		}
		if *rsi[i] < 0 || *rsi[i] > 100 {
			t.Errorf("position %d: RSI %v out of [0,100]", i, *rsi[i])
		}
	}
}

func TestRSIZeroLossesIsExactly100(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rsi := RSI(closes, 14)
	for i := 14; i < len(closes); i++ {
		if rsi[i] == nil || *rsi[i] != 100 {
			t.Fatalf("position %d: expected exactly 100, got %v", i, rsi[i])
		}
	}
}

func TestBollingerUpperNeverBelowLower(t *testing.T) {
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 200 + 30*math.Cos(float64(i)/5)
	}
	upper, lower := BollingerBands(closes, 20, 2.0)
	for i := range closes {
		if (upper[i] == nil) != (lower[i] == nil) {
			t.Fatalf("position %d: bands disagree on availability", i)
		}
		if upper[i] != nil && *upper[i] < *lower[i] {
			t.Errorf("position %d: upper %v below lower %v", i, *upper[i], *lower[i])
		}
	}
}

func TestRollingStdMatchesSampleFormula(t *testing.T) {
	closes := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	std := RollingStd(closes, len(closes))
	got := std[len(closes)-1]
	if got == nil {
		t.Fatal("expected value at final position")
	}
	// sample std of the whole slice: variance 32/7
	want := math.Sqrt(32.0 / 7.0)
	if math.Abs(*got-want) > 1e-9 {
		t.Errorf("got %v want %v", *got, want)
	}
}

func TestVolatilityScaleInvariance(t *testing.T) {
	closes := []float64{100, 103, 101, 105, 104, 108, 102, 110}
	scaled := make([]float64, len(closes))
	for i, c := range closes {
		scaled[i] = c * 3.5
	}
	v1, ok1 := AnnualizedVolatility(closes)
	v2, ok2 := AnnualizedVolatility(scaled)
	if !ok1 || !ok2 {
		t.Fatal("expected volatility to be defined")
	}
	if math.Abs(v1-v2) > 1e-9 {
		t.Errorf("scaling changed volatility: %v vs %v", v1, v2)
	}
}

func TestVolatilityDegenerateInputs(t *testing.T) {
	if _, ok := AnnualizedVolatility(nil); ok {
		t.Error("empty series: expected unavailable")
	}
	if _, ok := AnnualizedVolatility([]float64{42}); ok {
		t.Error("single bar: expected unavailable, not a fault")
	}
	if _, ok := AnnualizedVolatility([]float64{42, 43}); ok {
		t.Error("single return: expected unavailable")
	}
}

func TestFlatShortSeriesScenario(t *testing.T) {
	closes := []float64{10, 10, 10, 10, 10}
	sma := SMA(closes, 50)
	for i := range sma {
		if sma[i] != nil {
			t.Fatalf("SMA_50 should be nil with 5 bars")
		}
	}
	rsi := RSI(closes, 14)
	for i := range rsi {
		if rsi[i] != nil {
			t.Fatalf("RSI_14 should be nil with 5 bars")
		}
	}
	vol, ok := AnnualizedVolatility(closes)
	if !ok || vol != 0 {
		t.Errorf("flat series: expected volatility 0, got %v (ok=%v)", vol, ok)
	}
}

func TestComputeIndicatorsEmptySeries(t *testing.T) {
	_, err := ComputeIndicators(models.PriceSeries{Symbol: "AAPL"})
	if !errors.Is(err, models.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestComputeIndicatorsAlignment(t *testing.T) {
	closes := make([]float64, 250)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	set, err := ComputeIndicators(daySeries("AAPL", closes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, col := range set.Columns() {
		if len(col.Values) != len(closes) {
			t.Errorf("%s: length %d, want %d", col.Name, len(col.Values), len(closes))
		}
	}
	if set.SMA200[198] != nil {
		t.Error("SMA_200 defined before 200 bars")
	}
	if set.SMA200[199] == nil {
		t.Error("SMA_200 missing at bar 200")
	}
}
