package analytics

import (
	"fmt"
	"math"

	"TradeView/internal/domain/models"
)

// Standard windows. Every rolling computation trails the current bar; a
// centered window would leak future closes into "current" values.
const (
	smaShortWindow  = 20
	smaMidWindow    = 50
	smaLongWindow   = 200
	bollingerWindow = 20
	bollingerK      = 2.0
	rsiWindow       = 14

	tradingDaysPerYear = 252
)

// ComputeIndicators derives every indicator column for one series. Columns
// are index-aligned to the series; positions inside the warm-up prefix stay
// nil. Fails only when the series is empty.
func ComputeIndicators(series models.PriceSeries) (*models.IndicatorSet, error) {
	if series.Len() == 0 {
		return nil, fmt.Errorf("indicators %s: %w", series.Symbol, models.ErrInsufficientData)
	}
	closes := series.Closes()
	upper, lower := BollingerBands(closes, bollingerWindow, bollingerK)
	return &models.IndicatorSet{
		SMA20:   SMA(closes, smaShortWindow),
		SMA50:   SMA(closes, smaMidWindow),
		SMA200:  SMA(closes, smaLongWindow),
		BBUpper: upper,
		BBLower: lower,
		RSI14:   RSI(closes, rsiWindow),
	}, nil
}

// SMA is the trailing simple moving average. The first window-1 positions
// have no value.
func SMA(closes []float64, window int) []*float64 {
	out := make([]*float64, len(closes))
	if window < 1 || len(closes) < window {
		return out
	}
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			v := sum / float64(window)
			out[i] = &v
		}
	}
	return out
}

// RollingStd is the trailing sample standard deviation (n-1 denominator),
// null-aligned like SMA.
func RollingStd(closes []float64, window int) []*float64 {
	out := make([]*float64, len(closes))
	if window < 2 || len(closes) < window {
		return out
	}
	for i := window - 1; i < len(closes); i++ {
		win := closes[i-window+1 : i+1]
		mean := 0.0
		for _, c := range win {
			mean += c
		}
		mean /= float64(window)
		ss := 0.0
		for _, c := range win {
			d := c - mean
			ss += d * d
		}
		v := math.Sqrt(ss / float64(window-1))
		out[i] = &v
	}
	return out
}

// BollingerBands is the ±k standard-deviation envelope around the
// window-period SMA.
func BollingerBands(closes []float64, window int, k float64) (upper, lower []*float64) {
	mid := SMA(closes, window)
	std := RollingStd(closes, window)
	upper = make([]*float64, len(closes))
	lower = make([]*float64, len(closes))
	for i := range closes {
		if mid[i] == nil || std[i] == nil {
			continue
		}
		u := *mid[i] + k**std[i]
		l := *mid[i] - k**std[i]
		upper[i] = &u
		lower[i] = &l
	}
	return upper, lower
}

// RSI is the Relative Strength Index over a simple rolling mean of gains and
// losses (not Wilder smoothing). Position 0 has no delta, so the first
// window positions are nil. A trailing window with zero losses reports
// exactly 100.
func RSI(closes []float64, window int) []*float64 {
	out := make([]*float64, len(closes))
	if window < 1 || len(closes) <= window {
		return out
	}
	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}
	var gainSum, lossSum float64
	for i := 1; i < len(closes); i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > window {
			gainSum -= gains[i-window]
			lossSum -= losses[i-window]
		}
		if i < window {
			continue
		}
		avgGain := gainSum / float64(window)
		avgLoss := lossSum / float64(window)
		var rsi float64
		if avgLoss == 0 {
			rsi = 100
		} else {
			rs := avgGain / avgLoss
			rsi = 100 - 100/(1+rs)
		}
		out[i] = &rsi
	}
	return out
}

// AnnualizedVolatility is the sample standard deviation of day-over-day
// percentage returns, scaled to a yearly percent via sqrt(252). Returns
// ok=false when the series is too short to define a sample deviation.
func AnnualizedVolatility(closes []float64) (float64, bool) {
	if len(closes) < 3 {
		return 0, false
	}
	rets := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			rets = append(rets, 0)
			continue
		}
		rets = append(rets, closes[i]/closes[i-1]-1)
	}
	mean := 0.0
	for _, r := range rets {
		mean += r
	}
	mean /= float64(len(rets))
	ss := 0.0
	for _, r := range rets {
		d := r - mean
		ss += d * d
	}
	std := math.Sqrt(ss / float64(len(rets)-1))
	return std * 100 * math.Sqrt(tradingDaysPerYear), true
}
