package analytics

import (
	"fmt"
	"math"

	"TradeView/internal/domain/models"
)

// Compare aligns two canonical series on their shared trading dates inside
// the view window, normalizes both to percent change from the first common
// close, and computes the Pearson correlation of the raw close sequences,
// not of the returns.
func Compare(a, b models.PriceSeries, vw models.ViewWindow) (models.ComparisonResult, error) {
	byDate := make(map[int64]float64, len(b.Bars))
	for _, bar := range b.Bars {
		byDate[bar.Date.Unix()] = bar.Close
	}

	start := CalendarDay(vw.Start)
	res := models.ComparisonResult{SymbolA: a.Symbol, SymbolB: b.Symbol}
	var closesA, closesB []float64
	for _, bar := range a.Bars {
		if bar.Date.Before(start) {
			continue
		}
		cb, ok := byDate[bar.Date.Unix()]
		if !ok {
			continue
		}
		res.Dates = append(res.Dates, bar.Date)
		closesA = append(closesA, bar.Close)
		closesB = append(closesB, cb)
	}
	if len(res.Dates) == 0 {
		return res, fmt.Errorf("compare %s/%s: %w", a.Symbol, b.Symbol, models.ErrNoOverlap)
	}

	baseA, baseB := closesA[0], closesB[0]
	res.ReturnsA = make([]float64, len(closesA))
	res.ReturnsB = make([]float64, len(closesB))
	for i := range closesA {
		res.ReturnsA[i] = (closesA[i]/baseA - 1) * 100
		res.ReturnsB[i] = (closesB[i]/baseB - 1) * 100
	}
	res.Correlation = pearson(closesA, closesB)
	if last, ok := b.Last(); ok {
		res.LastPriceB = last.Close
	}
	return res, nil
}

// pearson returns the linear correlation coefficient, or 0 when either
// sequence has zero variance.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n < 2 {
		return 0
	}
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n
	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
