package analytics

import (
	"fmt"

	"TradeView/internal/domain/models"
)

const (
	// minForecastBars keeps "not enough points" distinguishable from a
	// valid flat trend.
	minForecastBars = 10

	forecastHorizonDays = 30
)

// FitTrend fits an ordinary-least-squares line to (bar index, close) pairs
// and projects it 30 calendar days past the last bar. Bars map to integer
// x-coordinates 0..n-1 so weekend gaps do not distort the slope; the
// projection keeps counting integers while dates advance by calendar days.
func FitTrend(series models.PriceSeries) (models.ForecastResult, error) {
	n := series.Len()
	if n < minForecastBars {
		return models.ForecastResult{}, fmt.Errorf("forecast %s: %d bars: %w",
			series.Symbol, n, models.ErrInsufficientData)
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, b := range series.Bars {
		x := float64(i)
		sumX += x
		sumY += b.Close
		sumXY += x * b.Close
		sumXX += x * x
	}
	fn := float64(n)
	slope := (fn*sumXY - sumX*sumY) / (fn*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / fn

	last := series.Bars[n-1].Date
	points := make([]models.ForecastPoint, 0, forecastHorizonDays)
	for i := 0; i < forecastHorizonDays; i++ {
		x := float64(n + i)
		points = append(points, models.ForecastPoint{
			Date:  last.AddDate(0, 0, i+1),
			Close: slope*x + intercept,
		})
	}
	return models.ForecastResult{
		Symbol:    series.Symbol,
		Slope:     slope,
		Intercept: intercept,
		Points:    points,
	}, nil
}
