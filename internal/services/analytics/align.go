package analytics

import (
	"fmt"
	"time"

	"TradeView/internal/domain/models"
)

// Align normalizes a raw provider series into its canonical calendar-day form
// and slices out the user-visible window. The canonical series keeps every bar
// in the computation window so rolling indicators are valid from the view
// start; the view series is the subsequence dated at or after vw.Start.
//
// Pure: inputs are never mutated.
func Align(raw models.PriceSeries, vw models.ViewWindow) (canonical, view models.PriceSeries, err error) {
	if len(raw.Bars) == 0 {
		return canonical, view, fmt.Errorf("align %s: %w", raw.Symbol, models.ErrInsufficientData)
	}

	bars := make([]models.PriceBar, len(raw.Bars))
	for i, b := range raw.Bars {
		b.Date = CalendarDay(b.Date)
		bars[i] = b
	}
	for i := 1; i < len(bars); i++ {
		if !bars[i].Date.After(bars[i-1].Date) {
			return canonical, view, fmt.Errorf("align %s: bar %d (%s) not after previous: %w",
				raw.Symbol, i, bars[i].Date.Format("2006-01-02"), models.ErrDataIntegrity)
		}
	}
	canonical = models.PriceSeries{Symbol: raw.Symbol, Bars: bars}

	start := CalendarDay(vw.Start)
	idx := len(bars)
	for i, b := range bars {
		if !b.Date.Before(start) {
			idx = i
			break
		}
	}
	if idx == len(bars) {
		return canonical, view, fmt.Errorf("align %s: %w", raw.Symbol, models.ErrInsufficientRange)
	}
	view = models.PriceSeries{Symbol: raw.Symbol, Bars: bars[idx:]}
	return canonical, view, nil
}

// ViewOffset returns the index in canonical where the view slice begins.
// Both arguments must come from the same Align call.
func ViewOffset(canonical, view models.PriceSeries) int {
	return len(canonical.Bars) - len(view.Bars)
}

// CalendarDay strips time-of-day and timezone so a bar keys on its date only.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
