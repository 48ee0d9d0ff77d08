package models

import "time"

// PriceBar is one daily OHLCV record keyed on a calendar date
// (midnight UTC, no time-of-day).
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// PriceSeries is an ordered daily series for one symbol. Dates are strictly
// increasing and unique. Transformations return new series; a series is never
// mutated after creation.
type PriceSeries struct {
	Symbol string     `json:"symbol"`
	Bars   []PriceBar `json:"bars"`
}

// Len returns the number of bars.
func (s PriceSeries) Len() int { return len(s.Bars) }

// Closes extracts the close column.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

// Last returns the final bar and false when the series is empty.
func (s PriceSeries) Last() (PriceBar, bool) {
	if len(s.Bars) == 0 {
		return PriceBar{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}

// ViewWindow is the user-visible date range. The wider computation window
// (view start minus the lookback buffer) is derived from it at fetch time so
// rolling indicators are already valid at Start.
type ViewWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Quote is the dashboard's price card: last close, delta against the previous
// close, and last volume.
type Quote struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
	Volume int64   `json:"volume"`
}
