package repository

import (
	"time"

	"TradeView/internal/domain/models"
)

// Timeframe is the user-selectable view range.
type Timeframe string

const (
	TF1M  Timeframe = "1M"
	TF3M  Timeframe = "3M"
	TF6M  Timeframe = "6M"
	TFYTD Timeframe = "YTD"
	TF1Y  Timeframe = "1Y"
	TF3Y  Timeframe = "3Y"
	TF5Y  Timeframe = "5Y"
	TFMax Timeframe = "Max"
)

// maxStart is the floor for the "Max" timeframe.
var maxStart = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// IsValidTimeframe returns true if tf is a supported timeframe.
func IsValidTimeframe(tf Timeframe) bool {
	switch tf {
	case TF1M, TF3M, TF6M, TFYTD, TF1Y, TF3Y, TF5Y, TFMax:
		return true
	default:
		return false
	}
}

// DefaultTimeframe returns the default timeframe.
func DefaultTimeframe() Timeframe { return TF1Y }

// NormalizeTimeframe converts a raw string to a valid timeframe (or default).
func NormalizeTimeframe(s string) Timeframe {
	if s == "" {
		return DefaultTimeframe()
	}
	tf := Timeframe(s)
	if IsValidTimeframe(tf) {
		return tf
	}
	return DefaultTimeframe()
}

// ResolveWindow maps a timeframe selection to a view window ending at now.
// A positive days value overrides the enumerated timeframe.
func ResolveWindow(tf Timeframe, days int, now time.Time) models.ViewWindow {
	end := now.UTC()
	if days > 0 {
		return models.ViewWindow{Start: end.AddDate(0, 0, -days), End: end}
	}
	var start time.Time
	switch tf {
	case TF1M:
		start = end.AddDate(0, 0, -30)
	case TF3M:
		start = end.AddDate(0, 0, -90)
	case TF6M:
		start = end.AddDate(0, 0, -180)
	case TFYTD:
		start = time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	case TF1Y:
		start = end.AddDate(0, 0, -365)
	case TF3Y:
		start = end.AddDate(0, 0, -3*365)
	case TF5Y:
		start = end.AddDate(0, 0, -5*365)
	default:
		start = maxStart
	}
	return models.ViewWindow{Start: start, End: end}
}

// ComputationStart widens the fetch range so rolling indicators are valid
// from the view start onward.
func ComputationStart(vw models.ViewWindow, lookbackDays int) time.Time {
	return vw.Start.AddDate(0, 0, -lookbackDays)
}
