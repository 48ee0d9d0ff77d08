package models

import "errors"

// Domain error taxonomy. Failures propagate as values so each dashboard
// section can degrade independently; nothing is swallowed into a NaN.
var (
	// ErrDataUnavailable covers unknown/delisted symbols and provider
	// failures. Fatal for the whole interaction.
	ErrDataUnavailable = errors.New("market data unavailable")

	// ErrDataIntegrity marks corrupt input from the provider (duplicate or
	// unordered dates). Treated the same as ErrDataUnavailable.
	ErrDataIntegrity = errors.New("price series integrity violation")

	// ErrInsufficientRange means data was loaded but the chosen timeframe
	// holds zero bars.
	ErrInsufficientRange = errors.New("timeframe contains no data")

	// ErrInsufficientData means a specific computation lacks its minimum
	// bar count. Only that computation reports unavailable.
	ErrInsufficientData = errors.New("not enough data points")

	// ErrNoOverlap means two compared series share no trading dates in range.
	ErrNoOverlap = errors.New("no overlapping dates between series")
)
