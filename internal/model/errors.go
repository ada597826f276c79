package model

import "errors"

// Error taxonomy for the public operations. All are surfaced to the caller
// before any further work happens; none is retried. Match with errors.Is.
var (
	// ErrInvalidTicker means the ticker does not resolve to a live market quote.
	ErrInvalidTicker = errors.New("invalid stock ticker")

	// ErrInvalidDateFormat means a date argument does not parse as YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidDateRange means the end date precedes the start date.
	ErrInvalidDateRange = errors.New("end date precedes start date")

	// ErrInvalidInputType means a ticker argument is empty or not a plausible
	// symbol string.
	ErrInvalidInputType = errors.New("ticker must be a symbol string")

	// ErrInvalidClassification means a volume-change label fell outside the
	// allowed set. Unreachable through the classifier, kept as an invariant.
	ErrInvalidClassification = errors.New("volume change label outside allowed set")

	// ErrNoData means a fetch yielded an empty series where data is required.
	ErrNoData = errors.New("no market data for range")
)
