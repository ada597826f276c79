package model

import "time"

// DateRange is a validated inclusive trading-date window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// PricePoint is a single trading day's closing price.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds raw daily close prices for one ticker.
// Dates are strictly increasing with no duplicates.
type PriceSeries struct {
	Ticker string
	Points []PricePoint
}

// PercentPoint is a close price rebased to the first trading day, in percent.
type PercentPoint struct {
	Date    time.Time
	Percent float64
}

// PercentChangeSeries is a price series rebased to its first observation.
// Points[0].Percent is always exactly 0.
type PercentChangeSeries struct {
	Ticker string
	Points []PercentPoint
}

// VolumePoint is a single trading day's share volume.
type VolumePoint struct {
	Date   time.Time
	Volume int64
}

// VolumeSeries holds raw daily volumes for one ticker.
type VolumeSeries struct {
	Ticker string
	Points []VolumePoint
}

// VolumeChange labels the day-over-day direction of trading volume.
type VolumeChange string

const (
	ChangeIncrease  VolumeChange = "Increase"
	ChangeDecrease  VolumeChange = "Decrease"
	ChangeUndefined VolumeChange = "Undefined"
)

// VolumeChangePoint is a volume observation with its direction label.
// The first point of a series is always ChangeUndefined.
type VolumeChangePoint struct {
	Date   time.Time
	Volume int64
	Change VolumeChange
}

// VolumeChangeSeries is a volume series with day-over-day labels.
type VolumeChangeSeries struct {
	Ticker string
	Points []VolumeChangePoint
}

// ProfitRow is one date shared by both sides of a profit comparison.
type ProfitRow struct {
	Date            time.Time
	StockProfit     float64
	BenchmarkProfit float64
}

// ProfitComparison is the inner join on date of a stock's and a benchmark's
// percent-change series.
type ProfitComparison struct {
	StockTicker     string
	BenchmarkTicker string
	Rows            []ProfitRow
}
