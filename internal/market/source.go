package market

import "StockWatch/internal/model"

// TickerStatus is the outcome of a ticker capability lookup. A provider
// failure is reported through the error return of Lookup, never as a status.
type TickerStatus int

const (
	TickerNotFound TickerStatus = iota
	TickerValid
)

// Source resolves tickers and fetches historical daily data.
type Source interface {
	// Lookup reports whether the symbol currently has a tradable market quote.
	Lookup(symbol string) (TickerStatus, error)
	// FetchCloses returns daily close prices for the range, dates ascending.
	FetchCloses(symbol string, r model.DateRange) (model.PriceSeries, error)
	// FetchVolumes returns daily share volumes for the range, dates ascending.
	FetchVolumes(symbol string, r model.DateRange) (model.VolumeSeries, error)
	Name() string
}

// Options configures a source at construction time. Sources hold no mutable
// state after construction.
type Options struct {
	// AdjustedClose selects split/dividend adjusted closes instead of raw ones.
	AdjustedClose bool
	// SymbolMap maps friendly names to provider symbols, e.g. SP500 -> ^GSPC.
	SymbolMap map[string]string
}
