package analyzer

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/rs/zerolog"

	"StockWatch/internal/calculator"
	"StockWatch/internal/chart"
	"StockWatch/internal/market"
	"StockWatch/internal/model"
	"StockWatch/internal/validate"
)

// Analyzer runs the public operations: validate arguments, fetch from the
// market source, transform, and optionally build a chart. Each call owns
// its series and discards them; there is no state across calls.
type Analyzer struct {
	src market.Source
	log zerolog.Logger
}

// New creates an Analyzer over the given market source.
func New(src market.Source, log zerolog.Logger) *Analyzer {
	return &Analyzer{src: src, log: log}
}

// lookupAll verifies every ticker resolves to a live quote. A NotFound
// status becomes ErrInvalidTicker; provider failures propagate as-is.
func (a *Analyzer) lookupAll(tickers []string) error {
	for _, t := range tickers {
		status, err := a.src.Lookup(t)
		if err != nil {
			return fmt.Errorf("lookup %s: %w", t, err)
		}
		if status != market.TickerValid {
			return fmt.Errorf("%q: %w", t, model.ErrInvalidTicker)
		}
	}
	return nil
}

// PercentChange computes a percent-change series per ticker, rebased to the
// first trading day in range. Output order matches input order.
func (a *Analyzer) PercentChange(tickers []string, start, end string) ([]model.PercentChangeSeries, error) {
	r, err := validate.Check(validate.Args{Tickers: tickers, Start: start, End: end})
	if err != nil {
		return nil, err
	}
	if err := a.lookupAll(tickers); err != nil {
		return nil, err
	}

	out := make([]model.PercentChangeSeries, 0, len(tickers))
	for _, t := range tickers {
		prices, err := a.src.FetchCloses(t, r)
		if err != nil {
			return nil, fmt.Errorf("fetch closes %s: %w", t, err)
		}
		a.log.Debug().Str("ticker", t).Int("days", len(prices.Points)).Msg("fetched closes")

		series, err := calculator.PercentChange(prices)
		if err != nil {
			return nil, err
		}
		out = append(out, series)
	}
	return out, nil
}

// VolumeChange computes the day-over-day volume direction series.
func (a *Analyzer) VolumeChange(ticker, start, end string) (model.VolumeChangeSeries, error) {
	r, err := validate.Check(validate.Args{Tickers: []string{ticker}, Start: start, End: end})
	if err != nil {
		return model.VolumeChangeSeries{}, err
	}
	if err := a.lookupAll([]string{ticker}); err != nil {
		return model.VolumeChangeSeries{}, err
	}

	volumes, err := a.src.FetchVolumes(ticker, r)
	if err != nil {
		return model.VolumeChangeSeries{}, fmt.Errorf("fetch volumes %s: %w", ticker, err)
	}
	a.log.Debug().Str("ticker", ticker).Int("days", len(volumes.Points)).Msg("fetched volumes")

	return calculator.VolumeChange(volumes)
}

// ProfitChart compares a stock against a benchmark: both percent-change
// series are computed independently, inner-joined on date, and rendered as
// a dual-series line chart (stock red, benchmark blue). An empty series on
// either side fails with ErrNoData rather than proceeding on a partial
// table.
func (a *Analyzer) ProfitChart(stock, start, end, benchmark string) (*charts.Line, error) {
	series, err := a.PercentChange([]string{stock, benchmark}, start, end)
	if err != nil {
		return nil, err
	}

	cmp := calculator.JoinProfit(series[0], series[1])
	a.log.Debug().
		Str("stock", stock).
		Str("benchmark", benchmark).
		Int("rows", len(cmp.Rows)).
		Msg("joined profit series")
	return chart.Profit(cmp), nil
}

// VolumeChart renders the volume direction series as overlaid bars (green
// increase, red decrease) directly to w.
func (a *Analyzer) VolumeChart(ticker, start, end string, w io.Writer) error {
	series, err := a.VolumeChange(ticker, start, end)
	if err != nil {
		return err
	}
	return chart.Volume(series).Render(w)
}
