package market

import (
	"fmt"
	"sort"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"

	"StockWatch/internal/model"
)

// bars abstracts the piquette chart iterator so tests can stub it.
type bars interface {
	Next() bool
	Bar() *finance.ChartBar
	Err() error
}

// YahooSource implements Source using the Yahoo Finance public API
// through piquette/finance-go.
type YahooSource struct {
	opts     Options
	getQuote func(symbol string) (*finance.Quote, error)
	getChart func(p *chart.Params) bars
}

// NewYahooSource creates a Yahoo Finance source.
func NewYahooSource(opts Options) *YahooSource {
	if opts.SymbolMap == nil {
		opts.SymbolMap = map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		}
	}
	return &YahooSource{
		opts:     opts,
		getQuote: quote.Get,
		getChart: func(p *chart.Params) bars { return chart.Get(p) },
	}
}

func (s *YahooSource) Name() string { return "yahoo" }

func (s *YahooSource) symbol(symbol string) string {
	if mapped, ok := s.opts.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// Lookup reports whether the symbol has a live regular market price.
func (s *YahooSource) Lookup(symbol string) (TickerStatus, error) {
	q, err := s.getQuote(s.symbol(symbol))
	if err != nil {
		return TickerNotFound, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if q == nil || q.RegularMarketPrice == 0 {
		return TickerNotFound, nil
	}
	return TickerValid, nil
}

func (s *YahooSource) fetchDaily(symbol string, r model.DateRange) ([]*finance.ChartBar, error) {
	start, end := r.Start, r.End
	iter := s.getChart(&chart.Params{
		Symbol:   s.symbol(symbol),
		Interval: datetime.OneDay,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
	})

	var out []*finance.ChartBar
	for iter.Next() {
		out = append(out, iter.Bar())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out, nil
}

// FetchCloses returns daily closes in the range, ascending, duplicates and
// null bars (holiday padding) dropped.
func (s *YahooSource) FetchCloses(symbol string, r model.DateRange) (model.PriceSeries, error) {
	chartBars, err := s.fetchDaily(symbol, r)
	if err != nil {
		return model.PriceSeries{}, err
	}

	series := model.PriceSeries{Ticker: symbol}
	var last time.Time
	for _, b := range chartBars {
		c := b.Close
		if s.opts.AdjustedClose {
			c = b.AdjClose
		}
		if c.IsZero() {
			continue
		}
		day := tradingDay(b.Timestamp)
		if !last.IsZero() && !day.After(last) {
			continue
		}
		last = day
		series.Points = append(series.Points, model.PricePoint{
			Date:  day,
			Close: c.InexactFloat64(),
		})
	}
	return series, nil
}

// FetchVolumes returns daily share volumes in the range, ascending.
func (s *YahooSource) FetchVolumes(symbol string, r model.DateRange) (model.VolumeSeries, error) {
	chartBars, err := s.fetchDaily(symbol, r)
	if err != nil {
		return model.VolumeSeries{}, err
	}

	series := model.VolumeSeries{Ticker: symbol}
	var last time.Time
	for _, b := range chartBars {
		if b.Close.IsZero() {
			continue
		}
		day := tradingDay(b.Timestamp)
		if !last.IsZero() && !day.After(last) {
			continue
		}
		last = day
		series.Points = append(series.Points, model.VolumePoint{
			Date:   day,
			Volume: int64(b.Volume),
		})
	}
	return series, nil
}

// tradingDay truncates a bar timestamp to its UTC calendar date.
func tradingDay(ts int) time.Time {
	t := time.Unix(int64(ts), 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
