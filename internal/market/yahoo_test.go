package market

import (
	"errors"
	"testing"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/shopspring/decimal"

	"StockWatch/internal/model"
)

type stubBars struct {
	bars []*finance.ChartBar
	err  error
	idx  int
}

func (s *stubBars) Next() bool {
	if s.err != nil || s.idx >= len(s.bars) {
		return false
	}
	s.idx++
	return true
}

func (s *stubBars) Bar() *finance.ChartBar { return s.bars[s.idx-1] }
func (s *stubBars) Err() error             { return s.err }

func barAt(day, hour int, close, adjClose float64, volume int) *finance.ChartBar {
	return &finance.ChartBar{
		Close:     decimal.NewFromFloat(close),
		AdjClose:  decimal.NewFromFloat(adjClose),
		Volume:    volume,
		Timestamp: int(time.Date(2020, 1, day, hour, 30, 0, 0, time.UTC).Unix()),
	}
}

func bar(day int, close, adjClose float64, volume int) *finance.ChartBar {
	return barAt(day, 14, close, adjClose, volume)
}

func testRange() model.DateRange {
	return model.DateRange{
		Start: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestLookup_Status(t *testing.T) {
	s := NewYahooSource(Options{})

	s.getQuote = func(string) (*finance.Quote, error) {
		return &finance.Quote{RegularMarketPrice: 123.45}, nil
	}
	if status, err := s.Lookup("AAPL"); err != nil || status != TickerValid {
		t.Errorf("live quote: expected TickerValid, got %v %v", status, err)
	}

	s.getQuote = func(string) (*finance.Quote, error) {
		return &finance.Quote{}, nil
	}
	if status, err := s.Lookup("ZZZZINVALID"); err != nil || status != TickerNotFound {
		t.Errorf("zero price: expected TickerNotFound, got %v %v", status, err)
	}

	wantErr := errors.New("tls handshake failure")
	s.getQuote = func(string) (*finance.Quote, error) {
		return nil, wantErr
	}
	if _, err := s.Lookup("AAPL"); !errors.Is(err, wantErr) {
		t.Errorf("provider failure must propagate, got %v", err)
	}
}

func TestLookup_AppliesSymbolMap(t *testing.T) {
	s := NewYahooSource(Options{})
	var asked string
	s.getQuote = func(symbol string) (*finance.Quote, error) {
		asked = symbol
		return &finance.Quote{RegularMarketPrice: 1}, nil
	}
	if _, err := s.Lookup("SP500"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asked != "^GSPC" {
		t.Errorf("expected SP500 mapped to ^GSPC, got %q", asked)
	}
}

func TestFetchCloses_SortsSkipsAndDedupes(t *testing.T) {
	s := NewYahooSource(Options{})
	s.getChart = func(*chart.Params) bars {
		return &stubBars{bars: []*finance.ChartBar{
			bar(3, 103, 102, 30),
			bar(1, 101, 100, 10),
			bar(2, 0, 0, 0),          // null bar, holiday padding
			barAt(1, 20, 999, 999, 99), // same calendar day, later timestamp
		}}
	}

	series, err := s.FetchCloses("AAPL", testRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(series.Points))
	}
	if !series.Points[0].Date.Before(series.Points[1].Date) {
		t.Error("points must be date ascending")
	}
	if series.Points[0].Close != 101 || series.Points[1].Close != 103 {
		t.Errorf("unexpected closes: %+v", series.Points)
	}
}

func TestFetchCloses_AdjustedCloseOption(t *testing.T) {
	s := NewYahooSource(Options{AdjustedClose: true})
	s.getChart = func(*chart.Params) bars {
		return &stubBars{bars: []*finance.ChartBar{bar(1, 101, 95.5, 10)}}
	}

	series, err := s.FetchCloses("AAPL", testRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Points[0].Close != 95.5 {
		t.Errorf("expected adjusted close 95.5, got %v", series.Points[0].Close)
	}
}

func TestFetchVolumes(t *testing.T) {
	s := NewYahooSource(Options{})
	s.getChart = func(*chart.Params) bars {
		return &stubBars{bars: []*finance.ChartBar{
			bar(1, 101, 100, 1000),
			bar(2, 102, 101, 2000),
		}}
	}

	series, err := s.FetchVolumes("AAPL", testRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Points) != 2 || series.Points[0].Volume != 1000 || series.Points[1].Volume != 2000 {
		t.Errorf("unexpected volumes: %+v", series.Points)
	}
}

func TestFetchCloses_IteratorError(t *testing.T) {
	wantErr := errors.New("bad gateway")
	s := NewYahooSource(Options{})
	s.getChart = func(*chart.Params) bars {
		return &stubBars{err: wantErr}
	}

	if _, err := s.FetchCloses("AAPL", testRange()); !errors.Is(err, wantErr) {
		t.Errorf("iterator error must propagate, got %v", err)
	}
}
