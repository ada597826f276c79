package calculator

import (
	"testing"
	"time"

	"StockWatch/internal/model"
)

func percentSeries(ticker string, points map[int]float64, days ...int) model.PercentChangeSeries {
	s := model.PercentChangeSeries{Ticker: ticker}
	for _, d := range days {
		s.Points = append(s.Points, model.PercentPoint{Date: day(d), Percent: points[d]})
	}
	return s
}

func TestJoinProfit_OverlappingDatesOnly(t *testing.T) {
	stock := percentSeries("AAPL", map[int]float64{1: 0, 2: 1.5, 3: 2.5}, 1, 2, 3)
	bench := percentSeries("SP500", map[int]float64{2: 0, 3: -0.5, 4: 0.25}, 2, 3, 4)

	cmp := JoinProfit(stock, bench)

	if cmp.StockTicker != "AAPL" || cmp.BenchmarkTicker != "SP500" {
		t.Errorf("tickers not carried: %q %q", cmp.StockTicker, cmp.BenchmarkTicker)
	}
	wantDates := []time.Time{day(2), day(3)}
	if len(cmp.Rows) != len(wantDates) {
		t.Fatalf("expected %d rows, got %d", len(wantDates), len(cmp.Rows))
	}
	for i, d := range wantDates {
		if !cmp.Rows[i].Date.Equal(d) {
			t.Errorf("row %d: expected date %s, got %s", i, d, cmp.Rows[i].Date)
		}
	}
	if cmp.Rows[0].StockProfit != 1.5 || cmp.Rows[0].BenchmarkProfit != 0 {
		t.Errorf("row 0 values wrong: %+v", cmp.Rows[0])
	}
	if cmp.Rows[1].StockProfit != 2.5 || cmp.Rows[1].BenchmarkProfit != -0.5 {
		t.Errorf("row 1 values wrong: %+v", cmp.Rows[1])
	}
}

func TestJoinProfit_DisjointDates(t *testing.T) {
	stock := percentSeries("AAPL", map[int]float64{1: 0, 2: 1}, 1, 2)
	bench := percentSeries("SP500", map[int]float64{3: 0, 4: 1}, 3, 4)

	cmp := JoinProfit(stock, bench)
	if len(cmp.Rows) != 0 {
		t.Errorf("expected empty join, got %d rows", len(cmp.Rows))
	}
}
