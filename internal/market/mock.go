package market

import (
	"time"

	"StockWatch/internal/model"
)

// MockSource returns controllable fixed data for development and testing.
type MockSource struct {
	ValidTickers map[string]bool // nil means every symbol resolves
	Closes       map[string][]model.PricePoint
	Volumes      map[string][]model.VolumePoint
	LookupErr    error
	FetchErr     error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Lookup(symbol string) (TickerStatus, error) {
	if m.LookupErr != nil {
		return TickerNotFound, m.LookupErr
	}
	if m.ValidTickers == nil || m.ValidTickers[symbol] {
		return TickerValid, nil
	}
	return TickerNotFound, nil
}

func (m *MockSource) FetchCloses(symbol string, r model.DateRange) (model.PriceSeries, error) {
	if m.FetchErr != nil {
		return model.PriceSeries{}, m.FetchErr
	}
	if pts, ok := m.Closes[symbol]; ok {
		return model.PriceSeries{Ticker: symbol, Points: pts}, nil
	}
	return model.PriceSeries{Ticker: symbol, Points: generateMockCloses(r)}, nil
}

func (m *MockSource) FetchVolumes(symbol string, r model.DateRange) (model.VolumeSeries, error) {
	if m.FetchErr != nil {
		return model.VolumeSeries{}, m.FetchErr
	}
	if pts, ok := m.Volumes[symbol]; ok {
		return model.VolumeSeries{Ticker: symbol, Points: pts}, nil
	}
	return model.VolumeSeries{Ticker: symbol, Points: generateMockVolumes(r)}, nil
}

func generateMockCloses(r model.DateRange) []model.PricePoint {
	var pts []model.PricePoint
	i := 0
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		pts = append(pts, model.PricePoint{Date: d, Close: 100 * (1 + float64(i)*0.01)})
		i++
	}
	return pts
}

// mockVolumeCycle produces a mix of Increase, Decrease and Undefined labels.
var mockVolumeCycle = []int64{1_000_000, 1_200_000, 1_100_000, 1_100_000}

func generateMockVolumes(r model.DateRange) []model.VolumePoint {
	var pts []model.VolumePoint
	i := 0
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		pts = append(pts, model.VolumePoint{Date: d, Volume: mockVolumeCycle[i%len(mockVolumeCycle)]})
		i++
	}
	return pts
}
