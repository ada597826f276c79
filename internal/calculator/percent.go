package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"StockWatch/internal/model"
)

var hundred = decimal.NewFromInt(100)

// PercentChange rebases a price series to its first observation:
// Percent[i] = (Close[i] - Close[0]) / Close[0] * 100. The first row is
// always exactly zero. The rebasing is done in decimal to keep the baseline
// subtraction exact, converted to float64 once at the boundary.
func PercentChange(s model.PriceSeries) (model.PercentChangeSeries, error) {
	if len(s.Points) == 0 {
		return model.PercentChangeSeries{}, fmt.Errorf("percent change %s: %w", s.Ticker, model.ErrNoData)
	}

	base := decimal.NewFromFloat(s.Points[0].Close)
	if base.IsZero() {
		return model.PercentChangeSeries{}, fmt.Errorf("percent change %s: baseline close is zero", s.Ticker)
	}

	out := model.PercentChangeSeries{
		Ticker: s.Ticker,
		Points: make([]model.PercentPoint, len(s.Points)),
	}
	for i, p := range s.Points {
		pct := decimal.NewFromFloat(p.Close).Sub(base).Div(base).Mul(hundred)
		out.Points[i] = model.PercentPoint{Date: p.Date, Percent: pct.InexactFloat64()}
	}
	return out, nil
}
