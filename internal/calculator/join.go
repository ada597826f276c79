package calculator

import "StockWatch/internal/model"

// JoinProfit inner-joins two percent-change series on date. Dates missing
// from either side are dropped. Both inputs are date-ascending, so a single
// merge pass suffices.
func JoinProfit(stock, bench model.PercentChangeSeries) model.ProfitComparison {
	cmp := model.ProfitComparison{
		StockTicker:     stock.Ticker,
		BenchmarkTicker: bench.Ticker,
	}

	i, j := 0, 0
	for i < len(stock.Points) && j < len(bench.Points) {
		sp, bp := stock.Points[i], bench.Points[j]
		switch {
		case sp.Date.Before(bp.Date):
			i++
		case bp.Date.Before(sp.Date):
			j++
		default:
			cmp.Rows = append(cmp.Rows, model.ProfitRow{
				Date:            sp.Date,
				StockProfit:     sp.Percent,
				BenchmarkProfit: bp.Percent,
			})
			i++
			j++
		}
	}
	return cmp
}
