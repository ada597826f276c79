package chart

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"StockWatch/internal/model"
)

const (
	stockColor     = "red"
	benchmarkColor = "blue"
)

// Profit builds a dual-series line chart of stock vs benchmark percent
// change. The stock series is red, the benchmark blue.
func Profit(cmp model.ProfitComparison) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "StockWatch"}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s vs %s", cmp.StockTicker, cmp.BenchmarkTicker),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Profit %"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	dates := make([]string, len(cmp.Rows))
	stock := make([]opts.LineData, len(cmp.Rows))
	bench := make([]opts.LineData, len(cmp.Rows))
	for i, row := range cmp.Rows {
		dates[i] = row.Date.Format("2006-01-02")
		stock[i] = opts.LineData{Value: row.StockProfit}
		bench[i] = opts.LineData{Value: row.BenchmarkProfit}
	}

	line.SetXAxis(dates).
		AddSeries(cmp.StockTicker+" profit", stock,
			charts.WithLineStyleOpts(opts.LineStyle{Color: stockColor}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: stockColor})).
		AddSeries(cmp.BenchmarkTicker+" profit", bench,
			charts.WithLineStyleOpts(opts.LineStyle{Color: benchmarkColor}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: benchmarkColor}))
	return line
}
