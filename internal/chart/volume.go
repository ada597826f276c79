package chart

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"StockWatch/internal/model"
)

const (
	increaseColor = "green"
	decreaseColor = "red"
)

// Volume builds two overlaid zero-anchored bar series over the full date
// axis: green bars where volume increased, red where it decreased. Days
// belonging to the other subset carry a nil value so the bars interleave
// on a shared axis.
func Volume(s model.VolumeChangeSeries) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "StockWatch"}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s daily volume", s.Ticker),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Volume"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	dates := make([]string, len(s.Points))
	increase := make([]opts.BarData, len(s.Points))
	decrease := make([]opts.BarData, len(s.Points))
	for i, p := range s.Points {
		dates[i] = p.Date.Format("2006-01-02")
		switch p.Change {
		case model.ChangeIncrease:
			increase[i] = opts.BarData{Value: p.Volume}
		case model.ChangeDecrease:
			decrease[i] = opts.BarData{Value: p.Volume}
		}
	}

	bar.SetXAxis(dates).
		AddSeries("Volume Increase", increase,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: increaseColor})).
		AddSeries("Volume Decrease", decrease,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: decreaseColor}))
	return bar
}
