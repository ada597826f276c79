package render

import (
	"fmt"
	"strings"

	"StockWatch/internal/model"
)

// PercentTable formats percent-change series as a console table, one block
// per ticker in input order.
func PercentTable(series []model.PercentChangeSeries) string {
	var b strings.Builder
	for i, s := range series {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s  Price Change Percentage(%%)\n", s.Ticker))
		for _, p := range s.Points {
			b.WriteString(fmt.Sprintf("  %s  %+9.4f\n", p.Date.Format("2006-01-02"), p.Percent))
		}
	}
	return b.String()
}

// VolumeTable formats a volume-change series as a console table.
func VolumeTable(s model.VolumeChangeSeries) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  Volume  Volume Change\n", s.Ticker))
	for _, p := range s.Points {
		b.WriteString(fmt.Sprintf("  %s  %12d  %s\n", p.Date.Format("2006-01-02"), p.Volume, p.Change))
	}
	return b.String()
}
