package pipeline

import (
	"fmt"

	d "github.com/invertedv/housing/frame"
	m "github.com/invertedv/housing/frame/mem"
)

var palette = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f"}

// PlotRatio writes an HTML chart of housing_MHI_ratio by month, one line per county.
func PlotRatio(merged *m.DF, counties []County, fileName string) error {
	plt := d.NewPlot(d.WithTitle("Home price to median household income"),
		d.WithAxisTitles(ColMonth, ColRatio), d.WithSize(1200, 600))

	for ind, c := range counties {
		var (
			sub *m.DF
			e   error
		)

		name := c.Name
		if sub, e = merged.Where(ColCounty, func(x any) bool { return x.(string) == name }); e != nil {
			return e
		}

		if sub.RowCount() == 0 {
			continue
		}

		if e = plt.PlotSeries(sub.Column(ColMonth), sub.Column(ColRatio), c.Name, palette[ind%len(palette)]); e != nil {
			return fmt.Errorf("plot %s: %w", c.Name, e)
		}
	}

	return plt.Save(fileName)
}
