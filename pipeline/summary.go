package pipeline

import (
	"fmt"

	d "github.com/invertedv/housing/frame"
	m "github.com/invertedv/housing/frame/mem"
)

// Summary tabulates the finite housing_MHI_ratio values of the merged table by county.
func Summary(merged *m.DF, counties []County) (*m.DF, error) {
	if len(counties) == 0 {
		return nil, fmt.Errorf("no counties to summarize")
	}

	var (
		cats  []string
		names []string
		stats [][]float64
	)

	for _, c := range counties {
		var (
			sub   *m.DF
			ratio *m.Col
			e     error
		)

		name := c.Name
		if sub, e = merged.Where(ColCounty, func(x any) bool { return x.(string) == name }); e != nil {
			return nil, e
		}

		if ratio, e = sub.Col(ColRatio); e != nil {
			return nil, e
		}

		var vals []float64
		cats, vals = ratio.Summary()
		names = append(names, c.Name)
		stats = append(stats, vals)
	}

	county, e := m.NewCol(names, d.DTstring, d.ColName(ColCounty))
	if e != nil {
		return nil, e
	}

	cols := []*m.Col{county}
	for j, cat := range cats {
		x := make([]float64, len(stats))
		for ind := range stats {
			x[ind] = stats[ind][j]
		}

		var col *m.Col
		if col, e = m.NewCol(x, d.DTfloat, d.ColName(cat)); e != nil {
			return nil, e
		}

		cols = append(cols, col)
	}

	return m.NewDFcol(nil, cols)
}
