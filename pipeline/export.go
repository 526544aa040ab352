package pipeline

import (
	"fmt"

	d "github.com/invertedv/housing/frame"
	m "github.com/invertedv/housing/frame/mem"
)

// Melt unpivots the merged table into month, county, metric, value.
func Melt(merged *m.DF) (*m.DF, error) {
	return merged.Melt([]string{ColMonth, ColCounty}, []string{ColPrice, ColMHI, ColRatio}, ColMetric, ColValue)
}

// Export writes df to fileName as CSV with a header row.
func Export(fileName string, df *m.DF) error {
	var (
		f *d.Files
		e error
	)

	if f, e = d.NewFiles(); e != nil {
		return e
	}

	if e = f.Save(fileName, df); e != nil {
		return fmt.Errorf("export %s: %w", fileName, e)
	}

	return nil
}
