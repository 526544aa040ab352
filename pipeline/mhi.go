package pipeline

import (
	"fmt"

	d "github.com/invertedv/housing/frame"
	m "github.com/invertedv/housing/frame/mem"
	"go.uber.org/zap"
)

// LoadMHI reads one county's MHI file and returns it on a monthly calendar with columns
// month, MHI and county. Values equal to missing, and values that do not parse, are NaN
// until interpolation fills them.
func LoadMHI(fileName string, c County, missing string, logger *zap.Logger) (*m.DF, error) {
	var (
		f    *d.Files
		grid [][]string
		e    error
	)

	if f, e = d.NewFiles(d.FileNA(missing)); e != nil {
		return nil, e
	}

	if e = f.Open(fileName); e != nil {
		return nil, fmt.Errorf("MHI %s: %w", c.Name, e)
	}
	defer func() { _ = f.Close() }()

	if grid, e = f.ReadGrid(); e != nil {
		return nil, fmt.Errorf("MHI %s: %w", c.Name, e)
	}

	for r, row := range grid {
		if len(row) != 2 {
			return nil, fmt.Errorf("MHI %s: row %d has %d fields, want 2", fileName, r, len(row))
		}
	}

	if len(grid) < 2 {
		return nil, fmt.Errorf("MHI %s: no data rows", fileName)
	}

	// the file's own header is replaced
	grid[0] = []string{ColMonth, ColMHI}

	var df *m.DF
	if df, e = m.GridLoad(grid); e != nil {
		return nil, fmt.Errorf("MHI %s: %w", fileName, e)
	}

	if e = toMonth(df, ""); e != nil {
		return nil, fmt.Errorf("MHI %s: %w", fileName, e)
	}

	var bad int
	if bad, e = toFloat(df, ColMHI, f.IsNA); e != nil {
		return nil, fmt.Errorf("MHI %s: %w", fileName, e)
	}

	if bad > 0 {
		logger.Warn("unparseable MHI values set to missing", zap.String("county", c.Name), zap.Int("count", bad))
	}

	if df, e = Normalize(df); e != nil {
		return nil, fmt.Errorf("MHI %s: %w", fileName, e)
	}

	var (
		rep    *d.Vector
		county *m.Col
	)
	if rep, e = d.Repeat(c.Name, df.RowCount()); e != nil {
		return nil, e
	}

	if county, e = m.NewCol(rep, d.DTstring, d.ColName(ColCounty)); e != nil {
		return nil, e
	}

	if e = df.AppendColumn(county, false); e != nil {
		return nil, e
	}

	logger.Info("loaded MHI", zap.String("county", c.Name), zap.String("file", fileName),
		zap.Int("observations", len(grid)-1), zap.Int("months", df.RowCount()))

	return df, nil
}

// Normalize sorts an MHI table by month, resamples it to month starts and fills the gaps
// in MHI by linear interpolation.
func Normalize(df *m.DF) (*m.DF, error) {
	var (
		out *m.DF
		e   error
	)

	if e = df.Sort(true, ColMonth); e != nil {
		return nil, e
	}

	if out, e = df.ResampleMonthly(ColMonth); e != nil {
		return nil, e
	}

	if e = out.Interpolate(ColMHI); e != nil {
		return nil, e
	}

	return out, nil
}
