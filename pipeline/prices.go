package pipeline

import (
	"fmt"

	d "github.com/invertedv/housing/frame"
	m "github.com/invertedv/housing/frame/mem"
	"go.uber.org/zap"
)

// PriceMonthLayout is the layout of the month headers in the home-price file.
const PriceMonthLayout = "2006-01"

// LoadPrices reads the wide home-price file. Its first row is Month followed by the months;
// each later row is a county followed by its prices. The table is transposed so months are
// rows, the first row becomes the header and the last footerRows rows are dropped. The
// result has a month column and one <Key>_houseprice column per county, sorted by month.
func LoadPrices(fileName string, footerRows int, logger *zap.Logger) (*m.DF, error) {
	if footerRows < 0 {
		return nil, fmt.Errorf("negative footer rows: %d", footerRows)
	}

	var (
		f    *d.Files
		grid [][]string
		e    error
	)

	if f, e = d.NewFiles(d.FileNA("")); e != nil {
		return nil, e
	}

	if e = f.Open(fileName); e != nil {
		return nil, fmt.Errorf("home prices: %w", e)
	}
	defer func() { _ = f.Close() }()

	if grid, e = f.ReadGrid(); e != nil {
		return nil, fmt.Errorf("home prices: %w", e)
	}

	grid = d.Transpose(grid)
	if len(grid)-footerRows < 2 {
		return nil, fmt.Errorf("home prices %s: no month rows after dropping %d footer rows", fileName, footerRows)
	}
	grid = grid[:len(grid)-footerRows]

	// keep the month column and every county column with a name
	var keep []int
	header := []string{ColMonth}
	for c := 1; c < len(grid[0]); c++ {
		nm := d.SafeName(grid[0][c])
		if nm == "" {
			logger.Debug("dropping unnamed price column", zap.Int("column", c))
			continue
		}

		keep = append(keep, c)
		header = append(header, nm+priceSuffix)
	}

	trimmed := [][]string{header}
	for _, row := range grid[1:] {
		r := []string{row[0]}
		for _, c := range keep {
			r = append(r, row[c])
		}

		trimmed = append(trimmed, r)
	}

	var df *m.DF
	if df, e = m.GridLoad(trimmed); e != nil {
		return nil, fmt.Errorf("home prices %s: %w", fileName, e)
	}

	if e = toMonth(df, PriceMonthLayout); e != nil {
		return nil, fmt.Errorf("home prices %s: %w", fileName, e)
	}

	for _, nm := range header[1:] {
		var bad int
		if bad, e = toFloat(df, nm, f.IsNA); e != nil {
			return nil, fmt.Errorf("home prices %s: %w", fileName, e)
		}

		if bad > 0 {
			logger.Warn("unparseable prices set to missing", zap.String("column", nm), zap.Int("count", bad))
		}
	}

	if e = df.Sort(true, ColMonth); e != nil {
		return nil, e
	}

	logger.Info("loaded home prices", zap.String("file", fileName),
		zap.Int("months", df.RowCount()), zap.Int("counties", len(header)-1))

	return df, nil
}

// PriceFor returns the month and houseprice columns of county c from the wide price table.
func PriceFor(prices *m.DF, c County) (*m.DF, error) {
	var (
		sub *m.DF
		e   error
	)

	if sub, e = prices.KeepColumns(ColMonth, c.PriceColumn()); e != nil {
		return nil, fmt.Errorf("county %s: %w", c.Name, e)
	}

	// KeepColumns shares columns with prices
	sub = sub.Copy()
	if e = sub.Rename(c.PriceColumn(), ColPrice); e != nil {
		return nil, e
	}

	return sub, nil
}

// ***************** Helpers *****************

// toMonth replaces the string month column of df with dates. With a layout the strings must
// match it exactly, otherwise the frame date formats are tried.
func toMonth(df *m.DF, layout string) error {
	var (
		c   *m.Col
		raw []string
		v   *d.Vector
		e   error
	)

	if c, e = df.Col(ColMonth); e != nil {
		return e
	}

	if raw, e = c.AsString(); e != nil {
		return e
	}

	if layout != "" {
		v, e = d.ParseDates(raw, layout)
	} else {
		v, _, e = d.ParseVector(raw, d.DTdate, nil)
	}

	if e != nil {
		return fmt.Errorf("month: %w", e)
	}

	return replace(df, ColMonth, v)
}

// toFloat coerces a string column of df to float. Missing and unparseable values are NaN.
func toFloat(df *m.DF, colName string, isNA func(string) bool) (bad int, err error) {
	var (
		c   *m.Col
		raw []string
		v   *d.Vector
	)

	if c, err = df.Col(colName); err != nil {
		return 0, err
	}

	if raw, err = c.AsString(); err != nil {
		return 0, err
	}

	if v, bad, err = d.ParseVector(raw, d.DTfloat, isNA); err != nil {
		return 0, err
	}

	return bad, replace(df, colName, v)
}

func replace(df *m.DF, colName string, v *d.Vector) error {
	var (
		col *m.Col
		e   error
	)

	if col, e = m.NewCol(v, v.VectorType(), d.ColName(colName)); e != nil {
		return e
	}

	return df.AppendColumn(col, true)
}
