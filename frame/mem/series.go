package mem

import (
	"fmt"
	"math"
	"time"

	d "github.com/invertedv/housing/frame"
	"gonum.org/v1/gonum/interp"
)

// ***************** Time series *****************

// ResampleMonthly puts df on a month-start calendar running from the month of the earliest
// date in dateCol to the month of the latest, inclusive. Only rows dated exactly on a month
// start are kept; other rows are dropped. Two rows on the same month start are an error.
// Months with no row are NaN in float columns and "" in string columns.
func (df *DF) ResampleMonthly(dateCol string) (*DF, error) {
	var (
		dc *Col
		e  error
	)

	if dc, e = df.Col(dateCol); e != nil {
		return nil, e
	}

	if dc.DataType() != d.DTdate {
		return nil, fmt.Errorf("ResampleMonthly: %s is %s, not DTdate", dateCol, dc.DataType())
	}

	dates, _ := dc.AsDate()
	if len(dates) == 0 {
		return nil, fmt.Errorf("ResampleMonthly: no rows")
	}

	first, last := d.MonthStart(dates[0]), d.MonthStart(dates[0])
	for _, dt := range dates {
		m := d.MonthStart(dt)
		if m.Before(first) {
			first = m
		}

		if m.After(last) {
			last = m
		}
	}

	nMonths := monthsBetween(first, last) + 1
	calendar := make([]time.Time, nMonths)
	rows := make([]int, nMonths)
	for ind := 0; ind < nMonths; ind++ {
		calendar[ind] = first.AddDate(0, ind, 0)
		rows[ind] = -1
	}

	for r, dt := range dates {
		ms := d.MonthStart(dt)
		if !dt.Equal(ms) {
			continue
		}

		m := monthsBetween(first, ms)
		if rows[m] >= 0 {
			return nil, fmt.Errorf("ResampleMonthly: duplicate date %s", ms.Format(time.DateOnly))
		}

		rows[m] = r
	}

	var cols []*Col
	for _, c := range df.cols {
		if c.Name() == dateCol {
			var cal *Col
			if cal, e = NewCol(calendar, d.DTdate, d.ColName(dateCol)); e != nil {
				return nil, e
			}

			cols = append(cols, cal)
			continue
		}

		cols = append(cols, c.Subset(rows))
	}

	return NewDFcol(df.funcs, cols)
}

// Interpolate fills NaNs in the named float columns by linear interpolation over row position.
// NaNs before the first valid value are left alone; NaNs after the last valid value take
// that value.
func (df *DF) Interpolate(colNames ...string) error {
	for _, cn := range colNames {
		var (
			c *Col
			e error
		)

		if c, e = df.Col(cn); e != nil {
			return e
		}

		if c.DataType() != d.DTfloat {
			return fmt.Errorf("Interpolate: %s is %s, not DTfloat", cn, c.DataType())
		}

		filled := c.Copy().(*Col)
		x, _ := filled.AsFloat()
		if e = fillLinear(x); e != nil {
			return fmt.Errorf("Interpolate %s: %w", cn, e)
		}

		if e = df.AppendColumn(filled, true); e != nil {
			return e
		}
	}

	return nil
}

// fillLinear fills NaNs in x in place.
func fillLinear(x []float64) error {
	var xs, ys []float64
	for ind, v := range x {
		if !math.IsNaN(v) {
			xs = append(xs, float64(ind))
			ys = append(ys, v)
		}
	}

	if len(xs) == 0 {
		return nil
	}

	firstValid, lastValid := int(xs[0]), int(xs[len(xs)-1])
	for ind := lastValid + 1; ind < len(x); ind++ {
		x[ind] = ys[len(ys)-1]
	}

	if len(xs) < 2 {
		return nil
	}

	var pl interp.PiecewiseLinear
	if e := pl.Fit(xs, ys); e != nil {
		return e
	}

	for ind := firstValid + 1; ind < lastValid; ind++ {
		if math.IsNaN(x[ind]) {
			x[ind] = pl.Predict(float64(ind))
		}
	}

	return nil
}

func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
