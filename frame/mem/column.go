package mem

import (
	"fmt"
	"math"
	"sort"

	d "github.com/invertedv/housing/frame"
	"gonum.org/v1/gonum/stat"
)

type Col struct {
	*d.Vector

	*d.ColCore
}

// ***************** Col - Create *****************

func NewCol(data any, dt d.DataTypes, opts ...d.ColOpt) (*Col, error) {
	var (
		v *d.Vector
		e error
	)

	if vx, ok := data.(*d.Vector); ok {
		v = vx
	}

	if v == nil {
		if v, e = d.NewVector(data, dt); e != nil {
			return nil, e
		}
	}

	cc, _ := d.NewColCore(v.VectorType())
	col := &Col{
		Vector:  v,
		ColCore: cc,
	}

	for _, opt := range opts {
		if ex := opt(col); ex != nil {
			return nil, ex
		}
	}

	return col, nil
}

// ***************** Col - Methods *****************

func (c *Col) AppendRows(col2 d.Column) (*Col, error) {
	return appendRows(c, col2)
}

func (c *Col) Copy() d.Column {
	col := &Col{
		Vector:  c.Vector.Copy(),
		ColCore: c.ColCore.Copy(),
	}

	return col
}

func (c *Col) Data() *d.Vector {
	return c.Vector
}

// Subset returns a new column with the same name holding the elements at rows.
func (c *Col) Subset(rows []int) *Col {
	return &Col{
		Vector:  c.Vector.Subset(rows),
		ColCore: c.ColCore.Copy(),
	}
}

// String summarizes the column. Floats get quantiles over their finite values, other types
// get a count of distinct values.
func (c *Col) String() string {
	name := c.Name()
	if name == "" {
		name = "unnamed"
	}

	t := fmt.Sprintf("column: %s\ntype: %s\n", name, c.DataType())

	if c.DataType() != d.DTfloat {
		counts := make(map[string]int)
		var keys []string
		for ind := 0; ind < c.Len(); ind++ {
			k := c.ElementString(ind)
			if _, ok := counts[k]; !ok {
				keys = append(keys, k)
			}
			counts[k]++
		}

		sort.Strings(keys)
		vals := make([]float64, len(keys))
		for ind, k := range keys {
			vals[ind] = float64(counts[k])
		}

		return t + prettyPrint([]string{name, "count"}, keys, vals)
	}

	cats, vals := c.Summary()
	header := []string{"metric", "value"}

	return t + prettyPrint(header, cats, vals)
}

// Summary returns summary statistics of the finite values of a float column.
func (c *Col) Summary() (cats []string, vals []float64) {
	cats = []string{"min", "lq", "median", "mean", "uq", "max", "n"}

	xf, _ := c.AsFloat()
	x := make([]float64, 0, len(xf))
	for _, xv := range xf {
		if math.IsNaN(xv) || math.IsInf(xv, 0) {
			continue
		}

		x = append(x, xv)
	}

	if len(x) == 0 {
		nan := math.NaN()
		return cats, []float64{nan, nan, nan, nan, nan, nan, 0}
	}

	sort.Float64s(x)
	minx := x[0]
	maxx := x[len(x)-1]
	q25 := stat.Quantile(0.25, stat.Empirical, x, nil)
	q50 := stat.Quantile(0.5, stat.Empirical, x, nil)
	q75 := stat.Quantile(0.75, stat.Empirical, x, nil)
	xbar := stat.Mean(x, nil)
	n := float64(len(x))

	return cats, []float64{minx, q25, q50, xbar, q75, maxx, n}
}

// ***************** Helpers *****************

func appendRows(col1, col2 d.Column) (*Col, error) {
	if col1.DataType() != col2.DataType() {
		return nil, fmt.Errorf("append columns must have same type, got %s and %s for %s and %s",
			col1.DataType(), col2.DataType(), col1.Name(), col2.Name())
	}

	v := col1.Data().Copy()
	if e := v.AppendVector(col2.Data()); e != nil {
		return nil, e
	}

	col := &Col{
		Vector:  v,
		ColCore: col1.Core().Copy(),
	}

	return col, nil
}
