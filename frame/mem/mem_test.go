package mem

import (
	"math"
	"strings"
	"testing"
	"time"

	d "github.com/invertedv/housing/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func month(y, m int) time.Time {
	return time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
}

func testDF() *DF {
	dt, _ := NewCol([]time.Time{month(2015, 3), month(2015, 1), month(2015, 2)}, d.DTdate, d.ColName("month"))
	x, _ := NewCol([]float64{250000, 100, 200}, d.DTfloat, d.ColName("houseprice"))
	y, _ := NewCol([]float64{62500, 0, math.NaN()}, d.DTfloat, d.ColName("MHI"))
	z, _ := NewCol([]string{"Davis", "Davis", "Weber"}, d.DTstring, d.ColName("county"))
	dfx, e := NewDFcol(StandardFunctions(), []*Col{dt, x, y, z})
	if e != nil {
		panic(e)
	}

	return dfx
}

func floats(t *testing.T, df *DF, colName string) []float64 {
	c, e := df.Col(colName)
	require.Nil(t, e)
	x, e := c.AsFloat()
	require.Nil(t, e)

	return x
}

func TestNewDFcol(t *testing.T) {
	dfx := testDF()
	assert.Equal(t, 3, dfx.RowCount())
	assert.Equal(t, []string{"month", "houseprice", "MHI", "county"}, dfx.ColumnNames())

	short, _ := NewCol([]float64{1}, d.DTfloat, d.ColName("short"))
	assert.NotNil(t, dfx.AppendColumn(short, false))

	dup, _ := NewCol([]float64{1, 2, 3}, d.DTfloat, d.ColName("MHI"))
	assert.NotNil(t, dfx.AppendColumn(dup, false))
	assert.Nil(t, dfx.AppendColumn(dup, true))
	assert.Equal(t, []float64{1, 2, 3}, floats(t, dfx, "MHI"))

	_, e := NewDFcol(nil, nil)
	assert.NotNil(t, e)
}

func TestGridLoad(t *testing.T) {
	grid := [][]string{{"month", "MHI"}, {"2015-01-01", "."}, {"2016-01-01", "60000"}}
	dfx, e := GridLoad(grid)
	assert.Nil(t, e)
	assert.Equal(t, 2, dfx.RowCount())
	assert.Equal(t, d.DTstring, dfx.Column("MHI").DataType())

	_, e = GridLoad([][]string{{"a", "b"}, {"1"}})
	assert.NotNil(t, e)

	_, e = GridLoad([][]string{{"a", "a"}, {"1", "2"}})
	assert.NotNil(t, e)
}

func TestColumns(t *testing.T) {
	dfx := testDF()

	keep, e := dfx.KeepColumns("county", "month")
	assert.Nil(t, e)
	assert.Equal(t, []string{"county", "month"}, keep.ColumnNames())

	_, e = dfx.KeepColumns("missing")
	assert.NotNil(t, e)

	assert.Nil(t, dfx.Rename("houseprice", "price"))
	assert.NotNil(t, dfx.Rename("price", "MHI"))
	assert.Nil(t, dfx.Column("houseprice"))

	assert.NotNil(t, dfx.Rename("nope", "x"))
}

func TestSort(t *testing.T) {
	dfx := testDF()
	assert.Nil(t, dfx.Sort(true, "month"))
	assert.Equal(t, []float64{100, 200, 250000}, floats(t, dfx, "houseprice"))

	assert.Nil(t, dfx.Sort(false, "county", "month"))
	c, _ := dfx.Col("county")
	assert.Equal(t, "Weber", c.Element(0))
	assert.Equal(t, 250000.0, floats(t, dfx, "houseprice")[1])

	assert.NotNil(t, dfx.Sort(true, "nope"))
}

func TestApply(t *testing.T) {
	dfx := testDF()
	assert.Nil(t, dfx.Apply("ratio", "divide", "houseprice", "MHI"))

	r := floats(t, dfx, "ratio")
	assert.Equal(t, 4.0, r[0])
	assert.True(t, math.IsInf(r[1], 1))
	assert.True(t, math.IsNaN(r[2]))

	assert.NotNil(t, dfx.Apply("bad", "divide", "county", "MHI"))
	assert.NotNil(t, dfx.Apply("bad", "power", "houseprice", "MHI"))
	assert.NotNil(t, dfx.Apply("ratio", "divide", "houseprice", "MHI"))
}

func TestJoin(t *testing.T) {
	left := testDF()
	dt, _ := NewCol([]time.Time{month(2015, 2), month(2015, 3), month(2015, 4)}, d.DTdate, d.ColName("month"))
	v, _ := NewCol([]float64{2, 3, 4}, d.DTfloat, d.ColName("v"))
	right, e := NewDFcol(nil, []*Col{dt, v})
	require.Nil(t, e)

	j, e := left.Join(right, "month")
	assert.Nil(t, e)
	assert.Equal(t, 2, j.RowCount())
	assert.Equal(t, []string{"month", "houseprice", "MHI", "county", "v"}, j.ColumnNames())
	// left order is kept
	assert.Equal(t, []float64{3, 2}, floats(t, j, "v"))
	assert.Equal(t, []float64{250000, 200}, floats(t, j, "houseprice"))

	_, e = left.Join(left, "month")
	assert.NotNil(t, e)

	_, e = left.Join(right, "county")
	assert.NotNil(t, e)
}

func TestAppendDF(t *testing.T) {
	dfx := testDF()
	dfy := testDF()

	dfz, e := dfx.AppendDF(dfy)
	assert.Nil(t, e)
	assert.Equal(t, 6, dfz.RowCount())
	assert.Equal(t, 250000.0, floats(t, dfz, "houseprice")[3])
	assert.Equal(t, dfx.ColumnNames(), dfz.ColumnNames())

	dfw, _ := dfy.KeepColumns("month", "houseprice", "county")
	_, e = dfx.AppendDF(dfw)
	assert.NotNil(t, e)
}

func TestMelt(t *testing.T) {
	dfx := testDF()
	m, e := dfx.Melt([]string{"month", "county"}, []string{"houseprice", "MHI"}, "metric", "value")
	assert.Nil(t, e)
	assert.Equal(t, 6, m.RowCount())
	assert.Equal(t, []string{"month", "county", "metric", "value"}, m.ColumnNames())

	mc, _ := m.Col("metric")
	vals := floats(t, m, "value")
	for r := 0; r < dfx.RowCount(); r++ {
		assert.Equal(t, "houseprice", mc.Element(r))
		assert.Equal(t, "MHI", mc.Element(r+3))
		assert.Equal(t, floats(t, dfx, "houseprice")[r], vals[r])
	}
	assert.Equal(t, 62500.0, vals[3])

	_, e = dfx.Melt([]string{"month"}, []string{"county"}, "metric", "value")
	assert.NotNil(t, e)
}

func TestResampleMonthly(t *testing.T) {
	dt, _ := NewCol([]time.Time{month(2015, 1), month(2015, 4), month(2016, 1)}, d.DTdate, d.ColName("month"))
	v, _ := NewCol([]float64{1, 4, 13}, d.DTfloat, d.ColName("MHI"))
	dfx, _ := NewDFcol(nil, []*Col{dt, v})

	rs, e := dfx.ResampleMonthly("month")
	assert.Nil(t, e)
	assert.Equal(t, 13, rs.RowCount())

	dc, _ := rs.Col("month")
	dates, _ := dc.AsDate()
	for ind, dx := range dates {
		assert.Equal(t, month(2015, 1).AddDate(0, ind, 0), dx)
	}

	x := floats(t, rs, "MHI")
	assert.Equal(t, 1.0, x[0])
	assert.True(t, math.IsNaN(x[1]))
	assert.Equal(t, 4.0, x[3])
	assert.Equal(t, 13.0, x[12])

	// dates off a month start set the calendar's span but their values are dropped
	dt2, _ := NewCol([]time.Time{month(2015, 1), time.Date(2015, 2, 15, 0, 0, 0, 0, time.UTC), month(2015, 3),
		time.Date(2015, 4, 20, 0, 0, 0, 0, time.UTC)}, d.DTdate, d.ColName("month"))
	v2, _ := NewCol([]float64{1, 999, 3, 99}, d.DTfloat, d.ColName("MHI"))
	dfy, _ := NewDFcol(nil, []*Col{dt2, v2})
	rs, e = dfy.ResampleMonthly("month")
	assert.Nil(t, e)
	assert.Equal(t, 4, rs.RowCount())
	x = floats(t, rs, "MHI")
	assert.Equal(t, 1.0, x[0])
	assert.True(t, math.IsNaN(x[1]))
	assert.Equal(t, 3.0, x[2])
	assert.True(t, math.IsNaN(x[3]))

	dup, _ := NewCol([]time.Time{month(2015, 1), month(2015, 1)}, d.DTdate, d.ColName("month"))
	vd, _ := NewCol([]float64{1, 2}, d.DTfloat, d.ColName("MHI"))
	dfd, _ := NewDFcol(nil, []*Col{dup, vd})
	_, e = dfd.ResampleMonthly("month")
	assert.NotNil(t, e)

	_, e = dfx.ResampleMonthly("MHI")
	assert.NotNil(t, e)
}

func TestInterpolate(t *testing.T) {
	nan := math.NaN()
	v, _ := NewCol([]float64{nan, 10, nan, nan, nan, 30, nan}, d.DTfloat, d.ColName("MHI"))
	dfx, _ := NewDFcol(nil, []*Col{v})

	assert.Nil(t, dfx.Interpolate("MHI"))
	x := floats(t, dfx, "MHI")
	assert.True(t, math.IsNaN(x[0]))
	// gap of k=3 between a=10 and b=30: a + i*(b-a)/(k+1)
	for i := 1; i <= 3; i++ {
		assert.InDelta(t, 10+float64(i)*20/4, x[1+i], 1e-9)
	}
	assert.Equal(t, 30.0, x[6])

	// the source column is untouched
	assert.True(t, math.IsNaN(v.ElementFloat(2)))

	one, _ := NewCol([]float64{nan, 5, nan}, d.DTfloat, d.ColName("one"))
	dfy, _ := NewDFcol(nil, []*Col{one})
	assert.Nil(t, dfy.Interpolate("one"))
	y := floats(t, dfy, "one")
	assert.True(t, math.IsNaN(y[0]))
	assert.Equal(t, 5.0, y[2])
}

func TestWhere(t *testing.T) {
	dfx := testDF()
	w, e := dfx.Where("county", func(x any) bool { return x.(string) == "Davis" })
	assert.Nil(t, e)
	assert.Equal(t, 2, w.RowCount())
}

func TestCol_String(t *testing.T) {
	dfx := testDF()
	c, _ := dfx.Col("houseprice")
	s := c.String()
	assert.True(t, strings.Contains(s, "median"))
	assert.True(t, strings.Contains(s, "column: houseprice"))

	cats, vals := c.Summary()
	assert.Equal(t, "n", cats[len(cats)-1])
	assert.Equal(t, 3.0, vals[len(vals)-1])
	assert.Equal(t, 100.0, vals[0])
	assert.Equal(t, 250000.0, vals[5])

	m, _ := dfx.Col("MHI")
	_, vals = m.Summary()
	assert.Equal(t, 2.0, vals[len(vals)-1])

	assert.True(t, strings.Contains(dfx.String(), "3 rows, 4 columns"))
	assert.True(t, strings.Contains(dfx.Column("county").String(), "Weber"))
}
