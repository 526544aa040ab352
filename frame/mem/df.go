package mem

import (
	"fmt"
	"sort"
	"strings"

	d "github.com/invertedv/housing/frame"
)

type DF struct {
	cols  []*Col
	funcs d.Fns

	by        []*Col
	ascending bool
	order     []int
}

// ***************** DF - Create *****************

func NewDFcol(funcs d.Fns, cols []*Col) (*DF, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns in NewDFcol")
	}

	if funcs == nil {
		funcs = StandardFunctions()
	}

	df := &DF{funcs: funcs}
	for _, col := range cols {
		if e := df.AppendColumn(col, false); e != nil {
			return nil, e
		}
	}

	return df, nil
}

// GridLoad builds a DF of string columns from a grid whose first row is the header.
func GridLoad(grid [][]string) (*DF, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("empty grid")
	}

	header := grid[0]
	var cols []*Col
	for c := 0; c < len(header); c++ {
		data := make([]string, len(grid)-1)
		for r := 1; r < len(grid); r++ {
			if c >= len(grid[r]) {
				return nil, fmt.Errorf("row %d has %d fields, header has %d", r, len(grid[r]), len(header))
			}

			data[r-1] = grid[r][c]
		}

		var (
			col *Col
			e   error
		)
		if col, e = NewCol(data, d.DTstring, d.ColName(header[c])); e != nil {
			return nil, e
		}

		cols = append(cols, col)
	}

	return NewDFcol(nil, cols)
}

// ***************** DF - Methods *****************

func (df *DF) AppendColumn(col d.Column, replace bool) error {
	c, ok := col.(*Col)
	if !ok {
		return fmt.Errorf("AppendColumn requires *mem.Col")
	}

	if e := d.ValidName(c.Name()); e != nil {
		return e
	}

	if len(df.cols) > 0 && c.Len() != df.RowCount() {
		return fmt.Errorf("length mismatch: df - %d, append col %s - %d", df.RowCount(), c.Name(), c.Len())
	}

	if pos := df.position(c.Name()); pos >= 0 {
		if !replace {
			return fmt.Errorf("duplicate column name: %s", c.Name())
		}

		df.cols[pos] = c
		return nil
	}

	df.cols = append(df.cols, c)

	return nil
}

func (df *DF) Column(colName string) d.Column {
	if pos := df.position(colName); pos >= 0 {
		return df.cols[pos]
	}

	return nil
}

// Col returns the named column as *Col.
func (df *DF) Col(colName string) (*Col, error) {
	if pos := df.position(colName); pos >= 0 {
		return df.cols[pos], nil
	}

	return nil, fmt.Errorf("column %s not found", colName)
}

func (df *DF) ColumnCount() int {
	return len(df.cols)
}

func (df *DF) ColumnNames() []string {
	var names []string
	for _, c := range df.cols {
		names = append(names, c.Name())
	}

	return names
}

func (df *DF) Copy() *DF {
	cols := make([]*Col, len(df.cols))
	for ind, c := range df.cols {
		cols[ind] = c.Copy().(*Col)
	}

	return &DF{cols: cols, funcs: df.funcs}
}

// KeepColumns returns a new DF with the named columns, in the order given. The columns are shared.
func (df *DF) KeepColumns(colNames ...string) (*DF, error) {
	var cols []*Col
	for _, cName := range colNames {
		var (
			c *Col
			e error
		)
		if c, e = df.Col(cName); e != nil {
			return nil, e
		}

		cols = append(cols, c)
	}

	return NewDFcol(df.funcs, cols)
}

func (df *DF) Rename(oldName, newName string) error {
	var (
		c *Col
		e error
	)
	if c, e = df.Col(oldName); e != nil {
		return e
	}

	if oldName != newName && df.position(newName) >= 0 {
		return fmt.Errorf("column %s already exists, cannot Rename", newName)
	}

	return c.Rename(newName)
}

func (df *DF) RowCount() int {
	if len(df.cols) == 0 {
		return 0
	}

	return df.cols[0].Len()
}

// Subset returns a new DF with the rows given, in that order.
func (df *DF) Subset(rows []int) *DF {
	cols := make([]*Col, len(df.cols))
	for ind, c := range df.cols {
		cols[ind] = c.Subset(rows)
	}

	return &DF{cols: cols, funcs: df.funcs}
}

// Where returns the rows of df for which keep is true of the value in colName.
func (df *DF) Where(colName string, keep func(x any) bool) (*DF, error) {
	var (
		c *Col
		e error
	)
	if c, e = df.Col(colName); e != nil {
		return nil, e
	}

	var rows []int
	for r := 0; r < c.Len(); r++ {
		if keep(c.Element(r)) {
			rows = append(rows, r)
		}
	}

	return df.Subset(rows), nil
}

// Sort sorts df in place on keys. The sort is stable.
func (df *DF) Sort(ascending bool, keys ...string) error {
	var by []*Col
	for _, k := range keys {
		c, e := df.Col(k)
		if e != nil {
			return e
		}

		by = append(by, c)
	}

	n := df.RowCount()
	df.order = make([]int, n)
	for ind := 0; ind < n; ind++ {
		df.order[ind] = ind
	}

	df.by, df.ascending = by, ascending
	sort.Stable(df)

	sorted := df.Subset(df.order)
	df.cols = sorted.cols
	df.by, df.order = nil, nil

	return nil
}

// Len, Less and Swap sort the row permutation in df.order.
func (df *DF) Len() int {
	return len(df.order)
}

func (df *DF) Less(i, j int) bool {
	ri, rj := df.order[i], df.order[j]
	for _, c := range df.by {
		if c.Vector.Less(ri, rj) {
			return df.ascending
		}

		if c.Vector.Less(rj, ri) {
			return !df.ascending
		}
	}

	return false
}

func (df *DF) Swap(i, j int) {
	df.order[i], df.order[j] = df.order[j], df.order[i]
}

// Apply runs the registered function opName on the input columns and appends the result as resultName.
func (df *DF) Apply(resultName, opName string, inputs ...string) error {
	var fn d.Fn
	if fn = df.funcs.Get(opName); fn == nil {
		return fmt.Errorf("function %s not found", opName)
	}

	var vals []any
	var cols []d.Column
	for _, in := range inputs {
		var (
			c *Col
			e error
		)
		if c, e = df.Col(in); e != nil {
			return e
		}

		vals = append(vals, c)
		cols = append(cols, c)
	}

	if e := fn(true, nil).Check(cols...); e != nil {
		return e
	}

	ret := fn(false, d.NewContext(df), vals...)
	if ret.Err != nil {
		return ret.Err
	}

	col, ok := ret.Value.(*Col)
	if !ok {
		return fmt.Errorf("%s did not return a column", opName)
	}

	if e := col.Rename(resultName); e != nil {
		return e
	}

	return df.AppendColumn(col, false)
}

func (df *DF) String() string {
	const maxRows = 10

	n := df.RowCount()
	rows := make([]int, 0, maxRows)
	for ind := 0; ind < n && ind < maxRows; ind++ {
		rows = append(rows, ind)
	}

	var cols []any
	for _, c := range df.cols {
		cols = append(cols, c.Vector.Subset(rows).AsAny())
	}

	t := prettyPrint(df.ColumnNames(), cols...)
	if n > maxRows {
		t += fmt.Sprintf("%s\n", strings.Repeat(".", 3))
	}

	return t + fmt.Sprintf("%d rows, %d columns\n", n, df.ColumnCount())
}

func (df *DF) position(colName string) int {
	for ind, c := range df.cols {
		if c.Name() == colName {
			return ind
		}
	}

	return -1
}
