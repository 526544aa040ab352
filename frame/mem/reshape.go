package mem

import (
	"fmt"
	"time"

	d "github.com/invertedv/housing/frame"
)

// ***************** Functions that return a data frame *****************

// Join is an inner join of df and df2 on the column joinOn. Rows come out in df's order; a
// key repeated in df2 yields one row per match. The result has df's columns followed by
// df2's columns other than joinOn.
func (df *DF) Join(df2 *DF, joinOn string) (*DF, error) {
	var (
		left, right *Col
		e           error
	)

	if left, e = df.Col(joinOn); e != nil {
		return nil, e
	}

	if right, e = df2.Col(joinOn); e != nil {
		return nil, e
	}

	if left.DataType() != right.DataType() {
		return nil, fmt.Errorf("join column %s is %s on left, %s on right", joinOn, left.DataType(), right.DataType())
	}

	for _, nm := range df2.ColumnNames() {
		if nm != joinOn && df.position(nm) >= 0 {
			return nil, fmt.Errorf("column %s is in both sides of join", nm)
		}
	}

	lookup := make(map[any][]int)
	for r := 0; r < right.Len(); r++ {
		k := keyOf(right.Element(r))
		lookup[k] = append(lookup[k], r)
	}

	var leftRows, rightRows []int
	for r := 0; r < left.Len(); r++ {
		for _, rr := range lookup[keyOf(left.Element(r))] {
			leftRows = append(leftRows, r)
			rightRows = append(rightRows, rr)
		}
	}

	var cols []*Col
	for _, c := range df.cols {
		cols = append(cols, c.Subset(leftRows))
	}

	for _, c := range df2.cols {
		if c.Name() == joinOn {
			continue
		}

		cols = append(cols, c.Subset(rightRows))
	}

	return NewDFcol(df.funcs, cols)
}

// AppendDF stacks the rows of df2 below those of df. Both must have the same columns;
// the result uses df's column order.
func (df *DF) AppendDF(df2 *DF) (*DF, error) {
	if df.ColumnCount() != df2.ColumnCount() {
		return nil, fmt.Errorf("AppendDF: column counts differ, %d and %d", df.ColumnCount(), df2.ColumnCount())
	}

	var cols []*Col
	for _, c := range df.cols {
		var (
			c2  *Col
			out *Col
			e   error
		)
		if c2, e = df2.Col(c.Name()); e != nil {
			return nil, fmt.Errorf("AppendDF: %w", e)
		}

		if out, e = c.AppendRows(c2); e != nil {
			return nil, e
		}

		cols = append(cols, out)
	}

	return NewDFcol(df.funcs, cols)
}

// Melt unpivots the float columns valueVars into (varName, valueName) pairs keyed by idVars.
// The output holds every row for valueVars[0], then every row for valueVars[1], and so on.
func (df *DF) Melt(idVars, valueVars []string, varName, valueName string) (*DF, error) {
	if len(valueVars) == 0 {
		return nil, fmt.Errorf("Melt: no value columns")
	}

	n := df.RowCount()
	rows := make([]int, 0, n*len(valueVars))
	for range valueVars {
		for r := 0; r < n; r++ {
			rows = append(rows, r)
		}
	}

	var cols []*Col
	for _, id := range idVars {
		var (
			c *Col
			e error
		)
		if c, e = df.Col(id); e != nil {
			return nil, e
		}

		cols = append(cols, c.Subset(rows))
	}

	vars := d.MakeVector(d.DTstring, 0)
	vals := d.MakeVector(d.DTfloat, 0)
	for _, vv := range valueVars {
		var (
			c   *Col
			rep *d.Vector
			e   error
		)
		if c, e = df.Col(vv); e != nil {
			return nil, e
		}

		if c.DataType() != d.DTfloat {
			return nil, fmt.Errorf("Melt: value column %s is %s, not DTfloat", vv, c.DataType())
		}

		if rep, e = d.Repeat(vv, n); e != nil {
			return nil, e
		}

		if e = vars.AppendVector(rep); e != nil {
			return nil, e
		}

		if e = vals.AppendVector(c.Vector); e != nil {
			return nil, e
		}
	}

	varCol, e := NewCol(vars, d.DTstring, d.ColName(varName))
	if e != nil {
		return nil, e
	}

	valCol, e := NewCol(vals, d.DTfloat, d.ColName(valueName))
	if e != nil {
		return nil, e
	}

	cols = append(cols, varCol, valCol)

	return NewDFcol(df.funcs, cols)
}

// keyOf maps a value to a comparable join key. NaN keys never match.
func keyOf(x any) any {
	if t, ok := x.(time.Time); ok {
		return t.UnixNano()
	}

	return x
}
