package mem

import (
	d "github.com/invertedv/housing/frame"
)

// StandardFunctions are the functions Apply can run.
func StandardFunctions() d.Fns {
	return d.Fns{divide}
}

// ***************** Arithmetic *****************

// divide is a/b elementwise over two float columns. Results follow IEEE rules: a zero
// divisor gives ±Inf (NaN for 0/0) and NaN inputs give NaN.
func divide(info bool, context *d.Context, inputs ...any) *d.FnReturn {
	const name = "divide"

	if info {
		return &d.FnReturn{Name: name, Inputs: [][]d.DataTypes{{d.DTfloat, d.DTfloat}},
			Output: []d.DataTypes{d.DTfloat}}
	}

	cols := parameters(inputs...)
	if len(cols) != 2 {
		return &d.FnReturn{Err: errArgs(name, 2, len(cols))}
	}

	n := context.Self().RowCount()
	data := make([]float64, n)
	for ind := 0; ind < n; ind++ {
		data[ind] = cols[0].ElementFloat(ind) / cols[1].ElementFloat(ind)
	}

	return returnCol(data)
}
