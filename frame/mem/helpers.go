package mem

import (
	"fmt"
	"math"
	"strings"
	"time"

	d "github.com/invertedv/housing/frame"
)

func parameters(inputs ...any) (cols []*Col) {
	for j := 0; j < len(inputs); j++ {
		cx, ok := inputs[j].(*Col)
		if !ok {
			panic(fmt.Errorf("can't make column from %T", inputs[j]))
		}

		cols = append(cols, cx)
	}

	return cols
}

func returnCol(data any) *d.FnReturn {
	var (
		outCol *Col
		e      error
	)

	if outCol, e = NewCol(data, d.WhatAmI(data)); e != nil {
		return &d.FnReturn{Err: e}
	}

	return &d.FnReturn{Value: outCol}
}

func errArgs(fnName string, want, got int) error {
	return fmt.Errorf("%s expects %d arguments, got %d", fnName, want, got)
}

// prettyPrint lays out cols, each a []float64, []string or []time.Time, as a text table
// under header. Floats are right aligned.
func prettyPrint(header []string, cols ...any) string {
	const gap = 3

	var (
		cells [][]string
		right []bool
	)

	for ind, col := range cols {
		cs, isFloat := formatCells(col)
		cells = append(cells, append([]string{header[ind]}, cs...))
		right = append(right, isFloat)
	}

	if len(cells) == 0 {
		return ""
	}

	widths := make([]int, len(cells))
	for c, cs := range cells {
		for _, s := range cs {
			widths[c] = max(widths[c], len(s))
		}
	}

	var sb strings.Builder
	for row := 0; row < len(cells[0]); row++ {
		for c, cs := range cells {
			fill := strings.Repeat(" ", widths[c]-len(cs[row])+gap)
			if right[c] {
				sb.WriteString(fill + cs[row])
				continue
			}

			sb.WriteString(cs[row] + fill)
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

func formatCells(col any) (cells []string, isFloat bool) {
	switch x := col.(type) {
	case []float64:
		format := fmt.Sprintf("%%.%df", decimals(x))
		for _, xv := range x {
			cells = append(cells, fmt.Sprintf(format, xv))
		}

		return cells, true
	case []string:
		return x, false
	case []time.Time:
		for _, xv := range x {
			cells = append(cells, xv.Format(time.DateOnly))
		}

		return cells, false
	default:
		panic(fmt.Errorf("unsupported data type %T", col))
	}
}

// decimals picks the number of decimals to show from the spread of the finite values of x.
func decimals(x []float64) int {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, xv := range x {
		if math.IsNaN(xv) || math.IsInf(xv, 0) {
			continue
		}

		lo, hi = math.Min(lo, math.Abs(xv)), math.Max(hi, math.Abs(xv))
	}

	spread := hi - lo
	switch {
	case math.IsInf(lo, 1) || spread == 0:
		return 2
	case spread < 0.1:
		return int(-math.Log10(spread)+0.5) + 1
	case spread > 10:
		return 0
	default:
		return 1
	}
}
