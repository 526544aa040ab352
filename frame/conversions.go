package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateFormats are the layouts tried, in order, when a string is converted to a date.
var DateFormats = []string{"2006-01-02", "2006-01", "2006-1-2", "2006/01/02", "2006/1/2", "20060102",
	"01/02/2006", "1/2/2006", "01-02-2006", "1-2-2006", "200601", "Jan 2 2006", "January 2 2006",
	"Jan 2, 2006", "January 2, 2006", "2006-01-02 15:04:05", time.RFC3339}

// *********** Conversions ***********

// ToFloat converts x to float64. Strings may carry a leading $ and thousands separators.
func ToFloat(x any) (any, bool) {
	switch v := x.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		s := strings.TrimSpace(v)
		s = strings.TrimPrefix(s, "$")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return nil, false
		}

		if f, e := strconv.ParseFloat(s, 64); e == nil {
			return f, true
		}
	}

	return nil, false
}

// ToDate converts x to a UTC time.Time.
func ToDate(x any) (any, bool) {
	if d, ok := x.(time.Time); ok {
		return d.UTC(), true
	}

	s, ok := x.(string)
	if !ok {
		return nil, false
	}

	s = strings.TrimSpace(strings.ReplaceAll(s, "'", ""))
	for _, layout := range DateFormats {
		if dt, e := time.Parse(layout, s); e == nil {
			return dt.UTC(), true
		}
	}

	return nil, false
}

func ToString(x any) (any, bool) {
	switch v := x.(type) {
	case string:
		return v, true
	case float64:
		return FormatFloat(v), true
	case int:
		return strconv.Itoa(v), true
	case time.Time:
		return v.Format(time.DateOnly), true
	}

	return nil, false
}

// FormatFloat is the shortest decimal that round-trips x. NaN is "", infinities are "inf" and "-inf".
func FormatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return ""
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	return strconv.FormatFloat(x, 'f', -1, 64)
}

// MonthStart returns midnight UTC on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ParseDates parses raw with a single layout. Any failure is an error.
func ParseDates(raw []string, layout string) (*Vector, error) {
	x := make([]time.Time, len(raw))
	for ind, s := range raw {
		dt, e := time.Parse(layout, strings.TrimSpace(s))
		if e != nil {
			return nil, fmt.Errorf("row %d: %w", ind, e)
		}

		x[ind] = dt.UTC()
	}

	return NewVector(x, DTdate)
}

// ParseVector builds a Vector of type dt from raw strings. Values for which isNA is true
// are missing. For DTfloat, missing and unparseable values are NaN; bad counts the
// unparseable ones. For DTdate every value must parse.
func ParseVector(raw []string, dt DataTypes, isNA func(s string) bool) (v *Vector, bad int, err error) {
	if isNA == nil {
		isNA = func(string) bool { return false }
	}

	switch dt {
	case DTstring:
		x := make([]string, len(raw))
		copy(x, raw)
		v, err = NewVector(x, DTstring)
		return v, 0, err
	case DTfloat:
		x := make([]float64, len(raw))
		for ind, s := range raw {
			x[ind] = math.NaN()
			if isNA(s) {
				continue
			}

			f, ok := ToFloat(s)
			if !ok {
				bad++
				continue
			}

			x[ind] = f.(float64)
		}

		v, err = NewVector(x, DTfloat)
		return v, bad, err
	case DTdate:
		x := make([]time.Time, len(raw))
		for ind, s := range raw {
			d, ok := ToDate(s)
			if !ok || isNA(s) {
				return nil, 0, fmt.Errorf("cannot parse %q as date at row %d", s, ind)
			}

			x[ind] = d.(time.Time)
		}

		v, err = NewVector(x, DTdate)
		return v, 0, err
	default:
		return nil, 0, fmt.Errorf("cannot parse to %s", dt)
	}
}
