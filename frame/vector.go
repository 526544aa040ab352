package frame

import (
	"fmt"
	"math"
	"time"
)

// Vector holds the data of a column: one of []float64, []string or []time.Time.
type Vector struct {
	dt DataTypes

	data any
}

func NewVector(data any, dt DataTypes) (*Vector, error) {
	if data == nil {
		return MakeVector(dt, 0), nil
	}

	if WhatAmI(data) != dt {
		return nil, fmt.Errorf("cannot make vector of type %s from %T", dt, data)
	}

	switch data.(type) {
	case []float64, []string, []time.Time:
		return &Vector{dt: dt, data: data}, nil
	}

	// scalar
	return &Vector{dt: dt, data: toSlice(data)}, nil
}

func MakeVector(dt DataTypes, n int) *Vector {
	switch dt {
	case DTfloat:
		return &Vector{dt: dt, data: make([]float64, n)}
	case DTstring:
		return &Vector{dt: dt, data: make([]string, n)}
	case DTdate:
		return &Vector{dt: dt, data: make([]time.Time, n)}
	default:
		panic(fmt.Errorf("cannot make Vector with data type %s", dt))
	}
}

// *********** Methods ***********

func (v *Vector) VectorType() DataTypes {
	return v.dt
}

func (v *Vector) Data() *Vector {
	return v
}

func (v *Vector) AsAny() any {
	return v.data
}

func (v *Vector) AsFloat() ([]float64, error) {
	if v.dt != DTfloat {
		return nil, fmt.Errorf("vector is %s, not DTfloat", v.dt)
	}

	return v.data.([]float64), nil
}

func (v *Vector) AsString() ([]string, error) {
	if v.dt == DTstring {
		return v.data.([]string), nil
	}

	xOut := make([]string, v.Len())
	for ind := 0; ind < v.Len(); ind++ {
		x, ok := ToString(v.Element(ind))
		if !ok {
			return nil, fmt.Errorf("cannot convert %s to string", v.dt)
		}

		xOut[ind] = x.(string)
	}

	return xOut, nil
}

func (v *Vector) AsDate() ([]time.Time, error) {
	if v.dt != DTdate {
		return nil, fmt.Errorf("vector is %s, not DTdate", v.dt)
	}

	return v.data.([]time.Time), nil
}

func (v *Vector) Element(indx int) any {
	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index %d out of range", indx))
	}

	switch v.dt {
	case DTfloat:
		return v.data.([]float64)[indx]
	case DTstring:
		return v.data.([]string)[indx]
	case DTdate:
		return v.data.([]time.Time)[indx]
	default:
		panic(fmt.Errorf("error in Element"))
	}
}

func (v *Vector) ElementFloat(indx int) float64 {
	if v.dt != DTfloat {
		panic(fmt.Errorf("vector isn't DTfloat"))
	}

	return v.data.([]float64)[indx]
}

func (v *Vector) ElementString(indx int) string {
	if v.dt == DTstring {
		return v.data.([]string)[indx]
	}

	x, _ := ToString(v.Element(indx))

	return x.(string)
}

func (v *Vector) ElementDate(indx int) time.Time {
	if v.dt != DTdate {
		panic(fmt.Errorf("vector isn't DTdate"))
	}

	return v.data.([]time.Time)[indx]
}

func (v *Vector) Len() int {
	switch v.dt {
	case DTfloat:
		return len(v.data.([]float64))
	case DTstring:
		return len(v.data.([]string))
	case DTdate:
		return len(v.data.([]time.Time))
	default:
		panic(fmt.Errorf("unexpected error in Vector.Len"))
	}
}

// Less orders NaN after every other float.
func (v *Vector) Less(i, j int) bool {
	switch v.dt {
	case DTfloat:
		x := v.data.([]float64)
		if math.IsNaN(x[i]) {
			return false
		}

		return math.IsNaN(x[j]) || x[i] < x[j]
	case DTstring:
		return v.data.([]string)[i] < v.data.([]string)[j]
	case DTdate:
		return v.data.([]time.Time)[i].Before(v.data.([]time.Time)[j])
	default:
		panic(fmt.Errorf("unexpected error in vector.Less"))
	}
}

func (v *Vector) AppendVector(vAdd *Vector) error {
	if v.dt != vAdd.dt {
		return fmt.Errorf("cannot append %s vector to %s vector", vAdd.dt, v.dt)
	}

	switch v.dt {
	case DTfloat:
		v.data = append(v.data.([]float64), vAdd.data.([]float64)...)
	case DTstring:
		v.data = append(v.data.([]string), vAdd.data.([]string)...)
	case DTdate:
		v.data = append(v.data.([]time.Time), vAdd.data.([]time.Time)...)
	default:
		return fmt.Errorf("unknown type in Vector.AppendVector")
	}

	return nil
}

func (v *Vector) Copy() *Vector {
	vCopy := &Vector{dt: v.dt}
	switch v.dt {
	case DTfloat:
		x := make([]float64, v.Len())
		copy(x, v.data.([]float64))
		vCopy.data = x
	case DTstring:
		x := make([]string, v.Len())
		copy(x, v.data.([]string))
		vCopy.data = x
	case DTdate:
		x := make([]time.Time, v.Len())
		copy(x, v.data.([]time.Time))
		vCopy.data = x
	default:
		panic(fmt.Errorf("unexpected error in Vector.Copy"))
	}

	return vCopy
}

// Subset returns a new Vector holding the elements at rows, in that order.
// A negative row yields the missing value for the type (NaN, "" or the zero time).
func (v *Vector) Subset(rows []int) *Vector {
	outVec := MakeVector(v.dt, len(rows))
	for ind, r := range rows {
		switch v.dt {
		case DTfloat:
			val := math.NaN()
			if r >= 0 {
				val = v.data.([]float64)[r]
			}

			outVec.data.([]float64)[ind] = val
		case DTstring:
			if r >= 0 {
				outVec.data.([]string)[ind] = v.data.([]string)[r]
			}
		case DTdate:
			if r >= 0 {
				outVec.data.([]time.Time)[ind] = v.data.([]time.Time)[r]
			}
		}
	}

	return outVec
}

// Repeat returns a Vector of length n, each element equal to val.
func Repeat(val any, n int) (*Vector, error) {
	dt := WhatAmI(val)
	if dt == DTunknown {
		return nil, fmt.Errorf("unsupported type %T in Repeat", val)
	}

	v := MakeVector(dt, n)
	for ind := 0; ind < n; ind++ {
		switch dt {
		case DTfloat:
			v.data.([]float64)[ind] = val.(float64)
		case DTstring:
			v.data.([]string)[ind] = val.(string)
		case DTdate:
			v.data.([]time.Time)[ind] = val.(time.Time)
		}
	}

	return v, nil
}

func toSlice(x any) any {
	switch v := x.(type) {
	case float64:
		return []float64{v}
	case string:
		return []string{v}
	case time.Time:
		return []time.Time{v}
	}

	return nil
}
