package frame

import "time"

//  *********** DataTypes ***********

// DataTypes are the types of data that the package supports
type DataTypes uint8

// values of DataTypes
const (
	DTunknown DataTypes = 0 + iota
	DTstring
	DTfloat
	DTdate
	DTany // keep as last entry
)

//go:generate stringer -type=DataTypes

// WhatAmI returns the DataTypes of val, which may be a scalar or a slice.
func WhatAmI(val any) DataTypes {
	switch val.(type) {
	case float64, []float64:
		return DTfloat
	case string, []string:
		return DTstring
	case time.Time, []time.Time:
		return DTdate
	default:
		return DTunknown
	}
}
