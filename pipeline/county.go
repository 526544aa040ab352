// Package pipeline builds the tidy county housing / median household income (MHI) dataset:
// it loads the wide home-price table and the per-county MHI series, puts both on a monthly
// calendar, merges them and exports the merged and melted tables.
package pipeline

import (
	d "github.com/invertedv/housing/frame"
)

// column names of the pipeline tables
const (
	ColMonth  = "month"
	ColCounty = "county"
	ColPrice  = "houseprice"
	ColMHI    = "MHI"
	ColRatio  = "housing_MHI_ratio"
	ColMetric = "metric"
	ColValue  = "value"

	priceSuffix = "_" + ColPrice
)

// County pairs a county's display name with its MHI file.
type County struct {
	Name string `koanf:"name"`
	File string `koanf:"file"`
}

// Key is the county name as it appears in column names: "Salt Lake" is "SaltLake".
func (c County) Key() string {
	return d.SafeName(c.Name)
}

// PriceColumn is the name of the county's column in the wide price table.
func (c County) PriceColumn() string {
	return c.Key() + priceSuffix
}

// DefaultCounties are the seven Utah counties, each with its <Key>CountyMHI.csv file.
func DefaultCounties() []County {
	names := []string{"Davis", "Salt Lake", "Tooele", "Utah", "Wasatch", "Washington", "Weber"}

	var counties []County
	for _, nm := range names {
		c := County{Name: nm}
		c.File = c.Key() + "CountyMHI.csv"
		counties = append(counties, c)
	}

	return counties
}
