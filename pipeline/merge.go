package pipeline

import (
	"fmt"

	m "github.com/invertedv/housing/frame/mem"
	"go.uber.org/zap"
)

// MergeCounty inner-joins one county's MHI table with its price table on month and adds
// the price to MHI ratio. Columns are month, county, houseprice, MHI, housing_MHI_ratio.
func MergeCounty(mhi, price *m.DF) (*m.DF, error) {
	var (
		joined *m.DF
		e      error
	)

	if joined, e = mhi.Join(price, ColMonth); e != nil {
		return nil, e
	}

	if e = joined.Apply(ColRatio, "divide", ColPrice, ColMHI); e != nil {
		return nil, e
	}

	return joined.KeepColumns(ColMonth, ColCounty, ColPrice, ColMHI, ColRatio)
}

// Merge merges each county's MHI table, mhis[i] for counties[i], with its prices and stacks
// the results in county order.
func Merge(counties []County, mhis []*m.DF, prices *m.DF, logger *zap.Logger) (*m.DF, error) {
	if len(counties) == 0 {
		return nil, fmt.Errorf("no counties to merge")
	}

	if len(counties) != len(mhis) {
		return nil, fmt.Errorf("%d counties but %d MHI tables", len(counties), len(mhis))
	}

	var out *m.DF
	for ind, c := range counties {
		var (
			price, merged *m.DF
			e             error
		)

		if price, e = PriceFor(prices, c); e != nil {
			return nil, e
		}

		if merged, e = MergeCounty(mhis[ind], price); e != nil {
			return nil, fmt.Errorf("merge %s: %w", c.Name, e)
		}

		logger.Info("merged county", zap.String("county", c.Name), zap.Int("rows", merged.RowCount()))

		if out == nil {
			out = merged
			continue
		}

		if out, e = out.AppendDF(merged); e != nil {
			return nil, fmt.Errorf("merge %s: %w", c.Name, e)
		}
	}

	return out, nil
}
