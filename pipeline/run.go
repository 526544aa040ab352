package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	m "github.com/invertedv/housing/frame/mem"
	"go.uber.org/zap"
)

// default file names
const (
	PriceFile = "10-year_Change_in_Average_3_Bedroom_Home_Prices_in_Utah_Counties.csv"
	MergeFile = "housing_MHI_merge.csv"
	MeltFile  = "housing_MHI_melt.csv"

	Missing    = "."
	FooterRows = 1
)

// Options locates the input and output files and selects the optional outputs.
type Options struct {
	DataDir    string
	OutDir     string
	PriceFile  string
	FooterRows int
	MergeFile  string
	MeltFile   string
	Missing    string
	Counties   []County

	// PlotFile, if set, receives an HTML chart of the ratio.
	PlotFile string
	// Summary, if set, prints the ratio summary by county to Out.
	Summary bool
	Out     io.Writer
}

// DefaultOptions reads and writes the default file names in the working directory.
func DefaultOptions() Options {
	return Options{
		DataDir:    ".",
		OutDir:     ".",
		PriceFile:  PriceFile,
		FooterRows: FooterRows,
		MergeFile:  MergeFile,
		MeltFile:   MeltFile,
		Missing:    Missing,
		Counties:   DefaultCounties(),
	}
}

// Run loads, merges and exports. The first error stops it; ctx is checked between stages.
func Run(ctx context.Context, opts Options, logger *zap.Logger) error {
	var (
		prices, merged, melted *m.DF
		mhis                   []*m.DF
		e                      error
	)

	if prices, e = LoadPrices(filepath.Join(opts.DataDir, opts.PriceFile), opts.FooterRows, logger); e != nil {
		return e
	}

	for _, c := range opts.Counties {
		if e = ctx.Err(); e != nil {
			return e
		}

		var mhi *m.DF
		if mhi, e = LoadMHI(filepath.Join(opts.DataDir, c.File), c, opts.Missing, logger); e != nil {
			return e
		}

		mhis = append(mhis, mhi)
	}

	if merged, e = Merge(opts.Counties, mhis, prices, logger); e != nil {
		return e
	}
	logger.Debug("merged table", zap.Stringer("head", merged))

	if e = ctx.Err(); e != nil {
		return e
	}

	mergeFile := filepath.Join(opts.OutDir, opts.MergeFile)
	if e = Export(mergeFile, merged); e != nil {
		return e
	}
	logger.Info("wrote merged table", zap.String("file", mergeFile), zap.Int("rows", merged.RowCount()))

	if melted, e = Melt(merged); e != nil {
		return e
	}

	meltFile := filepath.Join(opts.OutDir, opts.MeltFile)
	if e = Export(meltFile, melted); e != nil {
		return e
	}
	logger.Info("wrote melted table", zap.String("file", meltFile), zap.Int("rows", melted.RowCount()))

	if opts.PlotFile != "" {
		plotFile := filepath.Join(opts.OutDir, opts.PlotFile)
		if e = PlotRatio(merged, opts.Counties, plotFile); e != nil {
			return e
		}
		logger.Info("wrote ratio plot", zap.String("file", plotFile))
	}

	if opts.Summary {
		var summ *m.DF
		if summ, e = Summary(merged, opts.Counties); e != nil {
			return e
		}

		if opts.Out == nil {
			return fmt.Errorf("summary requested with no output writer")
		}

		if _, e = fmt.Fprint(opts.Out, summ.String()); e != nil {
			return e
		}
	}

	return nil
}
