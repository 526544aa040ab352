// Command housing merges Utah county home prices with county median household income
// into housing_MHI_merge.csv and housing_MHI_melt.csv.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/invertedv/housing/internal/config"
	"github.com/invertedv/housing/internal/logging"
	"github.com/invertedv/housing/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if e := newRootCmd().ExecuteContext(ctx); e != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:          "housing",
		Short:        "Merge county home prices with median household income",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg    *config.Config
				logger *zap.Logger
				e      error
			)

			if cfg, e = config.Load(cfgFile, cmd.Flags()); e != nil {
				return e
			}

			if logger, e = logging.New(cfg.LogLevel, cfg.LogEncoding); e != nil {
				return e
			}
			defer func() { _ = logger.Sync() }()

			if e = pipeline.Run(cmd.Context(), cfg.Options(cmd.OutOrStdout()), logger); e != nil {
				logger.Error("run failed", zap.Error(e))
				return e
			}

			return nil
		},
	}

	opts := pipeline.DefaultOptions()
	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file")
	flags.String("data-dir", opts.DataDir, "directory holding the input CSVs")
	flags.String("out-dir", opts.OutDir, "directory for the output files")
	flags.String("plot-file", "", "write an HTML plot of the ratio to this file")
	flags.Bool("summary", false, "print the ratio summary by county")
	flags.String("log-level", "info", "debug, info, warn or error")

	return cmd
}
