package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/invertedv/housing/pipeline"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix marks environment variables read as config: HOUSING_DATA_DIR sets data_dir.
const EnvPrefix = "HOUSING_"

type Config struct {
	DataDir    string            `koanf:"data_dir"`
	OutDir     string            `koanf:"out_dir"`
	PriceFile  string            `koanf:"price_file"`
	FooterRows int               `koanf:"footer_rows"`
	MergeFile  string            `koanf:"merge_file"`
	MeltFile   string            `koanf:"melt_file"`
	Missing    string            `koanf:"missing"`
	Counties   []pipeline.County `koanf:"counties"`

	PlotFile    string `koanf:"plot_file"`
	Summary     bool   `koanf:"summary"`
	LogLevel    string `koanf:"log_level"`
	LogEncoding string `koanf:"log_encoding"`
}

func defaults() map[string]interface{} {
	opts := pipeline.DefaultOptions()

	return map[string]interface{}{
		"data_dir":     opts.DataDir,
		"out_dir":      opts.OutDir,
		"price_file":   opts.PriceFile,
		"footer_rows":  opts.FooterRows,
		"merge_file":   opts.MergeFile,
		"melt_file":    opts.MeltFile,
		"missing":      opts.Missing,
		"plot_file":    "",
		"summary":      false,
		"log_level":    "info",
		"log_encoding": "console",
	}
}

// Load reads the configuration. Precedence, highest first: changed flags, HOUSING_ env vars,
// the YAML file cfgFile (if not empty), defaults. Flag names are kebab-case versions of the keys.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if e := k.Load(confmap.Provider(defaults(), "."), nil); e != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", e)
	}

	if cfgFile != "" {
		if e := k.Load(file.Provider(cfgFile), yaml.Parser()); e != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, e)
		}
	}

	if e := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); e != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", e)
	}

	if flags != nil {
		if e := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}

			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); e != nil {
			return nil, fmt.Errorf("failed to load flags: %w", e)
		}
	}

	var cfg Config
	if e := k.Unmarshal("", &cfg); e != nil {
		return nil, fmt.Errorf("unable to decode config: %w", e)
	}

	if len(cfg.Counties) == 0 {
		cfg.Counties = pipeline.DefaultCounties()
	}

	for ind, c := range cfg.Counties {
		if c.Name == "" {
			return nil, fmt.Errorf("county %d has no name", ind)
		}

		if c.File == "" {
			cfg.Counties[ind].File = c.Key() + "CountyMHI.csv"
		}
	}

	return &cfg, nil
}

// Options converts cfg to pipeline options; the summary, if any, goes to out.
func (cfg *Config) Options(out io.Writer) pipeline.Options {
	return pipeline.Options{
		DataDir:    cfg.DataDir,
		OutDir:     cfg.OutDir,
		PriceFile:  cfg.PriceFile,
		FooterRows: cfg.FooterRows,
		MergeFile:  cfg.MergeFile,
		MeltFile:   cfg.MeltFile,
		Missing:    cfg.Missing,
		Counties:   cfg.Counties,
		PlotFile:   cfg.PlotFile,
		Summary:    cfg.Summary,
		Out:        out,
	}
}
