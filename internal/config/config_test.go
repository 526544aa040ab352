package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/invertedv/housing/pipeline"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("housing", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.String("data-dir", ".", "")
	flags.String("out-dir", ".", "")
	flags.Bool("summary", false, "")
	flags.String("log-level", "info", "")

	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, e := Load("", nil)
	require.Nil(t, e)

	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, pipeline.PriceFile, cfg.PriceFile)
	assert.Equal(t, pipeline.FooterRows, cfg.FooterRows)
	assert.Equal(t, pipeline.Missing, cfg.Missing)
	assert.Equal(t, pipeline.DefaultCounties(), cfg.Counties)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Summary)
}

func TestLoad_File(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "housing.yaml")
	yml := `data_dir: /data
footer_rows: 2
counties:
  - name: Salt Lake
  - name: Cache
    file: cache.csv
`
	require.Nil(t, os.WriteFile(cfgFile, []byte(yml), 0o644))

	cfg, e := Load(cfgFile, nil)
	require.Nil(t, e)
	assert.Equal(t, "/data", cfg.DataDir)
	assert.Equal(t, 2, cfg.FooterRows)
	assert.Equal(t, []pipeline.County{{Name: "Salt Lake", File: "SaltLakeCountyMHI.csv"}, {Name: "Cache", File: "cache.csv"}},
		cfg.Counties)

	noName := filepath.Join(t.TempDir(), "bad.yaml")
	require.Nil(t, os.WriteFile(noName, []byte("counties:\n  - file: x.csv\n"), 0o644))
	_, e = Load(noName, nil)
	assert.NotNil(t, e)

	_, e = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.NotNil(t, e)
}

func TestLoad_EnvAndFlags(t *testing.T) {
	t.Setenv("HOUSING_DATA_DIR", "/env")
	t.Setenv("HOUSING_OUT_DIR", "/env-out")
	t.Setenv("HOUSING_LOG_LEVEL", "debug")

	flags := testFlags()
	require.Nil(t, flags.Parse([]string{"--out-dir", "/flag-out", "--summary"}))

	cfg, e := Load("", flags)
	require.Nil(t, e)
	assert.Equal(t, "/env", cfg.DataDir)
	assert.Equal(t, "/flag-out", cfg.OutDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Summary)
}

func TestConfig_Options(t *testing.T) {
	cfg, e := Load("", nil)
	require.Nil(t, e)
	cfg.PlotFile = "ratio.html"

	var buf bytes.Buffer
	opts := cfg.Options(&buf)
	assert.Equal(t, cfg.Counties, opts.Counties)
	assert.Equal(t, "ratio.html", opts.PlotFile)
	assert.Equal(t, pipeline.MergeFile, opts.MergeFile)
	assert.Equal(t, &buf, opts.Out)
}
